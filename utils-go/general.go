package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ConfigureLogger sets up the global zerolog logger. Dev mode gets a console
// writer, production stays on structured JSON.
func ConfigureLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && level != zerolog.NoLevel {
		zerolog.SetGlobalLevel(level)
	}

	if os.Getenv("PRODUCTION") == "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

// ParseFlags reads the -dev and -env flags and loads the matching .env file.
// Returns true when running in production mode.
func ParseFlags() bool {
	devMode := flag.Bool("dev", false, "Run in dev mode")
	envFile := flag.String("env", "", ".env file path")

	flag.Parse()

	if err := godotenv.Load(func() string {
		if len(*envFile) > 0 {
			return *envFile
		}

		return ".prod.env"
	}()); err != nil {
		log.Warn().Err(err).Msg("Could not load .env file")
	}

	return !*devMode
}

func IsInList(item string, list *[]string) int {
	for i, val := range *list {
		if val == item {
			return i
		}
	}
	return -1
}

// ConvertConfig maps one config struct onto another via their json tags.
// Used to derive the shared server and redis configs from a service config.
func ConvertConfig[T, S any](input T) (*S, error) {
	res, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	cfg := new(S)
	err = json.Unmarshal(res, cfg)

	return cfg, err
}
