package utils

import "github.com/go-redis/redis/v8"

type RedisConfig struct {
	RedisUrl string `env:"REDIS_URL"`
}

// ProvideRedis connects to redis when REDIS_URL is set, and returns a nil
// client otherwise so consumers can fall back to their in-memory variants.
func ProvideRedis(config *RedisConfig) (*redis.Client, error) {
	if config.RedisUrl == "" {
		return nil, nil
	}

	options, err := redis.ParseURL(config.RedisUrl)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(options)

	_, err = client.Ping(client.Context()).Result()
	if err != nil {
		return nil, err
	}

	return client, nil
}
