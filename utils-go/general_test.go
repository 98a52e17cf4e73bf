package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsInList(t *testing.T) {
	list := []string{"UA", "UB", "UC"}

	assert.Equal(t, 1, IsInList("UB", &list))
	assert.Equal(t, -1, IsInList("UZ", &list))

	empty := []string{}
	assert.Equal(t, -1, IsInList("UA", &empty))
}

func TestConvertConfig(t *testing.T) {
	type source struct {
		BotToken string
		AppToken string
		Debug    bool
		Port     string
	}

	got, err := ConvertConfig[*source, SlackConfig](&source{
		BotToken: "xoxb-1",
		AppToken: "xapp-1",
		Debug:    true,
		Port:     ":3000",
	})
	require.NoError(t, err)
	assert.Equal(t, "xoxb-1", got.BotToken)
	assert.Equal(t, "xapp-1", got.AppToken)
	assert.True(t, got.Debug)
}
