package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, DefaultBufferCapacity, c.BufferCapacity)
	assert.Equal(t, DefaultMaxHeredocDepth, c.MaxHeredocDepth)
	assert.Equal(t, DefaultLogLevel, c.LogLevel)
}

func TestApply(t *testing.T) {
	testCases := []struct {
		name     string
		overlay  Config
		expected Config
	}{
		{
			name:     "empty overlay leaves defaults",
			overlay:  Config{},
			expected: DefaultConfig(),
		},
		{
			name:    "overlay replaces buffer capacity",
			overlay: Config{BufferCapacity: 4096},
			expected: Config{
				BufferCapacity:  4096,
				MaxHeredocDepth: DefaultMaxHeredocDepth,
				LogLevel:        DefaultLogLevel,
			},
		},
		{
			name:    "overlay replaces log level",
			overlay: Config{LogLevel: "debug"},
			expected: Config{
				BufferCapacity:  DefaultBufferCapacity,
				MaxHeredocDepth: DefaultMaxHeredocDepth,
				LogLevel:        "debug",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := DefaultConfig()
			c.Apply(tc.overlay)
			assert.Equal(t, tc.expected, c)
		})
	}
}
