package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigForPath(t *testing.T) {
	testCases := []struct {
		name           string
		ruleSet        RuleSet
		path           string
		expectedConfig Config
	}{
		{
			name:           "no rules, default config",
			ruleSet:        RuleSet{},
			path:           "testdata/script.sh",
			expectedConfig: DefaultConfig(),
		},
		{
			name: "rule matches, raises buffer capacity for deeply nested corpus files",
			ruleSet: RuleSet{
				Rules: []Rule{
					{
						Name:    "deep-nesting",
						Pattern: filepath.FromSlash("testdata/nested/**/*.sh"),
						Config:  Config{BufferCapacity: 4096},
					},
					{
						Name:    "mismatched rule",
						Pattern: filepath.FromSlash("**/*.bash"),
						Config:  Config{LogLevel: "debug"},
					},
				},
			},
			path: filepath.FromSlash("testdata/nested/a/b/heredoc.sh"),
			expectedConfig: Config{
				BufferCapacity:  4096,
				MaxHeredocDepth: DefaultMaxHeredocDepth,
				LogLevel:        DefaultLogLevel,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := tc.ruleSet.ConfigForPath(tc.path)
			assert.Equal(t, tc.expectedConfig, c)
		})
	}
}

func TestRuleSetValidate(t *testing.T) {
	rs := RuleSet{Rules: []Rule{{Name: "bad", Pattern: ""}}}
	err := rs.Validate()
	assert.Error(t, err)

	rs = RuleSet{Rules: []Rule{{Name: "good", Pattern: "**/*.sh"}}}
	assert.NoError(t, rs.Validate())
}
