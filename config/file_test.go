package config

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRuleSet(t *testing.T) {
	rs := RuleSet{
		Rules: []Rule{
			{
				Name:    "default",
				Pattern: "**",
				Config:  Config{LogLevel: "info"},
			},
			{
				Name:    "nested",
				Pattern: "**/nested/**",
				Config:  Config{BufferCapacity: 4096},
			},
		},
	}

	tmpDir, err := ioutil.TempDir("", "")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	p := path.Join(tmpDir, "bashscan", "config.json")
	err = SaveRuleSet(p, rs)
	require.NoError(t, err)

	loadedRs, err := LoadRuleSet(p)
	require.NoError(t, err)
	assert.Equal(t, rs, loadedRs)
}

func TestLoadConfigAppliesOverlayOntoDefaults(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	p := path.Join(tmpDir, "bashscan.yaml")
	err = ioutil.WriteFile(p, []byte("bufferCapacity: 4096\n"), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, 4096, cfg.BufferCapacity)
	assert.Equal(t, DefaultMaxHeredocDepth, cfg.MaxHeredocDepth)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadConfigMissingFileReturnsError(t *testing.T) {
	_, err := LoadConfig("/nonexistent/bashscan.yaml")
	assert.Error(t, err)
}
