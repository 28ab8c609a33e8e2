package config

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/etc/e6launch.yaml")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoad(t *testing.T) {
	memfs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memfs, "/e6.yaml", []byte(`
arguments:
  robot_name: e6_left
  use_rviz: false
  prefix:
  scale: 1.5
log_level: debug
log_dir: /var/log/e6
sigterm_timeout: 3s
ament_prefix_path:
  - /ws/install
  - /opt/ros/humble
`), 0644))

	cfg, err := Load(memfs, "/e6.yaml")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/var/log/e6", cfg.LogDir)
	assert.Equal(t, []string{"/ws/install", "/opt/ros/humble"}, cfg.AmentPrefixPath)

	d, err := cfg.SigtermTimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, d)
	d, err = cfg.SigkillTimeoutDuration()
	require.NoError(t, err)
	assert.Zero(t, d)

	args, err := cfg.LaunchArguments()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"robot_name": "e6_left",
		"use_rviz":   "false",
		"prefix":     "",
		"scale":      "1.5",
	}, args)
}

func TestLoadInvalid(t *testing.T) {
	var tests = map[string]string{
		"unknown field":  "log_levle: debug\n",
		"bad level":      "log_level: loud\n",
		"bad timeout":    "sigterm_timeout: soon\n",
		"negative":       "sigkill_timeout: -1s\n",
		"empty prefix":   "ament_prefix_path: ['']\n",
		"nested value":   "arguments:\n  robot_name: {a: b}\n",
		"not a document": "arguments: [\n",
	}
	for name, contents := range tests {
		t.Run(name, func(t *testing.T) {
			memfs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(memfs, "/e6.yaml", []byte(contents), 0644))
			_, err := Load(memfs, "/e6.yaml")
			assert.Error(t, err)
		})
	}
}
