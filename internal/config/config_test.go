package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zinrai/iracing-wheel-config/internal/testutil"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wheelcfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newFlags(t *testing.T, args ...string) (*pflag.FlagSet, map[string]string) {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("iracing-dir", "", "")
	flags.String("setups-root", "", "")
	flags.String("configs-root", "", "")
	flags.String("log-level", "", "")
	require.NoError(t, flags.Parse(args))
	return flags, map[string]string{
		KeyIRacingDir:  "iracing-dir",
		KeySetupsRoot:  "setups-root",
		KeyConfigsRoot: "configs-root",
		KeyLogLevel:    "log-level",
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
iracing_dir: /games/iRacing
configs_root: /wheels
log_level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, &Config{
		IRacingDir:  "/games/iRacing",
		ConfigsRoot: "/wheels",
		LogLevel:    "debug",
	}, cfg)
}

func TestLoadConfigRelativePaths(t *testing.T) {
	path := writeConfigFile(t, "setups_root: setups\nconfigs_root: ../wheels\n")
	dir := filepath.Dir(path)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "setups"), cfg.SetupsRoot)
	assert.Equal(t, filepath.Join(filepath.Dir(dir), "wheels"), cfg.ConfigsRoot)
	assert.Empty(t, cfg.IRacingDir)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name        string
		path        func(t *testing.T) string
		errContains string
	}{
		{
			name:        "missing file",
			path:        func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			errContains: "reading config file",
		},
		{
			name:        "malformed yaml",
			path:        func(t *testing.T) string { return writeConfigFile(t, "setups_root: [unclosed") },
			errContains: "parsing config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.path(t))
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestLoad(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	defaultDir := filepath.Join(home, "Documents", "iRacing")

	defaults := Config{
		IRacingDir:  defaultDir,
		SetupsRoot:  filepath.Join(defaultDir, SetupsDirName),
		ConfigsRoot: filepath.Join(defaultDir, ConfigsDirName),
		LogLevel:    "warn",
	}

	tests := []struct {
		name     string
		file     string
		env      map[string]string
		args     []string
		expected Config
	}{
		{
			name:     "defaults",
			expected: defaults,
		},
		{
			name: "iracing dir from file derives both roots",
			file: "iracing_dir: /games/iRacing\n",
			expected: testutil.MergeStructs(defaults, Config{
				IRacingDir:  "/games/iRacing",
				SetupsRoot:  filepath.Join("/games/iRacing", SetupsDirName),
				ConfigsRoot: filepath.Join("/games/iRacing", ConfigsDirName),
			}),
		},
		{
			name:     "explicit root in file wins over derived one",
			file:     "iracing_dir: /games/iRacing\nsetups_root: /custom/setups\n",
			expected: testutil.MergeStructs(defaults, Config{IRacingDir: "/games/iRacing", SetupsRoot: "/custom/setups", ConfigsRoot: filepath.Join("/games/iRacing", ConfigsDirName)}),
		},
		{
			name:     "environment overrides file",
			file:     "configs_root: /from/file\n",
			env:      map[string]string{"WHEELCFG_CONFIGS_ROOT": "/from/env"},
			expected: testutil.MergeStructs(defaults, Config{ConfigsRoot: "/from/env"}),
		},
		{
			name:     "changed flag overrides environment",
			env:      map[string]string{"WHEELCFG_SETUPS_ROOT": "/from/env", "WHEELCFG_LOG_LEVEL": "info"},
			args:     []string{"--setups-root", "/from/flag"},
			expected: testutil.MergeStructs(defaults, Config{SetupsRoot: "/from/flag", LogLevel: "info"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			opts := LoadOptions{}
			if tt.file != "" {
				opts.ConfigFilePath = writeConfigFile(t, tt.file)
			}
			opts.Flags, opts.FlagNames = newFlags(t, tt.args...)

			cfg, err := Load(opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *cfg)
		})
	}
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	flags, names := newFlags(t, "--log-level", "chatty")

	_, err := Load(LoadOptions{Flags: flags, FlagNames: names})

	assert.ErrorContains(t, err, "invalid log level 'chatty'")
}

func TestLoadMissingConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Load(LoadOptions{ConfigFilePath: filepath.Join(t.TempDir(), "absent.yaml")})

	assert.ErrorContains(t, err, "reading config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		errContains string
	}{
		{
			name:        "empty setups root",
			cfg:         Config{ConfigsRoot: "/c", LogLevel: "info"},
			errContains: "setups root is empty",
		},
		{
			name:        "empty configs root",
			cfg:         Config{SetupsRoot: "/s", LogLevel: "info"},
			errContains: "configs root is empty",
		},
		{
			name: "valid",
			cfg:  Config{SetupsRoot: "/s", ConfigsRoot: "/c", LogLevel: "error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}
