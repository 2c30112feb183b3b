package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/zinrai/iracing-wheel-config/internal/logger"
	"github.com/zinrai/iracing-wheel-config/internal/utils"
)

// Prefix of the environment variables that override configuration keys,
// e.g. WHEELCFG_SETUPS_ROOT.
const EnvPrefix = "WHEELCFG"

// Configuration keys, shared by the YAML file, the environment and flags
const (
	KeyIRacingDir  = "iracing_dir"
	KeySetupsRoot  = "setups_root"
	KeyConfigsRoot = "configs_root"
	KeyLogLevel    = "log_level"
)

// Directory names below the iRacing documents directory
const (
	SetupsDirName  = "setups"
	ConfigsDirName = "wheelConfigs"
)

// Represents the complete configuration for the tool. The two roots are
// fixed for the lifetime of a run.
type Config struct {
	IRacingDir  string `yaml:"iracing_dir,omitempty" mapstructure:"iracing_dir"`
	SetupsRoot  string `yaml:"setups_root,omitempty" mapstructure:"setups_root"`
	ConfigsRoot string `yaml:"configs_root,omitempty" mapstructure:"configs_root"`
	LogLevel    string `yaml:"log_level,omitempty" mapstructure:"log_level"`
}

// Controls where Load reads its values from
type LoadOptions struct {
	// Optional YAML file; empty means no file
	ConfigFilePath string
	// Optional flag set; only flags the user changed override other sources
	Flags *pflag.FlagSet
	// Maps configuration keys to flag names in Flags
	FlagNames map[string]string
}

// Returns the default iRacing documents directory, ~/Documents/iRacing
func DefaultIRacingDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, "Documents", "iRacing"), nil
}

// Returns the configuration used when nothing is overridden
func DefaultConfig() (*Config, error) {
	dir, err := DefaultIRacingDir()
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		IRacingDir: dir,
		LogLevel:   string(logger.WarnLevel),
	}
	cfg.resolveRoots()
	return cfg, nil
}

// Loads the configuration from the specified path. Relative paths in the
// file are resolved against the directory of the file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	resolver, err := utils.NewPathResolver(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("resolving config file directory: %w", err)
	}
	config.resolvePaths(resolver)

	return &config, nil
}

// Builds the run configuration. Sources are layered, lowest first:
// defaults, the YAML file, WHEELCFG_* environment variables, changed flags.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaultDir, err := DefaultIRacingDir()
	if err != nil {
		return nil, err
	}
	v.SetDefault(KeyIRacingDir, defaultDir)
	v.SetDefault(KeySetupsRoot, "")
	v.SetDefault(KeyConfigsRoot, "")
	v.SetDefault(KeyLogLevel, string(logger.WarnLevel))

	if opts.ConfigFilePath != "" {
		fileCfg, err := LoadConfig(opts.ConfigFilePath)
		if err != nil {
			return nil, err
		}
		if err := v.MergeConfigMap(fileCfg.toMap()); err != nil {
			return nil, fmt.Errorf("merging config file: %w", err)
		}
		logger.Debug("Loaded config file", "path", opts.ConfigFilePath)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for key, name := range opts.FlagNames {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}

	// Values from flags and the environment are relative to the working
	// directory
	resolver, err := utils.NewPathResolver(".")
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}
	cfg.resolvePaths(resolver)
	cfg.resolveRoots()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Checks that the configuration can drive a run
func (c *Config) Validate() error {
	if c.SetupsRoot == "" {
		return fmt.Errorf("setups root is empty")
	}
	if c.ConfigsRoot == "" {
		return fmt.Errorf("configs root is empty")
	}
	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log level '%s' (want one of debug, info, warn, error)", c.LogLevel)
	}
	return nil
}

// Fills unset roots from the iRacing directory
func (c *Config) resolveRoots() {
	if c.SetupsRoot == "" && c.IRacingDir != "" {
		c.SetupsRoot = filepath.Join(c.IRacingDir, SetupsDirName)
	}
	if c.ConfigsRoot == "" && c.IRacingDir != "" {
		c.ConfigsRoot = filepath.Join(c.IRacingDir, ConfigsDirName)
	}
}

func (c *Config) resolvePaths(resolver *utils.PathResolver) {
	c.IRacingDir = resolver.ResolvePath(c.IRacingDir)
	c.SetupsRoot = resolver.ResolvePath(c.SetupsRoot)
	c.ConfigsRoot = resolver.ResolvePath(c.ConfigsRoot)
}

// Only keys set in the file are returned, so they don't mask defaults
func (c *Config) toMap() map[string]any {
	m := make(map[string]any)
	for key, value := range map[string]string{
		KeyIRacingDir:  c.IRacingDir,
		KeySetupsRoot:  c.SetupsRoot,
		KeyConfigsRoot: c.ConfigsRoot,
		KeyLogLevel:    c.LogLevel,
	} {
		if value != "" {
			m[key] = value
		}
	}
	return m
}
