// Package config loads host settings from defaults, an optional YAML file,
// HADES_* environment variables and command line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "HADES"

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window WindowConfig `mapstructure:"window"`
	ECS    ECSConfig    `mapstructure:"ecs"`
	Loop   LoopConfig   `mapstructure:"loop"`
	Log    LogConfig    `mapstructure:"log"`
	Debug  DebugConfig  `mapstructure:"debug"`
}

type WindowConfig struct {
	Title  string `mapstructure:"title"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

type ECSConfig struct {
	// MaxEntities caps live entities; zero means no cap.
	MaxEntities int `mapstructure:"max_entities"`
}

type LoopConfig struct {
	TPS int `mapstructure:"tps"`
	// StatsInterval is how often the host logs system stats; zero disables it.
	StatsInterval time.Duration `mapstructure:"stats_interval"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
}

type DebugConfig struct {
	ShowUI bool `mapstructure:"show_ui"`
}

// TickInterval is the fixed update step derived from TPS.
func (l LoopConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(l.TPS)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.title", "Hades")
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("ecs.max_entities", 0)
	v.SetDefault("loop.tps", 60)
	v.SetDefault("loop.stats_interval", "0s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.compress", true)
	v.SetDefault("debug.show_ui", true)
}

// NewFlagSet returns the flags Load understands. Flags left unset do not
// override file or environment values.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", "", "path to a YAML config file")
	fs.String("window.title", "Hades", "window title")
	fs.Int("window.width", 1280, "window width in pixels")
	fs.Int("window.height", 720, "window height in pixels")
	fs.Int("ecs.max_entities", 0, "maximum live entities, 0 for no limit")
	fs.Int("loop.tps", 60, "fixed updates per second")
	fs.Duration("loop.stats_interval", 0, "interval between system stats log lines, 0 to disable")
	fs.String("log.level", "info", "log level (debug, info, warn, error)")
	fs.String("log.format", "text", "log format (text, json)")
	fs.String("log.file", "", "also write logs to this rotating file")
	fs.Bool("debug.show_ui", true, "show the ImGui debug panels")
	return fs
}

// Load parses args with fs, as built by NewFlagSet, and resolves the config.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height))
	}
	if c.ECS.MaxEntities < 0 {
		errs = append(errs, fmt.Errorf("%w: ecs.max_entities %d is negative", ErrInvalid, c.ECS.MaxEntities))
	}
	if c.Loop.TPS <= 0 {
		errs = append(errs, fmt.Errorf("%w: loop.tps must be positive, got %d", ErrInvalid, c.Loop.TPS))
	}
	if c.Loop.StatsInterval < 0 {
		errs = append(errs, fmt.Errorf("%w: loop.stats_interval %s is negative", ErrInvalid, c.Loop.StatsInterval))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format))
	}
	return errors.Join(errs...)
}
