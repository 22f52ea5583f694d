// Package config reads emulator settings from flags, CHYP8_* environment
// variables and an optional ~/.chyp8 config file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"chyp8/emu/cpu"
	"chyp8/emu/driver"
	"chyp8/emu/screen"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "CHYP8"
	fileName  = ".chyp8"
)

type Settings struct {
	Refresh    int
	Ticks      int
	Scale      float64
	Strict     bool
	Mute       bool
	Debug      bool
	Quiet      bool
	Beep       string
	Foreground color.RGBA
	Background color.RGBA
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("refresh", 60)
	v.SetDefault("ticks", 10)
	v.SetDefault("scale", 10.0)
	v.SetDefault("strict", false)
	v.SetDefault("mute", false)
	v.SetDefault("debug", false)
	v.SetDefault("quiet", false)
	v.SetDefault("beep", "")
	v.SetDefault("foreground", "white")
	v.SetDefault("background", "black")
}

// Flags registers the command line flags for every setting.
func Flags(flags *pflag.FlagSet) {
	flags.IntP("refresh", "r", 60, "frames per second")
	flags.IntP("ticks", "t", 10, "instructions executed per frame")
	flags.Float64P("scale", "s", 10, "window pixels per display pixel")
	flags.Bool("strict", false, "report unknown opcodes as errors")
	flags.Bool("mute", false, "disable the buzzer")
	flags.Bool("debug", false, "enable debug logging")
	flags.BoolP("quiet", "q", false, "only log errors")
	flags.String("beep", "", "mp3 clip to loop while the buzzer sounds")
	flags.String("foreground", "white", "colour of lit pixels")
	flags.String("background", "black", "colour of unlit pixels")
}

// Init reads in the config file and ENV variables. An empty cfgFile
// searches the home directory. Returns the config file used, if any.
func Init(v *viper.Viper, cfgFile string, flags *pflag.FlagSet) (string, error) {
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return "", fmt.Errorf("binding flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return "", fmt.Errorf("finding home directory: %w", err)
		}
		v.AddConfigPath(home)
		v.SetConfigName(fileName)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("reading config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

func Load(v *viper.Viper) (Settings, error) {
	s := Settings{
		Refresh: v.GetInt("refresh"),
		Ticks:   v.GetInt("ticks"),
		Scale:   v.GetFloat64("scale"),
		Strict:  v.GetBool("strict"),
		Mute:    v.GetBool("mute"),
		Debug:   v.GetBool("debug"),
		Quiet:   v.GetBool("quiet"),
		Beep:    v.GetString("beep"),
	}

	if s.Refresh <= 0 {
		return s, fmt.Errorf("refresh rate must be positive, got %d", s.Refresh)
	}
	if s.Ticks <= 0 {
		return s, fmt.Errorf("ticks per frame must be positive, got %d", s.Ticks)
	}
	if s.Scale <= 0 {
		return s, fmt.Errorf("scale must be positive, got %g", s.Scale)
	}

	var err error
	if s.Foreground, err = screen.ParseColor(v.GetString("foreground")); err != nil {
		return s, fmt.Errorf("foreground: %w", err)
	}
	if s.Background, err = screen.ParseColor(v.GetString("background")); err != nil {
		return s, fmt.Errorf("background: %w", err)
	}
	return s, nil
}

// Logger creates a logger with the level selected by debug/quiet.
func (s Settings) Logger() *log.Logger {
	cfg := log.DefaultConfig()
	if s.Debug {
		cfg.Level = log.DebugLevel
	} else if s.Quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

func (s Settings) Driver() driver.Config {
	return driver.Config{
		Refresh:       s.Refresh,
		TicksPerFrame: s.Ticks,
	}
}

func (s Settings) CPUOptions(logger *log.Logger) []cpu.Option {
	return []cpu.Option{
		cpu.WithLogger(logger),
		cpu.WithStrict(s.Strict),
	}
}
