// Package config loads the viewer configuration: frame rate, idle timeout
// and the defaults bundle applied by a reset.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. GOVOX_FPS
const EnvPrefix = "GOVOX"

// Defaults is the preset the viewer returns to on reset.
// Angles are degrees, rates degrees per second, ratios in engine units.
type Defaults struct {
	RotationSpeed float64 `mapstructure:"rotationSpeed" json:"rotationSpeed"`
	Angle         float64 `mapstructure:"angle" json:"angle"`
	Tilt          float64 `mapstructure:"tilt" json:"tilt"`
	TiltXY        float64 `mapstructure:"tiltXY" json:"tiltXY"`
	TiltYZ        float64 `mapstructure:"tiltYZ" json:"tiltYZ"`
	AnimTilt      float64 `mapstructure:"animTilt" json:"animTilt"`
	AnimOmega     float64 `mapstructure:"animOmega" json:"animOmega"`
	Clip          float64 `mapstructure:"clip" json:"clip"` // clip distance, 1 = unclipped
	Zoom          float64 `mapstructure:"zoom" json:"zoom"`
	AnimZoom      float64 `mapstructure:"animZoom" json:"animZoom"`
	AnimFreq      float64 `mapstructure:"animFreq" json:"animFreq"`
	TFCenter      float64 `mapstructure:"tfCenter" json:"tfCenter"`
	TFSize        float64 `mapstructure:"tfSize" json:"tfSize"`
	TFInverse     bool    `mapstructure:"tfInverse" json:"tfInverse"`
	Emission      float64 `mapstructure:"emission" json:"emission"`
	Absorption    float64 `mapstructure:"absorption" json:"absorption"`
	Hue           float64 `mapstructure:"hue" json:"hue"`
	GradMag       bool    `mapstructure:"gradMag" json:"gradMag"`
	Stereo        string  `mapstructure:"stereo" json:"stereo"`
	StereoBase    float64 `mapstructure:"stereoBase" json:"stereoBase"`
	StereoFocus   float64 `mapstructure:"stereoFocus" json:"stereoFocus"`
}

// Config holds the complete viewer configuration
type Config struct {
	FPS      float64  `mapstructure:"fps" json:"fps"`
	MaxIdle  float64  `mapstructure:"maxIdle" json:"maxIdle"` // seconds, 0 disables
	LogLevel string   `mapstructure:"logLevel" json:"logLevel"`
	Pretty   bool     `mapstructure:"pretty" json:"pretty"`
	Teaser   string   `mapstructure:"teaser" json:"teaser"`
	Watch    bool     `mapstructure:"watch" json:"watch"`
	IsoValue float64  `mapstructure:"isoValue" json:"isoValue"` // normalized density
	GrabDir  string   `mapstructure:"grabDir" json:"grabDir"`
	Defaults Defaults `mapstructure:"defaults" json:"defaults"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() Config {
	return Config{
		FPS:      30,
		MaxIdle:  0,
		LogLevel: "info",
		Pretty:   true,
		Teaser:   "/usr/share/govox/Drop.pvm",
		Watch:    true,
		IsoValue: 0.5,
		GrabDir:  ".",
		Defaults: Defaults{
			RotationSpeed: 30,
			AnimOmega:     60,
			Clip:          1,
			AnimFreq:      1.0 / 60,
			TFCenter:      0.5,
			TFSize:        1,
			Emission:      0.25,
			Absorption:    0.25,
			Stereo:        "off",
			StereoBase:    1,
			StereoFocus:   1,
		},
	}
}

// New returns a viper instance with every default registered and
// environment overrides enabled.
func New() *viper.Viper {
	v := viper.New()
	def := DefaultConfig()

	v.SetDefault("fps", def.FPS)
	v.SetDefault("maxIdle", def.MaxIdle)
	v.SetDefault("logLevel", def.LogLevel)
	v.SetDefault("pretty", def.Pretty)
	v.SetDefault("teaser", def.Teaser)
	v.SetDefault("watch", def.Watch)
	v.SetDefault("isoValue", def.IsoValue)
	v.SetDefault("grabDir", def.GrabDir)

	d := def.Defaults
	v.SetDefault("defaults.rotationSpeed", d.RotationSpeed)
	v.SetDefault("defaults.angle", d.Angle)
	v.SetDefault("defaults.tilt", d.Tilt)
	v.SetDefault("defaults.tiltXY", d.TiltXY)
	v.SetDefault("defaults.tiltYZ", d.TiltYZ)
	v.SetDefault("defaults.animTilt", d.AnimTilt)
	v.SetDefault("defaults.animOmega", d.AnimOmega)
	v.SetDefault("defaults.clip", d.Clip)
	v.SetDefault("defaults.zoom", d.Zoom)
	v.SetDefault("defaults.animZoom", d.AnimZoom)
	v.SetDefault("defaults.animFreq", d.AnimFreq)
	v.SetDefault("defaults.tfCenter", d.TFCenter)
	v.SetDefault("defaults.tfSize", d.TFSize)
	v.SetDefault("defaults.tfInverse", d.TFInverse)
	v.SetDefault("defaults.emission", d.Emission)
	v.SetDefault("defaults.absorption", d.Absorption)
	v.SetDefault("defaults.hue", d.Hue)
	v.SetDefault("defaults.gradMag", d.GradMag)
	v.SetDefault("defaults.stereo", d.Stereo)
	v.SetDefault("defaults.stereoBase", d.StereoBase)
	v.SetDefault("defaults.stereoFocus", d.StereoFocus)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file into v and decodes the result.
// With an empty file the default locations ($HOME/.govox, the working
// directory) are searched; finding nothing there is not an error.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("govox")
		v.AddConfigPath("$HOME/.govox")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if cfg.FPS <= 0 {
		return Config{}, fmt.Errorf("fps must be positive, got %v", cfg.FPS)
	}
	if cfg.IsoValue < 0 || cfg.IsoValue > 1 {
		return Config{}, fmt.Errorf("isoValue must be within [0, 1], got %v", cfg.IsoValue)
	}
	if cfg.MaxIdle < 0 {
		return Config{}, fmt.Errorf("maxIdle must not be negative, got %v", cfg.MaxIdle)
	}
	return cfg, nil
}
