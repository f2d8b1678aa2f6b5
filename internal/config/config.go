// Package config loads settings from an optional YAML file, environment
// variables (MUSCLE_*) and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"muscle-overlay/internal/muscle"
	"muscle-overlay/pkg/colorutil"

	"github.com/spf13/viper"
)

// FileName is the config file searched for when no explicit path is given.
const FileName = "muscle-overlay"

// Settings is a typed snapshot of the configuration.
type Settings struct {
	LogLevel  string
	Landmarks LandmarkSettings
	Picker    PickerSettings
	Render    RenderSettings
	Convert   ConvertSettings
}

// LandmarkSettings selects and configures the landmark provider.
type LandmarkSettings struct {
	Provider      string // "sidecar" or "command"
	SidecarSuffix string
	Command       []string
	Timeout       time.Duration
}

// PickerSettings configures the interactive picker.
type PickerSettings struct {
	Output       string
	Groups       []string // digit keys 1-9 select these in order
	WindowWidth  int
	WindowHeight int
}

// RenderSettings configures batch rendering.
type RenderSettings struct {
	Definition string
	Output     string
	Thickness  int
	Alpha      float64
	Show       bool
}

// ConvertSettings configures flat-to-definition conversion.
type ConvertSettings struct {
	Colors map[string]colorutil.RGB
}

// SetDefaults registers default values.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("landmarks.provider", "sidecar")
	viper.SetDefault("landmarks.sidecarSuffix", ".landmarks.json")
	viper.SetDefault("landmarks.command", []string{"python3", "detect_landmarks.py"})
	viper.SetDefault("landmarks.timeout", "60s")

	viper.SetDefault("picker.output", "muscle_points.yaml")
	viper.SetDefault("picker.groups", muscle.DefaultGroups)
	viper.SetDefault("picker.windowWidth", 900)
	viper.SetDefault("picker.windowHeight", 1200)

	viper.SetDefault("render.definition", "muscles.yaml")
	viper.SetDefault("render.output", "output.jpg")
	viper.SetDefault("render.thickness", 18)
	viper.SetDefault("render.alpha", 0.45)
	viper.SetDefault("render.show", true)

	viper.SetDefault("convert.colors", map[string]interface{}{})
}

// Load sets defaults, binds MUSCLE_* environment variables and reads the
// config file. An explicit path must exist; otherwise muscle-overlay.yaml is
// looked up in the working directory and the user config dir, and a missing
// file is not an error.
func Load(path string) error {
	SetDefaults()

	viper.SetEnvPrefix("MUSCLE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
		return nil
	}

	viper.SetConfigName(FileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(dir, "muscle-overlay"))
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Used returns the config file in use, or "" when running on defaults.
func Used() string {
	return viper.ConfigFileUsed()
}

// Current returns the settings currently held by viper.
func Current() (Settings, error) {
	colors, err := colorMap(viper.GetStringMap("convert.colors"))
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		LogLevel: viper.GetString("logLevel"),
		Landmarks: LandmarkSettings{
			Provider:      viper.GetString("landmarks.provider"),
			SidecarSuffix: viper.GetString("landmarks.sidecarSuffix"),
			Command:       viper.GetStringSlice("landmarks.command"),
			Timeout:       viper.GetDuration("landmarks.timeout"),
		},
		Picker: PickerSettings{
			Output:       viper.GetString("picker.output"),
			Groups:       viper.GetStringSlice("picker.groups"),
			WindowWidth:  viper.GetInt("picker.windowWidth"),
			WindowHeight: viper.GetInt("picker.windowHeight"),
		},
		Render: RenderSettings{
			Definition: viper.GetString("render.definition"),
			Output:     viper.GetString("render.output"),
			Thickness:  viper.GetInt("render.thickness"),
			Alpha:      viper.GetFloat64("render.alpha"),
			Show:       viper.GetBool("render.show"),
		},
		Convert: ConvertSettings{Colors: colors},
	}, nil
}

func colorMap(raw map[string]interface{}) (map[string]colorutil.RGB, error) {
	colors := make(map[string]colorutil.RGB, len(raw))
	for name, v := range raw {
		list, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("convert.colors.%s: expected [r, g, b]", name)
		}
		parts := make([]int, len(list))
		for i, p := range list {
			n, ok := toInt(p)
			if !ok {
				return nil, fmt.Errorf("convert.colors.%s: component %v is not an integer", name, p)
			}
			parts[i] = n
		}
		rgb, err := colorutil.FromInts(parts)
		if err != nil {
			return nil, fmt.Errorf("convert.colors.%s: %w", name, err)
		}
		colors[strings.ToLower(name)] = rgb
	}
	return colors, nil
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
