package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Frame   FrameConfig   `toml:"frame"`
	Input   InputConfig   `toml:"input"`
	Camera  CameraConfig  `toml:"camera"`
	Assets  AssetsConfig  `toml:"assets"`
	Shell   ShellConfig   `toml:"shell"`
	Logging LoggingConfig `toml:"logging"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type FrameConfig struct {
	TickRate time.Duration `toml:"tick_rate"`
}

type InputConfig struct {
	RotationSpeed float64 `toml:"rotation_speed"` // radians per second for Q/E roll
}

type CameraConfig struct {
	FovDeg float64 `toml:"fov_deg"`
	ZNear  float64 `toml:"z_near"`
	ZFar   float64 `toml:"z_far"`
}

type AssetsConfig struct {
	SearchPaths []string `toml:"search_paths"`
}

type ShellConfig struct {
	Enabled    bool   `toml:"enabled"`
	ScriptsDir string `toml:"scripts_dir"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration, used when no file is given.
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "catengine",
			Width:  800,
			Height: 600,
		},
		Frame: FrameConfig{
			TickRate: 16 * time.Millisecond,
		},
		Input: InputConfig{
			RotationSpeed: 1.5,
		},
		Camera: CameraConfig{
			FovDeg: 60,
			ZNear:  0.1,
			ZFar:   100,
		},
		Assets: AssetsConfig{
			SearchPaths: []string{"assets", "."},
		},
		Shell: ShellConfig{
			Enabled:    false,
			ScriptsDir: "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Aspect returns the window aspect ratio.
func (w WindowConfig) Aspect() float32 {
	if w.Height == 0 {
		return 1
	}
	return float32(w.Width) / float32(w.Height)
}
