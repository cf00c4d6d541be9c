package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the CAVERNS_* environment overrides.
type Env struct {
	AssetsDir     string `env:"CAVERNS_ASSETS_DIR"`
	KeymapFile    string `env:"CAVERNS_KEYMAP"`
	Width         int    `env:"CAVERNS_WIDTH"  envDefault:"1280"`
	Height        int    `env:"CAVERNS_HEIGHT" envDefault:"720"`
	SkipMenu      bool   `env:"CAVERNS_SKIP_MENU"`
	DrawColliders bool   `env:"CAVERNS_DEBUG"`
	Verbose       bool   `env:"CAVERNS_VERBOSE"`
}

// LoadEnv reads configuration overrides from environment variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Apply copies the overrides into the global configuration.
func (e Env) Apply() {
	if e.Width > 0 {
		C.Width = e.Width
	}
	if e.Height > 0 {
		C.Height = e.Height
	}
	if e.AssetsDir != "" {
		Debug.AssetsDir = e.AssetsDir
	}
	if e.KeymapFile != "" {
		Debug.KeymapFile = e.KeymapFile
	}
	Debug.SkipMenu = Debug.SkipMenu || e.SkipMenu
	Debug.DrawColliders = Debug.DrawColliders || e.DrawColliders
	Debug.Verbose = Debug.Verbose || e.Verbose
}
