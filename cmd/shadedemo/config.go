package main

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the demo settings. Every field can be set through a SHADE_
// environment variable and overridden by the matching flag.
type Config struct {
	Width       int      `envconfig:"WIDTH" default:"512"`
	Height      int      `envconfig:"HEIGHT" default:"512"`
	PixelRatio  float64  `envconfig:"PIXEL_RATIO" default:"1"`
	Zoom        float64  `envconfig:"ZOOM" default:"1"`
	Mode        string   `envconfig:"MODE" default:"coverage"`
	Format      string   `envconfig:"FORMAT" default:"srgb"`
	Workers     int      `envconfig:"WORKERS" default:"0"`
	Output      string   `envconfig:"OUTPUT" default:"shade.png"`
	IDOutput    string   `envconfig:"ID_OUTPUT" default:""`
	Palette     []string `envconfig:"PALETTE" default:"#e63946,#457b9d,#f1c453,#1d3557cc"`
	PaletteFile string   `envconfig:"PALETTE_FILE" default:""`
	Watch       bool     `envconfig:"WATCH" default:"false"`
	Preview     bool     `envconfig:"PREVIEW" default:"false"`
	Debug       bool     `envconfig:"DEBUG" default:"false"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("SHADE", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// TextureFormat maps the format name to a color target format.
func (c *Config) TextureFormat() (gputypes.TextureFormat, error) {
	switch c.Format {
	case "srgb":
		return gputypes.TextureFormatRGBA8UnormSrgb, nil
	case "linear":
		return gputypes.TextureFormatRGBA8Unorm, nil
	}
	return gputypes.TextureFormatUndefined, fmt.Errorf("unknown format %q (want srgb or linear)", c.Format)
}
