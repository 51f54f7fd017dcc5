package main

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v2"
)

// Config is everything objview can read from a TOML file. Command line
// flags override it.
type Config struct {
	Scale          float32
	TrackMaterials bool
	Window         WindowConfig
	Render         RenderConfig
}

type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

type RenderConfig struct {
	Cull     bool
	Outlines bool
	Ambient  float64
	// Highlight is an #rrggbb colour mixed into the selected mesh.
	Highlight string
}

func defaultConfig() Config {
	return Config{
		Scale:          1,
		TrackMaterials: true,
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
			Title:  "objview",
		},
		Render: RenderConfig{
			Cull:      true,
			Ambient:   0.65,
			Highlight: "#ffdc00",
		},
	}
}

func loadConfigFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open config file %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(cfg); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// makeConfig layers the config file, if any, and then the set flags over
// the defaults.
func makeConfig(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()
	if path := ctx.String(configFlag.Name); path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if ctx.IsSet(scaleFlag.Name) {
		cfg.Scale = float32(ctx.Float64(scaleFlag.Name))
	}
	if ctx.Bool(noMaterialsFlag.Name) {
		cfg.TrackMaterials = false
	}
	if _, err := parseHexColor(cfg.Render.Highlight); err != nil {
		return cfg, fmt.Errorf("render.highlight: %w", err)
	}
	return cfg, nil
}

func parseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid colour %q, want #rrggbb", s)
	}
	return c, nil
}

func writeConfig(w io.Writer, cfg Config) error {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	return writeConfig(ctx.App.Writer, cfg)
}
