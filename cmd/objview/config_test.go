package main

import (
	"bytes"
	"flag"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func cliContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	app := newApp()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range app.Flags {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Parse(args))
	return cli.NewContext(app, set, nil)
}

func TestMakeConfigDefaults(t *testing.T) {
	cfg, err := makeConfig(cliContext(t))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestMakeConfigFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "objview.toml")
	src := `Scale = 2.0

[Window]
Width = 640
Height = 480

[Render]
Outlines = true
Highlight = "#00ff00"
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := makeConfig(cliContext(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, float32(2), cfg.Scale)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, "objview", cfg.Window.Title, "unset keys keep their defaults")
	assert.True(t, cfg.Render.Outlines)
	assert.True(t, cfg.Render.Cull)

	cfg, err = makeConfig(cliContext(t, "--config", path, "--scale", "0.5", "--no-materials"))
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), cfg.Scale)
	assert.False(t, cfg.TrackMaterials)
}

func TestMakeConfigErrors(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		name string
		src  string
	}{
		{name: "Unknown key", src: "Colour = 1\n"},
		{name: "Wrong type", src: "Scale = \"big\"\n"},
		{name: "Bad highlight", src: "[Render]\nHighlight = \"yellow\"\n"},
	}

	for i, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, string(rune('a'+i))+".toml")
			require.NoError(t, os.WriteFile(path, []byte(tc.src), 0o644))
			_, err := makeConfig(cliContext(t, "--config", path))
			assert.Error(t, err)
		})
	}

	_, err := makeConfig(cliContext(t, "--config", filepath.Join(dir, "missing.toml")))
	assert.Error(t, err)
}

func TestWriteConfigRoundTrip(t *testing.T) {
	cfg := defaultConfig()
	cfg.Render.Ambient = 0.4
	var buf bytes.Buffer
	require.NoError(t, writeConfig(&buf, cfg))

	var back Config
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, cfg, back)
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#ff8001")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, G: 128, B: 1, A: 255}, c)

	_, err = parseHexColor("ff8001")
	assert.Error(t, err)
}
