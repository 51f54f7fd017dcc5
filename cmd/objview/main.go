// Command objview inspects, converts and displays Wavefront OBJ models.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/smasonuk/gosiemesh"
	"github.com/urfave/cli/v2"
)

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	scaleFlag = &cli.Float64Flag{
		Name:  "scale",
		Usage: "uniform scale applied to vertex positions",
		Value: 1,
	}
	mtlFlag = &cli.StringFlag{
		Name:  "mtl",
		Usage: "material library to use instead of the one named by the OBJ file",
	}
	noMaterialsFlag = &cli.BoolFlag{
		Name:  "no-materials",
		Usage: "skip the material library and per-face material tracking",
	}
	verbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "log level (panic, fatal, error, warn, info, debug, trace)",
		Value: "warn",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "output format: ply or dxf",
		Value: "ply",
	}
	objectFlag = &cli.StringFlag{
		Name:  "object",
		Usage: "name of the object to export (default: the first one)",
	}
	outFlag = &cli.StringFlag{
		Name:  "out",
		Usage: "output file, - for stdout",
		Value: "-",
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "objview",
		Usage: "inspect, convert and display Wavefront OBJ models",
		Flags: []cli.Flag{
			configFlag,
			scaleFlag,
			mtlFlag,
			noMaterialsFlag,
			verbosityFlag,
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			{
				Name:      "stats",
				Usage:     "Print per object vertex, triangle and material counts",
				ArgsUsage: "<file.obj>",
				Action:    statsCommand,
			},
			{
				Name:      "export",
				Usage:     "Write one object as PLY or DXF",
				ArgsUsage: "<file.obj>",
				Flags:     []cli.Flag{formatFlag, objectFlag, outFlag},
				Action:    exportCommand,
			},
			{
				Name:      "view",
				Usage:     "Open an interactive viewer window",
				ArgsUsage: "<file.obj>",
				Action:    viewCommand,
			},
			{
				Name:   "dumpconfig",
				Usage:  "Show configuration values",
				Action: dumpConfig,
			},
		},
	}
}

func setupLogging(ctx *cli.Context) error {
	level, err := logrus.ParseLevel(ctx.String(verbosityFlag.Name))
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	logrus.SetOutput(ctx.App.ErrWriter)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}

// loadModel loads the OBJ named by the first argument the way the global
// flags ask for.
func loadModel(ctx *cli.Context, cfg Config) (*gosiemesh.Result, error) {
	path := ctx.Args().First()
	if path == "" {
		return nil, fmt.Errorf("missing OBJ file argument")
	}
	opts := []gosiemesh.Option{
		gosiemesh.WithLogger(logrus.StandardLogger()),
		gosiemesh.WithMaterialTracking(cfg.TrackMaterials),
	}

	switch {
	case !cfg.TrackMaterials:
		return gosiemesh.Load(ctx.Context, gosiemesh.FileSource(path), nil, cfg.Scale, opts...)
	case ctx.IsSet(mtlFlag.Name):
		return gosiemesh.Load(ctx.Context, gosiemesh.FileSource(path),
			gosiemesh.FileSource(ctx.String(mtlFlag.Name)), cfg.Scale, opts...)
	default:
		return gosiemesh.LoadFile(ctx.Context, path, cfg.Scale, opts...)
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
