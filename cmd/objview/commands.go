package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/smasonuk/gosiemesh"
	"github.com/urfave/cli/v2"
)

func statsCommand(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	res, err := loadModel(ctx, cfg)
	if err != nil {
		return err
	}
	groups := res.Partition()
	return writeStats(ctx.App.Writer, res, groups)
}

func writeStats(w io.Writer, res *gosiemesh.Result, groups map[string][]gosiemesh.MaterialGroup) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OBJECT\tVERTICES\tTRIANGLES\tGROUPS\tEXTENTS")
	for _, m := range res.Models.Meshes() {
		ext := m.Extents()
		name := m.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.3g x %.3g x %.3g\n",
			name, m.VertexCount(), m.TriangleCount(), len(groups[m.Name]), ext[0], ext[1], ext[2])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d materials, %d diagnostics\n", res.Materials.Len(), len(res.Diagnostics))
	for _, d := range res.Diagnostics {
		fmt.Fprintf(w, "  %v\n", d)
	}
	return nil
}

func exportCommand(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	res, err := loadModel(ctx, cfg)
	if err != nil {
		return err
	}
	if res.Models.Len() == 0 {
		return fmt.Errorf("%s holds no objects", ctx.Args().First())
	}

	m := res.Models.At(0)
	if ctx.IsSet(objectFlag.Name) {
		var ok bool
		if m, ok = res.Models.Get(ctx.String(objectFlag.Name)); !ok {
			return fmt.Errorf("no object named %q", ctx.String(objectFlag.Name))
		}
	}

	w := ctx.App.Writer
	if out := ctx.String(outFlag.Name); out != "-" {
		file, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("could not create %s: %w", out, err)
		}
		defer file.Close()
		w = file
	}

	switch format := ctx.String(formatFlag.Name); format {
	case "ply":
		return gosiemesh.WritePLY(w, m, res.Materials)
	case "dxf":
		return gosiemesh.WriteDXF(w, m)
	default:
		return fmt.Errorf("unknown format %q, want ply or dxf", format)
	}
}
