package gosiemesh

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Source yields the raw text of one mesh or material file.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	String() string
}

type fileSource struct {
	path string
}

// FileSource reads from a path on the local file system.
func FileSource(path string) Source {
	return fileSource{path: path}
}

func (s fileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("could not open file %s: %w", s.path, err)
	}
	return file, nil
}

func (s fileSource) String() string { return s.path }

type fsSource struct {
	fsys fs.FS
	name string
}

// FSSource reads name from fsys, for example an embed.FS.
func FSSource(fsys fs.FS, name string) Source {
	return fsSource{fsys: fsys, name: name}
}

func (s fsSource) Open(ctx context.Context) (io.ReadCloser, error) {
	file, err := s.fsys.Open(s.name)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", s.name, err)
	}
	return file, nil
}

func (s fsSource) String() string { return s.name }

type urlSource struct {
	url    string
	client *http.Client
}

// URLSource fetches url with client, or http.DefaultClient when nil.
func URLSource(url string, client *http.Client) Source {
	if client == nil {
		client = http.DefaultClient
	}
	return urlSource{url: url, client: client}
}

func (s urlSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("could not build request for %s: %w", s.url, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not fetch %s: %w", s.url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("could not fetch %s: %s", s.url, resp.Status)
	}
	return resp.Body, nil
}

func (s urlSource) String() string { return s.url }

type bytesSource struct {
	name string
	data []byte
}

// BytesSource serves data already in memory under name.
func BytesSource(name string, data []byte) Source {
	return bytesSource{name: name, data: data}
}

func (s bytesSource) Open(ctx context.Context) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.data)), nil
}

func (s bytesSource) String() string { return s.name }

// Result is everything one Load produced.
type Result struct {
	Models      *Registry
	Materials   *MaterialTable
	MaterialLib string
	Diagnostics []*Diagnostic
}

// Partition splits every loaded mesh by material using the loaded table.
func (r *Result) Partition(opts ...Option) map[string][]MaterialGroup {
	groups, diags := PartitionAll(r.Models, r.Materials, opts...)
	r.Diagnostics = append(r.Diagnostics, diags...)
	return groups
}

// fetch reads src fully so parsing never waits on I/O.
func fetch(ctx context.Context, src Source) ([]byte, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", src, err)
	}
	return data, nil
}

// Load fetches the mesh and material sources concurrently and parses them.
// material may be nil, which yields an empty material table. Only fetch
// failures and a mesh source without geometry fail the load; everything
// else ends up in Result.Diagnostics.
func Load(ctx context.Context, mesh, material Source, scale float32, opts ...Option) (*Result, error) {
	var meshData, materialData []byte

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		meshData, err = fetch(gctx, mesh)
		return err
	})
	if material != nil {
		g.Go(func() error {
			var err error
			materialData, err = fetch(gctx, material)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading %s: %w", mesh, err)
	}

	return parseSources(mesh.String(), meshData, material, materialData, scale, opts)
}

func parseSources(meshName string, meshData []byte, material Source, materialData []byte, scale float32, opts []Option) (*Result, error) {
	models, matlib, diags, err := ParseMeshes(bytes.NewReader(meshData), scale,
		append(opts, withSourceName(meshName))...)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", meshName, err)
	}
	res := &Result{
		Models:      models,
		Materials:   NewMaterialTable(),
		MaterialLib: matlib,
		Diagnostics: diags,
	}

	if material != nil {
		table, mdiags, err := ParseMaterials(bytes.NewReader(materialData),
			append(opts, withSourceName(material.String()))...)
		res.Diagnostics = append(res.Diagnostics, mdiags...)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", material, err)
		}
		res.Materials = table
	}

	buildOptions(opts).log.WithFields(logrus.Fields{
		"source":      meshName,
		"meshes":      res.Models.Len(),
		"materials":   res.Materials.Len(),
		"diagnostics": len(res.Diagnostics),
	}).Info("Loaded model")
	return res, nil
}

// LoadFile loads an OBJ file and its material library. The library named
// by the file's mtllib directive is used when present, otherwise the path
// with its .obj suffix replaced by .mtl. A missing library is logged and
// the meshes load without materials.
func LoadFile(ctx context.Context, objPath string, scale float32, opts ...Option) (*Result, error) {
	meshData, err := fetch(ctx, FileSource(objPath))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", objPath, err)
	}

	mtlPath := materialPath(objPath, mtllibOf(meshData))
	var material Source
	materialData, err := fetch(ctx, FileSource(mtlPath))
	switch {
	case err == nil:
		material = FileSource(mtlPath)
	case errors.Is(err, fs.ErrNotExist):
		buildOptions(opts).log.WithField("path", mtlPath).Warn("No material library found")
	default:
		return nil, fmt.Errorf("loading %s: %w", objPath, err)
	}

	return parseSources(objPath, meshData, material, materialData, scale, opts)
}

// mtllibOf finds the last mtllib directive without a full parse.
func mtllibOf(data []byte) string {
	name := ""
	_ = scanLines(bytes.NewReader(data), func(_ int, fields []string) {
		if fields[0] == "mtllib" && len(fields) > 1 {
			name = joinName(fields[1:])
		}
	})
	return name
}

func materialPath(objPath, mtllib string) string {
	if mtllib != "" {
		if filepath.IsAbs(mtllib) {
			return mtllib
		}
		return filepath.Join(filepath.Dir(objPath), mtllib)
	}
	return strings.TrimSuffix(objPath, filepath.Ext(objPath)) + ".mtl"
}
