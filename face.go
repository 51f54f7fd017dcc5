package gosiemesh

import (
	"fmt"
	"strconv"
	"strings"
)

// OptIndex is a 0-based pool index that may be absent. Absence is tagged
// so it never collides with index 0.
type OptIndex struct {
	Index int
	Valid bool
}

func someIndex(i int) OptIndex {
	return OptIndex{Index: i, Valid: true}
}

// VertexKey identifies one polygon corner's attributes: a position
// reference plus optional uv and normal references.
type VertexKey struct {
	Pos    int
	UV     OptIndex
	Normal OptIndex
}

// FaceRecord is one polygon as read from the file, before triangulation.
type FaceRecord struct {
	Corners  []VertexKey
	Material string
	Line     int
}

func NewFaceRecord(corners []VertexKey, material string, line int) *FaceRecord {
	return &FaceRecord{
		Corners:  corners,
		Material: material,
		Line:     line,
	}
}

// parseCorner parses one face token of the form p[/t][/n] into 0-based
// file-global indices.
func parseCorner(token string) (VertexKey, error) {
	parts := strings.Split(token, "/")
	if len(parts) > 3 {
		return VertexKey{}, fmt.Errorf("too many components in '%s'", token)
	}

	var key VertexKey
	pos, err := parseRef(parts[0])
	if err != nil {
		return VertexKey{}, fmt.Errorf("position of '%s': %w", token, err)
	}
	if !pos.Valid {
		return VertexKey{}, fmt.Errorf("missing position in '%s'", token)
	}
	key.Pos = pos.Index

	if len(parts) > 1 {
		if key.UV, err = parseRef(parts[1]); err != nil {
			return VertexKey{}, fmt.Errorf("uv of '%s': %w", token, err)
		}
	}
	if len(parts) > 2 {
		if key.Normal, err = parseRef(parts[2]); err != nil {
			return VertexKey{}, fmt.Errorf("normal of '%s': %w", token, err)
		}
	}
	return key, nil
}

// parseRef converts a 1-based reference to 0-based. An empty component is
// absent; zero and negative references are not supported.
func parseRef(s string) (OptIndex, error) {
	if s == "" {
		return OptIndex{}, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return OptIndex{}, fmt.Errorf("could not parse index '%s'", s)
	}
	if v <= 0 {
		return OptIndex{}, fmt.Errorf("index %d is not a positive 1-based reference", v)
	}
	return someIndex(v - 1), nil
}

// rebase converts file-global indices to indices into the local pools of
// the sub-object being finalized. The whole face is read one way: first
// with the offsets subtracted, then, if that leaves any corner outside the
// pools, as already local, for files that restart numbering at each "o".
// The error of the global reading is returned when neither fits.
func (f *FaceRecord) rebase(off offsets, nPos, nUV, nNorm int) ([]VertexKey, error) {
	local, err := f.shift(off, nPos, nUV, nNorm)
	if err == nil || off == (offsets{}) {
		return local, err
	}
	if relative, relErr := f.shift(offsets{}, nPos, nUV, nNorm); relErr == nil {
		return relative, nil
	}
	return nil, err
}

// shift subtracts off from every corner and checks the results against
// the pool sizes.
func (f *FaceRecord) shift(off offsets, nPos, nUV, nNorm int) ([]VertexKey, error) {
	local := make([]VertexKey, len(f.Corners))
	for i, c := range f.Corners {
		pos, ok := localIndex(c.Pos, off.pos, nPos)
		if !ok {
			return nil, fmt.Errorf("position %d outside local pool of %d", c.Pos+1, nPos)
		}
		k := VertexKey{Pos: pos}
		if c.UV.Valid {
			uv, ok := localIndex(c.UV.Index, off.uv, nUV)
			if !ok {
				return nil, fmt.Errorf("uv %d outside local pool of %d", c.UV.Index+1, nUV)
			}
			k.UV = someIndex(uv)
		}
		if c.Normal.Valid {
			n, ok := localIndex(c.Normal.Index, off.norm, nNorm)
			if !ok {
				return nil, fmt.Errorf("normal %d outside local pool of %d", c.Normal.Index+1, nNorm)
			}
			k.Normal = someIndex(n)
		}
		local[i] = k
	}
	return local, nil
}

func localIndex(global, offset, size int) (int, bool) {
	local := global - offset
	return local, local >= 0 && local < size
}
