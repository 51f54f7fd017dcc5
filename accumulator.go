package gosiemesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// offsets are the cumulative pool sizes of every sub-object finalized so
// far. Subtracting them turns file-global references into local ones.
type offsets struct {
	pos, uv, norm int
}

func (o offsets) advance(nPos, nUV, nNorm int) offsets {
	return offsets{pos: o.pos + nPos, uv: o.uv + nUV, norm: o.norm + nNorm}
}

type parserState int

const (
	// stateFinalizing holds between a flush and the next mesh: there is no
	// open mesh and the pools are empty.
	stateFinalizing parserState = iota
	// stateAccumulating holds while a mesh is open and receiving lines.
	stateAccumulating
)

// accumulator gathers the raw pools and faces of the current sub-object
// and drives the Accumulating/Finalizing state machine.
type accumulator struct {
	opts     *options
	rep      *reporter
	scale    float32
	registry *Registry

	state      parserState
	current    *Mesh
	implicit   bool
	off        offsets
	material   string
	matlib     string
	directives int
	ignored    map[string]bool

	positions []mgl32.Vec3
	uvs       []mgl32.Vec2
	normals   []mgl32.Vec3
	faces     *FaceStore
}

func newAccumulator(scale float32, opts *options, rep *reporter) *accumulator {
	return &accumulator{
		opts:     opts,
		rep:      rep,
		scale:    scale,
		registry: NewRegistry(),
		state:    stateFinalizing,
		faces:    NewFaceStore(),
		ignored:  make(map[string]bool),
	}
}

func (a *accumulator) objectName() string {
	if a.state != stateAccumulating {
		return ""
	}
	return a.current.Name
}

// handleLine dispatches one tokenized line.
func (a *accumulator) handleLine(lineNo int, fields []string) {
	switch fields[0] {
	case "o":
		a.directives++
		a.startObject(joinName(fields[1:]))
	case "v":
		a.directives++
		a.addPosition(lineNo, fields[1:])
	case "vn":
		a.directives++
		a.addNormal(lineNo, fields[1:])
	case "vt":
		a.directives++
		a.addUV(lineNo, fields[1:])
	case "usemtl":
		a.ensureMesh()
		a.material = joinName(fields[1:])
	case "f":
		a.directives++
		a.addFace(lineNo, fields[1:])
	case "mtllib":
		a.matlib = joinName(fields[1:])
	default:
		if !a.ignored[fields[0]] {
			a.ignored[fields[0]] = true
			a.opts.log.WithField("directive", fields[0]).Debug("Ignoring unsupported directive")
		}
	}
}

// ensureMesh starts the implicit unnamed mesh when geometry arrives before
// any "o" marker.
func (a *accumulator) ensureMesh() {
	if a.state != stateAccumulating {
		a.startMesh("")
		a.implicit = true
	}
}

// startObject closes the open mesh and opens name. An implicit mesh that
// never received a face only held pool entries or a usemtl, so it is not
// kept as a model.
func (a *accumulator) startObject(name string) {
	placeholder := a.state == stateAccumulating && a.implicit && a.faces.FaceCount() == 0
	a.flush()
	if placeholder {
		a.registry.Remove("")
	}
	a.startMesh(name)
}

func (a *accumulator) startMesh(name string) {
	a.current = NewMesh(name)
	a.registry.Add(a.current)
	a.material = ""
	a.implicit = false
	a.state = stateAccumulating
}

func (a *accumulator) addPosition(lineNo int, fields []string) {
	a.ensureMesh()
	vals := a.floats(lineNo, "v", fields, 3)
	p := mgl32.Vec3{vals[0], vals[1], vals[2]}.Mul(a.scale)
	a.positions = append(a.positions, p)
}

func (a *accumulator) addNormal(lineNo int, fields []string) {
	a.ensureMesh()
	vals := a.floats(lineNo, "vn", fields, 3)
	a.normals = append(a.normals, mgl32.Vec3{vals[0], vals[1], vals[2]})
}

func (a *accumulator) addUV(lineNo int, fields []string) {
	a.ensureMesh()
	vals := a.floats(lineNo, "vt", fields, 1)
	a.uvs = append(a.uvs, mgl32.Vec2{vals[0], vals[1]})
}

// floats parses up to 3 leading numbers, requiring at least min of them,
// and pads the rest with zeros. A bad line is reported and still yields a
// zero entry so later references into the pool keep their positions.
func (a *accumulator) floats(lineNo int, directive string, fields []string, min int) [3]float32 {
	var out [3]float32
	if len(fields) < min {
		a.rep.report(ErrMalformedDirective, lineNo, a.objectName(),
			"'%s' needs at least %d values, got %d", directive, min, len(fields))
		return out
	}
	if len(fields) > 3 {
		fields = fields[:3]
	}
	vals, err := parseFloats(fields)
	if err != nil {
		a.rep.report(ErrMalformedDirective, lineNo, a.objectName(), "'%s': %v", directive, err)
		return out
	}
	copy(out[:], vals)
	return out
}

func (a *accumulator) addFace(lineNo int, fields []string) {
	a.ensureMesh()
	if len(fields) < 3 {
		a.rep.report(ErrMalformedDirective, lineNo, a.objectName(),
			"face needs at least 3 corners, got %d", len(fields))
		return
	}
	corners := make([]VertexKey, len(fields))
	for i, token := range fields {
		key, err := parseCorner(token)
		if err != nil {
			a.rep.report(ErrMalformedReference, lineNo, a.objectName(), "%v; face skipped", err)
			return
		}
		corners[i] = key
	}
	a.faces.AddFace(NewFaceRecord(corners, a.material, lineNo))
}
