package gosiemesh

import "github.com/sirupsen/logrus"

// flush is the transition into Finalizing: it finishes the open mesh,
// advances the offsets past its pools and clears them. Flushing with no
// open mesh does nothing.
func (a *accumulator) flush() {
	if a.state != stateAccumulating {
		return
	}
	a.state = stateFinalizing
	a.finalize(a.current)
	a.off = a.off.advance(len(a.positions), len(a.uvs), len(a.normals))

	a.positions = a.positions[:0]
	a.uvs = a.uvs[:0]
	a.normals = a.normals[:0]
	a.faces.Reset()
	a.current = nil
}

// finalize rebases the faces gathered for m, deduplicates them into m and
// synthesizes any normals the source left out.
func (a *accumulator) finalize(m *Mesh) {
	b := newMeshBuilder(m, a.positions, a.uvs, a.normals, a.opts.trackMaterials)

	for i := 0; i < a.faces.FaceCount(); i++ {
		face := a.faces.GetFace(i)
		local, err := face.rebase(a.off, len(a.positions), len(a.uvs), len(a.normals))
		if err != nil {
			a.rep.report(ErrMalformedReference, face.Line, m.Name, "%v; face skipped", err)
			continue
		}
		b.AddFace(local, face.Material)
	}

	if degenerate := fillNormals(m, b.missingNrm); degenerate > 0 {
		a.rep.report(ErrDegenerateGeometry, 0, m.Name,
			"%d vertices touch only zero-area triangles; using zero normals", degenerate)
	}

	a.opts.log.WithFields(logrus.Fields{
		"object":      m.Name,
		"vertices":    m.VertexCount(),
		"triangles":   m.TriangleCount(),
		"synthesized": len(b.missingNrm),
	}).Debug("Finished mesh")
}
