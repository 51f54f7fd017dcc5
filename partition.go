package gosiemesh

// MaterialGroup is the subset of a mesh's triangles that share a material.
// Material is nil when the name has no record in the table.
type MaterialGroup struct {
	Name     string
	Indices  []uint32
	Material *MaterialRecord
}

func (g *MaterialGroup) TriangleCount() int {
	return len(g.Indices) / 3
}

// Partition splits m's triangles by material name. Groups appear in the
// order their name is first used and keep their triangles in mesh order.
// A mesh loaded without material tracking yields one unnamed group.
// Names missing from table are reported and their group has no Material.
func Partition(m *Mesh, table *MaterialTable, opts ...Option) ([]MaterialGroup, []*Diagnostic) {
	o := buildOptions(opts)
	rep := &reporter{source: o.sourceName, log: o.log}
	return partition(m, table, rep), rep.diags
}

// PartitionAll partitions every mesh of reg, keyed by mesh name.
func PartitionAll(reg *Registry, table *MaterialTable, opts ...Option) (map[string][]MaterialGroup, []*Diagnostic) {
	o := buildOptions(opts)
	rep := &reporter{source: o.sourceName, log: o.log}
	out := make(map[string][]MaterialGroup, reg.Len())
	for _, m := range reg.Meshes() {
		out[m.Name] = partition(m, table, rep)
	}
	return out, rep.diags
}

func partition(m *Mesh, table *MaterialTable, rep *reporter) []MaterialGroup {
	if m.FaceMaterials == nil {
		if m.TriangleCount() == 0 {
			return nil
		}
		g := MaterialGroup{Indices: append([]uint32(nil), m.Indices...)}
		g.Material, _ = table.Lookup("")
		return []MaterialGroup{g}
	}

	var groups []MaterialGroup
	slot := make(map[string]int)
	for t := 0; t < m.TriangleCount(); t++ {
		name := m.FaceMaterials[t]
		i, ok := slot[name]
		if !ok {
			rec, found := table.Lookup(name)
			// untagged faces never named a material
			if !found && name != "" {
				rep.report(ErrMissingMaterial, 0, m.Name, "no material named %q", name)
			}
			i = len(groups)
			slot[name] = i
			groups = append(groups, MaterialGroup{Name: name, Material: rec})
		}
		tri := m.Triangle(t)
		groups[i].Indices = append(groups[i].Indices, tri[0], tri[1], tri[2])
	}
	return groups
}
