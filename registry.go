package gosiemesh

import "cogentcore.org/core/ordmap"

// Registry maps sub-object names to their finished meshes in the order the
// names first appeared. Re-using a name replaces the earlier mesh in place.
type Registry struct {
	meshes *ordmap.Map[string, *Mesh]
}

func NewRegistry() *Registry {
	return &Registry{meshes: ordmap.New[string, *Mesh]()}
}

// Add registers m under its name.
func (r *Registry) Add(m *Mesh) {
	r.meshes.Add(m.Name, m)
}

// Remove drops the mesh registered under name, reporting whether it was
// present.
func (r *Registry) Remove(name string) bool {
	return r.meshes.DeleteKey(name)
}

// Get returns the mesh registered under name.
func (r *Registry) Get(name string) (*Mesh, bool) {
	return r.meshes.ValueByKeyTry(name)
}

func (r *Registry) Len() int {
	return r.meshes.Len()
}

// Names returns the registered names in order.
func (r *Registry) Names() []string {
	return r.meshes.Keys()
}

// Meshes returns the registered meshes in order.
func (r *Registry) Meshes() []*Mesh {
	return r.meshes.Values()
}

// At returns the i'th mesh in registration order.
func (r *Registry) At(i int) *Mesh {
	return r.meshes.ValueByIndex(i)
}
