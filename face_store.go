package gosiemesh

// FaceStore holds the faces read for the sub-object currently accumulating.
type FaceStore struct {
	faces []*FaceRecord
}

func NewFaceStore() *FaceStore {
	return &FaceStore{faces: make([]*FaceRecord, 0, 10)}
}
func (fs *FaceStore) AddFace(f *FaceRecord) {
	fs.faces = append(fs.faces, f)
}
func (fs *FaceStore) GetFace(i int) *FaceRecord {
	return fs.faces[i]
}
func (fs *FaceStore) FaceCount() int {
	return len(fs.faces)
}

// Reset empties the store for the next sub-object.
func (fs *FaceStore) Reset() {
	fs.faces = fs.faces[:0]
}
