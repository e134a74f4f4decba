package lexicon

// DirLoader builds lexicons from the built-in tables plus the overlay files in
// Dir. It satisfies the service's LexiconLoader contract.
type DirLoader struct {
	dir string
}

// NewDirLoader creates a loader for the given overlay directory; an empty dir
// means built-in tables only.
func NewDirLoader(dir string) *DirLoader {
	return &DirLoader{dir: dir}
}

// Load builds a fresh Lexicon.
func (l *DirLoader) Load() (*Lexicon, error) {
	return Load(l.dir)
}
