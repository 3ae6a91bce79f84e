package collection

import (
	"iter"
	"path/filepath"
	"strings"

	"github.com/GriffinCanCode/filekit/internal/entity"
)

// Predicate decides whether a file record is selected.
type Predicate func(*entity.File) bool

// Collection is an ordered-unique set of file records keyed by absolute path.
//
// Iteration follows insertion order unless an explicit order was established
// by SortBy. Any Add or Remove invalidates the explicit order, forcing the
// caller to re-sort.
type Collection struct {
	paths []string
	files map[string]*entity.File

	// order is the explicit iteration permutation from the last SortBy,
	// nil when no sort is in effect.
	order []string
}

// New returns an empty collection.
func New() *Collection {
	return &Collection{files: make(map[string]*entity.File)}
}

// Len reports how many files the collection holds.
func (c *Collection) Len() int {
	return len(c.files)
}

// add inserts a record known to be absent. Internal fast path for factories.
func (c *Collection) add(f *entity.File) {
	c.files[f.AbsPath] = f
	c.paths = append(c.paths, f.AbsPath)
}

// Add inserts a file record. Re-adding a path already present is a no-op;
// the return value reports whether the record was actually inserted.
func (c *Collection) Add(f *entity.File) bool {
	if f == nil {
		return false
	}
	if _, ok := c.files[f.AbsPath]; ok {
		return false
	}
	c.add(f)
	c.order = nil
	return true
}

// AddPath resolves path to a file record at the given tier and inserts it.
func (c *Collection) AddPath(path string, tier entity.Tier) (bool, error) {
	f, err := entity.NewFile(path, tier)
	if err != nil {
		return false, err
	}
	return c.Add(f), nil
}

// Remove deletes the record for path. Removing an absent path is a no-op;
// the return value reports whether anything was removed.
func (c *Collection) Remove(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	if _, ok := c.files[abs]; !ok {
		return false
	}
	delete(c.files, abs)
	for i, p := range c.paths {
		if p == abs {
			c.paths = append(c.paths[:i], c.paths[i+1:]...)
			break
		}
	}
	c.order = nil
	return true
}

// RemoveFile deletes the record matching f's absolute path.
func (c *Collection) RemoveFile(f *entity.File) bool {
	if f == nil {
		return false
	}
	return c.Remove(f.AbsPath)
}

// Contains reports whether path, normalized to absolute, is in the collection.
func (c *Collection) Contains(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	_, ok := c.files[abs]
	return ok
}

// ContainsFile reports whether f's absolute path is in the collection.
func (c *Collection) ContainsFile(f *entity.File) bool {
	if f == nil {
		return false
	}
	_, ok := c.files[f.AbsPath]
	return ok
}

// Get returns the record for path, normalized to absolute.
func (c *Collection) Get(path string) (*entity.File, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, false
	}
	f, ok := c.files[abs]
	return f, ok
}

// iterOrder picks the explicit order if one is set, else insertion order.
func (c *Collection) iterOrder() []string {
	if c.order != nil {
		return c.order
	}
	return c.paths
}

// Paths iterates the collection's absolute paths. The sequence is lazy and
// restartable: each restart re-reads the current container state.
func (c *Collection) Paths() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, p := range c.iterOrder() {
			if _, ok := c.files[p]; !ok {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Files iterates the collection's records in the same order as Paths.
func (c *Collection) Files() iter.Seq[*entity.File] {
	return func(yield func(*entity.File) bool) {
		for _, p := range c.iterOrder() {
			f, ok := c.files[p]
			if !ok {
				continue
			}
			if !yield(f) {
				return
			}
		}
	}
}

// PathList returns the iteration order as a fresh slice.
func (c *Collection) PathList() []string {
	out := make([]string, 0, len(c.files))
	for p := range c.Paths() {
		out = append(out, p)
	}
	return out
}

// Clone returns a deep copy: every record is copied, never shared.
func (c *Collection) Clone() *Collection {
	out := New()
	for _, p := range c.paths {
		out.add(c.files[p].Clone())
	}
	if c.order != nil {
		out.order = append([]string(nil), c.order...)
	}
	return out
}

// Select returns a new collection holding the records matching pred.
// The records themselves are shared with the receiver, not copied.
func (c *Collection) Select(pred Predicate) *Collection {
	out := New()
	for f := range c.Files() {
		if pred(f) {
			out.add(f)
		}
	}
	return out
}

// Partition splits the current contents into matching and non-matching
// collections; every record lands in exactly one of the two.
func (c *Collection) Partition(pred Predicate) (matching, rest *Collection) {
	matching, rest = New(), New()
	for f := range c.Files() {
		if pred(f) {
			matching.add(f)
		} else {
			rest.add(f)
		}
	}
	return matching, rest
}

// String renders the collection as one path per line.
func (c *Collection) String() string {
	if len(c.files) == 0 {
		return "*** empty collection ***"
	}
	var b strings.Builder
	b.WriteString("*** file collection ***")
	for p := range c.Paths() {
		b.WriteByte('\n')
		b.WriteString(p)
	}
	return b.String()
}
