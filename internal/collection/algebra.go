package collection

import "errors"

// ErrTypeMismatch reports a nil collection handed to a set operation.
var ErrTypeMismatch = errors.New("operand is not a collection")

// Union returns a new collection with every record of c plus any record of
// other whose path is not already present; c wins on path collision. The
// result is a deep copy sharing no records with either input.
func (c *Collection) Union(other *Collection) (*Collection, error) {
	if other == nil {
		return nil, ErrTypeMismatch
	}
	out := c.Clone()
	out.order = nil
	for f := range other.Files() {
		if _, ok := out.files[f.AbsPath]; !ok {
			out.add(f.Clone())
		}
	}
	return out, nil
}

// Diff returns a deep copy of c with every path present in other removed.
func (c *Collection) Diff(other *Collection) (*Collection, error) {
	if other == nil {
		return nil, ErrTypeMismatch
	}
	out := c.Clone()
	out.order = nil
	for p := range other.Paths() {
		out.Remove(p)
	}
	return out, nil
}

// Sum folds Union across collections in order, first-seen wins on path
// collision. The result is independent of every input.
func Sum(collections ...*Collection) (*Collection, error) {
	out := New()
	for _, c := range collections {
		if c == nil {
			return nil, ErrTypeMismatch
		}
		for f := range c.Files() {
			if _, ok := out.files[f.AbsPath]; !ok {
				out.add(f.Clone())
			}
		}
	}
	return out, nil
}
