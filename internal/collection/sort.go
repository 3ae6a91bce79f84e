package collection

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/GriffinCanCode/filekit/internal/entity"
)

// ErrNotSortable reports a sort attribute the collection does not know.
var ErrNotSortable = errors.New("not a sortable attribute " +
	"(want abspath, dirname, basename, fname, ext, size_on_disk, atime, ctime or mtime)")

// compareFunc maps a sortable attribute name to a record comparison.
func compareFunc(attr string) (func(a, b *entity.File) int, error) {
	switch attr {
	case "abspath":
		return func(a, b *entity.File) int { return strings.Compare(a.AbsPath, b.AbsPath) }, nil
	case "dirname":
		return func(a, b *entity.File) int { return strings.Compare(a.Dir, b.Dir) }, nil
	case "basename":
		return func(a, b *entity.File) int { return strings.Compare(a.Base, b.Base) }, nil
	case "fname":
		return func(a, b *entity.File) int { return strings.Compare(a.Name, b.Name) }, nil
	case "ext":
		return func(a, b *entity.File) int { return strings.Compare(a.Ext, b.Ext) }, nil
	case "size_on_disk":
		return func(a, b *entity.File) int { return cmp.Compare(a.Size, b.Size) }, nil
	case "atime":
		return func(a, b *entity.File) int { return a.ATime.Compare(b.ATime) }, nil
	case "ctime":
		return func(a, b *entity.File) int { return a.CTime.Compare(b.CTime) }, nil
	case "mtime":
		return func(a, b *entity.File) int { return a.MTime.Compare(b.MTime) }, nil
	default:
		return nil, fmt.Errorf("%q: %w", attr, ErrNotSortable)
	}
}

// SortBy establishes an explicit iteration order over the current paths by
// the named attribute. An unknown attribute fails with ErrNotSortable and
// leaves any prior explicit order unchanged. The order is an overlay over
// the unchanged insertion order and is dropped by the next Add or Remove.
func (c *Collection) SortBy(attr string, reverse bool) error {
	compare, err := compareFunc(attr)
	if err != nil {
		return err
	}

	order := append([]string(nil), c.paths...)
	slices.SortStableFunc(order, func(pa, pb string) int {
		r := compare(c.files[pa], c.files[pb])
		if reverse {
			return -r
		}
		return r
	})
	c.order = order
	return nil
}
