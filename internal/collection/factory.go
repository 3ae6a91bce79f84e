package collection

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"

	"github.com/GriffinCanCode/filekit/internal/entity"
)

// DefaultMaxSize caps size-range selection at just under 1 TiB.
const DefaultMaxSize int64 = 1<<40 - 1

// Options configures tree-walk factories.
type Options struct {
	// Tier used when building file records; TierRegular when zero.
	Tier entity.Tier
}

func (o Options) tier() entity.Tier {
	if o.Tier == 0 {
		return entity.TierRegular
	}
	return o.Tier
}

// walkConfig returns the traversal configuration shared by every factory:
// no symlink following, a single worker so discovery order is the
// depth-first directory-entry order within one run.
func walkConfig() *fastwalk.Config {
	return &fastwalk.Config{Follow: false, NumWorkers: 1, Sort: fastwalk.SortLexical}
}

// dedupeRoots normalizes roots to absolute paths and drops repeats,
// preserving first-seen order.
func dedupeRoots(roots []string) ([]string, error) {
	seen := make(map[string]struct{}, len(roots))
	out := make([]string, 0, len(roots))
	for _, root := range roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", root, err)
		}
		if _, ok := seen[abs]; ok {
			continue
		}
		seen[abs] = struct{}{}
		out = append(out, abs)
	}
	return out, nil
}

// walkFiles calls fn with the path of every regular file under root.
// A file that errors or vanishes mid-walk is skipped, not fatal; a root that
// is not a directory fails with ErrNotADirectory.
func walkFiles(root string, fn func(path string) error) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%q: %w", root, entity.ErrNotADirectory)
	}

	err = fastwalk.Walk(walkConfig(), root, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		return fn(p)
	})
	if err != nil {
		return fmt.Errorf("walk %q: %w", root, err)
	}
	return nil
}

// collect walks every root and adds records passing keep (nil keeps all).
func collect(c *Collection, opts Options, keep Predicate, roots []string) error {
	deduped, err := dedupeRoots(roots)
	if err != nil {
		return err
	}
	for _, root := range deduped {
		err := walkFiles(root, func(p string) error {
			f, err := entity.NewFile(p, opts.tier())
			if err != nil {
				// vanished between discovery and stat, skip it
				return nil
			}
			if keep != nil && !keep(f) {
				return nil
			}
			if _, ok := c.files[f.AbsPath]; !ok {
				c.add(f)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// FromPaths wraps existing file paths as a collection. Input paths are
// deduplicated; each must resolve to an existing regular file.
func FromPaths(opts Options, paths ...string) (*Collection, error) {
	deduped, err := dedupeRoots(paths)
	if err != nil {
		return nil, err
	}
	c := New()
	for _, p := range deduped {
		f, err := entity.NewFile(p, opts.tier())
		if err != nil {
			return nil, err
		}
		if _, ok := c.files[f.AbsPath]; !ok {
			c.add(f)
		}
	}
	return c, nil
}

// FromFiles wraps already-built records as a collection, first-seen wins.
func FromFiles(files ...*entity.File) *Collection {
	c := New()
	for _, f := range files {
		if f == nil {
			continue
		}
		if _, ok := c.files[f.AbsPath]; !ok {
			c.add(f)
		}
	}
	return c
}

// FromTrees discovers every regular file under each root. Duplicates across
// roots collapse to one entry, first-seen wins.
func FromTrees(opts Options, roots ...string) (*Collection, error) {
	c := New()
	if err := collect(c, opts, nil, roots); err != nil {
		return nil, err
	}
	return c, nil
}

// FromTreesFunc discovers files under each root and keeps those matching pred.
func FromTreesFunc(opts Options, pred Predicate, roots ...string) (*Collection, error) {
	c := New()
	if err := collect(c, opts, pred, roots); err != nil {
		return nil, err
	}
	return c, nil
}

// PartitionTrees discovers files under each root and splits them into
// matching and non-matching collections; every discovered file lands in
// exactly one of the two.
func PartitionTrees(opts Options, pred Predicate, roots ...string) (matching, rest *Collection, err error) {
	matching, rest = New(), New()
	deduped, err := dedupeRoots(roots)
	if err != nil {
		return nil, nil, err
	}
	for _, root := range deduped {
		err := walkFiles(root, func(p string) error {
			f, err := entity.NewFile(p, opts.tier())
			if err != nil {
				return nil
			}
			target := rest
			if pred(f) {
				target = matching
			}
			if _, ok := target.files[f.AbsPath]; !ok {
				target.add(f)
			}
			return nil
		})
		if err != nil {
			return nil, nil, err
		}
	}
	return matching, rest, nil
}

// ExceptRules excludes files during discovery. All rules are evaluated
// case-insensitively against the path relative to the root being walked.
type ExceptRules struct {
	// Prefixes excludes files whose relative path starts with any entry.
	Prefixes []string
	// Exts excludes files with any of these extensions.
	Exts []string
	// Substrings excludes files whose relative path contains any entry.
	Substrings []string
}

func (r ExceptRules) normalized() ExceptRules {
	lower := func(in []string) []string {
		out := make([]string, len(in))
		for i, s := range in {
			out[i] = strings.ToLower(s)
		}
		return out
	}
	return ExceptRules{
		Prefixes:   lower(r.Prefixes),
		Exts:       lower(r.Exts),
		Substrings: lower(r.Substrings),
	}
}

// excludes applies the rules to a record relative to its own root.
func (r ExceptRules) excludes(root string, f *entity.File) bool {
	rel, err := filepath.Rel(root, f.AbsPath)
	if err != nil {
		rel = f.AbsPath
	}
	rel = strings.ToLower(rel)

	for _, prefix := range r.Prefixes {
		if strings.HasPrefix(rel, prefix) {
			return true
		}
	}
	for _, ext := range r.Exts {
		if f.Ext == ext {
			return true
		}
	}
	for _, sub := range r.Substrings {
		if strings.Contains(rel, sub) {
			return true
		}
	}
	return false
}

// FromTreesExcept discovers files under each root, excluding those matching
// rules. The relative path in each rule check is computed against the file's
// own root, so one rule list excludes consistently within every root.
func FromTreesExcept(opts Options, rules ExceptRules, roots ...string) (*Collection, error) {
	rules = rules.normalized()
	c := New()
	deduped, err := dedupeRoots(roots)
	if err != nil {
		return nil, err
	}
	for _, root := range deduped {
		err := walkFiles(root, func(p string) error {
			f, err := entity.NewFile(p, opts.tier())
			if err != nil {
				return nil
			}
			if rules.excludes(root, f) {
				return nil
			}
			if _, ok := c.files[f.AbsPath]; !ok {
				c.add(f)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// FromTreesBySize selects files with minSize <= size <= maxSize.
// A maxSize <= 0 means DefaultMaxSize.
func FromTreesBySize(opts Options, minSize, maxSize int64, roots ...string) (*Collection, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if opts.Tier < entity.TierRegular {
		opts.Tier = entity.TierRegular // size needs a stat
	}
	return FromTreesFunc(opts, func(f *entity.File) bool {
		return f.Size >= minSize && f.Size <= maxSize
	}, roots...)
}

// FromTreesByExt selects files whose extension matches any of exts.
// Extensions are matched case-insensitively; a missing leading dot is added.
func FromTreesByExt(opts Options, exts []string, roots ...string) (*Collection, error) {
	want := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		want[ext] = struct{}{}
	}
	return FromTreesFunc(opts, func(f *entity.File) bool {
		_, ok := want[f.Ext]
		return ok
	}, roots...)
}

// FromTreesByHash selects files whose full-content digest equals hash.
// The walk always runs at TierSlow, so the caller's options are ignored;
// the parameter exists for signature symmetry with the other factories.
func FromTreesByHash(_ Options, hash string, roots ...string) (*Collection, error) {
	slow := Options{Tier: entity.TierSlow}
	return FromTreesFunc(slow, func(f *entity.File) bool {
		return f.Hash == hash
	}, roots...)
}

// FromGlob selects files under root matching a doublestar pattern, for
// example "**/*.jpg". Matches that are not regular files are skipped.
func FromGlob(opts Options, root, pattern string) (*Collection, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", root, err)
	}
	matches, err := doublestar.FilepathGlob(filepath.Join(abs, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	c := New()
	for _, m := range matches {
		f, err := entity.NewFile(m, opts.tier())
		if err != nil {
			continue // directory or special file matched by the pattern
		}
		if _, ok := c.files[f.AbsPath]; !ok {
			c.add(f)
		}
	}
	return c, nil
}
