// Package pathlike coerces heterogeneous path values to their string form.
//
// Callers of a columnar library hand in filesystem locations as raw strings,
// as structured Path values, or as their own types that know how to render
// themselves as a path. The PathLike interface is that single-operation
// capability; Stringify and IsPathLike dispatch over it.
package pathlike

import (
	"errors"
	"fmt"
	"path/filepath"
)

// PathLike is the capability of rendering a value as a filesystem path
// string.
type PathLike interface {
	FsPath() string
}

// Path is a structured filesystem path built from ordered segments.
// The zero value is an empty path.
type Path struct {
	segments []string
}

// NewPath builds a Path from the given segments.
func NewPath(segments ...string) Path {
	return Path{segments: append([]string(nil), segments...)}
}

// Join returns a new Path with the given segments appended. The receiver is
// left untouched.
func (p Path) Join(segments ...string) Path {
	joined := make([]string, 0, len(p.segments)+len(segments))
	joined = append(joined, p.segments...)
	joined = append(joined, segments...)
	return Path{segments: joined}
}

// FsPath renders the path using the platform separator.
func (p Path) FsPath() string {
	return filepath.Join(p.segments...)
}

func (p Path) String() string {
	return p.FsPath()
}

// ErrNotPathLike reports a value with no path representation.
var ErrNotPathLike = errors.New("not a path-like object")

// Stringify converts v to its path string form: a string is returned
// unchanged, a PathLike (Path included) is rendered via FsPath. Any other
// value fails with ErrNotPathLike.
func Stringify(v any) (string, error) {
	switch p := v.(type) {
	case string:
		return p, nil
	case PathLike:
		return p.FsPath(), nil
	}
	return "", fmt.Errorf("%w: %T", ErrNotPathLike, v)
}

// IsPathLike reports whether Stringify can convert v. Pure classification,
// no side effects.
func IsPathLike(v any) bool {
	switch v.(type) {
	case string, PathLike:
		return true
	}
	return false
}
