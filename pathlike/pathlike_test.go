package pathlike_test

import (
	"path/filepath"
	"testing"

	"github.com/quiverdata/quiver/pathlike"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dataset struct {
	root string
	name string
}

func (d dataset) FsPath() string {
	return filepath.Join(d.root, d.name+".parquet")
}

func TestStringifyString(t *testing.T) {
	s, err := pathlike.Stringify("data/part-0.parquet")
	require.NoError(t, err)
	assert.Equal(t, "data/part-0.parquet", s)
}

func TestStringifyPathLike(t *testing.T) {
	s, err := pathlike.Stringify(dataset{root: "warehouse", name: "events"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("warehouse", "events.parquet"), s)
}

func TestStringifyStructuredPath(t *testing.T) {
	p := pathlike.NewPath("warehouse", "events").Join("part-0.parquet")
	s, err := pathlike.Stringify(p)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("warehouse", "events", "part-0.parquet"), s)
}

func TestStringifyRejectsNonPath(t *testing.T) {
	_, err := pathlike.Stringify(42)
	assert.ErrorIs(t, err, pathlike.ErrNotPathLike)

	_, err = pathlike.Stringify(nil)
	assert.ErrorIs(t, err, pathlike.ErrNotPathLike)
}

func TestIsPathLike(t *testing.T) {
	assert.True(t, pathlike.IsPathLike("a/b"))
	assert.True(t, pathlike.IsPathLike(pathlike.NewPath("a", "b")))
	assert.True(t, pathlike.IsPathLike(dataset{root: "r", name: "n"}))
	assert.False(t, pathlike.IsPathLike(42))
	assert.False(t, pathlike.IsPathLike(nil))
	assert.False(t, pathlike.IsPathLike([]string{"a", "b"}))
}

func TestJoinLeavesReceiverUntouched(t *testing.T) {
	base := pathlike.NewPath("a")
	_ = base.Join("b")
	assert.Equal(t, "a", base.FsPath())
}
