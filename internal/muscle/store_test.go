package muscle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_WriteThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "muscle_points.yaml")
	s := NewStore(path, NewMapping("a", "b"))

	require.NoError(t, s.Append("a", 3))
	onDisk, err := LoadMapping(path)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, onDisk.Indices("a"))

	require.NoError(t, s.Append("b", 7))
	require.NoError(t, s.Append("b", 8))
	removed, ok, err := s.Undo("b")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 8, removed)

	onDisk, err = LoadMapping(path)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, onDisk.Indices("b"))

	require.NoError(t, s.Clear("a"))
	onDisk, err = LoadMapping(path)
	require.NoError(t, err)
	assert.Empty(t, onDisk.Indices("a"))
	assert.True(t, s.Mapping().Equal(onDisk))
}

func TestStore_ResetPersistsEmptyGroups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "muscle_points.yaml")
	s := NewStore(path, NewMapping(DefaultGroups...))
	for i, g := range DefaultGroups {
		require.NoError(t, s.Append(g, i))
	}

	require.NoError(t, s.Reset())

	onDisk, err := LoadMapping(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultGroups, onDisk.Groups())
	for _, g := range onDisk.Groups() {
		assert.Empty(t, onDisk.Indices(g), g)
	}
}

func TestStore_UndoEmptyIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.yaml")
	s := NewStore(path, NewMapping("a"))

	_, ok, err := s.Undo("a")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Mapping().Len())
}

func TestStore_MappingIsSnapshot(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "p.yaml"), NewMapping("a"))
	snap := s.Mapping()
	snap.Append("a", 1)
	assert.Equal(t, 0, s.Mapping().Len())
}

func TestResumeStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "points.yaml")

	s, err := ResumeStore(path, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, s.Groups())

	require.NoError(t, os.WriteFile(path, []byte("b: [4]\nold: [1, 2]\n"), 0644))
	s, err = ResumeStore(path, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "old", "a"}, s.Groups())
	assert.Equal(t, []int{4}, s.Mapping().Indices("b"))

	require.NoError(t, os.WriteFile(path, []byte("- nope\n"), 0644))
	_, err = ResumeStore(path, nil)
	assert.Error(t, err)
}

func TestStore_PersistFailure(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir, NewMapping("a"))
	assert.Error(t, s.Append("a", 1))
	assert.Empty(t, s.Mapping().Indices("a"))
	assert.Equal(t, []string{"a"}, s.Groups())
}
