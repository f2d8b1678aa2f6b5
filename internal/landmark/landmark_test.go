package landmark

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"muscle-overlay/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearest_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		set := make(Set, 1+rng.Intn(40))
		for i := range set {
			set[i] = geometry.Pt(rng.Intn(64), rng.Intn(64))
		}
		q := geometry.Pt(rng.Intn(80)-8, rng.Intn(80)-8)

		got := set.Nearest(q)
		require.GreaterOrEqual(t, got, 0)
		require.Less(t, got, len(set))

		for j, p := range set {
			d := p.DistanceSq(q)
			assert.False(t, d < set[got].DistanceSq(q), "index %d is strictly closer than %d", j, got)
			if d == set[got].DistanceSq(q) {
				assert.GreaterOrEqual(t, j, got, "tie must resolve to first index")
			}
		}
	}
}

func TestNearest(t *testing.T) {
	tests := []struct {
		name  string
		set   Set
		query geometry.PointInt
		want  int
	}{
		{name: "empty", set: nil, query: geometry.Pt(1, 1), want: NoIndex},
		{name: "single", set: Set{geometry.Pt(50, 50)}, query: geometry.Pt(0, 0), want: 0},
		{
			name:  "closer point after tied pair",
			set:   Set{geometry.Pt(0, 0), geometry.Pt(10, 0), geometry.Pt(4, 0)},
			query: geometry.Pt(5, 0),
			want:  2,
		},
		{
			name:  "exact tie",
			set:   Set{geometry.Pt(0, 0), geometry.Pt(2, 0)},
			query: geometry.Pt(1, 0),
			want:  0,
		},
		{
			name: "unique closest",
			set: Set{
				geometry.Pt(100, 100), geometry.Pt(40, 40), geometry.Pt(0, 30),
				geometry.Pt(11, 9), geometry.Pt(30, 0), geometry.Pt(60, 60),
			},
			query: geometry.Pt(10, 10),
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set.Nearest(tt.query))
		})
	}
}

func TestSetAt(t *testing.T) {
	set := Set{geometry.Pt(1, 2)}
	p, ok := set.At(0)
	assert.True(t, ok)
	assert.Equal(t, geometry.Pt(1, 2), p)

	_, ok = set.At(1)
	assert.False(t, ok)
	_, ok = set.At(-1)
	assert.False(t, ok)
}

func TestDecode(t *testing.T) {
	t.Run("normalized truncates", func(t *testing.T) {
		data := []byte(`{"normalized": true, "faces": [{"landmarks": [{"x": 0.5, "y": 0.25}, {"x": 0.999, "y": 0.101}]}]}`)
		set, err := Decode(data, 200, 100)
		require.NoError(t, err)
		assert.Equal(t, Set{geometry.Pt(100, 25), geometry.Pt(199, 10)}, set)
	})

	t.Run("pixel coordinates", func(t *testing.T) {
		data := []byte(`{"faces": [{"landmarks": [{"x": 12.7, "y": 3.2}]}]}`)
		set, err := Decode(data, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, Set{geometry.Pt(12, 3)}, set)
	})

	t.Run("first face only", func(t *testing.T) {
		data := []byte(`{"faces": [{"landmarks": [{"x": 1, "y": 1}]}, {"landmarks": [{"x": 9, "y": 9}, {"x": 8, "y": 8}]}]}`)
		set, err := Decode(data, 10, 10)
		require.NoError(t, err)
		assert.Equal(t, Set{geometry.Pt(1, 1)}, set)
	})

	t.Run("no face", func(t *testing.T) {
		_, err := Decode([]byte(`{"faces": []}`), 10, 10)
		assert.ErrorIs(t, err, ErrNoFace)
	})

	t.Run("normalized without size", func(t *testing.T) {
		_, err := Decode([]byte(`{"normalized": true, "faces": [{"landmarks": [{"x": 0.1, "y": 0.1}]}]}`), 0, 0)
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Decode([]byte(`{`), 10, 10)
		assert.Error(t, err)
	})
}

func TestEncodeDecode(t *testing.T) {
	set := Set{geometry.Pt(3, 4), geometry.Pt(5, 6)}
	data, err := Encode(set)
	require.NoError(t, err)

	decoded, err := Decode(data, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, set, decoded)
}

func TestSidecarProvider(t *testing.T) {
	dir := t.TempDir()
	imagePath := filepath.Join(dir, "face.jpg")
	doc := `{"normalized": true, "faces": [{"landmarks": [{"x": 0.1, "y": 0.2}]}]}`
	require.NoError(t, os.WriteFile(imagePath+DefaultSidecarSuffix, []byte(doc), 0644))

	p := NewSidecarProvider("")
	set, err := p.Landmarks(context.Background(), Frame{Path: imagePath, Width: 100, Height: 100})
	require.NoError(t, err)
	assert.Equal(t, Set{geometry.Pt(10, 20)}, set)

	_, err = p.Landmarks(context.Background(), Frame{Path: filepath.Join(dir, "missing.jpg"), Width: 1, Height: 1})
	assert.Error(t, err)
}

func TestCommandProvider(t *testing.T) {
	if _, err := os.Stat("/bin/cat"); err != nil {
		t.Skip("cat not available")
	}

	dir := t.TempDir()
	docPath := filepath.Join(dir, "detection.json")
	require.NoError(t, os.WriteFile(docPath, []byte(`{"faces": [{"landmarks": [{"x": 7, "y": 8}]}]}`), 0644))

	p, err := NewCommandProvider([]string{"cat"}, 5*time.Second)
	require.NoError(t, err)

	set, err := p.Landmarks(context.Background(), Frame{Path: docPath})
	require.NoError(t, err)
	assert.Equal(t, Set{geometry.Pt(7, 8)}, set)

	failing, err := NewCommandProvider([]string{"false"}, time.Second)
	require.NoError(t, err)
	_, err = failing.Landmarks(context.Background(), Frame{Path: docPath})
	assert.Error(t, err)

	_, err = NewCommandProvider(nil, time.Second)
	assert.Error(t, err)
}
