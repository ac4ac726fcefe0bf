package prefabs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpiralLayout(t *testing.T) {
	got, err := RunLayout(context.Background(), "spiral.tengo", 10, 10000)
	require.NoError(t, err)

	want := []PointSpec{
		{0, 0},
		{10000, 0},
		{10000, 10000},
		{0, 10000},
		{-10000, 10000},
		{-10000, 0},
		{-10000, -10000},
		{0, -10000},
		{10000, -10000},
		{20000, -10000},
	}
	require.Equal(t, want, got)
}

func TestSpiralLayoutCounts(t *testing.T) {
	for _, n := range []int{1, 2, 3, 25} {
		got, err := RunLayout(context.Background(), "spiral.tengo", n, 1)
		require.NoError(t, err)
		require.Len(t, got, n)
		require.Equal(t, PointSpec{}, got[0])
	}
}

func TestLayoutZeroCount(t *testing.T) {
	got, err := RunLayout(context.Background(), "does-not-matter.tengo", 0, 1)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestLayoutMissingScript(t *testing.T) {
	_, err := RunLayout(context.Background(), "missing.tengo", 3, 1)
	require.Error(t, err)
}

func writeScript(t *testing.T, name, src string) {
	t.Helper()
	dir := filepath.Join(Dir, "scripts")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
}

func TestLayoutImportsOnlyMath(t *testing.T) {
	{
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(t.TempDir()))
		t.Cleanup(func() { _ = os.Chdir(wd) })
	}

	writeScript(t, "math.tengo", `
math := import("math")
points := []
for i := 0; i < count; i++ {
	points = append(points, [int(math.pow(2, i)) * spacing, 0])
}
`)
	got, err := RunLayout(context.Background(), "math.tengo", 3, 5)
	require.NoError(t, err)
	require.Equal(t, []PointSpec{{X: 5}, {X: 10}, {X: 20}}, got)

	writeScript(t, "os.tengo", `
os := import("os")
os.remove("anything")
points := [[0, 0]]
`)
	_, err = RunLayout(context.Background(), "os.tengo", 1, 1)
	require.Error(t, err)
}
