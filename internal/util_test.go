package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReconstructPath(t *testing.T) {
	parents := map[string]string{"c": "b", "b": "a", "a": "root"}
	isRoot := func(s string) bool { return s == "root" }

	require.Equal(t, []string{"a", "b", "c"}, ReconstructPath(parents, "c", isRoot))
	require.Equal(t, []string{"a"}, ReconstructPath(parents, "a", isRoot))
	require.Empty(t, ReconstructPath(parents, "root", isRoot))
	// A dangling node stops the walk.
	require.Equal(t, []string{"x"}, ReconstructPath(parents, "x", isRoot))
}
