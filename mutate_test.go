package toml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_AddsNewLeaf(t *testing.T) {
	root := mustParse(t, "a = 1\n")
	require.NoError(t, root.Set("b", NewInteger(2)))
	out := Format(root)
	assert.Equal(t, "a = 1\nb = 2\n", out)
}

func TestSet_RejectsRedefinition(t *testing.T) {
	root := mustParse(t, "a = 1\n")
	err := root.Set("a", NewInteger(2))
	require.Error(t, err)
}

func TestDelete(t *testing.T) {
	root := mustParse(t, "a = 1\nb = 2\nc = 3\n")
	assert.True(t, root.Delete("b"))
	assert.Equal(t, "a = 1\nc = 3\n", Format(root))
	assert.False(t, root.Delete("missing"))
}

func TestAppend_ArrayTableRow(t *testing.T) {
	root := mustParse(t, "[[fruit]]\nname = \"apple\"\n")
	fruit, ok := root.Lookup("fruit")
	require.True(t, ok)

	row := NewRoot()
	require.NoError(t, row.Set("name", NewString("banana")))
	require.NoError(t, fruit.Append(row))

	out := Format(root)
	assert.Equal(t, "[[fruit]]\nname = \"apple\"\n[[fruit]]\nname = \"banana\"\n", out)
}

func TestAppend_RequiresArrayTable(t *testing.T) {
	root := mustParse(t, "a = 1\n")
	a, ok := root.Lookup("a")
	require.True(t, ok)
	err := a.Append(NewRoot())
	require.Error(t, err)
}

func TestEscapeBasicString_RoundTrip(t *testing.T) {
	s := "line1\nline2\t\"quoted\"\\backslash"
	root := NewRoot()
	require.NoError(t, root.Set("x", NewString(s)))
	src := Format(root)

	parsed, err := LoadString(src)
	require.NoError(t, err)
	k, err := LookupPath(parsed, "x")
	require.NoError(t, err)
	got, err := k.AsString()
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestFormat_QuotesNonBareKeys(t *testing.T) {
	root := NewRoot()
	require.NoError(t, root.Set("has space", NewInteger(1)))
	out := Format(root)
	assert.Equal(t, "\"has space\" = 1\n", out)
}

func TestFree_ClearsSubtree(t *testing.T) {
	root := mustParse(t, "[a]\nb = 1\n")
	root.Free()
	assert.Empty(t, root.Subkeys())
}
