package puzzle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "3"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "3", "input.txt"), []byte("467..114.."), 0o644))

	l := NewLoader(dir, 0)
	assert.Equal(t, filepath.Join(dir, "3", "input.txt"), l.InputPath(3))

	got, err := l.Load(3)
	require.NoError(t, err)
	assert.Equal(t, "467..114..", got)

	_, err = l.Load(4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read "+filepath.Join(dir, "4", "input.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_MaxBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o644))

	got, err := NewLoader(dir, 10).ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", got)

	_, err = NewLoader(dir, 9).ReadFile(path)
	assert.ErrorIs(t, err, ErrInputTooLarge)
	assert.ErrorContains(t, err, path)
}

func TestLoader_Sample(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "8"), 0o755))
	page := `<html><body><main><article>
<p>For example:</p>
<pre><code>RL

AAA = (BBB, CCC)
</code></pre>
<p>Another:</p>
<pre><code>LLR</code></pre>
</article></main></body></html>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "8", "puzzle.html"), []byte(page), 0o644))

	l := NewLoader(dir, 0)
	got, err := l.Sample(8, 1)
	require.NoError(t, err)
	assert.Equal(t, "RL\n\nAAA = (BBB, CCC)", got)

	got, err = l.Sample(8, 2)
	require.NoError(t, err)
	assert.Equal(t, "LLR", got)

	_, err = l.Sample(8, 3)
	assert.ErrorContains(t, err, "sample 3 not found (2 available)")

	_, err = l.Sample(9, 1)
	assert.ErrorContains(t, err, "no puzzle description for day 9")
}
