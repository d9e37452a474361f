package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadImportFile_YAML(t *testing.T) {
	path := writeTempFile(t, "books.yaml", `
books:
  - title: First Book
    description: the first one
    price: 9.99
    pages:
      - page_number: 1
        content: once upon a time
      - page_number: 2
        content: the end
  - title: Second Book
    description: the second one
    price: 4.5
`)

	books, err := readImportFile(path)
	require.NoError(t, err)
	require.Len(t, books, 2)

	assert.Equal(t, "First Book", books[0].Title)
	assert.Equal(t, 9.99, books[0].Price)
	require.Len(t, books[0].Pages, 2)
	assert.Equal(t, 2, books[0].Pages[1].PageNumber)
	assert.Equal(t, "the end", books[0].Pages[1].Content)

	assert.Equal(t, "Second Book", books[1].Title)
	assert.Empty(t, books[1].Pages)
}

func TestReadImportFile_NDJSON(t *testing.T) {
	path := writeTempFile(t, "books.ndjson", `
{"title":"First Book","description":"d","price":1,"pages":[{"page_number":1,"content":"a"}]}

{"title":"Second Book","description":"d","price":2}
`)

	books, err := readImportFile(path)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "First Book", books[0].Title)
	require.Len(t, books[0].Pages, 1)
	assert.Equal(t, "Second Book", books[1].Title)
}

func TestReadImportFile_BadLine(t *testing.T) {
	path := writeTempFile(t, "books.ndjson", `{"title":"ok","price":1}
{not json}`)

	_, err := readImportFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadImportFile_UnsupportedExtension(t *testing.T) {
	path := writeTempFile(t, "books.csv", "title,price\n")

	_, err := readImportFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file extension")
}

func TestReadImportFile_Missing(t *testing.T) {
	_, err := readImportFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
