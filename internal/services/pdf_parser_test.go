package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentParserPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Jane Roe \n\n\n  Go Engineer\n"), 0644))

	doc, err := NewDocumentParser().ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe\nGo Engineer", doc.Text)
	assert.Equal(t, 1, doc.PageCount)
	assert.Equal(t, path, doc.FilePath)
}

func TestDocumentParserErrors(t *testing.T) {
	dir := t.TempDir()
	parser := NewDocumentParser()

	_, err := parser.ExtractText(filepath.Join(dir, "missing.pdf"))
	assert.Error(t, err)

	blank := filepath.Join(dir, "blank.txt")
	require.NoError(t, os.WriteFile(blank, []byte("\n \n"), 0644))
	_, err = parser.ExtractText(blank)
	assert.ErrorIs(t, err, ErrValidation)

	doc := filepath.Join(dir, "resume.docx")
	require.NoError(t, os.WriteFile(doc, []byte("x"), 0644))
	_, err = parser.ExtractText(doc)
	assert.ErrorIs(t, err, ErrValidation)

	broken := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(broken, []byte("not a pdf"), 0644))
	_, err = parser.ExtractText(broken)
	assert.Error(t, err)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a\nb", CleanText("\n  a  \n\n\t\n b "))
	assert.Empty(t, CleanText(" \n "))
}
