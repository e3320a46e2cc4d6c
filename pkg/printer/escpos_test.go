package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentText(t *testing.T) {
	doc := NewDocument(32)
	doc.Text("Hello")

	data := doc.Bytes()
	assert.True(t, bytes.Contains(data, []byte("Hello\n")))
}

func TestDocumentKeyValue(t *testing.T) {
	doc := NewDocument(20)
	doc.KeyValue("Total:", "Rp5.000")

	line := doc.Bytes()
	// Key left-aligned, value right-aligned, padded to the paper width.
	assert.True(t, bytes.Contains(line, []byte("Total:")))
	assert.True(t, bytes.Contains(line, []byte("Rp5.000\n")))
}

func TestDocumentSeparator(t *testing.T) {
	doc := NewDocument(8)
	doc.Separator('-')

	assert.True(t, bytes.Contains(doc.Bytes(), []byte("--------\n")))
}

func TestDocumentReset(t *testing.T) {
	doc := NewDocument(32)
	doc.Text("something")
	doc.Reset()

	// Reset discards buffered output (the init sequence aside).
	assert.False(t, bytes.Contains(doc.Bytes(), []byte("something")))
}
