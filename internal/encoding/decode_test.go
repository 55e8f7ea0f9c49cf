package encoding_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/plaincents/plaincents/internal/encoding"
)

func readAll(t *testing.T, input []byte) (string, string) {
	t.Helper()

	r, charset, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got), charset
}

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := "Date,Description,Amount\n01/15/2024,Café Dépanneur,4.25\n"

	got, charset := readAll(t, []byte(input))
	assert.Equal(t, input, got)
	assert.Equal(t, encoding.UTF8, charset)
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Date,Description,Amount\n")...)

	got, charset := readAll(t, input)
	assert.Equal(t, "Date,Description,Amount\n", got)
	assert.Equal(t, encoding.UTF8, charset)
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	input, err := enc.Bytes([]byte("Date,Description\n"))
	require.NoError(t, err)

	got, charset := readAll(t, input)
	assert.Equal(t, "Date,Description\n", got)
	assert.Equal(t, encoding.UTF16LE, charset)
}

func TestNewUTF8Reader_Latin1(t *testing.T) {
	input, err := charmap.Windows1252.NewEncoder().Bytes([]byte("Description\nCafé Dépanneur Québec\n"))
	require.NoError(t, err)

	got, charset := readAll(t, input)
	assert.Equal(t, "Description\nCafé Dépanneur Québec\n", got)
	assert.NotEqual(t, encoding.UTF8, charset)
}

func TestNewUTF8Reader_RuneSplitAtSniffBoundary(t *testing.T) {
	// 4095 ASCII bytes followed by "é" puts the first byte of the rune at the end of the sniff window.
	input := strings.Repeat("a", 4095) + "é\n"

	got, charset := readAll(t, []byte(input))
	assert.Equal(t, input, got)
	assert.Equal(t, encoding.UTF8, charset)
}

func TestNewUTF8Reader_Empty(t *testing.T) {
	got, charset := readAll(t, nil)
	assert.Empty(t, got)
	assert.Equal(t, encoding.UTF8, charset)
}
