package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolsofacil/api/internal/encoding"
)

func decode(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got)
}

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := "date,category,title,amount\n2024-06-05,alimentação,Padaria São João,-12.50\n"

	assert.Equal(t, input, decode(t, []byte(input)))
}

func TestNewUTF8Reader_StripsUTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("date,category,title,amount\n")...)

	assert.Equal(t, "date,category,title,amount\n", decode(t, input))
}

func TestNewUTF8Reader_DecodesLatin1(t *testing.T) {
	// "Cartão de crédito" in ISO-8859-1.
	input := []byte{
		'C', 'a', 'r', 't', 0xE3, 'o', ' ', 'd', 'e', ' ',
		'c', 'r', 0xE9, 'd', 'i', 't', 'o',
	}

	assert.Equal(t, "Cartão de crédito", decode(t, input))
}

func TestNewUTF8Reader_DecodesUTF16LE(t *testing.T) {
	// "data" with a UTF-16 LE BOM.
	input := []byte{0xFF, 0xFE, 'd', 0x00, 'a', 0x00, 't', 0x00, 'a', 0x00}

	assert.Equal(t, "data", decode(t, input))
}
