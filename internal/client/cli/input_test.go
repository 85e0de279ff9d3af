package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText_TrimsLine(t *testing.T) {
	var out bytes.Buffer

	got, err := GetSimpleText(reader("  hello world  \n"), "Say something", &out)

	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer

	got, err := GetSimpleText(reader("no newline"), "p", &out)

	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestGetOptionalText_EmptyKeepsFallback(t *testing.T) {
	var out bytes.Buffer

	got, err := GetOptionalText(reader("\n"), "Name", "Rock Night", &out)
	require.NoError(t, err)
	assert.Equal(t, "Rock Night", got)

	got, err = GetOptionalText(reader("Jazz Eve\n"), "Name", "Rock Night", &out)
	require.NoError(t, err)
	assert.Equal(t, "Jazz Eve", got)
}

func TestGetInt(t *testing.T) {
	var out bytes.Buffer

	n, err := GetInt(reader("42\n"), "How many", &out)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = GetInt(reader("many\n"), "How many", &out)
	require.Error(t, err)
}

func TestGetFloat(t *testing.T) {
	var out bytes.Buffer

	f, err := GetFloat(reader("49.50\n"), "Price", &out)
	require.NoError(t, err)
	assert.Equal(t, 49.5, f)

	_, err = GetFloat(reader("cheap\n"), "Price", &out)
	require.Error(t, err)
}

func TestGetMultiline_JoinsUntilEmptyLine(t *testing.T) {
	var out bytes.Buffer

	got, err := GetMultiline(reader("first\nsecond\n\nignored\n"), "Comment", &out)

	require.NoError(t, err)
	assert.Equal(t, "first\nsecond", got)
}

func TestGetPassword_UsesTerminalReader(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	pw, err := GetPassword(&out)

	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Contains(t, out.String(), "Enter password")
}
