package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFormatTest() func() {
	old := formatService
	formatService = &mockFormatService{}
	return func() { formatService = old }
}

func TestFormatCmd_Use(t *testing.T) {
	assert.Equal(t, "format [text...]", formatCmd.Use)
}

func TestFormatCmd_Args(t *testing.T) {
	defer setupFormatTest()()

	out, err := runCLI(t, "format", "hello", "world")

	require.NoError(t, err)
	assert.Equal(t, "HELLO WORLD\n", out)
}

func TestFormatCmd_Stdin(t *testing.T) {
	defer setupFormatTest()()
	rootCmd.SetIn(strings.NewReader("  from stdin\n"))

	out, err := runCLI(t, "format")

	require.NoError(t, err)
	assert.Equal(t, "FROM STDIN\n", out)
}

func TestFormatCmd_NotConfigured(t *testing.T) {
	old := formatService
	formatService = nil
	defer func() { formatService = old }()

	_, err := runCLI(t, "format", "x")

	assert.Error(t, err)
}
