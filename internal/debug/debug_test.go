package debug

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// saveAndRestoreState saves the debug package state and returns a cleanup function
func saveAndRestoreState() func() {
	originalDebug := EnableDebug
	originalMode := MCPMode
	originalOutput := debugOutput
	return func() {
		EnableDebug = originalDebug
		MCPMode = originalMode
		debugOutput = originalOutput
	}
}

func TestSetMCPMode(t *testing.T) {
	defer saveAndRestoreState()()

	SetMCPMode(true)
	assert.True(t, MCPMode)

	SetMCPMode(false)
	assert.False(t, MCPMode)
}

func TestIsDebugEnabled(t *testing.T) {
	defer saveAndRestoreState()()

	EnableDebug = "false"
	MCPMode = false
	os.Unsetenv("DEBUG")
	assert.False(t, IsDebugEnabled())

	EnableDebug = "true"
	assert.True(t, IsDebugEnabled())

	EnableDebug = "false"
	os.Setenv("DEBUG", "1")
	assert.True(t, IsDebugEnabled())
	os.Unsetenv("DEBUG")

	EnableDebug = "true"
	MCPMode = true
	assert.False(t, IsDebugEnabled(), "MCP mode suppresses debug output regardless of EnableDebug")
}

func TestSetDebugOutput(t *testing.T) {
	defer saveAndRestoreState()()

	var buf bytes.Buffer
	SetDebugOutput(&buf)
	assert.Equal(t, &buf, getDebugWriter())

	SetDebugOutput(nil)
	assert.Nil(t, getDebugWriter())
}

func TestPrintf(t *testing.T) {
	defer saveAndRestoreState()()

	var buf bytes.Buffer
	SetDebugOutput(&buf)
	EnableDebug = "true"
	MCPMode = false

	Printf("value=%d", 42)
	assert.Contains(t, buf.String(), "[DEBUG] value=42")
}

func TestPrintf_DisabledWritesNothing(t *testing.T) {
	defer saveAndRestoreState()()

	var buf bytes.Buffer
	SetDebugOutput(&buf)
	EnableDebug = "false"
	MCPMode = false
	os.Unsetenv("DEBUG")

	Printf("should not appear")
	assert.Empty(t, buf.String())
}

func TestLog(t *testing.T) {
	defer saveAndRestoreState()()

	var buf bytes.Buffer
	SetDebugOutput(&buf)
	EnableDebug = "true"
	MCPMode = false

	Log("ENGINE", "settling %s", "Foo.Bar")
	assert.Contains(t, buf.String(), "[DEBUG:ENGINE] settling Foo.Bar")
}

func TestLogEngine(t *testing.T) {
	defer saveAndRestoreState()()

	var buf bytes.Buffer
	SetDebugOutput(&buf)
	EnableDebug = "true"
	MCPMode = false

	LogEngine("fixed-point loop exceeded bound %d, stopping early", 10000)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[DEBUG:ENGINE]"))
	assert.Contains(t, out, "fixed-point loop exceeded bound 10000")
}

func TestLogParse(t *testing.T) {
	defer saveAndRestoreState()()

	var buf bytes.Buffer
	SetDebugOutput(&buf)
	EnableDebug = "true"
	MCPMode = false

	LogParse("parsed %d methods", 3)
	assert.True(t, strings.HasPrefix(buf.String(), "[DEBUG:PARSE]"))
}

func TestLogMCP(t *testing.T) {
	defer saveAndRestoreState()()

	var buf bytes.Buffer
	SetDebugOutput(&buf)
	EnableDebug = "true"
	MCPMode = false

	LogMCP("classify_purity called")
	assert.True(t, strings.HasPrefix(buf.String(), "[DEBUG:MCP]"))
}

func TestFatal(t *testing.T) {
	defer saveAndRestoreState()()

	var buf bytes.Buffer
	SetDebugOutput(&buf)
	MCPMode = false

	err := Fatal("lookup table invariant broken: %s", "dangling edge")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "lookup table invariant broken: dangling edge")
	assert.Contains(t, buf.String(), "[FATAL]")
}

func TestFatal_MCPModeSuppressesWrite(t *testing.T) {
	defer saveAndRestoreState()()

	var buf bytes.Buffer
	SetDebugOutput(&buf)
	MCPMode = true

	err := Fatal("broken invariant")
	assert.Error(t, err)
	assert.Empty(t, buf.String(), "MCP mode must never write to the debug stream")
}
