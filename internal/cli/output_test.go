package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError(t *testing.T) {
	base := errors.New("boom")
	err := WrapExitError(ExitCommandError, "failed to open archive", base)

	assert.Equal(t, "failed to open archive: boom", err.Error())
	assert.Equal(t, base, errors.Unwrap(err))
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGetExitCode_PlainError(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
}

func TestFormatter_JSONSuccess(t *testing.T) {
	buf := new(bytes.Buffer)
	f := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, f.Success(map[string]int{"n": 3}))
	assert.JSONEq(t, `{"status":"ok","data":{"n":3}}`, buf.String())
}

func TestFormatter_JSONError(t *testing.T) {
	buf := new(bytes.Buffer)
	f := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, f.Error(ErrCodeChain, "broken", nil))
	assert.JSONEq(t, `{"status":"error","error":{"code":"E003","message":"broken"}}`, buf.String())
}

func TestFormatter_TextError(t *testing.T) {
	buf := new(bytes.Buffer)
	f := &OutputFormatter{Format: "text", Writer: buf}

	require.NoError(t, f.Error(ErrCodeArchive, "no archive", nil))
	assert.Equal(t, "Error [E002]: no archive\n", buf.String())
}

func TestFormatter_VerboseLogGoesToErrWriter(t *testing.T) {
	out := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	f := &OutputFormatter{Format: "json", Writer: out, ErrWriter: errBuf, Verbose: true}

	f.VerboseLog("loaded %d", 3)
	assert.Empty(t, out.String())
	assert.Equal(t, "loaded 3\n", errBuf.String())
}

func TestFormatter_VerboseLogSilentByDefault(t *testing.T) {
	out := new(bytes.Buffer)
	f := &OutputFormatter{Format: "text", Writer: out}

	f.VerboseLog("hidden")
	assert.Empty(t, out.String())
}
