package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/Garik-/nibbler/pkg/midi"
)

func pathsOf(paths ...string) <-chan string {
	out := make(chan string, len(paths))
	for _, p := range paths {
		out <- p
	}
	close(out)
	return out
}

func writeDump(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewSummary(t *testing.T) {
	enableDebugLogging(zaptest.NewLogger(t))
	t.Cleanup(func() { enableDebugLogging(zap.NewNop()) })
	dir := t.TempDir()
	a := writeDump(t, dir, "a.hex", "90 40 50\nF8\n")
	b := writeDump(t, dir, "b.hex", "F0 01 02 F7\n50 C0\n")

	s, err := newSummary(context.Background(), pathsOf(a, b), 2, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, s.files)
	assert.Equal(t, map[midi.Kind]int{
		midi.KindNoteOn:          1,
		midi.KindSystemRealtime:  1,
		midi.KindSystemExclusive: 1,
	}, s.kinds)
	assert.Equal(t, 16, s.processed)
	assert.Equal(t, 0, s.rejected)
	assert.Equal(t, 4, s.pending)

	var out bytes.Buffer
	require.NoError(t, s.write(&out))
	assert.Equal(t, "files: 2\n"+
		"note_on: 1\n"+
		"system_exclusive: 1\n"+
		"system_realtime: 1\n"+
		"processed: 16, rejected: 0, pending: 4, desync: 0\n", out.String())
}

func TestNewSummary_MaxPending(t *testing.T) {
	dir := t.TempDir()
	a := writeDump(t, dir, "a.hex", "F0 01 02 03 04\n")

	s, err := newSummary(context.Background(), pathsOf(a), 1, []midi.Option{midi.WithMaxPending(8)})
	require.NoError(t, err)

	assert.Equal(t, 1, s.desync)
	assert.Equal(t, 10, s.rejected)
	assert.Equal(t, 0, s.pending)
	assert.Empty(t, s.kinds)
}

func TestNewSummary_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.hex")

	_, err := newSummary(context.Background(), pathsOf(missing), 1, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.hex")
}

func TestDecodeFile_UnknownBackend(t *testing.T) {
	dir := t.TempDir()
	a := writeDump(t, dir, "a.hex", "904050\n")

	res := decodeFile(a, []midi.Option{midi.WithBackend("midilib")})
	assert.ErrorIs(t, res.err, midi.ErrUnknownBackend)
}
