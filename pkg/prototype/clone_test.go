package prototype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeClones(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })
	return logs
}

func TestCloneLogging_OneEntryPerLevel(t *testing.T) {
	logs := observeClones(t)

	NewExtended().Clone()

	entries := logs.FilterMessage("values cloned").All()
	require.Len(t, entries, 2)

	first, second := entries[0].ContextMap(), entries[1].ContextMap()
	assert.Equal(t, "base", first["level"])
	assert.Equal(t, "extended", second["level"])
	assert.Equal(t, "extended", first["variant"])
	assert.Equal(t, "extended", second["variant"])

	require.NotEmpty(t, first["clone_id"])
	assert.Equal(t, first["clone_id"], second["clone_id"], "entries of one clone share an id")
}

func TestCloneLogging_DistinctIDs(t *testing.T) {
	logs := observeClones(t)

	b := NewBase()
	b.Clone()
	b.Clone()

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.NotEqual(t, entries[0].ContextMap()["clone_id"], entries[1].ContextMap()["clone_id"])
	assert.Equal(t, "base", entries[0].ContextMap()["variant"])
}

func TestSetLogger_NilRestoresNop(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, currentLogger())
	assert.NotPanics(t, func() { NewExtended().Clone() })
}
