package repl

import (
	"path/filepath"
	"testing"

	"github.com/crytic/solrepl/cache"
	"github.com/crytic/solrepl/parser"
	"github.com/stretchr/testify/assert"
)

// newTestCache creates a SessionCache over a temporary directory for testing.
func newTestCache(t *testing.T) *cache.SessionCache {
	sessionCache, err := cache.NewSessionCache(t.TempDir())
	assert.NoError(t, err)
	return sessionCache
}

// TestNewEnvironmentVersionValidation will test that environment creation fails on a malformed version
// string and produces no partial environment.
func TestNewEnvironmentVersionValidation(t *testing.T) {
	environment, err := NewEnvironment(parser.NewParser(), "not-a-version")
	assert.Error(t, err)
	assert.Nil(t, environment)

	environment, err = NewEnvironment(parser.NewParser(), "0.8.17")
	assert.NoError(t, err)
	assert.EqualValues(t, "0.8.17", environment.SolcVersion().String())
	assert.Nil(t, environment.ID())
	assert.Empty(t, environment.Session())
}

// TestDefaultEnvironment will test that the default environment resolves some solc version, whether from the
// system installation or the fallback.
func TestDefaultEnvironment(t *testing.T) {
	environment, err := DefaultEnvironment(parser.NewParser())
	assert.NoError(t, err)
	assert.NotNil(t, environment.SolcVersion())
}

// TestSubmitRejectionLeavesSessionUnchanged will test that a fragment which fails to parse is rejected
// without mutating the session.
func TestSubmitRejectionLeavesSessionUnchanged(t *testing.T) {
	environment := newTestEnvironment(t, "0.8.17")
	submitAll(t, environment, "uint256 x;")

	// Submit a malformed fragment and validate the session still holds only the accepted one.
	err := environment.Submit("function broken() {")
	assert.Error(t, err)
	assert.Len(t, environment.Session(), 1)
	assert.EqualValues(t, "uint256 x;", environment.Session()[0].Raw)
}

// TestPersistAssignsIDOnce will test that the first persist lazily assigns the environment's id and that
// later persists overwrite the same snapshot file.
func TestPersistAssignsIDOnce(t *testing.T) {
	sessionCache := newTestCache(t)
	environment := newTestEnvironment(t, "0.8.17")
	submitAll(t, environment, "uint256 x;")

	// The first persist assigns id zero in a fresh cache.
	firstPath, err := environment.Persist(sessionCache)
	assert.NoError(t, err)
	assert.NotNil(t, environment.ID())
	assert.EqualValues(t, 0, *environment.ID())

	// A later persist reuses the same id and file, so the cache still holds a single snapshot.
	submitAll(t, environment, "function f() public {}")
	secondPath, err := environment.Persist(sessionCache)
	assert.NoError(t, err)
	assert.EqualValues(t, firstPath, secondPath)
	assert.EqualValues(t, 0, *environment.ID())

	sessions, err := sessionCache.Enumerate()
	assert.NoError(t, err)
	assert.Len(t, sessions, 1)
}

// TestPersistRestoreRoundTrip will test that restoring a persisted session reconstructs fragments whose raw
// text, order and classification are identical to the originals.
func TestPersistRestoreRoundTrip(t *testing.T) {
	sessionCache := newTestCache(t)
	environment := newTestEnvironment(t, "0.8.17")
	fragments := []string{
		"pragma solidity 0.8.17;",
		"import \"./A.sol\";",
		"struct Point { uint x; }",
		"uint256 counter;",
		"function f() public {}",
	}
	submitAll(t, environment, fragments...)

	// Persist the session and restore it by the written file's name.
	path, err := environment.Persist(sessionCache)
	assert.NoError(t, err)
	restored, err := RestoreSession(sessionCache, parser.NewParser(), filepath.Base(path))
	assert.NoError(t, err)

	// The restored environment carries the same version and id.
	assert.EqualValues(t, environment.SolcVersion().String(), restored.SolcVersion().String())
	assert.NotNil(t, restored.ID())
	assert.EqualValues(t, *environment.ID(), *restored.ID())

	// Each restored fragment is byte-identical to the original and classifies identically.
	assert.Len(t, restored.Session(), len(fragments))
	for i, snippet := range restored.Session() {
		assert.EqualValues(t, fragments[i], snippet.Raw)
		assert.EqualValues(t, Classify(environment.Session()[i]), Classify(snippet))
	}

	// The synthesized source of the restored session matches the original's.
	assert.EqualValues(t, environment.ContractSource(), restored.ContractSource())
}

// TestRestoreLatestSession will test that restoring the latest session from a populated cache succeeds and
// that an empty cache reports the distinct no-sessions condition.
func TestRestoreLatestSession(t *testing.T) {
	sessionCache := newTestCache(t)

	// An empty cache surfaces ErrNoSessions, not an I/O failure.
	_, err := RestoreLatestSession(sessionCache, parser.NewParser())
	assert.ErrorIs(t, err, cache.ErrNoSessions)

	// Persist a session and validate the latest restore finds it.
	environment := newTestEnvironment(t, "0.8.17")
	submitAll(t, environment, "uint256 x;")
	_, err = environment.Persist(sessionCache)
	assert.NoError(t, err)

	restored, err := RestoreLatestSession(sessionCache, parser.NewParser())
	assert.NoError(t, err)
	assert.Len(t, restored.Session(), 1)
	assert.EqualValues(t, "uint256 x;", restored.Session()[0].Raw)
}

// TestRestoreRejectsUnparseableSnippet will test that restoring a snapshot whose recorded fragment no
// longer parses fails rather than producing a partially rebuilt environment.
func TestRestoreRejectsUnparseableSnippet(t *testing.T) {
	sessionCache := newTestCache(t)

	// Write a snapshot containing a fragment that cannot be re-parsed.
	snapshot := &cache.Snapshot{
		SolcVersion: "0.8.17",
		Session: []cache.SnippetRecord{
			{SourceUnit: "function broken() {", Raw: "function broken() {"},
		},
	}
	path, err := sessionCache.Write(snapshot)
	assert.NoError(t, err)

	restored, err := RestoreSession(sessionCache, parser.NewParser(), filepath.Base(path))
	assert.Error(t, err)
	assert.Nil(t, restored)
}
