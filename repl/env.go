// Package repl implements the core of the Solidity REPL: the session model, fragment classification, source
// synthesis and the persistence facade over the session cache.
package repl

import (
	"fmt"

	"github.com/Masterminds/semver"
	"github.com/crytic/solrepl/cache"
	"github.com/crytic/solrepl/logging"
	"github.com/crytic/solrepl/parser"
	"github.com/crytic/solrepl/solc"
	"github.com/pkg/errors"
)

// Environment represents one REPL session: the ordered snippets accepted so far, the solc version the
// session is pinned to, and the session's cache identity. An Environment is owned by a single caller; all of
// its operations are synchronous and it performs no internal locking.
type Environment struct {
	// solcParser is the parser used to turn submitted text into source units.
	solcParser parser.Parser

	// solcVersion is the solc version the session is pinned to, fixed at creation.
	solcVersion *semver.Version

	// session holds the accepted snippets, in submission order. Snippets are only ever appended; they are
	// never removed or reordered.
	session []*SolSnippet

	// id is the session's cache identity. It is nil until the first successful persist and immutable once
	// assigned.
	id *int

	// logger describes the Environment's sub-logger used to report session activity.
	logger *logging.Logger
}

// NewEnvironment creates an empty Environment pinned to the provided solc version string, using the provided
// parser for all fragment submissions. Returns an error if the version string is not a valid semantic
// version; no Environment is produced in that case.
func NewEnvironment(solcParser parser.Parser, solcVersion string) (*Environment, error) {
	parsedVersion, err := semver.NewVersion(solcVersion)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid solc version '%s'", solcVersion)
	}
	return &Environment{
		solcParser:  solcParser,
		solcVersion: parsedVersion,
		logger:      logging.GlobalLogger.NewSubLogger("module", "repl"),
	}, nil
}

// DefaultEnvironment creates an empty Environment pinned to the system-wide solc version, falling back to
// the default version when no solc installation can be queried.
func DefaultEnvironment(solcParser parser.Parser) (*Environment, error) {
	versionString := solc.DefaultVersion
	if systemVersion, err := solc.GetSystemSolcVersion(); err == nil {
		versionString = systemVersion.String()
	} else {
		logging.GlobalLogger.Debug(fmt.Sprintf("Could not query the system solc version, using default %s", solc.DefaultVersion))
	}
	return NewEnvironment(solcParser, versionString)
}

// SolcVersion returns the solc version the session is pinned to.
func (e *Environment) SolcVersion() *semver.Version {
	return e.solcVersion
}

// Session returns the session's accepted snippets, in submission order. The returned slice is shared with
// the Environment and must not be modified.
func (e *Environment) Session() []*SolSnippet {
	return e.session
}

// ID returns the session's cache identity, or nil if the session has never been persisted.
func (e *Environment) ID() *int {
	return e.id
}

// Submit parses the provided fragment of source code and appends it to the session. If parsing fails, the
// fragment is rejected, the session is left unchanged and the parse failure is returned.
func (e *Environment) Submit(text string) error {
	sourceUnit, err := e.solcParser.Parse(text)
	if err != nil {
		e.logger.Debug(fmt.Sprintf("Rejected fragment: %v", err))
		return errors.Wrap(err, "fragment rejected")
	}
	e.session = append(e.session, &SolSnippet{
		SourceUnit: sourceUnit,
		Raw:        text,
	})
	return nil
}

// Persist writes the session to the provided cache. On the first persist, the cache allocates the session's
// id and it is permanently assigned to the Environment; later persists overwrite the same snapshot file.
// Returns the path of the written snapshot file, or an error if the write failed.
func (e *Environment) Persist(sessionCache *cache.SessionCache) (string, error) {
	// Build the snapshot: each snippet's raw text is stored twice, as the parsed form is reconstructed by
	// re-parsing on load.
	records := make([]cache.SnippetRecord, len(e.session))
	for i, snippet := range e.session {
		records[i] = cache.SnippetRecord{
			SourceUnit: snippet.Raw,
			Raw:        snippet.Raw,
		}
	}
	snapshot := &cache.Snapshot{
		SolcVersion: e.solcVersion.String(),
		Session:     records,
		ID:          e.id,
	}

	// Write the snapshot; the cache assigns an id on first write.
	path, err := sessionCache.Write(snapshot)
	if err != nil {
		return "", err
	}
	e.id = snapshot.ID
	return path, nil
}

// RestoreSession loads the named snapshot from the provided cache and reconstructs its Environment. Every
// stored snippet is re-parsed through the provided parser; if any stored text fails to re-parse, the restore
// is aborted. Returns the restored Environment, or an error if one occurs.
func RestoreSession(sessionCache *cache.SessionCache, solcParser parser.Parser, name string) (*Environment, error) {
	snapshot, err := sessionCache.Read(name)
	if err != nil {
		return nil, err
	}
	return environmentFromSnapshot(snapshot, solcParser)
}

// RestoreLatestSession loads the most recently modified snapshot from the provided cache and reconstructs
// its Environment. Returns cache.ErrNoSessions if the cache holds no snapshots, or another error if the
// restore fails.
func RestoreLatestSession(sessionCache *cache.SessionCache, solcParser parser.Parser) (*Environment, error) {
	snapshot, err := sessionCache.ReadLatest()
	if err != nil {
		return nil, err
	}
	return environmentFromSnapshot(snapshot, solcParser)
}

// environmentFromSnapshot reconstructs an Environment from a loaded snapshot, re-parsing every stored
// snippet. Returns an error if the stored version or any stored snippet is invalid.
func environmentFromSnapshot(snapshot *cache.Snapshot, solcParser parser.Parser) (*Environment, error) {
	environment, err := NewEnvironment(solcParser, snapshot.SolcVersion)
	if err != nil {
		return nil, err
	}
	for i, record := range snapshot.Session {
		sourceUnit, err := solcParser.Parse(record.SourceUnit)
		if err != nil {
			return nil, errors.Wrapf(err, "could not re-parse stored snippet %d", i)
		}
		environment.session = append(environment.session, &SolSnippet{
			SourceUnit: sourceUnit,
			Raw:        record.Raw,
		})
	}
	environment.id = snapshot.ID
	return environment, nil
}
