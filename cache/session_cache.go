// Package cache provides filesystem-backed persistence for REPL sessions. Each session is stored as one JSON
// snapshot file in a cache directory, named by the session's numeric id.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/crytic/solrepl/logging"
	"github.com/crytic/solrepl/utils"
	"github.com/pkg/errors"
)

// ErrNoSessions indicates a lookup against an empty session cache. It is distinct from I/O failure so that
// callers can treat a fresh cache as a not-found condition rather than an error in the cache itself.
var ErrNoSessions = errors.New("no sessions exist in the cache directory")

const (
	// sessionFilePrefix is the prefix of every snapshot file name in the cache directory.
	sessionFilePrefix = "solrepl-"

	// sessionFileSuffix is the suffix of every snapshot file name in the cache directory.
	sessionFileSuffix = ".json"
)

// SessionCache describes a store of session snapshot files within a single cache directory. All operations
// are synchronous and blocking; no locking protects the directory, so concurrent processes sharing it can
// race id allocation against writes.
type SessionCache struct {
	// directory is the directory in which snapshot files are stored.
	directory string

	// logger describes the SessionCache's sub-logger used to report cache activity.
	logger *logging.Logger
}

// DefaultCacheDirectory returns the default per-user cache directory for sessions, beneath the user's home
// directory. Returns an error if the home directory could not be resolved.
func DefaultCacheDirectory() (string, error) {
	homeDirectory, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WithStack(err)
	}
	return filepath.Join(homeDirectory, ".cache", "solrepl"), nil
}

// NewSessionCache creates a SessionCache over the provided directory, creating the directory if it does not
// exist. If directory is empty, the default per-user cache directory is used. Returns an error if the
// directory could not be resolved or created.
func NewSessionCache(directory string) (*SessionCache, error) {
	// Resolve the default directory if none was provided.
	if directory == "" {
		defaultDirectory, err := DefaultCacheDirectory()
		if err != nil {
			return nil, err
		}
		directory = defaultDirectory
	}

	// Ensure the cache directory exists.
	err := utils.MakeDirectory(directory)
	if err != nil {
		return nil, err
	}

	return &SessionCache{
		directory: directory,
		logger:    logging.GlobalLogger.NewSubLogger("module", "cache"),
	}, nil
}

// Directory returns the directory in which this cache stores its snapshot files.
func (c *SessionCache) Directory() string {
	return c.directory
}

// SessionFileInfo describes one stored snapshot file: its name within the cache directory and its last
// modification time.
type SessionFileInfo struct {
	// Name is the snapshot's file name within the cache directory.
	Name string

	// ModifiedTime is the snapshot file's last modification time.
	ModifiedTime time.Time
}

// Enumerate lists every stored snapshot's file name and last modification time. Returns an error if the
// cache directory or an entry's metadata could not be read.
func (c *SessionCache) Enumerate() ([]SessionFileInfo, error) {
	// Read the cache directory entries
	entries, err := os.ReadDir(c.directory)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// For each entry, obtain the file name and modification time
	sessions := make([]SessionFileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		sessions = append(sessions, SessionFileInfo{Name: entry.Name(), ModifiedTime: info.ModTime()})
	}
	return sessions, nil
}

// AllocateNextID determines the id for the next session to be written. If no snapshots exist, it returns
// zero. Otherwise it finds the snapshot with the greatest modification time and returns its embedded id plus
// one. Returns an error if the directory could not be read or the newest file name does not embed a
// parseable id.
func (c *SessionCache) AllocateNextID() (int, error) {
	// List the stored sessions; an empty cache starts id allocation at zero.
	sessions, err := c.Enumerate()
	if err != nil {
		return 0, err
	}
	if len(sessions) == 0 {
		return 0, nil
	}

	// Find the most recently modified session and parse its embedded id.
	latest := latestSession(sessions)
	id, err := parseSessionID(latest.Name)
	if err != nil {
		return 0, err
	}
	return id + 1, nil
}

// Write persists the provided snapshot as a JSON file in the cache directory. If the snapshot already
// carries an id, the corresponding file is overwritten. Otherwise the next id is allocated and permanently
// assigned to the snapshot before a new file is written. Returns the path of the written file, or an error
// if id allocation, serialization or the write failed.
func (c *SessionCache) Write(snapshot *Snapshot) (string, error) {
	// Allocate and assign an id if the snapshot has never been written.
	if snapshot.ID == nil {
		id, err := c.AllocateNextID()
		if err != nil {
			return "", err
		}
		snapshot.ID = &id
	}

	// Serialize the snapshot
	b, err := json.MarshalIndent(snapshot, "", "\t")
	if err != nil {
		return "", errors.WithStack(err)
	}

	// Write it to the file named by the snapshot's id
	path := filepath.Join(c.directory, sessionFileName(*snapshot.ID))
	err = os.WriteFile(path, b, 0644)
	if err != nil {
		return "", errors.WithStack(err)
	}
	c.logger.Debug(fmt.Sprintf("Wrote session snapshot to %s", path))
	return path, nil
}

// Read loads the snapshot stored under the provided file name within the cache directory. Returns an error
// if the file could not be read or does not contain a valid snapshot.
func (c *SessionCache) Read(name string) (*Snapshot, error) {
	// Read the stored snapshot file data
	b, err := os.ReadFile(filepath.Join(c.directory, name))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Deserialize the snapshot
	snapshot := &Snapshot{}
	err = json.Unmarshal(b, snapshot)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return snapshot, nil
}

// LatestSessionName returns the file name of the most recently modified snapshot in the cache directory.
// Returns ErrNoSessions if the cache holds no snapshots, or an error if the directory could not be read.
func (c *SessionCache) LatestSessionName() (string, error) {
	sessions, err := c.Enumerate()
	if err != nil {
		return "", err
	}
	if len(sessions) == 0 {
		return "", ErrNoSessions
	}
	return latestSession(sessions).Name, nil
}

// ReadLatest loads the most recently modified snapshot in the cache directory. Returns ErrNoSessions if the
// cache holds no snapshots, or an error if the snapshot could not be read.
func (c *SessionCache) ReadLatest() (*Snapshot, error) {
	name, err := c.LatestSessionName()
	if err != nil {
		return nil, err
	}
	return c.Read(name)
}

// Purge deletes every entry directly under the cache directory, files and directories alike. This is
// irreversible; there is no backup and no confirmation at this layer. The first entry which fails to delete
// aborts the purge with that entry's error.
func (c *SessionCache) Purge() error {
	entries, err := os.ReadDir(c.directory)
	if err != nil {
		return errors.WithStack(err)
	}
	for _, entry := range entries {
		path := filepath.Join(c.directory, entry.Name())
		if entry.IsDir() {
			err = os.RemoveAll(path)
		} else {
			err = os.Remove(path)
		}
		if err != nil {
			return errors.WithStack(err)
		}
	}
	c.logger.Debug(fmt.Sprintf("Purged %d entries from the session cache", len(entries)))
	return nil
}

// latestSession returns the session with the greatest modification time from a non-empty list. Ties resolve
// to the later entry, so enumeration order breaks exact-timestamp ties deterministically.
func latestSession(sessions []SessionFileInfo) SessionFileInfo {
	latest := sessions[0]
	for _, session := range sessions[1:] {
		if !session.ModifiedTime.Before(latest.ModifiedTime) {
			latest = session
		}
	}
	return latest
}

// sessionFileName returns the snapshot file name embedding the provided session id.
func sessionFileName(id int) string {
	return fmt.Sprintf("%s%d%s", sessionFilePrefix, id, sessionFileSuffix)
}

// parseSessionID extracts the numeric session id embedded in a snapshot file name. Returns an error if the
// name does not embed a parseable id.
func parseSessionID(name string) (int, error) {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(name, sessionFilePrefix), sessionFileSuffix)
	id, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("could not parse session id from file name '%s'", name)
	}
	return id, nil
}
