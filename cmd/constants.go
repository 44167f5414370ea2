package cmd

// DefaultProjectConfigFilename describes the default config filename for a given project folder.
const DefaultProjectConfigFilename = "solrepl.json"

// LatestSessionName describes the session argument which resolves to the most recently modified snapshot.
const LatestSessionName = "latest"
