package cache

// Snapshot describes the durable form of a REPL environment: its pinned solc version, its ordered session
// records, and its cache identity. A Snapshot holds raw text only; parsed source units are always
// reconstructed by re-parsing when a snapshot is loaded.
type Snapshot struct {
	// SolcVersion is the semantic version string the session's environment was pinned to.
	SolcVersion string `json:"solc_version"`

	// Session holds the environment's accepted snippets, in submission order.
	Session []SnippetRecord `json:"session"`

	// ID is the numeric cache identity embedded in the snapshot's file name. It is nil for an environment
	// which has never been persisted; SessionCache.Write assigns it on the first write.
	ID *int `json:"id,omitempty"`
}

// SnippetRecord describes one persisted snippet. The source unit representation is not persistence-stable,
// so the raw text is stored twice rather than serializing the parsed form; loaders re-parse SourceUnit to
// reconstruct the tree.
type SnippetRecord struct {
	// SourceUnit is the snippet's raw source text, re-parsed on load to reconstruct the declaration tree.
	SourceUnit string `json:"source_unit"`

	// Raw is the snippet's raw source text exactly as submitted.
	Raw string `json:"raw"`
}
