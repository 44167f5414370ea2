package repl

import (
	"github.com/crytic/solrepl/parser"
)

// SolSnippet represents one accepted fragment of Solidity code: the parsed source unit alongside the raw
// text it was parsed from. Both fields are views of the same submission and neither is mutated after the
// snippet is created. Raw is shared by reference wherever the snippet's text is rendered; Go strings are
// immutable, so no copy is ever required.
type SolSnippet struct {
	// SourceUnit is the parsed form of the snippet.
	SourceUnit *parser.SourceUnit

	// Raw is the source code exactly as submitted.
	Raw string
}

// String returns the snippet's raw source code.
func (s *SolSnippet) String() string {
	return s.Raw
}
