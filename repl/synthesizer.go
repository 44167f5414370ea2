package repl

import (
	"fmt"
	"strings"
)

// contractSourceTemplate is the fixed shape of every synthesized program: a license marker, the pragma line,
// the import block, and a single REPL contract whose fallback hosts the snippets that are not independently
// top-level-valid.
const contractSourceTemplate = `// SPDX-License-Identifier: UNLICENSED
%s

// Imports
%s

/// @title REPL
/// @notice Auto-generated by solrepl
contract REPL {
    %s

    fallback() external {
        %s
    }
}
`

// ContractSource renders the full source code for the current session. Synthesis is a deterministic function
// of the ordered session content alone: rendering an unmodified session twice yields byte-identical output.
//
// Snippets must be crafted with care to render correctly. A snippet beginning with a variable declaration is
// placed entirely in the contract fallback, so any definitions following the declaration in the same snippet
// will fail to compile there. This mirrors classification by leading declaration only.
func (e *Environment) ContractSource() string {
	// Extract the pragma line from the first snippet led by a pragma directive, falling back to a line
	// synthesized from the environment's pinned solc version.
	pragma := fmt.Sprintf("pragma solidity %s;", e.solcVersion.String())
	for _, snippet := range e.session {
		if Classify(snippet) == PlacementPragma {
			pragma = snippet.Raw
			break
		}
	}

	// Collect every import path from every snippet, in session order then in-tree order. Duplicate paths
	// are preserved as-is.
	var imports []string
	for _, snippet := range e.session {
		imports = append(imports, snippet.SourceUnit.ImportPaths()...)
	}

	// Collect the verbatim text of the snippets destined for the contract body and the fallback body,
	// preserving session order within each group.
	var topLevel []string
	var fallback []string
	for _, snippet := range e.session {
		switch Classify(snippet) {
		case PlacementTopLevel:
			topLevel = append(topLevel, snippet.Raw)
		case PlacementFallback:
			fallback = append(fallback, snippet.Raw)
		}
	}

	return fmt.Sprintf(
		contractSourceTemplate,
		pragma,
		strings.Join(imports, "\n"),
		strings.Join(topLevel, "\n\n"),
		strings.Join(fallback, "\n"),
	)
}
