package repl

import (
	"github.com/crytic/solrepl/parser"
)

// Placement represents where a snippet lands in the synthesized contract source. It is a closed enumeration;
// every snippet maps to exactly one placement.
type Placement int

const (
	// PlacementExcluded indicates the snippet contributes nothing to the synthesized source.
	PlacementExcluded Placement = iota

	// PlacementPragma indicates the snippet is a candidate for the single program-wide pragma line.
	PlacementPragma

	// PlacementImport indicates the snippet contributes its import paths to the shared import block.
	PlacementImport

	// PlacementTopLevel indicates the snippet is rendered verbatim inside the synthesized contract body.
	PlacementTopLevel

	// PlacementFallback indicates the snippet is rendered verbatim inside the synthesized fallback body.
	PlacementFallback
)

// String returns a human-readable name for the placement.
func (p Placement) String() string {
	switch p {
	case PlacementPragma:
		return "pragma"
	case PlacementImport:
		return "import"
	case PlacementTopLevel:
		return "top-level"
	case PlacementFallback:
		return "fallback"
	default:
		return "excluded"
	}
}

// Classify determines a snippet's placement from its leading top-level declaration alone. Later declarations
// in the same snippet never influence the result: a snippet whose first declaration is excluded is excluded
// in full, even if subsequent declarations would have qualified elsewhere. Snippets with no declarations at
// all (e.g. only comments) are excluded.
func Classify(snippet *SolSnippet) Placement {
	declaration, ok := snippet.SourceUnit.FirstDeclaration()
	if !ok {
		return PlacementExcluded
	}
	switch declaration.Kind {
	case parser.KindPragma:
		return PlacementPragma
	case parser.KindImport:
		return PlacementImport
	case parser.KindEnum, parser.KindStruct, parser.KindEvent, parser.KindError,
		parser.KindFunction, parser.KindTypeAlias, parser.KindUsing:
		return PlacementTopLevel
	case parser.KindVariable:
		return PlacementFallback
	default:
		// Contract definitions and stray semicolons contribute nothing.
		return PlacementExcluded
	}
}
