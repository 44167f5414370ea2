// Package parser splits raw Solidity source text into a SourceUnit: an ordered list of top-level declarations
// with their comments. It recognizes just enough structure to determine each declaration's kind and the literal
// paths of import directives; it performs no semantic analysis and produces no partial results on failure.
package parser

// Parser describes a capability which parses raw Solidity source text into a SourceUnit, or fails with an
// error. No partial SourceUnit is ever produced on failure.
type Parser interface {
	// Parse parses the provided source text into a SourceUnit. Returns the parsed SourceUnit, or an error if
	// the text could not be parsed.
	Parse(source string) (*SourceUnit, error)
}

// SolidityParser provides the default Parser implementation, backed by this package's declaration scanner.
type SolidityParser struct{}

// NewParser creates a SolidityParser.
func NewParser() *SolidityParser {
	return &SolidityParser{}
}

// Parse parses the provided source text into a SourceUnit. Returns the parsed SourceUnit, or an error if the
// text could not be parsed.
func (p *SolidityParser) Parse(source string) (*SourceUnit, error) {
	return Parse(source)
}

// Parse parses the provided source text into a SourceUnit holding every top-level declaration in source order,
// along with the comments found between them. Returns an error if the text contains unbalanced delimiters, an
// unterminated string or comment, or a declaration with no terminator. Text consisting only of whitespace and
// comments parses successfully into a unit with no declarations.
func Parse(source string) (*SourceUnit, error) {
	s := newScanner(source)
	unit := &SourceUnit{}
	for {
		// Consume any whitespace and comments preceding the next declaration.
		comments, err := s.scanTrivia()
		if err != nil {
			return nil, err
		}
		unit.Comments = append(unit.Comments, comments...)

		// If we've exhausted the input, the unit is complete.
		if s.eof() {
			return unit, nil
		}

		// Scan the next top-level declaration.
		declaration, err := s.scanDeclaration()
		if err != nil {
			return nil, err
		}
		unit.Declarations = append(unit.Declarations, declaration)
	}
}
