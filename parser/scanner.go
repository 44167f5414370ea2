package parser

import (
	"fmt"
	"strings"
)

// scanner walks raw source text, splitting it into top-level declarations. Declarations are delimited at brace
// nesting depth zero: a brace-bodied definition ends at its closing brace, any other declaration at its
// semicolon.
type scanner struct {
	// src is the raw source text being scanned.
	src string

	// pos is the current byte offset into src.
	pos int
}

// newScanner creates a scanner over the provided source text.
func newScanner(src string) *scanner {
	return &scanner{src: src}
}

// eof indicates whether the scanner has consumed all of its input.
func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

// scanTrivia consumes whitespace and comments up to the next declaration, returning the comments encountered.
// Returns an error if a block comment is unterminated.
func (s *scanner) scanTrivia() ([]Comment, error) {
	var comments []Comment
	for !s.eof() {
		ch := s.src[s.pos]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			s.pos++
		case ch == '/' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '/':
			comments = append(comments, Comment{Text: s.scanLineComment()})
		case ch == '/' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '*':
			text, err := s.scanBlockComment()
			if err != nil {
				return nil, err
			}
			comments = append(comments, Comment{Text: text})
		default:
			return comments, nil
		}
	}
	return comments, nil
}

// scanLineComment consumes a `//` comment up to (not including) the line terminator and returns its text.
func (s *scanner) scanLineComment() string {
	start := s.pos
	for !s.eof() && s.src[s.pos] != '\n' {
		s.pos++
	}
	return s.src[start:s.pos]
}

// scanBlockComment consumes a `/* ... */` comment and returns its text. Returns an error if the comment is
// not terminated before the end of input.
func (s *scanner) scanBlockComment() (string, error) {
	start := s.pos
	s.pos += 2
	for s.pos+1 < len(s.src) {
		if s.src[s.pos] == '*' && s.src[s.pos+1] == '/' {
			s.pos += 2
			return s.src[start:s.pos], nil
		}
		s.pos++
	}
	return "", fmt.Errorf("unterminated block comment at offset %d", start)
}

// scanString consumes a single- or double-quoted string literal, honoring backslash escapes, and returns its
// unquoted contents. Returns an error if the literal is not terminated before the end of the line or input.
func (s *scanner) scanString() (string, error) {
	quote := s.src[s.pos]
	start := s.pos
	s.pos++
	var contents strings.Builder
	for !s.eof() {
		ch := s.src[s.pos]
		if ch == '\\' && s.pos+1 < len(s.src) {
			contents.WriteByte(ch)
			contents.WriteByte(s.src[s.pos+1])
			s.pos += 2
			continue
		}
		if ch == quote {
			s.pos++
			return contents.String(), nil
		}
		if ch == '\n' {
			break
		}
		contents.WriteByte(ch)
		s.pos++
	}
	return "", fmt.Errorf("unterminated string literal at offset %d", start)
}

// peekWord returns the identifier-like word beginning at the current position, without consuming it. Returns
// the empty string if the current character cannot start an identifier.
func (s *scanner) peekWord() string {
	end := s.pos
	for end < len(s.src) && isIdentifierChar(s.src[end]) {
		end++
	}
	return s.src[s.pos:end]
}

// scanDeclaration consumes one top-level declaration and determines its kind from its leading keyword. The
// declaration ends at the first semicolon at nesting depth zero, or at the closing brace which returns the
// nesting depth to zero. Returns an error on unbalanced delimiters or if the input ends before a terminator.
func (s *scanner) scanDeclaration() (Declaration, error) {
	start := s.pos

	// A bare semicolon is its own declaration.
	if s.src[s.pos] == ';' {
		s.pos++
		return Declaration{Kind: KindStraySemicolon, Text: ";"}, nil
	}

	kind := declarationKind(s.peekWord())
	importPath := ""
	depth := 0

	// Only brace-bodied kinds end at a closing brace. Other declarations run to their semicolon; braces
	// within them (e.g. the symbol list of `import {a, b} from "p";`) never terminate the declaration.
	braceBodied := kind == KindContract || kind == KindEnum || kind == KindStruct || kind == KindFunction
	for !s.eof() {
		ch := s.src[s.pos]
		switch {
		case ch == '/' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '/':
			// Comments inside a declaration remain part of its text.
			s.scanLineComment()
			continue
		case ch == '/' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '*':
			if _, err := s.scanBlockComment(); err != nil {
				return Declaration{}, err
			}
			continue
		case ch == '"' || ch == '\'':
			literal, err := s.scanString()
			if err != nil {
				return Declaration{}, err
			}
			// The first string literal of an import directive is its path. Every import form carries
			// exactly one.
			if kind == KindImport && importPath == "" {
				importPath = literal
			}
			continue
		case ch == '{' || ch == '(' || ch == '[':
			depth++
		case ch == ')' || ch == ']':
			depth--
			if depth < 0 {
				return Declaration{}, fmt.Errorf("unbalanced '%c' at offset %d", ch, s.pos)
			}
		case ch == '}':
			depth--
			if depth < 0 {
				return Declaration{}, fmt.Errorf("unbalanced '}' at offset %d", s.pos)
			}
			// A closing brace returning to depth zero ends a brace-bodied declaration.
			if braceBodied && depth == 0 {
				s.pos++
				return Declaration{Kind: kind, Text: s.src[start:s.pos], ImportPath: importPath}, nil
			}
		case ch == ';' && depth == 0:
			s.pos++
			return Declaration{Kind: kind, Text: s.src[start:s.pos], ImportPath: importPath}, nil
		}
		s.pos++
	}
	if depth != 0 {
		return Declaration{}, fmt.Errorf("unbalanced delimiters in declaration starting at offset %d", start)
	}
	return Declaration{}, fmt.Errorf("declaration starting at offset %d has no terminator", start)
}

// declarationKind maps a declaration's leading keyword to its DeclarationKind. Words that are not recognized
// keywords begin a variable declaration (e.g. an elementary type name such as `uint256`).
func declarationKind(word string) DeclarationKind {
	switch word {
	case "pragma":
		return KindPragma
	case "import":
		return KindImport
	case "contract", "interface", "library", "abstract":
		return KindContract
	case "enum":
		return KindEnum
	case "struct":
		return KindStruct
	case "event":
		return KindEvent
	case "error":
		return KindError
	case "function", "constructor", "modifier", "receive", "fallback":
		return KindFunction
	case "type":
		return KindTypeAlias
	case "using":
		return KindUsing
	default:
		return KindVariable
	}
}

// isIdentifierChar indicates whether the provided character can appear in a Solidity identifier.
func isIdentifierChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '_' || ch == '$'
}
