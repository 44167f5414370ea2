package parser

// DeclarationKind represents the kind of a top-level declaration in a Solidity source unit. It is a closed
// enumeration: every top-level construct the parser recognizes maps to exactly one kind.
type DeclarationKind int

const (
	// KindPragma represents a `pragma` directive
	KindPragma DeclarationKind = iota
	// KindImport represents an `import` directive
	KindImport
	// KindContract represents a contract, interface or library definition
	KindContract
	// KindEnum represents an `enum` definition
	KindEnum
	// KindStruct represents a `struct` definition
	KindStruct
	// KindEvent represents an `event` definition
	KindEvent
	// KindError represents an `error` definition
	KindError
	// KindFunction represents a function, constructor, modifier, receive or fallback definition
	KindFunction
	// KindVariable represents a top-level variable declaration
	KindVariable
	// KindTypeAlias represents a user-defined value type (`type X is Y;`)
	KindTypeAlias
	// KindUsing represents a `using ... for ...` directive
	KindUsing
	// KindStraySemicolon represents a bare `;` with no preceding declaration
	KindStraySemicolon
)

// String returns a human-readable name for the declaration kind.
func (k DeclarationKind) String() string {
	switch k {
	case KindPragma:
		return "pragma"
	case KindImport:
		return "import"
	case KindContract:
		return "contract"
	case KindEnum:
		return "enum"
	case KindStruct:
		return "struct"
	case KindEvent:
		return "event"
	case KindError:
		return "error"
	case KindFunction:
		return "function"
	case KindVariable:
		return "variable"
	case KindTypeAlias:
		return "type"
	case KindUsing:
		return "using"
	case KindStraySemicolon:
		return "semicolon"
	default:
		return "unknown"
	}
}

// Declaration represents a single top-level declaration within a SourceUnit.
type Declaration struct {
	// Kind describes which top-level construct this declaration is.
	Kind DeclarationKind

	// Text is the exact source text of the declaration, sliced out of the submitted fragment.
	Text string

	// ImportPath holds the string-literal path of an import directive. It is only populated when Kind is
	// KindImport.
	ImportPath string
}

// Comment represents a comment attached to a source unit.
type Comment struct {
	// Text is the exact source text of the comment, including its delimiters.
	Text string
}

// SourceUnit represents the parsed form of one submitted fragment: an ordered list of top-level declarations
// along with the comments found between them. A SourceUnit is never mutated after the parser produces it.
type SourceUnit struct {
	// Declarations holds the top-level declarations in source order.
	Declarations []Declaration

	// Comments holds the comments encountered while parsing, in source order.
	Comments []Comment
}

// FirstDeclaration returns the leading top-level declaration of the unit, or false if the unit holds no
// declarations at all.
func (u *SourceUnit) FirstDeclaration() (Declaration, bool) {
	if len(u.Declarations) == 0 {
		return Declaration{}, false
	}
	return u.Declarations[0], true
}

// ImportPaths returns the string-literal path of every import directive in the unit, in source order.
func (u *SourceUnit) ImportPaths() []string {
	var paths []string
	for _, decl := range u.Declarations {
		if decl.Kind == KindImport {
			paths = append(paths, decl.ImportPath)
		}
	}
	return paths
}
