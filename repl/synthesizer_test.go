package repl

import (
	"strings"
	"testing"

	"github.com/crytic/solrepl/parser"
	"github.com/stretchr/testify/assert"
)

// newTestEnvironment creates an Environment pinned to the provided version for testing, failing the test if
// creation fails.
func newTestEnvironment(t *testing.T, solcVersion string) *Environment {
	environment, err := NewEnvironment(parser.NewParser(), solcVersion)
	assert.NoError(t, err)
	return environment
}

// submitAll submits each provided fragment to the environment, failing the test on rejection.
func submitAll(t *testing.T, environment *Environment, fragments ...string) {
	for _, fragment := range fragments {
		assert.NoError(t, environment.Submit(fragment))
	}
}

// TestContractSourceScenario will test the full synthesized output for a session holding a pragma, a
// variable declaration and a function definition.
func TestContractSourceScenario(t *testing.T) {
	environment := newTestEnvironment(t, "0.8.17")
	submitAll(t, environment, "pragma solidity 0.8.17;", "uint256 x;", "function f() {}")

	expected := `// SPDX-License-Identifier: UNLICENSED
pragma solidity 0.8.17;

// Imports


/// @title REPL
/// @notice Auto-generated by solrepl
contract REPL {
    function f() {}

    fallback() external {
        uint256 x;
    }
}
`
	assert.EqualValues(t, expected, environment.ContractSource())
}

// TestContractSourceDeterminism will test that rendering an unmodified session twice yields byte-identical
// output.
func TestContractSourceDeterminism(t *testing.T) {
	environment := newTestEnvironment(t, "0.8.17")
	submitAll(t, environment,
		"import \"./A.sol\";",
		"struct Point { uint x; }",
		"uint256 counter;",
		"function bump() public {}",
	)

	first := environment.ContractSource()
	second := environment.ContractSource()
	assert.EqualValues(t, first, second)
}

// TestContractSourceOrderPreservation will test that both placement groups preserve relative submission
// order, independent of which group each fragment lands in.
func TestContractSourceOrderPreservation(t *testing.T) {
	environment := newTestEnvironment(t, "0.8.17")
	submitAll(t, environment,
		"function a() public {}",
		"uint256 first;",
		"event B();",
		"uint256 second;",
		"function c() public {}",
	)

	source := environment.ContractSource()

	// The contract body holds the top-level fragments in submission order.
	assert.Less(t, strings.Index(source, "function a() public {}"), strings.Index(source, "event B();"))
	assert.Less(t, strings.Index(source, "event B();"), strings.Index(source, "function c() public {}"))

	// The fallback body holds the variable fragments in submission order.
	assert.Less(t, strings.Index(source, "uint256 first;"), strings.Index(source, "uint256 second;"))
}

// TestContractSourcePragmaPrecedence will test that an explicit pragma fragment is rendered verbatim and
// that a session without one synthesizes a pragma from the environment's pinned version.
func TestContractSourcePragmaPrecedence(t *testing.T) {
	// A session with an explicit pragma renders that exact text.
	environment := newTestEnvironment(t, "0.8.17")
	submitAll(t, environment, "pragma solidity >=0.8.0 <0.9.0;")
	assert.Contains(t, environment.ContractSource(), "pragma solidity >=0.8.0 <0.9.0;")

	// A session with no pragma renders a synthesized line embedding the pinned version.
	environment = newTestEnvironment(t, "0.8.19")
	submitAll(t, environment, "uint256 x;")
	assert.Contains(t, environment.ContractSource(), "pragma solidity 0.8.19;")
}

// TestContractSourceImports will test that every import directive anywhere in any fragment contributes its
// literal path to the import block, in record order then in-tree order, without deduplication.
func TestContractSourceImports(t *testing.T) {
	environment := newTestEnvironment(t, "0.8.17")
	submitAll(t, environment,
		"import \"./B.sol\";\nimport \"./C.sol\";",
		// An import buried behind a leading variable declaration still contributes its path, even though
		// the fragment itself is placed in the fallback.
		"uint256 x;\nimport \"./D.sol\";",
		// Duplicates are preserved as-is.
		"import \"./B.sol\";",
	)

	source := environment.ContractSource()
	assert.Contains(t, source, "// Imports\n./B.sol\n./C.sol\n./D.sol\n./B.sol\n")
}
