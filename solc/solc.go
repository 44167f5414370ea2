// Package solc resolves the solc compiler version configured on the host system.
package solc

import (
	"errors"
	"fmt"
	"os/exec"
	"regexp"

	"github.com/Masterminds/semver"
)

// DefaultVersion describes the solc version assumed when no system solc installation can be queried.
const DefaultVersion = "0.8.17"

// GetSystemSolcVersion obtains the version of the system-wide solc installation by executing
// `solc --version` and parsing its output. Returns the parsed version, or an error if solc could not be
// executed or its output could not be parsed.
func GetSystemSolcVersion() (*semver.Version, error) {
	// Run solc --version to obtain our compiler version.
	out, err := exec.Command("solc", "--version").CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("error while executing solc:\nOUTPUT:\n%s\nERROR: %s\n", string(out), err.Error())
	}

	// Parse the compiler version out of the output
	exp := regexp.MustCompile(`\d+\.\d+\.\d+`)
	versionStr := exp.FindString(string(out))
	if versionStr == "" {
		return nil, errors.New("could not parse solc version using 'solc --version'")
	}

	// Parse our semver string and return it
	return semver.NewVersion(versionStr)
}
