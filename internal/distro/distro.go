// Package distro classifies a distribution-version string into the family
// and deps repo file it is served by.
package distro

import (
	"fmt"
	"regexp"

	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/errors"
)

// Family is the coarse distribution class a repo file is built for.
type Family string

const (
	Fedora Family = "fc"
	EL     Family = "el"
)

// Target describes the distribution a repo file is composed for.
type Target struct {
	Family Family
	// DepsFile is the name of the dependency repo shipped for this distro.
	DepsFile string
}

// Both patterns only anchor at the start: "fc345" is read as Fedora 34.
var (
	fedoraPattern = regexp.MustCompile(`^fc([0-9]{2})`)
	elPattern     = regexp.MustCompile(`^el[0-9]+`)
)

// Parse classifies a distribution version string such as "fc34" or "el8".
func Parse(distver string) (Target, error) {
	if m := fedoraPattern.FindStringSubmatch(distver); m != nil {
		return Target{Family: Fedora, DepsFile: fmt.Sprintf("ovirt-f%s-deps.repo", m[1])}, nil
	}
	if elPattern.MatchString(distver) {
		return Target{Family: EL, DepsFile: fmt.Sprintf("ovirt-%s-deps.repo", distver)}, nil
	}
	return Target{}, errors.K("parse-distro", errors.InvalidDistro, fmt.Errorf("unsupported distro version: %q", distver))
}
