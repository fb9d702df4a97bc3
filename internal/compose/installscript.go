package compose

import (
	"fmt"

	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/errors"
	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/release"
	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/util"
)

const installScriptTemplate = `set -ex

yum install -y --downloaddir=/dev/shm %s
`

// RenderInstallScript returns a shell script that installs the RPM at url.
func RenderInstallScript(url string) string {
	return fmt.Sprintf(installScriptTemplate, url)
}

// InstallScript writes the install script for rel to a new file in dir (the
// system temp dir when empty). Ownership of the returned path passes to the
// caller.
func InstallScript(rel *release.Release, dir string) (string, error) {
	path, err := util.WriteTempFile(dir, "ovirt-release-install-*.sh", []byte(RenderInstallScript(rel.URL)), 0755)
	if err != nil {
		return "", errors.E("compose-install-script", err)
	}
	return path, nil
}
