package main

import "github.com/sandrobonazzola/ovirt-patch-verifier/cmd/ovirt-release/cmd"

func main() {
	cmd.Execute()
}
