// Command bicepcheck statically checks Azure Bicep templates for security
// misconfigurations, naming convention violations, hardcoded secrets, and
// missing resource dependency safeguards.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
