// SPDX-License-Identifier: MIT

// profsample loads a profile catalog and samples, describes or exports its
// profiles.
//
// Usage:
//
//	profsample list                      - List the profiles of the catalog
//	profsample describe <id>             - Print resolved metadata as YAML
//	profsample sample <id>               - Print a table of sampled values
//	profsample export --db <path>        - Store metadata and samples in SQLite
//
// Global flags:
//
//	--config <path>      - Catalog document (default: profiles.yaml)
//	--log-level <level>  - debug, info, warn, error (default: info)
//	--dim <1|2>          - Override the catalog dimensionality
//	--domain <l1,l2>     - Override the catalog domain lengths
//	--duration <t>       - Override the catalog duration
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
