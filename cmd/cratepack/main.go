// cratepack — 3D bin-packing engine for warehouse order fulfillment.
//
// Reads item catalogues, order rows, and container catalogues (CSV,
// Excel, or JSON) and packs each order into the smallest container from
// the catalogue that fits it, writing placement CSV/Excel, a PDF packing
// manifest, and QR-coded shipping labels.
//
// Build:
//
//	go build -o cratepack ./cmd/cratepack
package main

import (
	"os"

	"github.com/piwi3910/cratepack/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
