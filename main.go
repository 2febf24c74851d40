// Kasa-cli is a tool for command-line access to TP-Link Kasa cloud devices.
package main

import (
	"github.com/kasa-tools/kasa-cli/cmd"
)

func main() {
	cmd.Run()
}
