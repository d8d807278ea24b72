package main

import (
	cmd "github.com/vanet-dev/trust-node/cmd/trust-cli/modules"
)

func main() {
	cmd.Execute()
}
