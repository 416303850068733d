// Package main is the entry point for the storecheck application.
package main

import (
	"github.com/samber/lo"
	"github.com/storecheck-cli/storecheck/cmd"
	"github.com/storecheck-cli/storecheck/config"
	"github.com/storecheck-cli/storecheck/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
