// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"

	"github.com/idosh/clipwash/cmd/clipwash/cmd"
	"github.com/idosh/clipwash/logger"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
