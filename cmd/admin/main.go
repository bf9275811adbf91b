// Command admin manages API clients. Clients are never created through the
// HTTP API.
package main

import (
	"os"

	"github.com/BruksfildServices01/catalog-api/internal/logger"
)

func main() {
	log := logger.Init(logger.Options{Pretty: true, Output: os.Stderr})

	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("admin")
	}
}
