package main

import (
	"os"
	"userapi-go/internal/cli"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Error().Err(err).Msg("userapi exited with error")
		os.Exit(1)
	}
}
