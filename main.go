package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/pokedle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("pokedle")
		os.Exit(1)
	}
}
