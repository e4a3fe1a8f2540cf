// SPDX-License-Identifier: MIT

// Command letterbox creates, inspects and routes across .lb grids.
//
//	letterbox new --rows 20 --cols 20 -o level.lb
//	letterbox path --grid level.lb --from 0,0 --to 19,19
//	letterbox reach --grid level.lb --from 0,0
//	letterbox batch --scenario swarm.yaml
//	letterbox convert --scenario swarm.yaml -o level.lb
//
// Settings are read from LETTERBOX_* variables and an optional .env file.
package main

import (
	"context"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		log.Error(err)
		os.Exit(1)
	}
}
