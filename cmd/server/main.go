package main

import (
	"github.com/notemesh/backend/internal/server"
	"github.com/notemesh/backend/internal/util"
	"github.com/notemesh/backend/pkg/logger"
	"github.com/notemesh/backend/pkg/logger/console"

	_ "github.com/lib/pq"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.New(console.Params{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
