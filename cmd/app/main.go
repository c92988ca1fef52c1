package main

import (
	"eikaiwa/config"
	"eikaiwa/di"
	"eikaiwa/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
