package main

import (
	stdlog "log"
	"os"

	"tableflip.dev/taskbook/pkg/commands"
	"tableflip.dev/taskbook/pkg/kv"
	"tableflip.dev/taskbook/pkg/logger"
)

func main() {
	cfg, err := kv.LoadConfig()
	if err != nil {
		stdlog.Fatalf("error loading config: %v", err)
	}
	if err := logger.Init(logger.Config{
		Debug:  os.Getenv("TASKBOOK_DEBUG") != "",
		LogDir: cfg.BasePath() + ".logs",
	}); err != nil {
		stdlog.Fatalf("error setting up logging: %v", err)
	}

	if err := commands.New().Execute(); err != nil {
		stdlog.Fatalf("error during command execution: %v", err)
	}
}
