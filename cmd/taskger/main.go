package main

import (
	"fmt"
	"os"
	"time"

	"taskger/internal/api"
	"taskger/internal/config"
	"taskger/internal/logger"
	"taskger/internal/ui"
)

func main() {
	configPath := config.ResolveConfigPath()
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Nop()
	if cfg.DebugLog != "" {
		log, err = logger.New(cfg.DebugLog)
		if err != nil {
			fmt.Printf("failed to open debug log: %v\n", err)
			os.Exit(1)
		}
	}
	defer log.Sync()

	client := api.New(cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second, log)

	if err := ui.Run(client, cfg); err != nil {
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}
