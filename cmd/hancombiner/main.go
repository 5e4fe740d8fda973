package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"hancombiner/internal/app"
	"hancombiner/internal/cli"
	"hancombiner/internal/config"
	"hancombiner/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hancombiner: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	opts, err := cli.Parse(os.Args)
	if err != nil {
		return err
	}
	if opts.ShowHelp {
		fmt.Println(opts.Usage)
		return nil
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	cfg, err = opts.Apply(cfg)
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log := logger.New(os.Stderr, level, cfg.Log.Format)
	log.Debug("starting", "mode", cfg.Input.Mode, "policy", cfg.Policy().String())

	return app.NewRuntime(cfg, log, os.Stdout).Run(os.Stdin)
}
