package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
)

const validExtension = ".csv"

var (
	ErrMissingArgument  = errors.New("an input file path must be provided, like so: ledger transactions.csv")
	ErrInvalidExtension = errors.New("the input file must have a csv extension")
	ErrFileNotFound     = errors.New("input file not found")
)

type Config struct {
	LogLvl      string `env:"LOG_LVL"      envDefault:"info"`
	Workers     int    `env:"WORKERS"      envDefault:"1"`
	MetricsFile string `env:"METRICS_FILE" envDefault:""`
	InputPath   string
}

func New() *Config {
	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.IntVar(&cfg.Workers, "w", cfg.Workers, "number of client partitions processed in parallel")
	flag.StringVar(&cfg.MetricsFile, "m", cfg.MetricsFile, "write prometheus metrics to this file after the run")
	flag.Parse()

	cfg.InputPath = flag.Arg(0)
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return cfg
}

// ValidateInput checks that an input path was given, ends in .csv and names an existing file.
func (c *Config) ValidateInput() error {
	if c.InputPath == "" {
		return ErrMissingArgument
	}
	if filepath.Ext(c.InputPath) != validExtension {
		return fmt.Errorf("%w: %s", ErrInvalidExtension, c.InputPath)
	}
	info, err := os.Stat(c.InputPath)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, c.InputPath)
	}
	if err != nil {
		return fmt.Errorf("can't stat input file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrFileNotFound, c.InputPath)
	}
	return nil
}
