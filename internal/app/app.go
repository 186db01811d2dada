package app

import (
	"fmt"
	"log"
	"os"

	"linesplit/internal/chunker"
	"linesplit/internal/config"
)

type App struct {
	cfg      *config.Config
	writer   *chunker.Writer
	progress *log.Logger
}

func New(cfg *config.Config) (*App, error) {
	var progress *log.Logger
	if cfg.ShowProgress {
		progress = log.New(os.Stderr, "", log.LstdFlags)
	}

	w, err := chunker.NewWriter(chunker.Config{
		Dir:      cfg.OutputDir,
		MaxLines: cfg.MaxLinePerFile,
		Name:     chunker.HexName,
		Sync:     cfg.FileSyncType.Func(),
		Progress: progress,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chunk writer: %w", err)
	}

	return &App{cfg: cfg, writer: w, progress: progress}, nil
}
