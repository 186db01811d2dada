package app

import (
	"io"

	"linesplit/internal/chunker"
)

// Run режет r на строки и раскладывает их по файлам в OutputDir
func (a *App) Run(r io.Reader) error {
	if a.progress != nil {
		a.progress.Printf("splitting into %s (max %d lines per file, sync=%s)",
			a.cfg.OutputDir, a.cfg.MaxLinePerFile, a.cfg.FileSyncType)
	}
	return a.writer.Split(chunker.NewLineSource(r))
}
