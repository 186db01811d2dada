package chunker

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	filePerm     = 0o644
	writeBufSize = 64 * 1024
)

// Writer раскладывает записи из Source по файлам не больше MaxLines записей
type Writer struct {
	config Config
}

// NewWriter проверяет конфиг и подставляет значения по умолчанию
func NewWriter(config Config) (*Writer, error) {
	if strings.TrimSpace(config.Dir) == "" {
		return nil, errors.New("output dir is empty")
	}
	if config.MaxLines < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, config.MaxLines)
	}
	if config.Name == nil {
		config.Name = HexName
	}
	if config.Sync == nil {
		config.Sync = SyncNop
	}
	return &Writer{config: config}, nil
}

// Split читает src до конца и пишет файлы с индексами 0, 1, 2...
// Первая ошибка прерывает работу; уже записанные файлы остаются на диске.
func (w *Writer) Split(src Source) error {
	for ix := 0; ; ix++ {
		exhausted, err := w.writeChunk(src, ix)
		if err != nil {
			return err
		}
		if exhausted {
			return nil
		}
	}
}

// writeChunk пишет один файл. exhausted=true, если источник закончился.
func (w *Writer) writeChunk(src Source, ix int) (exhausted bool, err error) {
	path := filepath.Join(w.config.Dir, w.config.Name(ix))

	f, err := createFile(path)
	if err != nil {
		return false, fmt.Errorf("create %s: %w", path, err)
	}
	bw := bufio.NewWriterSize(f, writeBufSize)

	wrote := 0
	for wrote < w.config.MaxLines {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			exhausted = true
			break
		}
		if err != nil {
			// Частично записанный файл оставляем как есть
			_ = bw.Flush()
			_ = f.Close()
			return false, fmt.Errorf("read record for %s: %w", path, err)
		}
		if err := writeRecord(bw, rec); err != nil {
			_ = f.Close()
			return false, fmt.Errorf("write %s: %w", path, err)
		}
		wrote++
	}

	if wrote == 0 {
		if err := f.Close(); err != nil {
			return false, fmt.Errorf("close %s: %w", path, err)
		}
		if err := os.Remove(path); err != nil {
			return false, fmt.Errorf("remove empty %s: %w", path, err)
		}
		return true, nil
	}

	if err := commit(f, bw, w.config.Sync); err != nil {
		return false, fmt.Errorf("commit %s: %w", path, err)
	}

	if w.config.Progress != nil {
		w.config.Progress.Printf("%s wrote.", path)
	}
	return exhausted, nil
}

// createFile создаёт новый файл; существующий файл не перезаписывается
func createFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, filePerm)
}

func writeRecord(bw *bufio.Writer, rec []byte) error {
	if _, err := bw.Write(rec); err != nil {
		return err
	}
	return bw.WriteByte('\n')
}

// commit: Flush -> Sync -> Close. Файл закрывается в любом случае.
func commit(f *os.File, bw *bufio.Writer, sync SyncFunc) error {
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	if err := sync(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
