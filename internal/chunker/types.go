package chunker

import (
	"errors"
	"log"
	"os"
)

var (
	// ErrInvalidCapacity - лимит строк на файл меньше 1
	ErrInvalidCapacity = errors.New("max lines per file must be at least 1")
	// ErrUnknownSyncType - неизвестный режим синхронизации
	ErrUnknownSyncType = errors.New("unknown sync type")
)

// Source отдаёт записи по одной. На исчерпании возвращает io.EOF,
// любая другая ошибка считается ошибкой чтения.
type Source interface {
	Next() ([]byte, error)
}

// NameFunc превращает индекс файла в имя файла
type NameFunc func(ix int) string

// SyncFunc применяется к записанному файлу перед закрытием
type SyncFunc func(f *os.File) error

// Config содержит параметры разбиения
type Config struct {
	Dir      string   // Каталог для файлов
	MaxLines int      // Максимум записей в одном файле
	Name     NameFunc // По умолчанию HexName
	Sync     SyncFunc // По умолчанию SyncNop
	Progress *log.Logger
}
