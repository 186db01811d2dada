package chunker

import (
	"fmt"
	"os"
	"strings"
)

// SyncType выбирает, насколько надёжно файл сбрасывается на диск
type SyncType string

const (
	SyncTypeNop  SyncType = "nop"
	SyncTypeData SyncType = "data"
	SyncTypeAll  SyncType = "all"
)

// ParseSyncType принимает ровно "nop", "data" или "all"
func ParseSyncType(s string) (SyncType, error) {
	switch t := SyncType(s); t {
	case SyncTypeNop, SyncTypeData, SyncTypeAll:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSyncType, s)
	}
}

// UnmarshalText позволяет читать SyncType прямо из env
func (t *SyncType) UnmarshalText(b []byte) error {
	parsed, err := ParseSyncType(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t SyncType) String() string {
	return string(t)
}

// Func возвращает SyncFunc для режима. Пустое значение трактуется как nop.
func (t SyncType) Func() SyncFunc {
	switch t {
	case SyncTypeData:
		return SyncData
	case SyncTypeAll:
		return SyncAll
	default:
		return SyncNop
	}
}

// SyncNop ничего не делает: данные уже переданы ОС через Flush
func SyncNop(*os.File) error {
	return nil
}

// SyncAll сбрасывает данные и метаданные (fsync)
func SyncAll(f *os.File) error {
	return f.Sync()
}
