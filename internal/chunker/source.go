package chunker

import (
	"bufio"
	"errors"
	"io"
)

const readBufSize = 64 * 1024

// LineSource режет поток по байту '\n'. '\r' не удаляется.
type LineSource struct {
	r   *bufio.Reader
	err error
}

// NewLineSource создаёт источник строк поверх r
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{r: bufio.NewReaderSize(r, readBufSize)}
}

// Next возвращает очередную строку без завершающего '\n'.
// Последняя строка без '\n' тоже считается записью.
func (s *LineSource) Next() ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}

	line, err := s.r.ReadBytes('\n')
	switch {
	case err == nil:
		return line[:len(line)-1], nil
	case errors.Is(err, io.EOF):
		s.err = io.EOF
		if len(line) > 0 {
			return line, nil
		}
		return nil, io.EOF
	default:
		// Недочитанный хвост не отдаём: строка могла оборваться
		s.err = err
		return nil, err
	}
}
