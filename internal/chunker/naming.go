package chunker

import "fmt"

// HexName: 8 hex-цифр с ведущими нулями и расширение .txt
func HexName(ix int) string {
	return fmt.Sprintf("%08x.txt", ix)
}
