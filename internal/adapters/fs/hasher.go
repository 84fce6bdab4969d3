package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Checksum returns the XXHash of data as 16 lowercase hex digits.
func Checksum(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
