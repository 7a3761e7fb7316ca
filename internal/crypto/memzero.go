package crypto

import (
	"crypto/subtle"
	"runtime"
)

// Wipe zeroes each buffer in place. Best-effort: copies of the data made
// elsewhere are not reached.
//
//go:noinline
func Wipe(bufs ...[]byte) {
	for _, b := range bufs {
		if len(b) == 0 {
			continue
		}
		subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
	}
	runtime.KeepAlive(bufs)
}
