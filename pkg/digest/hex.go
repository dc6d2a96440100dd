package digest

import (
	"encoding/hex"
	"fmt"
)

// HashString formats a binary digest as a lowercase hexadecimal string,
// writing into the caller-supplied buffer and returning the formatted
// string for direct chaining.
//
// buffer must hold at least 2*len(hash)+1 bytes: two hex characters per
// digest byte plus a NUL terminator, so the buffer remains usable as a
// C-style string when handed to IPP attribute code. Each byte is encoded
// high nibble first, left to right, using the digits 0-9a-f; there are
// no separators and no uppercase variant.
//
// Returns an error if hash is empty, buffer is nil, or buffer is shorter
// than 2*len(hash)+1. On failure the buffer is reset to an empty string
// (first byte zeroed) rather than left holding a partial encoding, the
// failure is recorded once through the error reporter, and the returned
// string is empty.
func HashString(hash, buffer []byte) (string, error) {
	if len(hash) < 1 || buffer == nil {
		resetString(buffer)
		return "", fail("Bad arguments to function.",
			fmt.Errorf("formatting requires a digest and an output buffer: %w", ErrInvalidArgument))
	}
	if len(buffer) < 2*len(hash)+1 {
		resetString(buffer)
		return "", fail("Hash buffer too small.",
			fmt.Errorf("string buffer is %d bytes, need %d: %w", len(buffer), 2*len(hash)+1, ErrBufferTooSmall))
	}

	n := hex.Encode(buffer, hash)
	buffer[n] = 0
	return string(buffer[:n]), nil
}

// resetString leaves a failed output buffer holding an empty string
// instead of undefined partial state.
func resetString(buffer []byte) {
	if len(buffer) > 0 {
		buffer[0] = 0
	}
}
