package digest

import "fmt"

// HashData hashes data with the named algorithm and writes the binary
// digest into hash, which the caller owns before, during, and after the
// call. len(hash) is the buffer's declared capacity; it must be at least
// the canonical digest length for the algorithm (64 bytes is enough for
// every supported algorithm).
//
// On success the return value is the canonical digest length in bytes
// (the exact number written), never the buffer capacity. On failure the
// return value is -1, the error wraps one of ErrInvalidArgument,
// ErrUnknownAlgorithm, or ErrBufferTooSmall, the failure is recorded
// once through the error reporter, and hash is left untouched: no
// partial digest is ever exposed.
//
// Returns an error if:
//   - algorithm is empty, data is empty, or hash has zero capacity
//   - algorithm is not provided by the backend compiled into this build
//   - len(hash) is smaller than the algorithm's canonical digest length
//
// The call is a pure, bounded transformation of its input: no internal
// state is retained between calls, so concurrent calls with distinct
// buffers are safe.
func HashData(algorithm string, data, hash []byte) (int, error) {
	if algorithm == "" || len(data) == 0 || len(hash) == 0 {
		return -1, fail("Bad arguments to function.",
			fmt.Errorf("hashing requires an algorithm, data, and an output buffer: %w", ErrInvalidArgument))
	}

	alg, ok := hashAlgorithms[algorithm]
	if !ok {
		// The minimalcrypto build demands a 64-byte reservation before
		// it will admit to not knowing an algorithm; see backend_minimal.go.
		if len(hash) < unknownAlgorithmReserve {
			return -1, fail("Hash buffer too small.",
				fmt.Errorf("hash buffer is %d bytes, need %d: %w", len(hash), unknownAlgorithmReserve, ErrBufferTooSmall))
		}
		return -1, fail("Unknown hash algorithm.",
			fmt.Errorf("unsupported algorithm %q: %w", algorithm, ErrUnknownAlgorithm))
	}

	if len(hash) < alg.size {
		return -1, fail("Hash buffer too small.",
			fmt.Errorf("hash buffer is %d bytes, %q needs %d: %w", len(hash), algorithm, alg.size, ErrBufferTooSmall))
	}

	alg.sum(data, hash[:alg.size])
	return alg.size, nil
}

// HashSum is a convenience wrapper around HashData that allocates the
// canonical-size buffer for the caller and returns the digest.
//
// Same algorithm set and error taxonomy as HashData; use HashData
// directly to control buffer ownership.
func HashSum(algorithm string, data []byte) ([]byte, error) {
	alg, ok := hashAlgorithms[algorithm]
	if !ok {
		// Let HashData validate and report so the failure surfaces the
		// same way as a direct call.
		buf := make([]byte, maxDigestSize)
		_, err := HashData(algorithm, data, buf)
		return nil, err
	}

	buf := make([]byte, alg.size)
	n, err := HashData(algorithm, data, buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// maxDigestSize is the largest canonical digest length of any supported
// algorithm (SHA-512).
const maxDigestSize = 64
