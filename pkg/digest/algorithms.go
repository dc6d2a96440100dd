// Package digest computes message digests for IPP credential operations
// (for example, encoding a password for the "job-password" attribute) and
// renders them as hexadecimal text.
//
// The package is a thin, algorithm-agnostic facade: callers name an
// algorithm by its IPP "job-password-encryption" keyword and supply their
// own output buffer; the facade resolves the name to a backend primitive,
// enforces buffer-size safety, and writes the binary digest in one shot.
//
// # Basic Usage
//
// Hash a password and format it for transport:
//
//	buf := make([]byte, 64)
//	n, err := digest.HashData(digest.AlgorithmSHA256, password, buf)
//	if err != nil {
//	    // handle invalid argument / unknown algorithm / short buffer
//	}
//	hexbuf := make([]byte, 2*n+1)
//	s, _ := digest.HashString(buf[:n], hexbuf)
//
// # Algorithms
//
// The recognized identifiers are exactly the registered, non-deprecated
// IPP hash algorithm keywords:
//
//   - "md5" (deprecated but widely used)
//   - "sha" (SHA-1)
//   - "sha2-224", "sha2-256", "sha2-384", "sha2-512"
//   - "sha2-512_224", "sha2-512_256" (SHA-512 truncated to 28/32 bytes)
//
// Identifier matching is case-sensitive and exact. Which identifiers are
// actually available depends on the backend compiled in; the default
// backend provides all of them, while the minimalcrypto build provides
// only "md5". Use SupportedAlgorithms to enumerate the active set.
//
// There is no key derivation, no HMAC, and no streaming interface here:
// every call hashes one whole buffer and produces one whole digest.
package digest

import (
	"fmt"
	"sort"
)

// Algorithm identifiers accepted by HashData. These are the IPP
// "job-password-encryption" keyword values; matching is case-sensitive.
const (
	AlgorithmMD5        = "md5"
	AlgorithmSHA        = "sha" // SHA-1
	AlgorithmSHA224     = "sha2-224"
	AlgorithmSHA256     = "sha2-256"
	AlgorithmSHA384     = "sha2-384"
	AlgorithmSHA512     = "sha2-512"
	AlgorithmSHA512_224 = "sha2-512_224" // SHA-512 truncated to 28 bytes
	AlgorithmSHA512_256 = "sha2-512_256" // SHA-512 truncated to 32 bytes
)

// hashAlgorithm is one entry of the backend's algorithm table: the
// canonical digest length in bytes and the one-shot sum function that
// writes exactly size bytes into its output slice.
type hashAlgorithm struct {
	size int
	sum  func(data, out []byte)
}

// SupportedAlgorithms returns the identifiers provided by the backend
// compiled into this build, sorted alphabetically.
//
// The default backend provides all eight registered identifiers; the
// minimalcrypto build provides only "md5".
func SupportedAlgorithms() []string {
	algs := make([]string, 0, len(hashAlgorithms))
	for alg := range hashAlgorithms {
		algs = append(algs, alg)
	}
	sort.Strings(algs)
	return algs
}

// DigestSize returns the canonical digest length in bytes for the named
// algorithm, so callers can size output buffers before hashing.
//
// Returns an error if the identifier is not provided by this build.
// Unlike HashData, this is a pure query and does not hit the error
// reporter.
func DigestSize(algorithm string) (int, error) {
	alg, ok := hashAlgorithms[algorithm]
	if !ok {
		return -1, fmt.Errorf("unsupported algorithm %q: %w", algorithm, ErrUnknownAlgorithm)
	}
	return alg.size, nil
}
