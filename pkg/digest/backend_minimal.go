//go:build minimalcrypto

package digest

import "crypto/md5" //nolint:gosec // the minimal backend is MD5-only by definition

// Minimal backend: MD5 only, for builds that must not link the full
// digest suite. Mirrors the degraded CUPS build compiled without a
// native crypto provider.
var hashAlgorithms = map[string]hashAlgorithm{
	AlgorithmMD5: {size: md5.Size, sum: sumMD5},
}

// unknownAlgorithmReserve preserves the degraded-build convention that
// callers reserve a 64-byte buffer before an unrecognized algorithm is
// reported; a shorter buffer fails as too small first.
const unknownAlgorithmReserve = 64

func sumMD5(data, out []byte) {
	d := md5.Sum(data) //nolint:gosec
	copy(out, d[:])
}
