//go:build !minimalcrypto

package digest

import (
	"crypto/md5"  //nolint:gosec // IPP job-password-encryption requires MD5
	"crypto/sha1" //nolint:gosec // IPP job-password-encryption requires SHA-1
	"crypto/sha256"
	"crypto/sha512"
)

// Default backend: every registered identifier, served by the standard
// library digest primitives. The table is the single source of truth
// consulted by HashData for both the canonical length and the backend
// function.
var hashAlgorithms = map[string]hashAlgorithm{
	AlgorithmMD5:        {size: md5.Size, sum: sumMD5},
	AlgorithmSHA:        {size: sha1.Size, sum: sumSHA1},
	AlgorithmSHA224:     {size: sha256.Size224, sum: sumSHA224},
	AlgorithmSHA256:     {size: sha256.Size, sum: sumSHA256},
	AlgorithmSHA384:     {size: sha512.Size384, sum: sumSHA384},
	AlgorithmSHA512:     {size: sha512.Size, sum: sumSHA512},
	AlgorithmSHA512_224: {size: sha256.Size224, sum: sumSHA512Trunc224},
	AlgorithmSHA512_256: {size: sha256.Size, sum: sumSHA512Trunc256},
}

// unknownAlgorithmReserve is zero here: the full backend reports an
// unknown algorithm no matter how small the buffer is.
const unknownAlgorithmReserve = 0

func sumMD5(data, out []byte) {
	d := md5.Sum(data) //nolint:gosec
	copy(out, d[:])
}

func sumSHA1(data, out []byte) {
	d := sha1.Sum(data) //nolint:gosec
	copy(out, d[:])
}

func sumSHA224(data, out []byte) {
	d := sha256.Sum224(data)
	copy(out, d[:])
}

func sumSHA256(data, out []byte) {
	d := sha256.Sum256(data)
	copy(out, d[:])
}

func sumSHA384(data, out []byte) {
	d := sha512.Sum384(data)
	copy(out, d[:])
}

func sumSHA512(data, out []byte) {
	d := sha512.Sum512(data)
	copy(out, d[:])
}

// The sha2-512_224 and sha2-512_256 identifiers are plain truncations of
// the full SHA-512 digest, not the FIPS 180-4 SHA-512/224 and SHA-512/256
// functions (those use different initial values). The full digest lands
// in a call-scoped scratch array and only the leading bytes are copied
// out.

func sumSHA512Trunc224(data, out []byte) {
	temp := sha512.Sum512(data)
	copy(out, temp[:sha256.Size224])
}

func sumSHA512Trunc256(data, out []byte) {
	temp := sha512.Sum512(data)
	copy(out, temp[:sha256.Size])
}
