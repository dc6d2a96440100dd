//go:build !minimalcrypto

package digest

import "testing"

// Benchmark fixtures - shared input sizes matching common password and
// payload lengths.
var (
	benchData256B = make([]byte, 256)
	benchData1KB  = make([]byte, 1024)
	benchData10KB = make([]byte, 10*1024)
)

func init() {
	for _, data := range [][]byte{benchData256B, benchData1KB, benchData10KB} {
		for i := range data {
			data[i] = byte(i)
		}
	}
}

func benchmarkHashData(b *testing.B, algorithm string, data []byte) {
	buf := make([]byte, 64)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := HashData(algorithm, data, buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHashData_MD5_1KB(b *testing.B)        { benchmarkHashData(b, AlgorithmMD5, benchData1KB) }
func BenchmarkHashData_SHA1_1KB(b *testing.B)       { benchmarkHashData(b, AlgorithmSHA, benchData1KB) }
func BenchmarkHashData_SHA256_256B(b *testing.B)    { benchmarkHashData(b, AlgorithmSHA256, benchData256B) }
func BenchmarkHashData_SHA256_1KB(b *testing.B)     { benchmarkHashData(b, AlgorithmSHA256, benchData1KB) }
func BenchmarkHashData_SHA256_10KB(b *testing.B)    { benchmarkHashData(b, AlgorithmSHA256, benchData10KB) }
func BenchmarkHashData_SHA512_1KB(b *testing.B)     { benchmarkHashData(b, AlgorithmSHA512, benchData1KB) }
func BenchmarkHashData_SHA512_224_1KB(b *testing.B) { benchmarkHashData(b, AlgorithmSHA512_224, benchData1KB) }

func BenchmarkHashString(b *testing.B) {
	digest := make([]byte, 64)
	if _, err := HashData(AlgorithmSHA512, benchData1KB, digest); err != nil {
		b.Fatal(err)
	}
	buf := make([]byte, 2*len(digest)+1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := HashString(digest, buf); err != nil {
			b.Fatal(err)
		}
	}
}
