package project

import (
	"crypto/sha256"
)

// Digest is a fixed 256-bit hash.
type Digest [32]byte

// Sum hashes raw bytes into a Digest.
func Sum(data []byte) Digest {
	return Digest(sha256.Sum256(data))
}

// Combine builds a cache key: H(content || part1 || part2 ...).
// Callers must pass parts in a deterministic order.
func Combine(content Digest, parts ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range parts {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// CacheKey derives the key under which compiled output for a source file is
// stored: the file content, the compiler version and the options that
// change the produced IR.
func CacheKey(content []byte, version string, options ...string) Digest {
	parts := make([]Digest, 0, len(options)+1)
	parts = append(parts, Sum([]byte(version)))
	for _, opt := range options {
		parts = append(parts, Sum([]byte(opt)))
	}
	return Combine(Sum(content), parts...)
}
