package driver

import (
	"crypto/sha256"
	"encoding/binary"

	"fortio.org/safecast"
)

// Digest is a SHA-256 sum, as stored in source.File.Hash.
type Digest = [32]byte

// combineDigest: H(content || part1 || part2 ...). Части в детерминированном порядке.
func combineDigest(content Digest, parts ...[]byte) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, p := range parts {
		_, _ = h.Write(p)
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// cacheKey binds a file hash to every option that changes scan output.
func cacheKey(content Digest, opts Options) Digest {
	var buf [8]byte
	binary.LittleEndian.PutUint16(buf[0:], diskCacheSchemaVersion)
	buf[2] = byte(opts.Version)
	if opts.CheckRegex {
		buf[3] = 1
	}
	limit, err := safecast.Conv[uint32](opts.maxDiagnostics())
	if err != nil {
		limit = 0
	}
	binary.LittleEndian.PutUint32(buf[4:], limit)
	return combineDigest(content, buf[:])
}

// IsSHA256 performs a basic sanity check that the digest is non-zero.
func IsSHA256(d Digest) bool {
	var z Digest
	return d != z
}
