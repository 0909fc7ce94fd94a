// Package ident mints identifiers for columnar data: random GUIDs for
// temporary file names and xxhash64 fingerprints for buffer identity.
package ident

import (
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// GUID returns a fresh 32-character lowercase hex identifier, safe for
// temporary file and directory names.
func GUID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// Fingerprint returns the xxhash64 fingerprint of buf.
func Fingerprint(buf []byte) uint64 {
	return xxhash.Sum64(buf)
}

// FingerprintString is Fingerprint for string data, without copying.
func FingerprintString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// BufferDigest folds the ordered buffers of a column — validity bitmap,
// offsets, values — into a single fingerprint. The zero value is not usable;
// construct with NewBufferDigest.
type BufferDigest struct {
	digest *xxhash.Digest
}

func NewBufferDigest() *BufferDigest {
	return &BufferDigest{digest: xxhash.New()}
}

// Write folds buf into the digest.
func (d *BufferDigest) Write(buf []byte) {
	// xxhash writes cannot fail.
	_, _ = d.digest.Write(buf)
}

// Sum64 returns the fingerprint of everything written so far.
func (d *BufferDigest) Sum64() uint64 {
	return d.digest.Sum64()
}
