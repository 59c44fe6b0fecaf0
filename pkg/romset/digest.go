// Package romset defines the core types shared across the romcheck system:
// ROM digests, sets, and the ordered catalog that loaders produce and the
// reconciler and verifier consume.
package romset

import (
	"maps"
	"sort"
	"strings"
)

// Digest is a hex-encoded checksum as recorded in a DAT file.
// It is treated as an opaque token: compared case-insensitively and never
// length-checked, so casing differences between tools don't produce
// spurious mismatches.
type Digest string

// Normalize returns the digest lowered to its canonical form.
func (d Digest) Normalize() Digest {
	return Digest(strings.ToLower(string(d)))
}

// Equal reports whether two digests match, ignoring case.
func (d Digest) Equal(other Digest) bool {
	return strings.EqualFold(string(d), string(other))
}

// IsZero reports whether the digest is empty.
func (d Digest) IsZero() bool {
	return d == ""
}

// String returns the digest with its original casing.
func (d Digest) String() string {
	return string(d)
}

// DigestMap maps member file names to their expected digests.
type DigestMap map[string]Digest

// Clone returns a copy of the map. A nil map clones to nil.
func (m DigestMap) Clone() DigestMap {
	if m == nil {
		return nil
	}
	out := make(DigestMap, len(m))
	maps.Copy(out, m)
	return out
}

// Names returns the member names in sorted order.
func (m DigestMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
