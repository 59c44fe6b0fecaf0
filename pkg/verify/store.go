package verify

import (
	"context"

	"github.com/romweave/romcheck/pkg/romset"
)

// Store provides the on-disk view of a collection, one archive per set.
type Store interface {
	// Digests returns the digest of every member of the named archive,
	// keyed by member name. An absent archive returns an error matching
	// errors.ErrNotFound; an archive that exists but cannot be read
	// returns any other error.
	Digests(ctx context.Context, name string) (romset.DigestMap, error)
}
