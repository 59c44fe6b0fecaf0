// Package archive reads ROM set archives the way collections keep them
// on disk: a flat directory of zip files, one per set, members hashed
// with SHA-1.
package archive

import (
	"archive/zip"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/romweave/romcheck/pkg/constants"
	"github.com/romweave/romcheck/pkg/errors"
	"github.com/romweave/romcheck/pkg/romset"
)

// DirStore serves set archives from a flat directory of zip files. It
// implements verify.Store. The directory is not touched until the first
// lookup.
type DirStore struct {
	dir string
}

// New creates a store rooted at dir.
func New(dir string) *DirStore {
	return &DirStore{dir: dir}
}

// Dir returns the directory the store reads from.
func (s *DirStore) Dir() string {
	return s.dir
}

// Path returns the path the named set's archive would occupy.
func (s *DirStore) Path(name string) string {
	return filepath.Join(s.dir, name+constants.ZipExt)
}

// Digests returns the SHA-1 digest of every member of the named set's
// archive. An absent archive returns a NotFoundError; an archive that
// exists but cannot be read returns an IOError.
func (s *DirStore) Digests(ctx context.Context, name string) (romset.DigestMap, error) {
	path := s.Path(name)
	r, err := zip.OpenReader(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("archive", name)
		}
		return nil, errors.WrapIO("open", path, err)
	}
	defer r.Close()

	return digestAll(ctx, &r.Reader, path)
}

// List returns the set names of every archive in the directory, without
// the .zip extension, sorted.
func (s *DirStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.WrapIO("read", s.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), constants.ZipExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), constants.ZipExt))
	}
	sort.Strings(names)
	return names, nil
}

// ZipDigests returns the SHA-1 digest of every member of an arbitrary
// zip file.
func ZipDigests(ctx context.Context, path string) (romset.DigestMap, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer r.Close()

	return digestAll(ctx, &r.Reader, path)
}

// digestAll hashes every file in the archive. Directory entries are
// skipped; a member listed twice keeps the last digest.
func digestAll(ctx context.Context, r *zip.Reader, path string) (romset.DigestMap, error) {
	out := make(romset.DigestMap, len(r.File))
	h := sha1.New()

	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if f.FileInfo().IsDir() {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, errors.WrapIO("read", path, err)
		}
		h.Reset()
		_, copyErr := io.Copy(h, rc)
		closeErr := rc.Close()
		if copyErr != nil {
			return nil, errors.WrapIO("read", path, copyErr)
		}
		if closeErr != nil {
			return nil, errors.WrapIO("close", path, closeErr)
		}

		out[f.Name] = romset.Digest(hex.EncodeToString(h.Sum(nil)))
	}

	return out, nil
}
