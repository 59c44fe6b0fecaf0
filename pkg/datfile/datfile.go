// Package datfile loads MAME-style DAT files into ROM set catalogs.
//
// Both the older clrmamepro dialect (<datafile> with <game> elements) and
// the -listxml dialect (<mame> with <machine> elements) are accepted. Only
// the attributes the checker cares about are read: set name, cloneof,
// romof, isbios, and each <rom>'s name and sha1.
package datfile

import (
	"encoding/xml"
	"io"
	"io/fs"
	"os"

	"github.com/romweave/romcheck/pkg/errors"
	"github.com/romweave/romcheck/pkg/logging"
	"github.com/romweave/romcheck/pkg/romset"
)

// game mirrors one <game> or <machine> element in a DAT file.
type game struct {
	Name    string `xml:"name,attr"`
	CloneOf string `xml:"cloneof,attr"`
	RomOf   string `xml:"romof,attr"`
	IsBIOS  string `xml:"isbios,attr"`
	ROMs    []rom  `xml:"rom"`
}

// rom mirrors one <rom> child element.
type rom struct {
	Name string `xml:"name,attr"`
	SHA1 string `xml:"sha1,attr"`
}

// Load reads and parses the DAT file at path.
// A missing or unreadable file returns an IOError, malformed XML a
// ParseError. Both are fatal to a check run: without a catalog there is
// nothing to verify against.
func Load(path string) (*romset.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	return parse(f, path)
}

// LoadFS reads and parses the named DAT file from fsys.
func LoadFS(fsys fs.FS, name string) (*romset.Catalog, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, errors.WrapIO("open", name, err)
	}
	defer func() { _ = f.Close() }()

	return parse(f, name)
}

// Parse decodes a DAT document from r.
func Parse(r io.Reader) (*romset.Catalog, error) {
	return parse(r, "")
}

// parse streams through the document decoding one set element at a time,
// so multi-hundred-megabyte DAT files never need a full DOM in memory.
func parse(r io.Reader, file string) (*romset.Catalog, error) {
	log := logging.Default()
	cat := romset.NewCatalog()

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("xml", file, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "game" && start.Name.Local != "machine" {
			continue
		}

		var g game
		if err := dec.DecodeElement(&g, &start); err != nil {
			return nil, errors.WrapParse("xml", file, err)
		}

		set := g.toSet()
		if set.Name == "" {
			log.Debug().Str("dat", file).Msg("skipping set element without a name")
			continue
		}
		if cat.Exists(set.Name) {
			log.Debug().Str("dat", file).Str("set", set.Name).Msg("duplicate set name, last one wins")
		}
		if err := cat.Set(set); err != nil {
			return nil, errors.WrapParse("xml", file, err)
		}
	}

	return cat, nil
}

// toSet converts a decoded element into a catalog set.
// A duplicated member name keeps the last occurrence. A member without a
// sha1 attribute is kept with an empty digest: it stays visible in the
// catalog but is excluded from verification.
func (g *game) toSet() *romset.Set {
	roms := make(romset.DigestMap, len(g.ROMs))
	for _, r := range g.ROMs {
		if r.Name == "" {
			continue
		}
		roms[r.Name] = romset.Digest(r.SHA1)
	}

	return &romset.Set{
		Name:    g.Name,
		CloneOf: g.CloneOf,
		RomOf:   g.RomOf,
		IsBIOS:  g.IsBIOS == "yes",
		ROMs:    roms,
	}
}
