package romset

// Set is a single ROM set entry from a DAT file. Field names follow the
// DAT attributes they are read from.
type Set struct {
	// Name is the set name, unique within a catalog. On disk the set is
	// expected at <name>.zip.
	Name string `json:"name" yaml:"name"`

	// CloneOf names the parent set this one is a clone of. Empty for
	// standalone sets. Merge and split reconciliation follow this link.
	CloneOf string `json:"cloneof,omitempty" yaml:"cloneof,omitempty"`

	// RomOf records BIOS or parent lineage as written in the DAT.
	// Informational only; reconciliation never consults it.
	RomOf string `json:"romof,omitempty" yaml:"romof,omitempty"`

	// IsBIOS marks a BIOS set. A BIOS set's members are never merged
	// upward into its own parent.
	IsBIOS bool `json:"isbios,omitempty" yaml:"isbios,omitempty"`

	// ROMs maps member file names to their expected digests.
	ROMs DigestMap `json:"roms,omitempty" yaml:"roms,omitempty"`
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	if s == nil {
		return nil
	}
	out := *s
	out.ROMs = s.ROMs.Clone()
	return &out
}

// IsClone reports whether the set references a parent.
func (s *Set) IsClone() bool {
	return s.CloneOf != ""
}
