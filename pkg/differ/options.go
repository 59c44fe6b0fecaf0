package differ

// Option configures a Differ.
type Option func(*differ)

// WithIgnoreFields excludes the named fields from comparison. Valid
// names are cloneof, romof, isbios, and roms.
func WithIgnoreFields(fields ...string) Option {
	return func(d *differ) {
		for _, field := range fields {
			d.ignoreFields[field] = true
		}
	}
}
