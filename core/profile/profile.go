package profile

import (
	"fmt"
	"strings"

	"dataset-reconciler/core/table"
)

// Filter restricts a snapshot to rows whose trimmed value in Column belongs
// to the Allow list. A reconciliation applies the same filter to both sides,
// otherwise the two snapshots would not be comparable.
type Filter struct {
	Column string   `mapstructure:"column" json:"column"`
	Allow  []string `mapstructure:"allow" json:"allow"`
}

// Profile describes one reconcilable dataset: its declared column schema,
// the comparison key, header conventions per side, and an optional filter.
type Profile struct {
	// Name identifies the profile on the command line and over the API.
	Name string `mapstructure:"name" json:"name"`

	// Slug is the file-name stem for written outputs. Derived from Name
	// when empty.
	Slug string `mapstructure:"slug" json:"slug"`

	// Columns is the declared schema applied to every source.
	Columns []string `mapstructure:"columns" json:"columns"`

	// Key is the ordered column subset that defines row identity.
	Key []string `mapstructure:"key" json:"key"`

	// MasterHasHeader marks the master source's first record as a header
	// to discard.
	MasterHasHeader bool `mapstructure:"master_has_header" json:"master_has_header"`

	// IncomingHasHeader marks incoming sources' first records as headers
	// to discard.
	IncomingHasHeader bool `mapstructure:"incoming_has_header" json:"incoming_has_header"`

	// Filter optionally restricts both sides before comparison.
	Filter *Filter `mapstructure:"filter" json:"filter,omitempty"`
}

// WithDefaults returns the profile with derived fields filled in: a missing
// slug comes from the name, lowercased with separators turned into
// underscores.
func (p Profile) WithDefaults() Profile {
	if p.Slug == "" {
		slug := strings.ToLower(p.Name)
		slug = strings.ReplaceAll(slug, "-", "_")
		slug = strings.ReplaceAll(slug, " ", "_")
		p.Slug = slug
	}
	return p
}

// Validate checks the profile for internal consistency: a non-empty unique
// column list, a non-empty key drawn from those columns, and a filter column
// that exists in the schema.
func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile: name is required")
	}
	if len(p.Columns) == 0 {
		return fmt.Errorf("profile %q: columns are required", p.Name)
	}
	seen := make(map[string]struct{}, len(p.Columns))
	for _, c := range p.Columns {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("profile %q: duplicate column %q", p.Name, c)
		}
		seen[c] = struct{}{}
	}
	if len(p.Key) == 0 {
		return fmt.Errorf("profile %q: comparison key is required", p.Name)
	}
	for _, k := range p.Key {
		if _, ok := seen[k]; !ok {
			return fmt.Errorf("profile %q: key column %q is not in the column list", p.Name, k)
		}
	}
	if p.Filter != nil {
		if _, ok := seen[p.Filter.Column]; !ok {
			return fmt.Errorf("profile %q: filter column %q is not in the column list", p.Name, p.Filter.Column)
		}
	}
	return nil
}

// ApplyFilter returns the table restricted by the profile's filter, or the
// table unchanged when the profile has none.
func (p Profile) ApplyFilter(t table.Table) (table.Table, error) {
	if p.Filter == nil {
		return t, nil
	}
	return t.Filter(p.Filter.Column, p.Filter.Allow)
}

// Resolve finds a profile by name, custom profiles first so configuration
// can shadow a built-in. The returned profile has defaults applied.
func Resolve(custom []Profile, name string) (Profile, error) {
	for _, p := range custom {
		if p.Name == name {
			return p.WithDefaults(), nil
		}
	}
	for _, p := range Builtin() {
		if p.Name == name {
			return p.WithDefaults(), nil
		}
	}
	return Profile{}, fmt.Errorf("profile %q not found", name)
}

// All returns every known profile, built-ins plus custom ones, with custom
// profiles shadowing built-ins that share a name.
func All(custom []Profile) []Profile {
	out := make([]Profile, 0, len(custom)+2)
	names := make(map[string]struct{}, len(custom))
	for _, p := range custom {
		out = append(out, p.WithDefaults())
		names[p.Name] = struct{}{}
	}
	for _, p := range Builtin() {
		if _, shadowed := names[p.Name]; !shadowed {
			out = append(out, p.WithDefaults())
		}
	}
	return out
}
