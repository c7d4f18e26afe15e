// Package domain defines the entitlement document attached to every identity and the
// role table it is resolved from.
//
// A Document has one grant per target system plus a flat permission list. It is
// serialized in the flat shape consumed by downstream tooling:
//
//	{"slack": {"channels": ["#dev-team", "#general"]}, "permissions": ["read", "write"]}
package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
)

// TargetChat is the target key of the chat workspace grant.
const TargetChat = "slack"

// permissionsKey is the reserved top-level key holding the permission list.
const permissionsKey = "permissions"

// Grant describes what an identity receives on one target system.
type Grant struct {
	Channels []string `json:"channels"`
}

// Document is the entitlement document for one business role.
type Document struct {
	Targets     map[string]Grant
	Permissions []string
}

// Grant returns the grant for target and whether it exists.
func (d *Document) Grant(target string) (Grant, bool) {
	if d == nil || d.Targets == nil {
		return Grant{}, false
	}
	g, ok := d.Targets[target]
	return g, ok
}

// TargetNames returns the target keys in sorted order.
func (d *Document) TargetNames() []string {
	names := make([]string, 0, len(d.Targets))
	for name := range d.Targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy so callers can never mutate a shared table entry.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{
		Targets:     make(map[string]Grant, len(d.Targets)),
		Permissions: slices.Clone(d.Permissions),
	}
	for name, g := range d.Targets {
		out.Targets[name] = Grant{Channels: slices.Clone(g.Channels)}
	}
	if out.Permissions == nil {
		out.Permissions = []string{}
	}
	return out
}

// Equal reports whether two documents grant the same things in the same order.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	if !slices.Equal(d.Permissions, other.Permissions) || len(d.Targets) != len(other.Targets) {
		return false
	}
	for name, g := range d.Targets {
		og, ok := other.Targets[name]
		if !ok || !slices.Equal(g.Channels, og.Channels) {
			return false
		}
	}
	return true
}

// MarshalJSON writes the flat wire shape.
func (d Document) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(d.Targets)+1)
	for name, g := range d.Targets {
		channels := g.Channels
		if channels == nil {
			channels = []string{}
		}
		flat[name] = Grant{Channels: channels}
	}
	permissions := d.Permissions
	if permissions == nil {
		permissions = []string{}
	}
	flat[permissionsKey] = permissions
	return json.Marshal(flat)
}

// UnmarshalJSON reads the flat wire shape.
func (d *Document) UnmarshalJSON(data []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}

	doc := Document{Targets: make(map[string]Grant, len(flat)), Permissions: []string{}}
	for key, raw := range flat {
		if key == permissionsKey {
			if err := json.Unmarshal(raw, &doc.Permissions); err != nil {
				return fmt.Errorf("invalid permissions: %w", err)
			}
			continue
		}
		var g Grant
		if err := json.Unmarshal(raw, &g); err != nil {
			return fmt.Errorf("invalid grant for target %q: %w", key, err)
		}
		doc.Targets[key] = g
	}

	*d = doc
	return nil
}

// Value stores the document as a JSON column.
func (d Document) Value() (driver.Value, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan reads a JSON column. NULL yields an empty document.
func (d *Document) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Document{Targets: map[string]Grant{}, Permissions: []string{}}
		return nil
	case []byte:
		return d.UnmarshalJSON(v)
	case string:
		return d.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("cannot scan %T into entitlement document", src)
	}
}
