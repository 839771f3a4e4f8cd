package descriptor

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Field models a single ACF field definition. The identifying attributes are
// promoted to struct fields; every other attribute present in the source JSON
// is preserved verbatim in Attributes so validators can reason about presence
// as well as value. Container types (repeater, group) carry their children in
// SubFields.
type Field struct {
	Key       string
	Label     string
	Name      string
	Type      string
	SubFields []Field
	// Attributes holds the type-specific and optional attributes exactly as
	// they appeared in the document, keyed by attribute name.
	Attributes map[string]any
}

// Attribute reports the raw value of an attribute and whether it was present
// in the source document.
func (f Field) Attribute(name string) (any, bool) {
	value, ok := f.Attributes[name]
	return value, ok
}

// AttributeNames returns the present attribute names in sorted order.
func (f Field) AttributeNames() []string {
	names := make([]string, 0, len(f.Attributes))
	for name := range f.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// identifying attributes are unmarshalled into struct fields; everything else
// flows into Attributes.
var promotedFieldKeys = map[string]struct{}{
	"key":        {},
	"label":      {},
	"name":       {},
	"type":       {},
	"sub_fields": {},
}

// UnmarshalJSON decodes an ACF field object, splitting identifying attributes
// from the free-form remainder.
func (f *Field) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("descriptor: decode field: %w", err)
	}

	decoded := Field{}
	if err := decodeString(raw, "key", &decoded.Key); err != nil {
		return err
	}
	if err := decodeString(raw, "label", &decoded.Label); err != nil {
		return err
	}
	if err := decodeString(raw, "name", &decoded.Name); err != nil {
		return err
	}
	if err := decodeString(raw, "type", &decoded.Type); err != nil {
		return err
	}

	if payload, ok := raw["sub_fields"]; ok {
		if err := json.Unmarshal(payload, &decoded.SubFields); err != nil {
			return fmt.Errorf("descriptor: decode sub_fields: %w", err)
		}
	}

	for name, payload := range raw {
		if _, promoted := promotedFieldKeys[name]; promoted {
			continue
		}
		var value any
		if err := json.Unmarshal(payload, &value); err != nil {
			return fmt.Errorf("descriptor: decode attribute %q: %w", name, err)
		}
		if decoded.Attributes == nil {
			decoded.Attributes = make(map[string]any)
		}
		decoded.Attributes[name] = value
	}

	*f = decoded
	return nil
}

// MarshalJSON reassembles the field into the on-disk ACF shape.
func (f Field) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(f.Attributes)+5)
	out["key"] = f.Key
	out["label"] = f.Label
	out["name"] = f.Name
	out["type"] = f.Type
	for name, value := range f.Attributes {
		out[name] = value
	}
	if len(f.SubFields) > 0 {
		out["sub_fields"] = f.SubFields
	}
	return json.Marshal(out)
}

func decodeString(raw map[string]json.RawMessage, key string, dest *string) error {
	payload, ok := raw[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("descriptor: attribute %q is not a string: %w", key, err)
	}
	return nil
}

// LocationRule binds a field group to a WordPress editing context, typically
// {"param":"block","operator":"==","value":"acf/<slug>"}.
type LocationRule struct {
	Param    string `json:"param"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// FieldGroup is the top-level descriptor ACF reads from <group_key>.json.
// Location groups are OR-ed together while rules inside a group are AND-ed,
// matching ACF semantics.
type FieldGroup struct {
	Key                  string           `json:"key"`
	Title                string           `json:"title"`
	Fields               []Field          `json:"fields"`
	Location             [][]LocationRule `json:"location,omitempty"`
	MenuOrder            int              `json:"menu_order"`
	Position             string           `json:"position,omitempty"`
	Style                string           `json:"style,omitempty"`
	LabelPlacement       string           `json:"label_placement,omitempty"`
	InstructionPlacement string           `json:"instruction_placement,omitempty"`
	HideOnScreen         []string         `json:"hide_on_screen,omitempty"`
	Description          string           `json:"description,omitempty"`
	Active               *bool            `json:"active,omitempty"`
}

// IsActive treats an absent active flag as enabled, mirroring ACF defaults.
func (g FieldGroup) IsActive() bool {
	return g.Active == nil || *g.Active
}

// BlockACF mirrors the "acf" stanza of a block.json manifest.
type BlockACF struct {
	Mode           string `json:"mode,omitempty"`
	RenderTemplate string `json:"renderTemplate,omitempty"`
	BlockVersion   int    `json:"blockVersion,omitempty"`
}

// BlockSupports enumerates the capability flags a block declares. Align is
// declared as any because block.json accepts both a boolean and a list of
// alignment names.
type BlockSupports struct {
	Align  any  `json:"align,omitempty"`
	Anchor bool `json:"anchor,omitempty"`
	JSX    bool `json:"jsx,omitempty"`
	Mode   bool `json:"mode,omitempty"`
}

// Block is the block.json manifest describing an ACF-backed editor block.
type Block struct {
	Name        string        `json:"name"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Category    string        `json:"category,omitempty"`
	Icon        string        `json:"icon,omitempty"`
	Keywords    []string      `json:"keywords,omitempty"`
	ACF         BlockACF      `json:"acf,omitempty"`
	Supports    BlockSupports `json:"supports,omitempty"`
	APIVersion  int           `json:"apiVersion,omitempty"`
}

// Slug returns the block name without the acf/ namespace.
func (b Block) Slug() string {
	return strings.TrimPrefix(b.Name, BlockNamePrefix)
}
