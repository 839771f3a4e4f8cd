package validate

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/goliatone/go-acfgen/pkg/descriptor"
	"github.com/goliatone/go-acfgen/pkg/schema"
)

// Option customises a Validator.
type Option func(*Validator)

// WithRegistry injects a custom field type registry. Defaults to
// schema.Default().
func WithRegistry(registry *schema.Registry) Option {
	return func(v *Validator) {
		v.registry = registry
	}
}

// WithKeyIndex supplies previously issued keys so site-wide duplicates are
// reported. Without an index only intra-document duplicates are detected.
func WithKeyIndex(index *KeyIndex) Option {
	return func(v *Validator) {
		v.keyIndex = index
	}
}

// WithStrictAttributes reports attributes the type schema does not know about
// as unknown_attribute findings. Off by default because ACF tolerates extra
// attributes silently.
func WithStrictAttributes(enabled bool) Option {
	return func(v *Validator) {
		v.strict = enabled
	}
}

// Validator checks descriptors against a schema registry. Validation is pure;
// the same input always yields the same findings.
type Validator struct {
	registry *schema.Registry
	keyIndex *KeyIndex
	strict   bool
}

// New constructs a Validator applying any provided options.
func New(options ...Option) *Validator {
	v := &Validator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}
	if v.registry == nil {
		v.registry = schema.Default()
	}
	return v
}

// ValidateGroup checks a single field group and every field it contains.
func (v *Validator) ValidateGroup(group descriptor.FieldGroup) Issues {
	return v.validateGroup("", group, newKeySeen())
}

// ValidateField checks a single field descriptor, recursing into sub fields.
func (v *Validator) ValidateField(field descriptor.Field) Issues {
	return v.validateField("", field, newKeySeen())
}

// ValidateBlock checks a block.json manifest.
func (v *Validator) ValidateBlock(block descriptor.Block) Issues {
	return v.validateBlock("", block, map[string]string{})
}

// ValidateBundle checks every descriptor in a parsed bundle, sharing one key
// namespace so duplicates across descriptors in the same document surface.
func (v *Validator) ValidateBundle(bundle descriptor.Bundle) Issues {
	seen := newKeySeen()
	blockNames := map[string]string{}
	single := len(bundle.Groups)+len(bundle.Fields)+len(bundle.Blocks) == 1

	var iss Issues
	position := 0
	prefix := func() string {
		if single {
			return ""
		}
		p := fmt.Sprintf("/%d", position)
		position++
		return p
	}

	for _, group := range bundle.Groups {
		iss = append(iss, v.validateGroup(prefix(), group, seen)...)
	}
	for _, field := range bundle.Fields {
		iss = append(iss, v.validateField(prefix(), field, seen)...)
	}
	for _, block := range bundle.Blocks {
		iss = append(iss, v.validateBlock(prefix(), block, blockNames)...)
	}
	return iss
}

// keySeen tracks keys observed within a single validation pass.
type keySeen map[string]struct{}

func newKeySeen() keySeen {
	return make(keySeen)
}

func (s keySeen) record(key string) bool {
	if _, exists := s[key]; exists {
		return false
	}
	s[key] = struct{}{}
	return true
}

var (
	positionDomain             = schema.Enum("acf_after_title", "normal", "side")
	styleDomain                = schema.Enum("default", "seamless")
	labelPlacementDomain       = schema.Enum("top", "left")
	instructionPlacementDomain = schema.Enum("label", "field")
	blockModeDomain            = schema.Enum("auto", "preview", "edit")
	blockNamePattern           = regexp.MustCompile(`^acf/[a-z0-9][a-z0-9-]*$`)
)

func (v *Validator) validateGroup(path string, group descriptor.FieldGroup, seen keySeen) Issues {
	var iss Issues

	iss = append(iss, v.checkKey(path, group.Key, descriptor.GroupKeyPrefix, seen)...)

	if group.Title == "" {
		iss = append(iss, Issue{
			Path:      joinPath(path, "title"),
			Code:      CodeMissingRequiredAttribute,
			Attribute: "title",
			Message:   "field group requires a title",
		})
	}

	iss = append(iss, v.checkEnumSetting(path, "position", group.Position, positionDomain)...)
	iss = append(iss, v.checkEnumSetting(path, "style", group.Style, styleDomain)...)
	iss = append(iss, v.checkEnumSetting(path, "label_placement", group.LabelPlacement, labelPlacementDomain)...)
	iss = append(iss, v.checkEnumSetting(path, "instruction_placement", group.InstructionPlacement, instructionPlacementDomain)...)

	for i, rules := range group.Location {
		for j, rule := range rules {
			if rule.Param == "" || rule.Operator == "" {
				iss = append(iss, Issue{
					Path:      fmt.Sprintf("%s/location/%d/%d", path, i, j),
					Code:      CodeInvalidAttributeValue,
					Attribute: "location",
					Message:   "location rule requires param and operator",
				})
			}
		}
	}

	names := map[string]string{}
	for i, field := range group.Fields {
		fieldPath := indexPath(path, "fields", i)
		iss = append(iss, v.checkSiblingName(fieldPath, field.Name, names)...)
		iss = append(iss, v.validateField(fieldPath, field, seen)...)
	}

	return iss
}

func (v *Validator) validateField(path string, field descriptor.Field, seen keySeen) Issues {
	var iss Issues

	// (a) key format before anything else.
	iss = append(iss, v.checkKey(path, field.Key, descriptor.FieldKeyPrefix, seen)...)

	// (b) the declared type must resolve in the registry.
	var ts schema.TypeSchema
	known := false
	switch {
	case field.Type == "":
		iss = append(iss, Issue{
			Path:      joinPath(path, "type"),
			Code:      CodeMissingRequiredAttribute,
			Attribute: "type",
			Message:   "field requires a type",
		})
	default:
		resolved, err := v.registry.Lookup(field.Type)
		if err != nil {
			iss = append(iss, Issue{
				Path:      joinPath(path, "type"),
				Code:      CodeUnknownFieldType,
				Attribute: "type",
				Message:   fmt.Sprintf("unknown field type %q", field.Type),
				Params:    map[string]any{"type": field.Type},
			})
		} else {
			ts = resolved
			known = true
		}
	}

	// (c) required attributes common to every field type.
	if field.Label == "" {
		iss = append(iss, Issue{
			Path:      joinPath(path, "label"),
			Code:      CodeMissingRequiredAttribute,
			Attribute: "label",
			Message:   "field requires a label",
		})
	}
	if field.Name == "" {
		iss = append(iss, Issue{
			Path:      joinPath(path, "name"),
			Code:      CodeMissingRequiredAttribute,
			Attribute: "name",
			Message:   "field requires a name",
		})
	}

	// (c continued) required attributes of the resolved type.
	if known {
		for _, attr := range ts.Required() {
			if _, present := field.Attribute(attr.Name); !present {
				iss = append(iss, Issue{
					Path:      joinPath(path, attr.Name),
					Code:      CodeMissingRequiredAttribute,
					Attribute: attr.Name,
					Message:   fmt.Sprintf("%s field requires attribute %q", field.Type, attr.Name),
				})
			}
		}
		if ts.Container && len(field.SubFields) == 0 {
			iss = append(iss, Issue{
				Path:      joinPath(path, "sub_fields"),
				Code:      CodeMissingRequiredAttribute,
				Attribute: "sub_fields",
				Message:   fmt.Sprintf("%s field requires sub_fields", field.Type),
			})
		}
	}

	// (d) every present attribute must stay inside its declared domain.
	iss = append(iss, v.checkAttributeDomains(path, field, ts, known)...)

	// (e) container recursion with a fresh sibling namespace.
	if len(field.SubFields) > 0 {
		names := map[string]string{}
		for i, sub := range field.SubFields {
			subPath := indexPath(path, "sub_fields", i)
			iss = append(iss, v.checkSiblingName(subPath, sub.Name, names)...)
			iss = append(iss, v.validateField(subPath, sub, seen)...)
		}
	}

	return iss
}

func (v *Validator) checkAttributeDomains(path string, field descriptor.Field, ts schema.TypeSchema, known bool) Issues {
	var iss Issues
	handled := map[string]struct{}{}

	check := func(attr schema.AttributeSchema) {
		value, present := field.Attribute(attr.Name)
		handled[attr.Name] = struct{}{}
		if !present {
			return
		}
		if !attr.Domain.Contains(value) {
			iss = append(iss, Issue{
				Path:      joinPath(path, attr.Name),
				Code:      CodeInvalidAttributeValue,
				Attribute: attr.Name,
				Message:   fmt.Sprintf("attribute %q must be %s", attr.Name, attr.Domain.Describe()),
				Params:    map[string]any{"value": value},
			})
		}
	}

	if known {
		for _, attr := range ts.Attributes {
			check(attr)
		}
	}
	for _, attr := range schema.CommonAttributes() {
		check(attr)
	}

	if v.strict {
		var unknown []string
		for _, name := range field.AttributeNames() {
			if _, ok := handled[name]; !ok {
				unknown = append(unknown, name)
			}
		}
		sort.Strings(unknown)
		for _, name := range unknown {
			iss = append(iss, Issue{
				Path:      joinPath(path, name),
				Code:      CodeUnknownAttribute,
				Attribute: name,
				Message:   fmt.Sprintf("attribute %q is not recognised for type %q", name, field.Type),
			})
		}
	}

	return iss
}

func (v *Validator) validateBlock(path string, block descriptor.Block, names map[string]string) Issues {
	var iss Issues

	switch {
	case block.Name == "":
		iss = append(iss, Issue{
			Path:      joinPath(path, "name"),
			Code:      CodeMissingRequiredAttribute,
			Attribute: "name",
			Message:   "block requires a name",
		})
	case !blockNamePattern.MatchString(block.Name):
		iss = append(iss, Issue{
			Path:      joinPath(path, "name"),
			Code:      CodeInvalidAttributeValue,
			Attribute: "name",
			Message:   fmt.Sprintf("block name %q must match acf/<slug>", block.Name),
			Params:    map[string]any{"name": block.Name},
		})
	default:
		if prior, exists := names[block.Name]; exists {
			iss = append(iss, Issue{
				Path:      joinPath(path, "name"),
				Code:      CodeDuplicateName,
				Attribute: "name",
				Message:   fmt.Sprintf("block name %q already declared at %s", block.Name, pathOrRoot(prior)),
			})
		} else {
			names[block.Name] = path
		}
	}

	if block.Title == "" {
		iss = append(iss, Issue{
			Path:      joinPath(path, "title"),
			Code:      CodeMissingRequiredAttribute,
			Attribute: "title",
			Message:   "block requires a title",
		})
	}

	if block.ACF.Mode != "" && !blockModeDomain.Contains(block.ACF.Mode) {
		iss = append(iss, Issue{
			Path:      joinPath(path, "acf/mode"),
			Code:      CodeInvalidAttributeValue,
			Attribute: "mode",
			Message:   fmt.Sprintf("attribute %q must be %s", "mode", blockModeDomain.Describe()),
			Params:    map[string]any{"value": block.ACF.Mode},
		})
	}

	return iss
}

func (v *Validator) checkKey(path, key, prefix string, seen keySeen) Issues {
	if !descriptor.WellFormedKey(key, prefix) {
		return Issues{{
			Path:      joinPath(path, "key"),
			Code:      CodeMalformedKey,
			Attribute: "key",
			Message:   fmt.Sprintf("key %q must start with %q followed by a unique token", key, prefix),
			Params:    map[string]any{"key": key},
		}}
	}

	var iss Issues
	if !seen.record(key) {
		iss = append(iss, Issue{
			Path:      joinPath(path, "key"),
			Code:      CodeDuplicateKey,
			Attribute: "key",
			Message:   fmt.Sprintf("key %q appears more than once in the document", key),
			Params:    map[string]any{"key": key},
		})
	} else if v.keyIndex.Has(key) {
		iss = append(iss, Issue{
			Path:      joinPath(path, "key"),
			Code:      CodeDuplicateKey,
			Attribute: "key",
			Message:   fmt.Sprintf("key %q was already issued according to the key index", key),
			Params:    map[string]any{"key": key},
		})
	}
	return iss
}

func (v *Validator) checkEnumSetting(path, name, value string, domain schema.Domain) Issues {
	if value == "" || domain.Contains(value) {
		return nil
	}
	return Issues{{
		Path:      joinPath(path, name),
		Code:      CodeInvalidAttributeValue,
		Attribute: name,
		Message:   fmt.Sprintf("attribute %q must be %s", name, domain.Describe()),
		Params:    map[string]any{"value": value},
	}}
}

func (v *Validator) checkSiblingName(path, name string, names map[string]string) Issues {
	if name == "" {
		// Missing names are reported by the field check itself.
		return nil
	}
	if prior, exists := names[name]; exists {
		return Issues{{
			Path:      joinPath(path, "name"),
			Code:      CodeDuplicateName,
			Attribute: "name",
			Message:   fmt.Sprintf("name %q already used by sibling at %s", name, pathOrRoot(prior)),
		}}
	}
	names[name] = path
	return nil
}
