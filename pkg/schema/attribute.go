package schema

// AttributeSchema describes a single attribute accepted by a field type:
// whether it must be present and the value domain it must satisfy.
type AttributeSchema struct {
	Name     string
	Required bool
	Domain   Domain
	// Default documents the value ACF assumes when the attribute is absent.
	// Informational only; the validator never injects defaults.
	Default any
}

// TypeSchema enumerates the attribute surface of one field type. Attribute
// order is the declaration order below, which also fixes the order findings
// are reported in.
type TypeSchema struct {
	Type string
	// Container marks types that nest child fields via sub_fields.
	Container bool
	// Attributes lists the type-specific attributes, required entries first.
	Attributes []AttributeSchema
}

// Required returns the attributes that must be present, in declaration order.
func (t TypeSchema) Required() []AttributeSchema {
	var out []AttributeSchema
	for _, attr := range t.Attributes {
		if attr.Required {
			out = append(out, attr)
		}
	}
	return out
}

// Lookup resolves a single attribute schema by name. Common attributes shared
// by every field type resolve regardless of the declared type.
func (t TypeSchema) Lookup(name string) (AttributeSchema, bool) {
	for _, attr := range t.Attributes {
		if attr.Name == name {
			return attr, true
		}
	}
	for _, attr := range commonAttributes {
		if attr.Name == name {
			return attr, true
		}
	}
	return AttributeSchema{}, false
}

// commonAttributes apply to every field type regardless of its declared type.
var commonAttributes = []AttributeSchema{
	{Name: "instructions", Domain: StringValue()},
	{Name: "required", Domain: BoolLike(), Default: false},
	{Name: "conditional_logic", Domain: AnyValue(), Default: false},
	{Name: "wrapper", Domain: MapValue()},
	{Name: "parent", Domain: StringValue()},
}

// CommonAttributes exposes the shared attribute set for documentation and
// strict-mode checks.
func CommonAttributes() []AttributeSchema {
	return append([]AttributeSchema(nil), commonAttributes...)
}
