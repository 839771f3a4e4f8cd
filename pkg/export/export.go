// Package export converts field group descriptors into OpenAPI 3 schema
// documents, so downstream tooling can describe the JSON a block's fields
// produce at render time.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-acfgen/pkg/descriptor"
	"github.com/goliatone/go-acfgen/pkg/schema"
)

// Options controls document generation.
type Options struct {
	// Title overrides the info.title. Defaults to the group title.
	Title string
	// Version is the info.version. Defaults to "1.0.0".
	Version string
	// Validate runs kin-openapi validation on the generated document.
	Validate bool
}

// Option mutates Options.
type Option func(*Options)

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = strings.TrimSpace(title)
	}
}

// WithVersion sets the document version.
func WithVersion(version string) Option {
	return func(o *Options) {
		o.Version = strings.TrimSpace(version)
	}
}

// WithValidation toggles post-generation document validation.
func WithValidation(enabled bool) Option {
	return func(o *Options) {
		o.Validate = enabled
	}
}

// Document builds an OpenAPI 3 document whose components.schemas describes
// each field group. Schema names are the group key suffixes when the title
// is empty, otherwise a PascalCase form of the title.
func Document(ctx context.Context, groups []descriptor.FieldGroup, options ...Option) (*openapi3.T, error) {
	opts := Options{Version: "1.0.0"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&opts)
	}

	if len(groups) == 0 {
		return nil, fmt.Errorf("export: no field groups to export")
	}

	title := opts.Title
	if title == "" {
		title = groups[0].Title
	}
	if title == "" {
		title = "ACF Field Groups"
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   title,
			Version: opts.Version,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{},
		},
	}

	for _, group := range groups {
		name := schemaName(group)
		if _, exists := doc.Components.Schemas[name]; exists {
			return nil, fmt.Errorf("export: duplicate schema name %q", name)
		}
		doc.Components.Schemas[name] = openapi3.NewSchemaRef("", groupSchema(group))
	}

	if opts.Validate {
		if err := doc.Validate(ctx); err != nil {
			return nil, fmt.Errorf("export: validate document: %w", err)
		}
	}

	return doc, nil
}

// MarshalDocument renders the document as indented JSON.
func MarshalDocument(doc *openapi3.T) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("export: nil document")
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: encode document: %w", err)
	}
	return append(payload, '\n'), nil
}

func schemaName(group descriptor.FieldGroup) string {
	if title := strings.TrimSpace(group.Title); title != "" {
		return pascalCase(title)
	}
	suffix, ok := descriptor.KeySuffix(group.Key, descriptor.GroupKeyPrefix)
	if !ok || suffix == "" {
		suffix = group.Key
	}
	return pascalCase(suffix)
}

func groupSchema(group descriptor.FieldGroup) *openapi3.Schema {
	obj := openapi3.NewObjectSchema()
	if group.Description != "" {
		obj.Description = group.Description
	}

	var required []string
	for _, field := range group.Fields {
		if field.Name == "" {
			continue
		}
		obj.Properties[field.Name] = openapi3.NewSchemaRef("", fieldSchema(field))
		if isRequired(field) {
			required = append(required, field.Name)
		}
	}
	sort.Strings(required)
	obj.Required = required
	return obj
}

func fieldSchema(field descriptor.Field) *openapi3.Schema {
	var out *openapi3.Schema

	switch field.Type {
	case schema.TypeNumber:
		out = openapi3.NewFloat64Schema()
	case schema.TypeTrueFalse:
		out = openapi3.NewBoolSchema()
	case schema.TypeSelect:
		out = selectSchema(field)
	case schema.TypeEmail:
		out = openapi3.NewStringSchema().WithFormat("email")
	case schema.TypeURL:
		out = openapi3.NewStringSchema().WithFormat("uri")
	case schema.TypeDatePicker:
		out = openapi3.NewStringSchema().WithFormat("date")
	case schema.TypeColorPicker:
		out = openapi3.NewStringSchema().WithPattern("^#?[0-9a-fA-F]{3,8}$")
	case schema.TypeImage:
		out = attachmentSchema(field)
	case schema.TypeGallery:
		out = openapi3.NewArraySchema()
		out.Items = openapi3.NewSchemaRef("", attachmentSchema(field))
	case schema.TypeLink:
		link := openapi3.NewObjectSchema()
		link.Properties["url"] = openapi3.NewSchemaRef("", openapi3.NewStringSchema().WithFormat("uri"))
		link.Properties["title"] = openapi3.NewSchemaRef("", openapi3.NewStringSchema())
		link.Properties["target"] = openapi3.NewSchemaRef("", openapi3.NewStringSchema())
		out = link
	case schema.TypeRepeater:
		out = openapi3.NewArraySchema()
		out.Items = openapi3.NewSchemaRef("", subFieldsSchema(field))
	case schema.TypeGroup:
		out = subFieldsSchema(field)
	case schema.TypePostObject, schema.TypeRelationship:
		out = referenceSchema(field)
	default:
		out = openapi3.NewStringSchema()
	}

	if instructions, ok := field.Attribute("instructions"); ok {
		if text, ok := instructions.(string); ok && text != "" {
			out.Description = text
		}
	}
	if out.Title == "" && field.Label != "" {
		out.Title = field.Label
	}
	return out
}

func subFieldsSchema(field descriptor.Field) *openapi3.Schema {
	obj := openapi3.NewObjectSchema()
	var required []string
	for _, sub := range field.SubFields {
		if sub.Name == "" {
			continue
		}
		obj.Properties[sub.Name] = openapi3.NewSchemaRef("", fieldSchema(sub))
		if isRequired(sub) {
			required = append(required, sub.Name)
		}
	}
	sort.Strings(required)
	obj.Required = required
	return obj
}

func selectSchema(field descriptor.Field) *openapi3.Schema {
	out := openapi3.NewStringSchema()
	raw, ok := field.Attribute("choices")
	if !ok {
		return out
	}

	var values []string
	switch choices := raw.(type) {
	case map[string]any:
		for value := range choices {
			values = append(values, value)
		}
	case []any:
		for _, choice := range choices {
			if value, ok := choice.(string); ok {
				values = append(values, value)
			}
		}
	}
	sort.Strings(values)
	for _, value := range values {
		out.Enum = append(out.Enum, value)
	}
	return out
}

// attachmentSchema mirrors the shape an image field returns: the full
// attachment object for array format, a URL for object/url formats, and a
// numeric ID otherwise.
func attachmentSchema(field descriptor.Field) *openapi3.Schema {
	format, _ := field.Attribute("return_format")
	switch format {
	case "id":
		return openapi3.NewInt64Schema()
	case "object":
		return openapi3.NewStringSchema().WithFormat("uri")
	default:
		obj := openapi3.NewObjectSchema()
		obj.Properties["id"] = openapi3.NewSchemaRef("", openapi3.NewInt64Schema())
		obj.Properties["url"] = openapi3.NewSchemaRef("", openapi3.NewStringSchema().WithFormat("uri"))
		obj.Properties["alt"] = openapi3.NewSchemaRef("", openapi3.NewStringSchema())
		obj.Properties["width"] = openapi3.NewSchemaRef("", openapi3.NewInt64Schema())
		obj.Properties["height"] = openapi3.NewSchemaRef("", openapi3.NewInt64Schema())
		return obj
	}
}

func referenceSchema(field descriptor.Field) *openapi3.Schema {
	single := openapi3.NewInt64Schema()
	if format, _ := field.Attribute("return_format"); format == "object" {
		obj := openapi3.NewObjectSchema()
		obj.Properties["ID"] = openapi3.NewSchemaRef("", openapi3.NewInt64Schema())
		obj.Properties["post_title"] = openapi3.NewSchemaRef("", openapi3.NewStringSchema())
		obj.Properties["post_type"] = openapi3.NewSchemaRef("", openapi3.NewStringSchema())
		single = obj
	}
	if field.Type == schema.TypeRelationship {
		arr := openapi3.NewArraySchema()
		arr.Items = openapi3.NewSchemaRef("", single)
		return arr
	}
	return single
}

func isRequired(field descriptor.Field) bool {
	raw, ok := field.Attribute("required")
	if !ok {
		return false
	}
	switch value := raw.(type) {
	case bool:
		return value
	case float64:
		return value == 1
	case int:
		return value == 1
	case string:
		return value == "1" || value == "true"
	}
	return false
}

func pascalCase(input string) string {
	parts := strings.FieldsFunc(input, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(strings.ToLower(part[1:]))
	}
	if b.Len() == 0 {
		return "FieldGroup"
	}
	return b.String()
}
