package schema

// Field type names covered by the built-in registry.
const (
	TypeText         = "text"
	TypeTextarea     = "textarea"
	TypeWYSIWYG      = "wysiwyg"
	TypeImage        = "image"
	TypeLink         = "link"
	TypeSelect       = "select"
	TypeTrueFalse    = "true_false"
	TypeRepeater     = "repeater"
	TypeGroup        = "group"
	TypeGallery      = "gallery"
	TypeNumber       = "number"
	TypeEmail        = "email"
	TypeURL          = "url"
	TypeColorPicker  = "color_picker"
	TypeDatePicker   = "date_picker"
	TypePostObject   = "post_object"
	TypeRelationship = "relationship"
)

func builtinTypes() []TypeSchema {
	return []TypeSchema{
		{
			Type: TypeText,
			Attributes: []AttributeSchema{
				{Name: "default_value", Domain: StringValue()},
				{Name: "placeholder", Domain: StringValue()},
				{Name: "prepend", Domain: StringValue()},
				{Name: "append", Domain: StringValue()},
				{Name: "maxlength", Domain: IntLike()},
			},
		},
		{
			Type: TypeTextarea,
			Attributes: []AttributeSchema{
				{Name: "default_value", Domain: StringValue()},
				{Name: "placeholder", Domain: StringValue()},
				{Name: "maxlength", Domain: IntLike()},
				{Name: "rows", Domain: IntLike()},
				{Name: "new_lines", Domain: Enum("wpautop", "br", "")},
			},
		},
		{
			Type: TypeWYSIWYG,
			Attributes: []AttributeSchema{
				{Name: "default_value", Domain: StringValue()},
				{Name: "tabs", Domain: Enum("all", "visual", "text"), Default: "all"},
				{Name: "toolbar", Domain: Enum("full", "basic"), Default: "full"},
				{Name: "media_upload", Domain: BoolLike(), Default: true},
				{Name: "delay", Domain: BoolLike(), Default: false},
			},
		},
		{
			Type: TypeImage,
			Attributes: []AttributeSchema{
				{Name: "return_format", Domain: Enum("array", "object", "id"), Default: "array"},
				{Name: "preview_size", Domain: StringValue(), Default: "medium"},
				{Name: "library", Domain: Enum("all", "uploadedTo"), Default: "all"},
				{Name: "min_width", Domain: IntLike()},
				{Name: "min_height", Domain: IntLike()},
				{Name: "max_width", Domain: IntLike()},
				{Name: "max_height", Domain: IntLike()},
				{Name: "min_size", Domain: NumberLike()},
				{Name: "max_size", Domain: NumberLike()},
				{Name: "mime_types", Domain: StringValue()},
			},
		},
		{
			Type: TypeLink,
			Attributes: []AttributeSchema{
				{Name: "return_format", Domain: Enum("array", "url"), Default: "array"},
			},
		},
		{
			Type: TypeSelect,
			Attributes: []AttributeSchema{
				{Name: "choices", Required: true, Domain: Choices()},
				{Name: "default_value", Domain: AnyValue()},
				{Name: "allow_null", Domain: BoolLike(), Default: false},
				{Name: "multiple", Domain: BoolLike(), Default: false},
				{Name: "ui", Domain: BoolLike(), Default: false},
				{Name: "ajax", Domain: BoolLike(), Default: false},
				{Name: "return_format", Domain: Enum("value", "label", "array"), Default: "value"},
				{Name: "placeholder", Domain: StringValue()},
			},
		},
		{
			Type: TypeTrueFalse,
			Attributes: []AttributeSchema{
				{Name: "message", Domain: StringValue()},
				{Name: "default_value", Domain: BoolLike(), Default: false},
				{Name: "ui", Domain: BoolLike(), Default: false},
				{Name: "ui_on_text", Domain: StringValue()},
				{Name: "ui_off_text", Domain: StringValue()},
			},
		},
		{
			Type:      TypeRepeater,
			Container: true,
			Attributes: []AttributeSchema{
				{Name: "min", Domain: IntLike()},
				{Name: "max", Domain: IntLike()},
				{Name: "layout", Domain: Enum("table", "block", "row"), Default: "table"},
				{Name: "button_label", Domain: StringValue()},
				{Name: "collapsed", Domain: StringValue()},
				{Name: "pagination", Domain: BoolLike(), Default: false},
			},
		},
		{
			Type:      TypeGroup,
			Container: true,
			Attributes: []AttributeSchema{
				{Name: "layout", Domain: Enum("block", "table", "row"), Default: "block"},
			},
		},
		{
			Type: TypeGallery,
			Attributes: []AttributeSchema{
				{Name: "return_format", Domain: Enum("array", "object", "id"), Default: "array"},
				{Name: "preview_size", Domain: StringValue(), Default: "medium"},
				{Name: "insert", Domain: Enum("append", "prepend"), Default: "append"},
				{Name: "library", Domain: Enum("all", "uploadedTo"), Default: "all"},
				{Name: "min", Domain: IntLike()},
				{Name: "max", Domain: IntLike()},
				{Name: "min_width", Domain: IntLike()},
				{Name: "min_height", Domain: IntLike()},
				{Name: "max_width", Domain: IntLike()},
				{Name: "max_height", Domain: IntLike()},
				{Name: "mime_types", Domain: StringValue()},
			},
		},
		{
			Type: TypeNumber,
			Attributes: []AttributeSchema{
				{Name: "default_value", Domain: NumberLike()},
				{Name: "placeholder", Domain: StringValue()},
				{Name: "prepend", Domain: StringValue()},
				{Name: "append", Domain: StringValue()},
				{Name: "min", Domain: NumberLike()},
				{Name: "max", Domain: NumberLike()},
				{Name: "step", Domain: NumberLike()},
			},
		},
		{
			Type: TypeEmail,
			Attributes: []AttributeSchema{
				{Name: "default_value", Domain: StringValue()},
				{Name: "placeholder", Domain: StringValue()},
				{Name: "prepend", Domain: StringValue()},
				{Name: "append", Domain: StringValue()},
			},
		},
		{
			Type: TypeURL,
			Attributes: []AttributeSchema{
				{Name: "default_value", Domain: StringValue()},
				{Name: "placeholder", Domain: StringValue()},
			},
		},
		{
			Type: TypeColorPicker,
			Attributes: []AttributeSchema{
				{Name: "default_value", Domain: StringValue()},
				{Name: "enable_opacity", Domain: BoolLike(), Default: false},
				{Name: "return_format", Domain: Enum("string", "array"), Default: "string"},
			},
		},
		{
			Type: TypeDatePicker,
			Attributes: []AttributeSchema{
				{Name: "display_format", Domain: StringValue(), Default: "d/m/Y"},
				{Name: "return_format", Domain: StringValue(), Default: "d/m/Y"},
				{Name: "first_day", Domain: IntRange(0, 6), Default: 1},
			},
		},
		{
			Type: TypePostObject,
			Attributes: []AttributeSchema{
				{Name: "post_type", Domain: StringList()},
				{Name: "taxonomy", Domain: StringList()},
				{Name: "allow_null", Domain: BoolLike(), Default: false},
				{Name: "multiple", Domain: BoolLike(), Default: false},
				{Name: "return_format", Domain: Enum("array", "object", "id"), Default: "object"},
				{Name: "ui", Domain: BoolLike(), Default: true},
			},
		},
		{
			Type: TypeRelationship,
			Attributes: []AttributeSchema{
				{Name: "post_type", Domain: StringList()},
				{Name: "taxonomy", Domain: StringList()},
				{Name: "filters", Domain: StringList()},
				{Name: "elements", Domain: StringList()},
				{Name: "min", Domain: IntLike()},
				{Name: "max", Domain: IntLike()},
				{Name: "return_format", Domain: Enum("object", "id"), Default: "object"},
			},
		},
	}
}
