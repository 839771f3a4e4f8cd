package scaffold

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-acfgen/pkg/descriptor"
	"github.com/goliatone/go-acfgen/pkg/keygen"
	"github.com/goliatone/go-acfgen/pkg/schema"
	"github.com/goliatone/go-acfgen/pkg/validate"
)

// Artifact is a single generated file, path relative to the block
// directory.
type Artifact struct {
	Path    string
	Content []byte
}

// Result bundles everything Build produced for one block plan.
type Result struct {
	Slug      string
	Group     descriptor.FieldGroup
	Block     descriptor.Block
	Artifacts []Artifact
}

// Option configures a Generator.
type Option func(*Generator)

// WithKeyGenerator overrides the key generator, mostly for deterministic
// output in tests.
func WithKeyGenerator(keys *keygen.Generator) Option {
	return func(g *Generator) {
		if keys != nil {
			g.keys = keys
		}
	}
}

// WithEngine overrides the template engine.
func WithEngine(engine *Engine) Option {
	return func(g *Generator) {
		if engine != nil {
			g.engine = engine
		}
	}
}

// WithValidator overrides the validator used to self-check generated
// descriptors.
func WithValidator(validator *validate.Validator) Option {
	return func(g *Generator) {
		if validator != nil {
			g.validator = validator
		}
	}
}

// Generator turns block plans into ready-to-register ACF artifacts. Every
// generated field group is validated before it is returned.
type Generator struct {
	keys      *keygen.Generator
	engine    *Engine
	validator *validate.Validator
}

// New builds a Generator with embedded templates and fresh keys.
func New(options ...Option) (*Generator, error) {
	gen := &Generator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(gen)
	}

	if gen.keys == nil {
		gen.keys = keygen.New()
	}
	if gen.validator == nil {
		gen.validator = validate.New()
	}
	if gen.engine == nil {
		engine, err := NewEngine(WithFS(TemplatesFS()))
		if err != nil {
			return nil, err
		}
		gen.engine = engine
	}

	return gen, nil
}

// Build generates the field group descriptor, block descriptor, and render
// template for a plan. The field group is validated with the default
// registry; a plan that produces invalid descriptors is a bug, so the
// violations come back as an error.
func (g *Generator) Build(plan Plan) (*Result, error) {
	slug := SanitizeBlockName(plan.Name)
	if slug == "" {
		return nil, fmt.Errorf("scaffold: plan name %q has no usable slug", plan.Name)
	}

	title := strings.TrimSpace(plan.Title)
	if title == "" {
		title = LabelFromName(slug)
	}

	group, err := g.buildGroup(slug, title, plan)
	if err != nil {
		return nil, err
	}

	if issues := g.validator.ValidateGroup(group); len(issues) > 0 {
		return nil, fmt.Errorf("scaffold: generated group for %q is invalid: %w", slug, issues)
	}

	block := buildBlock(slug, title, plan)
	if issues := g.validator.ValidateBlock(block); len(issues) > 0 {
		return nil, fmt.Errorf("scaffold: generated block for %q is invalid: %w", slug, issues)
	}

	groupJSON, err := marshalIndented(group, "    ")
	if err != nil {
		return nil, fmt.Errorf("scaffold: encode field group: %w", err)
	}

	blockJSON, err := marshalIndented(blockManifest(block), "  ")
	if err != nil {
		return nil, fmt.Errorf("scaffold: encode block manifest: %w", err)
	}

	phpSource, err := g.renderTemplate(slug, plan)
	if err != nil {
		return nil, err
	}

	suffix, _ := descriptor.KeySuffix(group.Key, descriptor.GroupKeyPrefix)

	return &Result{
		Slug:  slug,
		Group: group,
		Block: block,
		Artifacts: []Artifact{
			{Path: suffix + ".json", Content: groupJSON},
			{Path: "block.json", Content: blockJSON},
			{Path: slug + ".php", Content: phpSource},
		},
	}, nil
}

// WriteArtifacts writes a build result under root/<slug>/, creating the
// directory as needed.
func (g *Generator) WriteArtifacts(root string, result *Result) (string, error) {
	if result == nil {
		return "", fmt.Errorf("scaffold: nil result")
	}

	dir := filepath.Join(root, result.Slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("scaffold: create output dir: %w", err)
	}

	for _, artifact := range result.Artifacts {
		target := filepath.Join(dir, artifact.Path)
		if err := os.WriteFile(target, artifact.Content, 0o644); err != nil {
			return "", fmt.Errorf("scaffold: write %s: %w", artifact.Path, err)
		}
	}

	return dir, nil
}

func (g *Generator) buildGroup(slug, title string, plan Plan) (descriptor.FieldGroup, error) {
	groupKey, err := g.keys.NewGroupKey()
	if err != nil {
		return descriptor.FieldGroup{}, fmt.Errorf("scaffold: %w", err)
	}

	fields := make([]descriptor.Field, 0, len(plan.Fields))
	for _, fieldPlan := range plan.Fields {
		field, err := g.buildField(fieldPlan)
		if err != nil {
			return descriptor.FieldGroup{}, err
		}
		fields = append(fields, field)
	}

	return descriptor.FieldGroup{
		Key:         groupKey,
		Title:       title,
		Description: strings.TrimSpace(plan.Description),
		Fields:      fields,
		Location: [][]descriptor.LocationRule{
			{
				{Param: "block", Operator: "==", Value: descriptor.BlockNamePrefix + slug},
			},
		},
		Position: "normal",
		Style:    "default",
	}, nil
}

func (g *Generator) buildField(plan FieldPlan) (descriptor.Field, error) {
	name := strings.TrimSpace(plan.Name)
	if name == "" {
		return descriptor.Field{}, fmt.Errorf("scaffold: field plan is missing a name")
	}

	fieldType := strings.TrimSpace(plan.Type)
	if fieldType == "" {
		fieldType = schema.TypeText
	}

	key, err := g.keys.NewFieldKey()
	if err != nil {
		return descriptor.Field{}, fmt.Errorf("scaffold: %w", err)
	}

	label := strings.TrimSpace(plan.Label)
	if label == "" {
		label = LabelFromName(name)
	}

	field := descriptor.Field{
		Key:        key,
		Label:      label,
		Name:       name,
		Type:       fieldType,
		Attributes: map[string]any{},
	}

	if plan.Description != "" {
		field.Attributes["instructions"] = plan.Description
	}
	if plan.Required {
		field.Attributes["required"] = 1
	}

	switch fieldType {
	case schema.TypeSelect:
		field.Attributes["choices"] = choicesMap(plan.Choices)
	case schema.TypeImage:
		field.Attributes["return_format"] = "array"
	case schema.TypeWYSIWYG:
		if plan.DefaultValue != "" {
			field.Attributes["default_value"] = SanitizeRichText(plan.DefaultValue)
		}
	}

	if plan.DefaultValue != "" && fieldType != schema.TypeWYSIWYG {
		field.Attributes["default_value"] = plan.DefaultValue
	}

	return field, nil
}

func buildBlock(slug, title string, plan Plan) descriptor.Block {
	return descriptor.Block{
		Name:        descriptor.BlockNamePrefix + slug,
		Title:       title,
		Description: strings.TrimSpace(plan.Description),
		Category:    "theme",
		Icon:        "block-default",
		Keywords:    []string{slug},
		ACF: descriptor.BlockACF{
			Mode:           "preview",
			RenderTemplate: slug + ".php",
		},
		Supports: descriptor.BlockSupports{
			Align:  true,
			Anchor: true,
			JSX:    plan.InnerBlocks,
		},
		APIVersion: 2,
	}
}

// blockManifest shapes the block descriptor the way block.json expects,
// with acf and supports nested objects.
func blockManifest(block descriptor.Block) map[string]any {
	manifest := map[string]any{
		"name":        block.Name,
		"title":       block.Title,
		"category":    block.Category,
		"icon":        block.Icon,
		"keywords":    block.Keywords,
		"apiVersion": block.APIVersion,
		"acf": map[string]any{
			"mode":           block.ACF.Mode,
			"renderTemplate": block.ACF.RenderTemplate,
		},
		"supports": map[string]any{
			"align":  block.Supports.Align,
			"anchor": block.Supports.Anchor,
			"jsx":    block.Supports.JSX,
		},
	}
	if block.Description != "" {
		manifest["description"] = block.Description
	}
	return manifest
}

func (g *Generator) renderTemplate(slug string, plan Plan) ([]byte, error) {
	fields := make([]map[string]any, 0, len(plan.Fields))
	for _, fieldPlan := range plan.Fields {
		name := strings.TrimSpace(fieldPlan.Name)
		if name == "" {
			continue
		}
		fields = append(fields, map[string]any{
			"name": name,
			"css":  strings.ReplaceAll(name, "_", "-"),
			"kind": templateKind(fieldPlan.Type),
		})
	}

	title := strings.TrimSpace(plan.Title)
	if title == "" {
		title = LabelFromName(slug)
	}

	rendered, err := g.engine.RenderTemplate("render-template.php", map[string]any{
		"slug":         slug,
		"title":        title,
		"fields":       fields,
		"inner_blocks": plan.InnerBlocks,
	})
	if err != nil {
		return nil, err
	}
	return []byte(rendered), nil
}

func templateKind(fieldType string) string {
	switch fieldType {
	case schema.TypeImage, schema.TypeGallery:
		return "image"
	case schema.TypeWYSIWYG, schema.TypeTextarea:
		return "rich"
	case schema.TypeURL, schema.TypeLink:
		return "url"
	default:
		return "text"
	}
}

// choicesMap builds the value=>label choices object, falling back to a
// placeholder pair when the plan names none.
func choicesMap(choices []string) map[string]any {
	if len(choices) == 0 {
		return map[string]any{
			"option_one": "Option One",
			"option_two": "Option Two",
		}
	}
	out := make(map[string]any, len(choices))
	for _, choice := range choices {
		value := strings.TrimSpace(choice)
		if value == "" {
			continue
		}
		out[strings.ToLower(strings.ReplaceAll(value, " ", "_"))] = LabelFromName(value)
	}
	return out
}

func marshalIndented(value any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
