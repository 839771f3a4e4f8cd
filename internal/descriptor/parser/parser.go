// Package parser decodes descriptor documents into typed bundles. JSON is the
// canonical format; YAML payloads are converted to JSON first so both paths
// share one decoding model.
package parser

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-acfgen/pkg/descriptor"
)

// Parser implements descriptor.Parser.
type Parser struct {
	options descriptor.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ descriptor.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options descriptor.ParserOptions) descriptor.Parser {
	return &Parser{options: options}
}

// Parse converts a Document into a Bundle of typed descriptors.
func (p *Parser) Parse(ctx context.Context, doc descriptor.Document) (descriptor.Bundle, error) {
	if err := ctx.Err(); err != nil {
		return descriptor.Bundle{}, err
	}

	raw := bytes.TrimSpace(doc.Raw())
	if len(raw) == 0 {
		return descriptor.Bundle{}, errors.New("descriptor parser: document payload is empty")
	}

	if !looksLikeJSON(raw) {
		if !p.options.AllowYAML {
			return descriptor.Bundle{}, errors.New("descriptor parser: yaml support disabled")
		}
		converted, err := yamlToJSON(raw)
		if err != nil {
			return descriptor.Bundle{}, fmt.Errorf("descriptor parser: convert yaml: %w", err)
		}
		raw = converted
	}

	bundle := descriptor.Bundle{}
	if raw[0] == '[' {
		var elements []json.RawMessage
		if err := json.Unmarshal(raw, &elements); err != nil {
			return descriptor.Bundle{}, fmt.Errorf("descriptor parser: decode array: %w", err)
		}
		for i, element := range elements {
			if err := p.parseObject(element, &bundle); err != nil {
				return descriptor.Bundle{}, fmt.Errorf("descriptor parser: element %d: %w", i, err)
			}
		}
	} else {
		if err := p.parseObject(raw, &bundle); err != nil {
			return descriptor.Bundle{}, fmt.Errorf("descriptor parser: %w", err)
		}
	}

	if bundle.Empty() {
		return descriptor.Bundle{}, errors.New("descriptor parser: document holds no descriptors")
	}
	return bundle, nil
}

// probe inspects just enough of an object to classify it.
type probe struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

func (p *Parser) parseObject(raw []byte, bundle *descriptor.Bundle) error {
	var head probe
	if err := json.Unmarshal(raw, &head); err != nil {
		return fmt.Errorf("classify descriptor: %w", err)
	}

	switch {
	case strings.HasPrefix(head.Key, descriptor.GroupKeyPrefix):
		var group descriptor.FieldGroup
		if err := json.Unmarshal(raw, &group); err != nil {
			return fmt.Errorf("decode field group %q: %w", head.Key, err)
		}
		if len(group.Fields) == 0 && !p.options.AllowEmptyGroups {
			return fmt.Errorf("field group %q has no fields", head.Key)
		}
		bundle.Groups = append(bundle.Groups, group)
	case strings.HasPrefix(head.Key, descriptor.FieldKeyPrefix):
		var field descriptor.Field
		if err := json.Unmarshal(raw, &field); err != nil {
			return fmt.Errorf("decode field %q: %w", head.Key, err)
		}
		bundle.Fields = append(bundle.Fields, field)
	case strings.HasPrefix(head.Name, descriptor.BlockNamePrefix):
		var block descriptor.Block
		if err := json.Unmarshal(raw, &block); err != nil {
			return fmt.Errorf("decode block %q: %w", head.Name, err)
		}
		bundle.Blocks = append(bundle.Blocks, block)
	case head.Key != "":
		// Malformed keys still classify by shape so the validator can report
		// them instead of the parser rejecting the document outright.
		var asMap map[string]any
		if err := json.Unmarshal(raw, &asMap); err != nil {
			return fmt.Errorf("decode descriptor %q: %w", head.Key, err)
		}
		if _, hasFields := asMap["fields"]; hasFields {
			var group descriptor.FieldGroup
			if err := json.Unmarshal(raw, &group); err != nil {
				return fmt.Errorf("decode field group %q: %w", head.Key, err)
			}
			bundle.Groups = append(bundle.Groups, group)
			return nil
		}
		var field descriptor.Field
		if err := json.Unmarshal(raw, &field); err != nil {
			return fmt.Errorf("decode field %q: %w", head.Key, err)
		}
		bundle.Fields = append(bundle.Fields, field)
	default:
		return errors.New("unable to determine descriptor kind: object carries neither a key nor an acf/ block name")
	}
	return nil
}

func looksLikeJSON(raw []byte) bool {
	return len(raw) > 0 && (raw[0] == '{' || raw[0] == '[')
}

func yamlToJSON(raw []byte) ([]byte, error) {
	var decoded any
	if err := yaml.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	return json.Marshal(decoded)
}
