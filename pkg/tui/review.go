package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-acfgen/pkg/scaffold"
	"github.com/goliatone/go-acfgen/pkg/schema"
)

const (
	actionApprove = "Approve"
	actionEdit    = "Edit"
	actionReject  = "Reject"
)

// Reviewer walks a user through each proposed field, letting them approve
// it as-is, edit its label/type/required flag, or drop it from the plan.
type Reviewer struct {
	driver   PromptDriver
	registry *schema.Registry
}

// ReviewerOption configures a Reviewer.
type ReviewerOption func(*Reviewer)

// WithDriver overrides the prompt driver, used by tests to script answers.
func WithDriver(driver PromptDriver) ReviewerOption {
	return func(r *Reviewer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithRegistry overrides the schema registry used to list field types.
func WithRegistry(registry *schema.Registry) ReviewerOption {
	return func(r *Reviewer) {
		if registry != nil {
			r.registry = registry
		}
	}
}

// NewReviewer builds a Reviewer with a terminal driver by default.
func NewReviewer(options ...ReviewerOption) *Reviewer {
	r := &Reviewer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver()
	}
	if r.registry == nil {
		r.registry = schema.Default()
	}
	return r
}

// ReviewFields runs the wizard over each field plan and returns the
// approved set in the original order. A rejected field is simply dropped.
func (r *Reviewer) ReviewFields(ctx context.Context, fields []scaffold.FieldPlan) ([]scaffold.FieldPlan, error) {
	approved := make([]scaffold.FieldPlan, 0, len(fields))

	for i, field := range fields {
		summary := fmt.Sprintf("[%d/%d] %s (%s)", i+1, len(fields), field.Name, displayType(field.Type))
		if err := r.driver.Info(ctx, summary); err != nil {
			return nil, err
		}

		choice, err := r.driver.Select(ctx, SelectConfig{
			Message:      fmt.Sprintf("Field %q:", field.Name),
			Options:      []string{actionApprove, actionEdit, actionReject},
			DefaultIndex: 0,
		})
		if err != nil {
			return nil, err
		}

		switch choice {
		case 0:
			approved = append(approved, field)
		case 1:
			edited, err := r.editField(ctx, field)
			if err != nil {
				return nil, err
			}
			approved = append(approved, edited)
		case 2:
			// dropped
		default:
			return nil, fmt.Errorf("tui: unexpected choice %d", choice)
		}
	}

	return approved, nil
}

func (r *Reviewer) editField(ctx context.Context, field scaffold.FieldPlan) (scaffold.FieldPlan, error) {
	label, err := r.driver.Input(ctx, InputConfig{
		Message: "Label:",
		Default: defaultLabel(field),
	})
	if err != nil {
		return scaffold.FieldPlan{}, err
	}
	field.Label = strings.TrimSpace(label)

	types := r.registry.List()
	choice, err := r.driver.Select(ctx, SelectConfig{
		Message:      "Field type:",
		Options:      types,
		DefaultIndex: indexOf(types, field.Type),
		PageSize:     len(types),
	})
	if err != nil {
		return scaffold.FieldPlan{}, err
	}
	if choice >= 0 && choice < len(types) {
		field.Type = types[choice]
	}

	required, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: "Required?",
		Default: field.Required,
	})
	if err != nil {
		return scaffold.FieldPlan{}, err
	}
	field.Required = required

	return field, nil
}

func defaultLabel(field scaffold.FieldPlan) string {
	if field.Label != "" {
		return field.Label
	}
	return scaffold.LabelFromName(field.Name)
}

func displayType(fieldType string) string {
	if fieldType == "" {
		return schema.TypeText
	}
	return fieldType
}
