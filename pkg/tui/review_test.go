package tui_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-acfgen/pkg/scaffold"
	"github.com/goliatone/go-acfgen/pkg/tui"
)

// scriptedDriver replays canned answers so review flows run without a
// terminal.
type scriptedDriver struct {
	t        *testing.T
	inputs   []string
	confirms []bool
	selects  []int
	messages []string
}

func (d *scriptedDriver) Input(ctx context.Context, cfg tui.InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		d.t.Fatalf("unexpected Input prompt: %q", cfg.Message)
	}
	answer := d.inputs[0]
	d.inputs = d.inputs[1:]
	if answer == "" {
		return cfg.Default, nil
	}
	return answer, nil
}

func (d *scriptedDriver) Confirm(ctx context.Context, cfg tui.ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		d.t.Fatalf("unexpected Confirm prompt: %q", cfg.Message)
	}
	answer := d.confirms[0]
	d.confirms = d.confirms[1:]
	return answer, nil
}

func (d *scriptedDriver) Select(ctx context.Context, cfg tui.SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		d.t.Fatalf("unexpected Select prompt: %q", cfg.Message)
	}
	answer := d.selects[0]
	d.selects = d.selects[1:]
	return answer, nil
}

func (d *scriptedDriver) Info(ctx context.Context, msg string) error {
	d.messages = append(d.messages, msg)
	return nil
}

func TestReviewFieldsApproveAll(t *testing.T) {
	driver := &scriptedDriver{t: t, selects: []int{0, 0}}
	reviewer := tui.NewReviewer(tui.WithDriver(driver))

	fields := []scaffold.FieldPlan{
		{Name: "heading", Type: "text"},
		{Name: "hero_image", Type: "image"},
	}

	approved, err := reviewer.ReviewFields(context.Background(), fields)
	if err != nil {
		t.Fatalf("ReviewFields: %v", err)
	}
	if diff := cmp.Diff(fields, approved); diff != "" {
		t.Fatalf("approved mismatch (-want +got):\n%s", diff)
	}
	if len(driver.messages) != 2 {
		t.Fatalf("expected a summary per field, got %v", driver.messages)
	}
}

func TestReviewFieldsReject(t *testing.T) {
	driver := &scriptedDriver{t: t, selects: []int{0, 2}}
	reviewer := tui.NewReviewer(tui.WithDriver(driver))

	fields := []scaffold.FieldPlan{
		{Name: "heading", Type: "text"},
		{Name: "legacy_field", Type: "text"},
	}

	approved, err := reviewer.ReviewFields(context.Background(), fields)
	if err != nil {
		t.Fatalf("ReviewFields: %v", err)
	}
	if len(approved) != 1 || approved[0].Name != "heading" {
		t.Fatalf("rejected field should be dropped, got %+v", approved)
	}
}

func TestReviewFieldsEdit(t *testing.T) {
	driver := &scriptedDriver{
		t: t,
		// action Edit, then the type choice inside the edit flow.
		selects:  []int{1, 0},
		inputs:   []string{"Main Heading"},
		confirms: []bool{true},
	}
	reviewer := tui.NewReviewer(tui.WithDriver(driver))

	fields := []scaffold.FieldPlan{{Name: "heading", Type: "text"}}

	approved, err := reviewer.ReviewFields(context.Background(), fields)
	if err != nil {
		t.Fatalf("ReviewFields: %v", err)
	}
	if len(approved) != 1 {
		t.Fatalf("expected 1 field, got %d", len(approved))
	}

	edited := approved[0]
	if edited.Label != "Main Heading" {
		t.Fatalf("label = %q", edited.Label)
	}
	if !edited.Required {
		t.Fatal("required flag should be set")
	}
	// The scripted type choice picks index 0 of the sorted type list.
	if edited.Type != "color_picker" {
		t.Fatalf("type = %q, want color_picker", edited.Type)
	}
}

func TestReviewFieldsEmpty(t *testing.T) {
	reviewer := tui.NewReviewer(tui.WithDriver(&scriptedDriver{t: t}))

	approved, err := reviewer.ReviewFields(context.Background(), nil)
	if err != nil {
		t.Fatalf("ReviewFields: %v", err)
	}
	if len(approved) != 0 {
		t.Fatalf("expected no fields, got %v", approved)
	}
}
