package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-clubadmin/pkg/form"
	"github.com/goliatone/go-clubadmin/pkg/schema"
)

// scriptDriver replays canned answers and records every prompt message.
type scriptDriver struct {
	inputs   []string
	confirms []bool
	selects  []int
	multis   [][]int
	texts    []string

	messages []string
	infos    []string
}

func (d *scriptDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.messages = append(d.messages, cfg.Message)
	if len(d.inputs) == 0 {
		return "", errors.New("script exhausted: input")
	}
	answer := d.inputs[0]
	d.inputs = d.inputs[1:]
	return answer, nil
}

func (d *scriptDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	d.messages = append(d.messages, cfg.Message)
	if len(d.confirms) == 0 {
		return false, errors.New("script exhausted: confirm")
	}
	answer := d.confirms[0]
	d.confirms = d.confirms[1:]
	return answer, nil
}

func (d *scriptDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	d.messages = append(d.messages, cfg.Message)
	if len(d.selects) == 0 {
		return -1, errors.New("script exhausted: select")
	}
	answer := d.selects[0]
	d.selects = d.selects[1:]
	return answer, nil
}

func (d *scriptDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	d.messages = append(d.messages, cfg.Message)
	if len(d.multis) == 0 {
		return nil, errors.New("script exhausted: multiselect")
	}
	answer := d.multis[0]
	d.multis = d.multis[1:]
	return answer, nil
}

func (d *scriptDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	d.messages = append(d.messages, cfg.Message)
	if len(d.texts) == 0 {
		return "", errors.New("script exhausted: textarea")
	}
	answer := d.texts[0]
	d.texts = d.texts[1:]
	return answer, nil
}

func (d *scriptDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func fanSchema() schema.Schema {
	return schema.Schema{
		Name: "fanSubmission",
		Fields: []schema.Field{
			{Name: "supporterName", Type: schema.FieldTypeText, Label: "Name", Required: true},
			{Name: "submissionType", Type: schema.FieldTypeSelect, Label: "Type", Required: true,
				Options: []schema.Option{
					{Value: "story", Label: "Fan Story"},
					{Value: "question", Label: "Question"},
				}},
			{Name: "story", Type: schema.FieldTypeTextarea, Label: "Story",
				Conditional: &schema.Conditional{Field: "submissionType", Value: "story", Operator: schema.OpEquals}},
			{Name: "question", Type: schema.FieldTypeTextarea, Label: "Question",
				Conditional: &schema.Conditional{Field: "submissionType", Value: "question", Operator: schema.OpEquals}},
		},
	}
}

func TestRunWalksVisibleFields(t *testing.T) {
	t.Parallel()

	driver := &scriptDriver{
		inputs:  []string{"Jean Fraser"},
		selects: []int{0},
		texts:   []string{"Great day out at Spain Park."},
	}
	renderer := New(WithPromptDriver(driver))

	frm, err := form.New(fanSchema(), form.ModeCreate, nil)
	if err != nil {
		t.Fatalf("form.New returned error: %v", err)
	}

	payload, err := renderer.Run(context.Background(), frm)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if payload["supporterName"] != "Jean Fraser" {
		t.Fatalf("unexpected payload %v", payload)
	}
	if payload["submissionType"] != "story" {
		t.Fatalf("unexpected payload %v", payload)
	}
	if payload["story"] != "Great day out at Spain Park." {
		t.Fatalf("unexpected payload %v", payload)
	}
	if _, asked := payload["question"]; asked {
		t.Fatalf("hidden field must not be prompted, payload %v", payload)
	}
}

func TestRunRepromptsFailingFields(t *testing.T) {
	t.Parallel()

	// First pass leaves the required name blank; second pass fixes it. The
	// story field already validates, so only the name is asked again.
	driver := &scriptDriver{
		inputs:  []string{"", "Jean Fraser"},
		selects: []int{0},
		texts:   []string{"Great day out."},
	}
	renderer := New(WithPromptDriver(driver))

	frm, err := form.New(fanSchema(), form.ModeCreate, nil)
	if err != nil {
		t.Fatalf("form.New returned error: %v", err)
	}

	payload, err := renderer.Run(context.Background(), frm)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if payload["supporterName"] != "Jean Fraser" {
		t.Fatalf("unexpected payload %v", payload)
	}

	found := false
	for _, info := range driver.infos {
		if info == "Name is required" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected validation message before re-prompt, got %v", driver.infos)
	}
}

func TestRunGivesUpAfterMaxPasses(t *testing.T) {
	t.Parallel()

	driver := &scriptDriver{
		inputs:  []string{"", "", ""},
		selects: []int{1},
		texts:   []string{"Who designed the new kit?"},
	}
	renderer := New(WithPromptDriver(driver), WithMaxPasses(2))

	frm, err := form.New(fanSchema(), form.ModeCreate, nil)
	if err != nil {
		t.Fatalf("form.New returned error: %v", err)
	}

	if _, err := renderer.Run(context.Background(), frm); err == nil {
		t.Fatalf("expected error when validation never passes")
	}
}

func TestRunDeleteConfirm(t *testing.T) {
	t.Parallel()

	driver := &scriptDriver{confirms: []bool{true}}
	renderer := New(WithPromptDriver(driver))

	frm, err := form.New(fanSchema(), form.ModeDelete, form.Values{"id": "4"})
	if err != nil {
		t.Fatalf("form.New returned error: %v", err)
	}

	payload, err := renderer.Run(context.Background(), frm)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(payload) != 0 {
		t.Fatalf("delete payload must be empty, got %v", payload)
	}

	declined := &scriptDriver{confirms: []bool{false}}
	renderer = New(WithPromptDriver(declined))
	frm, err = form.New(fanSchema(), form.ModeDelete, form.Values{"id": "4"})
	if err != nil {
		t.Fatalf("form.New returned error: %v", err)
	}
	if _, err := renderer.Run(context.Background(), frm); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestRunFrozenFieldSkippedInEdit(t *testing.T) {
	t.Parallel()

	doc := schema.Schema{
		Name: "matchReport",
		Fields: []schema.Field{
			{Name: "matchId", Type: schema.FieldTypeSelect, Label: "Match", ReadOnlyInEdit: true,
				Options: []schema.Option{{Value: "42", Label: "Huntly v Keith"}}},
			{Name: "body", Type: schema.FieldTypeTextarea, Label: "Report"},
		},
	}
	driver := &scriptDriver{texts: []string{"A tight game settled late."}}
	renderer := New(WithPromptDriver(driver))

	frm, err := form.New(doc, form.ModeEdit, form.Values{"matchId": "42"})
	if err != nil {
		t.Fatalf("form.New returned error: %v", err)
	}

	payload, err := renderer.Run(context.Background(), frm)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if payload["matchId"] != "42" {
		t.Fatalf("frozen value must survive, payload %v", payload)
	}
	if len(driver.infos) == 0 {
		t.Fatalf("expected locked-field notice")
	}
	for _, msg := range driver.messages {
		if msg == "Match" {
			t.Fatalf("frozen field must not be prompted")
		}
	}
}

func TestRunLoadsFilesThroughReader(t *testing.T) {
	t.Parallel()

	doc := schema.Schema{
		Name: "matchGallery",
		Fields: []schema.Field{
			{Name: "photos", Type: schema.FieldTypeFile, Label: "Photos", Multiple: true,
				Validation: &schema.Validation{MaxFiles: 2, FileTypes: []string{"image/jpeg"}}},
		},
	}
	driver := &scriptDriver{inputs: []string{"a.jpg, b.jpg"}}
	renderer := New(
		WithPromptDriver(driver),
		WithFileReader(func(path string) (form.FileUpload, error) {
			return form.FileUpload{Name: path, ContentType: "image/jpeg", Size: 10}, nil
		}),
	)

	frm, err := form.New(doc, form.ModeCreate, nil)
	if err != nil {
		t.Fatalf("form.New returned error: %v", err)
	}

	payload, err := renderer.Run(context.Background(), frm)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	files, ok := payload["photos"].([]form.FileUpload)
	if !ok || len(files) != 2 {
		t.Fatalf("expected two stored files, got %v", payload["photos"])
	}
	if files[0].Name != "a.jpg" || files[1].Name != "b.jpg" {
		t.Fatalf("unexpected files %v", files)
	}
}
