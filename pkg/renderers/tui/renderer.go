// Package tui walks a form as a sequence of terminal prompts. The default
// driver speaks survey; tests and embedders can script their own PromptDriver.
package tui

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goliatone/go-clubadmin/pkg/form"
	"github.com/goliatone/go-clubadmin/pkg/schema"
)

// Option configures the Renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithMaxPasses bounds how many validation re-prompt rounds Run performs
// before giving up.
func WithMaxPasses(passes int) Option {
	return func(r *Renderer) {
		if passes > 0 {
			r.maxPasses = passes
		}
	}
}

// WithFileReader overrides how file paths entered at the prompt are loaded.
func WithFileReader(read func(path string) (form.FileUpload, error)) Option {
	return func(r *Renderer) {
		if read != nil {
			r.readFile = read
		}
	}
}

// Renderer drives one form through the terminal.
type Renderer struct {
	driver    PromptDriver
	maxPasses int
	readFile  func(path string) (form.FileUpload, error)
}

// New constructs a Renderer backed by survey unless overridden.
func New(opts ...Option) *Renderer {
	renderer := &Renderer{
		driver:    newSurveyDriver(),
		maxPasses: 3,
		readFile:  readFileUpload,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(renderer)
		}
	}
	return renderer
}

// Run prompts for every visible field in schema order, then validates. Fields
// that fail validation are re-prompted with their message shown, up to the
// configured number of passes. The returned values are the submission payload.
func (r *Renderer) Run(ctx context.Context, frm *form.Form) (form.Values, error) {
	if frm == nil {
		return nil, fmt.Errorf("tui: nil form")
	}

	if frm.Mode() == form.ModeDelete {
		return r.confirmDelete(ctx, frm)
	}

	if err := r.walk(ctx, frm, nil); err != nil {
		return nil, err
	}

	for pass := 0; pass < r.maxPasses; pass++ {
		errs, ok := frm.Validate()
		if ok {
			return frm.Payload(), nil
		}
		if err := r.walk(ctx, frm, errs); err != nil {
			return nil, err
		}
	}

	errs, ok := frm.Validate()
	if ok {
		return frm.Payload(), nil
	}
	return nil, fmt.Errorf("tui: form still invalid after %d passes: %d field(s) failing", r.maxPasses, len(errs))
}

func (r *Renderer) confirmDelete(ctx context.Context, frm *form.Form) (form.Values, error) {
	confirmed, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("Delete this %s record?", frm.Schema().Name),
	})
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, ErrAborted
	}
	return frm.Payload(), nil
}

// walk prompts fields in schema order. When errs is non-nil only failing
// fields are re-prompted; otherwise every currently visible field is asked.
func (r *Renderer) walk(ctx context.Context, frm *form.Form, errs form.Errors) error {
	for _, field := range frm.Schema().Fields {
		if errs != nil {
			if _, failing := errs[field.Name]; !failing {
				continue
			}
		}
		if !frm.Visible(field.Name) {
			continue
		}
		if frm.Mode() == form.ModeEdit && field.ReadOnlyInEdit {
			current, _ := frm.Value(field.Name)
			_ = r.driver.Info(ctx, fmt.Sprintf("%s: %v (locked)", promptLabel(field), current))
			continue
		}
		if err := r.promptField(ctx, frm, field, errs[field.Name]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) promptField(ctx context.Context, frm *form.Form, field schema.Field, prevError string) error {
	if prevError != "" {
		if err := r.driver.Info(ctx, prevError); err != nil {
			return err
		}
	}

	switch field.Type {
	case schema.FieldTypeSelect:
		return r.promptSelect(ctx, frm, field)
	case schema.FieldTypeMultiSelect:
		return r.promptMultiSelect(ctx, frm, field)
	case schema.FieldTypeBoolean:
		return r.promptBoolean(ctx, frm, field)
	case schema.FieldTypeTextarea:
		return r.promptTextArea(ctx, frm, field)
	case schema.FieldTypeFile:
		return r.promptFile(ctx, frm, field)
	case schema.FieldTypeNumber:
		return r.promptNumber(ctx, frm, field)
	default:
		return r.promptText(ctx, frm, field)
	}
}

func (r *Renderer) promptSelect(ctx context.Context, frm *form.Form, field schema.Field) error {
	if len(field.Options) == 0 {
		return r.driver.Info(ctx, fmt.Sprintf("%s: no options available", promptLabel(field)))
	}

	labels := make([]string, len(field.Options))
	defaultIndex := -1
	current := currentString(frm, field.Name)
	for i, option := range field.Options {
		labels[i] = option.Label
		if option.Value == current {
			defaultIndex = i
		}
	}

	index, err := r.driver.Select(ctx, SelectConfig{
		Message:      promptLabel(field),
		Options:      labels,
		DefaultIndex: defaultIndex,
		PageSize:     10,
	})
	if err != nil {
		return err
	}
	if index < 0 || index >= len(field.Options) {
		return nil
	}
	return frm.Set(field.Name, field.Options[index].Value)
}

func (r *Renderer) promptMultiSelect(ctx context.Context, frm *form.Form, field schema.Field) error {
	if len(field.Options) == 0 {
		return r.driver.Info(ctx, fmt.Sprintf("%s: no options available", promptLabel(field)))
	}

	labels := make([]string, len(field.Options))
	current := currentStrings(frm, field.Name)
	var defaults []int
	for i, option := range field.Options {
		labels[i] = option.Label
		for _, value := range current {
			if value == option.Value {
				defaults = append(defaults, i)
			}
		}
	}

	indices, err := r.driver.MultiSelect(ctx, SelectConfig{
		Message:  promptLabel(field),
		Options:  labels,
		Defaults: defaults,
		PageSize: 10,
	})
	if err != nil {
		return err
	}
	values := make([]string, 0, len(indices))
	for _, index := range indices {
		if index >= 0 && index < len(field.Options) {
			values = append(values, field.Options[index].Value)
		}
	}
	return frm.Set(field.Name, values)
}

func (r *Renderer) promptBoolean(ctx context.Context, frm *form.Form, field schema.Field) error {
	current, _ := frm.Value(field.Name)
	answer, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: promptLabel(field),
		Default: current == true,
	})
	if err != nil {
		return err
	}
	return frm.Set(field.Name, answer)
}

func (r *Renderer) promptTextArea(ctx context.Context, frm *form.Form, field schema.Field) error {
	help := wordCountHelp(field)
	answer, err := r.driver.TextArea(ctx, TextAreaConfig{
		Message: promptLabel(field),
		Default: currentString(frm, field.Name),
		Help:    help,
	})
	if err != nil {
		return err
	}
	return frm.Set(field.Name, answer)
}

func (r *Renderer) promptNumber(ctx context.Context, frm *form.Form, field schema.Field) error {
	answer, err := r.driver.Input(ctx, InputConfig{
		Message: promptLabel(field),
		Default: currentString(frm, field.Name),
		Validator: func(text string) error {
			if strings.TrimSpace(text) == "" {
				return nil
			}
			if _, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err != nil {
				return fmt.Errorf("enter a number")
			}
			return nil
		},
	})
	if err != nil {
		return err
	}
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return frm.Set(field.Name, "")
	}
	number, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return frm.Set(field.Name, trimmed)
	}
	return frm.Set(field.Name, number)
}

func (r *Renderer) promptText(ctx context.Context, frm *form.Form, field schema.Field) error {
	answer, err := r.driver.Input(ctx, InputConfig{
		Message: promptLabel(field),
		Default: currentString(frm, field.Name),
		Help:    field.Placeholder,
	})
	if err != nil {
		return err
	}
	return frm.Set(field.Name, answer)
}

// promptFile asks for one or more paths and loads them through the form's
// file checks, so type and size limits apply before submission.
func (r *Renderer) promptFile(ctx context.Context, frm *form.Form, field schema.Field) error {
	message := promptLabel(field) + " (path)"
	if field.Multiple {
		message = promptLabel(field) + " (comma-separated paths)"
	}
	answer, err := r.driver.Input(ctx, InputConfig{Message: message})
	if err != nil {
		return err
	}
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return nil
	}

	if !field.Multiple {
		file, err := r.readFile(trimmed)
		if err != nil {
			return r.driver.Info(ctx, err.Error())
		}
		if err := frm.SetFile(field.Name, &file); err != nil {
			return r.driver.Info(ctx, err.Error())
		}
		return nil
	}

	var files []form.FileUpload
	for _, path := range strings.Split(trimmed, ",") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		file, err := r.readFile(path)
		if err != nil {
			return r.driver.Info(ctx, err.Error())
		}
		files = append(files, file)
	}
	if err := frm.SetFiles(field.Name, files); err != nil {
		return r.driver.Info(ctx, err.Error())
	}
	return nil
}

func readFileUpload(path string) (form.FileUpload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return form.FileUpload{}, fmt.Errorf("tui: read %s: %w", path, err)
	}
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return form.FileUpload{
		Name:        filepath.Base(path),
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}

func promptLabel(field schema.Field) string {
	label := strings.TrimSpace(field.Label)
	if label == "" {
		label = field.Name
	}
	if field.Required {
		label += " *"
	}
	return label
}

func wordCountHelp(field schema.Field) string {
	if field.Validation == nil || field.Validation.WordCount == nil {
		return ""
	}
	bounds := field.Validation.WordCount
	switch {
	case bounds.Min > 0 && bounds.Max > 0:
		return fmt.Sprintf("%d-%d words", bounds.Min, bounds.Max)
	case bounds.Min > 0:
		return fmt.Sprintf("at least %d words", bounds.Min)
	case bounds.Max > 0:
		return fmt.Sprintf("at most %d words", bounds.Max)
	default:
		return ""
	}
}

func currentString(frm *form.Form, name string) string {
	value, ok := frm.Value(name)
	if !ok || value == nil {
		return ""
	}
	if text, ok := value.(string); ok {
		return text
	}
	return fmt.Sprint(value)
}

func currentStrings(frm *form.Form, name string) []string {
	value, ok := frm.Value(name)
	if !ok {
		return nil
	}
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return nil
	}
}
