package form

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-clubadmin/pkg/schema"
)

// FileUpload is a selected file held in memory until submission. Unlike a
// browser object URL there is no external handle to release.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// FileError reports a rejected file selection. Selection-time violations are
// returned to the caller for presentation instead of being stored in form
// state.
type FileError struct {
	Field   string
	File    string
	Message string
}

func (e *FileError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("form: field %q: file %q: %s", e.Field, e.File, e.Message)
	}
	return fmt.Sprintf("form: field %q: %s", e.Field, e.Message)
}

// CheckFile validates a single file selection against the field's
// constraints: MIME type against the allow-list, then size against the cap.
func CheckFile(field schema.Field, file FileUpload) error {
	v := field.Validation
	if v == nil {
		return nil
	}
	if len(v.FileTypes) > 0 && !typeAllowed(v.FileTypes, file.ContentType) {
		return &FileError{
			Field:   field.Name,
			File:    file.Name,
			Message: fmt.Sprintf("type %q is not allowed", file.ContentType),
		}
	}
	if v.MaxFileSize > 0 && file.Size > v.MaxFileSize {
		return &FileError{
			Field:   field.Name,
			File:    file.Name,
			Message: fmt.Sprintf("size %d exceeds limit %d", file.Size, v.MaxFileSize),
		}
	}
	return nil
}

// CheckFileBatch validates a multi-file selection all-or-nothing: the count
// against MaxFiles, then every file individually. Any single invalid file
// rejects the entire batch, so callers must not store any of it.
func CheckFileBatch(field schema.Field, files []FileUpload) error {
	v := field.Validation
	if v != nil && v.MaxFiles > 0 && len(files) > v.MaxFiles {
		return &FileError{
			Field:   field.Name,
			Message: fmt.Sprintf("%d files selected, limit is %d", len(files), v.MaxFiles),
		}
	}
	for _, file := range files {
		if err := CheckFile(field, file); err != nil {
			return err
		}
	}
	return nil
}

func typeAllowed(allowed []string, contentType string) bool {
	got := strings.ToLower(strings.TrimSpace(contentType))
	for _, candidate := range allowed {
		want := strings.ToLower(strings.TrimSpace(candidate))
		if want == "" {
			continue
		}
		// Allow-list entries may be exact ("image/png") or wildcard ("image/*").
		if want == got {
			return true
		}
		if strings.HasSuffix(want, "/*") && strings.HasPrefix(got, strings.TrimSuffix(want, "*")) {
			return true
		}
	}
	return false
}
