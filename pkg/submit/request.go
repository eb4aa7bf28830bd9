package submit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"sort"
	"strings"

	"github.com/goliatone/go-clubadmin/pkg/form"
)

// Request is one encoded wire request, ready for a transport to send.
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	ContentType string
	Body        []byte
}

// ModeError reports a CRUD mode an entity does not route.
type ModeError struct {
	Entity string
	Mode   form.Mode
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("submit: entity %q does not route mode %q", e.Entity, e.Mode)
}

// jsonRequest encodes the payload as an application/json body.
func jsonRequest(method, path string, values form.Values) (Request, error) {
	body, err := json.Marshal(values)
	if err != nil {
		return Request{}, fmt.Errorf("submit: encode json body: %w", err)
	}
	return Request{
		Method:      method,
		Path:        path,
		ContentType: "application/json",
		Body:        body,
	}, nil
}

// multipartRequest encodes the payload as multipart/form-data. File values
// become file parts; file slices become repeated parts under the same field
// name; everything else is written as a string field. Fields are emitted in
// sorted name order so encoded bodies are deterministic.
func multipartRequest(method, path string, values form.Values) (Request, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		switch value := values[name].(type) {
		case nil:
			continue
		case form.FileUpload:
			if err := writeFilePart(writer, name, value); err != nil {
				return Request{}, err
			}
		case *form.FileUpload:
			if value == nil {
				continue
			}
			if err := writeFilePart(writer, name, *value); err != nil {
				return Request{}, err
			}
		case []form.FileUpload:
			for _, file := range value {
				if err := writeFilePart(writer, name, file); err != nil {
					return Request{}, err
				}
			}
		case []string:
			for _, item := range value {
				if err := writer.WriteField(name, item); err != nil {
					return Request{}, fmt.Errorf("submit: write field %q: %w", name, err)
				}
			}
		default:
			if err := writer.WriteField(name, stringValue(value)); err != nil {
				return Request{}, fmt.Errorf("submit: write field %q: %w", name, err)
			}
		}
	}

	if err := writer.Close(); err != nil {
		return Request{}, fmt.Errorf("submit: finalize multipart body: %w", err)
	}
	return Request{
		Method:      method,
		Path:        path,
		ContentType: writer.FormDataContentType(),
		Body:        buf.Bytes(),
	}, nil
}

func writeFilePart(writer *multipart.Writer, field string, file form.FileUpload) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		escapeQuotes(field), escapeQuotes(file.Name)))
	contentType := strings.TrimSpace(file.ContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("submit: create part %q: %w", field, err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return fmt.Errorf("submit: write part %q: %w", field, err)
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

func stringValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		// Trim the .0 JSON decoding appends to integral numbers.
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprint(v)
	}
}

// deleteRequest carries only the record id, as a query parameter. A missing
// id is an error: a bare DELETE on the collection path must never go out.
func deleteRequest(name, path string, values form.Values) (Request, error) {
	id := recordID(values)
	if id == "" {
		return Request{}, fmt.Errorf("submit: entity %q: delete requires a record id", name)
	}
	query := url.Values{}
	query.Set("id", id)
	return Request{
		Method: http.MethodDelete,
		Path:   path,
		Query:  query,
	}, nil
}

func recordID(values form.Values) string {
	for _, key := range []string{"id", "recordId", "record_id"} {
		if value, ok := values[key]; ok {
			if id := strings.TrimSpace(stringValue(value)); id != "" && id != "<nil>" {
				return id
			}
		}
	}
	return ""
}
