package openapi

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-clubadmin/pkg/schema"
)

const newsAPIDoc = `
openapi: 3.0.3
info:
  title: Club Admin API
  version: "1.0"
paths:
  /api/admin/news:
    post:
      operationId: createNews
      requestBody:
        content:
          multipart/form-data:
            schema:
              type: object
              required: [title, body]
              properties:
                title:
                  type: string
                  title: Headline
                  maxLength: 120
                body:
                  type: string
                  maxLength: 20000
                  x-admin-form:
                    wordCount:
                      min: 50
                      max: 1500
                category:
                  type: string
                  enum: [club-news, match-preview, community]
                coverImage:
                  type: string
                  format: binary
                  x-admin-form:
                    fileTypes: [image/jpeg, image/png]
                    maxFileSize: 5242880
                published:
                  type: boolean
                  default: false
      responses:
        "200":
          description: ok
  /api/admin/match-reports:
    post:
      operationId: createMatchReport
      requestBody:
        content:
          multipart/form-data:
            schema:
              type: object
              required: [matchId]
              properties:
                matchId:
                  type: string
                  x-admin-form:
                    dynamicSource: recent-matches
                    readOnlyInEdit: true
                photos:
                  type: array
                  items:
                    type: string
                    format: binary
                  x-admin-form:
                    maxFiles: 6
      responses:
        "200":
          description: ok
`

func TestFormSchemaFromOperation(t *testing.T) {
	t.Parallel()

	converter, err := Load(context.Background(), []byte(newsAPIDoc))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	doc, err := converter.FormSchema("createNews")
	if err != nil {
		t.Fatalf("FormSchema returned error: %v", err)
	}
	if doc.Name != "createNews" {
		t.Fatalf("unexpected schema name %q", doc.Name)
	}

	// Required properties lead, in declaration order.
	if doc.Fields[0].Name != "title" || doc.Fields[1].Name != "body" {
		t.Fatalf("unexpected field order: %v", fieldNames(doc))
	}

	title, _ := doc.Field("title")
	if title.Type != schema.FieldTypeText || !title.Required || title.Label != "Headline" {
		t.Fatalf("unexpected title field %+v", title)
	}
	if title.Validation == nil || title.Validation.MaxLength != 120 {
		t.Fatalf("expected maxLength 120, got %+v", title.Validation)
	}

	// Long free text becomes a textarea and carries the word-count hint.
	body, _ := doc.Field("body")
	if body.Type != schema.FieldTypeTextarea {
		t.Fatalf("unexpected body type %q", body.Type)
	}
	if body.Validation == nil || body.Validation.WordCount == nil {
		t.Fatalf("expected word-count bounds, got %+v", body.Validation)
	}
	if body.Validation.WordCount.Min != 50 || body.Validation.WordCount.Max != 1500 {
		t.Fatalf("unexpected word-count bounds %+v", body.Validation.WordCount)
	}

	category, _ := doc.Field("category")
	wantOptions := []schema.Option{
		{Value: "club-news", Label: "club-news"},
		{Value: "match-preview", Label: "match-preview"},
		{Value: "community", Label: "community"},
	}
	if category.Type != schema.FieldTypeSelect {
		t.Fatalf("unexpected category type %q", category.Type)
	}
	if diff := cmp.Diff(wantOptions, category.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}

	cover, _ := doc.Field("coverImage")
	if cover.Type != schema.FieldTypeFile || cover.Multiple {
		t.Fatalf("unexpected cover field %+v", cover)
	}
	if cover.Validation == nil || cover.Validation.MaxFileSize != 5242880 {
		t.Fatalf("unexpected cover validation %+v", cover.Validation)
	}

	published, _ := doc.Field("published")
	if published.Type != schema.FieldTypeBoolean || published.Default != false {
		t.Fatalf("unexpected published field %+v", published)
	}
}

func TestFormSchemaDynamicSourceAndFileArray(t *testing.T) {
	t.Parallel()

	converter, err := Load(context.Background(), []byte(newsAPIDoc))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	doc, err := converter.FormSchema("createMatchReport")
	if err != nil {
		t.Fatalf("FormSchema returned error: %v", err)
	}

	matchID, _ := doc.Field("matchId")
	if matchID.DynamicSource != schema.SourceRecentMatches {
		t.Fatalf("unexpected dynamic source %q", matchID.DynamicSource)
	}
	if !matchID.ReadOnlyInEdit {
		t.Fatalf("expected matchId frozen in edit")
	}

	photos, _ := doc.Field("photos")
	if photos.Type != schema.FieldTypeFile || !photos.Multiple {
		t.Fatalf("unexpected photos field %+v", photos)
	}
	if photos.Validation == nil || photos.Validation.MaxFiles != 6 {
		t.Fatalf("unexpected photos validation %+v", photos.Validation)
	}
}

func TestFormSchemaUnknownOperation(t *testing.T) {
	t.Parallel()

	converter, err := Load(context.Background(), []byte(newsAPIDoc))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if _, err := converter.FormSchema("nope"); err == nil {
		t.Fatalf("expected error for unknown operation")
	}
}

func TestLoadRejectsEmptyDocument(t *testing.T) {
	t.Parallel()

	if _, err := Load(context.Background(), nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}

func fieldNames(doc schema.Schema) []string {
	names := make([]string, 0, len(doc.Fields))
	for _, field := range doc.Fields {
		names = append(names, field.Name)
	}
	return names
}
