package submit

import (
	"embed"
	"fmt"
	"strings"

	"github.com/goliatone/go-clubadmin/pkg/form"
	"github.com/goliatone/go-clubadmin/pkg/sanitize"
	"github.com/goliatone/go-clubadmin/pkg/schema"
)

//go:embed schemas/*.yaml
var schemaFS embed.FS

// Entity names routed by the default registry.
const (
	EntityMatch           = "match"
	EntityNews            = "news"
	EntityMatchReport     = "matchReport"
	EntityMatchGallery    = "matchGallery"
	EntityPoll            = "poll"
	EntityBusinessEnquiry = "businessEnquiry"
	EntitySponsor         = "sponsor"
	EntityPlayer          = "player"
	EntityStaff           = "staff"
	EntityFanSubmission   = "fanSubmission"
)

// matchFrozenFields are editable only at creation time; edit requests strip
// them so only mutable fields travel. Both the schema's camelCase names and
// the API's snake_case variants are covered because edit payloads can carry
// record data loaded straight from the database.
var matchFrozenFields = map[string]struct{}{
	"seasonId":       {},
	"season_id":      {},
	"competitionId":  {},
	"competition_id": {},
	"homeTeamId":     {},
	"home_team_id":   {},
	"awayTeamId":     {},
	"away_team_id":   {},
	"matchDate":      {},
	"match_date":     {},
	"date":           {},
	"kickOffTime":    {},
	"kick_off_time":  {},
	"time":           {},
	"venue":          {},
}

// pollOptionFields flatten into the options array on submission.
var pollOptionFields = []string{"option1", "option2", "option3", "option4", "option5", "option6"}

func mustLoadSchema(file string) schema.Schema {
	doc, err := schema.LoadFS(schemaFS, "schemas/"+file)
	if err != nil {
		panic(fmt.Sprintf("submit: builtin schema %s: %v", file, err))
	}
	return doc
}

// MatchSchema returns the builtin match schema.
func MatchSchema() schema.Schema { return mustLoadSchema("match.yaml") }

// NewsSchema returns the builtin news schema.
func NewsSchema() schema.Schema { return mustLoadSchema("news.yaml") }

// MatchReportSchema returns the builtin match-report schema.
func MatchReportSchema() schema.Schema { return mustLoadSchema("match_report.yaml") }

// MatchGallerySchema returns the builtin match-gallery schema.
func MatchGallerySchema() schema.Schema { return mustLoadSchema("match_gallery.yaml") }

// PollSchema returns the builtin poll schema.
func PollSchema() schema.Schema { return mustLoadSchema("poll.yaml") }

// BusinessEnquirySchema returns the builtin business-enquiry schema.
func BusinessEnquirySchema() schema.Schema { return mustLoadSchema("business_enquiry.yaml") }

// SponsorSchema returns the builtin sponsor schema.
func SponsorSchema() schema.Schema { return mustLoadSchema("sponsor.yaml") }

// PlayerSchema returns the builtin player schema.
func PlayerSchema() schema.Schema { return mustLoadSchema("player.yaml") }

// StaffSchema returns the builtin staff schema.
func StaffSchema() schema.Schema { return mustLoadSchema("staff.yaml") }

// FanSubmissionSchema returns the builtin fan-submission schema.
func FanSubmissionSchema() schema.Schema { return mustLoadSchema("fan_submission.yaml") }

// NewMatchEntity routes matches as JSON. Edit strips the frozen fixture
// fields (season, competition, teams, date, time, venue).
func NewMatchEntity() Entity {
	const path = "/api/admin/matches"
	return EntityFunc{
		EntityName:   EntityMatch,
		EntitySchema: MatchSchema(),
		Build: func(mode form.Mode, values form.Values) (Request, error) {
			switch mode {
			case form.ModeCreate:
				return jsonRequest("POST", path, values)
			case form.ModeEdit:
				payload := make(form.Values, len(values))
				for name, value := range values {
					if _, frozen := matchFrozenFields[name]; frozen {
						continue
					}
					payload[name] = value
				}
				return jsonRequest("PUT", path, payload)
			case form.ModeDelete:
				return deleteRequest(EntityMatch, path, values)
			default:
				return Request{}, &ModeError{Entity: EntityMatch, Mode: mode}
			}
		},
	}
}

// NewPollEntity routes polls as JSON, flattening option1..option6 into an
// options array and dropping blank entries.
func NewPollEntity() Entity {
	const path = "/api/admin/polls"
	doc := PollSchema()
	return EntityFunc{
		EntityName:   EntityPoll,
		EntitySchema: doc,
		Build: func(mode form.Mode, values form.Values) (Request, error) {
			switch mode {
			case form.ModeCreate, form.ModeEdit:
				payload := flattenPollOptions(sanitizeRichText(doc, values))
				method := "POST"
				if mode == form.ModeEdit {
					method = "PUT"
				}
				return jsonRequest(method, path, payload)
			case form.ModeDelete:
				return deleteRequest(EntityPoll, path, values)
			default:
				return Request{}, &ModeError{Entity: EntityPoll, Mode: mode}
			}
		},
	}
}

func flattenPollOptions(values form.Values) form.Values {
	payload := make(form.Values, len(values))
	for name, value := range values {
		payload[name] = value
	}

	var options []string
	for _, name := range pollOptionFields {
		raw, ok := payload[name]
		delete(payload, name)
		if !ok {
			continue
		}
		if text, ok := raw.(string); ok {
			if trimmed := strings.TrimSpace(text); trimmed != "" {
				options = append(options, trimmed)
			}
		}
	}
	payload["options"] = options
	return payload
}

// NewBusinessEnquiryEntity routes enquiries as multipart. Enquiries arrive
// through the public site, so create is not exposed here; the console only
// updates and removes them.
func NewBusinessEnquiryEntity() Entity {
	const path = "/api/admin/business-enquiries"
	doc := BusinessEnquirySchema()
	return EntityFunc{
		EntityName:   EntityBusinessEnquiry,
		EntitySchema: doc,
		Build: func(mode form.Mode, values form.Values) (Request, error) {
			switch mode {
			case form.ModeEdit:
				return multipartEdit(EntityBusinessEnquiry, path, sanitizeRichText(doc, values))
			case form.ModeDelete:
				return deleteRequest(EntityBusinessEnquiry, path, values)
			default:
				return Request{}, &ModeError{Entity: EntityBusinessEnquiry, Mode: mode}
			}
		},
	}
}

// NewNewsEntity routes news articles as multipart form data.
func NewNewsEntity() Entity {
	return multipartEntity(EntityNews, "/api/admin/news", NewsSchema())
}

// NewMatchReportEntity routes match reports as multipart form data.
func NewMatchReportEntity() Entity {
	return multipartEntity(EntityMatchReport, "/api/admin/match-reports", MatchReportSchema())
}

// NewMatchGalleryEntity routes match galleries as multipart form data; photo
// arrays travel as repeated parts.
func NewMatchGalleryEntity() Entity {
	return multipartEntity(EntityMatchGallery, "/api/admin/match-galleries", MatchGallerySchema())
}

// NewSponsorEntity routes sponsors as multipart form data.
func NewSponsorEntity() Entity {
	return multipartEntity(EntitySponsor, "/api/admin/sponsors", SponsorSchema())
}

// NewPlayerEntity routes player profiles as multipart form data.
func NewPlayerEntity() Entity {
	return multipartEntity(EntityPlayer, "/api/admin/players", PlayerSchema())
}

// NewStaffEntity routes staff profiles as multipart form data.
func NewStaffEntity() Entity {
	return multipartEntity(EntityStaff, "/api/admin/staff", StaffSchema())
}

// NewFanSubmissionEntity routes fan submissions as multipart form data.
func NewFanSubmissionEntity() Entity {
	return multipartEntity(EntityFanSubmission, "/api/admin/fan-submissions", FanSubmissionSchema())
}

// multipartEntity is the common multipart routing shape: create posts the
// payload, edit appends the record id as an extra field, delete removes by
// id.
func multipartEntity(name, path string, doc schema.Schema) Entity {
	return EntityFunc{
		EntityName:   name,
		EntitySchema: doc,
		Build: func(mode form.Mode, values form.Values) (Request, error) {
			switch mode {
			case form.ModeCreate:
				return multipartRequest("POST", path, sanitizeRichText(doc, values))
			case form.ModeEdit:
				return multipartEdit(name, path, sanitizeRichText(doc, values))
			case form.ModeDelete:
				return deleteRequest(name, path, values)
			default:
				return Request{}, &ModeError{Entity: name, Mode: mode}
			}
		},
	}
}

// sanitizeRichText cleans editor-authored HTML in the schema's textarea
// fields before the payload is encoded. Other field kinds pass through
// untouched.
func sanitizeRichText(doc schema.Schema, values form.Values) form.Values {
	richText := make(map[string]struct{})
	for _, field := range doc.Fields {
		if field.Type == schema.FieldTypeTextarea {
			richText[field.Name] = struct{}{}
		}
	}
	if len(richText) == 0 {
		return values
	}
	payload := make(form.Values, len(values))
	for name, value := range values {
		if _, ok := richText[name]; ok {
			if text, isText := value.(string); isText {
				payload[name] = sanitize.RichText(text)
				continue
			}
		}
		payload[name] = value
	}
	return payload
}

func multipartEdit(name, path string, values form.Values) (Request, error) {
	id := recordID(values)
	if id == "" {
		return Request{}, fmt.Errorf("submit: entity %q: edit requires a record id", name)
	}
	payload := make(form.Values, len(values)+1)
	for key, value := range values {
		payload[key] = value
	}
	payload["id"] = id
	return multipartRequest("PUT", path, payload)
}

// DefaultRegistry returns a registry with every builtin entity registered.
func DefaultRegistry() *Registry {
	registry := NewRegistry()
	registry.MustRegister(NewMatchEntity())
	registry.MustRegister(NewNewsEntity())
	registry.MustRegister(NewMatchReportEntity())
	registry.MustRegister(NewMatchGalleryEntity())
	registry.MustRegister(NewPollEntity())
	registry.MustRegister(NewBusinessEnquiryEntity())
	registry.MustRegister(NewSponsorEntity())
	registry.MustRegister(NewPlayerEntity())
	registry.MustRegister(NewStaffEntity())
	registry.MustRegister(NewFanSubmissionEntity())
	return registry
}
