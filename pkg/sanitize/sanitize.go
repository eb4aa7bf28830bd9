// Package sanitize cleans user-authored rich text before it is stored or
// rendered. Article bodies and match reports are written in a rich-text
// editor whose HTML output cannot be trusted as-is.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richTextPolicyOnce sync.Once
	richTextPolicy     *bluemonday.Policy

	plainPolicyOnce sync.Once
	plainPolicy     *bluemonday.Policy
)

// RichText strips everything outside the allowed editor vocabulary:
// paragraphs, headings, emphasis, lists, blockquotes, links and images.
// Scripts, event handlers and inline styles never survive.
func RichText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(richTextSanitizer().Sanitize(trimmed))
}

// Plain strips all markup, leaving text content only. Used for titles,
// summaries and other single-line fields.
func Plain(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	plainPolicyOnce.Do(func() {
		plainPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(plainPolicy.Sanitize(trimmed))
}

func richTextSanitizer() *bluemonday.Policy {
	richTextPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()

		policy.AllowElements("figure", "figcaption")
		policy.AllowAttrs("class").OnElements("p", "span", "blockquote", "figure")

		// Relative image paths are what the media library produces.
		policy.AllowRelativeURLs(true)
		policy.AllowAttrs("src", "alt", "width", "height").OnElements("img")

		policy.RequireNoFollowOnLinks(false)
		policy.AllowAttrs("target", "rel").OnElements("a")

		richTextPolicy = policy
	})
	return richTextPolicy
}
