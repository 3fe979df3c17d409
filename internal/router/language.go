package router

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// langParam is the query parameter used to select a language.
const langParam = "lang"

// languageResolver picks the language code a request should be rendered in.
type languageResolver struct {
	fallback  string
	supported []string

	// tagCodes holds the supported codes that parse as BCP 47 tags, index
	// aligned with the tags given to matcher.
	tagCodes []string
	matcher  language.Matcher
}

// newLanguageResolver initializes a resolver for the supported language codes.
// Codes that aren't valid BCP 47 tags can still be requested explicitly, but
// never win Accept-Language negotiation.
func newLanguageResolver(fallback string, supported []string) *languageResolver {
	lr := &languageResolver{
		fallback:  fallback,
		supported: supported,
	}

	var tags []language.Tag
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		lr.tagCodes = append(lr.tagCodes, code)
	}

	if len(tags) > 0 {
		lr.matcher = language.NewMatcher(tags)
	}

	return lr
}

// codes returns the supported language codes as configured.
func (lr *languageResolver) codes() []string {
	return lr.supported
}

// resolve returns the language code for r. The lang query parameter wins if
// it names a supported code, then the Accept-Language header is matched, and
// the fallback is used otherwise.
func (lr *languageResolver) resolve(r *http.Request) string {
	if v := strings.TrimSpace(r.URL.Query().Get(langParam)); v != "" {
		for _, code := range lr.supported {
			if strings.EqualFold(code, v) {
				return code
			}
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" && lr.matcher != nil {
		tags, _, err := language.ParseAcceptLanguage(accept)
		if err == nil && len(tags) > 0 {
			if _, i, conf := lr.matcher.Match(tags...); conf != language.No {
				return lr.tagCodes[i]
			}
		}
	}

	return lr.fallback
}
