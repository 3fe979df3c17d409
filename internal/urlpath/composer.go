package urlpath

// Composer builds links rooted at a site's base URL.
//
// An empty DocsURL or language code contributes nothing to a composed link.
// No input is validated: callers are trusted to pass well-formed identifiers
// and a BaseURL that ends with a separator.
type Composer struct {
	BaseURL string
	DocsURL string
}

// DocumentationURL returns the link of a documentation page.
//
// Example: BaseURL "/site/", DocsURL "docs", id "why", language "en" yields "/site/docs/en/why".
func (c Composer) DocumentationURL(documentID, languageCode string) string {
	var docsPart string
	if c.DocsURL != "" {
		docsPart = c.DocsURL + "/"
	}
	return c.BaseURL + docsPart + languagePart(languageCode) + documentID
}

// PageURL returns the link of a non-documentation page. Unlike DocumentationURL
// it never includes the docs sub-path.
func (c Composer) PageURL(pageID, languageCode string) string {
	return c.BaseURL + languagePart(languageCode) + pageID
}

// AssetURL returns the link of a static asset such as an image.
func (c Composer) AssetURL(path string) string {
	return c.BaseURL + path
}

func languagePart(code string) string {
	if code == "" {
		return ""
	}
	return code + "/"
}
