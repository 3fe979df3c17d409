package ui

import (
	"net/url"
	"strings"

	. "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
	"github.com/ztimes2/docfooter/internal/siteconfig"
	"github.com/ztimes2/docfooter/internal/urlpath"
)

const (
	legacyDocsURL     = "http://phpseclib.sourceforge.net/"
	stackOverflowURL  = "https://stackoverflow.com/questions/tagged/phpseclib"
	sourceRepoURL     = "https://github.com/phpseclib/phpseclib"
	patreonURL        = "https://patreon.com/phpseclib"
	githubSponsorsURL = "https://github.com/sponsors/terrafrost"
	payPalURL         = "https://sourceforge.net/donate/index.php?group_id=198487"

	openSourceURL       = "https://opensource.facebook.com/"
	openSourceLogoPath  = "img/oss_logo.png"
	openSourceLogoLabel = "Facebook Open Source"

	// noOpener keeps an opened page from reaching back to the footer's window.
	noOpener = "noreferrer noopener"
)

// FooterProps holds data needed for rendering the site footer.
type FooterProps struct {
	Config siteconfig.Config
	// Language is the code of the language the surrounding page is rendered in.
	// Empty means the page is not localized.
	Language string
}

func (p FooterProps) composer() urlpath.Composer {
	return urlpath.Composer{
		BaseURL: p.Config.BaseURL,
		DocsURL: p.Config.DocsURL,
	}
}

// docLanguage returns the language code threaded into documentation links.
func (p FooterProps) docLanguage() string {
	if !p.Config.LocalizeDocLinks {
		return ""
	}
	return p.Language
}

// SiteFooter returns a Node that renders the footer of a documentation site.
func SiteFooter(props FooterProps) Node {
	cfg := props.Config
	c := props.composer()

	return Footer(
		Class("nav-footer"),
		ID("footer"),
		Section(
			Class("sitemap"),
			A(
				Href(cfg.BaseURL),
				Class("nav-home"),
				If(
					cfg.FooterIcon != "",
					Img(
						Src(c.AssetURL(cfg.FooterIcon)),
						Alt(cfg.Title),
						Width("66"),
						Height("58"),
					),
				),
			),
			Div(
				H5(Text("Docs")),
				Group(Map(cfg.Docs, func(l siteconfig.Link) Node {
					return A(
						Href(c.DocumentationURL(l.ID, props.docLanguage())),
						Text(l.Label),
					)
				})),
			),
			If(
				len(cfg.Pages) > 0,
				Div(
					H5(Text("Community")),
					Group(Map(cfg.Pages, func(l siteconfig.Link) Node {
						return A(
							Href(c.PageURL(l.ID, props.Language)),
							Text(l.Label),
						)
					})),
				),
			),
			Div(
				H5(Text("Support")),
				externalLink(legacyDocsURL, Text("Docs (1.0 / 2.0)")),
				externalLink(stackOverflowURL, Text("Stack Overflow")),
				externalLink(sourceRepoURL, Text("GitHub")),
				If(cfg.RepoURL != "", starButton(cfg.RepoURL)),
			),
			Div(
				H5(Text("Sponsor")),
				externalLink(patreonURL, Text("Patreon")),
				externalLink(githubSponsorsURL, Text("GitHub")),
				externalLink(payPalURL, Text("PayPal")),
			),
		),
		If(
			cfg.OpenSourceBadge,
			externalLink(
				openSourceURL,
				Class("fbOpenSource"),
				Img(
					Src(c.AssetURL(openSourceLogoPath)),
					Alt(openSourceLogoLabel),
					Width("170"),
					Height("45"),
				),
			),
		),
		If(
			cfg.Copyright != "",
			Section(
				Class("copyright"),
				Text(cfg.Copyright),
			),
		),
	)
}

// externalLink returns an anchor that opens href in a new browsing context.
func externalLink(href string, children ...Node) Node {
	return A(append([]Node{
		Href(href),
		Target("_blank"),
		Rel(noOpener),
	}, children...)...)
}

// starButton returns the anchor that the GitHub buttons script turns into a
// star counter for the repository.
func starButton(repoURL string) Node {
	countHref := stargazersPath(repoURL)

	return externalLink(
		repoURL,
		Class("github-button"),
		Attr("data-icon", "octicon-star"),
		If(countHref != "", Attr("data-count-href", countHref)),
		Attr("data-show-count", "true"),
		Attr("data-count-aria-label", "# stargazers on GitHub"),
		Attr("aria-label", "Star this project on GitHub"),
		Text("Star"),
	)
}

// stargazersPath returns the path of a repository's stargazers page, or an
// empty string if the repository URL has no path.
func stargazersPath(repoURL string) string {
	u, err := url.Parse(repoURL)
	if err != nil {
		return ""
	}

	p := strings.TrimSuffix(u.Path, "/")
	if p == "" {
		return ""
	}
	return p + "/stargazers"
}
