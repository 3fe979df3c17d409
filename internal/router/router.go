package router

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	g "github.com/maragudk/gomponents"
	"github.com/rs/zerolog"
	"github.com/ztimes2/docfooter/internal/siteconfig"
	"github.com/ztimes2/docfooter/internal/ui"
)

// New initializes a new HTTP handler that serves previews of the footer
// rendered from cfg.
func New(cfg siteconfig.Config, logger zerolog.Logger) http.Handler {
	langs := newLanguageResolver(cfg.Language, cfg.Languages)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", handlePreview(cfg, langs))
	mux.HandleFunc("GET /footer", handleFooter(cfg, langs))

	return logRequests(mux, logger)
}

func handlePreview(cfg siteconfig.Config, langs *languageResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := ui.PreviewPage(ui.PreviewPageProps{
			Footer: ui.FooterProps{
				Config:   cfg,
				Language: langs.resolve(r),
			},
			Languages: langs.codes(),
		})

		writeNode(w, r, page)
	}
}

func handleFooter(cfg siteconfig.Config, langs *languageResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		footer := ui.SiteFooter(ui.FooterProps{
			Config:   cfg,
			Language: langs.resolve(r),
		})

		writeNode(w, r, footer)
	}
}

func writeNode(w http.ResponseWriter, r *http.Request, n g.Node) {
	buf := new(bytes.Buffer)
	if err := n.Render(buf); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Could not render page")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Add("Vary", "Accept-Language")
	cacheResponse(w, time.Hour)
	_, _ = w.Write(buf.Bytes())
}

func cacheResponse(w http.ResponseWriter, d time.Duration) {
	age := strconv.Itoa(int(d.Seconds()))
	w.Header().Set("Cache-Control", "max-age="+age)
}
