package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ztimes2/docfooter/internal/htmlutil"
	"github.com/ztimes2/docfooter/internal/logging"
	"github.com/ztimes2/docfooter/internal/router"
	"github.com/ztimes2/docfooter/internal/siteconfig"
	"github.com/ztimes2/docfooter/internal/ui"
)

var (
	configPath string
	lang       string
	addr       string
)

func main() {
	logger, err := logging.Load(os.Getenv(logging.EnvConfigPath))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	root := newRootCmd(logger)

	if err := root.ExecuteContext(context.Background()); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Flag values are reset to their defaults
// every time it is called.
func newRootCmd(logger zerolog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "docfooter",
		Short:         "Render the footer of a documentation site",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the site config YAML file")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Write the footer markup to stdout",
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&lang, "lang", "", "language code of the page (defaults to the configured language)")

	linksCmd := &cobra.Command{
		Use:   "links",
		Short: "List every link of the footer",
		RunE:  runLinks,
	}
	linksCmd.Flags().StringVar(&lang, "lang", "", "language code of the page (defaults to the configured language)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live preview of the footer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, logger)
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")

	root.AddCommand(renderCmd, linksCmd, serveCmd)

	return root
}

func loadConfig() (siteconfig.Config, error) {
	cfg, err := siteconfig.Load(configPath)
	if err != nil {
		return siteconfig.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return siteconfig.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func footerProps(cfg siteconfig.Config) ui.FooterProps {
	l := lang
	if l == "" {
		l = cfg.Language
	}
	return ui.FooterProps{
		Config:   cfg,
		Language: l,
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	return ui.SiteFooter(footerProps(cfg)).Render(cmd.OutOrStdout())
}

func runLinks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	if err := ui.SiteFooter(footerProps(cfg)).Render(buf); err != nil {
		return fmt.Errorf("could not render footer: %w", err)
	}

	root, err := htmlutil.Parse(buf)
	if err != nil {
		return err
	}

	for _, l := range htmlutil.Links(root) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", l.Href, l.Text)
	}
	return nil
}

func runServe(cmd *cobra.Command, logger zerolog.Logger) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           router.New(cfg, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("Could not shut down server")
		}
	}()

	logger.Info().Str("addr", addr).Msg("Serving footer preview")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not serve: %w", err)
	}
	return nil
}
