package cmd

import (
	"context"
	"io"
	"strings"

	"github.com/brogergvhs/novelfetch/internal/config"
	"github.com/brogergvhs/novelfetch/internal/fetch"
	"github.com/brogergvhs/novelfetch/internal/providers"
	"github.com/brogergvhs/novelfetch/internal/providers/novelfull"
	"github.com/brogergvhs/novelfetch/internal/ui"
	"github.com/brogergvhs/novelfetch/internal/util"

	"github.com/spf13/cobra"
)

// app is the wiring shared by every site command.
type app struct {
	cfg      *config.Config
	used     string
	log      *ui.Logger
	fetch    *fetch.Client
	provider providers.Provider
	out      io.Writer
}

func newApp(cmd *cobra.Command, extra config.Options) (*app, error) {
	opts := extra
	opts.IgnoreConfig = flagIgnoreConfig
	opts.Debug = flagDebug
	opts.BaseURL = flagBaseURL
	opts.Encoding = flagEncoding
	opts.Cookie = flagCookie
	opts.CookieFile = flagCookieFile
	opts.UserAgent = flagUserAgent
	opts.Timeout = flagTimeout
	opts.CloudflareBypass = flagCloudflare
	opts.RateLimit = flagRateLimit

	cfg, used, err := store.LoadMerged(opts)
	if err != nil {
		return nil, err
	}

	logSvc := ui.NewLoggerTo(cmd.ErrOrStderr(), cfg.Debug)
	logSvc.Debugf("config: %s", used)

	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:          cfg.Timeout,
		UserAgent:        util.PickUserAgent(cfg.UserAgent),
		Cookie:           cfg.Cookie,
		CookieFile:       cfg.CookieFile,
		CloudflareBypass: cfg.CloudflareBypass,
		RateLimit:        cfg.RateLimit,
		DebugLogger:      logSvc,
	})
	if err != nil {
		return nil, err
	}

	fc := fetch.NewClient(client, logSvc)

	return &app{
		cfg:      cfg,
		used:     used,
		log:      logSvc,
		fetch:    fc,
		provider: novelfull.NewScraper(fc, cfg.BaseURL, cfg.Encoding, logSvc),
		out:      cmd.OutOrStdout(),
	}, nil
}

// sitePath accepts either a site-relative path or a full URL on the
// provider's site and returns the relative form.
func (a *app) sitePath(arg string) string {
	arg = strings.TrimSpace(arg)
	site := a.provider.Metadata().Site
	if rest, ok := strings.CutPrefix(arg, site); ok {
		return rest
	}
	if rest, ok := strings.CutPrefix(arg, strings.TrimSuffix(site, "/")); ok {
		return strings.TrimLeft(rest, "/")
	}
	return strings.TrimLeft(arg, "/")
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
