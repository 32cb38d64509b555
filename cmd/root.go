package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/brogergvhs/novelfetch/internal/config"
	"github.com/brogergvhs/novelfetch/internal/providers/novelfull"

	"github.com/spf13/cobra"
)

var (
	flagIgnoreConfig bool
	flagDebug        bool
	flagJSON         bool

	// site
	flagBaseURL  string
	flagEncoding string

	// headers/auth
	flagCookie     string
	flagCookieFile string
	flagUserAgent  string
	flagTimeout    time.Duration
	flagCloudflare bool
	flagRateLimit  float64
)

// store holds the config profiles; tests point it at a temp dir.
var store = config.DefaultStore()

var rootCmd = &cobra.Command{
	Use:           "novelfetch",
	Short:         "Browse and download web novels from NovelFull-style sites",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagDebug, "debug", false, "enable debug logging")
	pf.BoolVar(&flagIgnoreConfig, "ignore-config", false, "ignore config and use only CLI flags")
	pf.BoolVar(&flagJSON, "json", false, "print results as JSON")

	pf.StringVar(&flagBaseURL, "base-url", "", "site base URL (default "+novelfull.DefaultSite+")")
	pf.StringVar(&flagEncoding, "encoding", "", "page charset label, e.g. gbk or windows-1252 (default utf-8)")

	pf.StringVar(&flagCookie, "cookie", "", "cookie string, e.g. \"key=value; other=123\"")
	pf.StringVar(&flagCookieFile, "cookie-file", "", "path to a text file with cookies (one header line)")
	pf.StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")
	pf.DurationVar(&flagTimeout, "timeout", 0, "per request timeout (default 30s)")
	pf.BoolVar(&flagCloudflare, "cloudflare", false, "route requests through the Cloudflare bypass transport")
	pf.Float64Var(&flagRateLimit, "rate-limit", 0, "max requests per second, 0 for no limit")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
