package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"devfort/config"
	"devfort/handlers"
	"devfort/media"
	"devfort/theme"
	"devfort/tui"
	"devfort/web"
	"devfort/web/session"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
	envFile    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.LogErr(err, "devfort failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "devfort",
		Short:         "DevFort serves the portfolio and property showcase site",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Site YAML (defaults to DEVFORT_CONFIG, then the embedded site)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (defaults to DEVFORT_LOG_LEVEL)")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "Dotenv file merged into the environment")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// load resolves settings with flags taking precedence over the environment
func (f *rootFlags) load() (config.Settings, *config.Site, error) {
	settings := config.LoadSettings(f.envFile)
	if f.configPath != "" {
		settings.ConfigPath = f.configPath
	}
	if f.logLevel != "" {
		settings.LogLevel = f.logLevel
	}
	logger.SetLogLevel(settings.LogLevel)

	site, err := config.LoadSite(settings.ConfigPath)
	if err != nil {
		return settings, nil, serr.Wrap(err, "failed to load site config")
	}
	return settings, site, nil
}

func newServeCmd(flags *rootFlags) *cobra.Command {
	var (
		addr       string
		dbPath     string
		checkMedia bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, site, err := flags.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				settings.Addr = addr
			}
			if cmd.Flags().Changed("db") {
				settings.DBPath = dbPath
			}
			if cmd.Flags().Changed("check-media") {
				settings.CheckMedia = checkMedia
			}
			return runServe(cmd.Context(), settings, site)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to DEVFORT_ADDR)")
	cmd.Flags().StringVar(&dbPath, "db", "", "DuckDB file for theme preferences (defaults to DEVFORT_DB)")
	cmd.Flags().BoolVar(&checkMedia, "check-media", false, "Check hero video sources before choosing one")

	return cmd
}

func runServe(ctx context.Context, settings config.Settings, site *config.Site) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var prefs *theme.Preferences
	if settings.DBPath != "" {
		p, err := theme.OpenPreferences(settings.DBPath)
		if err != nil {
			return err
		}
		defer p.Close()
		prefs = p
	}

	bg := resolveBackground(ctx, settings, site.Background)

	sessions := session.NewRegistry(site.Config, site.Themes, prefs, settings.SessionIdle)
	defer sessions.Close()

	srv := web.NewServer(rweb.ServerOptions{
		Address: settings.Addr,
		Verbose: settings.LogLevel == "debug",
	}, web.Deps{Site: site, Sessions: sessions, Background: bg})

	return web.Run(srv, settings.Addr)
}

// resolveBackground picks the hero media once at startup. Without checking every
// source is handed to the player in order, with the image as its last resort.
func resolveBackground(ctx context.Context, settings config.Settings, bg media.Background) media.Choice {
	var checker media.Checker = media.CheckerFunc(func(context.Context, string) error { return nil })
	if settings.CheckMedia {
		var cancel context.CancelFunc
		// Each source gets CheckWait, plus one spare slot
		ctx, cancel = context.WithTimeout(ctx, settings.CheckWait*time.Duration(len(bg.Sources)+1))
		defer cancel()
		checker = media.NewHTTPChecker(settings.CheckWait)
	}

	choice := media.Resolve(ctx, bg, checker)
	logger.Info("Hero background chosen", "url", choice.URL, "video", strconv.FormatBool(choice.Video))
	return choice
}

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Preview the navigation in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, site, err := flags.load()
			if err != nil {
				return err
			}
			// Log lines would tear the full-screen preview
			logger.SetLogLevel("error")

			_, err = tea.NewProgram(tui.NewModel(site.Config, site.Themes, nil), tea.WithAltScreen()).Run()
			if err != nil {
				return serr.Wrap(err, "preview failed")
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "DevFort %s\n", handlers.Version)
			return nil
		},
	}
}
