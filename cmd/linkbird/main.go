package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"linkbird/internal/config"
	"linkbird/internal/logging"
	"linkbird/internal/store"
	"linkbird/internal/telemetry"
	"linkbird/internal/ui"
)

// options holds the command-line overrides. Only flags the user set are
// applied on top of the config file.
type options struct {
	configPath string
	initConfig bool
	pageSize   int
	loadDelay  time.Duration
	seed       uint64
	logLevel   string
	logFile    string
	startPage  string
	loggedIn   bool
}

func newRootCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linkbird",
		Short: "LinkBird CRM dashboard in the terminal",
		Long: `LinkBird is a terminal dashboard for LinkedIn outreach: leads, campaigns
and sender accounts over a generated dataset.

Press SPC for commands once it is running.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.configPath, "config", "", "config file (default $"+config.PathEnv+" or ~/.linkbird/"+config.DefaultFileName+")")
	f.BoolVar(&o.initConfig, "init-config", false, "write a default config file if none exists")
	f.IntVar(&o.pageSize, "page-size", config.DefaultPageSize, "rows revealed per infinite-scroll load")
	f.DurationVar(&o.loadDelay, "load-delay", time.Second, "simulated latency of each load")
	f.Uint64Var(&o.seed, "seed", 0, "dataset seed; 0 picks a random one")
	f.StringVar(&o.logLevel, "log-level", "info", "debug, info, warn, error or disabled")
	f.StringVar(&o.logFile, "log-file", "", "log file (default ~/.linkbird/linkbird.log)")
	f.StringVar(&o.startPage, "start-page", "leads", "dashboard, leads, campaigns, messages or settings")
	f.BoolVar(&o.loggedIn, "logged-in", false, "skip the login modal")
	return cmd
}

// loadConfig reads the config file and applies the flags that were set.
func (o *options) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := o.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, fmt.Errorf("config path: %w", err)
		}
	}
	cfg, err := config.NewLoader(path).LoadWithCreate(o.initConfig)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("page-size") {
		cfg.PageSize = o.pageSize
	}
	if changed("load-delay") {
		cfg.LoadDelay = o.loadDelay
	}
	if changed("seed") {
		cfg.Data.Seed = o.seed
	}
	if changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if changed("log-file") {
		cfg.Log.File = o.logFile
	}
	if changed("start-page") {
		p, err := store.ParsePage(o.startPage)
		if err != nil {
			return nil, fmt.Errorf("--start-page: %w", err)
		}
		cfg.StartPage = p
	}
	if changed("logged-in") {
		cfg.SkipLogin = o.loggedIn
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closer.Close()

	shutdown, tracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		logger.Warn().Err(err).Msg("tracing disabled")
	} else {
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := shutdown(sctx); err != nil {
				logger.Warn().Err(err).Msg("flush traces")
			}
		}()
	}

	logger.Info().
		Stringer("start_page", cfg.StartPage).
		Int("page_size", cfg.PageSize).
		Dur("load_delay", cfg.LoadDelay).
		Uint64("seed", cfg.Data.Seed).
		Bool("tracing", tracing).
		Msg("starting")

	initial := store.DefaultState()
	initial.ActivePage = cfg.StartPage
	initial.LoggedIn = cfg.SkipLogin
	initial.AuthModalOpen = !cfg.SkipLogin
	st := store.New(initial)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	app := ui.NewAppModel(ctx, st, ui.OptionsFromConfig(cfg, logger))
	defer app.Close()

	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	logger.Info().Msg("exiting")
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	var o options
	if err := newRootCmd(&o).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
