package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/mediashelf/catalog"
	"github.com/s0up4200/mediashelf/config"
	"github.com/s0up4200/mediashelf/mediaapi"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records build information injected by main
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// app holds the state shared by all commands of one invocation
type app struct {
	// Persistent flags
	cfgFile  string
	apiURL   string
	output   string
	logLevel string

	cfg     *config.Config
	logger  zerolog.Logger
	client  *mediaapi.Client
	catalog *catalog.Catalog
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, renderError(os.Stderr, err))
		cancel()
		os.Exit(1)
	}
}

// newRootCmd builds the command tree
func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "mediashelf",
		Short: "Browse and manage a media catalog from the command line",
		Long: `mediashelf is a CLI client for a media catalog REST API.

It lists movies and shows, filters and sorts them, and creates, updates,
deletes or randomly generates entries on the backend.`,
		PersistentPreRunE: a.initialize,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./config.yaml)")
	flags.StringVar(&a.apiURL, "api-url", "", "media API base URL, including the /api prefix")
	flags.StringVarP(&a.output, "output", "o", "", "output format: table, json or yaml")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newListCmd(a),
		newGetCmd(a),
		newCreateCmd(a),
		newUpdateCmd(a),
		newDeleteCmd(a),
		newGenerateCmd(a),
		newHealthCmd(a),
		newAboutCmd(a),
		newVersionCmd(a),
		newSelfUpdateCmd(a),
	)

	return rootCmd
}

// initialize loads configuration, applies flag overrides and builds clients
func (a *app) initialize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.API.URL = a.apiURL
	}
	if flags.Changed("output") {
		switch a.output {
		case formatTable, formatJSON, formatYAML:
			cfg.Output.Format = a.output
		default:
			return fmt.Errorf("invalid output format: %s (must be table, json or yaml)", a.output)
		}
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(a.logLevel)
	}
	a.cfg = cfg

	a.logger = setupLogger(cfg.Logging, cmd.ErrOrStderr())

	a.client, err = mediaapi.NewClient(cfg.API.URL, a.logger,
		mediaapi.WithTimeout(cfg.API.Timeout),
		mediaapi.WithUserAgent(cfg.API.UserAgent),
	)
	if err != nil {
		return fmt.Errorf("failed to create media API client: %w", err)
	}

	policy, err := catalog.ParseFailurePolicy(cfg.Loader.OnFailure)
	if err != nil {
		return err
	}

	a.catalog = catalog.New(a.client, a.logger,
		catalog.WithFailurePolicy(policy),
		catalog.WithConcurrency(cfg.Loader.Concurrency),
	)

	a.logger.Debug().
		Str("api_url", cfg.API.URL).
		Str("on_failure", string(a.catalog.Policy())).
		Msg("Initialized media API client")

	return nil
}

// printer returns an output printer for the command's stdout
func (a *app) printer(cmd *cobra.Command) *printer {
	format := formatTable
	if a.cfg != nil {
		format = a.cfg.Output.Format
	}
	return newPrinter(cmd.OutOrStdout(), format)
}

// outputFormat resolves the output flag for commands that skip initialize
func (a *app) outputFormat(cmd *cobra.Command) string {
	if cmd.Flags().Changed("output") {
		switch a.output {
		case formatJSON, formatYAML:
			return a.output
		}
	}
	return formatTable
}

// loggingFromFlags is the logging setup used without a config file
func loggingFromFlags(a *app) config.LoggingConfig {
	level := a.logLevel
	if level == "" {
		level = "info"
	}
	return config.LoggingConfig{Level: level, Format: "console", Color: true}
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	if cfg.Format == "json" {
		return zerolog.New(out).Level(level).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(out),
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
