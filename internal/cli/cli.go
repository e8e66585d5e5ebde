package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"translation-server/internal/config"
	"translation-server/internal/convert"
	"translation-server/internal/csv"
	"translation-server/internal/emit"
	"translation-server/internal/server"
	"translation-server/internal/version"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:   "translation-server",
		Short: "CSV-to-JSON localization pipeline and read API",
		Long:  "Converts a CSV table of translated strings into per-language JSON documents and serves them over a query-based HTTP API.",
	}

	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(i18nCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [source.csv]",
		Short: "Convert the source table into full per-language JSON documents",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(loadConfig(), optionalArg(args), version.FieldFull)
		},
	}
}

func i18nCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "i18n [source.csv]",
		Short: "Convert the source table into frontend i18n documents with embedded version",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(loadConfig(), optionalArg(args), version.FieldI18n)
		},
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the converted documents over the read API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(loadConfig())
		},
	}
}

func loadConfig() *config.Config {
	cfg := config.Load()

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	return cfg
}

func optionalArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// runConvert executes one conversion pipeline: parse, validate, emit,
// bump the version counter, and re-sort the source table. Validation and
// emission failures abort; version and sort failures are best-effort.
func runConvert(cfg *config.Config, source string, field version.Field) error {
	path, err := resolveSource(cfg, source)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read source file: %w", err)
	}

	table := csv.Parse(string(raw))

	tr, err := convert.Build(table)
	if err != nil {
		return fmt.Errorf("validate source table: %w", err)
	}

	store := version.NewStore(cfg.SettingsFile)
	current := store.Read(field)

	switch field {
	case version.FieldI18n:
		err = emit.WriteI18n(tr, cfg.I18nOutputDir, current)
	default:
		err = emit.WriteFull(tr, cfg.OutputDir)
	}
	if err != nil {
		return fmt.Errorf("emit language files: %w", err)
	}

	next := current.Increment()
	if err := store.Write(field, next); err != nil {
		log.Error().Err(err).Str("field", string(field)).Msg("Failed to persist version, emission kept")
	} else {
		log.Info().Str("field", string(field)).Str("version", next.String()).Msg("Version bumped")
	}

	if err := csv.SortFile(path); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to re-sort source file")
	}

	log.Info().
		Int("languages", len(tr.Languages())).
		Str("source", path).
		Msg("Conversion complete")

	return nil
}

// resolveSource picks the source file: an absolute argument is used as-is,
// a relative one is resolved against the working directory, and no
// argument falls back to the configured default.
func resolveSource(cfg *config.Config, source string) (string, error) {
	if source == "" {
		source = cfg.SourceFile
	}
	if filepath.IsAbs(source) {
		return source, nil
	}

	abs, err := filepath.Abs(source)
	if err != nil {
		return "", fmt.Errorf("resolve source path: %w", err)
	}
	return abs, nil
}

// runServe handles the `serve` command.
func runServe(cfg *config.Config) error {
	ctx, cancel := setupContext()
	defer cancel()

	srv := server.New(cfg)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort))
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	log.Info().Msg("Server stopped")
	return nil
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}
