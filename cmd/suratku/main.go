// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/olegiv/suratku/internal/config"
	"github.com/olegiv/suratku/internal/flash"
	"github.com/olegiv/suratku/internal/i18n"
	"github.com/olegiv/suratku/internal/legacy"
	"github.com/olegiv/suratku/internal/logging"
	"github.com/olegiv/suratku/internal/middleware"
	"github.com/olegiv/suratku/internal/render"
	"github.com/olegiv/suratku/internal/scheduler"
	"github.com/olegiv/suratku/internal/server"
	"github.com/olegiv/suratku/internal/service"
	"github.com/olegiv/suratku/internal/session"
	"github.com/olegiv/suratku/internal/store"
	"github.com/olegiv/suratku/internal/version"
	"github.com/olegiv/suratku/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")
	importDSN := flag.String("import-legacy", "", "Import users, letters and activity from a legacy MySQL database (DSN) and exit")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "SuratKu - Sistem Persuratan Digital\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SURATKU_SESSION_SECRET        Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SURATKU_DB_PATH               SQLite database path (default: ./data/suratku.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SURATKU_SERVER_HOST           Listen host (default: localhost)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SURATKU_SERVER_PORT           Listen port (default: 50000)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SURATKU_ENV                   Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SURATKU_LOG_LEVEL             debug|info|warn|error (default: info)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SURATKU_TRUSTED_ORIGINS       Extra origins allowed to post forms, comma separated\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SURATKU_LOGIN_RATE_LIMIT      Login attempts per second per IP, 0 disables (default: 0.5)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SURATKU_LOGIN_BURST           Login attempt burst per IP (default: 5)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SURATKU_EVENT_RETENTION_DAYS  Days to keep event log entries (default: 90)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SURATKU_DO_SEED               Create the default administrator (default: false)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	info := version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	if *showVersion {
		_, _ = fmt.Println(info.String())
		os.Exit(0)
	}

	if err := run(info, *importDSN); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(info version.Info, importDSN string) error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	if err := i18n.Init(logger); err != nil {
		return fmt.Errorf("initializing i18n: %w", err)
	}
	slog.Info("i18n system initialized", "languages", i18n.GetSupportedLanguages())

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// From here on WARN and ERROR records are also written to the event log.
	logger = slog.New(logging.NewEventLogHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}), db))
	slog.SetDefault(logger)

	ctx := context.Background()
	if cfg.DoSeed {
		if err := store.Seed(ctx, db); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
	}

	if importDSN != "" {
		return importLegacy(ctx, db, logger, importDSN)
	}

	return serve(cfg, db, logger, info)
}

// importLegacy copies the legacy MySQL data into db and exits.
func importLegacy(ctx context.Context, db *sql.DB, logger *slog.Logger, dsn string) error {
	reader, err := legacy.NewReader(dsn)
	if err != nil {
		return fmt.Errorf("connecting to legacy database: %w", err)
	}
	defer func() { _ = reader.Close() }()

	res, err := legacy.NewImporter(db, logger).Import(ctx, reader)
	if err != nil {
		return fmt.Errorf("importing legacy data: %w", err)
	}

	_, _ = fmt.Printf("users: %d read, %d imported\n", res.Users.Read, res.Users.Imported)
	_, _ = fmt.Printf("surat masuk: %d read, %d imported\n", res.SuratMasuk.Read, res.SuratMasuk.Imported)
	_, _ = fmt.Printf("surat keluar: %d read, %d imported\n", res.SuratKeluar.Read, res.SuratKeluar.Imported)
	_, _ = fmt.Printf("activity logs: %d read, %d imported\n", res.ActivityLogs.Read, res.ActivityLogs.Imported)
	return nil
}

func serve(cfg *config.Config, db *sql.DB, logger *slog.Logger, info version.Info) error {
	sessionManager := session.New(db, cfg.IsDevelopment())
	defer session.StopCleanup(sessionManager)
	slog.Info("session manager initialized")

	fq := flash.New(sessionManager)
	eventService := service.NewEventService(db)

	templatesFS, err := web.TemplatesFS()
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}
	renderer, err := render.New(render.Config{TemplatesFS: templatesFS, Flash: fq})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	sched := scheduler.New(eventService, cfg.EventRetention(), logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	lpConfig := middleware.DefaultLoginProtectionConfig()
	lpConfig.IPRateLimit = cfg.LoginRateLimit
	lpConfig.IPBurst = cfg.LoginBurst
	loginProtection := middleware.NewLoginProtection(lpConfig, fq)
	defer loginProtection.Stop()
	slog.Info("login protection initialized",
		"enabled", cfg.LoginRateLimitEnabled(),
		"ip_rate_limit", cfg.LoginRateLimit,
		"burst", cfg.LoginBurst,
	)

	router, err := server.NewRouter(server.Deps{
		DB:              db,
		Sessions:        sessionManager,
		Flash:           fq,
		Renderer:        renderer,
		Events:          eventService,
		LoginProtection: loginProtection,
		Version:         info,
		SessionSecret:   []byte(cfg.SessionSecret),
		TrustedOrigins:  cfg.TrustedOrigins,
		IsDevelopment:   cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("building router: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", info.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
