package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/pagecraft/blog/internal/api"
	"github.com/pagecraft/blog/internal/api/metrics"
	"github.com/pagecraft/blog/internal/api/session"
	"github.com/pagecraft/blog/internal/core/ports"
	"github.com/pagecraft/blog/internal/core/service"
	mongostore "github.com/pagecraft/blog/internal/infrastructure/db/mongo"
	redisstore "github.com/pagecraft/blog/internal/infrastructure/db/redis"
	"github.com/pagecraft/blog/internal/infrastructure/db/sqlstore"
	"github.com/pagecraft/blog/internal/infrastructure/mail"
	"github.com/pagecraft/blog/internal/pkg/config"
	"github.com/pagecraft/blog/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// The logger is configured from cfg, so fall back to a bare one.
		l := zerolog.New(os.Stderr).With().Timestamp().Logger()
		l.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "blog",
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- SQL store ---
	db, err := sqlstore.Open(ctx, sqlstore.Config{Path: cfg.Database.Path, Debug: !cfg.IsProduction() && cfg.LogLevel == "debug"})
	if err != nil {
		return err
	}
	defer func() {
		if err := sqlstore.Close(db); err != nil {
			log.Warn().Err(err).Msg("close database")
		}
	}()
	log.Info().Str("path", cfg.Database.Path).Msg("database ready")

	// --- Sessions: Redis when configured, process memory otherwise ---
	var (
		rdb          *goredis.Client
		sessionStore ports.SessionStore = session.NewMemoryStore()
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		sessionStore = redisstore.NewSessionStore(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis session store ready")
	} else {
		log.Warn().Msg("REDIS_ADDR not set, sessions are kept in memory")
	}

	// --- Audit log: MongoDB when configured ---
	var (
		mdb   *gomongo.Database
		audit ports.AuditLog
	)
	if cfg.Mongo.URI != "" {
		client, database, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(dctx)
		}()
		repo := mongostore.NewAuditRepository(database)
		if err := repo.EnsureIndexes(ctx); err != nil {
			return err
		}
		mdb, audit = database, repo
		log.Info().Str("database", cfg.Mongo.Database).Msg("audit log ready")
	}

	// --- Mail ---
	mailCfg := mail.Config{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		Recipient: cfg.SMTP.Recipient,
	}
	var mailer ports.Mailer
	if mailCfg.Configured() {
		sender, err := mail.NewSMTPSender(mailCfg)
		if err != nil {
			return err
		}
		mailer = sender
	} else {
		log.Warn().Msg("SMTP not configured, contact messages are only logged")
		mailer = mail.NewLogSender(log)
	}

	// --- Services ---
	users := sqlstore.NewUserRepository(db)
	posts := sqlstore.NewPostRepository(db)
	comments := sqlstore.NewCommentRepository(db)

	sessions, err := session.NewManager(sessionStore, session.Options{
		Secret: cfg.Session.SecretKey,
		TTL:    cfg.Session.TTL,
		Secure: cfg.Session.CookieSecure,
	})
	if err != nil {
		return err
	}

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if err := metrics.Register(registry); err != nil {
		return err
	}

	e, err := api.NewRouter(api.Dependencies{
		Auth:     service.NewAuthService(users, audit, log),
		Posts:    service.NewPostService(posts, comments, service.NewSystemDate(), audit, log),
		Comments: service.NewCommentService(posts, comments, log),
		Contact:  service.NewContactService(mailer, audit, log),
		Sessions: sessions,
		DB:       db,
		Redis:    rdb,
		Mongo:    mdb,
		Registry: registry,
		Log:      log,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Str("env", cfg.Env).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("server stopped cleanly")
	return nil
}
