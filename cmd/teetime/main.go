package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"teetime/internal/adapters/discord"
	"teetime/internal/adapters/httpapi"
	"teetime/internal/adapters/scheduler"
	"teetime/internal/application"
	"teetime/internal/config"
	"teetime/internal/infrastructure/database"
	"teetime/internal/infrastructure/i18n"
	"teetime/internal/infrastructure/memory"
	"teetime/internal/infrastructure/notify"
	"teetime/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		store output.Store
		users output.UserDirectory
		pool  *pgxpool.Pool
	)
	switch cfg.StorageDriver {
	case config.DriverMemory:
		mem := memory.New()
		store, users = mem, mem
		log.Println("⚠️ Using in-memory storage: data is lost on exit.")
	default:
		pool, err = database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ Database initialization failed: %v", err)
		}
		defer pool.Close()
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatalf("❌ Migrations failed: %v", err)
		}
		store, users = database.NewStore(pool), database.NewUserRepository(pool)
	}

	translator := i18n.NewTranslator(cfg.Locale)
	renderer := notify.NewRenderer(store.Events(), users, translator, cfg.Locale)
	calendar := application.NewCalendarService(store)

	var sink output.NotificationSink = notify.NewLogSink(renderer)
	if cfg.DiscordEnabled() {
		bot, err := discord.NewBot(cfg.DiscordToken, cfg.DiscordChannelID, cfg.Locale, calendar, renderer, translator)
		if err != nil {
			log.Fatalf("❌ Discord bot creation failed: %v", err)
		}
		if err := bot.Open(); err != nil {
			log.Fatalf("❌ Discord bot start failed: %v", err)
		}
		defer bot.Close()
		sink = bot.Notifier()
	}
	if pool != nil {
		sink = database.NewNotificationLog(pool, sink)
	}

	h := httpapi.NewHandler(httpapi.Services{
		Calendar:    calendar,
		Enrollments: application.NewEnrollmentService(store, sink, nil),
		Roster:      application.NewRosterService(store),
		Users:       application.NewUserService(users),
	}, translator, cfg.Locale, nil)

	go scheduler.Run(ctx, calendar, cfg.GenerateInterval, nil)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(h),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		log.Printf("✅ Listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("🛑 Shutting down…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Graceful shutdown failed: %v", err)
	}
}
