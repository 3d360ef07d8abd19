package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	alertusecases "covena/internal/application/alert/usecases"
	"covena/internal/infrastructure/cache"
	"covena/internal/infrastructure/config"
	"covena/internal/infrastructure/database"
	"covena/internal/infrastructure/email"
	"covena/internal/infrastructure/repository"
	"covena/internal/infrastructure/scheduler"
	"covena/internal/shared/biztime"
	"covena/internal/shared/logger"
)

// The worker runs the unacknowledged-alert escalation sweep on a schedule.
// Multiple instances may run; a redis lock ensures only one sweeps at a time.
func main() {
	env := "production"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	log.Infow("starting escalation worker", "environment", env)

	if err := biztime.Init(""); err != nil {
		log.Fatalw("failed to init timezone", "error", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalw("failed to connect to redis", "error", err)
	}

	alertRepo := repository.NewAlertRepository(database.Get())

	notifier := email.NewSMTPEmailService(email.SMTPConfig{
		Host:                 cfg.Email.SMTPHost,
		Port:                 cfg.Email.SMTPPort,
		Username:             cfg.Email.SMTPUser,
		Password:             cfg.Email.SMTPPassword,
		FromAddress:          cfg.Email.FromAddress,
		FromName:             cfg.Email.FromName,
		EscalationRecipients: cfg.Escalation.NotifyEmails,
	})

	listUC := alertusecases.NewListForEscalationUseCase(alertRepo, log)
	escalateUC := alertusecases.NewEscalateAlertUseCase(alertRepo, notifier, log)

	sweepJob := scheduler.NewEscalationSweepJob(
		listUC,
		escalateUC,
		cache.NewSweepLock(redisClient),
		cfg.Escalation.AgeThreshold(),
		cfg.Escalation.SweepInterval(),
		log,
	)

	manager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		log.Fatalw("failed to create scheduler", "error", err)
	}
	if err := manager.RegisterEscalationSweep(sweepJob, cfg.Escalation.SweepInterval()); err != nil {
		log.Fatalw("failed to register escalation sweep", "error", err)
	}

	manager.Start()
	log.Infow("escalation sweep scheduled",
		"interval", cfg.Escalation.SweepInterval().String(),
		"age_threshold", cfg.Escalation.AgeThreshold().String(),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Infow("received signal, shutting down", "signal", sig.String())

	if err := manager.Stop(); err != nil {
		log.Errorw("scheduler shutdown failed", "error", err)
	}
	log.Infow("escalation worker stopped")
}
