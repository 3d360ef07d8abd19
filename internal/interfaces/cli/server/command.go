package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	alertusecases "covena/internal/application/alert/usecases"
	contractusecases "covena/internal/application/contract/usecases"
	covenantusecases "covena/internal/application/covenant/usecases"
	reportusecases "covena/internal/application/report/usecases"
	"covena/internal/domain/compliance"
	"covena/internal/infrastructure/auth"
	"covena/internal/infrastructure/cache"
	"covena/internal/infrastructure/config"
	"covena/internal/infrastructure/database"
	"covena/internal/infrastructure/email"
	"covena/internal/infrastructure/migration"
	"covena/internal/infrastructure/permission"
	"covena/internal/infrastructure/repository"
	"covena/internal/infrastructure/summarizer"
	httpiface "covena/internal/interfaces/http"
	"covena/internal/interfaces/http/handlers"
	"covena/internal/interfaces/http/middleware"
	"covena/internal/shared/biztime"
	"covena/internal/shared/constants"
	"covena/internal/shared/db"
	"covena/internal/shared/logger"
	"covena/internal/shared/services/markdown"
	"covena/internal/shared/version"
)

const (
	rbacModelPath     = "./configs/rbac_model.conf"
	extraPoliciesPath = "./configs/permissions.yaml"
)

// NewCommand builds the server command, which runs the compliance API.
func NewCommand() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Run the covenant compliance API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(env)
		},
	}

	cmd.Flags().StringVarP(&env, "env", "e", "production", "environment (development, test, production)")

	return cmd
}

func run(env string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(""); err != nil {
		return fmt.Errorf("failed to init timezone: %w", err)
	}

	log.Infow("starting server",
		"version", version.Version,
		"commit", version.Commit,
		"environment", env,
	)

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()
	gormDB := database.Get()

	if err := handleMigrations(env); err != nil {
		return err
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// Authentication and authorization.
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer)

	enforcer, err := permission.NewEnforcer(gormDB, rbacModelPath, log)
	if err != nil {
		return fmt.Errorf("failed to create enforcer: %w", err)
	}
	if err := permission.SyncRoleMatrix(enforcer, log); err != nil {
		return fmt.Errorf("failed to sync role matrix: %w", err)
	}
	if err := permission.LoadExtraPolicies(enforcer, extraPoliciesPath, log); err != nil {
		return fmt.Errorf("failed to load extra policies: %w", err)
	}

	// Repositories.
	contractRepo := repository.NewContractRepository(gormDB)
	covenantRepo := repository.NewCovenantRepository(gormDB)
	healthRepo := repository.NewHealthRepository(gormDB)
	alertRepo := repository.NewAlertRepository(gormDB)

	// Supporting infrastructure.
	txManager := db.NewTransactionManager(gormDB)
	policy := compliance.PolicyFromConfig(cfg.Compliance)
	cooldown := cache.NewAlertCooldown(redisClient,
		time.Duration(cfg.Escalation.CooldownMinutes)*time.Minute)

	notifier := email.NewSMTPEmailService(email.SMTPConfig{
		Host:                 cfg.Email.SMTPHost,
		Port:                 cfg.Email.SMTPPort,
		Username:             cfg.Email.SMTPUser,
		Password:             cfg.Email.SMTPPassword,
		FromAddress:          cfg.Email.FromAddress,
		FromName:             cfg.Email.FromName,
		EscalationRecipients: cfg.Escalation.NotifyEmails,
	})

	var analyzer reportusecases.RiskAnalyzer
	if cfg.Summarizer.Enabled {
		analyzer = summarizer.NewClient(cfg.Summarizer, log)
	}
	renderer := markdown.NewRenderer()

	// Usecases.
	createCovenantUC := covenantusecases.NewCreateCovenantUseCase(covenantRepo, log)
	updateCovenantUC := covenantusecases.NewUpdateCovenantUseCase(covenantRepo, log)
	getCovenantUC := covenantusecases.NewGetCovenantUseCase(covenantRepo, healthRepo, log)
	listCovenantsUC := covenantusecases.NewListCovenantsUseCase(covenantRepo, log)
	recomputeHealthUC := covenantusecases.NewRecomputeHealthUseCase(
		covenantRepo, healthRepo, alertRepo, policy, txManager, cooldown, log)

	ackAlertUC := alertusecases.NewAcknowledgeAlertUseCase(alertRepo, log)
	resolveAlertUC := alertusecases.NewResolveAlertUseCase(alertRepo, log)
	escalateAlertUC := alertusecases.NewEscalateAlertUseCase(alertRepo, notifier, log)
	getAlertUC := alertusecases.NewGetAlertUseCase(alertRepo, log)
	listAlertsUC := alertusecases.NewListAlertsUseCase(alertRepo, log)

	getContractUC := contractusecases.NewGetContractUseCase(contractRepo, log)
	listContractsUC := contractusecases.NewListContractsUseCase(contractRepo, log)

	generateReportUC := reportusecases.NewGeneratePortfolioReportUseCase(
		healthRepo, alertRepo, contractRepo, analyzer, renderer, log)

	// HTTP surface.
	router := httpiface.NewRouter(&cfg.Server, &httpiface.RouterDeps{
		DB:                   gormDB,
		AuthMiddleware:       middleware.NewAuthMiddleware(jwtService, log),
		PermissionMiddleware: middleware.NewPermissionMiddleware(enforcer, log),
		CovenantHandler: handlers.NewCovenantHandler(
			createCovenantUC, updateCovenantUC, getCovenantUC, listCovenantsUC, recomputeHealthUC, log),
		AlertHandler: handlers.NewAlertHandler(
			ackAlertUC, resolveAlertUC, escalateAlertUC, getAlertUC, listAlertsUC, log),
		ReportHandler:   handlers.NewReportHandler(generateReportUC, log),
		ContractHandler: handlers.NewContractHandler(getContractUC, listContractsUC, log),
	}, log)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case sig := <-quit:
		log.Infow("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// handleMigrations applies schema changes on startup. Development auto-migrates
// from the GORM models; test and production run the versioned SQL scripts.
func handleMigrations(env string) error {
	manager := migration.NewManager(env)

	var models []interface{}
	if env == constants.EnvDevelopment {
		models = migration.AutoMigrateModels()
	}

	if err := manager.Migrate(database.Get(), models...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
