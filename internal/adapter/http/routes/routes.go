package routes

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"
	_ "vacate_quote/docs"
	"vacate_quote/internal/adapter/http/handlers"
	"vacate_quote/internal/adapter/http/middleware"
	"vacate_quote/internal/adapter/persistence/repository"
	"vacate_quote/internal/config"
	"vacate_quote/internal/infrastructure/database"
	"vacate_quote/internal/infrastructure/documents"
	"vacate_quote/internal/infrastructure/extraction"
	"vacate_quote/internal/infrastructure/mail"
	"vacate_quote/internal/usecase"
	"vacate_quote/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rotisserie/eris"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

// app holds what Run builds and tears down.
type app struct {
	router   *gin.Engine
	delivery *usecase.QuoteDeliveryUseCase
	db       *sql.DB
}

// Run wires the service from cfg and serves until SIGINT or SIGTERM.
func Run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := build(ctx, cfg)
	if err != nil {
		return err
	}
	if a.db != nil {
		defer a.db.Close()
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zap.L().Info("http server listening", zap.String("addr", srv.Addr), zap.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return eris.Wrap(err, "http server")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		zap.L().Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zap.L().Warn("http shutdown", zap.Error(err))
		}
		return nil
	})

	err = g.Wait()
	a.delivery.Wait()
	return err
}

func build(ctx context.Context, cfg *config.Config) (*app, error) {
	repo, db, err := newRecordRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	renderer, err := documents.NewHTMLRenderer(documents.Config{
		OutputDir:   cfg.Documents.OutputDir,
		PublicURL:   cfg.DocumentsURL(),
		CompanyName: cfg.Documents.CompanyName,
		OfficePhone: cfg.Conversation.OfficePhone,
	})
	if err != nil {
		return nil, err
	}
	mailer := mail.NewSMTPMailer(mail.Config{
		Host:        cfg.Mail.Host,
		Port:        cfg.Mail.Port,
		Username:    cfg.Mail.Username,
		Password:    cfg.Mail.Password,
		From:        cfg.Mail.From,
		FromName:    cfg.Mail.FromName,
		OfficePhone: cfg.Conversation.OfficePhone,
	})
	oracle := extraction.NewAnthropicOracle(extraction.Config{
		APIKey:      cfg.Anthropic.Key,
		BaseURL:     cfg.Anthropic.BaseURL,
		Model:       cfg.Anthropic.Model,
		MaxTokens:   cfg.Anthropic.MaxTokens,
		Temperature: cfg.Anthropic.Temperature,
		OfficePhone: cfg.Conversation.OfficePhone,
		Retry:       cfg.AnthropicRetry(),
	})

	deliveryUseCase := usecase.NewQuoteDeliveryUseCase(repo, renderer, mailer, cfg.DeliverySettings())
	conversationUseCase := usecase.NewConversationUseCase(repo, oracle, deliveryUseCase, cfg.ConversationSettings())
	quoteUseCase := usecase.NewQuoteUseCase(repo)

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.Static(cfg.Documents.PublicPath, cfg.Documents.OutputDir)

	limiter := middleware.NewIPRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addConversationRoutes(v1, handlers.NewConversationHandler(conversationUseCase), limiter.Middleware())
	addQuoteRoutes(v1, handlers.NewQuoteHandler(quoteUseCase))

	return &app{router: router, delivery: deliveryUseCase, db: db}, nil
}

func newRecordRepository(ctx context.Context, cfg *config.Config) (interfaces.IQuoteRecordRepository, *sql.DB, error) {
	switch cfg.Store.Driver {
	case "dynamodb":
		d := cfg.Store.DynamoDB
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBConfig{
			Region:          d.Region,
			Endpoint:        d.Endpoint,
			AccessKeyID:     d.AccessKeyID,
			SecretAccessKey: d.SecretAccessKey,
			Table:           d.Table,
			CreateTable:     d.CreateTable,
		})
		if err != nil {
			return nil, nil, err
		}
		return repository.NewQuoteRecordDynamoRepository(ddb, d.Table), nil, nil
	case "sqlite":
		db, err := database.ConnectSQLite(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewQuoteRecordSQLiteRepository(db), db, nil
	default:
		return nil, nil, eris.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zap.L().Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
