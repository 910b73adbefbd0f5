package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	recoverware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"go.uber.org/zap"

	nina "github.com/ninaapp/nina-api"
	"github.com/ninaapp/nina-api/middleware/jwtware"
	"github.com/ninaapp/nina-api/repository"
)

func main() {
	zl, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer zl.Sync()

	logger := zapLogger{sugar: zl.Sugar()}

	if err := run(logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(logger nina.Logger) error {
	cfg, err := nina.LoadConfig()
	if err != nil {
		return err
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.DatabaseDSN)
	if err != nil {
		return err
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())
	defer db.Close()

	ctx := context.Background()
	if err := repository.CreateSchema(ctx, db); err != nil {
		return err
	}

	tokens, err := nina.NewTokenService(cfg, logger)
	if err != nil {
		return err
	}

	hasher := nina.NewBcryptHasher(cfg.BcryptCost)
	users := repository.NewUsers(db)

	authService := nina.NewAuthService(users, hasher, tokens).WithLogger(logger)
	usersService := nina.NewUsersService(users, hasher).WithLogger(logger)

	authController := nina.NewAuthController(authService, logger)
	usersController := nina.NewUsersController(usersService, logger)
	usersController.Debug = cfg.Debug

	app := fiber.New(fiber.Config{
		AppName:      "nina-api",
		ErrorHandler: nina.NewErrorHandler(logger),
	})
	app.Use(recoverware.New())

	guard := jwtware.New(jwtware.Config{
		Validator: func(raw string) (jwtware.AuthClaims, error) {
			return tokens.Validate(raw)
		},
	})

	nina.RegisterRoutes(app, authController, usersController, guard)

	errc := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", cfg.Address)
		errc <- app.Listen(cfg.Address)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errc:
		return err
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
		return app.ShutdownWithTimeout(10 * time.Second)
	}
}

// zapLogger adapts zap's sugared logger to the core Logger interface.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func (l zapLogger) Debug(msg string, args ...any) { l.sugar.Debugw(msg, args...) }
func (l zapLogger) Info(msg string, args ...any)  { l.sugar.Infow(msg, args...) }
func (l zapLogger) Warn(msg string, args ...any)  { l.sugar.Warnw(msg, args...) }
func (l zapLogger) Error(msg string, args ...any) { l.sugar.Errorw(msg, args...) }
