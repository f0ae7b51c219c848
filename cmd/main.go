package main

import (
	"context"
	"os/signal"
	"syscall"

	_ "blogapi/docs"
	"blogapi/internal/app"
	"blogapi/internal/config"
	"blogapi/internal/logger"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title Blog API
// @version 1.0
// @description Авторы и посты блога.
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("не удалось загрузить конфиг: " + err.Error())
	}
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	warnings, err := cfg.Validate()
	if err != nil {
		logger.Log.Fatal("Некорректный конфиг", zap.Error(err))
	}
	for _, w := range warnings {
		logger.Log.Warn("Конфиг", zap.String("warning", w))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := app.New(ctx, cfg)
	if err != nil {
		logger.Log.Fatal("Ошибка инициализации приложения", zap.Error(err))
	}

	srv.Router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowCredentials: false,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
	})
	srv.SetHandler(corsMiddleware.Handler(srv.Router))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Log.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Ошибка остановки сервера", zap.Error(err))
	}
}
