package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"blogapi/internal/config"
	"blogapi/internal/db"
	"blogapi/internal/handlers"
	"blogapi/internal/logger"
	"blogapi/internal/routes"
	"blogapi/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Storage: ping для /healthz и закрытие при остановке.
type Storage interface {
	handlers.Pinger
	Close(ctx context.Context) error
}

// Server создаётся в New и останавливается в Shutdown.
type Server struct {
	http    *http.Server
	storage Storage
	Router  *mux.Router
}

// New подключается к хранилищу и собирает роутер.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	store, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	logger.Log.Info("Хранилище подключено",
		zap.String("driver", cfg.DbDriver),
		zap.String("dsn", cfg.GetDSNSafe()),
	)

	// Сервисы
	authorSvc := services.NewAuthorService(store.Authors)
	postSvc := services.NewBlogPostService(store.Posts, store.Authors)

	// Хендлеры
	authorH := handlers.NewAuthorHandler(authorSvc)
	postH := handlers.NewBlogPostHandler(postSvc)
	healthH := handlers.NewHealthHandler(store)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, authorH, postH, healthH)

	return NewServer(cfg, router, store), nil
}

// NewServer оборачивает готовый handler; используется и в тестах.
func NewServer(cfg *config.Config, router *mux.Router, storage Storage) *Server {
	return &Server{
		Router:  router,
		storage: storage,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// SetHandler подменяет корневой handler (CORS и т.п. поверх роутера).
func (s *Server) SetHandler(h http.Handler) {
	s.http.Handler = h
}

// Serve обслуживает запросы на ln до вызова Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	logger.Log.Info("Сервер запущен", zap.String("addr", ln.Addr().String()))
	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Start слушает адрес из конфига; блокируется до Shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Shutdown останавливает приём запросов, дожидается текущих и закрывает хранилище.
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Log.Info("Остановка сервера")
	httpErr := s.http.Shutdown(ctx)
	var storeErr error
	if s.storage != nil {
		storeErr = s.storage.Close(ctx)
	}
	return errors.Join(httpErr, storeErr)
}
