package httpapi

import (
	"context"
	"net/http"

	"github.com/Vetrovv/course_scheduler/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Options — зависимости HTTP сервера
type Options struct {
	Address         string
	ScheduleSvc     *service.ScheduleService
	CancellationSvc *service.CancellationService
	ReportSvc       *service.ReportService
	BlockedSvc      *service.BlockedDateService
	Logger          *zap.Logger
}

// Server — тонкий HTTP слой над сервисами. Вся логика живёт в сервисах,
// здесь только разбор запросов, валидация и коды ответов.
type Server struct {
	opts *Options
	app  *echo.Echo
}

func NewServer(opts *Options) *Server {
	s := &Server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.Recover())
	s.app.Validator = &requestValidator{validate: validator.New()}

	s.app.GET("/healthz", s.healthz)

	v1 := s.app.Group("/v1")
	registerScheduleAPI(v1, s.opts)
}

// Start запускает сервер и блокируется до его остановки
func (s *Server) Start() error {
	return s.app.Start(s.opts.Address)
}

// Stop останавливает сервер с учётом незавершённых запросов
func (s *Server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

// ServeHTTP нужен для httptest в тестах
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.app.ServeHTTP(w, r)
}

func (s *Server) healthz(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "ok")
}

// requestValidator подключает validator/v10 к echo: все входные DTO
// проверяются на границе, чтобы внутренние слои получали корректные данные
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
