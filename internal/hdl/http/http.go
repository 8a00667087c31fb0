package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/JMURv/estate-backend/internal/auth/jwt"
	"github.com/JMURv/estate-backend/internal/config"
	"github.com/JMURv/estate-backend/internal/ctrl"
	mid "github.com/JMURv/estate-backend/internal/hdl/http/middleware"
	"github.com/JMURv/estate-backend/internal/hdl/http/utils"
	"github.com/JMURv/estate-backend/internal/ws"
	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	Router     *chi.Mux
	srv        *http.Server
	au         jwt.Port
	ctrl       ctrl.AppCtrl
	hub        *ws.Hub
	cookie     config.CookieConfig
	refreshTTL time.Duration
}

func New(
	au jwt.Port,
	ctrl ctrl.AppCtrl,
	hub *ws.Hub,
	cookie config.CookieConfig,
	refreshTTL time.Duration,
) *Handler {
	return &Handler{
		Router:     chi.NewRouter(),
		au:         au,
		ctrl:       ctrl,
		hub:        hub,
		cookie:     cookie,
		refreshTTL: refreshTTL,
	}
}

func (h *Handler) Start(port int) {
	h.Router.Use(
		mid.Logger(zap.L()),
		middleware.StripSlashes,
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		mid.Prometheus,
		mid.OT,
	)

	h.RegisterAuthRoutes()
	h.RegisterDeviceRoutes()
	h.Router.Get("/ws", h.hub.ServeWS)
	h.Router.Get(
		"/health", func(w http.ResponseWriter, r *http.Request) {
			utils.SuccessResponse(w, http.StatusOK, "OK")
		},
	)

	h.srv = &http.Server{
		Handler:      h.Router,
		Addr:         fmt.Sprintf(":%v", port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info(
		"Starting HTTP server",
		zap.String("addr", h.srv.Addr),
	)

	err := h.srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		zap.L().Error("Server error", zap.Error(err))
	}
}

func (h *Handler) Close(ctx context.Context) error {
	return h.srv.Shutdown(ctx)
}
