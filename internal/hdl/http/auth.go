package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/estate-backend/internal/auth"
	"github.com/JMURv/estate-backend/internal/auth/token"
	"github.com/JMURv/estate-backend/internal/config"
	"github.com/JMURv/estate-backend/internal/ctrl"
	"github.com/JMURv/estate-backend/internal/dto"
	"github.com/JMURv/estate-backend/internal/hdl"
	mid "github.com/JMURv/estate-backend/internal/hdl/http/middleware"
	"github.com/JMURv/estate-backend/internal/hdl/http/utils"
)

func (h *Handler) RegisterAuthRoutes() {
	h.Router.Post("/auth/register", h.register)
	h.Router.Post("/auth/login", h.login)
	h.Router.Post("/auth/refresh", h.refresh)
	h.Router.With(mid.Auth(h.au)).Post("/auth/logout", h.logout)
	h.Router.Post("/auth/verify-email", h.verifyEmail)
	h.Router.Post("/auth/request-password-reset", h.requestPasswordReset)
	h.Router.Post("/auth/reset-password", h.resetPassword)
}

func (h *Handler) sameSite() http.SameSite {
	switch h.cookie.SameSite {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func (h *Handler) setRefreshCookie(w http.ResponseWriter, raw string) {
	http.SetCookie(
		w, &http.Cookie{
			Name:     config.RefreshCookieName,
			Value:    raw,
			MaxAge:   int(h.refreshTTL.Seconds()),
			HttpOnly: true,
			Secure:   h.cookie.Secure,
			Path:     "/",
			SameSite: h.sameSite(),
		},
	)
}

func (h *Handler) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(
		w, &http.Cookie{
			Name:     config.RefreshCookieName,
			Value:    "",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.cookie.Secure,
			Path:     "/",
			SameSite: h.sameSite(),
		},
	)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	req := &dto.RegisterRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, ctrl.ErrAlreadyExists) {
			utils.ErrResponse(w, http.StatusConflict, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, res)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	req := &dto.EmailAndPasswordRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	var deviceInfo *string
	if ua := r.UserAgent(); ua != "" {
		deviceInfo = &ua
	}

	res, refresh, err := h.ctrl.Login(r.Context(), req, deviceInfo)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			utils.ErrResponse(w, http.StatusUnauthorized, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	h.setRefreshCookie(w, refresh)
	utils.SuccessResponse(w, http.StatusOK, res)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(config.RefreshCookieName)
	if err != nil {
		utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrNoRefreshToken)
		return
	}

	res, refresh, err := h.ctrl.Refresh(r.Context(), cookie.Value)
	if err != nil {
		switch {
		case errors.Is(err, token.ErrTokenInvalid):
			utils.ErrResponse(w, http.StatusUnauthorized, err)
		case errors.Is(err, ctrl.ErrNotFound):
			// Token outlived its user: drop the cookie too.
			h.clearRefreshCookie(w)
			utils.ErrResponse(w, http.StatusUnauthorized, auth.ErrInvalidToken)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	h.setRefreshCookie(w, refresh)
	utils.SuccessResponse(w, http.StatusOK, res)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	var raw string
	if cookie, err := r.Cookie(config.RefreshCookieName); err == nil {
		raw = cookie.Value
	}

	if err := h.ctrl.Logout(r.Context(), raw); err != nil {
		h.clearRefreshCookie(w)
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	h.clearRefreshCookie(w)
	utils.SuccessResponse(w, http.StatusOK, dto.MessageResponse{Message: "Logout successful"})
}

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	req := &dto.VerifyEmailRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.VerifyEmail(r.Context(), req.Token); err != nil {
		switch {
		case errors.Is(err, token.ErrTokenInvalid):
			utils.ErrResponse(w, http.StatusUnauthorized, err)
		case errors.Is(err, ctrl.ErrNotFound):
			utils.ErrResponse(w, http.StatusNotFound, err)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.SuccessResponse(w, http.StatusOK, dto.MessageResponse{Message: "Email verified successfully"})
}

// requestPasswordReset always answers 200 so callers cannot probe
// which emails exist.
func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	req := &dto.RequestPasswordResetRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.RequestPasswordReset(r.Context(), req.Email); err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, dto.MessageResponse{Message: "If the email exists, a reset link has been sent"})
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	req := &dto.ResetPasswordRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := h.ctrl.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, token.ErrTokenInvalid):
			utils.ErrResponse(w, http.StatusUnauthorized, err)
		case errors.Is(err, ctrl.ErrNotFound):
			utils.ErrResponse(w, http.StatusNotFound, err)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.SuccessResponse(w, http.StatusOK, dto.MessageResponse{Message: "Password reset successful"})
}
