package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/estate-backend/internal/config"
	"github.com/JMURv/estate-backend/internal/ctrl"
	"github.com/JMURv/estate-backend/internal/dto"
	"github.com/JMURv/estate-backend/internal/hdl"
	mid "github.com/JMURv/estate-backend/internal/hdl/http/middleware"
	"github.com/JMURv/estate-backend/internal/hdl/http/utils"
	md "github.com/JMURv/estate-backend/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) RegisterDeviceRoutes() {
	h.Router.With(mid.Auth(h.au, md.RoleResident)).Get("/iot/my-devices", h.myDevices)
	h.Router.With(mid.Auth(h.au, md.RoleManager)).Get("/iot/estate-devices", h.estateDevices)
	h.Router.With(mid.Auth(h.au, md.RoleResident, md.RoleManager)).Post("/iot/devices", h.createDevice)
	h.Router.With(mid.Auth(h.au, md.RoleResident, md.RoleManager)).Patch("/iot/devices/{id}/control", h.controlDevice)
	h.Router.With(mid.Auth(h.au, md.RoleResident, md.RoleManager)).Get("/iot/devices/{id}/logs", h.deviceLogs)
}

func identityFromCtx(w http.ResponseWriter, r *http.Request) (uuid.UUID, md.Role, bool) {
	uid, ok := r.Context().Value(config.UidKey).(uuid.UUID)
	if !ok || uid == uuid.Nil {
		zap.L().Error(
			hdl.ErrFailedToGetUUID.Error(),
			zap.Any("uid", r.Context().Value(config.UidKey)),
		)
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return uuid.Nil, "", false
	}

	role, ok := r.Context().Value(config.RoleKey).(md.Role)
	if !ok {
		zap.L().Error(
			hdl.ErrFailedToGetRole.Error(),
			zap.Any("role", r.Context().Value(config.RoleKey)),
		)
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return uuid.Nil, "", false
	}

	return uid, role, true
}

func deviceIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) myDevices(w http.ResponseWriter, r *http.Request) {
	uid, _, ok := identityFromCtx(w, r)
	if !ok {
		return
	}

	res, err := h.ctrl.ListUserDevices(r.Context(), uid)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

func (h *Handler) estateDevices(w http.ResponseWriter, r *http.Request) {
	res, err := h.ctrl.ListEstateDevices(r.Context())
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

func (h *Handler) createDevice(w http.ResponseWriter, r *http.Request) {
	uid, role, ok := identityFromCtx(w, r)
	if !ok {
		return
	}

	req := &dto.CreateDeviceRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.CreateDevice(r.Context(), uid, role, req)
	if err != nil {
		switch {
		case errors.Is(err, ctrl.ErrForbidden):
			utils.ErrResponse(w, http.StatusForbidden, err)
		case errors.Is(err, ctrl.ErrNotFound):
			utils.ErrResponse(w, http.StatusNotFound, err)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, res)
}

func (h *Handler) controlDevice(w http.ResponseWriter, r *http.Request) {
	uid, role, ok := identityFromCtx(w, r)
	if !ok {
		return
	}

	deviceID, ok := deviceIDFromPath(w, r)
	if !ok {
		return
	}

	req := &dto.ControlDeviceRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.ControlDevice(r.Context(), uid, role, deviceID, req)
	if err != nil {
		switch {
		case errors.Is(err, ctrl.ErrForbidden):
			utils.ErrResponse(w, http.StatusForbidden, err)
		case errors.Is(err, ctrl.ErrNotFound):
			utils.ErrResponse(w, http.StatusNotFound, err)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

func (h *Handler) deviceLogs(w http.ResponseWriter, r *http.Request) {
	uid, role, ok := identityFromCtx(w, r)
	if !ok {
		return
	}

	deviceID, ok := deviceIDFromPath(w, r)
	if !ok {
		return
	}

	res, err := h.ctrl.GetDeviceLogs(r.Context(), uid, role, deviceID)
	if err != nil {
		switch {
		case errors.Is(err, ctrl.ErrForbidden):
			utils.ErrResponse(w, http.StatusForbidden, err)
		case errors.Is(err, ctrl.ErrNotFound):
			utils.ErrResponse(w, http.StatusNotFound, err)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}
