package ctrl

import (
	"context"
	"errors"
	"fmt"

	"github.com/JMURv/estate-backend/internal/config"
	"github.com/JMURv/estate-backend/internal/dto"
	md "github.com/JMURv/estate-backend/internal/models"
	"github.com/JMURv/estate-backend/internal/repo"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

const (
	userDevicesKey   = "devices-user:%v"
	estateDevicesKey = "devices-estate"
	devicePattern    = "devices-*"
)

func (c *Controller) ListUserDevices(ctx context.Context, uid uuid.UUID) ([]*md.Device, error) {
	const op = "iot.ListUserDevices.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := make([]*md.Device, 0)
	cacheKey := fmt.Sprintf(userDevicesKey, uid)
	if err := c.cache.GetToStruct(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListUserDevices(ctx, uid)
	if err != nil {
		return nil, err
	}

	if bytes, err := json.Marshal(res); err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, cacheKey, bytes)
	}

	return res, nil
}

func (c *Controller) ListEstateDevices(ctx context.Context) ([]*md.Device, error) {
	const op = "iot.ListEstateDevices.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := make([]*md.Device, 0)
	if err := c.cache.GetToStruct(ctx, estateDevicesKey, &cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListEstateDevices(ctx)
	if err != nil {
		return nil, err
	}

	if bytes, err := json.Marshal(res); err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, estateDevicesKey, bytes)
	}

	return res, nil
}

// CreateDevice registers a device. Estate-level devices are reserved
// for managers and carry no owner; everything else is bound to the
// caller.
func (c *Controller) CreateDevice(
	ctx context.Context,
	uid uuid.UUID,
	role md.Role,
	req *dto.CreateDeviceRequest,
) (*md.Device, error) {
	const op = "iot.CreateDevice.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if req.IsEstateLevel && role != md.RoleManager {
		return nil, ErrForbidden
	}

	d := &md.Device{
		Name:          req.Name,
		DeviceType:    req.DeviceType,
		IsEstateLevel: req.IsEstateLevel,
		Metadata:      req.Metadata,
	}

	if !req.IsEstateLevel {
		owner, err := c.repo.GetUserByID(ctx, uid)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		d.OwnerID = &owner.ID
	}

	id, err := c.repo.CreateDevice(ctx, d)
	if err != nil {
		return nil, err
	}
	d.ID = id

	go c.cache.InvalidateKeysByPattern(ctx, devicePattern)
	go c.notifier.NotifyDeviceUpdate(d)

	return d, nil
}

// ControlDevice applies a named transition. The repository runs the
// whole load-authorize-mutate-log sequence in one transaction; the
// realtime push happens only after that commit and is best-effort.
func (c *Controller) ControlDevice(
	ctx context.Context,
	uid uuid.UUID,
	role md.Role,
	deviceID uuid.UUID,
	req *dto.ControlDeviceRequest,
) (*dto.ControlDeviceResponse, error) {
	const op = "iot.ControlDevice.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	d, err := c.repo.ControlDevice(ctx, uid, role, deviceID, req.Action, req.Value)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repo.ErrForbidden):
			return nil, ErrForbidden
		default:
			return nil, err
		}
	}

	go c.cache.InvalidateKeysByPattern(ctx, devicePattern)
	go c.notifier.NotifyDeviceUpdate(d)

	return &dto.ControlDeviceResponse{
		ID:       d.ID,
		Name:     d.Name,
		IsOn:     d.IsOn,
		Metadata: d.Metadata,
	}, nil
}

// GetDeviceLogs returns the device's audit trail newest-first, under
// the same authorization rule as control.
func (c *Controller) GetDeviceLogs(
	ctx context.Context,
	uid uuid.UUID,
	role md.Role,
	deviceID uuid.UUID,
) ([]*md.DeviceLog, error) {
	const op = "iot.GetDeviceLogs.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	d, err := c.repo.GetDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !d.ControllableBy(uid, role) {
		return nil, ErrForbidden
	}

	return c.repo.ListDeviceLogs(ctx, deviceID)
}
