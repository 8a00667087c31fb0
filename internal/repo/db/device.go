package db

import (
	"context"
	"database/sql"
	"errors"

	md "github.com/JMURv/estate-backend/internal/models"
	"github.com/JMURv/estate-backend/internal/repo"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (r *Repository) CreateDevice(ctx context.Context, d *md.Device) (uuid.UUID, error) {
	const op = "iot.CreateDevice.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRowContext(
		ctx, deviceCreateQ, d.OwnerID, d.Name, d.DeviceType, d.IsEstateLevel, d.IsOn, d.Metadata,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) GetDeviceByID(ctx context.Context, deviceID uuid.UUID) (*md.Device, error) {
	const op = "iot.GetDeviceByID.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Device{}
	err := r.conn.GetContext(ctx, res, deviceGetByIDQ, deviceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) ListUserDevices(ctx context.Context, userID uuid.UUID) ([]*md.Device, error) {
	const op = "iot.ListUserDevices.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]*md.Device, 0)
	if err := r.conn.SelectContext(ctx, &res, deviceListByOwnerQ, userID); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Repository) ListEstateDevices(ctx context.Context) ([]*md.Device, error) {
	const op = "iot.ListEstateDevices.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]*md.Device, 0)
	if err := r.conn.SelectContext(ctx, &res, deviceListEstateQ); err != nil {
		return nil, err
	}

	return res, nil
}

// ControlDevice runs the load-authorize-mutate-persist-log sequence
// as one transaction: the state row and the log row commit together
// or not at all, and the row lock serializes concurrent commands on
// the same device.
func (r *Repository) ControlDevice(
	ctx context.Context,
	actorID uuid.UUID,
	role md.Role,
	deviceID uuid.UUID,
	action string,
	value any,
) (*md.Device, error) {
	const op = "iot.ControlDevice.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			zap.L().Error("failed to rollback transaction", zap.String("op", op), zap.Error(rbErr))
		}
	}()

	d := &md.Device{}
	if err = tx.GetContext(ctx, d, deviceGetForUpdateQ, deviceID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	if !d.ControllableBy(actorID, role) {
		return nil, repo.ErrForbidden
	}

	if err = d.Apply(action, value); err != nil {
		return nil, err
	}

	if _, err = tx.ExecContext(ctx, deviceUpdateStateQ, d.IsOn, d.Metadata, d.ID); err != nil {
		return nil, err
	}

	var details *string
	if value != nil {
		bytes, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		s := string(bytes)
		details = &s
	}

	if _, err = tx.ExecContext(ctx, deviceLogInsertQ, d.ID, action, details); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return d, nil
}

func (r *Repository) ListDeviceLogs(ctx context.Context, deviceID uuid.UUID) ([]*md.DeviceLog, error) {
	const op = "iot.ListDeviceLogs.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]*md.DeviceLog, 0)
	if err := r.conn.SelectContext(ctx, &res, deviceLogsListQ, deviceID); err != nil {
		return nil, err
	}

	return res, nil
}
