package models

import (
	"database/sql/driver"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	ActionOn      = "on"
	ActionOff     = "off"
	ActionSetTemp = "set-temp"
)

const metadataTempKey = "temp"

var ErrUnknownAction = errors.New("unknown action")

// Metadata is a free-form key-value bag stored as jsonb.
type Metadata map[string]any

func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *Metadata) Scan(src any) error {
	if src == nil {
		*m = nil
		return nil
	}

	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("unsupported metadata source type")
	}
}

type Device struct {
	ID            uuid.UUID  `db:"id"              json:"id"`
	OwnerID       *uuid.UUID `db:"owner_id"        json:"ownerId,omitempty"`
	Name          string     `db:"name"            json:"name"`
	DeviceType    string     `db:"device_type"     json:"deviceType"`
	IsEstateLevel bool       `db:"is_estate_level" json:"isEstateLevel"`
	IsOn          bool       `db:"is_on"           json:"isOn"`
	Metadata      Metadata   `db:"metadata"        json:"metadata"`
	CreatedAt     time.Time  `db:"created_at"      json:"createdAt"`
	UpdatedAt     time.Time  `db:"updated_at"      json:"updatedAt"`
}

// ControllableBy reports whether the actor may control the device:
// estate-level devices require the manager role, owned devices
// require the owner itself.
func (d *Device) ControllableBy(uid uuid.UUID, role Role) bool {
	if d.IsEstateLevel {
		return role == RoleManager
	}
	return d.OwnerID != nil && *d.OwnerID == uid
}

// Apply performs a named state transition. set-temp merges the value
// into the metadata map under the temp key, preserving other keys.
func (d *Device) Apply(action string, value any) error {
	switch action {
	case ActionOn:
		d.IsOn = true
	case ActionOff:
		d.IsOn = false
	case ActionSetTemp:
		if d.Metadata == nil {
			d.Metadata = Metadata{}
		}
		d.Metadata[metadataTempKey] = value
	default:
		return ErrUnknownAction
	}
	return nil
}

// DeviceLog is an immutable per-command audit record.
type DeviceLog struct {
	ID        uint64    `db:"id"         json:"id"`
	DeviceID  uuid.UUID `db:"device_id"  json:"deviceId"`
	Action    string    `db:"action"     json:"action"`
	Details   *string   `db:"details"    json:"details,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
