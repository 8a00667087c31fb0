package dto

import (
	md "github.com/JMURv/estate-backend/internal/models"
	"github.com/google/uuid"
)

type CreateDeviceRequest struct {
	Name          string      `json:"name"       validate:"required"`
	DeviceType    string      `json:"deviceType" validate:"required"`
	IsEstateLevel bool        `json:"isEstateLevel"`
	Metadata      md.Metadata `json:"metadata"`
}

type ControlDeviceRequest struct {
	Action string `json:"action" validate:"required,oneof=on off set-temp"`
	Value  any    `json:"value,omitempty"`
}

// ControlDeviceResponse is the device summary returned after an
// accepted control command.
type ControlDeviceResponse struct {
	ID       uuid.UUID   `json:"id"`
	Name     string      `json:"name"`
	IsOn     bool        `json:"isOn"`
	Metadata md.Metadata `json:"metadata"`
}
