// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. This package implements the repository pattern
// for the shipment domain aggregate, handling the conversion between domain
// entities and database representations.
package shipmentrepo

import (
	"time"

	"github.com/google/uuid"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The business identifier carries a unique index because it is
// the lookup key for every customer-facing operation; delivered_by is
// indexed to serve the agent history query.
type ShipmentDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number          string    `gorm:"uniqueIndex;not null"`
	CustomerContact string    `gorm:"not null"`
	Status          int
	OTPCode         *string
	OTPExpiresAt    *time.Time
	DeliveredAt     *time.Time
	DeliveredBy     *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database
// representation. The outstanding code and the delivery record both map to
// nullable column pairs.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var otpCode *string
	var otpExpiresAt *time.Time
	if otp := aggregate.OTP(); otp != nil {
		code := otp.Code()
		expiresAt := otp.ExpiresAt()
		otpCode = &code
		otpExpiresAt = &expiresAt
	}

	var deliveredBy *uuid.UUID
	if id := aggregate.DeliveredBy(); id != nil {
		raw := id.Bytes()
		deliveredBy = &raw
	}

	return ShipmentDTO{
		ID:              aggregate.ID().Bytes(),
		Number:          aggregate.Number(),
		CustomerContact: aggregate.CustomerContact(),
		Status:          int(aggregate.Status()),
		OTPCode:         otpCode,
		OTPExpiresAt:    otpExpiresAt,
		DeliveredAt:     aggregate.DeliveredAt(),
		DeliveredBy:     deliveredBy,
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including the outstanding code and
// delivery record using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var otp *shipment.OTP
	if dto.OTPCode != nil && dto.OTPExpiresAt != nil {
		restored, otpErr := shipment.NewOTP(*dto.OTPCode, *dto.OTPExpiresAt)
		if otpErr != nil {
			return nil, otpErr
		}
		otp = &restored
	}

	var deliveredBy *kernel.UUID
	if dto.DeliveredBy != nil {
		agentID, agentErr := kernel.UUIDFromBytes((*dto.DeliveredBy)[:])
		if agentErr != nil {
			return nil, agentErr
		}
		deliveredBy = &agentID
	}

	return shipment.RestoreShipment(
		id,
		dto.Number,
		dto.CustomerContact,
		shipment.Status(dto.Status),
		otp,
		dto.DeliveredAt,
		deliveredBy,
	)
}
