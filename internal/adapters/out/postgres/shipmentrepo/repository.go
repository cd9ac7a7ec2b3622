package shipmentrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/pkg/errs"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment to the database unconditionally.
// Uses a column map rather than a struct so that clearing the code writes
// NULLs instead of being skipped as a zero value.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"number":           dto.Number,
			"customer_contact": dto.CustomerContact,
			"status":           dto.Status,
			"otp_code":         dto.OTPCode,
			"otp_expires_at":   dto.OTPExpiresAt,
			"delivered_at":     dto.DeliveredAt,
			"delivered_by":     dto.DeliveredBy,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByNumber retrieves a shipment by its business identifier.
func (r *GormShipmentRepository) GetByNumber(ctx context.Context, number string) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", number)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Deliver persists the Pending to Delivered transition. The status guard in
// the WHERE clause makes the write conditional: if another confirmation
// already flipped the row, zero rows match and the caller gets
// shipment.ErrAlreadyDelivered instead of a double delivery.
func (r *GormShipmentRepository) Deliver(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(shipment.Pending)).
		Updates(map[string]any{
			"status":         dto.Status,
			"otp_code":       nil,
			"otp_expires_at": nil,
			"delivered_at":   dto.DeliveredAt,
			"delivered_by":   dto.DeliveredBy,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return shipment.ErrAlreadyDelivered
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ClearExpiredOTPs nulls out codes whose expiry lies before the cutoff.
// Returns the number of rows affected.
func (r *GormShipmentRepository) ClearExpiredOTPs(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Where("otp_expires_at IS NOT NULL AND otp_expires_at < ?", cutoff).
		Updates(map[string]any{
			"otp_code":       nil,
			"otp_expires_at": nil,
		})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
