package agentrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"lastmile/internal/core/domain/model/agent"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
)

// GormAgentRepository implements AgentRepository using GORM.
type GormAgentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAgentRepository creates a new GORM agent repository.
func NewGormAgentRepository(db *gorm.DB, tracker aggregateTracker) *GormAgentRepository {
	return &GormAgentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly registered agent. A taken email or mobile surfaces as
// gorm.ErrDuplicatedKey when the connection is opened with TranslateError.
func (r *GormAgentRepository) Add(ctx context.Context, aggregate *agent.Agent) error {
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

// GetByIdentifier retrieves an agent by email or mobile.
func (r *GormAgentRepository) GetByIdentifier(ctx context.Context, identifier string) (*agent.Agent, error) {
	var dto AgentDTO
	err := r.db.WithContext(ctx).First(&dto, "email = ? OR mobile = ?", identifier, identifier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("agent", identifier)
		}
		return nil, err
	}

	return toDomain(dto)
}
