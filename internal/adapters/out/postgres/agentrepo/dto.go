// Package agentrepo provides data transfer objects and mapping functions
// for agent persistence. Email and mobile are both optional, unique, and
// usable as login identifiers, which is why they map to nullable columns:
// a NULL never collides with another NULL under a unique index.
package agentrepo

import (
	"time"

	"github.com/google/uuid"

	"lastmile/internal/core/domain/model/agent"
	"lastmile/internal/core/domain/model/kernel"
)

// AgentDTO represents the database structure for persisting agent aggregates.
type AgentDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	Email        *string   `gorm:"uniqueIndex"`
	Mobile       *string   `gorm:"uniqueIndex"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for agent entities.
func (AgentDTO) TableName() string {
	return "agents"
}

func fromDomain(aggregate *agent.Agent) AgentDTO {
	var email, mobile *string
	if e := aggregate.Email(); e != "" {
		email = &e
	}
	if m := aggregate.Mobile(); m != "" {
		mobile = &m
	}

	return AgentDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        email,
		Mobile:       mobile,
		PasswordHash: aggregate.PasswordHash(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var email, mobile string
	if dto.Email != nil {
		email = *dto.Email
	}
	if dto.Mobile != nil {
		mobile = *dto.Mobile
	}

	return agent.RestoreAgent(id, dto.Name, email, mobile, dto.PasswordHash, dto.CreatedAt)
}
