package franchise

import (
	"github.com/franq/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AggregateTypeFranchise is the aggregate type for franchise events
const AggregateTypeFranchise = "Franchise"

// Franchise event types
const (
	EventTypeFranchiseCreated = "franchise.created"
)

// FranchiseCreatedEvent is raised when a lead is converted into a franchise
type FranchiseCreatedEvent struct {
	shared.BaseDomainEvent
	SourceLeadID uuid.UUID `json:"source_lead_id"`
	OwnerName    string    `json:"owner_name"`
	City         string    `json:"city"`
}

// NewFranchiseCreatedEvent creates a new FranchiseCreatedEvent
func NewFranchiseCreatedEvent(f *Franchise, sourceLeadID uuid.UUID) *FranchiseCreatedEvent {
	return &FranchiseCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFranchiseCreated, AggregateTypeFranchise, f.ID),
		SourceLeadID:    sourceLeadID,
		OwnerName:       f.OwnerName,
		City:            f.City,
	}
}
