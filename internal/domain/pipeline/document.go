package pipeline

import (
	"github.com/franq/backend/internal/domain/shared"
)

// DocumentStatus represents the verification status of an onboarding document
type DocumentStatus string

// Document statuses
const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusReceived DocumentStatus = "received"
	DocumentStatusVerified DocumentStatus = "verified"
	DocumentStatusInvalid  DocumentStatus = "invalid"
)

// IsValid checks if the document status is valid
func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusPending, DocumentStatusReceived, DocumentStatusVerified, DocumentStatusInvalid:
		return true
	}
	return false
}

// Document is a required onboarding document owned by a lead. The
// document set is fixed at lead creation; only the status changes.
type Document struct {
	shared.BaseEntity
	Name   string
	Status DocumentStatus
}

// RequiredDocuments returns the fixed checklist seeded for every new lead
func RequiredDocuments() []string {
	return []string{
		"Identity document (RG/CPF)",
		"Proof of address",
		"Income tax return",
		"Bank statements (last 3 months)",
		"Criminal record certificate",
		"Signed confidentiality agreement",
	}
}

// NewDocument creates a pending checklist document
func NewDocument(name string) Document {
	return Document{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Status:     DocumentStatusPending,
	}
}
