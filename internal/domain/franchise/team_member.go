package franchise

import (
	"github.com/franq/backend/internal/domain/shared"
)

// TeamMember is a person working at a franchise unit
type TeamMember struct {
	shared.BaseEntity
	Name  string
	Role  string
	Email string
}

func newTeamMember(name, role, email string) TeamMember {
	return TeamMember{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Role:       role,
		Email:      email,
	}
}
