package pipeline

import (
	"github.com/franq/backend/internal/domain/shared"
)

// Note is an immutable internal annotation on a lead. Notes are
// append-only: never edited, never deleted.
type Note struct {
	shared.BaseEntity
	Author string
	Body   string
}

func newNote(author, body string) Note {
	return Note{
		BaseEntity: shared.NewBaseEntity(),
		Author:     author,
		Body:       body,
	}
}
