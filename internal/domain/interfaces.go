package domain

import "context"

// CollaboratorRepository defines the data access contract for collaborators.
type CollaboratorRepository interface {
	Create(ctx context.Context, c *Collaborator) (int64, error)
	GetByID(ctx context.Context, id int64) (*Collaborator, error)
	// Update replaces the full record. Updating a non-existent id is not
	// an error; it reports zero rows affected.
	Update(ctx context.Context, c *Collaborator) (int64, error)
	// Delete removes by id with the same silent zero-rows semantics.
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context, filter CollaboratorFilter) ([]Collaborator, error)
	// MarkOnboarding sets exactly one completion flag to true. tipo must
	// be TipoBienvenida or TipoTecnico.
	MarkOnboarding(ctx context.Context, id int64, tipo string) error
}

// SessionRepository defines the data access contract for technical
// onboarding sessions. Sessions are read-only after creation.
type SessionRepository interface {
	Create(ctx context.Context, s *Session) (int64, error)
	GetByID(ctx context.Context, id int64) (*Session, error)
	List(ctx context.Context, filter SessionFilter) ([]Session, error)
	// ListStartingIn returns sessions whose start date is exactly days
	// days from the current date.
	ListStartingIn(ctx context.Context, days int) ([]Session, error)
	// ListNotifiable is ListStartingIn restricted to sessions that have a
	// non-empty responsible email.
	ListNotifiable(ctx context.Context, days int) ([]Session, error)
}
