package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hrops/onboarding-admin/internal/domain"
)

// ErrNotFound reports a lookup for an id that does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports a rejected request with a caller-facing message.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// CollaboratorService holds the business rules around collaborator CRUD.
type CollaboratorService struct {
	repo domain.CollaboratorRepository
}

// NewCollaboratorService creates a new CollaboratorService.
func NewCollaboratorService(repo domain.CollaboratorRepository) *CollaboratorService {
	return &CollaboratorService{repo: repo}
}

// Create validates required fields before touching the store. Missing
// nombre, correo or fecha_ingreso rejects the request with no write.
func (s *CollaboratorService) Create(ctx context.Context, c *domain.Collaborator) (int64, error) {
	if c.Nombre == "" || c.Correo == "" || c.FechaIngreso.IsZero() {
		return 0, ValidationError("nombre, correo y fecha_ingreso son obligatorios")
	}
	return s.repo.Create(ctx, c)
}

// Get returns ErrNotFound for an absent id.
func (s *CollaboratorService) Get(ctx context.Context, id int64) (*domain.Collaborator, error) {
	c, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the full record. A non-existent id succeeds silently
// with zero rows affected.
func (s *CollaboratorService) Update(ctx context.Context, c *domain.Collaborator) (int64, error) {
	return s.repo.Update(ctx, c)
}

// Delete removes by id with the same silent semantics as Update.
func (s *CollaboratorService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.repo.Delete(ctx, id)
}

func (s *CollaboratorService) List(ctx context.Context, filter domain.CollaboratorFilter) ([]domain.Collaborator, error) {
	return s.repo.List(ctx, filter)
}

// MarkOnboarding sets one completion flag. An unknown tipo is a
// validation error; the other flag is never touched.
func (s *CollaboratorService) MarkOnboarding(ctx context.Context, id int64, tipo string) error {
	if tipo != domain.TipoBienvenida && tipo != domain.TipoTecnico {
		return ValidationError("Tipo de onboarding no válido")
	}
	return s.repo.MarkOnboarding(ctx, id, tipo)
}
