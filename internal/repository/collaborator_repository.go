package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/hrops/onboarding-admin/internal/domain"
	"github.com/hrops/onboarding-admin/internal/repository/builder"
)

var collaboratorColumns = []string{
	"id", "nombre", "correo", "fecha_ingreso",
	"onboarding_bienvenida", "onboarding_tecnico", "fecha_onboarding_tecnico",
}

// Columns a flag tipo may address. The column name is never taken from
// the request; it is resolved through this whitelist.
var onboardingColumns = map[string]string{
	domain.TipoBienvenida: "onboarding_bienvenida",
	domain.TipoTecnico:    "onboarding_tecnico",
}

type collaboratorRepository struct {
	db *sql.DB
}

// NewCollaboratorRepository creates a new instance of CollaboratorRepository.
func NewCollaboratorRepository(db *sql.DB) domain.CollaboratorRepository {
	return &collaboratorRepository{db: db}
}

func (r *collaboratorRepository) Create(ctx context.Context, c *domain.Collaborator) (int64, error) {
	b := builder.NewSQLBuilder()
	query, args := b.Insert("colaboradores",
		"nombre", "correo", "fecha_ingreso",
		"onboarding_bienvenida", "onboarding_tecnico", "fecha_onboarding_tecnico").
		Values(c.Nombre, c.Correo, c.FechaIngreso,
			flagValue(c.OnboardingBienvenida), flagValue(c.OnboardingTecnico), c.FechaOnboardingTecnico).
		Returning("id").
		Build()

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create collaborator: %w", err)
	}
	return id, nil
}

func (r *collaboratorRepository) GetByID(ctx context.Context, id int64) (*domain.Collaborator, error) {
	b := builder.NewSQLBuilder()
	query, args := b.Select(collaboratorColumns...).
		From("colaboradores").
		Where("id = ?", id).
		Build()

	row := r.db.QueryRowContext(ctx, query, args...)
	c, err := scanCollaborator(row)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *collaboratorRepository) Update(ctx context.Context, c *domain.Collaborator) (int64, error) {
	b := builder.NewSQLBuilder()
	query, args := b.Update("colaboradores").
		Set("nombre", c.Nombre).
		Set("correo", c.Correo).
		Set("fecha_ingreso", c.FechaIngreso).
		Set("onboarding_bienvenida", flagValue(c.OnboardingBienvenida)).
		Set("onboarding_tecnico", flagValue(c.OnboardingTecnico)).
		Set("fecha_onboarding_tecnico", c.FechaOnboardingTecnico).
		Where("id = ?", c.ID).
		Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update collaborator: %w", err)
	}
	rows, _ := res.RowsAffected()
	return rows, nil
}

func (r *collaboratorRepository) Delete(ctx context.Context, id int64) (int64, error) {
	b := builder.NewSQLBuilder()
	query, args := b.Delete("colaboradores").
		Where("id = ?", id).
		Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete collaborator: %w", err)
	}
	rows, _ := res.RowsAffected()
	return rows, nil
}

func (r *collaboratorRepository) List(ctx context.Context, filter domain.CollaboratorFilter) ([]domain.Collaborator, error) {
	b := builder.NewSQLBuilder()
	b.Select(collaboratorColumns...).
		From("colaboradores").
		OrderBy("id")

	// The estado constrains only the flag named by the tipo.
	if col, ok := onboardingColumns[filter.TipoOnboarding]; ok {
		switch filter.Estado {
		case domain.EstadoCompletado:
			b.Where(col+" = ?", 1)
		case domain.EstadoPendiente:
			b.Where(col+" = ?", 0)
		}
	}

	if s := strings.TrimSpace(filter.Nombre); s != "" {
		b.Where("LOWER(nombre) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if s := strings.TrimSpace(filter.Correo); s != "" {
		b.Where("LOWER(correo) LIKE ?", "%"+strings.ToLower(s)+"%")
	}

	query, args := b.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators: %w", err)
	}
	defer rows.Close()

	var collaborators []domain.Collaborator
	for rows.Next() {
		c, err := scanCollaborator(rows)
		if err != nil {
			return nil, err
		}
		collaborators = append(collaborators, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return collaborators, nil
}

func (r *collaboratorRepository) MarkOnboarding(ctx context.Context, id int64, tipo string) error {
	col, ok := onboardingColumns[tipo]
	if !ok {
		return fmt.Errorf("unknown onboarding tipo %q", tipo)
	}

	b := builder.NewSQLBuilder()
	query, args := b.Update("colaboradores").
		Set(col, 1).
		Where("id = ?", id).
		Build()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark onboarding: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCollaborator(row rowScanner) (*domain.Collaborator, error) {
	var c domain.Collaborator
	var fechaOnb sql.NullTime
	err := row.Scan(&c.ID, &c.Nombre, &c.Correo, &c.FechaIngreso,
		&c.OnboardingBienvenida, &c.OnboardingTecnico, &fechaOnb)
	if err != nil {
		return nil, err
	}
	if fechaOnb.Valid {
		t := fechaOnb.Time
		c.FechaOnboardingTecnico = &t
	}
	return &c, nil
}

// flagValue maps a completion flag to its stored 0/1 form.
func flagValue(b bool) int {
	if b {
		return 1
	}
	return 0
}
