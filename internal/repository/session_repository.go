package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hrops/onboarding-admin/internal/domain"
	"github.com/hrops/onboarding-admin/internal/repository/builder"
)

var sessionColumns = []string{
	"id", "nombre", "capitulo", "fecha_inicio", "fecha_fin",
	"responsable_nombre", "responsable_correo",
}

type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new instance of SessionRepository.
func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) (int64, error) {
	b := builder.NewSQLBuilder()
	query, args := b.Insert("onboardings_tecnicos",
		"nombre", "capitulo", "fecha_inicio", "fecha_fin",
		"responsable_nombre", "responsable_correo").
		Values(s.Nombre, nullable(s.Capitulo), s.FechaInicio, s.FechaFin,
			nullable(s.ResponsableNombre), nullable(s.ResponsableCorreo)).
		Returning("id").
		Build()

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	b := builder.NewSQLBuilder()
	query, args := b.Select(sessionColumns...).
		From("onboardings_tecnicos").
		Where("id = ?", id).
		Build()

	row := r.db.QueryRowContext(ctx, query, args...)
	return scanSession(row, false, false)
}

func (r *sessionRepository) List(ctx context.Context, filter domain.SessionFilter) ([]domain.Session, error) {
	cols := append([]string{}, sessionColumns...)
	cols = append(cols, "(fecha_fin - fecha_inicio) + 1 AS duracion_dias")

	b := builder.NewSQLBuilder()
	b.Select(cols...).
		From("onboardings_tecnicos").
		OrderBy("fecha_inicio")

	if filter.Desde != "" {
		b.Where("fecha_inicio >= ?", filter.Desde)
	}
	if filter.Hasta != "" {
		b.Where("fecha_fin <= ?", filter.Hasta)
	}

	query, args := b.Build()
	return r.querySessions(ctx, query, args, true, false)
}

func (r *sessionRepository) ListStartingIn(ctx context.Context, days int) ([]domain.Session, error) {
	query, args := r.startingInQuery(days, false)
	return r.querySessions(ctx, query, args, false, true)
}

func (r *sessionRepository) ListNotifiable(ctx context.Context, days int) ([]domain.Session, error) {
	query, args := r.startingInQuery(days, true)
	return r.querySessions(ctx, query, args, false, true)
}

func (r *sessionRepository) startingInQuery(days int, requireEmail bool) (string, []interface{}) {
	cols := append([]string{}, sessionColumns...)
	cols = append(cols, "fecha_inicio - CURRENT_DATE AS dias_para_inicio")

	b := builder.NewSQLBuilder()
	b.Select(cols...).
		From("onboardings_tecnicos").
		Where("fecha_inicio - CURRENT_DATE = ?", days)

	if requireEmail {
		b.Where("responsable_correo IS NOT NULL").
			Where("responsable_correo <> ''")
	}

	return b.Build()
}

func (r *sessionRepository) querySessions(ctx context.Context, query string, args []interface{}, withDuration, withCountdown bool) ([]domain.Session, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		s, err := scanSession(rows, withDuration, withCountdown)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return sessions, nil
}

func scanSession(row rowScanner, withDuration, withCountdown bool) (*domain.Session, error) {
	var s domain.Session
	var capitulo, respNombre, respCorreo sql.NullString

	dest := []interface{}{
		&s.ID, &s.Nombre, &capitulo, &s.FechaInicio, &s.FechaFin,
		&respNombre, &respCorreo,
	}
	if withDuration {
		dest = append(dest, &s.DuracionDias)
	}
	if withCountdown {
		dest = append(dest, &s.DiasParaInicio)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	s.Capitulo = capitulo.String
	s.ResponsableNombre = respNombre.String
	s.ResponsableCorreo = respCorreo.String
	return &s, nil
}

// nullable maps an empty string to NULL for optional text columns.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
