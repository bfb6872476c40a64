package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/hrops/onboarding-admin/internal/domain"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestCollaboratorCreateDefaults(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCollaboratorRepository(db)

	hired := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO colaboradores (nombre, correo, fecha_ingreso, onboarding_bienvenida, onboarding_tecnico, fecha_onboarding_tecnico) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id").
		WithArgs("Ana", "ana@x.com", hired, 0, 0, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	id, err := repo.Create(context.Background(), &domain.Collaborator{
		Nombre:       "Ana",
		Correo:       "ana@x.com",
		FechaIngreso: hired,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1 {
		t.Errorf("expected id 1, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMarkOnboardingTouchesOnlyOneFlag(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCollaboratorRepository(db)

	mock.ExpectExec("UPDATE colaboradores SET onboarding_bienvenida = $1 WHERE id = $2").
		WithArgs(1, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.MarkOnboarding(context.Background(), 5, domain.TipoBienvenida); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMarkOnboardingRejectsUnknownTipo(t *testing.T) {
	db, _ := newMock(t)
	repo := NewCollaboratorRepository(db)

	if err := repo.MarkOnboarding(context.Background(), 5, "vacaciones"); err == nil {
		t.Error("expected error for unknown tipo")
	}
}

func TestDeleteMissingIDReportsZeroRows(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCollaboratorRepository(db)

	mock.ExpectExec("DELETE FROM colaboradores WHERE id = $1").
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := repo.Delete(context.Background(), 999)
	if err != nil {
		t.Fatalf("expected silent success, got %v", err)
	}
	if rows != 0 {
		t.Errorf("expected 0 rows affected, got %d", rows)
	}
}

func TestListFilterConstrainsOnlyMatchingFlag(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCollaboratorRepository(db)

	hired := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id, nombre, correo, fecha_ingreso, onboarding_bienvenida, onboarding_tecnico, fecha_onboarding_tecnico FROM colaboradores WHERE onboarding_tecnico = $1 ORDER BY id").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "nombre", "correo", "fecha_ingreso",
			"onboarding_bienvenida", "onboarding_tecnico", "fecha_onboarding_tecnico",
		}).AddRow(2, "Luis", "luis@x.com", hired, 0, 1, nil))

	got, err := repo.List(context.Background(), domain.CollaboratorFilter{
		TipoOnboarding: domain.TipoTecnico,
		Estado:         domain.EstadoCompletado,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 collaborator, got %d", len(got))
	}
	if got[0].OnboardingBienvenida || !got[0].OnboardingTecnico {
		t.Errorf("expected welcome=false technical=true, got %+v", got[0])
	}
	if got[0].FechaOnboardingTecnico != nil {
		t.Errorf("expected nil technical date, got %v", got[0].FechaOnboardingTecnico)
	}
}

func TestListTextFiltersAreCaseInsensitive(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCollaboratorRepository(db)

	mock.ExpectQuery("SELECT id, nombre, correo, fecha_ingreso, onboarding_bienvenida, onboarding_tecnico, fecha_onboarding_tecnico FROM colaboradores WHERE LOWER(nombre) LIKE $1 AND LOWER(correo) LIKE $2 ORDER BY id").
		WithArgs("%ana%", "%@x.com%").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "nombre", "correo", "fecha_ingreso",
			"onboarding_bienvenida", "onboarding_tecnico", "fecha_onboarding_tecnico",
		}))

	_, err := repo.List(context.Background(), domain.CollaboratorFilter{
		Nombre: " Ana ",
		Correo: "@X.COM",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
