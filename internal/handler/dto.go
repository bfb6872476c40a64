package handler

import (
	"strings"
	"time"

	"github.com/hrops/onboarding-admin/internal/domain"
)

// collaboratorRequest is the JSON body accepted by the REST endpoints.
// Dates travel as YYYY-MM-DD strings and flags as the stored 0/1 form.
type collaboratorRequest struct {
	Nombre                 string `json:"nombre"`
	Correo                 string `json:"correo"`
	FechaIngreso           string `json:"fecha_ingreso"`
	OnboardingBienvenida   int    `json:"onboarding_bienvenida"`
	OnboardingTecnico      int    `json:"onboarding_tecnico"`
	FechaOnboardingTecnico string `json:"fecha_onboarding_tecnico"`
}

func (r *collaboratorRequest) toDomain() (*domain.Collaborator, error) {
	ingreso, err := parseDate(r.FechaIngreso)
	if err != nil {
		return nil, err
	}
	tecnico, err := parseOptionalDate(r.FechaOnboardingTecnico)
	if err != nil {
		return nil, err
	}
	return &domain.Collaborator{
		Nombre:                 r.Nombre,
		Correo:                 r.Correo,
		FechaIngreso:           ingreso,
		OnboardingBienvenida:   r.OnboardingBienvenida != 0,
		OnboardingTecnico:      r.OnboardingTecnico != 0,
		FechaOnboardingTecnico: tecnico,
	}, nil
}

// parseDate accepts YYYY-MM-DD; empty input maps to the zero time so the
// required-field validation downstream can reject it.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}

func parseOptionalDate(s string) (*time.Time, error) {
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	if t.IsZero() {
		return nil, nil
	}
	return &t, nil
}
