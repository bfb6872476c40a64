package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hrops/onboarding-admin/internal/dates"
	"github.com/hrops/onboarding-admin/internal/domain"
	"github.com/hrops/onboarding-admin/internal/logger"
	"github.com/hrops/onboarding-admin/internal/mailer"
)

// Sessions become alert-eligible exactly this many days before they start.
const AlertLeadDays = 7

// AlertService runs the onboarding reminder workflow: query eligible
// sessions, send one reminder per responsible contact. It keeps no send
// state, so repeated invocations on the same day send duplicates.
type AlertService struct {
	sessions domain.SessionRepository
	sender   mailer.Sender
}

// NewAlertService creates a new AlertService.
func NewAlertService(sessions domain.SessionRepository, sender mailer.Sender) *AlertService {
	return &AlertService{sessions: sessions, sender: sender}
}

// Preview returns the sessions starting in exactly AlertLeadDays days,
// with no email requirement and no sends.
func (s *AlertService) Preview(ctx context.Context) ([]domain.Session, error) {
	return s.sessions.ListStartingIn(ctx, AlertLeadDays)
}

// SendAll dispatches one reminder per notifiable session. A failed send
// is logged and does not stop the remaining recipients; only the store
// query can fail the workflow.
func (s *AlertService) SendAll(ctx context.Context) error {
	eligible, err := s.sessions.ListNotifiable(ctx, AlertLeadDays)
	if err != nil {
		return fmt.Errorf("failed to query notifiable sessions: %w", err)
	}

	if len(eligible) == 0 {
		logger.InfoLog(ctx, "No hay sesiones que requieran envío de correo hoy")
		return nil
	}

	for _, ses := range eligible {
		subject, body := reminderMessage(&ses, false)
		if err := s.sender.Send(ctx, ses.ResponsableCorreo, subject, body); err != nil {
			logger.ErrorLog(ctx, "Failed to send reminder to "+ses.ResponsableCorreo, err)
			continue
		}
	}
	return nil
}

// SendOne dispatches the reminder for a single session. A missing session
// or a session without a responsible email is a logged no-op; a send
// failure is logged and swallowed.
func (s *AlertService) SendOne(ctx context.Context, id int64) error {
	ses, err := s.sessions.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		logger.InfoLog(ctx, "No se encontró la sesión %d para envío manual", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load session %d: %w", id, err)
	}

	if ses.ResponsableCorreo == "" {
		logger.InfoLog(ctx, "La sesión %d no tiene correo de responsable configurado", id)
		return nil
	}

	subject, body := reminderMessage(ses, true)
	if err := s.sender.Send(ctx, ses.ResponsableCorreo, subject, body); err != nil {
		logger.ErrorLog(ctx, "Failed to send manual reminder to "+ses.ResponsableCorreo, err)
	}
	return nil
}

func reminderMessage(ses *domain.Session, manual bool) (subject, body string) {
	subject = "Recordatorio onboarding técnico: " + ses.Nombre

	capitulo := ses.Capitulo
	if capitulo == "" {
		capitulo = "N/A"
	}

	intro := fmt.Sprintf("Este es un recordatorio automático de que la sesión de onboarding técnico %q comienza en una semana.", ses.Nombre)
	if manual {
		intro = fmt.Sprintf("Este es un recordatorio automático de la sesión de onboarding técnico %q.", ses.Nombre)
	}

	body = fmt.Sprintf(`Hola %s,

%s

• Capítulo: %s
• Fecha inicio: %s
• Fecha fin: %s
`, ses.ResponsableNombre, intro, capitulo, dates.Display(ses.FechaInicio), dates.Display(ses.FechaFin))

	if manual {
		body += "\n(Este recordatorio fue disparado manualmente desde el panel de alertas.)\n"
	}

	body += "\nSaludos,\nSistema de Onboarding"
	return subject, body
}
