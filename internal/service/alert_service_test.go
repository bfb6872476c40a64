package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrops/onboarding-admin/internal/domain"
)

type fakeSessionRepo struct {
	notifiable []domain.Session
	preview    []domain.Session
	byID       map[int64]*domain.Session
	queryErr   error
}

func (f *fakeSessionRepo) Create(ctx context.Context, s *domain.Session) (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	s, ok := f.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return s, nil
}

func (f *fakeSessionRepo) List(ctx context.Context, filter domain.SessionFilter) ([]domain.Session, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeSessionRepo) ListStartingIn(ctx context.Context, days int) ([]domain.Session, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.preview, nil
}

func (f *fakeSessionRepo) ListNotifiable(ctx context.Context, days int) ([]domain.Session, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.notifiable, nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type recordingSender struct {
	sent    []sentMail
	failFor string
}

func (r *recordingSender) Send(ctx context.Context, to, subject, body string) error {
	if to == r.failFor {
		return errors.New("smtp unavailable")
	}
	r.sent = append(r.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func session(id int64, nombre, correo string) domain.Session {
	return domain.Session{
		ID:                id,
		Nombre:            nombre,
		Capitulo:          "Backend",
		FechaInicio:       time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC),
		FechaFin:          time.Date(2026, time.September, 11, 0, 0, 0, 0, time.UTC),
		ResponsableNombre: "Marta",
		ResponsableCorreo: correo,
	}
}

func TestSendAllDispatchesPerEligibleSession(t *testing.T) {
	repo := &fakeSessionRepo{notifiable: []domain.Session{
		session(1, "Git avanzado", "marta@x.com"),
		session(2, "Intro APIs", "luis@x.com"),
	}}
	sender := &recordingSender{}
	svc := NewAlertService(repo, sender)

	require.NoError(t, svc.SendAll(context.Background()))
	require.Len(t, sender.sent, 2)
	assert.Equal(t, "marta@x.com", sender.sent[0].to)
	assert.Equal(t, "Recordatorio onboarding técnico: Git avanzado", sender.sent[0].subject)
	assert.Contains(t, sender.sent[0].body, "comienza en una semana")
	assert.Contains(t, sender.sent[0].body, "07 sep 2026")
	assert.Contains(t, sender.sent[0].body, "11 sep 2026")
}

func TestSendAllIsNotDeduplicated(t *testing.T) {
	repo := &fakeSessionRepo{notifiable: []domain.Session{session(1, "Git avanzado", "marta@x.com")}}
	sender := &recordingSender{}
	svc := NewAlertService(repo, sender)

	require.NoError(t, svc.SendAll(context.Background()))
	require.NoError(t, svc.SendAll(context.Background()))
	// Two invocations on the same day send two reminders for the same
	// session; no notified state exists anywhere.
	assert.Len(t, sender.sent, 2)
}

func TestSendAllContinuesAfterSendFailure(t *testing.T) {
	repo := &fakeSessionRepo{notifiable: []domain.Session{
		session(1, "Git avanzado", "fails@x.com"),
		session(2, "Intro APIs", "luis@x.com"),
	}}
	sender := &recordingSender{failFor: "fails@x.com"}
	svc := NewAlertService(repo, sender)

	require.NoError(t, svc.SendAll(context.Background()))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "luis@x.com", sender.sent[0].to)
}

func TestSendAllPropagatesQueryFailure(t *testing.T) {
	repo := &fakeSessionRepo{queryErr: errors.New("connection refused")}
	svc := NewAlertService(repo, &recordingSender{})

	err := svc.SendAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSendOne(t *testing.T) {
	t.Run("missing session is a no-op", func(t *testing.T) {
		repo := &fakeSessionRepo{byID: map[int64]*domain.Session{}}
		sender := &recordingSender{}
		svc := NewAlertService(repo, sender)

		require.NoError(t, svc.SendOne(context.Background(), 99))
		assert.Empty(t, sender.sent)
	})

	t.Run("missing responsible email is a no-op", func(t *testing.T) {
		ses := session(3, "Git avanzado", "")
		repo := &fakeSessionRepo{byID: map[int64]*domain.Session{3: &ses}}
		sender := &recordingSender{}
		svc := NewAlertService(repo, sender)

		require.NoError(t, svc.SendOne(context.Background(), 3))
		assert.Empty(t, sender.sent)
	})

	t.Run("sends exactly one reminder with manual note", func(t *testing.T) {
		ses := session(3, "Git avanzado", "marta@x.com")
		repo := &fakeSessionRepo{byID: map[int64]*domain.Session{3: &ses}}
		sender := &recordingSender{}
		svc := NewAlertService(repo, sender)

		require.NoError(t, svc.SendOne(context.Background(), 3))
		require.Len(t, sender.sent, 1)
		assert.True(t, strings.Contains(sender.sent[0].body, "disparado manualmente"))
	})

	t.Run("send failure is swallowed", func(t *testing.T) {
		ses := session(3, "Git avanzado", "fails@x.com")
		repo := &fakeSessionRepo{byID: map[int64]*domain.Session{3: &ses}}
		sender := &recordingSender{failFor: "fails@x.com"}
		svc := NewAlertService(repo, sender)

		require.NoError(t, svc.SendOne(context.Background(), 3))
	})

	t.Run("store failure propagates", func(t *testing.T) {
		repo := &fakeSessionRepo{queryErr: errors.New("connection refused")}
		svc := NewAlertService(repo, &recordingSender{})

		require.Error(t, svc.SendOne(context.Background(), 3))
	})
}

func TestReminderMessagePlaceholders(t *testing.T) {
	ses := session(1, "Git avanzado", "marta@x.com")
	ses.Capitulo = ""
	ses.ResponsableNombre = ""

	_, body := reminderMessage(&ses, false)
	assert.Contains(t, body, "Capítulo: N/A")
	assert.Contains(t, body, "Hola ,")
}
