package handler

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrops/onboarding-admin/internal/domain"
	"github.com/hrops/onboarding-admin/internal/service"
)

type fakeCollaboratorRepo struct {
	created     []*domain.Collaborator
	collabs     map[int64]*domain.Collaborator
	deletedRows int64
	updatedRows int64
}

func (f *fakeCollaboratorRepo) Create(ctx context.Context, c *domain.Collaborator) (int64, error) {
	f.created = append(f.created, c)
	return int64(len(f.created)), nil
}

func (f *fakeCollaboratorRepo) GetByID(ctx context.Context, id int64) (*domain.Collaborator, error) {
	c, ok := f.collabs[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return c, nil
}

func (f *fakeCollaboratorRepo) Update(ctx context.Context, c *domain.Collaborator) (int64, error) {
	return f.updatedRows, nil
}

func (f *fakeCollaboratorRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return f.deletedRows, nil
}

func (f *fakeCollaboratorRepo) List(ctx context.Context, filter domain.CollaboratorFilter) ([]domain.Collaborator, error) {
	var out []domain.Collaborator
	for _, c := range f.collabs {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCollaboratorRepo) MarkOnboarding(ctx context.Context, id int64, tipo string) error {
	return nil
}

func newAPITest(repo *fakeCollaboratorRepo) *APIHandler {
	return NewAPIHandler(service.NewCollaboratorService(repo))
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	require.NoError(t, h(c))
	return rec
}

func TestAPICreateWithoutCorreoIsRejectedBeforeStore(t *testing.T) {
	repo := &fakeCollaboratorRepo{}
	h := newAPITest(repo)

	rec := doJSON(t, h.CreateHandler, http.MethodPost, "/api/colaboradores",
		`{"nombre":"Ana","fecha_ingreso":"2024-01-10"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.created, "rejected create must not reach the store")
	assert.Contains(t, rec.Body.String(), "obligatorios")
}

func TestAPICreateReturnsNewID(t *testing.T) {
	repo := &fakeCollaboratorRepo{}
	h := newAPITest(repo)

	rec := doJSON(t, h.CreateHandler, http.MethodPost, "/api/colaboradores",
		`{"nombre":"Ana","correo":"ana@x.com","fecha_ingreso":"2024-01-10"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":1`)

	require.Len(t, repo.created, 1)
	created := repo.created[0]
	assert.False(t, created.OnboardingBienvenida)
	assert.False(t, created.OnboardingTecnico)
	assert.Nil(t, created.FechaOnboardingTecnico)
}

func TestAPICreateRejectsMalformedDate(t *testing.T) {
	repo := &fakeCollaboratorRepo{}
	h := newAPITest(repo)

	rec := doJSON(t, h.CreateHandler, http.MethodPost, "/api/colaboradores",
		`{"nombre":"Ana","correo":"ana@x.com","fecha_ingreso":"10/01/2024"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.created)
}

func TestAPIGetNotFound(t *testing.T) {
	repo := &fakeCollaboratorRepo{collabs: map[int64]*domain.Collaborator{}}
	h := newAPITest(repo)

	rec := doJSON(t, h.GetHandler, http.MethodGet, "/api/colaboradores/7", "", map[string]string{"id": "7"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPIDeleteMissingIDSucceedsWithZeroRows(t *testing.T) {
	repo := &fakeCollaboratorRepo{deletedRows: 0}
	h := newAPITest(repo)

	rec := doJSON(t, h.DeleteHandler, http.MethodDelete, "/api/colaboradores/99", "", map[string]string{"id": "99"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rows_affected":0`)
}

func TestAPIUpdateMissingIDSucceedsSilently(t *testing.T) {
	repo := &fakeCollaboratorRepo{updatedRows: 0}
	h := newAPITest(repo)

	rec := doJSON(t, h.UpdateHandler, http.MethodPut, "/api/colaboradores/99",
		`{"nombre":"Ana","correo":"ana@x.com","fecha_ingreso":"2024-01-10"}`, map[string]string{"id": "99"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rows_affected":0`)
}
