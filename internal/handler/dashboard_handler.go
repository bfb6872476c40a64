package handler

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/hrops/onboarding-admin/internal/dates"
	"github.com/hrops/onboarding-admin/internal/domain"
	"github.com/hrops/onboarding-admin/internal/logger"
	"github.com/hrops/onboarding-admin/internal/service"
)

// DashboardHandler renders the combined collaborators/calendar/alerts page
// and handles the form-driven mutations behind it.
type DashboardHandler struct {
	colabs   *service.CollaboratorService
	sessions domain.SessionRepository
	alerts   *service.AlertService
}

func NewDashboardHandler(colabs *service.CollaboratorService, sessions domain.SessionRepository, alerts *service.AlertService) *DashboardHandler {
	return &DashboardHandler{colabs: colabs, sessions: sessions, alerts: alerts}
}

type collaboratorView struct {
	domain.Collaborator
	FechaIngresoDisplay           string
	FechaIngresoInput             string
	FechaOnboardingTecnicoDisplay string
	FechaOnboardingTecnicoInput   string
}

type sessionView struct {
	domain.Session
	FechaInicioDisplay string
	FechaFinDisplay    string
}

type dashboardData struct {
	Colaboradores []collaboratorView
	Sesiones      []sessionView
	Alertas       []sessionView

	TieneFiltroTipo   bool
	EsBienvenida      bool
	EsTecnico         bool
	TieneFiltroEstado bool
	EstadoCompletado  bool
	EstadoPendiente   bool
	FiltroNombre      string
	FiltroCorreo      string
	FiltroDesde       string
	FiltroHasta       string
}

// Home redirects to the dashboard.
func (h *DashboardHandler) Home(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/colaboradores")
}

// Dashboard builds the combined page. The three reads are mutually
// independent, so they run concurrently and join; there is no snapshot
// isolation across them.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	colabFilter := domain.CollaboratorFilter{
		TipoOnboarding: c.QueryParam("tipoOnboarding"),
		Estado:         c.QueryParam("estado"),
		Nombre:         c.QueryParam("nombre"),
		Correo:         c.QueryParam("correo"),
	}
	sessionFilter := domain.SessionFilter{
		Desde: c.QueryParam("desde"),
		Hasta: c.QueryParam("hasta"),
	}

	var (
		wg            sync.WaitGroup
		collaborators []domain.Collaborator
		sessions      []domain.Session
		alertas       []domain.Session
		colabErr      error
		sessionErr    error
		alertErr      error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		collaborators, colabErr = h.colabs.List(ctx, colabFilter)
	}()
	go func() {
		defer wg.Done()
		sessions, sessionErr = h.sessions.List(ctx, sessionFilter)
	}()
	go func() {
		defer wg.Done()
		alertas, alertErr = h.alerts.Preview(ctx)
	}()
	wg.Wait()

	switch {
	case colabErr != nil:
		logger.ErrorLog(ctx, "Error cargando colaboradores", colabErr)
		return c.String(http.StatusInternalServerError, "Error cargando colaboradores")
	case sessionErr != nil:
		logger.ErrorLog(ctx, "Error cargando calendario", sessionErr)
		return c.String(http.StatusInternalServerError, "Error cargando calendario")
	case alertErr != nil:
		logger.ErrorLog(ctx, "Error consultando alertas", alertErr)
		return c.String(http.StatusInternalServerError, "Error consultando alertas")
	}

	if len(alertas) > 0 {
		logger.InfoLog(ctx, "Sesiones que generarían alerta una semana antes: %d", len(alertas))
	}

	data := dashboardData{
		Colaboradores: formatCollaborators(collaborators),
		Sesiones:      formatSessions(sessions),
		Alertas:       formatSessions(alertas),

		TieneFiltroTipo:   colabFilter.TipoOnboarding != "",
		EsBienvenida:      colabFilter.TipoOnboarding == domain.TipoBienvenida,
		EsTecnico:         colabFilter.TipoOnboarding == domain.TipoTecnico,
		TieneFiltroEstado: colabFilter.Estado != "",
		EstadoCompletado:  colabFilter.Estado == domain.EstadoCompletado,
		EstadoPendiente:   colabFilter.Estado == domain.EstadoPendiente,
		FiltroNombre:      colabFilter.Nombre,
		FiltroCorreo:      colabFilter.Correo,
		FiltroDesde:       sessionFilter.Desde,
		FiltroHasta:       sessionFilter.Hasta,
	}

	return c.Render(http.StatusOK, "colaboradores.html", data)
}

// CreateCollaborator handles the dashboard creation form. Flags start
// false; the technical onboarding date is optional.
func (h *DashboardHandler) CreateCollaborator(c echo.Context) error {
	ctx := c.Request().Context()

	ingreso, err := parseDate(c.FormValue("fecha_ingreso"))
	if err != nil {
		return c.String(http.StatusBadRequest, "Fecha de ingreso no válida")
	}
	tecnico, err := parseOptionalDate(c.FormValue("fecha_onboarding_tecnico"))
	if err != nil {
		return c.String(http.StatusBadRequest, "Fecha de onboarding técnico no válida")
	}

	_, err = h.colabs.Create(ctx, &domain.Collaborator{
		Nombre:                 c.FormValue("nombre"),
		Correo:                 c.FormValue("correo"),
		FechaIngreso:           ingreso,
		FechaOnboardingTecnico: tecnico,
	})
	var ve service.ValidationError
	if errors.As(err, &ve) {
		return c.String(http.StatusBadRequest, ve.Error())
	}
	if err != nil {
		logger.ErrorLog(ctx, "Error al crear colaborador", err)
		return c.String(http.StatusInternalServerError, "Error al crear colaborador")
	}

	return c.Redirect(http.StatusFound, "/colaboradores")
}

// MarkOnboarding sets one completion flag from the inline form.
func (h *DashboardHandler) MarkOnboarding(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.String(http.StatusBadRequest, "ID inválido")
	}

	err = h.colabs.MarkOnboarding(ctx, id, c.FormValue("tipo"))
	var ve service.ValidationError
	if errors.As(err, &ve) {
		return c.String(http.StatusBadRequest, ve.Error())
	}
	if err != nil {
		logger.ErrorLog(ctx, "Error al actualizar estado de onboarding", err)
		return c.String(http.StatusInternalServerError, "Error al actualizar estado")
	}

	return c.Redirect(http.StatusFound, "/colaboradores")
}

// UpdateCollaborator replaces the full record from the edit form. The
// flag checkboxes follow form semantics: present means checked.
func (h *DashboardHandler) UpdateCollaborator(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.String(http.StatusBadRequest, "ID inválido")
	}

	ingreso, err := parseDate(c.FormValue("fecha_ingreso"))
	if err != nil {
		return c.String(http.StatusBadRequest, "Fecha de ingreso no válida")
	}
	tecnico, err := parseOptionalDate(c.FormValue("fecha_onboarding_tecnico"))
	if err != nil {
		return c.String(http.StatusBadRequest, "Fecha de onboarding técnico no válida")
	}

	_, err = h.colabs.Update(ctx, &domain.Collaborator{
		ID:                     id,
		Nombre:                 c.FormValue("nombre"),
		Correo:                 c.FormValue("correo"),
		FechaIngreso:           ingreso,
		OnboardingBienvenida:   c.FormValue("onboarding_bienvenida") != "",
		OnboardingTecnico:      c.FormValue("onboarding_tecnico") != "",
		FechaOnboardingTecnico: tecnico,
	})
	if err != nil {
		logger.ErrorLog(ctx, "Error al actualizar colaborador", err)
		return c.String(http.StatusInternalServerError, "Error al actualizar colaborador")
	}

	return c.Redirect(http.StatusFound, "/colaboradores")
}

// CreateSession adds a calendar entry from the dashboard form. Sessions
// have no update or delete surface after this point.
func (h *DashboardHandler) CreateSession(c echo.Context) error {
	ctx := c.Request().Context()

	inicio, err := parseDate(c.FormValue("fecha_inicio"))
	if err != nil {
		return c.String(http.StatusBadRequest, "Fecha de inicio no válida")
	}
	fin, err := parseDate(c.FormValue("fecha_fin"))
	if err != nil {
		return c.String(http.StatusBadRequest, "Fecha de fin no válida")
	}

	_, err = h.sessions.Create(ctx, &domain.Session{
		Nombre:            c.FormValue("nombre"),
		Capitulo:          c.FormValue("capitulo"),
		FechaInicio:       inicio,
		FechaFin:          fin,
		ResponsableNombre: c.FormValue("responsable_nombre"),
		ResponsableCorreo: c.FormValue("responsable_correo"),
	})
	if err != nil {
		logger.ErrorLog(ctx, "Error al crear sesión de onboarding técnico", err)
		return c.String(http.StatusInternalServerError, "Error al crear sesión de onboarding técnico")
	}

	return c.Redirect(http.StatusFound, "/colaboradores")
}

// SendAlerts triggers the bulk reminder workflow.
func (h *DashboardHandler) SendAlerts(c echo.Context) error {
	if err := h.alerts.SendAll(c.Request().Context()); err != nil {
		logger.ErrorLog(c.Request().Context(), "Error consultando alertas para envío", err)
		return c.String(http.StatusInternalServerError, "Error consultando alertas para envío")
	}
	return c.Redirect(http.StatusFound, "/colaboradores#alertas")
}

// SimulateAlerts lists the currently eligible sessions without sending.
func (h *DashboardHandler) SimulateAlerts(c echo.Context) error {
	ctx := c.Request().Context()

	eligible, err := h.alerts.Preview(ctx)
	if err != nil {
		logger.ErrorLog(ctx, "Error consultando alertas", err)
		return c.String(http.StatusInternalServerError, "Error consultando alertas")
	}

	logger.InfoLog(ctx, "Estas sesiones deberían generar alerta: %d", len(eligible))
	return c.Render(http.StatusOK, "alertas.html", map[string]interface{}{
		"Sesiones": formatSessions(eligible),
	})
}

// SendOneAlert triggers the reminder for one selected session.
func (h *DashboardHandler) SendOneAlert(c echo.Context) error {
	raw := c.FormValue("id")
	if raw == "" {
		return c.String(http.StatusBadRequest, "ID de sesión requerido")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return c.String(http.StatusBadRequest, "ID de sesión no válido")
	}

	if err := h.alerts.SendOne(c.Request().Context(), id); err != nil {
		logger.ErrorLog(c.Request().Context(), "Error consultando sesión para envío manual", err)
		return c.String(http.StatusInternalServerError, "Error consultando sesión para envío manual")
	}

	return c.Redirect(http.StatusFound, "/colaboradores#alertas")
}

func formatCollaborators(in []domain.Collaborator) []collaboratorView {
	out := make([]collaboratorView, 0, len(in))
	for _, c := range in {
		out = append(out, collaboratorView{
			Collaborator:                  c,
			FechaIngresoDisplay:           dates.Display(c.FechaIngreso),
			FechaIngresoInput:             dates.Editable(c.FechaIngreso),
			FechaOnboardingTecnicoDisplay: dates.DisplayPtr(c.FechaOnboardingTecnico),
			FechaOnboardingTecnicoInput:   dates.EditablePtr(c.FechaOnboardingTecnico),
		})
	}
	return out
}

func formatSessions(in []domain.Session) []sessionView {
	out := make([]sessionView, 0, len(in))
	for _, s := range in {
		out = append(out, sessionView{
			Session:            s,
			FechaInicioDisplay: dates.Display(s.FechaInicio),
			FechaFinDisplay:    dates.Display(s.FechaFin),
		})
	}
	return out
}
