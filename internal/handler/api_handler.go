package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hrops/onboarding-admin/internal/domain"
	"github.com/hrops/onboarding-admin/internal/service"
	"github.com/hrops/onboarding-admin/internal/service/serviceutils"
)

// APIHandler exposes the JSON CRUD surface for collaborators.
type APIHandler struct {
	svc *service.CollaboratorService
}

func NewAPIHandler(svc *service.CollaboratorService) *APIHandler {
	return &APIHandler{svc: svc}
}

func (h *APIHandler) CreateHandler(c echo.Context) error {
	var req collaboratorRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	collab, err := req.toDomain()
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", err)
	}

	id, err := h.svc.Create(c.Request().Context(), collab)
	var ve service.ValidationError
	if errors.As(err, &ve) {
		return serviceutils.ResponseError(c, http.StatusBadRequest, ve.Error(), nil)
	}
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Error al crear colaborador", err)
	}

	return serviceutils.ResponseSuccess(c, http.StatusCreated, "Colaborador creado", map[string]int64{"id": id})
}

func (h *APIHandler) ListHandler(c echo.Context) error {
	collaborators, err := h.svc.List(c.Request().Context(), domain.CollaboratorFilter{})
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Error al listar colaboradores", err)
	}
	if collaborators == nil {
		collaborators = []domain.Collaborator{}
	}
	return c.JSON(http.StatusOK, collaborators)
}

func (h *APIHandler) GetHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "ID inválido", err)
	}

	collab, err := h.svc.Get(c.Request().Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		return serviceutils.ResponseError(c, http.StatusNotFound, "No encontrado", nil)
	}
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Error al obtener colaborador", err)
	}

	return c.JSON(http.StatusOK, collab)
}

func (h *APIHandler) UpdateHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "ID inválido", err)
	}

	var req collaboratorRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	collab, err := req.toDomain()
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", err)
	}
	collab.ID = id

	// Full replace, no existence check: a missing id succeeds with zero
	// rows affected.
	rows, err := h.svc.Update(c.Request().Context(), collab)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Error al actualizar colaborador", err)
	}

	return serviceutils.ResponseSuccess(c, http.StatusOK, "Colaborador actualizado", map[string]int64{"rows_affected": rows})
}

func (h *APIHandler) DeleteHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "ID inválido", err)
	}

	rows, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Error al eliminar colaborador", err)
	}

	return serviceutils.ResponseSuccess(c, http.StatusOK, "Colaborador eliminado", map[string]int64{"rows_affected": rows})
}
