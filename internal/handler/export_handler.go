package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"github.com/hrops/onboarding-admin/internal/dates"
	"github.com/hrops/onboarding-admin/internal/domain"
	"github.com/hrops/onboarding-admin/internal/logger"
)

// ExportCollaborators streams the current roster as an .xlsx download.
// The dashboard filters do not apply; the export is always the full list.
func (h *DashboardHandler) ExportCollaborators(c echo.Context) error {
	ctx := c.Request().Context()

	collaborators, err := h.colabs.List(ctx, domain.CollaboratorFilter{})
	if err != nil {
		logger.ErrorLog(ctx, "Error exportando colaboradores", err)
		return c.String(http.StatusInternalServerError, "Error exportando colaboradores")
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Colaboradores"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Nombre", "Correo", "Fecha ingreso", "Onboarding bienvenida", "Onboarding técnico", "Fecha onboarding técnico"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, collab := range collaborators {
		values := []interface{}{
			collab.ID,
			collab.Nombre,
			collab.Correo,
			dates.Editable(collab.FechaIngreso),
			flagLabel(collab.OnboardingBienvenida),
			flagLabel(collab.OnboardingTecnico),
			dates.EditablePtr(collab.FechaOnboardingTecnico),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	data, err := f.WriteToBuffer()
	if err != nil {
		logger.ErrorLog(ctx, "Error generando archivo de exportación", err)
		return c.String(http.StatusInternalServerError, "Error exportando colaboradores")
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="colaboradores_%d.xlsx"`, len(collaborators)))

	_, err = c.Response().Write(data.Bytes())
	return err
}

func flagLabel(b bool) string {
	if b {
		return "Completado"
	}
	return "Pendiente"
}
