package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prompthub/prompthub/pkg/account"
	apierrors "github.com/prompthub/prompthub/pkg/api/errors"
	"github.com/prompthub/prompthub/pkg/export"
)

// ExportHandler handles prompt library export endpoints
type ExportHandler struct {
	exportService  *export.Service
	accountService *account.Service
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *export.Service, accountService *account.Service) *ExportHandler {
	return &ExportHandler{
		exportService:  exportService,
		accountService: accountService,
	}
}

// Download handles exporting the account's prompt library
// @Summary Export prompt library
// @Description Download the account's full prompt library as a CSV or Excel file
// @Tags Prompts
// @Produce octet-stream
// @Security BearerAuth
// @Param format query string false "Export format: csv or xlsx (default csv)"
// @Success 200 {file} binary "Export file"
// @Failure 400 {object} models.ErrorResponse "Invalid format"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /prompts/export [get]
func (h *ExportHandler) Download(c echo.Context) error {
	acc, err := currentAccount(c, h.accountService)
	if err != nil {
		return accountError(c, err)
	}

	format := c.QueryParam("format")
	if format == "" {
		format = export.FormatCSV
	}
	if format != export.FormatCSV && format != export.FormatXLSX {
		return apierrors.BadRequestError(c, "Format must be csv or xlsx")
	}

	result, err := h.exportService.Export(c.Request().Context(), acc.ID, format)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", "attachment; filename="+result.Filename)
	return c.Blob(http.StatusOK, result.ContentType, result.Data)
}
