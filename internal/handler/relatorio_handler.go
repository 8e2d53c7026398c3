package handler

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/locvowork/gestao_rh/internal/domain"
	"github.com/locvowork/gestao_rh/internal/service"
	"github.com/locvowork/gestao_rh/internal/service/serviceutils"
	"github.com/locvowork/gestao_rh/pkg/simpleexcel"
)

// RelatorioHandler streams XLSX exports of the list endpoints.
type RelatorioHandler struct {
	svc service.RelatorioService
}

func NewRelatorioHandler(svc service.RelatorioService) *RelatorioHandler {
	return &RelatorioHandler{svc: svc}
}

func reportFilename(name string) string {
	return fmt.Sprintf("%s_%s.xlsx", name, time.Now().Format("20060102"))
}

func (h *RelatorioHandler) ColaboradoresHandler(c echo.Context) error {
	data, err := h.svc.ExportColaboradores(c.Request().Context(), domain.ColaboradorFilter{
		Search:       c.QueryParam("search"),
		Status:       c.QueryParam("status"),
		Departamento: c.QueryParam("departamento"),
		Novos:        queryBool(c, "novos"),
	})
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseFile(c, simpleexcel.ContentType, reportFilename("colaboradores"), data)
}

func (h *RelatorioHandler) FeriasHandler(c echo.Context) error {
	data, err := h.svc.ExportFerias(c.Request().Context(), domain.FeriasFilter{
		Status:        c.QueryParam("status"),
		ColaboradorID: queryInt64(c, "colaboradorId"),
	})
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseFile(c, simpleexcel.ContentType, reportFilename("ferias"), data)
}

func (h *RelatorioHandler) DocumentosHandler(c echo.Context) error {
	data, err := h.svc.ExportDocumentos(c.Request().Context(), documentoFilter(c))
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseFile(c, simpleexcel.ContentType, reportFilename("documentos"), data)
}
