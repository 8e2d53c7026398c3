package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/locvowork/gestao_rh/internal/domain"
	"github.com/locvowork/gestao_rh/internal/service"
	"github.com/locvowork/gestao_rh/internal/service/serviceutils"
)

type DocumentosResponse struct {
	Documentos []domain.Documento `json:"documentos"`
	Pagination domain.Pagination  `json:"pagination"`
}

type DocumentoHandler struct {
	svc service.DocumentoService
}

func NewDocumentoHandler(svc service.DocumentoService) *DocumentoHandler {
	return &DocumentoHandler{svc: svc}
}

func documentoFilter(c echo.Context) domain.DocumentoFilter {
	return domain.DocumentoFilter{
		PageRequest:   pageRequest(c),
		Search:        c.QueryParam("search"),
		Tipo:          c.QueryParam("tipo"),
		Status:        c.QueryParam("status"),
		ColaboradorID: queryInt64(c, "colaboradorId"),
	}
}

// ListHandler handles GET /api/documentos
func (h *DocumentoHandler) ListHandler(c echo.Context) error {
	page, err := h.svc.List(c.Request().Context(), documentoFilter(c))
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}

	items := page.Items
	if items == nil {
		items = []domain.Documento{}
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, DocumentosResponse{
		Documentos: items,
		Pagination: page.Pagination,
	})
}

func (h *DocumentoHandler) GetHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}

	documento, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, documento)
}

func (h *DocumentoHandler) CreateHandler(c echo.Context) error {
	var req service.DocumentoInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, err)
	}

	documento, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusCreated, documento)
}

// UpdateHandler handles PUT /api/documentos/:id. Only the fields present in the body change.
func (h *DocumentoHandler) UpdateHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}

	var req service.DocumentoPatch
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, err)
	}

	documento, err := h.svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, documento)
}

// RenewHandler handles POST /api/documentos/:id/renovar
func (h *DocumentoHandler) RenewHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}

	documento, err := h.svc.Renew(c.Request().Context(), id)
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, documento)
}

func (h *DocumentoHandler) DeleteHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, MessageResponse{Message: "Documento excluído com sucesso"})
}
