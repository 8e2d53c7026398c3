package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/locvowork/gestao_rh/internal/domain"
	"github.com/locvowork/gestao_rh/internal/service"
	"github.com/locvowork/gestao_rh/internal/service/serviceutils"
)

type ColaboradoresResponse struct {
	Colaboradores []domain.Colaborador `json:"colaboradores"`
	Pagination    domain.Pagination    `json:"pagination"`
}

type ColaboradorHandler struct {
	svc service.ColaboradorService
}

func NewColaboradorHandler(svc service.ColaboradorService) *ColaboradorHandler {
	return &ColaboradorHandler{svc: svc}
}

// ListHandler handles GET /api/colaboradores
func (h *ColaboradorHandler) ListHandler(c echo.Context) error {
	filter := domain.ColaboradorFilter{
		PageRequest:  pageRequest(c),
		Search:       c.QueryParam("search"),
		Status:       c.QueryParam("status"),
		Departamento: c.QueryParam("departamento"),
		Novos:        queryBool(c, "novos"),
	}

	page, err := h.svc.List(c.Request().Context(), filter)
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}

	items := page.Items
	if items == nil {
		items = []domain.Colaborador{}
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, ColaboradoresResponse{
		Colaboradores: items,
		Pagination:    page.Pagination,
	})
}

// SearchHandler handles GET /api/colaboradores/busca
func (h *ColaboradorHandler) SearchHandler(c echo.Context) error {
	items, err := h.svc.Search(c.Request().Context(), c.QueryParam("q"), queryInt(c, "limit"))
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, map[string]interface{}{
		"colaboradores": items,
	})
}

func (h *ColaboradorHandler) GetHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}

	colaborador, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, colaborador)
}

func (h *ColaboradorHandler) CreateHandler(c echo.Context) error {
	var req service.ColaboradorInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, err)
	}

	colaborador, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusCreated, colaborador)
}

func (h *ColaboradorHandler) UpdateHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}

	var req service.ColaboradorInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, err)
	}

	colaborador, err := h.svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, colaborador)
}

func (h *ColaboradorHandler) DeleteHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, MessageResponse{Message: "Colaborador excluído com sucesso"})
}
