package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/locvowork/gestao_rh/internal/domain"
	"github.com/locvowork/gestao_rh/internal/service"
	"github.com/locvowork/gestao_rh/internal/service/serviceutils"
)

type FeriasListResponse struct {
	Ferias     []domain.Ferias   `json:"ferias"`
	Pagination domain.Pagination `json:"pagination"`
}

type FeriasHandler struct {
	svc service.FeriasService
}

func NewFeriasHandler(svc service.FeriasService) *FeriasHandler {
	return &FeriasHandler{svc: svc}
}

// ListHandler handles GET /api/ferias
func (h *FeriasHandler) ListHandler(c echo.Context) error {
	filter := domain.FeriasFilter{
		PageRequest:   pageRequest(c),
		Status:        c.QueryParam("status"),
		ColaboradorID: queryInt64(c, "colaboradorId"),
	}

	page, err := h.svc.List(c.Request().Context(), filter)
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}

	items := page.Items
	if items == nil {
		items = []domain.Ferias{}
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, FeriasListResponse{
		Ferias:     items,
		Pagination: page.Pagination,
	})
}

func (h *FeriasHandler) GetHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}

	ferias, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, ferias)
}

func (h *FeriasHandler) CreateHandler(c echo.Context) error {
	var req service.FeriasInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, err)
	}

	ferias, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusCreated, ferias)
}

// ApproveHandler handles PUT /api/ferias/:id/aprovar
func (h *FeriasHandler) ApproveHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}

	var req service.AprovacaoInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, err)
	}

	ferias, err := h.svc.Approve(c.Request().Context(), id, req)
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, ferias)
}

// RejectHandler handles PUT /api/ferias/:id/reprovar
func (h *FeriasHandler) RejectHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}

	var req service.ReprovacaoInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, err)
	}

	ferias, err := h.svc.Reject(c.Request().Context(), id, req)
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, ferias)
}

func (h *FeriasHandler) DeleteHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, MessageResponse{Message: "Férias excluídas com sucesso"})
}
