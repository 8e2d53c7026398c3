package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/locvowork/gestao_rh/internal/service"
	"github.com/locvowork/gestao_rh/internal/service/serviceutils"
)

// CadastroHandler serves the departamento and cargo lookup tables.
type CadastroHandler struct {
	svc service.CadastroService
}

func NewCadastroHandler(svc service.CadastroService) *CadastroHandler {
	return &CadastroHandler{svc: svc}
}

// ==================== Departamentos ====================

func (h *CadastroHandler) ListDepartamentosHandler(c echo.Context) error {
	items, err := h.svc.ListDepartamentos(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, map[string]interface{}{"departamentos": items})
}

func (h *CadastroHandler) GetDepartamentoHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}

	d, err := h.svc.GetDepartamento(c.Request().Context(), id)
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, d)
}

func (h *CadastroHandler) CreateDepartamentoHandler(c echo.Context) error {
	var req service.DepartamentoInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, err)
	}

	d, err := h.svc.CreateDepartamento(c.Request().Context(), req)
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusCreated, d)
}

func (h *CadastroHandler) UpdateDepartamentoHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}

	var req service.DepartamentoInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, err)
	}

	d, err := h.svc.UpdateDepartamento(c.Request().Context(), id, req)
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, d)
}

func (h *CadastroHandler) DeleteDepartamentoHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}

	if err := h.svc.DeleteDepartamento(c.Request().Context(), id); err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, MessageResponse{Message: "Departamento excluído com sucesso"})
}

// ==================== Cargos ====================

func (h *CadastroHandler) ListCargosHandler(c echo.Context) error {
	items, err := h.svc.ListCargos(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, map[string]interface{}{"cargos": items})
}

func (h *CadastroHandler) GetCargoHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}

	cargo, err := h.svc.GetCargo(c.Request().Context(), id)
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, cargo)
}

func (h *CadastroHandler) CreateCargoHandler(c echo.Context) error {
	var req service.CargoInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, err)
	}

	cargo, err := h.svc.CreateCargo(c.Request().Context(), req)
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusCreated, cargo)
}

func (h *CadastroHandler) UpdateCargoHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}

	var req service.CargoInput
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, err)
	}

	cargo, err := h.svc.UpdateCargo(c.Request().Context(), id, req)
	if err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, cargo)
}

func (h *CadastroHandler) DeleteCargoHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}

	if err := h.svc.DeleteCargo(c.Request().Context(), id); err != nil {
		return serviceutils.ResponseServiceError(c, err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, MessageResponse{Message: "Cargo excluído com sucesso"})
}
