package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/locvowork/gestao_rh/internal/domain"
	"github.com/locvowork/gestao_rh/internal/service/serviceutils"
)

const (
	msgIDInvalido    = "ID inválido"
	msgDadosInvalido = "Dados inválidos"
)

var errInvalidID = errors.New("invalid id")

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// queryInt returns 0 for a missing or malformed parameter.
func queryInt(c echo.Context, name string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(c.QueryParam(name)))
	return n
}

func queryInt64(c echo.Context, name string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(c.QueryParam(name)), 10, 64)
	return n
}

func queryBool(c echo.Context, name string) bool {
	b, _ := strconv.ParseBool(c.QueryParam(name))
	return b
}

func pageRequest(c echo.Context) domain.PageRequest {
	return domain.PageRequest{Page: queryInt(c, "page"), Limit: queryInt(c, "limit")}
}

func invalidID(c echo.Context, err error) error {
	return serviceutils.ResponseError(c, http.StatusBadRequest, msgIDInvalido, err)
}

func invalidBody(c echo.Context, err error) error {
	return serviceutils.ResponseError(c, http.StatusBadRequest, msgDadosInvalido, err)
}

// MessageResponse acknowledges actions that return no record.
type MessageResponse struct {
	Message string `json:"message"`
}
