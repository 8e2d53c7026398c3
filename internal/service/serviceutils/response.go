package serviceutils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/locvowork/gestao_rh/internal/domain"
	"github.com/locvowork/gestao_rh/internal/logger"
)

const MsgErroInterno = "Erro interno do servidor"

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ResponseError writes message with the given status. err, when set, is logged
// but never shown to the client.
func ResponseError(c echo.Context, status int, message string, err error) error {
	if err != nil {
		ctx := c.Request().Context()
		if status >= http.StatusInternalServerError {
			logger.ErrorLog(ctx, err, "%s %s: %s", c.Request().Method, c.Path(), message)
		} else {
			logger.DebugLog(ctx, "%s %s: %s: %v", c.Request().Method, c.Path(), message, err)
		}
	}
	return c.JSON(status, ErrorResponse{Error: message})
}

// ResponseServiceError maps a service error to its HTTP status.
// Classified errors carry their own message; anything else is a 500.
func ResponseServiceError(c echo.Context, err error) error {
	switch domain.KindOf(err) {
	case domain.KindValidation, domain.KindConflict:
		return ResponseError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.KindNotFound:
		return ResponseError(c, http.StatusNotFound, err.Error(), nil)
	default:
		return ResponseError(c, http.StatusInternalServerError, MsgErroInterno, err)
	}
}

// ResponseSuccess writes data as the JSON body.
func ResponseSuccess(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, data)
}

// ResponseFile sends an in-memory file as an attachment.
func ResponseFile(c echo.Context, contentType, filename string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, contentType, data)
}
