package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/locvowork/gestao_rh/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json names so messages match the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput checks the struct tags and reports the first failing field
// in declaration order.
func validateInput(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("failed to validate input: %w", err)
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return domain.NewValidationError("Campo obrigatório: %s", fe.Field())
	case "oneof":
		return domain.NewValidationError("Valor inválido para %s: use um de [%s]", fe.Field(), fe.Param())
	default:
		return domain.NewValidationError("Campo inválido: %s", fe.Field())
	}
}

// FlexInt accepts a JSON number or a numeric string, as HTML forms send ids.
// Blank strings and null decode to zero.
type FlexInt int64

func (n *FlexInt) UnmarshalJSON(b []byte) error {
	s, err := flexString(b)
	if err != nil || s == "" {
		*n = 0
		return err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", s, err)
	}
	*n = FlexInt(v)
	return nil
}

// FlexFloat is FlexInt for decimals such as salario.
type FlexFloat float64

func (n *FlexFloat) UnmarshalJSON(b []byte) error {
	s, err := flexString(b)
	if err != nil || s == "" {
		*n = 0
		return err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", s, err)
	}
	*n = FlexFloat(v)
	return nil
}

func flexString(b []byte) (string, error) {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return "", nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	return string(b), nil
}

// notFound turns a repository miss into a client-facing NotFoundError.
func notFound(err error, msg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewNotFoundError("%s", msg)
	}
	return err
}
