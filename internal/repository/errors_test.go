package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/locvowork/gestao_rh/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, translateError(nil, "insert colaborador"))
	})

	t.Run("no rows is not found", func(t *testing.T) {
		err := translateError(fmt.Errorf("scan: %w", sql.ErrNoRows), "get colaborador")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unique violation uses constraint message", func(t *testing.T) {
		err := translateError(&pq.Error{Code: pqUniqueViolation, Constraint: "colaboradores_email_key"}, "insert colaborador")
		assert.True(t, domain.IsKind(err, domain.KindConflict))
		assert.EqualError(t, err, "E-mail já cadastrado")
	})

	t.Run("unknown unique constraint", func(t *testing.T) {
		err := translateError(&pq.Error{Code: pqUniqueViolation, Constraint: "outra_key"}, "insert")
		assert.EqualError(t, err, "Registro duplicado")
	})

	t.Run("foreign key violation", func(t *testing.T) {
		err := translateError(&pq.Error{Code: pqForeignKeyViolation}, "delete colaborador")
		assert.True(t, domain.IsKind(err, domain.KindConflict))
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := translateError(cause, "update documento")
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, domain.ErrorKind(0), domain.KindOf(err))
		assert.Contains(t, err.Error(), "failed to update documento")
	})
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%ana%", likePattern("ana"))
	assert.Equal(t, `%100\%\_a\\b%`, likePattern(`100%_a\b`))
}
