package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/locvowork/gestao_rh/internal/domain"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

var constraintMessages = map[string]string{
	"colaboradores_cpf_key":   "CPF já cadastrado",
	"colaboradores_email_key": "E-mail já cadastrado",
	"departamentos_nome_key":  "Departamento já cadastrado",
	"cargos_nome_key":         "Cargo já cadastrado",
}

// translateError maps driver errors onto the domain taxonomy and wraps the rest.
func translateError(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			if msg, ok := constraintMessages[pqErr.Constraint]; ok {
				return domain.NewConflictError("%s", msg)
			}
			return domain.NewConflictError("Registro duplicado")
		case pqForeignKeyViolation:
			return domain.NewConflictError("Registro possui vínculos e não pode ser alterado")
		}
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// requireAffected turns a zero-row write into domain.ErrNotFound.
func requireAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a substring pattern with LIKE wildcards in s escaped.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// NewRepositories returns the PostgreSQL implementation of every repository.
func NewRepositories(db *sql.DB) domain.Repositories {
	return domain.Repositories{
		Colaboradores: NewColaboradorRepository(db),
		Ferias:        NewFeriasRepository(db),
		Documentos:    NewDocumentoRepository(db),
		Departamentos: NewDepartamentoRepository(db),
		Cargos:        NewCargoRepository(db),
	}
}
