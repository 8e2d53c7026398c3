package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/locvowork/gestao_rh/internal/domain"
	"github.com/locvowork/gestao_rh/internal/repository/builder"
)

const colaboradoresTable = "colaboradores"

// writable columns, in the order colaboradorValues returns them
var colaboradorWritable = []string{
	"nome", "cpf", "rg", "orgao_emissor", "data_nascimento", "genero", "estado_civil",
	"nacionalidade", "email", "telefone", "celular", "telefone_emergencia", "cep",
	"logradouro", "numero", "complemento", "bairro", "cidade", "estado", "cargo",
	"departamento", "data_admissao", "tipo_contrato", "salario", "status", "pis", "ctps",
	"titulo_eleitor", "reservista", "observacoes",
}

var colaboradorColumns = append(append([]string{"id"}, colaboradorWritable...), "created_at", "updated_at")

func colaboradorValues(c *domain.Colaborador) []interface{} {
	return []interface{}{
		c.Nome, c.CPF, c.RG, c.OrgaoEmissor, c.DataNascimento, c.Genero, c.EstadoCivil,
		c.Nacionalidade, c.Email, c.Telefone, c.Celular, c.TelefoneEmergencia, c.CEP,
		c.Logradouro, c.Numero, c.Complemento, c.Bairro, c.Cidade, c.Estado, c.Cargo,
		c.Departamento, c.DataAdmissao, c.TipoContrato, c.Salario, c.Status, c.PIS, c.CTPS,
		c.TituloEleitor, c.Reservista, c.Observacoes,
	}
}

func scanColaborador(row rowScanner) (*domain.Colaborador, error) {
	var c domain.Colaborador
	err := row.Scan(
		&c.ID, &c.Nome, &c.CPF, &c.RG, &c.OrgaoEmissor, &c.DataNascimento, &c.Genero, &c.EstadoCivil,
		&c.Nacionalidade, &c.Email, &c.Telefone, &c.Celular, &c.TelefoneEmergencia, &c.CEP,
		&c.Logradouro, &c.Numero, &c.Complemento, &c.Bairro, &c.Cidade, &c.Estado, &c.Cargo,
		&c.Departamento, &c.DataAdmissao, &c.TipoContrato, &c.Salario, &c.Status, &c.PIS, &c.CTPS,
		&c.TituloEleitor, &c.Reservista, &c.Observacoes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

type colaboradorRepository struct {
	db *sql.DB
}

// NewColaboradorRepository creates a new instance of ColaboradorRepository
func NewColaboradorRepository(db *sql.DB) domain.ColaboradorRepository {
	return &colaboradorRepository{db: db}
}

func (r *colaboradorRepository) Create(ctx context.Context, c *domain.Colaborador) error {
	b := builder.NewSQLBuilder()
	query, args := b.Insert(colaboradoresTable, colaboradorWritable...).
		Values(colaboradorValues(c)...).
		Returning("id", "created_at", "updated_at").
		Build()

	err := r.db.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return translateError(err, "insert colaborador")
}

func (r *colaboradorRepository) GetByID(ctx context.Context, id int64) (*domain.Colaborador, error) {
	return r.getBy(ctx, "id = ?", id)
}

func (r *colaboradorRepository) GetByCPF(ctx context.Context, cpf string) (*domain.Colaborador, error) {
	return r.getBy(ctx, "cpf = ?", cpf)
}

func (r *colaboradorRepository) GetByEmail(ctx context.Context, email string) (*domain.Colaborador, error) {
	return r.getBy(ctx, "email = ?", email)
}

func (r *colaboradorRepository) getBy(ctx context.Context, cond string, arg interface{}) (*domain.Colaborador, error) {
	b := builder.NewSQLBuilder()
	query, args := b.Select(colaboradorColumns...).
		From(colaboradoresTable).
		Where(cond, arg).
		Build()

	c, err := scanColaborador(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, "get colaborador")
	}
	return c, nil
}

func (r *colaboradorRepository) Update(ctx context.Context, c *domain.Colaborador) error {
	b := builder.NewSQLBuilder()
	b.Update(colaboradoresTable)
	values := colaboradorValues(c)
	for i, col := range colaboradorWritable {
		b.Set(col, values[i])
	}
	query, args := b.Set("updated_at", time.Now().UTC()).
		Where("id = ?", c.ID).
		Returning("updated_at").
		Build()

	err := r.db.QueryRowContext(ctx, query, args...).Scan(&c.UpdatedAt)
	return translateError(err, "update colaborador")
}

func (r *colaboradorRepository) Delete(ctx context.Context, id int64) error {
	b := builder.NewSQLBuilder()
	query, args := b.Delete(colaboradoresTable).
		Where("id = ?", id).
		Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "delete colaborador")
	}
	return requireAffected(res, "delete colaborador")
}

func applyColaboradorFilter(b *builder.SQLBuilder, filter domain.ColaboradorFilter) {
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		b.WhereGroup(func(g *builder.SQLBuilder) *builder.SQLBuilder {
			return g.
				Or("nome ILIKE ?", pattern).
				Or("email ILIKE ?", pattern).
				Or("cargo ILIKE ?", pattern)
		})
	}
	if filter.Status != "" {
		b.Where("status = ?", filter.Status)
	}
	if filter.Departamento != "" {
		b.Where("departamento = ?", filter.Departamento)
	}
	if filter.CriadoDesde != nil {
		b.Where("created_at >= ?", *filter.CriadoDesde)
	}
}

func (r *colaboradorRepository) List(ctx context.Context, filter domain.ColaboradorFilter) ([]domain.Colaborador, error) {
	page := filter.PageRequest.Normalize()
	b := builder.NewSQLBuilder()
	b.Select(colaboradorColumns...).
		From(colaboradoresTable).
		OrderBy("nome ASC").
		OrderBy("id ASC").
		Limit(page.Limit).
		Offset(page.Offset())
	applyColaboradorFilter(b, filter)

	query, args := b.Build()
	return r.query(ctx, query, args)
}

func (r *colaboradorRepository) Count(ctx context.Context, filter domain.ColaboradorFilter) (int, error) {
	b := builder.NewSQLBuilder()
	b.Select("COUNT(*)").From(colaboradoresTable)
	applyColaboradorFilter(b, filter)

	query, args := b.Build()
	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count colaboradores: %w", err)
	}
	return count, nil
}

func (r *colaboradorRepository) LatestCreated(ctx context.Context, limit int) ([]domain.Colaborador, error) {
	return r.latest(ctx, "created_at DESC", limit)
}

func (r *colaboradorRepository) LatestUpdated(ctx context.Context, limit int) ([]domain.Colaborador, error) {
	return r.latest(ctx, "updated_at DESC", limit)
}

func (r *colaboradorRepository) latest(ctx context.Context, order string, limit int) ([]domain.Colaborador, error) {
	b := builder.NewSQLBuilder()
	query, args := b.Select(colaboradorColumns...).
		From(colaboradoresTable).
		OrderBy(order).
		OrderBy("id DESC").
		Limit(limit).
		Build()
	return r.query(ctx, query, args)
}

func (r *colaboradorRepository) query(ctx context.Context, query string, args []interface{}) ([]domain.Colaborador, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list colaboradores: %w", err)
	}
	defer rows.Close()

	colaboradores := []domain.Colaborador{}
	for rows.Next() {
		c, err := scanColaborador(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan colaborador: %w", err)
		}
		colaboradores = append(colaboradores, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return colaboradores, nil
}
