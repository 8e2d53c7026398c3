package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/locvowork/gestao_rh/internal/domain"
)

// DepartamentoRepository handles all database operations for Departamento
type DepartamentoRepository struct {
	db *sql.DB
}

var _ domain.DepartamentoRepository = (*DepartamentoRepository)(nil)

// NewDepartamentoRepository creates a new instance of DepartamentoRepository
func NewDepartamentoRepository(db *sql.DB) *DepartamentoRepository {
	return &DepartamentoRepository{db: db}
}

// Create inserts a new department
func (r *DepartamentoRepository) Create(ctx context.Context, d *domain.Departamento) error {
	query := `
		INSERT INTO departamentos (nome, descricao)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query, d.Nome, d.Descricao).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	return translateError(err, "create departamento")
}

// GetByID retrieves a department by ID
func (r *DepartamentoRepository) GetByID(ctx context.Context, id int64) (*domain.Departamento, error) {
	query := `
		SELECT id, nome, descricao, created_at, updated_at
		FROM departamentos
		WHERE id = $1
	`
	return r.getOne(ctx, query, id)
}

// GetByNome retrieves a department by its unique name
func (r *DepartamentoRepository) GetByNome(ctx context.Context, nome string) (*domain.Departamento, error) {
	query := `
		SELECT id, nome, descricao, created_at, updated_at
		FROM departamentos
		WHERE nome = $1
	`
	return r.getOne(ctx, query, nome)
}

func (r *DepartamentoRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.Departamento, error) {
	var d domain.Departamento
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&d.ID, &d.Nome, &d.Descricao, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, translateError(err, "get departamento")
	}
	return &d, nil
}

// Update rewrites nome and descricao
func (r *DepartamentoRepository) Update(ctx context.Context, d *domain.Departamento) error {
	query := `
		UPDATE departamentos
		SET nome = $1, descricao = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query, d.Nome, d.Descricao, d.ID).Scan(&d.UpdatedAt)
	return translateError(err, "update departamento")
}

// Delete removes a department
func (r *DepartamentoRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM departamentos WHERE id = $1`, id)
	if err != nil {
		return translateError(err, "delete departamento")
	}
	return requireAffected(res, "delete departamento")
}

// List retrieves all departments ordered by name
func (r *DepartamentoRepository) List(ctx context.Context) ([]domain.Departamento, error) {
	query := `
		SELECT id, nome, descricao, created_at, updated_at
		FROM departamentos
		ORDER BY nome
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departamentos: %w", err)
	}
	defer rows.Close()

	departamentos := []domain.Departamento{}
	for rows.Next() {
		var d domain.Departamento
		if err := rows.Scan(&d.ID, &d.Nome, &d.Descricao, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan departamento: %w", err)
		}
		departamentos = append(departamentos, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	return departamentos, nil
}
