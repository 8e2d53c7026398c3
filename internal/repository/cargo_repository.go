package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/locvowork/gestao_rh/internal/domain"
)

// CargoRepository handles all database operations for Cargo
type CargoRepository struct {
	db *sql.DB
}

var _ domain.CargoRepository = (*CargoRepository)(nil)

// NewCargoRepository creates a new instance of CargoRepository
func NewCargoRepository(db *sql.DB) *CargoRepository {
	return &CargoRepository{db: db}
}

// Create inserts a new job title
func (r *CargoRepository) Create(ctx context.Context, c *domain.Cargo) error {
	query := `
		INSERT INTO cargos (nome, descricao, nivel)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query, c.Nome, c.Descricao, c.Nivel).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return translateError(err, "create cargo")
}

// GetByID retrieves a job title by ID
func (r *CargoRepository) GetByID(ctx context.Context, id int64) (*domain.Cargo, error) {
	query := `
		SELECT id, nome, descricao, nivel, created_at, updated_at
		FROM cargos
		WHERE id = $1
	`
	return r.getOne(ctx, query, id)
}

// GetByNome retrieves a job title by its unique name
func (r *CargoRepository) GetByNome(ctx context.Context, nome string) (*domain.Cargo, error) {
	query := `
		SELECT id, nome, descricao, nivel, created_at, updated_at
		FROM cargos
		WHERE nome = $1
	`
	return r.getOne(ctx, query, nome)
}

func (r *CargoRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.Cargo, error) {
	var c domain.Cargo
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&c.ID, &c.Nome, &c.Descricao, &c.Nivel, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, translateError(err, "get cargo")
	}
	return &c, nil
}

func (r *CargoRepository) Update(ctx context.Context, c *domain.Cargo) error {
	query := `
		UPDATE cargos
		SET nome = $1, descricao = $2, nivel = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query, c.Nome, c.Descricao, c.Nivel, c.ID).Scan(&c.UpdatedAt)
	return translateError(err, "update cargo")
}

func (r *CargoRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cargos WHERE id = $1`, id)
	if err != nil {
		return translateError(err, "delete cargo")
	}
	return requireAffected(res, "delete cargo")
}

// List retrieves all job titles ordered by name
func (r *CargoRepository) List(ctx context.Context) ([]domain.Cargo, error) {
	query := `
		SELECT id, nome, descricao, nivel, created_at, updated_at
		FROM cargos
		ORDER BY nome
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cargos: %w", err)
	}
	defer rows.Close()

	var cargos []domain.Cargo
	for rows.Next() {
		var c domain.Cargo
		if err := rows.Scan(&c.ID, &c.Nome, &c.Descricao, &c.Nivel, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cargo: %w", err)
		}
		cargos = append(cargos, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	if cargos == nil {
		cargos = []domain.Cargo{}
	}
	return cargos, nil
}
