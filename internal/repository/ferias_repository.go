package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/locvowork/gestao_rh/internal/domain"
	"github.com/locvowork/gestao_rh/internal/repository/builder"
)

const feriasTable = "ferias"

var feriasColumns = []string{
	"f.id", "f.colaborador_id", "f.data_inicio", "f.data_fim", "f.tipo_ferias", "f.status",
	"f.observacoes", "f.aprovado_por", "f.data_aprovacao", "f.created_at", "f.updated_at",
	"c.id", "c.nome", "c.cargo", "c.departamento",
}

func scanFerias(row rowScanner) (*domain.Ferias, error) {
	var f domain.Ferias
	var c domain.ColaboradorResumo
	err := row.Scan(
		&f.ID, &f.ColaboradorID, &f.DataInicio, &f.DataFim, &f.TipoFerias, &f.Status,
		&f.Observacoes, &f.AprovadoPor, &f.DataAprovacao, &f.CreatedAt, &f.UpdatedAt,
		&c.ID, &c.Nome, &c.Cargo, &c.Departamento,
	)
	if err != nil {
		return nil, err
	}
	f.Colaborador = &c
	return &f, nil
}

type feriasRepository struct {
	db *sql.DB
}

// NewFeriasRepository creates a new instance of FeriasRepository
func NewFeriasRepository(db *sql.DB) domain.FeriasRepository {
	return &feriasRepository{db: db}
}

func selectFerias(b *builder.SQLBuilder) *builder.SQLBuilder {
	return b.Select(feriasColumns...).
		From(feriasTable+" f").
		Join("INNER", colaboradoresTable+" c", "c.id = f.colaborador_id")
}

func (r *feriasRepository) Create(ctx context.Context, f *domain.Ferias) error {
	b := builder.NewSQLBuilder()
	query, args := b.Insert(feriasTable,
		"colaborador_id", "data_inicio", "data_fim", "tipo_ferias", "status", "observacoes").
		Values(f.ColaboradorID, f.DataInicio, f.DataFim, f.TipoFerias, f.Status, f.Observacoes).
		Returning("id", "created_at", "updated_at").
		Build()

	err := r.db.QueryRowContext(ctx, query, args...).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	return translateError(err, "insert ferias")
}

func (r *feriasRepository) GetByID(ctx context.Context, id int64) (*domain.Ferias, error) {
	query, args := selectFerias(builder.NewSQLBuilder()).
		Where("f.id = ?", id).
		Build()

	f, err := scanFerias(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, "get ferias")
	}
	return f, nil
}

func applyFeriasFilter(b *builder.SQLBuilder, filter domain.FeriasFilter) {
	if filter.Status != "" {
		b.Where("f.status = ?", filter.Status)
	}
	if filter.ColaboradorID > 0 {
		b.Where("f.colaborador_id = ?", filter.ColaboradorID)
	}
}

func (r *feriasRepository) List(ctx context.Context, filter domain.FeriasFilter) ([]domain.Ferias, error) {
	page := filter.PageRequest.Normalize()
	b := selectFerias(builder.NewSQLBuilder()).
		OrderBy("f.data_inicio DESC").
		OrderBy("f.id DESC").
		Limit(page.Limit).
		Offset(page.Offset())
	applyFeriasFilter(b, filter)

	query, args := b.Build()
	return r.query(ctx, query, args)
}

func (r *feriasRepository) Count(ctx context.Context, filter domain.FeriasFilter) (int, error) {
	b := builder.NewSQLBuilder()
	b.Select("COUNT(*)").From(feriasTable + " f")
	applyFeriasFilter(b, filter)

	query, args := b.Build()
	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count ferias: %w", err)
	}
	return count, nil
}

func (r *feriasRepository) HasOverlap(ctx context.Context, colaboradorID int64, inicio, fim time.Time) (bool, error) {
	b := builder.NewSQLBuilder()
	query, args := b.Select("1").
		From(feriasTable).
		Where("colaborador_id = ?", colaboradorID).
		Where("data_inicio <= ?", fim).
		Where("data_fim >= ?", inicio).
		Limit(1).
		Build()

	var one int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("failed to check ferias overlap: %w", err)
	}
	return true, nil
}

func (r *feriasRepository) Decide(ctx context.Context, id int64, d domain.FeriasDecision) error {
	b := builder.NewSQLBuilder()
	query, args := b.Update(feriasTable).
		Set("status", d.Status).
		Set("aprovado_por", d.AprovadoPor).
		Set("data_aprovacao", d.DataAprovacao).
		Set("observacoes", builder.Expr("COALESCE(?, observacoes)", d.Observacoes)).
		Set("updated_at", time.Now().UTC()).
		Where("id = ?", id).
		Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "decide ferias")
	}
	return requireAffected(res, "decide ferias")
}

func (r *feriasRepository) Delete(ctx context.Context, id int64) error {
	b := builder.NewSQLBuilder()
	query, args := b.Delete(feriasTable).
		Where("id = ?", id).
		Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "delete ferias")
	}
	return requireAffected(res, "delete ferias")
}

func (r *feriasRepository) LatestCreated(ctx context.Context, limit int) ([]domain.Ferias, error) {
	query, args := selectFerias(builder.NewSQLBuilder()).
		OrderBy("f.created_at DESC").
		OrderBy("f.id DESC").
		Limit(limit).
		Build()
	return r.query(ctx, query, args)
}

func (r *feriasRepository) query(ctx context.Context, query string, args []interface{}) ([]domain.Ferias, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ferias: %w", err)
	}
	defer rows.Close()

	ferias := []domain.Ferias{}
	for rows.Next() {
		f, err := scanFerias(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ferias: %w", err)
		}
		ferias = append(ferias, *f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return ferias, nil
}
