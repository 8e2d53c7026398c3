package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/locvowork/gestao_rh/internal/domain"
	"github.com/locvowork/gestao_rh/internal/repository/builder"
)

const documentosTable = "documentos"

var documentoColumns = []string{
	"d.id", "d.colaborador_id", "d.nome", "d.tipo", "d.categoria", "d.data_upload",
	"d.data_vencimento", "d.status", "d.tamanho", "d.caminho_arquivo", "d.observacoes",
	"d.created_at", "d.updated_at",
	"c.id", "c.nome", "c.cargo", "c.departamento",
}

func scanDocumento(row rowScanner) (*domain.Documento, error) {
	var d domain.Documento
	var c domain.ColaboradorResumo
	err := row.Scan(
		&d.ID, &d.ColaboradorID, &d.Nome, &d.Tipo, &d.Categoria, &d.DataUpload,
		&d.DataVencimento, &d.Status, &d.Tamanho, &d.CaminhoArquivo, &d.Observacoes,
		&d.CreatedAt, &d.UpdatedAt,
		&c.ID, &c.Nome, &c.Cargo, &c.Departamento,
	)
	if err != nil {
		return nil, err
	}
	d.Colaborador = &c
	return &d, nil
}

type documentoRepository struct {
	db *sql.DB
}

// NewDocumentoRepository creates a new instance of DocumentoRepository
func NewDocumentoRepository(db *sql.DB) domain.DocumentoRepository {
	return &documentoRepository{db: db}
}

func fromDocumentos(b *builder.SQLBuilder, cols ...string) *builder.SQLBuilder {
	return b.Select(cols...).
		From(documentosTable+" d").
		Join("INNER", colaboradoresTable+" c", "c.id = d.colaborador_id")
}

func (r *documentoRepository) Create(ctx context.Context, d *domain.Documento) error {
	b := builder.NewSQLBuilder()
	query, args := b.Insert(documentosTable,
		"colaborador_id", "nome", "tipo", "categoria", "data_upload", "data_vencimento",
		"status", "tamanho", "caminho_arquivo", "observacoes").
		Values(d.ColaboradorID, d.Nome, d.Tipo, d.Categoria, d.DataUpload, d.DataVencimento,
			d.Status, d.Tamanho, d.CaminhoArquivo, d.Observacoes).
		Returning("id", "created_at", "updated_at").
		Build()

	err := r.db.QueryRowContext(ctx, query, args...).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	return translateError(err, "insert documento")
}

func (r *documentoRepository) GetByID(ctx context.Context, id int64) (*domain.Documento, error) {
	query, args := fromDocumentos(builder.NewSQLBuilder(), documentoColumns...).
		Where("d.id = ?", id).
		Build()

	d, err := scanDocumento(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, "get documento")
	}
	return d, nil
}

func (r *documentoRepository) Update(ctx context.Context, d *domain.Documento) error {
	b := builder.NewSQLBuilder()
	query, args := b.Update(documentosTable).
		Set("nome", d.Nome).
		Set("categoria", d.Categoria).
		Set("data_vencimento", d.DataVencimento).
		Set("status", d.Status).
		Set("tamanho", d.Tamanho).
		Set("caminho_arquivo", d.CaminhoArquivo).
		Set("observacoes", d.Observacoes).
		Set("updated_at", time.Now().UTC()).
		Where("id = ?", d.ID).
		Returning("updated_at").
		Build()

	err := r.db.QueryRowContext(ctx, query, args...).Scan(&d.UpdatedAt)
	return translateError(err, "update documento")
}

func (r *documentoRepository) Delete(ctx context.Context, id int64) error {
	b := builder.NewSQLBuilder()
	query, args := b.Delete(documentosTable).
		Where("id = ?", id).
		Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "delete documento")
	}
	return requireAffected(res, "delete documento")
}

func applyDocumentoFilter(b *builder.SQLBuilder, filter domain.DocumentoFilter) {
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		b.WhereGroup(func(g *builder.SQLBuilder) *builder.SQLBuilder {
			return g.
				Or("d.nome ILIKE ?", pattern).
				Or("c.nome ILIKE ?", pattern).
				Or("d.categoria ILIKE ?", pattern)
		})
	}
	if filter.Tipo != "" {
		b.Where("d.tipo = ?", filter.Tipo)
	}
	if filter.Status != "" {
		b.Where("d.status = ?", filter.Status)
	}
	if filter.ColaboradorID > 0 {
		b.Where("d.colaborador_id = ?", filter.ColaboradorID)
	}
	if filter.VencimentoAntes != nil {
		b.Where("d.data_vencimento < ?", *filter.VencimentoAntes)
	}
	if filter.VencimentoDe != nil {
		b.Where("d.data_vencimento >= ?", *filter.VencimentoDe)
	}
	if filter.VencimentoAte != nil {
		b.Where("d.data_vencimento <= ?", *filter.VencimentoAte)
	}
}

func (r *documentoRepository) List(ctx context.Context, filter domain.DocumentoFilter) ([]domain.Documento, error) {
	page := filter.PageRequest.Normalize()
	b := fromDocumentos(builder.NewSQLBuilder(), documentoColumns...).
		OrderBy("d.data_upload DESC").
		OrderBy("d.id DESC").
		Limit(page.Limit).
		Offset(page.Offset())
	applyDocumentoFilter(b, filter)

	query, args := b.Build()
	return r.query(ctx, query, args)
}

// Count joins colaboradores as well since the search group can reference c.nome.
func (r *documentoRepository) Count(ctx context.Context, filter domain.DocumentoFilter) (int, error) {
	b := fromDocumentos(builder.NewSQLBuilder(), "COUNT(*)")
	applyDocumentoFilter(b, filter)

	query, args := b.Build()
	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count documentos: %w", err)
	}
	return count, nil
}

func (r *documentoRepository) LatestCreated(ctx context.Context, limit int) ([]domain.Documento, error) {
	query, args := fromDocumentos(builder.NewSQLBuilder(), documentoColumns...).
		OrderBy("d.created_at DESC").
		OrderBy("d.id DESC").
		Limit(limit).
		Build()
	return r.query(ctx, query, args)
}

func (r *documentoRepository) query(ctx context.Context, query string, args []interface{}) ([]domain.Documento, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documentos: %w", err)
	}
	defer rows.Close()

	documentos := []domain.Documento{}
	for rows.Next() {
		d, err := scanDocumento(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan documento: %w", err)
		}
		documentos = append(documentos, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return documentos, nil
}
