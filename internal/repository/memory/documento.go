package memory

import (
	"context"
	"sort"
	"time"

	"github.com/locvowork/gestao_rh/internal/domain"
)

type documentoRepo struct {
	s *Store
}

func (r *documentoRepo) view(d *domain.Documento) domain.Documento {
	out := *d
	out.Colaborador = r.s.resumo(d.ColaboradorID)
	return out
}

func (r *documentoRepo) Create(_ context.Context, d *domain.Documento) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.colaboradores[d.ColaboradorID]; !ok {
		return domain.NewConflictError(msgVinculoInvalido)
	}
	now := r.s.Now()
	d.ID = r.s.nextID()
	d.CreatedAt, d.UpdatedAt = now, now
	if d.DataUpload.IsZero() {
		d.DataUpload = now
	}

	stored := *d
	stored.Colaborador = nil
	r.s.documentos[d.ID] = &stored
	return nil
}

func (r *documentoRepo) GetByID(_ context.Context, id int64) (*domain.Documento, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.documentos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := r.view(d)
	return &out, nil
}

// Update writes the mutable columns only; colaboradorId, tipo and dataUpload are fixed.
func (r *documentoRepo) Update(_ context.Context, d *domain.Documento) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.documentos[d.ID]
	if !ok {
		return domain.ErrNotFound
	}
	existing.Nome = d.Nome
	existing.Categoria = d.Categoria
	existing.DataVencimento = d.DataVencimento
	existing.Status = d.Status
	existing.Tamanho = d.Tamanho
	existing.CaminhoArquivo = d.CaminhoArquivo
	existing.Observacoes = d.Observacoes
	existing.UpdatedAt = r.s.Now()
	d.UpdatedAt = existing.UpdatedAt
	return nil
}

func (r *documentoRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.documentos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.documentos, id)
	return nil
}

func (r *documentoRepo) match(d *domain.Documento, filter domain.DocumentoFilter) bool {
	if filter.Search != "" {
		colaboradorNome := ""
		if c, ok := r.s.colaboradores[d.ColaboradorID]; ok {
			colaboradorNome = c.Nome
		}
		if !domain.ContainsFold(d.Nome, filter.Search) &&
			!domain.ContainsFold(colaboradorNome, filter.Search) &&
			!domain.ContainsFold(d.Categoria, filter.Search) {
			return false
		}
	}
	if filter.Tipo != "" && d.Tipo != filter.Tipo {
		return false
	}
	if filter.Status != "" && d.Status != filter.Status {
		return false
	}
	if filter.ColaboradorID > 0 && d.ColaboradorID != filter.ColaboradorID {
		return false
	}
	// NULL data_vencimento never satisfies a range predicate
	if filter.VencimentoAntes != nil || filter.VencimentoDe != nil || filter.VencimentoAte != nil {
		if d.DataVencimento == nil {
			return false
		}
		v := *d.DataVencimento
		if filter.VencimentoAntes != nil && !v.Before(*filter.VencimentoAntes) {
			return false
		}
		if filter.VencimentoDe != nil && v.Before(*filter.VencimentoDe) {
			return false
		}
		if filter.VencimentoAte != nil && v.After(*filter.VencimentoAte) {
			return false
		}
	}
	return true
}

func (r *documentoRepo) filtered(filter domain.DocumentoFilter) []domain.Documento {
	out := []domain.Documento{}
	for _, d := range r.s.documentos {
		if r.match(d, filter) {
			out = append(out, r.view(d))
		}
	}
	return out
}

func (r *documentoRepo) List(_ context.Context, filter domain.DocumentoFilter) ([]domain.Documento, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := r.filtered(filter)
	sort.Slice(items, func(i, j int) bool {
		if !items[i].DataUpload.Equal(items[j].DataUpload) {
			return items[i].DataUpload.After(items[j].DataUpload)
		}
		return items[i].ID > items[j].ID
	})
	return paginate(items, filter.PageRequest), nil
}

func (r *documentoRepo) Count(_ context.Context, filter domain.DocumentoFilter) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, d := range r.s.documentos {
		if r.match(d, filter) {
			n++
		}
	}
	return n, nil
}

func (r *documentoRepo) LatestCreated(_ context.Context, limit int) ([]domain.Documento, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return latest(r.filtered(domain.DocumentoFilter{}), limit, func(d domain.Documento) (time.Time, int64) {
		return d.CreatedAt, d.ID
	}), nil
}
