package memory

import (
	"context"
	"sort"
	"time"

	"github.com/locvowork/gestao_rh/internal/domain"
)

type feriasRepo struct {
	s *Store
}

// view copies f and attaches the collaborator summary. Lock must be held.
func (r *feriasRepo) view(f *domain.Ferias) domain.Ferias {
	out := *f
	out.Colaborador = r.s.resumo(f.ColaboradorID)
	return out
}

func (r *feriasRepo) Create(_ context.Context, f *domain.Ferias) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.colaboradores[f.ColaboradorID]; !ok {
		return domain.NewConflictError(msgVinculoInvalido)
	}
	now := r.s.Now()
	f.ID = r.s.nextID()
	f.CreatedAt, f.UpdatedAt = now, now

	stored := *f
	stored.Colaborador = nil
	r.s.ferias[f.ID] = &stored
	return nil
}

func (r *feriasRepo) GetByID(_ context.Context, id int64) (*domain.Ferias, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	f, ok := r.s.ferias[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := r.view(f)
	return &out, nil
}

func matchFerias(f *domain.Ferias, filter domain.FeriasFilter) bool {
	if filter.Status != "" && f.Status != filter.Status {
		return false
	}
	if filter.ColaboradorID > 0 && f.ColaboradorID != filter.ColaboradorID {
		return false
	}
	return true
}

func (r *feriasRepo) filtered(filter domain.FeriasFilter) []domain.Ferias {
	out := []domain.Ferias{}
	for _, f := range r.s.ferias {
		if matchFerias(f, filter) {
			out = append(out, r.view(f))
		}
	}
	return out
}

func (r *feriasRepo) List(_ context.Context, filter domain.FeriasFilter) ([]domain.Ferias, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := r.filtered(filter)
	sort.Slice(items, func(i, j int) bool {
		if !items[i].DataInicio.Equal(items[j].DataInicio) {
			return items[i].DataInicio.After(items[j].DataInicio)
		}
		return items[i].ID > items[j].ID
	})
	return paginate(items, filter.PageRequest), nil
}

func (r *feriasRepo) Count(_ context.Context, filter domain.FeriasFilter) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, f := range r.s.ferias {
		if matchFerias(f, filter) {
			n++
		}
	}
	return n, nil
}

func (r *feriasRepo) HasOverlap(_ context.Context, colaboradorID int64, inicio, fim time.Time) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, f := range r.s.ferias {
		if f.ColaboradorID == colaboradorID && domain.PeriodsOverlap(inicio, fim, f.DataInicio, f.DataFim) {
			return true, nil
		}
	}
	return false, nil
}

func (r *feriasRepo) Decide(_ context.Context, id int64, d domain.FeriasDecision) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	f, ok := r.s.ferias[id]
	if !ok {
		return domain.ErrNotFound
	}
	f.Status = d.Status
	f.AprovadoPor = d.AprovadoPor
	f.DataAprovacao = d.DataAprovacao
	if d.Observacoes != nil {
		f.Observacoes = d.Observacoes
	}
	f.UpdatedAt = r.s.Now()
	return nil
}

func (r *feriasRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.ferias[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.ferias, id)
	return nil
}

func (r *feriasRepo) LatestCreated(_ context.Context, limit int) ([]domain.Ferias, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return latest(r.filtered(domain.FeriasFilter{}), limit, func(f domain.Ferias) (time.Time, int64) {
		return f.CreatedAt, f.ID
	}), nil
}
