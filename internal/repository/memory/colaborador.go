package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/locvowork/gestao_rh/internal/domain"
)

type colaboradorRepo struct {
	s *Store
}

// checkUnique must be called with the lock held. It mirrors the cpf and email
// constraints, cpf first.
func (r *colaboradorRepo) checkUnique(c *domain.Colaborador) error {
	for _, other := range r.s.colaboradores {
		if other.ID != c.ID && other.CPF == c.CPF {
			return domain.NewConflictError(msgCPFDuplicado)
		}
	}
	for _, other := range r.s.colaboradores {
		if other.ID != c.ID && other.Email == c.Email {
			return domain.NewConflictError(msgEmailDuplicado)
		}
	}
	return nil
}

func (r *colaboradorRepo) Create(_ context.Context, c *domain.Colaborador) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c.ID = 0
	if err := r.checkUnique(c); err != nil {
		return err
	}
	now := r.s.Now()
	c.ID = r.s.nextID()
	c.CreatedAt, c.UpdatedAt = now, now

	stored := *c
	r.s.colaboradores[c.ID] = &stored
	return nil
}

func (r *colaboradorRepo) GetByID(_ context.Context, id int64) (*domain.Colaborador, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.colaboradores[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *c
	return &out, nil
}

func (r *colaboradorRepo) GetByCPF(_ context.Context, cpf string) (*domain.Colaborador, error) {
	return r.find(func(c *domain.Colaborador) bool { return c.CPF == cpf })
}

func (r *colaboradorRepo) GetByEmail(_ context.Context, email string) (*domain.Colaborador, error) {
	return r.find(func(c *domain.Colaborador) bool { return c.Email == email })
}

func (r *colaboradorRepo) find(match func(*domain.Colaborador) bool) (*domain.Colaborador, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.colaboradores {
		if match(c) {
			out := *c
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *colaboradorRepo) Update(_ context.Context, c *domain.Colaborador) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.colaboradores[c.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if err := r.checkUnique(c); err != nil {
		return err
	}
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = r.s.Now()

	stored := *c
	r.s.colaboradores[c.ID] = &stored
	return nil
}

func (r *colaboradorRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.colaboradores[id]; !ok {
		return domain.ErrNotFound
	}
	for _, f := range r.s.ferias {
		if f.ColaboradorID == id {
			return domain.NewConflictError(msgVinculoInvalido)
		}
	}
	for _, d := range r.s.documentos {
		if d.ColaboradorID == id {
			return domain.NewConflictError(msgVinculoInvalido)
		}
	}
	delete(r.s.colaboradores, id)
	return nil
}

func matchColaborador(c *domain.Colaborador, filter domain.ColaboradorFilter) bool {
	if filter.Search != "" &&
		!domain.ContainsFold(c.Nome, filter.Search) &&
		!domain.ContainsFold(c.Email, filter.Search) &&
		!domain.ContainsFold(c.Cargo, filter.Search) {
		return false
	}
	if filter.Status != "" && c.Status != filter.Status {
		return false
	}
	if filter.Departamento != "" && c.Departamento != filter.Departamento {
		return false
	}
	if filter.CriadoDesde != nil && c.CreatedAt.Before(*filter.CriadoDesde) {
		return false
	}
	return true
}

func (r *colaboradorRepo) filtered(filter domain.ColaboradorFilter) []domain.Colaborador {
	out := []domain.Colaborador{}
	for _, c := range r.s.colaboradores {
		if matchColaborador(c, filter) {
			out = append(out, *c)
		}
	}
	return out
}

func (r *colaboradorRepo) List(_ context.Context, filter domain.ColaboradorFilter) ([]domain.Colaborador, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := r.filtered(filter)
	sort.Slice(items, func(i, j int) bool {
		ni, nj := strings.ToLower(items[i].Nome), strings.ToLower(items[j].Nome)
		if ni != nj {
			return ni < nj
		}
		return items[i].ID < items[j].ID
	})
	return paginate(items, filter.PageRequest), nil
}

func (r *colaboradorRepo) Count(_ context.Context, filter domain.ColaboradorFilter) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return len(r.filtered(filter)), nil
}

func (r *colaboradorRepo) LatestCreated(_ context.Context, limit int) ([]domain.Colaborador, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return latest(r.filtered(domain.ColaboradorFilter{}), limit, func(c domain.Colaborador) (time.Time, int64) {
		return c.CreatedAt, c.ID
	}), nil
}

func (r *colaboradorRepo) LatestUpdated(_ context.Context, limit int) ([]domain.Colaborador, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return latest(r.filtered(domain.ColaboradorFilter{}), limit, func(c domain.Colaborador) (time.Time, int64) {
		return c.UpdatedAt, c.ID
	}), nil
}
