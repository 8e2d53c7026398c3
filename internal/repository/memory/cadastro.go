package memory

import (
	"context"
	"sort"

	"github.com/locvowork/gestao_rh/internal/domain"
)

type departamentoRepo struct {
	s *Store
}

func (r *departamentoRepo) nomeTaken(nome string, exceptID int64) bool {
	for _, d := range r.s.departamentos {
		if d.Nome == nome && d.ID != exceptID {
			return true
		}
	}
	return false
}

func (r *departamentoRepo) Create(_ context.Context, d *domain.Departamento) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.nomeTaken(d.Nome, 0) {
		return domain.NewConflictError(msgDeptoDuplicado)
	}
	now := r.s.Now()
	d.ID = r.s.nextID()
	d.CreatedAt, d.UpdatedAt = now, now
	stored := *d
	r.s.departamentos[d.ID] = &stored
	return nil
}

func (r *departamentoRepo) GetByID(_ context.Context, id int64) (*domain.Departamento, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.departamentos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *d
	return &out, nil
}

func (r *departamentoRepo) GetByNome(_ context.Context, nome string) (*domain.Departamento, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, d := range r.s.departamentos {
		if d.Nome == nome {
			out := *d
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *departamentoRepo) Update(_ context.Context, d *domain.Departamento) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.departamentos[d.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if r.nomeTaken(d.Nome, d.ID) {
		return domain.NewConflictError(msgDeptoDuplicado)
	}
	d.CreatedAt = existing.CreatedAt
	d.UpdatedAt = r.s.Now()
	stored := *d
	r.s.departamentos[d.ID] = &stored
	return nil
}

func (r *departamentoRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.departamentos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.departamentos, id)
	return nil
}

func (r *departamentoRepo) List(_ context.Context) ([]domain.Departamento, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Departamento, 0, len(r.s.departamentos))
	for _, d := range r.s.departamentos {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

type cargoRepo struct {
	s *Store
}

func (r *cargoRepo) nomeTaken(nome string, exceptID int64) bool {
	for _, c := range r.s.cargos {
		if c.Nome == nome && c.ID != exceptID {
			return true
		}
	}
	return false
}

func (r *cargoRepo) Create(_ context.Context, c *domain.Cargo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.nomeTaken(c.Nome, 0) {
		return domain.NewConflictError(msgCargoDuplicado)
	}
	now := r.s.Now()
	c.ID = r.s.nextID()
	c.CreatedAt, c.UpdatedAt = now, now
	stored := *c
	r.s.cargos[c.ID] = &stored
	return nil
}

func (r *cargoRepo) GetByID(_ context.Context, id int64) (*domain.Cargo, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.cargos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *c
	return &out, nil
}

func (r *cargoRepo) GetByNome(_ context.Context, nome string) (*domain.Cargo, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.cargos {
		if c.Nome == nome {
			out := *c
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *cargoRepo) Update(_ context.Context, c *domain.Cargo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.cargos[c.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if r.nomeTaken(c.Nome, c.ID) {
		return domain.NewConflictError(msgCargoDuplicado)
	}
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = r.s.Now()
	stored := *c
	r.s.cargos[c.ID] = &stored
	return nil
}

func (r *cargoRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.cargos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.cargos, id)
	return nil
}

func (r *cargoRepo) List(_ context.Context) ([]domain.Cargo, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Cargo, 0, len(r.s.cargos))
	for _, c := range r.s.cargos {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}
