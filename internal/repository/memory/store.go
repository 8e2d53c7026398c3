// Package memory is an in-process Record Store with the same semantics as the
// PostgreSQL repositories. It backs STORE_DRIVER=memory and the service tests.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/locvowork/gestao_rh/internal/domain"
)

const (
	msgCPFDuplicado    = "CPF já cadastrado"
	msgEmailDuplicado  = "E-mail já cadastrado"
	msgDeptoDuplicado  = "Departamento já cadastrado"
	msgCargoDuplicado  = "Cargo já cadastrado"
	msgVinculoInvalido = "Registro possui vínculos e não pode ser alterado"
)

// Store holds every table behind one lock.
type Store struct {
	mu sync.RWMutex
	// Now stamps created_at/updated_at. Tests may replace it.
	Now func() time.Time

	seq           int64
	colaboradores map[int64]*domain.Colaborador
	ferias        map[int64]*domain.Ferias
	documentos    map[int64]*domain.Documento
	departamentos map[int64]*domain.Departamento
	cargos        map[int64]*domain.Cargo
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		Now:           func() time.Time { return time.Now().UTC() },
		colaboradores: make(map[int64]*domain.Colaborador),
		ferias:        make(map[int64]*domain.Ferias),
		documentos:    make(map[int64]*domain.Documento),
		departamentos: make(map[int64]*domain.Departamento),
		cargos:        make(map[int64]*domain.Cargo),
	}
}

// Colaboradores returns the collaborator repository view of the store.
func (s *Store) Colaboradores() domain.ColaboradorRepository { return &colaboradorRepo{s} }

// Ferias returns the vacation repository view of the store.
func (s *Store) Ferias() domain.FeriasRepository { return &feriasRepo{s} }

// Documentos returns the document repository view of the store.
func (s *Store) Documentos() domain.DocumentoRepository { return &documentoRepo{s} }

// Departamentos returns the department repository view of the store.
func (s *Store) Departamentos() domain.DepartamentoRepository { return &departamentoRepo{s} }

// Cargos returns the job title repository view of the store.
func (s *Store) Cargos() domain.CargoRepository { return &cargoRepo{s} }

// Reset drops every row. Ids keep increasing.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.colaboradores = make(map[int64]*domain.Colaborador)
	s.ferias = make(map[int64]*domain.Ferias)
	s.documentos = make(map[int64]*domain.Documento)
	s.departamentos = make(map[int64]*domain.Departamento)
	s.cargos = make(map[int64]*domain.Cargo)
}

// nextID must be called with the write lock held.
func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

func (s *Store) resumo(colaboradorID int64) *domain.ColaboradorResumo {
	if c, ok := s.colaboradores[colaboradorID]; ok {
		return c.Resumo()
	}
	return nil
}

func paginate[T any](items []T, req domain.PageRequest) []T {
	offset := req.Offset()
	if offset >= len(items) {
		return []T{}
	}
	end := offset + req.Normalize().Limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func latest[T any](items []T, limit int, key func(T) (time.Time, int64)) []T {
	sort.SliceStable(items, func(i, j int) bool {
		ti, ii := key(items[i])
		tj, ij := key(items[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return ii > ij
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// Repositories returns every repository view of the store.
func (s *Store) Repositories() domain.Repositories {
	return domain.Repositories{
		Colaboradores: s.Colaboradores(),
		Ferias:        s.Ferias(),
		Documentos:    s.Documentos(),
		Departamentos: s.Departamentos(),
		Cargos:        s.Cargos(),
	}
}
