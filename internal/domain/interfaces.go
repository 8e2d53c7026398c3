package domain

import (
	"context"
	"time"
)

// ColaboradorRepository defines the interface for collaborator data access
type ColaboradorRepository interface {
	Create(ctx context.Context, c *Colaborador) error
	GetByID(ctx context.Context, id int64) (*Colaborador, error)
	// GetByCPF and GetByEmail return ErrNotFound when no row matches.
	GetByCPF(ctx context.Context, cpf string) (*Colaborador, error)
	GetByEmail(ctx context.Context, email string) (*Colaborador, error)
	Update(ctx context.Context, c *Colaborador) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter ColaboradorFilter) ([]Colaborador, error)
	Count(ctx context.Context, filter ColaboradorFilter) (int, error)

	// Dashboard feeds
	LatestCreated(ctx context.Context, limit int) ([]Colaborador, error)
	LatestUpdated(ctx context.Context, limit int) ([]Colaborador, error)
}

// FeriasRepository defines the interface for vacation request data access.
// Rows returned by reads carry the collaborator summary.
type FeriasRepository interface {
	Create(ctx context.Context, f *Ferias) error
	GetByID(ctx context.Context, id int64) (*Ferias, error)
	List(ctx context.Context, filter FeriasFilter) ([]Ferias, error)
	Count(ctx context.Context, filter FeriasFilter) (int, error)
	// HasOverlap reports whether any request of the collaborator intersects
	// the closed interval [inicio, fim].
	HasOverlap(ctx context.Context, colaboradorID int64, inicio, fim time.Time) (bool, error)
	Decide(ctx context.Context, id int64, d FeriasDecision) error
	Delete(ctx context.Context, id int64) error
	LatestCreated(ctx context.Context, limit int) ([]Ferias, error)
}

// DocumentoRepository defines the interface for document data access.
// Rows returned by reads carry the collaborator summary.
type DocumentoRepository interface {
	Create(ctx context.Context, d *Documento) error
	GetByID(ctx context.Context, id int64) (*Documento, error)
	Update(ctx context.Context, d *Documento) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter DocumentoFilter) ([]Documento, error)
	Count(ctx context.Context, filter DocumentoFilter) (int, error)
	LatestCreated(ctx context.Context, limit int) ([]Documento, error)
}

// DepartamentoRepository defines the interface for department lookups
type DepartamentoRepository interface {
	Create(ctx context.Context, d *Departamento) error
	GetByID(ctx context.Context, id int64) (*Departamento, error)
	GetByNome(ctx context.Context, nome string) (*Departamento, error)
	Update(ctx context.Context, d *Departamento) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Departamento, error)
}

// CargoRepository defines the interface for job title lookups
type CargoRepository interface {
	Create(ctx context.Context, c *Cargo) error
	GetByID(ctx context.Context, id int64) (*Cargo, error)
	GetByNome(ctx context.Context, nome string) (*Cargo, error)
	Update(ctx context.Context, c *Cargo) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Cargo, error)
}

// ColaboradorIndex is a full-text index over collaborators.
type ColaboradorIndex interface {
	Index(ctx context.Context, c *Colaborador) error
	Remove(ctx context.Context, id int64) error
	// Search returns matching collaborator ids, best match first.
	Search(ctx context.Context, query string, limit int) ([]int64, error)
}

// Repositories bundles one Record Store implementation.
type Repositories struct {
	Colaboradores ColaboradorRepository
	Ferias        FeriasRepository
	Documentos    DocumentoRepository
	Departamentos DepartamentoRepository
	Cargos        CargoRepository
}
