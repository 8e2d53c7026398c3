package service

import (
	"context"
	"errors"
	"strings"

	"github.com/locvowork/gestao_rh/internal/domain"
)

const (
	msgDepartamentoNaoEncontrado = "Departamento não encontrado"
	msgCargoNaoEncontrado        = "Cargo não encontrado"
)

// DepartamentoInput is the body of POST and PUT /api/departamentos.
type DepartamentoInput struct {
	Nome      string  `json:"nome" validate:"required"`
	Descricao *string `json:"descricao"`
}

// CargoInput is the body of POST and PUT /api/cargos.
type CargoInput struct {
	Nome      string  `json:"nome" validate:"required"`
	Descricao *string `json:"descricao"`
	Nivel     *int    `json:"nivel" validate:"omitempty,min=1"`
}

// CadastroService manages the departamento and cargo lookup tables.
// Colaborador references them by name only, so deletes are unconditional.
type CadastroService interface {
	ListDepartamentos(ctx context.Context) ([]domain.Departamento, error)
	GetDepartamento(ctx context.Context, id int64) (*domain.Departamento, error)
	CreateDepartamento(ctx context.Context, in DepartamentoInput) (*domain.Departamento, error)
	UpdateDepartamento(ctx context.Context, id int64, in DepartamentoInput) (*domain.Departamento, error)
	DeleteDepartamento(ctx context.Context, id int64) error

	ListCargos(ctx context.Context) ([]domain.Cargo, error)
	GetCargo(ctx context.Context, id int64) (*domain.Cargo, error)
	CreateCargo(ctx context.Context, in CargoInput) (*domain.Cargo, error)
	UpdateCargo(ctx context.Context, id int64, in CargoInput) (*domain.Cargo, error)
	DeleteCargo(ctx context.Context, id int64) error
}

type cadastroService struct {
	departamentos domain.DepartamentoRepository
	cargos        domain.CargoRepository
}

// NewCadastroService creates the lookup table service
func NewCadastroService(departamentos domain.DepartamentoRepository, cargos domain.CargoRepository) CadastroService {
	return &cadastroService{departamentos: departamentos, cargos: cargos}
}

// ==================== Departamento ====================

func (s *cadastroService) ListDepartamentos(ctx context.Context) ([]domain.Departamento, error) {
	return s.departamentos.List(ctx)
}

func (s *cadastroService) GetDepartamento(ctx context.Context, id int64) (*domain.Departamento, error) {
	d, err := s.departamentos.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, msgDepartamentoNaoEncontrado)
	}
	return d, nil
}

func (s *cadastroService) checkDepartamentoNome(ctx context.Context, nome string, id int64) error {
	existing, err := s.departamentos.GetByNome(ctx, nome)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != id {
		return domain.NewConflictError("Departamento já cadastrado")
	}
	return nil
}

func (s *cadastroService) CreateDepartamento(ctx context.Context, in DepartamentoInput) (*domain.Departamento, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	d := &domain.Departamento{Nome: strings.TrimSpace(in.Nome), Descricao: in.Descricao}
	if err := s.checkDepartamentoNome(ctx, d.Nome, 0); err != nil {
		return nil, err
	}
	if err := s.departamentos.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *cadastroService) UpdateDepartamento(ctx context.Context, id int64, in DepartamentoInput) (*domain.Departamento, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	d, err := s.GetDepartamento(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Nome = strings.TrimSpace(in.Nome)
	d.Descricao = in.Descricao
	if err := s.checkDepartamentoNome(ctx, d.Nome, d.ID); err != nil {
		return nil, err
	}
	if err := s.departamentos.Update(ctx, d); err != nil {
		return nil, notFound(err, msgDepartamentoNaoEncontrado)
	}
	return d, nil
}

func (s *cadastroService) DeleteDepartamento(ctx context.Context, id int64) error {
	return notFound(s.departamentos.Delete(ctx, id), msgDepartamentoNaoEncontrado)
}

// ==================== Cargo ====================

func (s *cadastroService) ListCargos(ctx context.Context) ([]domain.Cargo, error) {
	return s.cargos.List(ctx)
}

func (s *cadastroService) GetCargo(ctx context.Context, id int64) (*domain.Cargo, error) {
	c, err := s.cargos.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, msgCargoNaoEncontrado)
	}
	return c, nil
}

func (s *cadastroService) checkCargoNome(ctx context.Context, nome string, id int64) error {
	existing, err := s.cargos.GetByNome(ctx, nome)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != id {
		return domain.NewConflictError("Cargo já cadastrado")
	}
	return nil
}

func (s *cadastroService) CreateCargo(ctx context.Context, in CargoInput) (*domain.Cargo, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	c := &domain.Cargo{Nome: strings.TrimSpace(in.Nome), Descricao: in.Descricao, Nivel: in.Nivel}
	if err := s.checkCargoNome(ctx, c.Nome, 0); err != nil {
		return nil, err
	}
	if err := s.cargos.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *cadastroService) UpdateCargo(ctx context.Context, id int64, in CargoInput) (*domain.Cargo, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	c, err := s.GetCargo(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Nome = strings.TrimSpace(in.Nome)
	c.Descricao = in.Descricao
	c.Nivel = in.Nivel
	if err := s.checkCargoNome(ctx, c.Nome, c.ID); err != nil {
		return nil, err
	}
	if err := s.cargos.Update(ctx, c); err != nil {
		return nil, notFound(err, msgCargoNaoEncontrado)
	}
	return c, nil
}

func (s *cadastroService) DeleteCargo(ctx context.Context, id int64) error {
	return notFound(s.cargos.Delete(ctx, id), msgCargoNaoEncontrado)
}
