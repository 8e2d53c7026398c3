package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/locvowork/gestao_rh/internal/domain"
	"github.com/locvowork/gestao_rh/internal/logger"
)

const (
	msgColaboradorNaoEncontrado = "Colaborador não encontrado"

	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

// ColaboradorInput is the body of POST and PUT /api/colaboradores.
// Required fields are declared first, in the order they are reported.
type ColaboradorInput struct {
	Nome         string    `json:"nome" validate:"required"`
	CPF          string    `json:"cpf" validate:"required"`
	Email        string    `json:"email" validate:"required"`
	Telefone     string    `json:"telefone" validate:"required"`
	Cargo        string    `json:"cargo" validate:"required"`
	Departamento string    `json:"departamento" validate:"required"`
	DataAdmissao string    `json:"dataAdmissao" validate:"required"`
	TipoContrato string    `json:"tipoContrato" validate:"required"`
	Salario      FlexFloat `json:"salario" validate:"required"`

	Status             string  `json:"status" validate:"omitempty,oneof=ativo inativo ferias licenca"`
	RG                 *string `json:"rg"`
	OrgaoEmissor       *string `json:"orgaoEmissor"`
	DataNascimento     *string `json:"dataNascimento"`
	Genero             *string `json:"genero"`
	EstadoCivil        *string `json:"estadoCivil"`
	Nacionalidade      *string `json:"nacionalidade"`
	Celular            *string `json:"celular"`
	TelefoneEmergencia *string `json:"telefoneEmergencia"`
	CEP                *string `json:"cep"`
	Logradouro         *string `json:"logradouro"`
	Numero             *string `json:"numero"`
	Complemento        *string `json:"complemento"`
	Bairro             *string `json:"bairro"`
	Cidade             *string `json:"cidade"`
	Estado             *string `json:"estado"`
	PIS                *string `json:"pis"`
	CTPS               *string `json:"ctps"`
	TituloEleitor      *string `json:"tituloEleitor"`
	Reservista         *string `json:"reservista"`
	Observacoes        *string `json:"observacoes"`
}

// toColaborador validates the input and builds the record it describes.
func (in ColaboradorInput) toColaborador() (*domain.Colaborador, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	dataAdmissao, err := domain.ParseDate("dataAdmissao", in.DataAdmissao)
	if err != nil {
		return nil, err
	}
	dataNascimento, err := domain.ParseOptionalDate("dataNascimento", in.DataNascimento)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = domain.ColaboradorAtivo
	}

	return &domain.Colaborador{
		Nome:               strings.TrimSpace(in.Nome),
		CPF:                strings.TrimSpace(in.CPF),
		RG:                 in.RG,
		OrgaoEmissor:       in.OrgaoEmissor,
		DataNascimento:     dataNascimento,
		Genero:             in.Genero,
		EstadoCivil:        in.EstadoCivil,
		Nacionalidade:      in.Nacionalidade,
		Email:              strings.TrimSpace(in.Email),
		Telefone:           in.Telefone,
		Celular:            in.Celular,
		TelefoneEmergencia: in.TelefoneEmergencia,
		CEP:                in.CEP,
		Logradouro:         in.Logradouro,
		Numero:             in.Numero,
		Complemento:        in.Complemento,
		Bairro:             in.Bairro,
		Cidade:             in.Cidade,
		Estado:             in.Estado,
		Cargo:              in.Cargo,
		Departamento:       in.Departamento,
		DataAdmissao:       dataAdmissao,
		TipoContrato:       in.TipoContrato,
		Salario:            float64(in.Salario),
		Status:             status,
		PIS:                in.PIS,
		CTPS:               in.CTPS,
		TituloEleitor:      in.TituloEleitor,
		Reservista:         in.Reservista,
		Observacoes:        in.Observacoes,
	}, nil
}

// ColaboradorService defines the business operations on collaborators
type ColaboradorService interface {
	List(ctx context.Context, filter domain.ColaboradorFilter) (*domain.Page[domain.Colaborador], error)
	Get(ctx context.Context, id int64) (*domain.Colaborador, error)
	Create(ctx context.Context, in ColaboradorInput) (*domain.Colaborador, error)
	Update(ctx context.Context, id int64, in ColaboradorInput) (*domain.Colaborador, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string, limit int) ([]domain.Colaborador, error)
}

type colaboradorService struct {
	repo  domain.ColaboradorRepository
	index domain.ColaboradorIndex
	now   func() time.Time
}

// NewColaboradorService creates the collaborator service. index may be nil,
// in which case Search falls back to the store's substring match.
func NewColaboradorService(repo domain.ColaboradorRepository, index domain.ColaboradorIndex) ColaboradorService {
	return &colaboradorService{
		repo:  repo,
		index: index,
		now:   time.Now,
	}
}

func (s *colaboradorService) List(ctx context.Context, filter domain.ColaboradorFilter) (*domain.Page[domain.Colaborador], error) {
	filter.PageRequest = filter.PageRequest.Normalize()
	filter.Status = domain.OptionValue(filter.Status)
	filter.Departamento = domain.OptionValue(filter.Departamento)
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Novos && filter.CriadoDesde == nil {
		desde := s.now().Add(-domain.NovosCadastrosJanela)
		filter.CriadoDesde = &desde
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &domain.Page[domain.Colaborador]{
		Items:      items,
		Pagination: domain.NewPagination(filter.PageRequest, total),
	}, nil
}

func (s *colaboradorService) Get(ctx context.Context, id int64) (*domain.Colaborador, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, msgColaboradorNaoEncontrado)
	}
	return c, nil
}

// ensureUnique checks cpf first, then email, ignoring the record being updated.
func (s *colaboradorService) ensureUnique(ctx context.Context, c *domain.Colaborador) error {
	existing, err := s.repo.GetByCPF(ctx, c.CPF)
	switch {
	case err == nil && existing.ID != c.ID:
		return domain.NewConflictError("CPF já cadastrado")
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return err
	}

	existing, err = s.repo.GetByEmail(ctx, c.Email)
	switch {
	case err == nil && existing.ID != c.ID:
		return domain.NewConflictError("E-mail já cadastrado")
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return err
	}
	return nil
}

func (s *colaboradorService) Create(ctx context.Context, in ColaboradorInput) (*domain.Colaborador, error) {
	c, err := in.toColaborador()
	if err != nil {
		return nil, err
	}
	if err := s.ensureUnique(ctx, c); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	logger.InfoLog(ctx, "colaborador %d criado", c.ID)
	s.syncIndex(ctx, c)
	return c, nil
}

func (s *colaboradorService) Update(ctx context.Context, id int64, in ColaboradorInput) (*domain.Colaborador, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c, err := in.toColaborador()
	if err != nil {
		return nil, err
	}
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	if in.Status == "" {
		c.Status = existing.Status
	}

	if err := s.ensureUnique(ctx, c); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, notFound(err, msgColaboradorNaoEncontrado)
	}

	s.syncIndex(ctx, c)
	return c, nil
}

func (s *colaboradorService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, msgColaboradorNaoEncontrado)
	}

	if s.index != nil {
		if err := s.index.Remove(ctx, id); err != nil {
			logger.WarnLog(ctx, "failed to remove colaborador %d from search index: %v", id, err)
		}
	}
	return nil
}

func (s *colaboradorService) Search(ctx context.Context, query string, limit int) ([]domain.Colaborador, error) {
	query = strings.TrimSpace(query)
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	if query == "" {
		return []domain.Colaborador{}, nil
	}

	if s.index != nil {
		ids, err := s.index.Search(ctx, query, limit)
		if err == nil {
			return s.loadAll(ctx, ids)
		}
		logger.WarnLog(ctx, "search index unavailable, falling back to store: %v", err)
	}

	page, err := s.List(ctx, domain.ColaboradorFilter{
		PageRequest: domain.PageRequest{Page: 1, Limit: limit},
		Search:      query,
	})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// loadAll reads the records behind index hits, keeping hit order.
// Hits deleted since they were indexed are skipped.
func (s *colaboradorService) loadAll(ctx context.Context, ids []int64) ([]domain.Colaborador, error) {
	out := make([]domain.Colaborador, 0, len(ids))
	for _, id := range ids {
		c, err := s.repo.GetByID(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, nil
}

func (s *colaboradorService) syncIndex(ctx context.Context, c *domain.Colaborador) {
	if s.index == nil {
		return
	}
	if err := s.index.Index(ctx, c); err != nil {
		logger.WarnLog(ctx, "failed to index colaborador %d: %v", c.ID, err)
	}
}
