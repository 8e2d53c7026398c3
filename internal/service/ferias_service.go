package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/locvowork/gestao_rh/internal/domain"
	"github.com/locvowork/gestao_rh/internal/logger"
)

const msgFeriasNaoEncontradas = "Férias não encontradas"

var tiposFerias = []string{
	domain.FeriasAnuais,
	domain.FeriasCompensatorias,
	domain.FeriasCompensacao,
	domain.FeriasEspeciais,
}

// FeriasInput is the body of POST /api/ferias. A status sent by the client is ignored.
type FeriasInput struct {
	ColaboradorID FlexInt `json:"colaboradorId" validate:"required"`
	DataInicio    string  `json:"dataInicio" validate:"required"`
	DataFim       string  `json:"dataFim" validate:"required"`
	TipoFerias    string  `json:"tipoFerias"`
	Observacoes   *string `json:"observacoes"`
}

// AprovacaoInput is the body of PUT /api/ferias/{id}/aprovar.
type AprovacaoInput struct {
	AprovadoPor   *string `json:"aprovadoPor"`
	DataAprovacao *string `json:"dataAprovacao"`
}

// ReprovacaoInput is the body of PUT /api/ferias/{id}/reprovar.
type ReprovacaoInput struct {
	Observacoes *string `json:"observacoes"`
}

// FeriasService defines the business operations on vacation requests
type FeriasService interface {
	List(ctx context.Context, filter domain.FeriasFilter) (*domain.Page[domain.Ferias], error)
	Get(ctx context.Context, id int64) (*domain.Ferias, error)
	Create(ctx context.Context, in FeriasInput) (*domain.Ferias, error)
	Approve(ctx context.Context, id int64, in AprovacaoInput) (*domain.Ferias, error)
	Reject(ctx context.Context, id int64, in ReprovacaoInput) (*domain.Ferias, error)
	Delete(ctx context.Context, id int64) error
}

type feriasService struct {
	repo          domain.FeriasRepository
	colaboradores domain.ColaboradorRepository
	now           func() time.Time
}

// NewFeriasService creates the vacation request service
func NewFeriasService(repo domain.FeriasRepository, colaboradores domain.ColaboradorRepository) FeriasService {
	return &feriasService{
		repo:          repo,
		colaboradores: colaboradores,
		now:           time.Now,
	}
}

func (s *feriasService) List(ctx context.Context, filter domain.FeriasFilter) (*domain.Page[domain.Ferias], error) {
	filter.PageRequest = filter.PageRequest.Normalize()
	filter.Status = domain.OptionValue(filter.Status)

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &domain.Page[domain.Ferias]{
		Items:      items,
		Pagination: domain.NewPagination(filter.PageRequest, total),
	}, nil
}

func (s *feriasService) Get(ctx context.Context, id int64) (*domain.Ferias, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, msgFeriasNaoEncontradas)
	}
	return f, nil
}

// Create runs the checks in a fixed order: required fields, collaborator,
// tipoFerias, date order, overlap. The overlap read and the insert are not atomic, so two
// concurrent requests for the same period can both be admitted.
func (s *feriasService) Create(ctx context.Context, in FeriasInput) (*domain.Ferias, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	colaborador, err := s.colaboradores.GetByID(ctx, int64(in.ColaboradorID))
	if err != nil {
		return nil, notFound(err, msgColaboradorNaoEncontrado)
	}

	tipo := in.TipoFerias
	if tipo == "" {
		tipo = domain.FeriasAnuais
	}
	if !slices.Contains(tiposFerias, tipo) {
		return nil, domain.NewValidationError("Valor inválido para tipoFerias: use um de [%s]", strings.Join(tiposFerias, " "))
	}

	inicio, err := domain.ParseDate("dataInicio", in.DataInicio)
	if err != nil {
		return nil, err
	}
	fim, err := domain.ParseDate("dataFim", in.DataFim)
	if err != nil {
		return nil, err
	}
	if !fim.After(inicio) {
		return nil, domain.NewValidationError("A data de fim deve ser posterior à data de início")
	}

	overlap, err := s.repo.HasOverlap(ctx, colaborador.ID, inicio, fim)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, domain.NewConflictError("Já existe férias cadastrada para este período")
	}

	f := &domain.Ferias{
		ColaboradorID: colaborador.ID,
		DataInicio:    inicio,
		DataFim:       fim,
		TipoFerias:    tipo,
		Status:        domain.FeriasPendente,
		Observacoes:   in.Observacoes,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	f.Colaborador = colaborador.Resumo()

	logger.InfoLog(ctx, "ferias %d solicitadas para colaborador %d", f.ID, colaborador.ID)
	return f, nil
}

// Approve does not require the request to be pendente; a decided request can be decided again.
func (s *feriasService) Approve(ctx context.Context, id int64, in AprovacaoInput) (*domain.Ferias, error) {
	dataAprovacao, err := domain.ParseOptionalDate("dataAprovacao", in.DataAprovacao)
	if err != nil {
		return nil, err
	}
	if dataAprovacao == nil {
		now := s.now().UTC()
		dataAprovacao = &now
	}

	return s.decide(ctx, id, domain.FeriasDecision{
		Status:        domain.FeriasAprovado,
		AprovadoPor:   in.AprovadoPor,
		DataAprovacao: dataAprovacao,
	})
}

// Reject keeps the stored observacoes when none is sent.
func (s *feriasService) Reject(ctx context.Context, id int64, in ReprovacaoInput) (*domain.Ferias, error) {
	return s.decide(ctx, id, domain.FeriasDecision{
		Status:      domain.FeriasReprovado,
		Observacoes: in.Observacoes,
	})
}

func (s *feriasService) decide(ctx context.Context, id int64, d domain.FeriasDecision) (*domain.Ferias, error) {
	if err := s.repo.Decide(ctx, id, d); err != nil {
		return nil, notFound(err, msgFeriasNaoEncontradas)
	}
	logger.InfoLog(ctx, "ferias %d marcadas como %s", id, d.Status)
	return s.Get(ctx, id)
}

func (s *feriasService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, msgFeriasNaoEncontradas)
	}
	return nil
}
