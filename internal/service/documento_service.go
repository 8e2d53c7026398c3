package service

import (
	"context"
	"time"

	"github.com/locvowork/gestao_rh/internal/domain"
	"github.com/locvowork/gestao_rh/internal/logger"
)

const msgDocumentoNaoEncontrado = "Documento não encontrado"

// DocumentoInput is the body of POST /api/documentos.
type DocumentoInput struct {
	Nome           string  `json:"nome" validate:"required"`
	ColaboradorID  FlexInt `json:"colaboradorId" validate:"required"`
	Tipo           string  `json:"tipo" validate:"required,oneof=contrato identidade militar academico saude"`
	Categoria      string  `json:"categoria" validate:"required"`
	DataVencimento *string `json:"dataVencimento"`
	Status         string  `json:"status" validate:"omitempty,oneof=valido vencido pendente"`
	Tamanho        *string `json:"tamanho"`
	CaminhoArquivo *string `json:"caminhoArquivo"`
	Observacoes    *string `json:"observacoes"`
}

// DocumentoPatch is the body of PUT /api/documentos/{id}. Nil fields are left untouched;
// an empty dataVencimento clears the expiry date.
type DocumentoPatch struct {
	Nome           *string `json:"nome"`
	Categoria      *string `json:"categoria"`
	Status         *string `json:"status" validate:"omitempty,oneof=valido vencido pendente"`
	DataVencimento *string `json:"dataVencimento"`
	Tamanho        *string `json:"tamanho"`
	CaminhoArquivo *string `json:"caminhoArquivo"`
	Observacoes    *string `json:"observacoes"`
}

// DocumentoService defines the business operations on employee documents
type DocumentoService interface {
	List(ctx context.Context, filter domain.DocumentoFilter) (*domain.Page[domain.Documento], error)
	Get(ctx context.Context, id int64) (*domain.Documento, error)
	Create(ctx context.Context, in DocumentoInput) (*domain.Documento, error)
	Update(ctx context.Context, id int64, patch DocumentoPatch) (*domain.Documento, error)
	Renew(ctx context.Context, id int64) (*domain.Documento, error)
	Delete(ctx context.Context, id int64) error
}

type documentoService struct {
	repo          domain.DocumentoRepository
	colaboradores domain.ColaboradorRepository
	now           func() time.Time
}

// NewDocumentoService creates the document service
func NewDocumentoService(repo domain.DocumentoRepository, colaboradores domain.ColaboradorRepository) DocumentoService {
	return &documentoService{
		repo:          repo,
		colaboradores: colaboradores,
		now:           time.Now,
	}
}

func (s *documentoService) List(ctx context.Context, filter domain.DocumentoFilter) (*domain.Page[domain.Documento], error) {
	filter.PageRequest = filter.PageRequest.Normalize()
	filter.Tipo = domain.OptionValue(filter.Tipo)
	filter.Status = domain.OptionValue(filter.Status)

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &domain.Page[domain.Documento]{
		Items:      items,
		Pagination: domain.NewPagination(filter.PageRequest, total),
	}, nil
}

func (s *documentoService) Get(ctx context.Context, id int64) (*domain.Documento, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, msgDocumentoNaoEncontrado)
	}
	return d, nil
}

func (s *documentoService) Create(ctx context.Context, in DocumentoInput) (*domain.Documento, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	colaborador, err := s.colaboradores.GetByID(ctx, int64(in.ColaboradorID))
	if err != nil {
		return nil, notFound(err, msgColaboradorNaoEncontrado)
	}

	vencimento, err := domain.ParseOptionalDate("dataVencimento", in.DataVencimento)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = domain.DocumentoValido
	}

	d := &domain.Documento{
		ColaboradorID:  colaborador.ID,
		Nome:           in.Nome,
		Tipo:           in.Tipo,
		Categoria:      in.Categoria,
		DataUpload:     s.now().UTC(),
		DataVencimento: vencimento,
		Status:         status,
		Tamanho:        in.Tamanho,
		CaminhoArquivo: in.CaminhoArquivo,
		Observacoes:    in.Observacoes,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	d.Colaborador = colaborador.Resumo()

	logger.InfoLog(ctx, "documento %d cadastrado para colaborador %d", d.ID, colaborador.ID)
	return d, nil
}

func (s *documentoService) Update(ctx context.Context, id int64, patch DocumentoPatch) (*domain.Documento, error) {
	if err := validateInput(patch); err != nil {
		return nil, err
	}

	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Nome != nil {
		if *patch.Nome == "" {
			return nil, domain.NewValidationError("Campo obrigatório: nome")
		}
		d.Nome = *patch.Nome
	}
	if patch.Categoria != nil {
		if *patch.Categoria == "" {
			return nil, domain.NewValidationError("Campo obrigatório: categoria")
		}
		d.Categoria = *patch.Categoria
	}
	if patch.Status != nil {
		d.Status = *patch.Status
	}
	if patch.DataVencimento != nil {
		if d.DataVencimento, err = domain.ParseOptionalDate("dataVencimento", patch.DataVencimento); err != nil {
			return nil, err
		}
	}
	if patch.Tamanho != nil {
		d.Tamanho = patch.Tamanho
	}
	if patch.CaminhoArquivo != nil {
		d.CaminhoArquivo = patch.CaminhoArquivo
	}
	if patch.Observacoes != nil {
		d.Observacoes = patch.Observacoes
	}

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, notFound(err, msgDocumentoNaoEncontrado)
	}
	return d, nil
}

// Renew marks the document valido and pushes its expiry one year from now,
// whatever its current status.
func (s *documentoService) Renew(ctx context.Context, id int64) (*domain.Documento, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	vencimento := s.now().UTC().Add(domain.ValidadeRenovacao)
	d.Status = domain.DocumentoValido
	d.DataVencimento = &vencimento

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, notFound(err, msgDocumentoNaoEncontrado)
	}

	logger.InfoLog(ctx, "documento %d renovado até %s", d.ID, vencimento.Format("2006-01-02"))
	return d, nil
}

func (s *documentoService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, msgDocumentoNaoEncontrado)
	}
	return nil
}
