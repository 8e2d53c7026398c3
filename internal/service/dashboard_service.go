package service

import (
	"context"
	"time"

	"github.com/locvowork/gestao_rh/internal/domain"
	"golang.org/x/sync/errgroup"
)

const recentesLimit = 5

// DashboardService builds the summary shown on the home page
type DashboardService interface {
	GetSummary(ctx context.Context) (*domain.DashboardSummary, error)
}

type dashboardService struct {
	colaboradores domain.ColaboradorRepository
	ferias        domain.FeriasRepository
	documentos    domain.DocumentoRepository
	now           func() time.Time
}

// NewDashboardService creates the dashboard aggregator
func NewDashboardService(
	colaboradores domain.ColaboradorRepository,
	ferias domain.FeriasRepository,
	documentos domain.DocumentoRepository,
) DashboardService {
	return &dashboardService{
		colaboradores: colaboradores,
		ferias:        ferias,
		documentos:    documentos,
		now:           time.Now,
	}
}

// GetSummary runs every count and feed concurrently. The queries do not share
// a snapshot, so counts may disagree with each other under concurrent writes.
func (s *dashboardService) GetSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	now := s.now().UTC()
	novosDesde := now.Add(-domain.NovosCadastrosJanela)
	vencimentoAte := now.Add(domain.ProximoVencimentoJanela)

	var (
		summary      domain.DashboardSummary
		est          = &summary.Estatisticas
		atualizados  []domain.Colaborador
		recentes     []domain.Colaborador
		feriasRec    []domain.Ferias
		documentoRec []domain.Documento
	)

	g, ctx := errgroup.WithContext(ctx)

	countColaboradores := func(dst *int, filter domain.ColaboradorFilter) {
		g.Go(func() error {
			n, err := s.colaboradores.Count(ctx, filter)
			*dst = n
			return err
		})
	}
	countFerias := func(dst *int, filter domain.FeriasFilter) {
		g.Go(func() error {
			n, err := s.ferias.Count(ctx, filter)
			*dst = n
			return err
		})
	}
	countDocumentos := func(dst *int, filter domain.DocumentoFilter) {
		g.Go(func() error {
			n, err := s.documentos.Count(ctx, filter)
			*dst = n
			return err
		})
	}

	countColaboradores(&est.TotalColaboradores, domain.ColaboradorFilter{})
	countColaboradores(&est.ColaboradoresAtivos, domain.ColaboradorFilter{Status: domain.ColaboradorAtivo})
	countColaboradores(&est.ColaboradoresInativos, domain.ColaboradorFilter{Status: domain.ColaboradorInativo})
	countColaboradores(&est.NovosCadastros, domain.ColaboradorFilter{CriadoDesde: &novosDesde})

	countFerias(&est.FeriasPendentes, domain.FeriasFilter{Status: domain.FeriasPendente})
	countFerias(&est.FeriasAprovadas, domain.FeriasFilter{Status: domain.FeriasAprovado})
	countFerias(&est.FeriasReprovadas, domain.FeriasFilter{Status: domain.FeriasReprovado})
	countFerias(&est.TotalFerias, domain.FeriasFilter{})

	countDocumentos(&est.TotalDocumentos, domain.DocumentoFilter{})
	countDocumentos(&est.DocumentosValidos, domain.DocumentoFilter{Status: domain.DocumentoValido})
	countDocumentos(&est.DocumentosVencidos, domain.DocumentoFilter{
		Status:          domain.DocumentoValido,
		VencimentoAntes: &now,
	})
	countDocumentos(&est.DocumentosProximosVencimento, domain.DocumentoFilter{
		Status:        domain.DocumentoValido,
		VencimentoDe:  &now,
		VencimentoAte: &vencimentoAte,
	})

	g.Go(func() (err error) {
		atualizados, err = s.colaboradores.LatestUpdated(ctx, recentesLimit)
		return err
	})
	g.Go(func() (err error) {
		recentes, err = s.colaboradores.LatestCreated(ctx, recentesLimit)
		return err
	})
	g.Go(func() (err error) {
		feriasRec, err = s.ferias.LatestCreated(ctx, recentesLimit)
		return err
	})
	g.Go(func() (err error) {
		documentoRec, err = s.documentos.LatestCreated(ctx, recentesLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary.AtividadesRecentes = make([]domain.AtividadeRecente, 0, len(atualizados))
	for _, c := range atualizados {
		summary.AtividadesRecentes = append(summary.AtividadesRecentes, domain.AtividadeRecente{
			ID:        c.ID,
			Nome:      c.Nome,
			UpdatedAt: c.UpdatedAt,
		})
	}

	summary.ColaboradoresRecentes = make([]domain.ColaboradorRecente, 0, len(recentes))
	for _, c := range recentes {
		summary.ColaboradoresRecentes = append(summary.ColaboradoresRecentes, domain.ColaboradorRecente{
			ID:           c.ID,
			Nome:         c.Nome,
			CPF:          c.CPF,
			Email:        c.Email,
			Cargo:        c.Cargo,
			Departamento: c.Departamento,
			DataAdmissao: c.DataAdmissao,
			Status:       c.Status,
			CreatedAt:    c.CreatedAt,
		})
	}

	summary.FeriasRecentes = feriasRec
	summary.DocumentosRecentes = documentoRec
	return &summary, nil
}
