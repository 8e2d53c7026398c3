package service

import (
	"context"
	"testing"
	"time"

	"github.com/locvowork/gestao_rh/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDashboard(t *testing.T, s *services) {
	t.Helper()
	ctx := context.Background()

	s.store.Now = fixedClock("2024-01-01T08:00:00Z")
	antigo := colaboradorInput(1)
	antigo.Status = domain.ColaboradorInativo
	_, err := s.colaborador.Create(ctx, antigo)
	require.NoError(t, err)

	var ids []int64
	for i := 2; i <= 7; i++ {
		s.store.Now = fixedClock(time.Date(2024, 6, i, 8, 0, 0, 0, time.UTC).Format(time.RFC3339))
		in := colaboradorInput(i)
		if i == 7 {
			in.Status = domain.ColaboradorFerias
		}
		c, err := s.colaborador.Create(ctx, in)
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}

	periodos := [][2]string{{"2024-07-01", "2024-07-10"}, {"2024-08-01", "2024-08-10"}, {"2024-09-01", "2024-09-10"}}
	for i, p := range periodos {
		f, err := s.ferias.Create(ctx, FeriasInput{ColaboradorID: FlexInt(ids[i]), DataInicio: p[0], DataFim: p[1]})
		require.NoError(t, err)
		switch i {
		case 1:
			_, err = s.ferias.Approve(ctx, f.ID, AprovacaoInput{AprovadoPor: strPtr("RH")})
		case 2:
			_, err = s.ferias.Reject(ctx, f.ID, ReprovacaoInput{})
		}
		require.NoError(t, err)
	}

	documentos := []struct {
		status     string
		vencimento string
	}{
		{domain.DocumentoValido, "2024-06-01"},  // vencido
		{domain.DocumentoValido, "2024-06-20"},  // próximo do vencimento
		{domain.DocumentoValido, "2024-12-31"},  // válido
		{domain.DocumentoValido, ""},            // sem vencimento
		{domain.DocumentoVencido, "2024-05-01"}, // marcado como vencido
		{domain.DocumentoPendente, "2024-06-15"},
	}
	for _, d := range documentos {
		in := documentoInput(ids[0])
		in.Status = d.status
		if d.vencimento != "" {
			in.DataVencimento = strPtr(d.vencimento)
		}
		_, err := s.documento.Create(ctx, in)
		require.NoError(t, err)
	}
}

func TestDashboardSummary(t *testing.T) {
	ctx := context.Background()
	s := newServices()
	seedDashboard(t, s)

	dash := NewDashboardService(s.store.Colaboradores(), s.store.Ferias(), s.store.Documentos())
	dash.(*dashboardService).now = fixedClock("2024-06-10T12:00:00Z")

	summary, err := dash.GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, domain.Estatisticas{
		TotalColaboradores:           7,
		ColaboradoresAtivos:          5,
		ColaboradoresInativos:        1,
		NovosCadastros:               6,
		FeriasPendentes:              1,
		FeriasAprovadas:              1,
		FeriasReprovadas:             1,
		TotalFerias:                  3,
		TotalDocumentos:              6,
		DocumentosValidos:            4,
		DocumentosVencidos:           1,
		DocumentosProximosVencimento: 1,
	}, summary.Estatisticas)

	require.Len(t, summary.ColaboradoresRecentes, 5)
	assert.Equal(t, "Colaborador 07", summary.ColaboradoresRecentes[0].Nome)
	assert.Len(t, summary.AtividadesRecentes, 5)
	assert.Len(t, summary.FeriasRecentes, 3)
	assert.Len(t, summary.DocumentosRecentes, 5)
	for _, f := range summary.FeriasRecentes {
		assert.NotNil(t, f.Colaborador)
	}

	again, err := dash.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, summary.Estatisticas, again.Estatisticas)
}

func TestDashboardCountsMatchLists(t *testing.T) {
	ctx := context.Background()
	s := newServices()
	seedDashboard(t, s)

	dash := NewDashboardService(s.store.Colaboradores(), s.store.Ferias(), s.store.Documentos())
	summary, err := dash.GetSummary(ctx)
	require.NoError(t, err)

	all := domain.PageRequest{Page: 1, Limit: 1000}
	ferias, err := s.ferias.List(ctx, domain.FeriasFilter{PageRequest: all})
	require.NoError(t, err)

	byStatus := map[string]int{}
	for _, f := range ferias.Items {
		byStatus[f.Status]++
	}
	assert.Equal(t, byStatus[domain.FeriasPendente], summary.Estatisticas.FeriasPendentes)
	assert.Equal(t, byStatus[domain.FeriasAprovado], summary.Estatisticas.FeriasAprovadas)
	assert.Equal(t, byStatus[domain.FeriasReprovado], summary.Estatisticas.FeriasReprovadas)
	assert.Equal(t, len(ferias.Items), summary.Estatisticas.TotalFerias)

	docs, err := s.documento.List(ctx, domain.DocumentoFilter{PageRequest: all})
	require.NoError(t, err)
	validos := 0
	for _, d := range docs.Items {
		if d.Status == domain.DocumentoValido {
			validos++
		}
	}
	assert.Equal(t, validos, summary.Estatisticas.DocumentosValidos)
	assert.Equal(t, len(docs.Items), summary.Estatisticas.TotalDocumentos)
}
