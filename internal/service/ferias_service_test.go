package service

import (
	"context"
	"testing"
	"time"

	"github.com/locvowork/gestao_rh/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeriasCreate(t *testing.T) {
	ctx := context.Background()
	s := newServices()
	c := mustCreateColaborador(t, s.colaborador, 1)

	f, err := s.ferias.Create(ctx, FeriasInput{
		ColaboradorID: FlexInt(c.ID),
		DataInicio:    "2024-02-01",
		DataFim:       "2024-02-10",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.FeriasPendente, f.Status)
	assert.Equal(t, domain.FeriasAnuais, f.TipoFerias)
	require.NotNil(t, f.Colaborador)
	assert.Equal(t, c.Nome, f.Colaborador.Nome)
	assert.Nil(t, f.AprovadoPor)
	assert.Nil(t, f.DataAprovacao)
}

func TestFeriasCreateChecks(t *testing.T) {
	ctx := context.Background()
	s := newServices()
	c := mustCreateColaborador(t, s.colaborador, 1)
	id := FlexInt(c.ID)

	_, err := s.ferias.Create(ctx, FeriasInput{ColaboradorID: id, DataInicio: "2024-01-15", DataFim: "2024-01-30"})
	require.NoError(t, err)

	tests := []struct {
		name string
		in   FeriasInput
		kind domain.ErrorKind
		msg  string
	}{
		{
			name: "missing collaborator id",
			in:   FeriasInput{DataInicio: "2024-03-01", DataFim: "2024-03-10"},
			kind: domain.KindValidation,
			msg:  "Campo obrigatório: colaboradorId",
		},
		{
			name: "missing dates",
			in:   FeriasInput{ColaboradorID: id},
			kind: domain.KindValidation,
			msg:  "Campo obrigatório: dataInicio",
		},
		{
			name: "unknown collaborator",
			in:   FeriasInput{ColaboradorID: 999, DataInicio: "2024-03-01", DataFim: "2024-03-10"},
			kind: domain.KindNotFound,
			msg:  "Colaborador não encontrado",
		},
		{
			name: "end equal to start",
			in:   FeriasInput{ColaboradorID: id, DataInicio: "2024-03-01", DataFim: "2024-03-01"},
			kind: domain.KindValidation,
			msg:  "A data de fim deve ser posterior à data de início",
		},
		{
			name: "end before start",
			in:   FeriasInput{ColaboradorID: id, DataInicio: "2024-03-10", DataFim: "2024-03-01"},
			kind: domain.KindValidation,
			msg:  "A data de fim deve ser posterior à data de início",
		},
		{
			name: "overlaps the tail of an existing request",
			in:   FeriasInput{ColaboradorID: id, DataInicio: "2024-01-20", DataFim: "2024-02-05"},
			kind: domain.KindConflict,
			msg:  "Já existe férias cadastrada para este período",
		},
		{
			name: "touches the last day",
			in:   FeriasInput{ColaboradorID: id, DataInicio: "2024-01-30", DataFim: "2024-02-05"},
			kind: domain.KindConflict,
			msg:  "Já existe férias cadastrada para este período",
		},
		{
			name: "bad tipo",
			in:   FeriasInput{ColaboradorID: id, DataInicio: "2024-05-01", DataFim: "2024-05-10", TipoFerias: "sabatico"},
			kind: domain.KindValidation,
			msg:  "Valor inválido para tipoFerias: use um de [ferias_anuais ferias_compensatorias ferias_compensacao ferias_especiais]",
		},
		{
			name: "unknown collaborator wins over bad tipo",
			in:   FeriasInput{ColaboradorID: 999, DataInicio: "2024-05-01", DataFim: "2024-05-10", TipoFerias: "sabatico"},
			kind: domain.KindNotFound,
			msg:  "Colaborador não encontrado",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ferias.Create(ctx, tt.in)
			requireKind(t, err, tt.kind, tt.msg)
		})
	}

	f, err := s.ferias.Create(ctx, FeriasInput{ColaboradorID: id, DataInicio: "2024-02-01", DataFim: "2024-02-10"})
	require.NoError(t, err)
	assert.Equal(t, domain.FeriasPendente, f.Status)
	assert.Equal(t, domain.FeriasAnuais, f.TipoFerias)

	// other collaborators are not affected by the overlap check
	other := mustCreateColaborador(t, s.colaborador, 2)
	_, err = s.ferias.Create(ctx, FeriasInput{ColaboradorID: FlexInt(other.ID), DataInicio: "2024-01-20", DataFim: "2024-02-05"})
	require.NoError(t, err)
}

func TestFeriasApproveAndReject(t *testing.T) {
	ctx := context.Background()
	s := newServices()
	c := mustCreateColaborador(t, s.colaborador, 1)

	f, err := s.ferias.Create(ctx, FeriasInput{
		ColaboradorID: FlexInt(c.ID),
		DataInicio:    "2024-02-01",
		DataFim:       "2024-02-10",
		Observacoes:   strPtr("viagem"),
	})
	require.NoError(t, err)

	approved, err := s.ferias.Approve(ctx, f.ID, AprovacaoInput{
		AprovadoPor:   strPtr("Gestora RH"),
		DataAprovacao: strPtr("2024-01-20T10:30:00Z"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.FeriasAprovado, approved.Status)
	require.NotNil(t, approved.AprovadoPor)
	assert.Equal(t, "Gestora RH", *approved.AprovadoPor)
	require.NotNil(t, approved.DataAprovacao)
	assert.True(t, approved.DataAprovacao.Equal(time.Date(2024, 1, 20, 10, 30, 0, 0, time.UTC)))
	assert.NotNil(t, approved.Colaborador)

	rejected, err := s.ferias.Reject(ctx, f.ID, ReprovacaoInput{})
	require.NoError(t, err)
	assert.Equal(t, domain.FeriasReprovado, rejected.Status)
	require.NotNil(t, rejected.Observacoes)
	assert.Equal(t, "viagem", *rejected.Observacoes)

	rejected, err = s.ferias.Reject(ctx, f.ID, ReprovacaoInput{Observacoes: strPtr("período de fechamento")})
	require.NoError(t, err)
	assert.Equal(t, "período de fechamento", *rejected.Observacoes)

	_, err = s.ferias.Approve(ctx, 999, AprovacaoInput{})
	requireKind(t, err, domain.KindNotFound, "Férias não encontradas")
}

func TestFeriasApproveDefaultsDate(t *testing.T) {
	ctx := context.Background()
	s := newServices()
	s.ferias.(*feriasService).now = fixedClock("2024-01-05T12:00:00Z")
	c := mustCreateColaborador(t, s.colaborador, 1)

	f, err := s.ferias.Create(ctx, FeriasInput{ColaboradorID: FlexInt(c.ID), DataInicio: "2024-02-01", DataFim: "2024-02-10"})
	require.NoError(t, err)

	approved, err := s.ferias.Approve(ctx, f.ID, AprovacaoInput{})
	require.NoError(t, err)
	require.NotNil(t, approved.DataAprovacao)
	assert.Equal(t, "2024-01-05T12:00:00Z", approved.DataAprovacao.Format(time.RFC3339))
	assert.Nil(t, approved.AprovadoPor)
}

func TestFeriasListAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newServices()
	c := mustCreateColaborador(t, s.colaborador, 1)

	var ids []int64
	for _, p := range [][2]string{{"2024-01-01", "2024-01-05"}, {"2024-03-01", "2024-03-05"}, {"2024-02-01", "2024-02-05"}} {
		f, err := s.ferias.Create(ctx, FeriasInput{ColaboradorID: FlexInt(c.ID), DataInicio: p[0], DataFim: p[1]})
		require.NoError(t, err)
		ids = append(ids, f.ID)
	}
	_, err := s.ferias.Approve(ctx, ids[0], AprovacaoInput{})
	require.NoError(t, err)

	page, err := s.ferias.List(ctx, domain.FeriasFilter{Status: "todos"})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, ids[1], page.Items[0].ID, "newest start date first")

	page, err = s.ferias.List(ctx, domain.FeriasFilter{Status: domain.FeriasPendente})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Pagination.Total)

	require.NoError(t, s.ferias.Delete(ctx, ids[0]))
	_, err = s.ferias.Get(ctx, ids[0])
	requireKind(t, err, domain.KindNotFound, "Férias não encontradas")
	requireKind(t, s.ferias.Delete(ctx, ids[0]), domain.KindNotFound, "")
}
