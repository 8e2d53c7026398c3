package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/locvowork/gestao_rh/internal/domain"
	"github.com/locvowork/gestao_rh/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColaboradorCreate(t *testing.T) {
	ctx := context.Background()
	svc := newServices().colaborador

	c, err := svc.Create(ctx, colaboradorInput(1))
	require.NoError(t, err)
	assert.NotZero(t, c.ID)
	assert.Equal(t, domain.ColaboradorAtivo, c.Status)
	assert.Equal(t, 4500.0, c.Salario)
	assert.Equal(t, "2023-03-01", c.DataAdmissao.Format("2006-01-02"))
	assert.False(t, c.CreatedAt.IsZero())

	got, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Nome, got.Nome)
}

func TestColaboradorCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := newServices().colaborador

	tests := []struct {
		name   string
		modify func(in *ColaboradorInput)
		msg    string
	}{
		{"missing nome", func(in *ColaboradorInput) { in.Nome = "" }, "Campo obrigatório: nome"},
		{"missing cpf and email reports cpf", func(in *ColaboradorInput) { in.CPF, in.Email = "", "" }, "Campo obrigatório: cpf"},
		{"missing salario", func(in *ColaboradorInput) { in.Salario = 0 }, "Campo obrigatório: salario"},
		{"bad status", func(in *ColaboradorInput) { in.Status = "demitido" }, "Valor inválido para status: use um de [ativo inativo ferias licenca]"},
		{"bad admissao", func(in *ColaboradorInput) { in.DataAdmissao = "ontem" }, "Data inválida: dataAdmissao"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := colaboradorInput(1)
			tt.modify(&in)
			_, err := svc.Create(ctx, in)
			requireKind(t, err, domain.KindValidation, tt.msg)
		})
	}
}

func TestColaboradorCreateConflicts(t *testing.T) {
	ctx := context.Background()
	svc := newServices().colaborador
	mustCreateColaborador(t, svc, 1)

	dupCPF := colaboradorInput(2)
	dupCPF.CPF = colaboradorInput(1).CPF
	_, err := svc.Create(ctx, dupCPF)
	requireKind(t, err, domain.KindConflict, "CPF já cadastrado")

	dupEmail := colaboradorInput(2)
	dupEmail.Email = colaboradorInput(1).Email
	_, err = svc.Create(ctx, dupEmail)
	requireKind(t, err, domain.KindConflict, "E-mail já cadastrado")

	page, err := svc.List(ctx, domain.ColaboradorFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Pagination.Total)
}

func TestColaboradorListPagination(t *testing.T) {
	ctx := context.Background()
	svc := newServices().colaborador
	for i := 1; i <= 15; i++ {
		mustCreateColaborador(t, svc, i)
	}

	page, err := svc.List(ctx, domain.ColaboradorFilter{PageRequest: domain.PageRequest{Page: 2, Limit: 10}})
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, domain.Pagination{Page: 2, Limit: 10, Total: 15, Pages: 2}, page.Pagination)
	assert.Equal(t, "Colaborador 11", page.Items[0].Nome)

	page, err = svc.List(ctx, domain.ColaboradorFilter{PageRequest: domain.PageRequest{Page: -1, Limit: 0}})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Pagination.Page)
	assert.Equal(t, 10, page.Pagination.Limit)
	assert.Len(t, page.Items, 10)
}

func TestColaboradorListFilters(t *testing.T) {
	ctx := context.Background()
	s := newServices()
	svc := s.colaborador

	ana := colaboradorInput(1)
	ana.Nome, ana.Departamento = "Ana Souza", "RH"
	_, err := svc.Create(ctx, ana)
	require.NoError(t, err)

	bruno := colaboradorInput(2)
	bruno.Nome, bruno.Status = "Bruno Lima", domain.ColaboradorInativo
	_, err = svc.Create(ctx, bruno)
	require.NoError(t, err)

	t.Run("search is case insensitive", func(t *testing.T) {
		page, err := svc.List(ctx, domain.ColaboradorFilter{Search: "  souza "})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Ana Souza", page.Items[0].Nome)
	})

	t.Run("todos means no filter", func(t *testing.T) {
		page, err := svc.List(ctx, domain.ColaboradorFilter{Status: "todos", Departamento: "todos"})
		require.NoError(t, err)
		assert.Equal(t, 2, page.Pagination.Total)
	})

	t.Run("status and departamento", func(t *testing.T) {
		page, err := svc.List(ctx, domain.ColaboradorFilter{Status: domain.ColaboradorInativo})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Bruno Lima", page.Items[0].Nome)

		page, err = svc.List(ctx, domain.ColaboradorFilter{Departamento: "RH"})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Ana Souza", page.Items[0].Nome)
	})

	t.Run("novos", func(t *testing.T) {
		impl := svc.(*colaboradorService)
		impl.now = func() time.Time { return time.Now().Add(60 * 24 * time.Hour) }
		defer func() { impl.now = time.Now }()

		page, err := svc.List(ctx, domain.ColaboradorFilter{Novos: true})
		require.NoError(t, err)
		assert.Equal(t, 0, page.Pagination.Total)
	})
}

func TestColaboradorUpdate(t *testing.T) {
	ctx := context.Background()
	svc := newServices().colaborador
	first := mustCreateColaborador(t, svc, 1)
	second := mustCreateColaborador(t, svc, 2)

	in := colaboradorInput(1)
	in.Cargo = "Coordenador"
	updated, err := svc.Update(ctx, first.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Coordenador", updated.Cargo)
	assert.Equal(t, first.CreatedAt, updated.CreatedAt)
	assert.Equal(t, domain.ColaboradorAtivo, updated.Status)

	in.Email = second.Email
	_, err = svc.Update(ctx, first.ID, in)
	requireKind(t, err, domain.KindConflict, "E-mail já cadastrado")

	_, err = svc.Update(ctx, 999, colaboradorInput(3))
	requireKind(t, err, domain.KindNotFound, "Colaborador não encontrado")
}

func TestColaboradorDelete(t *testing.T) {
	ctx := context.Background()
	s := newServices()
	c := mustCreateColaborador(t, s.colaborador, 1)

	_, err := s.ferias.Create(ctx, FeriasInput{ColaboradorID: FlexInt(c.ID), DataInicio: "2024-01-01", DataFim: "2024-01-10"})
	require.NoError(t, err)

	err = s.colaborador.Delete(ctx, c.ID)
	requireKind(t, err, domain.KindConflict, "")

	other := mustCreateColaborador(t, s.colaborador, 2)
	require.NoError(t, s.colaborador.Delete(ctx, other.ID))

	_, err = s.colaborador.Get(ctx, other.ID)
	requireKind(t, err, domain.KindNotFound, "Colaborador não encontrado")

	err = s.colaborador.Delete(ctx, other.ID)
	requireKind(t, err, domain.KindNotFound, "Colaborador não encontrado")
}

type fakeIndex struct {
	ids     []int64
	err     error
	indexed []int64
	removed []int64
}

func (f *fakeIndex) Index(_ context.Context, c *domain.Colaborador) error {
	f.indexed = append(f.indexed, c.ID)
	return f.err
}

func (f *fakeIndex) Remove(_ context.Context, id int64) error {
	f.removed = append(f.removed, id)
	return f.err
}

func (f *fakeIndex) Search(_ context.Context, _ string, limit int) ([]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.ids) > limit {
		return f.ids[:limit], nil
	}
	return f.ids, nil
}

func TestColaboradorSearch(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	index := &fakeIndex{}
	svc := NewColaboradorService(store.Colaboradores(), index)

	a := mustCreateColaborador(t, svc, 1)
	b := mustCreateColaborador(t, svc, 2)
	assert.Equal(t, []int64{a.ID, b.ID}, index.indexed)

	t.Run("empty query", func(t *testing.T) {
		res, err := svc.Search(ctx, "  ", 0)
		require.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("index hits keep order and skip stale ids", func(t *testing.T) {
		index.ids = []int64{b.ID, 999, a.ID}
		res, err := svc.Search(ctx, "colaborador", 10)
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, b.ID, res[0].ID)
		assert.Equal(t, a.ID, res[1].ID)
	})

	t.Run("falls back to the store when the index fails", func(t *testing.T) {
		index.err = errors.New("connection refused")
		defer func() { index.err = nil }()

		res, err := svc.Search(ctx, "colaborador 02", 10)
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, b.ID, res[0].ID)
	})

	t.Run("delete removes from index", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, a.ID))
		assert.Equal(t, []int64{a.ID}, index.removed)
	})
}

func TestColaboradorSearchWithoutIndex(t *testing.T) {
	svc := newServices().colaborador
	for i := 1; i <= 3; i++ {
		mustCreateColaborador(t, svc, i)
	}

	res, err := svc.Search(context.Background(), "colaborador", 2)
	require.NoError(t, err)
	assert.Len(t, res, 2)
}
