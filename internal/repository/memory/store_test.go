package memory

import (
	"context"
	"testing"
	"time"

	"github.com/locvowork/gestao_rh/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func newColaborador(nome, cpf, email string) *domain.Colaborador {
	return &domain.Colaborador{
		Nome:         nome,
		CPF:          cpf,
		Email:        email,
		Telefone:     "(11) 99999-0000",
		Cargo:        "Analista",
		Departamento: "TI",
		DataAdmissao: date("2023-01-10"),
		TipoContrato: "CLT",
		Salario:      5000,
		Status:       domain.ColaboradorAtivo,
	}
}

func TestColaboradorUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Colaboradores()

	require.NoError(t, repo.Create(ctx, newColaborador("Ana", "111", "ana@empresa.com")))

	err := repo.Create(ctx, newColaborador("Outra", "111", "outra@empresa.com"))
	assert.EqualError(t, err, "CPF já cadastrado")

	err = repo.Create(ctx, newColaborador("Outra", "222", "ana@empresa.com"))
	assert.EqualError(t, err, "E-mail já cadastrado")

	total, err := repo.Count(ctx, domain.ColaboradorFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestColaboradorUniquenessReportsCPFFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Colaboradores()

	for i, email := range []string{"a@empresa.com", "b@empresa.com", "c@empresa.com", "d@empresa.com"} {
		require.NoError(t, repo.Create(ctx, newColaborador("Pessoa", string(rune('1'+i)), email)))
	}

	// cpf of the last row, email of the first: map order must not matter
	for i := 0; i < 20; i++ {
		err := repo.Create(ctx, newColaborador("Nova", "4", "a@empresa.com"))
		assert.EqualError(t, err, "CPF já cadastrado")
	}
}

func TestColaboradorListFilterAndPaging(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Colaboradores()

	for i, nome := range []string{"Carlos", "ana", "Bruno", "Daniela"} {
		c := newColaborador(nome, string(rune('a'+i)), nome+"@empresa.com")
		if nome == "Bruno" {
			c.Status = domain.ColaboradorInativo
		}
		require.NoError(t, repo.Create(ctx, c))
	}

	page, err := repo.List(ctx, domain.ColaboradorFilter{PageRequest: domain.PageRequest{Page: 1, Limit: 2}})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "ana", page[0].Nome)
	assert.Equal(t, "Bruno", page[1].Nome)

	page, err = repo.List(ctx, domain.ColaboradorFilter{PageRequest: domain.PageRequest{Page: 3, Limit: 2}})
	require.NoError(t, err)
	assert.Empty(t, page)

	n, err := repo.Count(ctx, domain.ColaboradorFilter{Status: domain.ColaboradorAtivo, Search: "A"})
	require.NoError(t, err)
	assert.Equal(t, 3, n, "ana, Carlos and Daniela match nome or email")
}

func TestColaboradorDeleteWithReferences(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	c := newColaborador("Ana", "111", "ana@empresa.com")
	require.NoError(t, s.Colaboradores().Create(ctx, c))
	require.NoError(t, s.Ferias().Create(ctx, &domain.Ferias{
		ColaboradorID: c.ID,
		DataInicio:    date("2024-07-01"),
		DataFim:       date("2024-07-15"),
		TipoFerias:    domain.FeriasAnuais,
		Status:        domain.FeriasPendente,
	}))

	err := s.Colaboradores().Delete(ctx, c.ID)
	assert.True(t, domain.IsKind(err, domain.KindConflict))

	assert.ErrorIs(t, s.Colaboradores().Delete(ctx, 999), domain.ErrNotFound)
}

func TestFeriasOverlapAndDecide(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	c := newColaborador("Ana", "111", "ana@empresa.com")
	require.NoError(t, s.Colaboradores().Create(ctx, c))

	f := &domain.Ferias{
		ColaboradorID: c.ID,
		DataInicio:    date("2024-07-01"),
		DataFim:       date("2024-07-15"),
		TipoFerias:    domain.FeriasAnuais,
		Status:        domain.FeriasPendente,
	}
	require.NoError(t, s.Ferias().Create(ctx, f))

	overlap, err := s.Ferias().HasOverlap(ctx, c.ID, date("2024-07-15"), date("2024-07-20"))
	require.NoError(t, err)
	assert.True(t, overlap, "shared boundary day overlaps")

	overlap, err = s.Ferias().HasOverlap(ctx, c.ID, date("2024-07-16"), date("2024-07-20"))
	require.NoError(t, err)
	assert.False(t, overlap)

	overlap, err = s.Ferias().HasOverlap(ctx, c.ID+100, date("2024-07-01"), date("2024-07-20"))
	require.NoError(t, err)
	assert.False(t, overlap)

	obs := "primeira"
	require.NoError(t, s.Ferias().Decide(ctx, f.ID, domain.FeriasDecision{Status: domain.FeriasReprovado, Observacoes: &obs}))
	require.NoError(t, s.Ferias().Decide(ctx, f.ID, domain.FeriasDecision{Status: domain.FeriasReprovado}))

	got, err := s.Ferias().GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.FeriasReprovado, got.Status)
	require.NotNil(t, got.Observacoes)
	assert.Equal(t, "primeira", *got.Observacoes)
	require.NotNil(t, got.Colaborador)
	assert.Equal(t, "Ana", got.Colaborador.Nome)

	assert.ErrorIs(t, s.Ferias().Decide(ctx, 999, domain.FeriasDecision{Status: domain.FeriasAprovado}), domain.ErrNotFound)
}

func TestDocumentoVencimentoFilters(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	c := newColaborador("Ana", "111", "ana@empresa.com")
	require.NoError(t, s.Colaboradores().Create(ctx, c))

	now := date("2024-06-01")
	vencido := now.AddDate(0, 0, -1)
	proximo := now.AddDate(0, 0, 10)
	longe := now.AddDate(1, 0, 0)
	for _, v := range []*time.Time{&vencido, &proximo, &longe, nil} {
		require.NoError(t, s.Documentos().Create(ctx, &domain.Documento{
			ColaboradorID:  c.ID,
			Nome:           "Contrato",
			Tipo:           "contrato",
			Categoria:      "Trabalhista",
			DataVencimento: v,
			Status:         domain.DocumentoValido,
		}))
	}

	n, err := s.Documentos().Count(ctx, domain.DocumentoFilter{Status: domain.DocumentoValido, VencimentoAntes: &now})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	ate := now.AddDate(0, 0, 30)
	n, err = s.Documentos().Count(ctx, domain.DocumentoFilter{Status: domain.DocumentoValido, VencimentoDe: &now, VencimentoAte: &ate})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = s.Documentos().Count(ctx, domain.DocumentoFilter{Search: "ana"})
	require.NoError(t, err)
	assert.Equal(t, 4, n, "search matches the collaborator name")
}

func TestLatestCreatedOrder(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	base := date("2024-01-01")
	tick := 0
	s.Now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Hour)
	}

	for i := 0; i < 7; i++ {
		require.NoError(t, s.Colaboradores().Create(ctx, newColaborador("C", string(rune('a'+i)), string(rune('a'+i))+"@x.com")))
	}

	recent, err := s.Colaboradores().LatestCreated(ctx, 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.True(t, recent[0].CreatedAt.After(recent[4].CreatedAt))
}

func TestCadastroUniqueNome(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.Departamentos().Create(ctx, &domain.Departamento{Nome: "TI"}))
	assert.EqualError(t, s.Departamentos().Create(ctx, &domain.Departamento{Nome: "TI"}), "Departamento já cadastrado")

	require.NoError(t, s.Cargos().Create(ctx, &domain.Cargo{Nome: "Analista"}))
	assert.EqualError(t, s.Cargos().Create(ctx, &domain.Cargo{Nome: "Analista"}), "Cargo já cadastrado")

	list, err := s.Cargos().List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
