package service

import (
	"context"
	"testing"

	"github.com/locvowork/gestao_rh/internal/domain"
	"github.com/locvowork/gestao_rh/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCadastroDepartamentos(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewCadastroService(store.Departamentos(), store.Cargos())

	ti, err := svc.CreateDepartamento(ctx, DepartamentoInput{Nome: " TI ", Descricao: strPtr("Tecnologia")})
	require.NoError(t, err)
	assert.Equal(t, "TI", ti.Nome)

	_, err = svc.CreateDepartamento(ctx, DepartamentoInput{Nome: "RH"})
	require.NoError(t, err)

	_, err = svc.CreateDepartamento(ctx, DepartamentoInput{Nome: "TI"})
	requireKind(t, err, domain.KindConflict, "Departamento já cadastrado")

	_, err = svc.CreateDepartamento(ctx, DepartamentoInput{})
	requireKind(t, err, domain.KindValidation, "Campo obrigatório: nome")

	list, err := svc.ListDepartamentos(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "RH", list[0].Nome)

	// renaming to its own name is not a conflict
	updated, err := svc.UpdateDepartamento(ctx, ti.ID, DepartamentoInput{Nome: "TI", Descricao: strPtr("Infra e sistemas")})
	require.NoError(t, err)
	assert.Equal(t, "Infra e sistemas", *updated.Descricao)

	_, err = svc.UpdateDepartamento(ctx, ti.ID, DepartamentoInput{Nome: "RH"})
	requireKind(t, err, domain.KindConflict, "Departamento já cadastrado")

	require.NoError(t, svc.DeleteDepartamento(ctx, ti.ID))
	_, err = svc.GetDepartamento(ctx, ti.ID)
	requireKind(t, err, domain.KindNotFound, "Departamento não encontrado")
	requireKind(t, svc.DeleteDepartamento(ctx, ti.ID), domain.KindNotFound, "Departamento não encontrado")
}

func TestCadastroCargos(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewCadastroService(store.Departamentos(), store.Cargos())

	nivel := 2
	c, err := svc.CreateCargo(ctx, CargoInput{Nome: "Analista", Nivel: &nivel})
	require.NoError(t, err)
	require.NotNil(t, c.Nivel)
	assert.Equal(t, 2, *c.Nivel)

	zero := 0
	_, err = svc.CreateCargo(ctx, CargoInput{Nome: "Estagiário", Nivel: &zero})
	requireKind(t, err, domain.KindValidation, "Campo inválido: nivel")

	_, err = svc.CreateCargo(ctx, CargoInput{Nome: "Analista"})
	requireKind(t, err, domain.KindConflict, "Cargo já cadastrado")

	updated, err := svc.UpdateCargo(ctx, c.ID, CargoInput{Nome: "Analista Sênior"})
	require.NoError(t, err)
	assert.Nil(t, updated.Nivel)

	got, err := svc.GetCargo(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Analista Sênior", got.Nome)

	_, err = svc.UpdateCargo(ctx, 999, CargoInput{Nome: "Gerente"})
	requireKind(t, err, domain.KindNotFound, "Cargo não encontrado")

	require.NoError(t, svc.DeleteCargo(ctx, c.ID))
	list, err := svc.ListCargos(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
