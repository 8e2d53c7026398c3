package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/locvowork/gestao_rh/internal/domain"
	"github.com/locvowork/gestao_rh/internal/repository/memory"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func colaboradorInput(n int) ColaboradorInput {
	return ColaboradorInput{
		Nome:         fmt.Sprintf("Colaborador %02d", n),
		CPF:          fmt.Sprintf("000.000.000-%02d", n),
		Email:        fmt.Sprintf("colaborador%02d@empresa.com", n),
		Telefone:     "(11) 98888-0000",
		Cargo:        "Analista",
		Departamento: "TI",
		DataAdmissao: "2023-03-01",
		TipoContrato: "CLT",
		Salario:      4500,
	}
}

func mustCreateColaborador(t *testing.T, svc ColaboradorService, n int) *domain.Colaborador {
	t.Helper()
	c, err := svc.Create(context.Background(), colaboradorInput(n))
	require.NoError(t, err)
	return c
}

func fixedClock(ts string) func() time.Time {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func requireKind(t *testing.T, err error, kind domain.ErrorKind, msg string) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, domain.KindOf(err), "unexpected error: %v", err)
	if msg != "" {
		require.EqualError(t, err, msg)
	}
}

type services struct {
	store       *memory.Store
	colaborador ColaboradorService
	ferias      FeriasService
	documento   DocumentoService
}

func newServices() *services {
	store := memory.NewStore()
	return &services{
		store:       store,
		colaborador: NewColaboradorService(store.Colaboradores(), nil),
		ferias:      NewFeriasService(store.Ferias(), store.Colaboradores()),
		documento:   NewDocumentoService(store.Documentos(), store.Colaboradores()),
	}
}
