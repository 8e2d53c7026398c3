package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/locvowork/gestao_rh/internal/domain"
	"github.com/locvowork/gestao_rh/internal/logger"
)

const seedPageSize = domain.MaxLimit

// BulkIndexer pushes many collaborators to the search index at once.
type BulkIndexer interface {
	BulkIndex(ctx context.Context, colaboradores []domain.Colaborador) error
}

// SeedStats counts what a SeedData run inserted. Records that already
// existed are not counted.
type SeedStats struct {
	Departamentos int
	Cargos        int
	Colaboradores int
	Ferias        int
	Documentos    int
}

type DataSeeder struct {
	db    *sql.DB
	repos domain.Repositories
}

// NewDataSeeder creates a seeder over the given record store. db may be nil
// for the in-memory store; ClearData then falls back to the repositories.
func NewDataSeeder(db *sql.DB, repos domain.Repositories) *DataSeeder {
	return &DataSeeder{db: db, repos: repos}
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func seedDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func seedDatePtr(s string) *time.Time {
	t := seedDate(s)
	return &t
}

var seedDepartamentos = []domain.Departamento{
	{Nome: "Tecnologia", Descricao: strPtr("Departamento de Tecnologia da Informação")},
	{Nome: "Design", Descricao: strPtr("Departamento de Design e UX/UI")},
	{Nome: "Marketing", Descricao: strPtr("Departamento de Marketing e Comunicação")},
	{Nome: "RH", Descricao: strPtr("Recursos Humanos")},
	{Nome: "Financeiro", Descricao: strPtr("Departamento Financeiro")},
	{Nome: "Vendas", Descricao: strPtr("Departamento de Vendas")},
}

var seedCargos = []domain.Cargo{
	{Nome: "Desenvolvedor Full Stack", Descricao: strPtr("Desenvolvedor com conhecimento em frontend e backend"), Nivel: intPtr(3)},
	{Nome: "Designer UX/UI", Descricao: strPtr("Designer especializado em experiência do usuário"), Nivel: intPtr(2)},
	{Nome: "Analista de Marketing", Descricao: strPtr("Analista de marketing digital e estratégias"), Nivel: intPtr(2)},
	{Nome: "Recrutadora", Descricao: strPtr("Recrutadora e selecionadora de talentos"), Nivel: intPtr(2)},
	{Nome: "Gerente de Projetos", Descricao: strPtr("Gerente de projetos de tecnologia"), Nivel: intPtr(4)},
}

var seedColaboradores = []domain.Colaborador{
	{
		Nome:           "João Silva",
		CPF:            "123.456.789-00",
		RG:             strPtr("12.345.678-9"),
		OrgaoEmissor:   strPtr("SSP"),
		DataNascimento: seedDatePtr("1990-05-15"),
		Genero:         strPtr("masculino"),
		EstadoCivil:    strPtr("solteiro"),
		Nacionalidade:  strPtr("Brasileira"),
		Email:          "joao.silva@empresa.com",
		Telefone:       "(11) 99999-9999",
		Celular:        strPtr("(11) 88888-8888"),
		Cargo:          "Desenvolvedor Full Stack",
		Departamento:   "Tecnologia",
		DataAdmissao:   seedDate("2023-01-15"),
		TipoContrato:   "clt",
		Salario:        8500,
		Status:         domain.ColaboradorAtivo,
		PIS:            strPtr("123.45678.90-1"),
		CTPS:           strPtr("1234567890123456"),
	},
	{
		Nome:           "Maria Santos",
		CPF:            "987.654.321-00",
		RG:             strPtr("98.765.432-1"),
		OrgaoEmissor:   strPtr("SSP"),
		DataNascimento: seedDatePtr("1988-12-20"),
		Genero:         strPtr("feminino"),
		EstadoCivil:    strPtr("casado"),
		Nacionalidade:  strPtr("Brasileira"),
		Email:          "maria.santos@empresa.com",
		Telefone:       "(11) 77777-7777",
		Celular:        strPtr("(11) 66666-6666"),
		Cargo:          "Designer UX/UI",
		Departamento:   "Design",
		DataAdmissao:   seedDate("2023-03-20"),
		TipoContrato:   "clt",
		Salario:        7200,
		Status:         domain.ColaboradorAtivo,
		PIS:            strPtr("987.65432.10-9"),
		CTPS:           strPtr("9876543210987654"),
	},
	{
		Nome:           "Pedro Costa",
		CPF:            "456.789.123-00",
		RG:             strPtr("45.678.912-3"),
		OrgaoEmissor:   strPtr("SSP"),
		DataNascimento: seedDatePtr("1992-08-10"),
		Genero:         strPtr("masculino"),
		EstadoCivil:    strPtr("solteiro"),
		Nacionalidade:  strPtr("Brasileira"),
		Email:          "pedro.costa@empresa.com",
		Telefone:       "(11) 55555-5555",
		Celular:        strPtr("(11) 44444-4444"),
		Cargo:          "Analista de Marketing",
		Departamento:   "Marketing",
		DataAdmissao:   seedDate("2022-11-10"),
		TipoContrato:   "clt",
		Salario:        6800,
		Status:         domain.ColaboradorAtivo,
		PIS:            strPtr("456.78912.34-5"),
		CTPS:           strPtr("4567891234567890"),
	},
}

// seedFerias and seedDocumentos point at seedColaboradores by CPF.
var seedFerias = []struct {
	cpf     string
	ferias  domain.Ferias
	decisao *domain.FeriasDecision
}{
	{
		cpf: "123.456.789-00",
		ferias: domain.Ferias{
			DataInicio:  seedDate("2024-01-15"),
			DataFim:     seedDate("2024-01-30"),
			TipoFerias:  domain.FeriasAnuais,
			Status:      domain.FeriasPendente,
			Observacoes: strPtr("Férias de verão"),
		},
		decisao: &domain.FeriasDecision{
			Status:        domain.FeriasAprovado,
			AprovadoPor:   strPtr("Ana Oliveira"),
			DataAprovacao: seedDatePtr("2023-12-20"),
		},
	},
	{
		cpf: "987.654.321-00",
		ferias: domain.Ferias{
			DataInicio:  seedDate("2024-02-01"),
			DataFim:     seedDate("2024-02-15"),
			TipoFerias:  domain.FeriasAnuais,
			Status:      domain.FeriasPendente,
			Observacoes: strPtr("Férias de carnaval"),
		},
	},
}

var seedDocumentos = []struct {
	cpf       string
	documento domain.Documento
}{
	{
		cpf: "123.456.789-00",
		documento: domain.Documento{
			Nome:           "Contrato de Trabalho - João Silva",
			Tipo:           "contrato",
			Categoria:      "Contratos",
			DataVencimento: seedDatePtr("2025-01-15"),
			Status:         domain.DocumentoValido,
			Tamanho:        strPtr("2.5 MB"),
			Observacoes:    strPtr("Contrato CLT padrão"),
		},
	},
	{
		cpf: "987.654.321-00",
		documento: domain.Documento{
			Nome:           "RG - Maria Santos",
			Tipo:           "identidade",
			Categoria:      "Documentos Pessoais",
			DataVencimento: seedDatePtr("2024-12-31"),
			Status:         domain.DocumentoValido,
			Tamanho:        strPtr("1.8 MB"),
			Observacoes:    strPtr("RG atualizado"),
		},
	},
	{
		cpf: "456.789.123-00",
		documento: domain.Documento{
			Nome:           "Certificado de Reservista - Pedro Costa",
			Tipo:           "militar",
			Categoria:      "Documentos Militares",
			DataVencimento: seedDatePtr("2024-03-15"),
			Status:         domain.DocumentoVencido,
			Tamanho:        strPtr("1.2 MB"),
			Observacoes:    strPtr("Documento vencido - solicitar renovação"),
		},
	},
}

// SeedData inserts the demo dataset. Lookups and collaborators already present
// (by nome and by CPF) are skipped, and ferias and documentos are only added
// for collaborators created in this run, so running it twice is harmless.
func (ds *DataSeeder) SeedData(ctx context.Context) (*SeedStats, error) {
	start := time.Now()
	fmt.Println("🚀 Seeding data...")

	var stats SeedStats

	fmt.Println("🏢 Creating departamentos and cargos...")
	for _, d := range seedDepartamentos {
		_, err := ds.repos.Departamentos.GetByNome(ctx, d.Nome)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up departamento %s: %w", d.Nome, err)
		}
		if err := ds.repos.Departamentos.Create(ctx, &d); err != nil {
			return nil, fmt.Errorf("failed to insert departamento %s: %w", d.Nome, err)
		}
		stats.Departamentos++
	}
	for _, c := range seedCargos {
		_, err := ds.repos.Cargos.GetByNome(ctx, c.Nome)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up cargo %s: %w", c.Nome, err)
		}
		if err := ds.repos.Cargos.Create(ctx, &c); err != nil {
			return nil, fmt.Errorf("failed to insert cargo %s: %w", c.Nome, err)
		}
		stats.Cargos++
	}
	fmt.Printf("✅ Created %d departamentos, %d cargos\n", stats.Departamentos, stats.Cargos)

	fmt.Println("👥 Creating colaboradores...")
	created := make(map[string]int64, len(seedColaboradores))
	for _, c := range seedColaboradores {
		_, err := ds.repos.Colaboradores.GetByCPF(ctx, c.CPF)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up colaborador %s: %w", c.CPF, err)
		}
		if err := ds.repos.Colaboradores.Create(ctx, &c); err != nil {
			return nil, fmt.Errorf("failed to insert colaborador %s: %w", c.CPF, err)
		}
		created[c.CPF] = c.ID
		stats.Colaboradores++
	}
	fmt.Printf("✅ Created %d colaboradores\n", stats.Colaboradores)

	fmt.Println("🌴 Creating ferias and documentos...")
	for _, s := range seedFerias {
		id, ok := created[s.cpf]
		if !ok {
			continue
		}
		f := s.ferias
		f.ColaboradorID = id
		if err := ds.repos.Ferias.Create(ctx, &f); err != nil {
			return nil, fmt.Errorf("failed to insert ferias for %s: %w", s.cpf, err)
		}
		if s.decisao != nil {
			if err := ds.repos.Ferias.Decide(ctx, f.ID, *s.decisao); err != nil {
				return nil, fmt.Errorf("failed to decide ferias %d: %w", f.ID, err)
			}
		}
		stats.Ferias++
	}
	for _, s := range seedDocumentos {
		id, ok := created[s.cpf]
		if !ok {
			continue
		}
		d := s.documento
		d.ColaboradorID = id
		d.DataUpload = time.Now().UTC()
		if err := ds.repos.Documentos.Create(ctx, &d); err != nil {
			return nil, fmt.Errorf("failed to insert documento for %s: %w", s.cpf, err)
		}
		stats.Documentos++
	}
	fmt.Printf("✅ Created %d ferias, %d documentos\n", stats.Ferias, stats.Documentos)

	fmt.Printf("🎉 Done in %v\n", time.Since(start))
	logger.InfoLog(ctx, "seed finished: %+v", stats)
	return &stats, nil
}

// ClearData deletes every record, children first.
func (ds *DataSeeder) ClearData(ctx context.Context) error {
	fmt.Println("🗑️  Clearing data...")

	if ds.db == nil {
		return ds.clearRepositories(ctx)
	}

	tx, err := ds.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"documentos", "ferias", "colaboradores", "cargos", "departamentos"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to delete %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	fmt.Println("✅ Cleared SQL data")
	return nil
}

func (ds *DataSeeder) clearRepositories(ctx context.Context) error {
	for {
		docs, err := ds.repos.Documentos.List(ctx, domain.DocumentoFilter{PageRequest: domain.PageRequest{Page: 1, Limit: seedPageSize}})
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			break
		}
		for _, d := range docs {
			if err := ds.repos.Documentos.Delete(ctx, d.ID); err != nil {
				return err
			}
		}
	}
	for {
		ferias, err := ds.repos.Ferias.List(ctx, domain.FeriasFilter{PageRequest: domain.PageRequest{Page: 1, Limit: seedPageSize}})
		if err != nil {
			return err
		}
		if len(ferias) == 0 {
			break
		}
		for _, f := range ferias {
			if err := ds.repos.Ferias.Delete(ctx, f.ID); err != nil {
				return err
			}
		}
	}
	for {
		colaboradores, err := ds.repos.Colaboradores.List(ctx, domain.ColaboradorFilter{PageRequest: domain.PageRequest{Page: 1, Limit: seedPageSize}})
		if err != nil {
			return err
		}
		if len(colaboradores) == 0 {
			break
		}
		for _, c := range colaboradores {
			if err := ds.repos.Colaboradores.Delete(ctx, c.ID); err != nil {
				return err
			}
		}
	}

	cargos, err := ds.repos.Cargos.List(ctx)
	if err != nil {
		return err
	}
	for _, c := range cargos {
		if err := ds.repos.Cargos.Delete(ctx, c.ID); err != nil {
			return err
		}
	}
	departamentos, err := ds.repos.Departamentos.List(ctx)
	if err != nil {
		return err
	}
	for _, d := range departamentos {
		if err := ds.repos.Departamentos.Delete(ctx, d.ID); err != nil {
			return err
		}
	}

	fmt.Println("✅ Cleared data")
	return nil
}

// Reindex rebuilds the search index from the record store, one page at a time.
func (ds *DataSeeder) Reindex(ctx context.Context, index BulkIndexer) (int, error) {
	fmt.Println("🔎 Reindexing colaboradores...")

	total := 0
	for page := 1; ; page++ {
		filter := domain.ColaboradorFilter{PageRequest: domain.PageRequest{Page: page, Limit: seedPageSize}}
		batch, err := ds.repos.Colaboradores.List(ctx, filter)
		if err != nil {
			return total, err
		}
		if err := index.BulkIndex(ctx, batch); err != nil {
			return total, err
		}
		total += len(batch)
		if len(batch) < seedPageSize {
			break
		}
	}

	fmt.Printf("✅ Indexed %d colaboradores\n", total)
	return total, nil
}
