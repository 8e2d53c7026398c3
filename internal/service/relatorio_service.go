package service

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/locvowork/gestao_rh/internal/domain"
	"github.com/locvowork/gestao_rh/internal/logger"
	"github.com/locvowork/gestao_rh/pkg/simpleexcel"
)

// exportPageSize is the number of rows fetched per store round trip while exporting.
const exportPageSize = domain.MaxLimit

//go:embed relatorios/*.yaml
var relatorioTemplates embed.FS

// RelatorioService renders list results into XLSX workbooks.
// Filters have the same meaning as in the list endpoints; paging fields are ignored.
type RelatorioService interface {
	ExportColaboradores(ctx context.Context, filter domain.ColaboradorFilter) ([]byte, error)
	ExportFerias(ctx context.Context, filter domain.FeriasFilter) ([]byte, error)
	ExportDocumentos(ctx context.Context, filter domain.DocumentoFilter) ([]byte, error)
}

type relatorioService struct {
	colaboradores domain.ColaboradorRepository
	ferias        domain.FeriasRepository
	documentos    domain.DocumentoRepository
	now           func() time.Time
}

// NewRelatorioService creates the spreadsheet report service
func NewRelatorioService(
	colaboradores domain.ColaboradorRepository,
	ferias domain.FeriasRepository,
	documentos domain.DocumentoRepository,
) RelatorioService {
	return &relatorioService{
		colaboradores: colaboradores,
		ferias:        ferias,
		documentos:    documentos,
		now:           time.Now,
	}
}

func (s *relatorioService) ExportColaboradores(ctx context.Context, filter domain.ColaboradorFilter) ([]byte, error) {
	filter.Status = domain.OptionValue(filter.Status)
	filter.Departamento = domain.OptionValue(filter.Departamento)
	if filter.Novos && filter.CriadoDesde == nil {
		desde := s.now().UTC().Add(-domain.NovosCadastrosJanela)
		filter.CriadoDesde = &desde
	}

	rows, err := fetchAll(func(p domain.PageRequest) ([]domain.Colaborador, error) {
		filter.PageRequest = p
		return s.colaboradores.List(ctx, filter)
	})
	if err != nil {
		return nil, err
	}
	return s.render(ctx, "colaboradores", rows, len(rows))
}

func (s *relatorioService) ExportFerias(ctx context.Context, filter domain.FeriasFilter) ([]byte, error) {
	filter.Status = domain.OptionValue(filter.Status)

	rows, err := fetchAll(func(p domain.PageRequest) ([]domain.Ferias, error) {
		filter.PageRequest = p
		return s.ferias.List(ctx, filter)
	})
	if err != nil {
		return nil, err
	}
	return s.render(ctx, "ferias", rows, len(rows))
}

func (s *relatorioService) ExportDocumentos(ctx context.Context, filter domain.DocumentoFilter) ([]byte, error) {
	filter.Tipo = domain.OptionValue(filter.Tipo)
	filter.Status = domain.OptionValue(filter.Status)

	rows, err := fetchAll(func(p domain.PageRequest) ([]domain.Documento, error) {
		filter.PageRequest = p
		return s.documentos.List(ctx, filter)
	})
	if err != nil {
		return nil, err
	}
	return s.render(ctx, "documentos", rows, len(rows))
}

// fetchAll pages through a list until a short page comes back.
func fetchAll[T any](list func(domain.PageRequest) ([]T, error)) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		items, err := list(domain.PageRequest{Page: page, Limit: exportPageSize})
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if len(items) < exportPageSize {
			return all, nil
		}
	}
}

// render loads the named template and binds rows to the section of the same id.
func (s *relatorioService) render(ctx context.Context, name string, rows interface{}, count int) ([]byte, error) {
	tmpl, err := relatorioTemplates.ReadFile("relatorios/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read report template %s: %w", name, err)
	}

	exporter, err := simpleexcel.NewDataExporterFromYamlConfig(string(tmpl))
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template %s: %w", name, err)
	}
	exporter.
		RegisterFormatter("date", formatDate).
		RegisterFormatter("currency", formatCurrency).
		BindSectionData(name, rows)

	out, err := exporter.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to generate report %s: %w", name, err)
	}

	logger.InfoLog(ctx, "relatorio %s gerado com %d linhas", name, count)
	return out, nil
}

func formatDate(v interface{}) interface{} {
	switch t := v.(type) {
	case time.Time:
		return t.Format("02/01/2006")
	case nil:
		return ""
	}
	return v
}

func formatCurrency(v interface{}) interface{} {
	f, ok := v.(float64)
	if !ok {
		return v
	}
	return "R$ " + formatBRL(f)
}

// formatBRL writes f with two decimals, "." as thousands separator and "," as decimal mark.
func formatBRL(f float64) string {
	neg := f < 0
	if neg {
		f = -f
	}
	s := fmt.Sprintf("%.2f", f)
	intPart, dec := s[:len(s)-3], s[len(s)-2:]

	var out []byte
	for i, r := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, r)
	}
	res := string(out) + "," + dec
	if neg {
		res = "-" + res
	}
	return res
}
