package simpleexcel

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type pessoa struct {
	Nome     string
	Salario  float64
	Admissao time.Time
	Gestor   *pessoa
	Apelido  *string
}

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestFluentExportWithFormatter(t *testing.T) {
	gestor := &pessoa{Nome: "Carla"}
	data := []pessoa{
		{Nome: "Ana", Salario: 5000, Gestor: gestor},
		{Nome: "Bruno", Salario: 4200.5},
	}

	exporter := NewDataExporter()
	exporter.RegisterFormatter("currency", func(v interface{}) interface{} {
		if f, ok := v.(float64); ok {
			return fmt.Sprintf("R$ %.2f", f)
		}
		return v
	})

	exporter.AddSheet("Equipe").
		AddSection(&SectionConfig{
			Title:      "Equipe",
			ShowHeader: true,
			Data:       data,
			Columns: []ColumnConfig{
				{FieldName: "Nome", Header: "Nome", Width: 20},
				{FieldName: "Salario", Header: "Salário", FormatterName: "currency"},
				{FieldName: "Gestor.Nome", Header: "Gestor"},
				{FieldName: "Apelido", Header: "Apelido"},
			},
		})

	out, err := exporter.ToBytes()
	require.NoError(t, err)

	f := openWorkbook(t, out)
	assert.Equal(t, []string{"Equipe"}, f.GetSheetList())

	rows, err := f.GetRows("Equipe")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Equipe", rows[0][0])
	assert.Equal(t, []string{"Nome", "Salário", "Gestor", "Apelido"}, rows[1])
	assert.Equal(t, []string{"Ana", "R$ 5000.00", "Carla"}, rows[2][:3])
	assert.Equal(t, []string{"Bruno", "R$ 4200.50"}, rows[3][:2])

	width, err := f.GetColWidth("Equipe", "A")
	require.NoError(t, err)
	assert.Equal(t, 20.0, width)
}

const templateYAML = `
sheets:
  - name: "Relatório"
    sections:
      - id: pessoas
        title: "Pessoas"
        show_header: true
        locked: true
        columns:
          - field_name: nome
            header: "Nome"
          - field_name: cargo
            header: "Cargo"
            formatter: upper
`

func TestYamlTemplateWithMapData(t *testing.T) {
	exporter, err := NewDataExporterFromYamlConfig(templateYAML)
	require.NoError(t, err)

	exporter.RegisterFormatter("upper", func(v interface{}) interface{} {
		return fmt.Sprintf("[%v]", v)
	})
	exporter.BindSectionData("pessoas", []map[string]interface{}{
		{"nome": "Ana", "cargo": "Analista"},
		{"nome": "Bruno"},
	})

	var buf bytes.Buffer
	require.NoError(t, exporter.ToWriter(&buf))

	f := openWorkbook(t, buf.Bytes())
	rows, err := f.GetRows("Relatório")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Ana", "[Analista]"}, rows[2])
	assert.Equal(t, []string{"Bruno", "[<nil>]"}, rows[3])
}

func TestYamlTemplateCanBeRenderedTwice(t *testing.T) {
	exporter, err := NewDataExporterFromYamlConfig(templateYAML)
	require.NoError(t, err)

	exporter.BindSectionData("pessoas", []map[string]interface{}{{"nome": "Ana"}})
	first, err := exporter.ToBytes()
	require.NoError(t, err)

	exporter.BindSectionData("pessoas", []map[string]interface{}{{"nome": "Bruno"}, {"nome": "Carla"}})
	second, err := exporter.ToBytes()
	require.NoError(t, err)

	rows, err := openWorkbook(t, first).GetRows("Relatório")
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	rows, err = openWorkbook(t, second).GetRows("Relatório")
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestInvalidTemplate(t *testing.T) {
	_, err := NewDataExporterFromYamlConfig("sheets: [")
	assert.Error(t, err)

	_, err = NewDataExporterFromYamlConfig("other: 1")
	assert.Error(t, err)
}

func TestHorizontalSections(t *testing.T) {
	exporter := NewDataExporter()
	exporter.AddSheet("Lado a lado").
		AddSection(&SectionConfig{
			ShowHeader: true,
			Data:       []pessoa{{Nome: "Ana"}},
			Columns:    []ColumnConfig{{FieldName: "Nome", Header: "Esquerda"}},
		}).
		AddSection(&SectionConfig{
			Direction:  SectionDirectionHorizontal,
			ShowHeader: true,
			Data:       []pessoa{{Nome: "Bruno"}},
			Columns:    []ColumnConfig{{FieldName: "Nome", Header: "Direita"}},
		})

	out, err := exporter.ToBytes()
	require.NoError(t, err)

	f := openWorkbook(t, out)
	val, err := f.GetCellValue("Lado a lado", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Bruno", val)
	assert.NotNil(t, exporter.GetSheet("Lado a lado"))
	assert.Nil(t, exporter.GetSheet("Outra"))
}
