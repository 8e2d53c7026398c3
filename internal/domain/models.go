package domain

import "time"

// Colaborador status values.
const (
	ColaboradorAtivo   = "ativo"
	ColaboradorInativo = "inativo"
	ColaboradorFerias  = "ferias"
	ColaboradorLicenca = "licenca"
)

// Ferias status values. A request is created pendente and decided once,
// although nothing stops a decided request from being decided again.
const (
	FeriasPendente  = "pendente"
	FeriasAprovado  = "aprovado"
	FeriasReprovado = "reprovado"
)

// Ferias types.
const (
	FeriasAnuais         = "ferias_anuais"
	FeriasCompensatorias = "ferias_compensatorias"
	FeriasCompensacao    = "ferias_compensacao"
	FeriasEspeciais      = "ferias_especiais"
)

// Documento status values.
const (
	DocumentoValido   = "valido"
	DocumentoVencido  = "vencido"
	DocumentoPendente = "pendente"
)

// ==================== PEOPLE ====================

// Colaborador represents the colaboradores table
type Colaborador struct {
	ID                 int64      `json:"id"`
	Nome               string     `json:"nome"`
	CPF                string     `json:"cpf"`
	RG                 *string    `json:"rg"`
	OrgaoEmissor       *string    `json:"orgaoEmissor"`
	DataNascimento     *time.Time `json:"dataNascimento"`
	Genero             *string    `json:"genero"`
	EstadoCivil        *string    `json:"estadoCivil"`
	Nacionalidade      *string    `json:"nacionalidade"`
	Email              string     `json:"email"`
	Telefone           string     `json:"telefone"`
	Celular            *string    `json:"celular"`
	TelefoneEmergencia *string    `json:"telefoneEmergencia"`
	CEP                *string    `json:"cep"`
	Logradouro         *string    `json:"logradouro"`
	Numero             *string    `json:"numero"`
	Complemento        *string    `json:"complemento"`
	Bairro             *string    `json:"bairro"`
	Cidade             *string    `json:"cidade"`
	Estado             *string    `json:"estado"`
	Cargo              string     `json:"cargo"`
	Departamento       string     `json:"departamento"`
	DataAdmissao       time.Time  `json:"dataAdmissao"`
	TipoContrato       string     `json:"tipoContrato"`
	Salario            float64    `json:"salario"`
	Status             string     `json:"status"`
	PIS                *string    `json:"pis"`
	CTPS               *string    `json:"ctps"`
	TituloEleitor      *string    `json:"tituloEleitor"`
	Reservista         *string    `json:"reservista"`
	Observacoes        *string    `json:"observacoes"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// ColaboradorResumo is the collaborator projection joined into Ferias and Documento rows.
type ColaboradorResumo struct {
	ID           int64  `json:"id"`
	Nome         string `json:"nome"`
	Cargo        string `json:"cargo"`
	Departamento string `json:"departamento"`
}

// Resumo returns the join projection of c.
func (c *Colaborador) Resumo() *ColaboradorResumo {
	return &ColaboradorResumo{
		ID:           c.ID,
		Nome:         c.Nome,
		Cargo:        c.Cargo,
		Departamento: c.Departamento,
	}
}

// ==================== LEAVE ====================

// Ferias represents the ferias table
type Ferias struct {
	ID            int64              `json:"id"`
	ColaboradorID int64              `json:"colaboradorId"`
	DataInicio    time.Time          `json:"dataInicio"`
	DataFim       time.Time          `json:"dataFim"`
	TipoFerias    string             `json:"tipoFerias"`
	Status        string             `json:"status"`
	Observacoes   *string            `json:"observacoes"`
	AprovadoPor   *string            `json:"aprovadoPor"`
	DataAprovacao *time.Time         `json:"dataAprovacao"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
	Colaborador   *ColaboradorResumo `json:"colaborador,omitempty"`
}

// PeriodsOverlap reports whether the closed intervals [aInicio, aFim] and
// [bInicio, bFim] share at least one instant. Touching boundaries overlap.
func PeriodsOverlap(aInicio, aFim, bInicio, bFim time.Time) bool {
	return !aInicio.After(bFim) && !bInicio.After(aFim)
}

// FeriasDecision carries the fields written by an approve or reject action.
type FeriasDecision struct {
	Status        string
	AprovadoPor   *string
	DataAprovacao *time.Time
	// Observacoes replaces the stored value only when non-nil.
	Observacoes *string
}

// ==================== DOCUMENTS ====================

// Documento represents the documentos table
type Documento struct {
	ID             int64              `json:"id"`
	ColaboradorID  int64              `json:"colaboradorId"`
	Nome           string             `json:"nome"`
	Tipo           string             `json:"tipo"`
	Categoria      string             `json:"categoria"`
	DataUpload     time.Time          `json:"dataUpload"`
	DataVencimento *time.Time         `json:"dataVencimento"`
	Status         string             `json:"status"`
	Tamanho        *string            `json:"tamanho"`
	CaminhoArquivo *string            `json:"caminhoArquivo"`
	Observacoes    *string            `json:"observacoes"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
	Colaborador    *ColaboradorResumo `json:"colaborador,omitempty"`
}

// ==================== LOOKUPS ====================

// Departamento represents the departamentos table
type Departamento struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	Descricao *string   `json:"descricao"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Cargo represents the cargos table
type Cargo struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	Descricao *string   `json:"descricao"`
	Nivel     *int      `json:"nivel"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ==================== DASHBOARD ====================

// Estatisticas holds the dashboard counters.
type Estatisticas struct {
	TotalColaboradores           int `json:"totalColaboradores"`
	ColaboradoresAtivos          int `json:"colaboradoresAtivos"`
	ColaboradoresInativos        int `json:"colaboradoresInativos"`
	FeriasPendentes              int `json:"feriasPendentes"`
	FeriasAprovadas              int `json:"feriasAprovadas"`
	FeriasReprovadas             int `json:"feriasReprovadas"`
	TotalFerias                  int `json:"totalFerias"`
	DocumentosVencidos           int `json:"documentosVencidos"`
	DocumentosProximosVencimento int `json:"documentosProximosVencimento"`
	DocumentosValidos            int `json:"documentosValidos"`
	TotalDocumentos              int `json:"totalDocumentos"`
	NovosCadastros               int `json:"novosCadastros"`
}

// AtividadeRecente is a collaborator touched recently.
type AtividadeRecente struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ColaboradorRecente is a recently registered collaborator.
type ColaboradorRecente struct {
	ID           int64     `json:"id"`
	Nome         string    `json:"nome"`
	CPF          string    `json:"cpf"`
	Email        string    `json:"email"`
	Cargo        string    `json:"cargo"`
	Departamento string    `json:"departamento"`
	DataAdmissao time.Time `json:"dataAdmissao"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DashboardSummary is the payload of GET /api/dashboard.
type DashboardSummary struct {
	Estatisticas          Estatisticas         `json:"estatisticas"`
	AtividadesRecentes    []AtividadeRecente   `json:"atividadesRecentes"`
	ColaboradoresRecentes []ColaboradorRecente `json:"colaboradoresRecentes"`
	FeriasRecentes        []Ferias             `json:"feriasRecentes"`
	DocumentosRecentes    []Documento          `json:"documentosRecentes"`
}
