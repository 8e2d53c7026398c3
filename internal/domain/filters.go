package domain

import (
	"math"
	"strings"
	"time"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit inside int.
	MaxPage = math.MaxInt / MaxLimit
)

// Time windows used by list filters and the dashboard.
const (
	NovosCadastrosJanela    = 30 * 24 * time.Hour
	ProximoVencimentoJanela = 30 * 24 * time.Hour
	ValidadeRenovacao       = 365 * 24 * time.Hour
)

// PageRequest is the page/limit pair accepted by every list endpoint.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize replaces non-positive values with the defaults and clamps
// oversized ones to MaxPage and MaxLimit.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset is the number of rows skipped before this page.
func (p PageRequest) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}

// Pagination is the metadata returned next to every list.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPagination computes the page count for total rows.
func NewPagination(req PageRequest, total int) Pagination {
	req = req.Normalize()
	pages := total / req.Limit
	if total%req.Limit != 0 {
		pages++
	}
	return Pagination{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
		Pages: pages,
	}
}

// Page is one page of items plus its pagination metadata.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}

// OptionValue drops the "todos" sentinel the UI sends for "no filter".
func OptionValue(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "todos") {
		return ""
	}
	return v
}

// ColaboradorFilter narrows collaborator lists and counts. Zero fields do not filter.
type ColaboradorFilter struct {
	PageRequest
	// Search matches nome, email or cargo, case-insensitively.
	Search       string
	Status       string
	Departamento string
	CriadoDesde  *time.Time
	// Novos asks for collaborators created within NovosCadastrosJanela.
	// The service resolves it into CriadoDesde.
	Novos bool
}

// FeriasFilter narrows vacation lists and counts.
type FeriasFilter struct {
	PageRequest
	Status        string
	ColaboradorID int64
}

// DocumentoFilter narrows document lists and counts.
type DocumentoFilter struct {
	PageRequest
	// Search matches document nome, collaborator nome or categoria.
	Search        string
	Tipo          string
	Status        string
	ColaboradorID int64
	// VencimentoAntes keeps documents expiring strictly before the instant.
	VencimentoAntes *time.Time
	// VencimentoDe and VencimentoAte bound dataVencimento inclusively.
	VencimentoDe  *time.Time
	VencimentoAte *time.Time
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
