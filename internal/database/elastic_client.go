package database

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/locvowork/gestao_rh/internal/domain"
	"github.com/olivere/elastic/v7"
)

const colaboradorMapping = `{
  "mappings": {
    "properties": {
      "id":           {"type": "long"},
      "nome":         {"type": "text"},
      "cpf":          {"type": "keyword"},
      "email":        {"type": "text"},
      "cargo":        {"type": "text"},
      "departamento": {"type": "keyword"},
      "status":       {"type": "keyword"}
    }
  }
}`

// ColaboradorDoc mirrors the searchable part of domain.Colaborador for ES storage.
type ColaboradorDoc struct {
	ID           int64  `json:"id"`
	Nome         string `json:"nome"`
	CPF          string `json:"cpf"`
	Email        string `json:"email"`
	Cargo        string `json:"cargo"`
	Departamento string `json:"departamento"`
	Status       string `json:"status"`
}

func newColaboradorDoc(c *domain.Colaborador) ColaboradorDoc {
	return ColaboradorDoc{
		ID:           c.ID,
		Nome:         c.Nome,
		CPF:          c.CPF,
		Email:        c.Email,
		Cargo:        c.Cargo,
		Departamento: c.Departamento,
		Status:       c.Status,
	}
}

// ElasticSearchClient wraps olivere/elastic client and implements domain.ColaboradorIndex.
type ElasticSearchClient struct {
	client *elastic.Client
	index  string
}

var _ domain.ColaboradorIndex = (*ElasticSearchClient)(nil)

// NewElasticSearchClient creates a new client for Elasticsearch 7.x.
func NewElasticSearchClient(url, index string) (*ElasticSearchClient, error) {
	client, err := elastic.NewClient(
		elastic.SetURL(url),
		elastic.SetSniff(false), // Essential when using Docker or cloud
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &ElasticSearchClient{client: client, index: index}, nil
}

// EnsureIndex creates the collaborator index with its mapping if missing.
func (es *ElasticSearchClient) EnsureIndex(ctx context.Context) error {
	exists, err := es.client.IndexExists(es.index).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check index %s: %w", es.index, err)
	}
	if exists {
		return nil
	}
	if _, err := es.client.CreateIndex(es.index).BodyString(colaboradorMapping).Do(ctx); err != nil {
		return fmt.Errorf("failed to create index %s: %w", es.index, err)
	}
	return nil
}

// Index upserts one collaborator using its id as document id.
func (es *ElasticSearchClient) Index(ctx context.Context, c *domain.Colaborador) error {
	_, err := es.client.Index().
		Index(es.index).
		Id(strconv.FormatInt(c.ID, 10)).
		BodyJson(newColaboradorDoc(c)).
		Refresh("true"). // Make changes immediately searchable
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index colaborador %d: %w", c.ID, err)
	}
	return nil
}

// Remove deletes a collaborator document. Missing documents are not an error.
func (es *ElasticSearchClient) Remove(ctx context.Context, id int64) error {
	_, err := es.client.Delete().
		Index(es.index).
		Id(strconv.FormatInt(id, 10)).
		Refresh("true").
		Do(ctx)
	if err != nil && !elastic.IsNotFound(err) {
		return fmt.Errorf("failed to remove colaborador %d: %w", id, err)
	}
	return nil
}

// Search performs a prefix-tolerant full-text match on nome, email and cargo.
func (es *ElasticSearchClient) Search(ctx context.Context, query string, limit int) ([]int64, error) {
	q := elastic.NewMultiMatchQuery(query, "nome^3", "email", "cargo").
		Type("phrase_prefix")

	searchResult, err := es.client.Search().
		Index(es.index).
		Query(q).
		Size(limit).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	ids := make([]int64, 0, len(searchResult.Hits.Hits))
	for _, hit := range searchResult.Hits.Hits {
		var doc ColaboradorDoc
		if err := json.Unmarshal(hit.Source, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode hit %s: %w", hit.Id, err)
		}
		ids = append(ids, doc.ID)
	}
	return ids, nil
}

// BulkIndex efficiently indexes many collaborators.
func (es *ElasticSearchClient) BulkIndex(ctx context.Context, colaboradores []domain.Colaborador) error {
	bulkRequest := es.client.Bulk()

	for i := range colaboradores {
		c := &colaboradores[i]
		req := elastic.NewBulkIndexRequest().
			Index(es.index).
			Id(strconv.FormatInt(c.ID, 10)).
			Doc(newColaboradorDoc(c))
		bulkRequest = bulkRequest.Add(req)
	}

	if bulkRequest.NumberOfActions() == 0 {
		return nil
	}

	bulkResponse, err := bulkRequest.Refresh("true").Do(ctx)
	if err != nil {
		return fmt.Errorf("bulk index failed: %w", err)
	}

	if bulkResponse.Errors {
		for _, item := range bulkResponse.Items {
			for _, op := range item {
				if op.Error != nil {
					return fmt.Errorf("bulk item failed: %s", op.Error.Reason)
				}
			}
		}
	}

	return nil
}
