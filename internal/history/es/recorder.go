package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/calc-hunter/internal/history"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

type ClientConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
}

func newClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	cfg := elasticsearch.Config{
		Addresses: config.Addresses,
	}

	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	return elasticsearch.NewTypedClient(cfg)
}

// Document is the indexed form of a history.Evaluation.
type Document struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Postfix    string    `json:"postfix,omitempty"`
	Result     *float64  `json:"result,omitempty"`
	Error      string    `json:"error,omitempty"`
	ErrorCode  string    `json:"error_code,omitempty"`
	DurationNs int64     `json:"duration_ns"`
	CreatedAt  time.Time `json:"created_at"`
}

func toDocument(e history.Evaluation) Document {
	return Document{
		ID:         e.ID.String(),
		Expression: e.Expression,
		Postfix:    e.Postfix,
		Result:     e.Result,
		Error:      e.Error,
		ErrorCode:  e.ErrorCode,
		DurationNs: e.Duration.Nanoseconds(),
		CreatedAt:  e.CreatedAt,
	}
}

func (d Document) toEvaluation() (history.Evaluation, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return history.Evaluation{}, fmt.Errorf("failed to parse evaluation ID: %w", err)
	}
	return history.Evaluation{
		ID:         id,
		Expression: d.Expression,
		Postfix:    d.Postfix,
		Result:     d.Result,
		Error:      d.Error,
		ErrorCode:  d.ErrorCode,
		Duration:   time.Duration(d.DurationNs),
		CreatedAt:  d.CreatedAt,
	}, nil
}

type Recorder struct {
	client    *elasticsearch.TypedClient
	indexName string
	// refresh makes saved documents immediately searchable; used by tests.
	refresh bool
}

type RecorderOption func(*Recorder)

func WithRefresh() RecorderOption {
	return func(r *Recorder) {
		r.refresh = true
	}
}

func NewRecorder(ctx context.Context, config ClientConfig, opts ...RecorderOption) (*Recorder, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	r := &Recorder{
		client:    client,
		indexName: config.IndexName,
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return r, nil
}

func (r *Recorder) Save(ctx context.Context, e history.Evaluation) (uuid.UUID, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	doc := toDocument(e)

	req := r.client.Index(r.indexName).Id(doc.ID).Document(doc)
	if r.refresh {
		req = req.Refresh(refresh.True)
	}

	res, err := req.Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index evaluation: %w", err)
	}

	slog.Debug("Evaluation indexed", "id", doc.ID, "index", r.indexName, "result", res.Result)
	return e.ID, nil
}

func (r *Recorder) Recent(ctx context.Context, limit int) ([]history.Evaluation, error) {
	limit = history.ClampLimit(limit)

	sortOrderDesc := sortorder.Desc
	res, err := r.client.Search().
		Index(r.indexName).
		Query(&types.Query{
			MatchAll: &types.MatchAllQuery{},
		}).
		Size(limit).
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"created_at": {Order: &sortOrderDesc},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"id": {Order: &sortOrderDesc},
				},
			},
		).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch history query failed", "error", err, "index", r.indexName)
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	evaluations := make([]history.Evaluation, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal evaluation: %w", err)
		}
		e, err := doc.toEvaluation()
		if err != nil {
			return nil, err
		}
		evaluations = append(evaluations, e)
	}

	return evaluations, nil
}

func (r *Recorder) EnsureIndex(ctx context.Context) error {
	exists, err := r.client.Indices.Exists(r.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if exists {
		slog.Info("Index already exists", "index", r.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":          types.NewKeywordProperty(),
			"expression":  types.NewKeywordProperty(),
			"postfix":     types.NewKeywordProperty(),
			"result":      types.NewDoubleNumberProperty(),
			"error":       types.NewKeywordProperty(),
			"error_code":  types.NewKeywordProperty(),
			"duration_ns": types.NewLongNumberProperty(),
			"created_at":  types.NewDateProperty(),
		},
	}

	createRes, err := r.client.Indices.Create(r.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", r.indexName)
	return nil
}
