package sources

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	graphql "github.com/hasura/go-graphql-client"
	"github.com/kerbaras/rickmorty/pkg/data"
	"github.com/kerbaras/rickmorty/pkg/metrics"
	"go.uber.org/zap"
)

const DefaultEndpoint = "https://rickandmortyapi.com/graphql"

const getCharacters = `query GetCharacters($page: Int, $status: String, $species: String) {
  characters(page: $page, filter: { status: $status, species: $species }) {
    results {
      name
      status
      species
      gender
      origin {
        name
      }
      image
    }
    info {
      count
      pages
      next
    }
  }
}`

type Character struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Species string `json:"species"`
	Gender  string `json:"gender"`
	Origin  struct {
		Name string `json:"name"`
	} `json:"origin"`
	Image string `json:"image"`
}

func (c *Character) ToCharacter() data.Character {
	return data.Character{
		Name:    c.Name,
		Status:  c.Status,
		Species: c.Species,
		Gender:  c.Gender,
		Origin:  c.Origin.Name,
		Image:   c.Image,
	}
}

// Characters is the payload of the characters field. The API answers with
// null counts when a filter matches nothing.
type Characters struct {
	Results []Character `json:"results"`
	Info    struct {
		Count *int `json:"count"`
		Pages *int `json:"pages"`
		Next  *int `json:"next"`
	} `json:"info"`
}

func (c *Characters) ToPage() *data.Page {
	page := &data.Page{Results: make([]data.Character, len(c.Results))}
	for i := range c.Results {
		page.Results[i] = c.Results[i].ToCharacter()
	}
	page.Info.Count = deref(c.Info.Count)
	page.Info.Pages = deref(c.Info.Pages)
	page.Info.Next = deref(c.Info.Next)
	return page
}

type Config struct {
	Endpoint   string
	HTTPClient *http.Client
	Timeout    time.Duration
	Cache      Cache
	Metrics    metrics.Recorder
	Logger     *zap.Logger
}

// RickAndMorty queries the public Rick and Morty GraphQL API. One instance
// is built at startup and shared by everything that needs characters.
type RickAndMorty struct {
	client  *graphql.Client
	timeout time.Duration
	cache   Cache
	metrics metrics.Recorder
	logger  *zap.Logger
}

func NewRickAndMorty(cfg Config) *RickAndMorty {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.Noop{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &RickAndMorty{
		client:  graphql.NewClient(cfg.Endpoint, cfg.HTTPClient),
		timeout: cfg.Timeout,
		cache:   cfg.Cache,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}
}

func (r *RickAndMorty) Characters(ctx context.Context, query data.Query) (*data.Page, error) {
	key := query.Key()

	if body, ok := r.cached(ctx, key); ok {
		page, err := decode(body)
		if err == nil {
			r.metrics.RecordCacheHit()
			r.logger.Debug("characters served from cache", zap.String("key", key))
			return page, nil
		}
		r.logger.Warn("dropping undecodable cached response", zap.String("key", key), zap.Error(err))
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	variables := map[string]any{
		"page":    query.Page,
		"status":  query.Status,
		"species": query.Species,
	}

	start := time.Now()
	body, err := r.client.ExecRaw(ctx, getCharacters, variables)
	if err != nil {
		r.metrics.RecordQuery(metrics.OutcomeFailure, time.Since(start))
		r.logger.Warn("characters query failed", zap.String("key", key), zap.Error(err))
		return nil, &QueryError{Op: "request", Key: key, Cause: err}
	}

	page, err := decode(body)
	if err != nil {
		r.metrics.RecordQuery(metrics.OutcomeFailure, time.Since(start))
		r.logger.Warn("characters response undecodable", zap.String("key", key), zap.Error(err))
		return nil, &QueryError{Op: "decode", Key: key, Cause: err}
	}
	r.metrics.RecordQuery(metrics.OutcomeSuccess, time.Since(start))
	r.logger.Debug("characters fetched",
		zap.String("key", key),
		zap.Int("results", len(page.Results)),
		zap.Int("count", page.Info.Count),
		zap.Duration("took", time.Since(start)),
	)

	if r.cache != nil {
		if err := r.cache.Put(ctx, key, body); err != nil {
			r.logger.Warn("caching response failed", zap.String("key", key), zap.Error(err))
		}
	}
	return page, nil
}

func (r *RickAndMorty) cached(ctx context.Context, key string) ([]byte, bool) {
	if r.cache == nil {
		return nil, false
	}
	body, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Warn("reading response cache failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return body, ok
}

func decode(body []byte) (*data.Page, error) {
	var resp struct {
		Characters *Characters `json:"characters"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	if resp.Characters == nil {
		return &data.Page{}, nil
	}
	return resp.Characters.ToPage(), nil
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
