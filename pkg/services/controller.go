package services

import (
	"context"
	"fmt"

	"github.com/kerbaras/rickmorty/pkg/data"
	"github.com/kerbaras/rickmorty/pkg/i18n"
	"github.com/kerbaras/rickmorty/pkg/sources"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Result is the outcome of executing a Request.
type Result struct {
	Request Request
	Page    *data.Page
	Err     error
}

// CharacterController executes Browser requests against a source.
type CharacterController struct {
	source sources.Source
	dict   *i18n.Dictionary
	logger *zap.Logger
}

func NewCharacterController(source sources.Source, dict *i18n.Dictionary, logger *zap.Logger) *CharacterController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CharacterController{source: source, dict: dict, logger: logger}
}

func (c *CharacterController) Fetch(ctx context.Context, req Request) Result {
	page, err := c.source.Characters(ctx, req.Query)
	if err != nil {
		c.logger.Warn("fetch failed",
			zap.Uint64("generation", req.Generation),
			zap.Int("page", req.Query.Page),
			zap.Error(err),
		)
		return Result{Request: req, Err: err}
	}
	return Result{Request: req, Page: page}
}

// Apply hands a result to the browser and reports whether it was current.
func (c *CharacterController) Apply(b *Browser, res Result) bool {
	var applied bool
	if res.Err != nil {
		applied = b.Fail(res.Request, res.Err)
	} else {
		applied = b.Complete(res.Request, res.Page)
	}
	if !applied {
		c.logger.Debug("discarding superseded response",
			zap.Uint64("generation", res.Request.Generation),
			zap.Uint64("current", b.Generation()),
			zap.Int("page", res.Request.Query.Page),
		)
	}
	return applied
}

// Load fetches exactly one page through a fresh Browser and returns its
// translated rows together with the server total.
func (c *CharacterController) Load(ctx context.Context, lang language.Tag, filters Filters, page int) (*Browser, error) {
	b := NewBrowser(c.dict, lang)
	b.filters = filters
	req := b.Open(page)

	res := c.Fetch(ctx, req)
	if res.Err != nil {
		return nil, fmt.Errorf("load page %d: %w", req.Query.Page, res.Err)
	}
	c.Apply(b, res)
	return b, nil
}

// Walk loads pages 1 through pages in order, the way scrolling does, and
// stops early at the last page.
func (c *CharacterController) Walk(ctx context.Context, lang language.Tag, filters Filters, pages int) (*Browser, error) {
	b := NewBrowser(c.dict, lang)
	b.filters = filters
	req := b.Mount()

	res := c.Fetch(ctx, req)
	if res.Err != nil {
		return nil, fmt.Errorf("load page 1: %w", res.Err)
	}
	c.Apply(b, res)

	for p := 2; p <= pages; p++ {
		req, ok := b.Scroll((p - 1) * PageSize)
		if !ok {
			break
		}
		res := c.Fetch(ctx, req)
		if res.Err != nil {
			return nil, fmt.Errorf("load page %d: %w", p, res.Err)
		}
		c.Apply(b, res)
	}
	return b, nil
}

// CollectSpecies walks up to pages pages and returns the species registry.
func (c *CharacterController) CollectSpecies(ctx context.Context, lang language.Tag, pages int) ([]Option, error) {
	b, err := c.Walk(ctx, lang, Filters{}, pages)
	if err != nil {
		return nil, err
	}
	return b.SpeciesOptions(), nil
}
