package services

import (
	"strings"

	"github.com/kerbaras/rickmorty/pkg/data"
	"github.com/kerbaras/rickmorty/pkg/i18n"
	"golang.org/x/text/language"
)

// PageSize is both the server page size and the scroll-to-page divisor.
const PageSize = 20

type Filters struct {
	Status  string
	Species string
}

// Request is a query issued by the Browser. Generation ties the completion
// back to the filter/language session that issued it.
type Request struct {
	Generation uint64
	Query      data.Query
	Language   language.Tag
}

// Row is a character with display fields translated. The raw status and
// species are kept for the client side filter.
type Row struct {
	data.Character
	RawStatus  string
	RawSpecies string
}

// Browser owns the character list state: accumulated rows, page cursor,
// filters, language, the species registry and the server reported total.
// It never performs I/O; callers execute the Requests it returns and feed
// results back through Complete or Fail.
type Browser struct {
	dict *i18n.Dictionary

	rows     []Row
	page     int
	first    int
	filters  Filters
	lang     language.Tag
	total    int
	registry *CategoryRegistry
	err      error

	generation uint64
	loaded     map[int]bool
	pending    map[int]bool
}

func NewBrowser(dict *i18n.Dictionary, lang language.Tag) *Browser {
	b := &Browser{
		dict:    dict,
		lang:    lang,
		page:    1,
		loaded:  map[int]bool{},
		pending: map[int]bool{},
	}
	b.registry = NewCategoryRegistry(dict.Label(lang, "all"))
	return b
}

// Mount starts the first session: page 1, current filters and language.
func (b *Browser) Mount() Request {
	return b.reset()
}

// Reload discards everything loaded and fetches page 1 again.
func (b *Browser) Reload() Request {
	return b.reset()
}

// Open starts a session at page instead of page 1. The rows of that page
// replace whatever was loaded, exactly as page 1 does for Mount.
func (b *Browser) Open(page int) Request {
	if page < 1 {
		page = 1
	}
	return b.begin(page)
}

func (b *Browser) SetStatus(status string) (Request, bool) {
	if status == b.filters.Status {
		return Request{}, false
	}
	b.filters.Status = status
	return b.reset(), true
}

func (b *Browser) SetSpecies(species string) (Request, bool) {
	if species == b.filters.Species {
		return Request{}, false
	}
	b.filters.Species = species
	return b.reset(), true
}

func (b *Browser) SetLanguage(lang language.Tag) (Request, bool) {
	if i18n.Code(lang) == i18n.Code(b.lang) {
		return Request{}, false
	}
	b.lang = lang
	return b.reset(), true
}

// TargetPage converts the first visible row index into a 1-based page.
func TargetPage(firstVisible int) int {
	if firstVisible < 0 {
		firstVisible = 0
	}
	return firstVisible/PageSize + 1
}

// Scroll moves the page cursor to the page holding firstVisible and returns
// a request when that page has not been loaded in this session.
func (b *Browser) Scroll(firstVisible int) (Request, bool) {
	target := TargetPage(firstVisible)
	if target == b.page {
		return Request{}, false
	}
	if b.total > 0 && (target-1)*PageSize >= b.total {
		return Request{}, false
	}
	b.page = target
	if b.loaded[target] || b.pending[target] {
		return Request{}, false
	}
	return b.request(target), true
}

// Complete applies a successful response. Responses issued before the last
// filter or language change are discarded and false is returned.
func (b *Browser) Complete(req Request, page *data.Page) bool {
	if req.Generation != b.generation {
		return false
	}
	delete(b.pending, req.Query.Page)
	b.loaded[req.Query.Page] = true
	b.err = nil

	batch := make([]Row, 0, len(page.Results))
	for _, c := range page.Results {
		row := Row{Character: c, RawStatus: c.Status, RawSpecies: c.Species}
		row.Status = b.dict.Translate(b.lang, c.Status)
		row.Species = b.dict.Translate(b.lang, c.Species)
		row.Gender = b.dict.Translate(b.lang, c.Gender)
		batch = append(batch, row)

		b.registry.Observe(c.Species, row.Species)
	}

	if req.Query.Page == b.first {
		b.rows = batch
	} else {
		b.rows = b.filter(append(b.rows, batch...))
	}

	b.total = page.Info.Count
	if len(b.rows) > b.total {
		b.rows = b.rows[:b.total]
	}
	return true
}

// Fail ends the load for req. Rows are left untouched and nothing is retried.
func (b *Browser) Fail(req Request, err error) bool {
	if req.Generation != b.generation {
		return false
	}
	delete(b.pending, req.Query.Page)
	b.err = err
	return true
}

func (b *Browser) reset() Request {
	return b.begin(1)
}

func (b *Browser) begin(page int) Request {
	b.generation++
	b.rows = nil
	b.page = page
	b.first = page
	b.err = nil
	b.loaded = map[int]bool{}
	b.pending = map[int]bool{}
	b.registry.Reset(b.dict.Label(b.lang, "all"))
	return b.request(page)
}

func (b *Browser) request(page int) Request {
	b.pending[page] = true
	return Request{
		Generation: b.generation,
		Query:      data.Query{Page: page, Status: b.filters.Status, Species: b.filters.Species},
		Language:   b.lang,
	}
}

// filter keeps rows matching the active filters. Raw values are compared so
// the check does not depend on the language a row was translated under.
func (b *Browser) filter(rows []Row) []Row {
	out := rows[:0]
	for _, row := range rows {
		if b.filters.Status != "" && !strings.EqualFold(row.RawStatus, b.filters.Status) {
			continue
		}
		if b.filters.Species != "" && !strings.EqualFold(row.RawSpecies, b.filters.Species) {
			continue
		}
		out = append(out, row)
	}
	return out
}

func (b *Browser) Rows() []Row {
	out := make([]Row, len(b.rows))
	copy(out, b.rows)
	return out
}

func (b *Browser) Page() int                { return b.page }
func (b *Browser) Filters() Filters         { return b.filters }
func (b *Browser) Language() language.Tag   { return b.lang }
func (b *Browser) Total() int               { return b.total }
func (b *Browser) Loading() bool            { return len(b.pending) > 0 }
func (b *Browser) Err() error               { return b.err }
func (b *Browser) Generation() uint64       { return b.generation }
func (b *Browser) Loaded(page int) bool     { return b.loaded[page] }
func (b *Browser) SpeciesOptions() []Option { return b.registry.Options() }

func (b *Browser) Label(key string) string {
	return b.dict.Label(b.lang, key)
}

// StatusOptions keeps the server's status vocabulary: "Alive" and "Dead"
// are capitalised, "unknown" is not.
func (b *Browser) StatusOptions() []Option {
	return []Option{
		{Label: b.Label("all"), Value: ""},
		{Label: b.Label("alive"), Value: "Alive"},
		{Label: b.Label("dead"), Value: "Dead"},
		{Label: b.Label("unknown"), Value: "unknown"},
	}
}

// Columns returns the translated table headers in display order.
func (b *Browser) Columns() []string {
	return []string{b.Label("name"), b.Label("status"), b.Label("species"), b.Label("gender"), b.Label("origin")}
}
