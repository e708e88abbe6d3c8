package components

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/kerbaras/rickmorty/pkg/app/styles"
	"github.com/kerbaras/rickmorty/pkg/services"
	"golang.org/x/text/language"
)

const placeholder = "…"

// CharacterTable renders browser rows in a bubbles table sized by the
// server total. One screenful plus one page of rows past the loaded ones are
// shown as placeholders so scrolling can always reach the next page.
type CharacterTable struct {
	model table.Model
	Sort  SortState

	titles []string
	rows   []services.Row
	total  int
	lang   language.Tag

	offset int
	height int
	width  int
}

func NewCharacterTable() *CharacterTable {
	t := &CharacterTable{
		model:  table.New(table.WithFocused(true)),
		height: 10,
		width:  80,
	}
	t.model.SetStyles(styles.TableStyles(true))
	t.model.SetHeight(t.height)
	return t
}

func (t *CharacterTable) SetColumns(titles []string) {
	t.titles = titles
	t.render()
}

// SetRows replaces the loaded rows. lang selects the collation used when a
// sort is active.
func (t *CharacterTable) SetRows(rows []services.Row, total int, lang language.Tag) {
	t.rows = rows
	t.total = total
	t.lang = lang
	t.render()
}

func (t *CharacterTable) Resize(width, height int) {
	t.width = width
	if height < 3 {
		height = 3
	}
	t.height = height
	t.model.SetHeight(height)
	t.render()
}

func (t *CharacterTable) ToggleSort(column int) {
	t.Sort.Toggle(column)
	t.render()
}

func (t *CharacterTable) Focus() {
	t.model.Focus()
	t.model.SetStyles(styles.TableStyles(true))
}

func (t *CharacterTable) Blur() {
	t.model.Blur()
	t.model.SetStyles(styles.TableStyles(false))
}

func (t *CharacterTable) MoveUp(n int) {
	t.model.MoveUp(n)
	t.follow()
}

func (t *CharacterTable) MoveDown(n int) {
	t.model.MoveDown(n)
	t.follow()
}

func (t *CharacterTable) GotoTop() {
	t.model.GotoTop()
	t.follow()
}

func (t *CharacterTable) GotoBottom() {
	t.model.GotoBottom()
	t.follow()
}

// FirstVisible is the index of the topmost row on screen.
func (t *CharacterTable) FirstVisible() int {
	return t.offset
}

func (t *CharacterTable) Cursor() int {
	return t.model.Cursor()
}

// Len is the number of rendered rows, placeholders included.
func (t *CharacterTable) Len() int {
	return len(t.model.Rows())
}

// PageStep is the number of rows a page up or down moves.
func (t *CharacterTable) PageStep() int {
	return t.visibleRows()
}

func (t *CharacterTable) View() string {
	return t.model.View()
}

func (t *CharacterTable) visibleRows() int {
	// header line plus its bottom border
	if n := t.height - 2; n > 0 {
		return n
	}
	return 1
}

func (t *CharacterTable) follow() {
	cursor := t.model.Cursor()
	visible := t.visibleRows()
	if cursor < t.offset {
		t.offset = cursor
	}
	if cursor >= t.offset+visible {
		t.offset = cursor - visible + 1
	}
	if t.offset < 0 {
		t.offset = 0
	}
}

func (t *CharacterTable) render() {
	t.model.SetColumns(t.columns())

	sorted := t.Sort.Apply(t.rows, t.lang)
	rows := make([]table.Row, 0, len(sorted)+services.PageSize)
	for _, r := range sorted {
		rows = append(rows, table.Row{r.Name, r.Status, r.Species, r.Gender, r.Origin})
	}

	// enough placeholders for the top row to cross into the next page
	limit := len(sorted) + t.visibleRows() + services.PageSize
	if t.total < limit {
		limit = t.total
	}
	for i := len(sorted); i < limit; i++ {
		rows = append(rows, table.Row{placeholder, "", "", "", ""})
	}

	t.model.SetRows(rows)
	if t.model.Cursor() >= len(rows) {
		t.model.SetCursor(0)
		t.offset = 0
	}
	t.follow()
}

func (t *CharacterTable) columns() []table.Column {
	if len(t.titles) == 0 {
		return nil
	}

	// name and origin get the spare width
	fixed := 12
	wide := (t.width - 3*fixed - 2*len(t.titles)) / 2
	if wide < 16 {
		wide = 16
	}

	cols := make([]table.Column, len(t.titles))
	for i, title := range t.titles {
		width := fixed
		if i == ColumnName || i == ColumnOrigin {
			width = wide
			title += t.Sort.Indicator(i)
		}
		cols[i] = table.Column{Title: title, Width: width}
	}
	return cols
}
