package components

import (
	"fmt"
	"sort"

	"github.com/kerbaras/rickmorty/pkg/services"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sortable columns.
const (
	ColumnName   = 0
	ColumnOrigin = 4
)

type SortKey struct {
	Column int
	Desc   bool
}

// SortState is an ordered list of sort keys. Toggling a column cycles it
// through ascending, descending and removed.
type SortState struct {
	Keys []SortKey
}

func (s *SortState) Toggle(column int) {
	for i, k := range s.Keys {
		if k.Column != column {
			continue
		}
		if !k.Desc {
			s.Keys[i].Desc = true
			return
		}
		s.Keys = append(s.Keys[:i], s.Keys[i+1:]...)
		return
	}
	s.Keys = append(s.Keys, SortKey{Column: column})
}

func (s *SortState) Clear() {
	s.Keys = nil
}

func (s *SortState) Active() bool {
	return len(s.Keys) > 0
}

// Indicator returns the header suffix for column, e.g. " ▲1".
func (s *SortState) Indicator(column int) string {
	for i, k := range s.Keys {
		if k.Column != column {
			continue
		}
		arrow := "▲"
		if k.Desc {
			arrow = "▼"
		}
		if len(s.Keys) == 1 {
			return " " + arrow
		}
		return fmt.Sprintf(" %s%d", arrow, i+1)
	}
	return ""
}

// Apply returns a sorted copy of rows using lang's collation order.
func (s *SortState) Apply(rows []services.Row, lang language.Tag) []services.Row {
	out := make([]services.Row, len(rows))
	copy(out, rows)
	if !s.Active() {
		return out
	}

	col := collate.New(lang, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		for _, k := range s.Keys {
			c := col.CompareString(sortField(out[i], k.Column), sortField(out[j], k.Column))
			if c == 0 {
				continue
			}
			if k.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	return out
}

func sortField(row services.Row, column int) string {
	if column == ColumnOrigin {
		return row.Origin
	}
	return row.Name
}
