package components

import (
	"testing"

	"github.com/kerbaras/rickmorty/pkg/data"
	"github.com/kerbaras/rickmorty/pkg/services"
	"golang.org/x/text/language"
)

func row(name, origin string) services.Row {
	return services.Row{Character: data.Character{Name: name, Origin: origin}}
}

func names(rows []services.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortToggleCycle(t *testing.T) {
	var s SortState

	s.Toggle(ColumnName)
	if len(s.Keys) != 1 || s.Keys[0].Desc {
		t.Fatalf("Expected ascending name key, got %+v", s.Keys)
	}

	s.Toggle(ColumnName)
	if len(s.Keys) != 1 || !s.Keys[0].Desc {
		t.Fatalf("Expected descending name key, got %+v", s.Keys)
	}

	s.Toggle(ColumnName)
	if s.Active() {
		t.Errorf("Expected sort to be removed, got %+v", s.Keys)
	}
}

func TestSortMultiColumnPriority(t *testing.T) {
	var s SortState
	s.Toggle(ColumnOrigin)
	s.Toggle(ColumnName)

	if s.Indicator(ColumnOrigin) != " ▲1" {
		t.Errorf("Expected origin to be primary, got %q", s.Indicator(ColumnOrigin))
	}
	if s.Indicator(ColumnName) != " ▲2" {
		t.Errorf("Expected name to be secondary, got %q", s.Indicator(ColumnName))
	}

	rows := []services.Row{
		row("Summer Smith", "Earth (C-137)"),
		row("Abradolf Lincler", "Earth (Replacement Dimension)"),
		row("Rick Sanchez", "Earth (C-137)"),
		row("Alan Rails", "unknown"),
	}

	got := names(s.Apply(rows, language.English))
	want := []string{"Rick Sanchez", "Summer Smith", "Abradolf Lincler", "Alan Rails"}
	if !equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSortDescending(t *testing.T) {
	s := SortState{Keys: []SortKey{{Column: ColumnName, Desc: true}}}

	got := names(s.Apply([]services.Row{row("abc", ""), row("Beth", ""), row("Morty", "")}, language.English))
	want := []string{"Morty", "Beth", "abc"}
	if !equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSortApplyDoesNotMutateInput(t *testing.T) {
	s := SortState{Keys: []SortKey{{Column: ColumnName}}}
	rows := []services.Row{row("Morty", ""), row("Beth", "")}

	s.Apply(rows, language.English)

	if rows[0].Name != "Morty" {
		t.Error("Expected input rows to keep their order")
	}
}

func TestSortInactiveKeepsOrder(t *testing.T) {
	var s SortState
	rows := []services.Row{row("Morty", ""), row("Beth", "")}

	got := names(s.Apply(rows, language.English))
	if !equal(got, []string{"Morty", "Beth"}) {
		t.Errorf("Expected server order, got %v", got)
	}
	if s.Indicator(ColumnName) != "" {
		t.Error("Expected no indicator without sort keys")
	}
}
