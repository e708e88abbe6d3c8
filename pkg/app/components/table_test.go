package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/kerbaras/rickmorty/pkg/services"
	"golang.org/x/text/language"
)

func loadedRows(n int) []services.Row {
	rows := make([]services.Row, n)
	for i := range rows {
		rows[i] = row(fmt.Sprintf("Character %03d", i), "Earth")
	}
	return rows
}

func TestTablePlaceholdersForNextPage(t *testing.T) {
	table := NewCharacterTable()
	table.SetColumns([]string{"Name", "Status", "Species", "Gender", "Origin"})

	table.SetRows(loadedRows(20), 826, language.English)

	// default height 10 leaves 8 visible rows
	if table.Len() != 48 {
		t.Errorf("Expected 20 rows plus 28 placeholders, got %d", table.Len())
	}
}

func TestTablePlaceholdersReachNextPageOnTallScreens(t *testing.T) {
	table := NewCharacterTable()
	table.Resize(120, 48)
	table.SetRows(loadedRows(20), 826, language.English)

	table.GotoBottom()

	if table.FirstVisible() < 20 {
		t.Errorf("Expected the top row to reach page 2, got first visible %d", table.FirstVisible())
	}
}

func TestTablePlaceholdersClampedToTotal(t *testing.T) {
	table := NewCharacterTable()

	table.SetRows(loadedRows(20), 25, language.English)
	if table.Len() != 25 {
		t.Errorf("Expected 25 rows, got %d", table.Len())
	}

	table.SetRows(loadedRows(5), 5, language.English)
	if table.Len() != 5 {
		t.Errorf("Expected no placeholders on the last page, got %d", table.Len())
	}
}

func TestTableFirstVisibleFollowsCursor(t *testing.T) {
	table := NewCharacterTable()
	table.Resize(80, 12)
	table.SetRows(loadedRows(40), 826, language.English)

	if table.FirstVisible() != 0 {
		t.Fatalf("Expected first visible 0, got %d", table.FirstVisible())
	}

	table.MoveDown(45)
	if table.Cursor() != 45 {
		t.Fatalf("Expected cursor 45, got %d", table.Cursor())
	}
	if table.FirstVisible() != 36 {
		t.Errorf("Expected first visible 36, got %d", table.FirstVisible())
	}

	table.GotoTop()
	if table.FirstVisible() != 0 {
		t.Errorf("Expected first visible 0 after goto top, got %d", table.FirstVisible())
	}
}

func TestTableCursorResetWhenRowsShrink(t *testing.T) {
	table := NewCharacterTable()
	table.SetRows(loadedRows(40), 826, language.English)
	table.GotoBottom()

	table.SetRows(nil, 826, language.English)

	if table.Cursor() != 0 || table.FirstVisible() != 0 {
		t.Errorf("Expected cursor reset, got cursor %d first %d", table.Cursor(), table.FirstVisible())
	}
}

func TestTableSortIndicatorInHeader(t *testing.T) {
	table := NewCharacterTable()
	table.Resize(120, 10)
	table.SetColumns([]string{"Name", "Status", "Species", "Gender", "Origin"})
	table.SetRows([]services.Row{row("Morty", "Earth"), row("Beth", "Earth")}, 2, language.English)

	table.ToggleSort(ColumnName)

	view := table.View()
	if !strings.Contains(view, "Name ▲") {
		t.Errorf("Expected sort indicator in header, got %q", view)
	}
	if strings.Index(view, "Beth") > strings.Index(view, "Morty") {
		t.Error("Expected Beth to be rendered before Morty")
	}
}
