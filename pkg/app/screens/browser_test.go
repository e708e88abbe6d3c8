package screens

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/rickmorty/pkg/data"
	"github.com/kerbaras/rickmorty/pkg/i18n"
	"github.com/kerbaras/rickmorty/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu      sync.Mutex
	queries []data.Query
	total   int
	err     error
}

func (f *fakeSource) Characters(_ context.Context, query data.Query) (*data.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}

	page := &data.Page{Info: data.PageInfo{Count: f.total, Pages: (f.total + 19) / 20}}
	start := (query.Page - 1) * 20
	for i := start; i < start+20 && i < f.total; i++ {
		status := query.Status
		if status == "" {
			status = "Alive"
		}
		page.Results = append(page.Results, data.Character{
			Name:    fmt.Sprintf("Character %03d", i),
			Status:  status,
			Species: "Human",
			Gender:  "Male",
			Origin:  "Earth (C-137)",
		})
	}
	return page, nil
}

func newTestScreen(t *testing.T, source *fakeSource) *BrowserScreen {
	t.Helper()
	dict := i18n.MustLoad()
	controller := services.NewCharacterController(source, dict, nil)
	s := NewBrowserScreen(context.Background(), controller, dict, i18n.English)
	s.Update(tea.WindowSizeMsg{Width: 120, Height: 32})
	return s
}

// run executes cmd and feeds every fetch result back into the screen.
func run(s *BrowserScreen, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			run(s, c)
		}
	case fetchedMsg:
		_, next := s.Update(msg)
		run(s, next)
	}
}

func press(s *BrowserScreen, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "pgdown":
			msg = tea.KeyMsg{Type: tea.KeyPgDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd := s.Update(msg)
		run(s, cmd)
	}
}

func TestScreenMountLoadsFirstPage(t *testing.T) {
	source := &fakeSource{total: 826}
	s := newTestScreen(t, source)

	run(s, s.Init())

	require.Equal(t, []data.Query{{Page: 1}}, source.queries)
	assert.Len(t, s.browser.Rows(), 20)
	assert.Equal(t, 826, s.browser.Total())

	view := s.View()
	assert.Contains(t, view, "Character 000")
	assert.Contains(t, view, "Loaded 20 of 826")
}

func TestScreenScrollLoadsNextPage(t *testing.T) {
	source := &fakeSource{total: 826}
	s := newTestScreen(t, source)
	run(s, s.Init())

	for i := 0; i < 3 && len(source.queries) < 2; i++ {
		press(s, "pgdown")
	}

	require.Len(t, source.queries, 2)
	assert.Equal(t, 2, source.queries[1].Page)
	assert.Len(t, s.browser.Rows(), 40)
}

func TestScreenScrollLoadsNextPageOnTallTerminal(t *testing.T) {
	source := &fakeSource{total: 826}
	s := newTestScreen(t, source)
	s.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	run(s, s.Init())

	for i := 0; i < 100 && len(source.queries) < 2; i++ {
		press(s, "down")
	}

	require.Len(t, source.queries, 2)
	assert.Equal(t, 2, source.queries[1].Page)
	assert.Len(t, s.browser.Rows(), 40)
}

func TestScreenJumpToEndLoadsPagesInOrder(t *testing.T) {
	source := &fakeSource{total: 826}
	s := newTestScreen(t, source)
	s.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	run(s, s.Init())

	press(s, "G")

	require.Equal(t, []data.Query{{Page: 1}, {Page: 2}, {Page: 3}}, source.queries)
	assert.Len(t, s.browser.Rows(), 60)
	assert.Equal(t, "Character 040", s.browser.Rows()[40].Name)
}

func TestScreenStatusFilterResets(t *testing.T) {
	source := &fakeSource{total: 826}
	s := newTestScreen(t, source)
	run(s, s.Init())

	// focus status, highlight Dead, apply
	press(s, "tab", "right", "right", "enter")

	require.Len(t, source.queries, 2)
	assert.Equal(t, data.Query{Page: 1, Status: "Dead"}, source.queries[1])
	assert.Equal(t, 1, s.browser.Page())
	assert.Equal(t, "Dead", s.status.Value())
	assert.Equal(t, "Dead", s.browser.Rows()[0].Status)
}

func TestScreenLanguageSwitchTranslates(t *testing.T) {
	source := &fakeSource{total: 826}
	s := newTestScreen(t, source)
	run(s, s.Init())

	press(s, "tab", "tab", "tab", "right", "enter")

	require.Len(t, source.queries, 2)
	assert.Equal(t, "de", i18n.Code(s.browser.Language()))
	assert.Equal(t, "Lebendig", s.browser.Rows()[0].Status)
	assert.Equal(t, "Mensch", s.browser.Rows()[0].Species)
	assert.Contains(t, s.View(), "Seite 1")
}

func TestScreenShowsError(t *testing.T) {
	source := &fakeSource{err: errors.New("connection refused")}
	s := newTestScreen(t, source)

	run(s, s.Init())

	assert.False(t, s.browser.Loading())
	assert.Contains(t, s.View(), "connection refused")
}

func TestScreenReload(t *testing.T) {
	source := &fakeSource{total: 826}
	s := newTestScreen(t, source)
	run(s, s.Init())

	press(s, "r")

	require.Len(t, source.queries, 2)
	assert.Equal(t, data.Query{Page: 1}, source.queries[1])
	assert.Len(t, s.browser.Rows(), 20)
}

func TestScreenEmptyMessage(t *testing.T) {
	source := &fakeSource{total: 0}
	s := newTestScreen(t, source)

	run(s, s.Init())

	assert.Contains(t, s.View(), "No characters")
}

func TestScreenQuit(t *testing.T) {
	s := newTestScreen(t, &fakeSource{total: 826})

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestScreenSortKeysToggleHeader(t *testing.T) {
	s := newTestScreen(t, &fakeSource{total: 826})
	run(s, s.Init())

	press(s, "s")
	assert.True(t, strings.Contains(s.View(), "▲"))

	press(s, "x")
	assert.False(t, strings.Contains(s.View(), "▲"))
}
