package screens

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/rickmorty/pkg/app/components"
	"github.com/kerbaras/rickmorty/pkg/app/styles"
	"github.com/kerbaras/rickmorty/pkg/i18n"
	"github.com/kerbaras/rickmorty/pkg/services"
	"golang.org/x/text/language"
)

type focusArea int

const (
	focusTable focusArea = iota
	focusStatus
	focusSpecies
	focusLanguage
	focusCount
)

// title, dropdowns, status line, error line and help
const chromeHeight = 12

// Messages
type fetchedMsg struct {
	result services.Result
}

// BrowserScreen is the character browser. All list state lives in the
// services.Browser; the screen turns key presses into browser operations
// and runs the requests they return.
type BrowserScreen struct {
	ctx        context.Context
	controller *services.CharacterController
	dict       *i18n.Dictionary
	browser    *services.Browser

	table    *components.CharacterTable
	status   *components.Dropdown
	species  *components.Dropdown
	language *components.Dropdown
	spinner  spinner.Model
	help     help.Model
	keys     keyMap

	focus   focusArea
	ticking bool
	width   int
	height  int
}

func NewBrowserScreen(ctx context.Context, controller *services.CharacterController, dict *i18n.Dictionary, lang language.Tag) *BrowserScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.LoadingStyle

	s := &BrowserScreen{
		ctx:        ctx,
		controller: controller,
		dict:       dict,
		browser:    services.NewBrowser(dict, lang),
		table:      components.NewCharacterTable(),
		status:     components.NewDropdown("", nil),
		species:    components.NewDropdown("", nil),
		language:   components.NewDropdown("", nil),
		spinner:    sp,
		help:       help.New(),
		keys:       defaultKeys(),
	}

	langs := dict.Languages()
	opts := make([]services.Option, len(langs))
	for i, tag := range langs {
		opts[i] = services.Option{Label: i18n.DisplayName(tag), Value: i18n.Code(tag)}
	}
	s.language.SetOptions(opts)
	s.language.Select(i18n.Code(lang))

	s.refresh()
	return s
}

func (s *BrowserScreen) Init() tea.Cmd {
	return s.issue(s.browser.Mount())
}

func (s *BrowserScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.help.Width = msg.Width
		s.table.Resize(msg.Width, msg.Height-chromeHeight)
		return s, nil

	case spinner.TickMsg:
		if !s.browser.Loading() {
			s.ticking = false
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case fetchedMsg:
		applied := s.controller.Apply(s.browser, msg.result)
		s.refresh()
		if !applied || msg.result.Err != nil {
			return s, nil
		}
		// the viewport may already sit past the page that just arrived
		return s, s.scroll()

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}

	return s, nil
}

func (s *BrowserScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Quit):
		return tea.Quit
	case key.Matches(msg, s.keys.NextFocus):
		s.setFocus((s.focus + 1) % focusCount)
		return nil
	case key.Matches(msg, s.keys.PrevFocus):
		s.setFocus((s.focus + focusCount - 1) % focusCount)
		return nil
	case key.Matches(msg, s.keys.Reload):
		return s.reset(s.browser.Reload())
	case key.Matches(msg, s.keys.SortName):
		s.table.ToggleSort(components.ColumnName)
		return nil
	case key.Matches(msg, s.keys.SortOrigin):
		s.table.ToggleSort(components.ColumnOrigin)
		return nil
	case key.Matches(msg, s.keys.ClearSort):
		s.table.Sort.Clear()
		s.refresh()
		return nil
	}

	if s.focus == focusTable {
		return s.handleTableKey(msg)
	}
	return s.handleDropdownKey(msg)
}

func (s *BrowserScreen) handleTableKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Up):
		s.table.MoveUp(1)
	case key.Matches(msg, s.keys.Down):
		s.table.MoveDown(1)
	case key.Matches(msg, s.keys.PageUp):
		s.table.MoveUp(s.table.PageStep())
	case key.Matches(msg, s.keys.PageDown):
		s.table.MoveDown(s.table.PageStep())
	case key.Matches(msg, s.keys.Home):
		s.table.GotoTop()
	case key.Matches(msg, s.keys.End):
		s.table.GotoBottom()
	default:
		return nil
	}
	return s.scroll()
}

// scroll requests the page under the top visible row. The row index is
// capped at the loaded count so pages arrive in order.
func (s *BrowserScreen) scroll() tea.Cmd {
	first := s.table.FirstVisible()
	if n := len(s.browser.Rows()); first > n {
		first = n
	}
	if req, ok := s.browser.Scroll(first); ok {
		return s.issue(req)
	}
	return nil
}

func (s *BrowserScreen) handleDropdownKey(msg tea.KeyMsg) tea.Cmd {
	d := s.focusedDropdown()
	switch {
	case key.Matches(msg, s.keys.Left):
		d.Prev()
	case key.Matches(msg, s.keys.Right):
		d.Next()
	case key.Matches(msg, s.keys.Select):
		opt, changed := d.Commit()
		if !changed {
			return nil
		}
		var (
			req services.Request
			ok  bool
		)
		switch s.focus {
		case focusStatus:
			req, ok = s.browser.SetStatus(opt.Value)
		case focusSpecies:
			req, ok = s.browser.SetSpecies(opt.Value)
		case focusLanguage:
			req, ok = s.browser.SetLanguage(s.dict.Match(opt.Value))
		}
		if ok {
			return s.reset(req)
		}
	}
	return nil
}

func (s *BrowserScreen) focusedDropdown() *components.Dropdown {
	switch s.focus {
	case focusStatus:
		return s.status
	case focusSpecies:
		return s.species
	default:
		return s.language
	}
}

func (s *BrowserScreen) setFocus(f focusArea) {
	s.focus = f
	s.status.Focused = f == focusStatus
	s.species.Focused = f == focusSpecies
	s.language.Focused = f == focusLanguage
	if f == focusTable {
		s.table.Focus()
	} else {
		s.table.Blur()
	}
}

// reset rewinds the table after the browser started a new session.
func (s *BrowserScreen) reset(req services.Request) tea.Cmd {
	s.table.GotoTop()
	s.refresh()
	return s.issue(req)
}

// issue runs req in the background and keeps the spinner turning while it
// is in flight.
func (s *BrowserScreen) issue(req services.Request) tea.Cmd {
	fetch := func() tea.Msg {
		return fetchedMsg{result: s.controller.Fetch(s.ctx, req)}
	}
	if s.ticking {
		return fetch
	}
	s.ticking = true
	return tea.Batch(fetch, s.spinner.Tick)
}

func (s *BrowserScreen) refresh() {
	b := s.browser
	s.status.Label = b.Label("filter_by_status")
	s.status.SetOptions(b.StatusOptions())
	s.species.Label = b.Label("filter_by_species")
	s.species.SetOptions(b.SpeciesOptions())
	s.language.Label = b.Label("select_language")

	s.table.SetColumns(b.Columns())
	s.table.SetRows(b.Rows(), b.Total(), b.Language())
}

func (s *BrowserScreen) View() string {
	b := s.browser

	header := styles.TitleStyle.Render(b.Label("title"))
	controls := lipgloss.JoinHorizontal(lipgloss.Top,
		s.status.View(), " ", s.species.View(), " ", s.language.View())

	var body string
	if len(b.Rows()) == 0 && !b.Loading() && b.Err() == nil {
		body = styles.MutedStyle.Render(b.Label("empty"))
	} else {
		body = s.table.View()
	}

	line := styles.MutedStyle.Render(fmt.Sprintf(b.Label("loaded"), len(b.Rows()), b.Total()) +
		" • " + fmt.Sprintf(b.Label("page"), b.Page()))
	if b.Loading() {
		line = fmt.Sprintf("%s %s  %s", s.spinner.View(), styles.LoadingStyle.Render(b.Label("loading")), line)
	}

	var errorMsg string
	if err := b.Err(); err != nil {
		errorMsg = "\n" + styles.StatusError.Render(fmt.Sprintf("%s: %s", b.Label("error"), err))
	}

	bindings := s.keys.tableHelp()
	if s.focus != focusTable {
		bindings = s.keys.dropdownHelp()
	}
	helpView := styles.HelpStyle.Render(s.help.ShortHelpView(bindings))

	return fmt.Sprintf("%s\n%s\n%s\n%s%s\n%s", header, controls, body, line, errorMsg, helpView)
}
