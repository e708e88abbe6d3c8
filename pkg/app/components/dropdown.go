package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/rickmorty/pkg/app/styles"
	"github.com/kerbaras/rickmorty/pkg/services"
)

// Dropdown is a single-choice selector. The committed value survives option
// refreshes even when it is temporarily missing from the option list.
type Dropdown struct {
	Label     string
	Options   []services.Option
	Highlight int
	Focused   bool

	value string
}

func NewDropdown(label string, options []services.Option) *Dropdown {
	d := &Dropdown{Label: label}
	d.SetOptions(options)
	return d
}

// SetOptions replaces the option list and moves the highlight back onto
// the committed value.
func (d *Dropdown) SetOptions(options []services.Option) {
	d.Options = options
	d.Highlight = d.indexOf(d.value)
	if d.Highlight < 0 {
		d.Highlight = 0
	}
}

func (d *Dropdown) Next() {
	if len(d.Options) == 0 {
		return
	}
	d.Highlight++
	if d.Highlight >= len(d.Options) {
		d.Highlight = 0
	}
}

func (d *Dropdown) Prev() {
	if len(d.Options) == 0 {
		return
	}
	d.Highlight--
	if d.Highlight < 0 {
		d.Highlight = len(d.Options) - 1
	}
}

// Commit selects the highlighted option. It reports false when the
// selection did not change.
func (d *Dropdown) Commit() (services.Option, bool) {
	if len(d.Options) == 0 || d.Highlight >= len(d.Options) {
		return services.Option{}, false
	}
	opt := d.Options[d.Highlight]
	if opt.Value == d.value {
		return opt, false
	}
	d.value = opt.Value
	return opt, true
}

// Select commits value directly.
func (d *Dropdown) Select(value string) {
	d.value = value
	if i := d.indexOf(value); i >= 0 {
		d.Highlight = i
	}
}

func (d *Dropdown) Value() string {
	return d.value
}

// Current returns the label of the committed value, or the raw value when
// no option carries it.
func (d *Dropdown) Current() string {
	if i := d.indexOf(d.value); i >= 0 {
		return d.Options[i].Label
	}
	return d.value
}

func (d *Dropdown) indexOf(value string) int {
	for i, opt := range d.Options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

func (d *Dropdown) View() string {
	box := styles.DropdownStyle
	if d.Focused {
		box = styles.FocusedDropdownStyle
	}

	if !d.Focused || len(d.Options) == 0 {
		return box.Render(fmt.Sprintf("%s: %s ▾", d.Label, d.Current()))
	}

	opts := make([]string, 0, len(d.Options))
	for i, opt := range d.Options {
		label := opt.Label
		if opt.Value == d.value {
			label = "• " + label
		}
		if i == d.Highlight {
			opts = append(opts, styles.ActiveOptionStyle.Render(label))
		} else {
			opts = append(opts, styles.InactiveOptionStyle.Render(label))
		}
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.SubtitleStyle.Render(d.Label),
		lipgloss.JoinHorizontal(lipgloss.Top, opts...),
	))
}
