package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/rickmorty/pkg/app/styles"
	"github.com/kerbaras/rickmorty/pkg/services"
	"github.com/spf13/cobra"
)

var (
	listPage    int
	listStatus  string
	listSpecies string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List one page of characters",
	Long:  "Query one page of characters, optionally filtered by status and species, and print it as a translated table",
	Run: func(cmd *cobra.Command, args []string) {
		if listPage < 1 {
			cobra.CheckErr(fmt.Errorf("--page must be at least 1, got %d", listPage))
		}

		d, err := newDeps(cmd.Context(), cfg)
		cobra.CheckErr(err)
		defer d.Close()

		filters := services.Filters{Status: listStatus, Species: listSpecies}
		b, err := d.controller.Load(cmd.Context(), d.lang, filters, listPage)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("list failed: %w", err))
		}

		rows := b.Rows()
		if len(rows) == 0 {
			fmt.Println(b.Label("empty"))
			return
		}

		var (
			purple = lipgloss.Color("99")

			headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(purple)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers(b.Columns()...)

		for _, r := range rows {
			status := styles.StatusStyle(r.RawStatus).Render(r.Status)
			t.Row(truncateString(r.Name, 38), status, r.Species, r.Gender, truncateString(r.Origin, 38))
		}

		fmt.Printf("\n%s\n\n", styles.TitleStyle.Render(b.Label("title")))
		fmt.Println(t)
		fmt.Printf("%s • %s\n",
			fmt.Sprintf(b.Label("loaded"), len(rows), b.Total()),
			fmt.Sprintf(b.Label("page"), b.Page()))
	},
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 1, "page to show")
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by status (Alive, Dead, unknown)")
	listCmd.Flags().StringVar(&listSpecies, "species", "", "filter by species")
}

func truncateString(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
