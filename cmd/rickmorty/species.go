package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/kerbaras/rickmorty/pkg/app/styles"
	"github.com/kerbaras/rickmorty/pkg/services"
	"github.com/spf13/cobra"
)

var speciesPages int

var speciesCmd = &cobra.Command{
	Use:   "species",
	Short: "List the species seen in the first pages",
	Long:  "Walk the first pages of characters and print every distinct species with its translated label",
	Run: func(cmd *cobra.Command, args []string) {
		if speciesPages < 1 {
			cobra.CheckErr(fmt.Errorf("--pages must be at least 1, got %d", speciesPages))
		}

		d, err := newDeps(cmd.Context(), cfg)
		cobra.CheckErr(err)
		defer d.Close()

		opts, err := d.controller.CollectSpecies(cmd.Context(), d.lang, speciesPages)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("species failed: %w", err))
		}

		// the first entry is the "all" option
		opts = opts[1:]
		if len(opts) == 0 {
			fmt.Println(d.dict.Label(d.lang, "empty"))
			return
		}

		columns := []table.Column{
			{Title: d.dict.Label(d.lang, "species"), Width: 28},
			{Title: d.dict.Label(d.lang, "value"), Width: 28},
		}

		rows := make([]table.Row, 0, len(opts))
		for _, opt := range opts {
			rows = append(rows, table.Row{opt.Label, opt.Value})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)+1),
		)
		t.SetStyles(styles.TableStyles(false))

		fmt.Printf("\n%s\n\n", styles.TitleStyle.Render(fmt.Sprintf("%s (%d)", d.dict.Label(d.lang, "filter_by_species"), len(opts))))
		fmt.Println(t.View())
	},
}

func init() {
	speciesCmd.Flags().IntVar(&speciesPages, "pages", 3, fmt.Sprintf("number of %d-character pages to scan", services.PageSize))
}
