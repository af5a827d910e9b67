package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"pagebuilder/internal/layout"
	"pagebuilder/internal/model"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func (c *CLI) layoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "layout [page.json]",
		Short: "Print blocks in render order with their grid cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.readDocument(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.Out, renderLayout(doc))
			return err
		},
	}
}

// renderLayout draws one row per block, ordered as the grid renders them.
func renderLayout(doc *model.Document) string {
	positions := layout.Calculate(doc.Blocks)
	rows := make([][]string, 0, len(doc.Blocks))
	for _, b := range layout.RenderOrder(doc.Blocks, positions) {
		pos := positions[b.ID]
		placement := "auto"
		if b.GridPosition != nil {
			placement = "pinned"
		}
		lock := ""
		if b.Locked {
			lock = "locked"
		}
		rows = append(rows, []string{
			strconv.Itoa(pos.Row),
			strconv.Itoa(pos.Column),
			strconv.Itoa(pos.ColumnSpan),
			b.ID,
			string(b.Type()),
			strconv.Itoa(b.Order),
			placement,
			lock,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ROW", "COL", "SPAN", "ID", "TYPE", "ORDER", "PLACEMENT", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}
