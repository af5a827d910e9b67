package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pagebuilder/internal/model"
)

func (c *CLI) templateCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write a new page built from the default template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := model.DefaultTemplate(c.now())
			doc.ID = c.newID()
			return c.writeDocument(doc, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func (c *CLI) duplicateCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "duplicate [page.json]",
		Short: "Copy a page under fresh page and block ids",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.readDocument(args[0])
			if err != nil {
				return err
			}
			return c.writeDocument(c.codec().Duplicate(doc), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func (c *CLI) importCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "import [page.json]",
		Short: "Validate an exported page and assign it a fresh id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			doc, err := c.codec().Import(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			c.Logger.Info("imported", "id", doc.ID, "blocks", len(doc.Blocks))
			return c.writeDocument(doc, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}
