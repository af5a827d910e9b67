package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pagebuilder/internal/editor"
	"pagebuilder/internal/model"
)

func (c *CLI) addCommand() *cobra.Command {
	var (
		output  string
		kind    string
		afterID string
	)

	cmd := &cobra.Command{
		Use:   "add [page.json]",
		Short: "Add a block with default content",
		Long: `Add a block with default content.

With --after the block is inserted directly after the given block and later
blocks shift down by one; otherwise it is appended.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bt := model.BlockType(kind)
			if !bt.Valid() {
				return fmt.Errorf("unknown block type %q (want one of %v)", kind, model.BlockTypes)
			}
			return c.edit(args[0], output, "add", func(s *editor.Session) bool {
				b, ok := s.AddBlock(bt, afterID)
				if ok {
					c.Logger.Debug("block added", "id", b.ID, "order", b.Order)
				}
				return ok
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: rewrite input)")
	cmd.Flags().StringVarP(&kind, "type", "t", string(model.BlockText), "block type")
	cmd.Flags().StringVar(&afterID, "after", "", "insert after this block id")
	return cmd
}

func (c *CLI) moveCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "move [page.json] [block-id] [up|down]",
		Short: "Swap a block with its neighbour",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := editor.Direction(args[2])
			if !dir.Valid() {
				return fmt.Errorf("direction must be up or down, got %q", args[2])
			}
			return c.edit(args[0], output, "move", func(s *editor.Session) bool {
				return s.MoveBlock(args[1], dir)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: rewrite input)")
	return cmd
}

func (c *CLI) resizeCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "resize [page.json] [block-id] [span]",
		Short: "Set a block's column span",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			span, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid span %q: %w", args[2], err)
			}
			return c.edit(args[0], output, "resize", func(s *editor.Session) bool {
				return s.ResizeGrid(args[1], span)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: rewrite input)")
	return cmd
}

func (c *CLI) dropCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "drop [page.json] [block-id] [column] [row]",
		Short: "Pin a block to a grid cell",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			column, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid column %q: %w", args[2], err)
			}
			row, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("invalid row %q: %w", args[3], err)
			}
			return c.edit(args[0], output, "drop", func(s *editor.Session) bool {
				return s.DropAt(args[1], column, row)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: rewrite input)")
	return cmd
}
