// Package cli implements the pagectl command-line interface, which edits
// exported page files offline.
//
// Read-only commands (template, layout, duplicate, import) write to stdout or
// --output. Edit commands (add, move, resize, drop) rewrite the file in place
// unless --output is given. Edits that cannot apply leave the file untouched
// and are reported at warn level.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"pagebuilder/internal/codec"
	"pagebuilder/internal/editor"
	"pagebuilder/internal/model"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer

	now   func() time.Time
	newID func() string
}

// New creates a CLI that logs to logw and prints results to out.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(logw, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Out:   out,
		now:   func() time.Time { return time.Now().UTC() },
		newID: model.NewID,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "pagectl",
		Short:        "pagectl edits exported page documents",
		Long:         `pagectl creates, inspects and edits page documents in their exported JSON form, applying the same ordering and grid rules as the page builder service.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.templateCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.duplicateCommand())
	root.AddCommand(c.importCommand())
	root.AddCommand(c.addCommand())
	root.AddCommand(c.moveCommand())
	root.AddCommand(c.resizeCommand())
	root.AddCommand(c.dropCommand())

	return root
}

func (c *CLI) codec() *codec.Codec {
	return &codec.Codec{Now: c.now, NewID: c.newID}
}

// readDocument loads a page file, keeping its identity.
func (c *CLI) readDocument(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := c.codec().Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// writeDocument exports doc to path, or to Out when path is empty.
func (c *CLI) writeDocument(doc *model.Document, path string) error {
	data, err := c.codec().Export(doc)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if path == "" {
		_, err = c.Out.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	c.Logger.Debug("wrote document", "path", path, "bytes", len(data))
	return nil
}

// edit applies fn to the document in path and writes the result to output,
// defaulting to path itself. Nothing is written when fn changes nothing.
func (c *CLI) edit(path, output, op string, fn func(*editor.Session) bool) error {
	doc, err := c.readDocument(path)
	if err != nil {
		return err
	}
	sess := editor.NewSession(doc, editor.WithClock(c.now), editor.WithIDGenerator(c.newID))
	if !fn(sess) {
		c.Logger.Warn("edit not applied", "op", op, "file", path)
		return nil
	}
	if output == "" {
		output = path
	}
	if err := c.writeDocument(sess.Document(), output); err != nil {
		return err
	}
	c.Logger.Info("edit applied", "op", op, "file", output)
	return nil
}
