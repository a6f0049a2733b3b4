// Package replay implements "domvm replay": decode a raw change-list word
// stream from a file and apply it to a freshly constructed container,
// printing the resulting tree. It exists to exercise the interpreter outside
// of a browser; it is not part of the guest/host contract.
package replay

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pgavlin/domvm/changelist"
	"github.com/pgavlin/domvm/dom"
	"github.com/pgavlin/domvm/memory"
)

const pageSize = 65536

func printTree(w *strings.Builder, n *dom.Node, depth int) {
	if n == nil {
		return
	}
	w.WriteString(strings.Repeat("  ", depth))
	if n.Kind() == dom.TextNode {
		fmt.Fprintf(w, "%q\n", n.TextContent())
		return
	}
	fmt.Fprintf(w, "<%s>\n", n.TagName())
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		printTree(w, c, depth+1)
	}
}

// Command returns the "replay" cobra command.
func Command() *cobra.Command {
	var tag string

	command := &cobra.Command{
		Use:   "replay [path to change-list file]",
		Short: "Apply a recorded change-list to a fresh container and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one argument")
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if len(raw)%4 != 0 {
				return fmt.Errorf("replay: %s is not a whole number of 32-bit words", args[0])
			}

			pages := (len(raw) + pageSize - 1) / pageSize
			if pages == 0 {
				pages = 1
			}
			sharedMem, err := memory.NewSharedMemory(pages)
			if err != nil {
				return err
			}
			defer sharedMem.Close()
			copy(sharedMem.Bytes(), raw)

			container := dom.NewElement(tag)
			ip := changelist.New(container)

			if err := ip.AddChangeListRange(0, len(raw)); err != nil {
				return err
			}
			if err := ip.ApplyChanges(sharedMem.View()); err != nil {
				return err
			}

			var out strings.Builder
			printTree(&out, container, 0)
			fmt.Fprint(cmd.OutOrStdout(), out.String())
			return nil
		},
	}

	command.Flags().StringVar(&tag, "container-tag", "div", "tag name of the synthetic container element")

	return command
}
