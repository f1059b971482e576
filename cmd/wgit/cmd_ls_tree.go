package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/wizardgit/wgit/cmd/wgit/ui"
	"github.com/wizardgit/wgit/pkg/objects/tree"
)

func newLsTreeCmd() *cobra.Command {
	var nameOnly bool
	var useTable bool

	cmd := &cobra.Command{
		Use:   "ls-tree <tree-ish>",
		Short: "List the contents of a tree object",
		Long: `List the contents of a tree object, one entry per line. Entries are
shown in canonical order with their mode, type, hash, and name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepository()
			if err != nil {
				return err
			}

			hash, err := resolveObject(repo, args[0])
			if err != nil {
				return err
			}

			obj, err := repo.ReadObject(hash)
			if err != nil {
				return err
			}
			if obj == nil {
				return fmt.Errorf("not a valid object name: %s", args[0])
			}

			t, ok := obj.(*tree.Tree)
			if !ok {
				return fmt.Errorf("not a tree object: %s (%s)", args[0], obj.Type())
			}

			switch {
			case nameOnly:
				for _, entry := range t.Entries() {
					fmt.Println(entry.Name())
				}
			case useTable:
				displayTreeAsTable(t)
			default:
				for _, entry := range t.Entries() {
					fmt.Printf("%s %s %s\t%s\n",
						entry.FileMode().ToOctalString(), entry.ObjectType(), entry.SHA(), entry.Name())
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&nameOnly, "name-only", false, "List only entry names")
	cmd.Flags().BoolVarP(&useTable, "table", "T", false, "Display entries in table format")

	return cmd
}

// displayTreeAsTable shows tree entries in a compact table format
func displayTreeAsTable(t *tree.Tree) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Mode", "Type", "Hash", "Name")

	for _, entry := range t.Entries() {
		name := entry.Name()
		if entry.IsDirectory() {
			name = ui.Blue(name + "/")
		}

		table.Append(
			ui.Dim(entry.FileMode().ToOctalString()),
			ui.Cyan(entry.ObjectType().String()),
			ui.Hash(entry.SHA()[:8]),
			name,
		)
	}

	table.Render()
}
