package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wizardgit/wgit/pkg/objects"
	"github.com/wizardgit/wgit/pkg/objects/tree"
)

func newCatFileCmd() *cobra.Command {
	var showType bool
	var showSize bool
	var prettyPrint bool

	cmd := &cobra.Command{
		Use:   "cat-file <object>",
		Short: "Provide content, type or size information for repository objects",
		Long: `Display the content, type, or size of an object in the object
database. The object can be named by its full hash or any unique prefix.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !showType && !showSize && !prettyPrint {
				return fmt.Errorf("one of -t, -s or -p is required")
			}

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

			switch {
			case showType:
				fmt.Println(obj.Type())
			case showSize:
				size, err := obj.Size()
				if err != nil {
					return err
				}
				fmt.Println(size)
			case prettyPrint:
				return prettyPrintObject(obj)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&showType, "type", "t", false, "Show the object type")
	cmd.Flags().BoolVarP(&showSize, "size", "s", false, "Show the object size")
	cmd.Flags().BoolVarP(&prettyPrint, "pretty", "p", false, "Pretty-print the object content")

	return cmd
}

// prettyPrintObject writes the object content in a human-readable form.
// Trees are rendered one entry per line; everything else is raw content.
func prettyPrintObject(obj objects.GitObject) error {
	if t, ok := obj.(*tree.Tree); ok {
		for _, entry := range t.Entries() {
			fmt.Printf("%s %s %s\t%s\n",
				entry.FileMode().ToOctalString(), entry.ObjectType(), entry.SHA(), entry.Name())
		}
		return nil
	}

	content, err := obj.Content()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(content)
	return err
}
