package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wizardgit/wgit/pkg/objects"
)

func newCountObjectsCmd() *cobra.Command {
	var byType bool

	cmd := &cobra.Command{
		Use:   "count-objects",
		Short: "Count objects in the object database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepository()
			if err != nil {
				return err
			}

			store := repo.ObjectStore()

			if !byType {
				count, err := store.ObjectCount()
				if err != nil {
					return err
				}
				fmt.Printf("count: %d\n", count)
				return nil
			}

			counts := map[objects.ObjectType]int{}
			if err := store.ForEachObject(func(hash objects.ObjectHash) error {
				obj, readErr := store.ReadObject(hash)
				if readErr != nil {
					fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", hash.Short(), readErr)
					return nil
				}
				counts[obj.Type()]++
				return nil
			}); err != nil {
				return err
			}

			total := 0
			for _, objType := range []objects.ObjectType{
				objects.BlobType, objects.TreeType, objects.CommitType, objects.TagType,
			} {
				fmt.Printf("%s: %d\n", objType, counts[objType])
				total += counts[objType]
			}
			fmt.Printf("total: %d\n", total)
			return nil
		},
	}

	cmd.Flags().BoolVar(&byType, "by-type", false, "Break the count down by object type")

	return cmd
}
