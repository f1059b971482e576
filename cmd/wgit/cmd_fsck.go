package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizardgit/wgit/cmd/wgit/ui"
	"github.com/wizardgit/wgit/pkg/common/logger"
)

func newFsckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fsck",
		Short: "Verify the integrity of the object database",
		Long: `Verify the integrity of the object database. Every object is
decompressed, decoded, and its hash recomputed to confirm it still
matches its file name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepository()
			if err != nil {
				return err
			}

			store := repo.ObjectStore()

			count, err := store.ObjectCount()
			if err != nil {
				return err
			}
			logger.Debug("verifying object database", "objects", count)

			failures, err := store.Verify(cmd.Context())
			if err != nil {
				return err
			}

			if len(failures) == 0 {
				fmt.Printf("%s checked %d objects, no corruption found\n",
					ui.Green(ui.IconCheck), count)
				return nil
			}

			for _, failure := range failures {
				fmt.Printf("%s %s: %s\n",
					ui.Red(ui.IconCross), ui.Hash(failure.Hash.String()), failure.Reason)
			}
			return fmt.Errorf("%d of %d objects corrupt", len(failures), count)
		},
	}

	return cmd
}
