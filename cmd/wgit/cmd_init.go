package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/wizardgit/wgit/pkg/repository/gitrepo"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Initialize a new repository",
		Long: `Initialize a new repository in the current directory or specified path.
This creates a .git directory with all necessary subdirectories and files.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("failed to resolve path: %w", err)
			}

			repo, err := gitrepo.InitializeRepository(absPath)
			if err != nil {
				return fmt.Errorf("failed to initialize repository: %w", err)
			}

			fmt.Printf("Initialized empty repository in %s\n", repo.GitDirectory())
			return nil
		},
	}

	return cmd
}
