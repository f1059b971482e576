package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizardgit/wgit/pkg/objects"
	"github.com/wizardgit/wgit/pkg/repository/gitpath"
	"github.com/wizardgit/wgit/pkg/repository/refs"
)

func newRevParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rev-parse <name>",
		Short: "Resolve a name to a full object hash",
		Long: `Resolve a name to a full 40-character object hash.

The name can be a full hash, a unique hash prefix, a reference like
"refs/heads/master" or a bare branch name, or "HEAD".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepository()
			if err != nil {
				return err
			}

			name := args[0]

			// References win over hash prefixes, matching how names
			// are resolved in git.
			if hash, ok := resolveRef(repo.Refs(), name); ok {
				fmt.Println(hash)
				return nil
			}

			if objects.IsValidHashPrefix(name) {
				hash, err := repo.ObjectStore().ResolvePrefix(name)
				if err != nil {
					return err
				}
				if hash != "" {
					fmt.Println(hash)
					return nil
				}
			}

			return fmt.Errorf("unknown revision: %s", name)
		},
	}

	return cmd
}

// resolveRef tries the candidate reference spellings for a name:
// verbatim, as a branch, then as a tag.
func resolveRef(rm *refs.RefManager, name string) (objects.ObjectHash, bool) {
	candidates := []gitpath.RefPath{
		gitpath.RefPath(name),
		gitpath.RefPath("refs/heads/" + name),
		gitpath.RefPath("refs/tags/" + name),
	}

	for _, ref := range candidates {
		exists, err := rm.Exists(ref)
		if err != nil || !exists {
			continue
		}
		hash, err := rm.ResolveToSHA(ref)
		if err != nil {
			continue
		}
		return hash, true
	}

	return "", false
}
