package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/wizardgit/wgit/pkg/objects"
	"github.com/wizardgit/wgit/pkg/objects/blob"
	"github.com/wizardgit/wgit/pkg/objects/commit"
	"github.com/wizardgit/wgit/pkg/objects/tag"
	"github.com/wizardgit/wgit/pkg/objects/tree"
)

func newHashObjectCmd() *cobra.Command {
	var write bool
	var objType string
	var useStdin bool

	cmd := &cobra.Command{
		Use:   "hash-object [file]",
		Short: "Compute object hash and optionally create an object from a file",
		Long: `Compute the object hash of the given file (or standard input) and
optionally write the object into the object database.

Without -w the hash is computed without touching the repository.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args, useStdin)
			if err != nil {
				return err
			}

			parsedType, err := objects.ParseObjectType(objType)
			if err != nil {
				return err
			}

			obj, err := buildObject(parsedType, data)
			if err != nil {
				return err
			}

			var hash objects.ObjectHash
			if write {
				repo, err := findRepository()
				if err != nil {
					return err
				}
				hash, err = repo.ObjectStore().WriteObject(obj, true)
				if err != nil {
					return fmt.Errorf("failed to write object: %w", err)
				}
			} else {
				hash, err = obj.Hash()
				if err != nil {
					return fmt.Errorf("failed to hash object: %w", err)
				}
			}

			fmt.Println(hash)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the object into the object database")
	cmd.Flags().StringVarP(&objType, "type", "t", "blob", "Object type (blob, tree, commit, tag)")
	cmd.Flags().BoolVar(&useStdin, "stdin", false, "Read the object from standard input")

	return cmd
}

// readInput reads the object payload from the named file or stdin.
func readInput(args []string, useStdin bool) ([]byte, error) {
	if useStdin || len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return data, nil
}

// buildObject constructs an object of the requested type from raw payload
// bytes. Non-blob payloads are validated by parsing them.
func buildObject(objType objects.ObjectType, data []byte) (objects.GitObject, error) {
	if objType == objects.BlobType {
		return blob.NewBlob(data), nil
	}

	serialized := objects.NewSerializedObject(objType, objects.ObjectContent(data))
	switch objType {
	case objects.TreeType:
		return tree.ParseTree(serialized.Bytes())
	case objects.CommitType:
		return commit.ParseCommit(serialized.Bytes())
	case objects.TagType:
		return tag.ParseTag(serialized.Bytes())
	default:
		return nil, fmt.Errorf("unsupported object type: %s", objType)
	}
}
