package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDeleteCmd())
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <uid> [uid...]",
		Short: "Delete placed graphics and compact their atlases",
		Long: `The delete command removes graphics from the object index and rewrites
every affected atlas so the surviving tile indices are contiguous from
zero. Rows no survivor needs are cropped away.

Example:
  atlasctl delete 8f3a21bc90de45a1
  atlasctl delete 8f3a21bc90de45a1 77120cfe9a0b33d2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args)
		},
	}
}

func runDelete(uids []string) error {
	engine, release := newEngine()
	defer release()

	if err := engine.Delete(uids); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{"deleted": uids})
	}
	printInfo("Deleted %d item(s)\n", len(uids))
	return nil
}
