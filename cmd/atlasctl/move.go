package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newMoveCmd())
}

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <target-atlas> <uid> [uid...]",
		Short: "Move placed graphics onto another atlas",
		Long: `The move command migrates graphics onto the target atlas, repacking
their tiles into a fresh contiguous run. The vacated slots on the
source atlases become holes until a delete compacts them.

Example:
  atlasctl move gen2 8f3a21bc90de45a1
  atlasctl move gen2 8f3a21bc90de45a1 77120cfe9a0b33d2`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMove(args[0], args[1:])
		},
	}
}

func runMove(target string, uids []string) error {
	engine, release := newEngine()
	defer release()

	if err := engine.Move(uids, target); err != nil {
		return fmt.Errorf("move to %q: %w", target, err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{"target": target, "moved": uids})
	}
	printInfo("Moved %d item(s) to %s\n", len(uids), target)
	return nil
}
