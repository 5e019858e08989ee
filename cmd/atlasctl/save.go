package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/renzora/atlaskit/atlas/pack"
	"github.com/renzora/atlaskit/internal/manifest"
	"github.com/renzora/atlaskit/internal/raster"
)

var saveAtlas string

func init() {
	cmd := newSaveCmd()
	cmd.Flags().StringVar(&saveAtlas, "atlas", "", "Destination atlas (overrides the sidecar's atlas field)")
	rootCmd.AddCommand(cmd)
}

func newSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <art.png> [art.png...]",
		Short: "Pack staged artwork into its atlas",
		Long: `The save command packs one or more staged PNGs into their atlas,
allocating contiguous tile slots past the atlas's current high-water
mark. Each PNG needs a YAML sidecar (same name, .yaml extension)
describing its footprint.

Example:
  atlasctl save staging/tree.png
  atlasctl save staging/*.png --atlas gen1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(args)
		},
	}
}

func runSave(paths []string) error {
	// All items in one invocation must target one atlas, because Save
	// commits per atlas. Group first, then save group by group.
	groups := map[string][]pack.SaveItem{}
	for _, path := range paths {
		item, atlasName, err := loadStagedItem(path)
		if err != nil {
			return err
		}
		if saveAtlas != "" {
			atlasName = saveAtlas
		}
		if atlasName == "" {
			return fmt.Errorf("%s: no atlas in sidecar and no --atlas flag", path)
		}
		groups[atlasName] = append(groups[atlasName], item)
	}

	engine, release := newEngine()
	defer release()

	total := 0
	results := map[string][]string{}
	for atlasName, items := range groups {
		uids, err := engine.Save(atlasName, items)
		if err != nil {
			return fmt.Errorf("save to %q: %w", atlasName, err)
		}
		results[atlasName] = uids
		total += len(uids)
	}

	if jsonOut {
		return printJSON(results)
	}
	for atlasName, uids := range results {
		printInfo("%s: saved %d item(s)\n", atlasName, len(uids))
		for _, uid := range uids {
			printVerbose("  %s\n", uid)
		}
	}
	printInfo("Saved %d item(s)\n", total)
	return nil
}

// loadStagedItem reads a staged PNG and its sidecar.
func loadStagedItem(path string) (pack.SaveItem, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pack.SaveItem{}, "", fmt.Errorf("read %s: %w", path, err)
	}
	src, err := raster.Decode(data)
	if err != nil {
		return pack.SaveItem{}, "", fmt.Errorf("%s: %w", path, err)
	}
	m, err := manifest.Load(manifest.SidecarFor(path))
	if err != nil {
		return pack.SaveItem{}, "", err
	}
	return pack.SaveItem{
		UID:    m.Name,
		Source: src,
		Cols:   m.Cols,
		Rows:   m.Rows,
	}, m.Atlas, nil
}
