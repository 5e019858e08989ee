package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/renzora/atlaskit/atlas"
	"github.com/renzora/atlaskit/atlas/store"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-atlas occupancy statistics",
		Long: `The stats command reports, for every atlas referenced by the object
index: record and live-tile counts, the allocated row count, and how
many slots are holes left behind by moves.

Example:
  atlasctl stats
  atlasctl stats --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
}

// AtlasStats is one atlas's occupancy summary.
type AtlasStats struct {
	Atlas   string `json:"atlas"`
	Records int    `json:"records"`
	Tiles   int    `json:"tiles"`
	Rows    int    `json:"rows"`
	Holes   int    `json:"holes"`
}

func runStats() error {
	idx := store.NewFileIndexStore(viper.GetString("index"))
	records, err := idx.GetAll()
	if err != nil {
		return err
	}

	stats, err := buildStats(records, atlas.DefaultGrid())
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(stats)
	}
	if len(stats) == 0 {
		printInfo("Object index is empty\n")
		return nil
	}
	printInfo("%-20s %8s %8s %6s %8s\n", "ATLAS", "RECORDS", "TILES", "ROWS", "HOLES")
	for _, s := range stats {
		printInfo("%-20s %8d %8d %6d %8d\n", s.Atlas, s.Records, s.Tiles, s.Rows, s.Holes)
	}
	return nil
}

// buildStats folds the object index into per-atlas summaries, sorted by
// atlas name.
func buildStats(records map[string]*atlas.Record, g atlas.Grid) ([]AtlasStats, error) {
	byAtlas := map[string]*AtlasStats{}
	maxIndex := map[string]int{}
	for _, rec := range records {
		s := byAtlas[rec.Tileset]
		if s == nil {
			s = &AtlasStats{Atlas: rec.Tileset}
			byAtlas[rec.Tileset] = s
			maxIndex[rec.Tileset] = -1
		}
		s.Records++

		idx, err := rec.Indices()
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", rec.UID, err)
		}
		s.Tiles += len(idx)
		if len(idx) > 0 && idx[len(idx)-1] > maxIndex[rec.Tileset] {
			maxIndex[rec.Tileset] = idx[len(idx)-1]
		}
	}

	out := make([]AtlasStats, 0, len(byAtlas))
	for name, s := range byAtlas {
		if max := maxIndex[name]; max >= 0 {
			s.Rows = g.RowsFor(max + 1)
			s.Holes = (max + 1) - s.Tiles
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Atlas < out[j].Atlas })
	return out, nil
}
