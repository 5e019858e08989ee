package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/renzora/atlaskit/atlas/store"
	"github.com/renzora/atlaskit/atlas/thumb"
	"github.com/renzora/atlaskit/internal/raster"
	"github.com/renzora/atlaskit/internal/writer"
)

var (
	thumbOut  string
	thumbSize int
)

func init() {
	cmd := newThumbnailCmd()
	cmd.Flags().StringVarP(&thumbOut, "out", "o", "", "Output path (default <atlas>_thumb.png)")
	cmd.Flags().IntVar(&thumbSize, "size", 512, "Maximum edge length in pixels")
	rootCmd.AddCommand(cmd)
}

func newThumbnailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "thumbnail <atlas>",
		Short: "Render a preview thumbnail of an atlas",
		Long: `The thumbnail command renders a downscaled preview of an atlas for
asset browsers. Scaling is nearest-neighbor so tiles stay crisp.

Example:
  atlasctl thumbnail gen1
  atlasctl thumbnail gen1 -o preview.png --size 256`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThumbnail(args[0])
		},
	}
}

func runThumbnail(name string) error {
	rasters := store.NewFileRasterStore(viper.GetString("atlas-dir"))
	img, err := rasters.Read(name)
	if err != nil {
		return err
	}

	small, err := thumb.Render(img, thumbSize)
	if err != nil {
		return err
	}
	data, err := raster.Encode(small)
	if err != nil {
		return err
	}

	out := thumbOut
	if out == "" {
		out = name + "_thumb.png"
	}
	if err := writer.WriteFile(out, data); err != nil {
		return fmt.Errorf("write thumbnail: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"atlas":  name,
			"out":    out,
			"width":  small.Bounds().Dx(),
			"height": small.Bounds().Dy(),
		})
	}
	printInfo("Wrote %s (%dx%d)\n", out, small.Bounds().Dx(), small.Bounds().Dy())
	return nil
}
