package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/renzora/atlaskit/atlas/pack"
	"github.com/renzora/atlaskit/internal/manifest"
)

func init() {
	rootCmd.AddCommand(newWatchCmd())
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the staging directory and save dropped artwork",
		Long: `The watch command watches the staging directory and packs artwork as
soon as a PNG and its YAML sidecar are both present. It runs until
interrupted.

Example:
  atlasctl watch
  atlasctl watch --staging-dir art/incoming --log-file pack.log`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch()
		},
	}
}

func runWatch() error {
	dir := viper.GetString("staging-dir")
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return err
	}

	engine, release := newEngine()
	defer release()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	printInfo("Watching %s\n", dir)
	log := logrus.WithField("staging", dir)

	// Editors fire several events per file; a short per-path cooldown
	// collapses them.
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			png := stagedPNG(event.Name)
			if png == "" {
				continue
			}
			now := time.Now()
			if t, seen := last[png]; seen && now.Sub(t) < 200*time.Millisecond {
				continue
			}
			last[png] = now

			if !bothStaged(png) {
				continue // wait for the other half of the pair
			}
			if err := saveStaged(engine, png); err != nil {
				log.WithField("art", png).WithError(err).Error("save failed")
				continue
			}
			log.WithField("art", png).Info("saved staged artwork")

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watch error")

		case <-stop:
			printInfo("Stopping\n")
			return nil
		}
	}
}

// stagedPNG maps an event path onto the PNG of its staged pair, or ""
// when the path is neither artwork nor sidecar.
func stagedPNG(path string) string {
	if manifest.IsArt(path) {
		return path
	}
	if strings.HasSuffix(path, ".yaml") {
		return strings.TrimSuffix(path, ".yaml") + ".png"
	}
	return ""
}

// bothStaged reports whether the PNG and its sidecar are both present.
func bothStaged(png string) bool {
	if _, err := os.Stat(png); err != nil {
		return false
	}
	_, err := os.Stat(manifest.SidecarFor(png))
	return err == nil
}

// saveStaged packs one staged PNG via its sidecar.
func saveStaged(engine *pack.Engine, png string) error {
	item, atlasName, err := loadStagedItem(png)
	if err != nil {
		return err
	}
	if atlasName == "" {
		return fmt.Errorf("%s: sidecar names no atlas", png)
	}
	_, err = engine.Save(atlasName, []pack.SaveItem{item})
	return err
}
