package main

import (
	"context"
	"fmt"
	"hash/crc64"
	"io/ioutil"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scottkirkwood/truchet"
	"github.com/scottkirkwood/truchet/config"
)

var (
	show        bool
	watchPrefix string
)

func init() {
	watchCmd := &cobra.Command{
		Use:   "watch <config.yaml>",
		Short: "Redraw a tiling every time its config file changes",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
	watchCmd.Flags().BoolVar(&show, "show", false, "Show each new image in a window")
	watchCmd.Flags().StringVarP(&watchPrefix, "output", "o", "samples/watch-", "Output filename prefix")
	rootCmd.AddCommand(watchCmd)
}

// checksums remembers file contents so editor double-writes don't redraw.
type checksums map[string]uint64

var crcTable = crc64.MakeTable(crc64.ECMA)

func (c checksums) changed(fname string) bool {
	data, err := ioutil.ReadFile(fname)
	if err != nil {
		log.Warnf("Readfile error %q: %v", fname, err)
		return false
	}
	sum := crc64.Checksum(data, crcTable)
	if c[fname] == sum {
		return false
	}
	c[fname] = sum
	return true
}

func runWatch(cmd *cobra.Command, args []string) error {
	target, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// editors often replace the file, so watch its folder
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("problem adding folder watcher: %w", err)
	}
	log.Infof("Monitoring %q", target)

	images := make(chan string, 1)
	sums := checksums{}
	redraw := func() {
		if !sums.changed(target) {
			return
		}
		fname, err := drawFromFile(target)
		if err != nil {
			log.Errorf("Redraw failed: %v", err)
			return
		}
		if show {
			select {
			case images <- fname:
			default:
				log.Debug("Viewer busy, skipping image")
			}
		}
	}

	done := make(chan error, 1)
	go func() {
		redraw()
		done <- watchForEvents(watcher, target, redraw)
	}()
	if show {
		showImages(images)
		return nil
	}
	return <-done
}

func watchForEvents(watcher *fsnotify.Watcher, target string, redraw func()) error {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				redraw()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorf("Watcher: %v", err)
		}
	}
}

func drawFromFile(path string) (string, error) {
	f, err := config.Load(path)
	if err != nil {
		return "", err
	}
	seed := f.Seed
	if seedFlag != "" {
		seed = seedFlag
	}
	rnd, err := truchet.Init(seed)
	if err != nil {
		return "", err
	}
	return drawTruchet(context.Background(), f, rnd, watchPrefix, ".png")
}
