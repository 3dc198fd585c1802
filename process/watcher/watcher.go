// Package watcher ingests receipt images dropped into a local folder,
// giving batch scans a path into the database without the upload form.
package watcher

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// settleDelay gives the writer time to finish the file before we read
// it; scanners and network copies emit Create long before the last byte.
const settleDelay = 500 * time.Millisecond

// ProcessFunc handles one dropped file. An error fails only that file.
type ProcessFunc func(path string) error

type Watcher struct {
	dir     string
	process ProcessFunc
	log     *logrus.Entry
}

func New(dir string, process ProcessFunc) *Watcher {
	return &Watcher{
		dir:     dir,
		process: process,
		log:     logrus.StandardLogger().WithField("package", "watcher"),
	}
}

// Run watches the folder until ctx is cancelled. Files are processed
// once per Create event, best-effort; failures are logged and the loop
// continues.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	if err := fw.Add(w.dir); err != nil {
		return err
	}
	w.log.WithField("dir", w.dir).Info("watching for dropped receipts")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) || !Eligible(ev.Name) {
				continue
			}
			time.Sleep(settleDelay)
			if err := w.process(ev.Name); err != nil {
				w.log.WithError(err).WithField("file", ev.Name).Warn("failed to ingest dropped file")
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warn("watch error")
		}
	}
}

// Eligible reports whether a path looks like a processable receipt
// image: allowed extension, not a dotfile or editor temp file.
func Eligible(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return false
	}
	switch strings.ToLower(filepath.Ext(base)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}
