package render

import (
	"io/fs"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watch reparses the template tree whenever a file under the registry's
// directory changes. It blocks until stop is closed; intended for dev mode
// where a restart per template edit is a nuisance.
func (r *Registry) Watch(stop <-chan struct{}) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// fsnotify watches are not recursive; add every directory in the tree.
	err = filepath.WalkDir(r.opts.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for {
		select {
		case <-stop:
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if ev.Op&fsnotify.Create != 0 {
				// newly created subdirectories need their own watch
				_ = w.Add(ev.Name)
			}
			if err := r.Reload(); err != nil {
				logrus.WithError(err).Warn("template reload failed")
				continue
			}
			logrus.WithField("file", ev.Name).Debug("templates reloaded")
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logrus.WithError(err).Warn("template watcher error")
		}
	}
}
