package bank

import (
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher debounces file events for sound files so edits on disk reload
// through the bank on the next poll.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isSoundFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

func isSoundFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".ogg", ".oga", ".mp3":
		return true
	}
	return false
}

// Watch starts hot reload for sound files under dirs. Changed files that
// match a loaded asset are re-decoded; the asset goes back to loading and
// its next Poll delivery replaces the sound in place.
func (b *Bank) Watch(dirs ...string) error {
	if b.watcher != nil {
		return nil
	}
	w, err := NewWatcher(dirs...)
	if err != nil {
		return err
	}
	b.watcher = w
	return nil
}

// CloseWatcher stops hot reload if it was started.
func (b *Bank) CloseWatcher() error {
	if b.watcher == nil {
		return nil
	}
	err := b.watcher.Close()
	b.watcher = nil
	return err
}

func (b *Bank) drainWatcher() {
	if b.watcher == nil {
		return
	}
	for {
		select {
		case changed, ok := <-b.watcher.Events:
			if !ok {
				return
			}
			b.reload(changed)
		case err, ok := <-b.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("bank: watcher: %v", err)
		default:
			return
		}
	}
}

// reload re-decodes the loaded asset whose bank path matches the changed
// OS path, if there is one.
func (b *Bank) reload(changed string) {
	slashed := strings.ReplaceAll(changed, "\\", "/")
	for p, asset := range b.assets {
		// Match on a path boundary so beep.wav does not claim xbeep.wav.
		if slashed != p && !strings.HasSuffix(slashed, "/"+p) {
			continue
		}
		ext := strings.ToLower(filepath.Ext(p))
		dec, ok := b.decoders[ext]
		if !ok {
			continue
		}
		asset.state = AssetLoading
		go b.decode(asset, dec)
	}
}
