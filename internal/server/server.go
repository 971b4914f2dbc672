// internal/server/server.go
package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Run builds the preview once, then serves it from publicDir with live
// reload: any change under the watch paths triggers a rebuild and a
// websocket notification to connected pages.
func Run(port int, publicDir string, watchPaths []string, buildFunc func() error) error {
	if err := buildFunc(); err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}

	hub := newHub()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create file watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]bool)
	addWatch := func(dir string) {
		dir = filepath.Clean(dir)
		if watched[dir] {
			return
		}
		if err := watcher.Add(dir); err != nil {
			log.Printf("Error adding watch on %s: %v", dir, err)
			return
		}
		fmt.Printf("Watching directory: %s\n", dir)
		watched[dir] = true
	}

	for _, path := range watchPaths {
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("could not stat path %s: %w", path, err)
		}

		if info.IsDir() {
			if err := filepath.Walk(path, func(walkPath string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if info.IsDir() {
					addWatch(walkPath)
				}
				return nil
			}); err != nil {
				return fmt.Errorf("failed to watch directory %s: %w", path, err)
			}
		} else {
			// Watching the parent directory survives editors that
			// save through a rename.
			addWatch(filepath.Dir(path))
		}
	}

	go watchForChanges(watcher, hub, buildFunc)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(hub, w, r)
	})
	mux.Handle("/", noCache(http.FileServer(http.Dir(publicDir))))

	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Serving preview on http://localhost%s\n", addr)
	fmt.Println("Press Ctrl+C to stop")
	return http.ListenAndServe(addr, mux)
}

func watchForChanges(watcher *fsnotify.Watcher, hub *Hub, buildFunc func() error) {
	var lastBuild time.Time
	const debounce = 500 * time.Millisecond

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if time.Since(lastBuild) <= debounce {
				continue
			}
			// Let the editor finish writing before reading the file.
			time.Sleep(100 * time.Millisecond)

			log.Printf("Change detected in %s, rebuilding...", event.Name)
			if err := buildFunc(); err != nil {
				log.Printf("Error rebuilding preview: %v", err)
			} else {
				log.Println("Preview rebuilt. Triggering reload...")
				hub.broadcastMessage([]byte("reload"))
			}
			lastBuild = time.Now()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// noCache keeps the browser from serving a stale preview between rebuilds.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}
