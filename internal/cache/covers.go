// Package cache provides disk and memory caching for cover art.
package cache

import (
	"crypto/sha256"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// Cover is a loaded cover image. GPU is what cards draw; Source stays decoded
// in memory so accent extraction has a locally addressable resource to read.
type Cover struct {
	GPU    *ebiten.Image
	Source image.Image
}

// CoverCache loads cover art lazily and reports completion through callbacks.
// Until the callback for a URL has fired, the cover is simply not available.
type CoverCache struct {
	cacheDir string
	memory   sync.Map // url -> *Cover
	loading  sync.Map // url -> *loadEntry (in-flight dedup with waiters)
	sem      chan struct{}
}

// loadEntry tracks an in-flight download and its waiters.
type loadEntry struct {
	mu        sync.Mutex
	callbacks []func(*Cover)
}

// NewCoverCache creates a cover cache backed by the given disk directory.
func NewCoverCache(cacheDir string) (*CoverCache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, err
	}
	return &CoverCache{
		cacheDir: cacheDir,
		sem:      make(chan struct{}, 6),
	}, nil
}

// Get returns the loaded cover for url, or nil if it has not arrived yet.
func (cc *CoverCache) Get(url string) *Cover {
	if v, ok := cc.memory.Load(url); ok {
		return v.(*Cover)
	}
	return nil
}

// LoadAsync starts loading a cover in the background. The callback runs once
// the cover is available; it may be invoked from a goroutine, so receivers
// must hand the result back to the UI thread themselves.
func (cc *CoverCache) LoadAsync(url string, callback func(*Cover)) {
	if v, ok := cc.memory.Load(url); ok {
		callback(v.(*Cover))
		return
	}

	entry := &loadEntry{}
	entry.callbacks = append(entry.callbacks, callback)

	if existing, loaded := cc.loading.LoadOrStore(url, entry); loaded {
		// Another goroutine is already downloading this URL.
		existingEntry := existing.(*loadEntry)
		existingEntry.mu.Lock()
		existingEntry.callbacks = append(existingEntry.callbacks, callback)
		existingEntry.mu.Unlock()
		return
	}

	go func() {
		defer cc.loading.Delete(url)

		cc.sem <- struct{}{}
		defer func() { <-cc.sem }()

		img, err := cc.loadImage(url)
		if err != nil {
			return
		}

		cover := &Cover{
			GPU:    ebiten.NewImageFromImage(img),
			Source: img,
		}
		cc.memory.Store(url, cover)

		entry.mu.Lock()
		cbs := make([]func(*Cover), len(entry.callbacks))
		copy(cbs, entry.callbacks)
		entry.mu.Unlock()

		for _, cb := range cbs {
			cb(cover)
		}
	}()
}

func (cc *CoverCache) loadImage(url string) (image.Image, error) {
	diskPath := cc.diskPath(url)

	if f, err := os.Open(diskPath); err == nil {
		defer f.Close()
		img, _, err := image.Decode(f)
		if err == nil {
			return img, nil
		}
		// Corrupt cache file, remove and re-download
		os.Remove(diskPath)
	}

	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cover download failed: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(diskPath)
	if err != nil {
		return nil, err
	}

	// Tee to disk while decoding
	tee := io.TeeReader(resp.Body, f)
	img, _, err := image.Decode(tee)
	f.Close()
	if err != nil {
		os.Remove(diskPath)
		return nil, err
	}

	return img, nil
}

func (cc *CoverCache) diskPath(url string) string {
	h := sha256.Sum256([]byte(url))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(cc.cacheDir, name[:2], name)
}

// Clear drops all covers from memory.
func (cc *CoverCache) Clear() {
	cc.memory = sync.Map{}
}

// ClearDisk removes all cached covers from disk.
func (cc *CoverCache) ClearDisk() error {
	return os.RemoveAll(cc.cacheDir)
}
