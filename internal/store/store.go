package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/google/uuid"

	"github.com/ironsheep/channel-adjust-mcp/internal/imaging"
	"github.com/ironsheep/channel-adjust-mcp/internal/node"
)

var (
	// ErrNotFound is returned when no image exists under a name.
	ErrNotFound = errors.New("image not found")

	// ErrInvalidName is returned for names that are empty or leave the store
	// directory.
	ErrInvalidName = errors.New("invalid image name")
)

const metadataExt = ".json"

// Store is a directory of images that implements node.ImageService.
//
// Images are addressed by their file name inside the directory. Images
// created through the store are written as PNG with a JSON sidecar holding
// their ImageRecord. Decoded images are cached for the life of the Store.
type Store struct {
	dir   string
	cache *imaging.ImageCache

	mu      sync.RWMutex
	records map[string]*node.ImageRecord

	now     func() time.Time
	newName func() string
}

var _ node.ImageService = (*Store)(nil)

// New opens the store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("store directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &Store{
		dir:     dir,
		cache:   imaging.NewImageCache(),
		records: make(map[string]*node.ImageRecord),
		now:     func() time.Time { return time.Now().UTC() },
		newName: func() string { return uuid.NewString() + ".png" },
	}, nil
}

// Dir returns the directory the store is rooted at.
func (s *Store) Dir() string {
	return s.dir
}

// path maps an image name to its file, rejecting anything but a plain file
// name.
func (s *Store) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.dir, name), nil
}

// GetImage returns the decoded image stored under name.
func (s *Store) GetImage(name string) (image.Image, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, err
	}
	return s.cache.Load(p)
}

// Create writes req.Image as a new PNG and records its metadata.
//
// Either both the image and its sidecar are written or neither is left
// behind.
func (s *Store) Create(req node.CreateImageRequest) (*node.ImageRecord, error) {
	if req.Image == nil {
		return nil, errors.New("no image to store")
	}

	name := s.newName()
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}

	if err := imgio.Save(p, req.Image, imgio.PNGEncoder()); err != nil {
		os.Remove(p)
		return nil, fmt.Errorf("failed to write image: %w", err)
	}

	b := req.Image.Bounds()
	rec := &node.ImageRecord{
		Name:           name,
		Width:          b.Dx(),
		Height:         b.Dy(),
		Origin:         req.Origin,
		Category:       req.Category,
		NodeID:         req.NodeID,
		SessionID:      req.SessionID,
		IsIntermediate: req.IsIntermediate,
		Workflow:       req.Workflow,
		CreatedAt:      s.now(),
	}

	if err := writeRecord(metadataPath(p), rec); err != nil {
		os.Remove(p)
		return nil, err
	}

	s.cache.Add(p, req.Image)

	s.mu.Lock()
	s.records[name] = rec
	s.mu.Unlock()

	return rec, nil
}

// Record returns the metadata of an image created through a store rooted at
// the same directory. Images placed in the directory by other means have no
// record and yield ErrNotFound.
func (s *Store) Record(name string) (*node.ImageRecord, error) {
	s.mu.RLock()
	rec, ok := s.records[name]
	s.mu.RUnlock()
	if ok {
		return rec, nil
	}

	p, err := s.path(name)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(metadataPath(p))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: no record for %s", ErrNotFound, name)
		}
		return nil, err
	}

	rec = &node.ImageRecord{}
	if err := json.Unmarshal(b, rec); err != nil {
		return nil, fmt.Errorf("failed to read record for %s: %w", name, err)
	}

	s.mu.Lock()
	s.records[name] = rec
	s.mu.Unlock()

	return rec, nil
}

func metadataPath(imagePath string) string {
	return strings.TrimSuffix(imagePath, filepath.Ext(imagePath)) + metadataExt
}

func writeRecord(path string, rec *node.ImageRecord) error {
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}
