package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
)

type table struct {
	rows  map[string]models.Model
	order []string
}

// FileStorage keeps every record in memory and writes a JSON snapshot to
// path on Save. An empty path keeps the data in memory only. Open reloads the
// snapshot when another process has rewritten it.
type FileStorage struct {
	mu     sync.RWMutex
	path   string
	loaded snapshotStamp

	tables map[models.Kind]*table

	citiesByState    index
	placesByCity     index
	placesByUser     index
	reviewsByPlace   index
	reviewsByUser    index
	amenitiesByPlace index
	placesByAmenity  index
}

// snapshotStamp identifies the snapshot version last loaded or written.
type snapshotStamp struct {
	modTime time.Time
	size    int64
}

func (s snapshotStamp) same(other snapshotStamp) bool {
	return s.size == other.size && s.modTime.Equal(other.modTime)
}

// snapshotPlace persists the amenity links alongside the place record.
type snapshotPlace struct {
	*models.Place
	AmenityIDs []string `json:"amenity_ids,omitempty"`
}

// NewFileStorage creates the engine and reloads the snapshot at path, if any.
func NewFileStorage(path string) (*FileStorage, error) {
	fs := &FileStorage{path: path}
	fs.reset()
	if err := fs.reload(); err != nil {
		return nil, err
	}
	return fs, nil
}

// Open refreshes the records from the snapshot if it changed on disk since
// it was last loaded or written by this engine.
func (fs *FileStorage) Open(context.Context) (Session, error) {
	if err := fs.refresh(); err != nil {
		return nil, err
	}
	return &fileSession{fs: fs}, nil
}

// Migrate is a no-op: the file engine has no schema.
func (fs *FileStorage) Migrate(context.Context) error { return nil }

func (fs *FileStorage) Close() error { return nil }

func (fs *FileStorage) reset() {
	fs.tables = make(map[models.Kind]*table, len(models.Kinds))
	for _, kind := range models.Kinds {
		fs.tables[kind] = &table{rows: make(map[string]models.Model)}
	}
	fs.citiesByState = index{}
	fs.placesByCity = index{}
	fs.placesByUser = index{}
	fs.reviewsByPlace = index{}
	fs.reviewsByUser = index{}
	fs.amenitiesByPlace = index{}
	fs.placesByAmenity = index{}
}

func (fs *FileStorage) refresh() error {
	if fs.path == "" {
		return nil
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()

	current, err := fs.stat()
	if err != nil {
		return err
	}
	if current.same(fs.loaded) {
		return nil
	}
	fs.reset()
	return fs.reload()
}

// stat returns the zero stamp when there is no snapshot yet.
func (fs *FileStorage) stat() (snapshotStamp, error) {
	info, err := os.Stat(fs.path)
	if errors.Is(err, os.ErrNotExist) {
		return snapshotStamp{}, nil
	}
	if err != nil {
		return snapshotStamp{}, fmt.Errorf("stat %s: %w", fs.path, err)
	}
	return snapshotStamp{modTime: info.ModTime(), size: info.Size()}, nil
}

// reload reads the snapshot into empty tables.
func (fs *FileStorage) reload() error {
	if fs.path == "" {
		return nil
	}
	// Stamp before reading: a rewrite racing the read is picked up by the
	// next refresh.
	stamp, err := fs.stat()
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(fs.path)
	if errors.Is(err, os.ErrNotExist) {
		fs.loaded = stamp
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", fs.path, err)
	}

	var snapshot map[string]json.RawMessage
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return fmt.Errorf("decode %s: %w", fs.path, err)
	}

	var loaded []models.Model
	links := make(map[string][]string)
	for key, record := range snapshot {
		kind, _, ok := strings.Cut(key, ".")
		if !ok {
			return fmt.Errorf("decode %s: bad key %q", fs.path, key)
		}
		obj := models.New(models.Kind(kind))
		if obj == nil {
			return fmt.Errorf("decode %s: unknown class %q", fs.path, kind)
		}
		if place, ok := obj.(*models.Place); ok {
			wrapped := snapshotPlace{Place: place}
			if err := json.Unmarshal(record, &wrapped); err != nil {
				return fmt.Errorf("decode %s: %w", key, err)
			}
			links[place.ID] = wrapped.AmenityIDs
		} else if err := json.Unmarshal(record, obj); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
		loaded = append(loaded, obj)
	}

	// JSON objects carry no order, so restore insertion order from created_at.
	sort.SliceStable(loaded, func(i, j int) bool {
		a, b := loaded[i].Base(), loaded[j].Base()
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID < b.ID
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	for _, obj := range loaded {
		fs.insert(obj)
	}
	for placeID, amenityIDs := range links {
		for _, amenityID := range amenityIDs {
			fs.link(placeID, amenityID)
		}
	}
	fs.loaded = stamp
	return nil
}

func (fs *FileStorage) flush() error {
	if fs.path == "" {
		return nil
	}

	snapshot := make(map[string]any)
	for kind, t := range fs.tables {
		for id, obj := range t.rows {
			key := string(kind) + "." + id
			if place, ok := obj.(*models.Place); ok {
				snapshot[key] = snapshotPlace{Place: place, AmenityIDs: fs.amenitiesByPlace.get(id)}
				continue
			}
			snapshot[key] = obj
		}
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(fs.path), ".hbnb-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), fs.path); err != nil {
		return err
	}
	stamp, err := fs.stat()
	if err != nil {
		return err
	}
	fs.loaded = stamp
	return nil
}

func (fs *FileStorage) insert(obj models.Model) {
	t := fs.tables[obj.Kind()]
	id := obj.Base().ID
	if _, exists := t.rows[id]; !exists {
		t.order = append(t.order, id)
	}
	t.rows[id] = obj

	switch o := obj.(type) {
	case *models.City:
		fs.citiesByState.add(o.StateID, id)
	case *models.Place:
		fs.placesByCity.add(o.CityID, id)
		fs.placesByUser.add(o.UserID, id)
	case *models.Review:
		fs.reviewsByPlace.add(o.PlaceID, id)
		fs.reviewsByUser.add(o.UserID, id)
	}
}

func (fs *FileStorage) link(placeID, amenityID string) bool {
	if !fs.amenitiesByPlace.add(placeID, amenityID) {
		return false
	}
	fs.placesByAmenity.add(amenityID, placeID)
	return true
}

func (fs *FileStorage) unlink(placeID, amenityID string) bool {
	if !fs.amenitiesByPlace.remove(placeID, amenityID) {
		return false
	}
	fs.placesByAmenity.remove(amenityID, placeID)
	return true
}

// remove deletes obj and cascades to its dependants.
func (fs *FileStorage) remove(kind models.Kind, id string) {
	t := fs.tables[kind]
	obj, ok := t.rows[id]
	if !ok {
		return
	}
	delete(t.rows, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i:i], t.order[i+1:]...)
			break
		}
	}

	switch o := obj.(type) {
	case *models.State:
		for _, cityID := range fs.citiesByState.get(id) {
			fs.remove(models.KindCity, cityID)
		}
	case *models.City:
		fs.citiesByState.remove(o.StateID, id)
		for _, placeID := range fs.placesByCity.get(id) {
			fs.remove(models.KindPlace, placeID)
		}
	case *models.User:
		for _, placeID := range fs.placesByUser.get(id) {
			fs.remove(models.KindPlace, placeID)
		}
		for _, reviewID := range fs.reviewsByUser.get(id) {
			fs.remove(models.KindReview, reviewID)
		}
	case *models.Place:
		fs.placesByCity.remove(o.CityID, id)
		fs.placesByUser.remove(o.UserID, id)
		for _, reviewID := range fs.reviewsByPlace.get(id) {
			fs.remove(models.KindReview, reviewID)
		}
		for _, amenityID := range fs.amenitiesByPlace.get(id) {
			fs.unlink(id, amenityID)
		}
	case *models.Review:
		fs.reviewsByPlace.remove(o.PlaceID, id)
		fs.reviewsByUser.remove(o.UserID, id)
	case *models.Amenity:
		for _, placeID := range fs.placesByAmenity.get(id) {
			fs.unlink(placeID, id)
		}
	}
}

// clone hands out copies so callers never mutate stored records in place.
func clone(obj models.Model) (models.Model, error) {
	raw, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	out := models.New(obj.Kind())
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

// fileSession applies writes to memory immediately; Save writes the snapshot.
type fileSession struct {
	fs *FileStorage
}

func (s *fileSession) New(obj models.Model) error {
	obj.Base().Touch()
	stored, err := clone(obj)
	if err != nil {
		return err
	}
	s.fs.mu.Lock()
	defer s.fs.mu.Unlock()
	s.fs.insert(stored)
	return nil
}

func (s *fileSession) Update(obj models.Model) error {
	s.fs.mu.Lock()
	defer s.fs.mu.Unlock()
	t := s.fs.tables[obj.Kind()]
	if _, ok := t.rows[obj.Base().ID]; !ok {
		return ErrNotFound
	}
	obj.Base().Touch()
	stored, err := clone(obj)
	if err != nil {
		return err
	}
	t.rows[obj.Base().ID] = stored
	return nil
}

func (s *fileSession) Get(kind models.Kind, id string) (models.Model, error) {
	s.fs.mu.RLock()
	defer s.fs.mu.RUnlock()
	t, ok := s.fs.tables[kind]
	if !ok {
		return nil, ErrNotFound
	}
	obj, ok := t.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(obj)
}

func (s *fileSession) All(kind models.Kind) ([]models.Model, error) {
	s.fs.mu.RLock()
	defer s.fs.mu.RUnlock()
	t, ok := s.fs.tables[kind]
	if !ok {
		return nil, nil
	}
	out := make([]models.Model, 0, len(t.order))
	for _, id := range t.order {
		obj, err := clone(t.rows[id])
		if err != nil {
			return nil, err
		}
		out = append(out, obj)
	}
	return out, nil
}

func (s *fileSession) Count(kind models.Kind) (int64, error) {
	s.fs.mu.RLock()
	defer s.fs.mu.RUnlock()
	if kind == "" {
		var total int64
		for _, t := range s.fs.tables {
			total += int64(len(t.rows))
		}
		return total, nil
	}
	t, ok := s.fs.tables[kind]
	if !ok {
		return 0, nil
	}
	return int64(len(t.rows)), nil
}

func (s *fileSession) Delete(obj models.Model) error {
	s.fs.mu.Lock()
	defer s.fs.mu.Unlock()
	if _, ok := s.fs.tables[obj.Kind()].rows[obj.Base().ID]; !ok {
		return ErrNotFound
	}
	s.fs.remove(obj.Kind(), obj.Base().ID)
	return nil
}

func (s *fileSession) Save() error {
	s.fs.mu.Lock()
	defer s.fs.mu.Unlock()
	return s.fs.flush()
}

func (s *fileSession) Close() error { return nil }

func (s *fileSession) ids(ix index, key string) ([]string, error) {
	s.fs.mu.RLock()
	defer s.fs.mu.RUnlock()
	return ix.get(key), nil
}

func (s *fileSession) CityIDs(stateID string) ([]string, error) {
	return s.ids(s.fs.citiesByState, stateID)
}

func (s *fileSession) PlaceIDs(cityID string) ([]string, error) {
	return s.ids(s.fs.placesByCity, cityID)
}

func (s *fileSession) ReviewIDs(placeID string) ([]string, error) {
	return s.ids(s.fs.reviewsByPlace, placeID)
}

func (s *fileSession) AmenityIDs(placeID string) ([]string, error) {
	return s.ids(s.fs.amenitiesByPlace, placeID)
}

func (s *fileSession) LinkAmenity(placeID, amenityID string) (bool, error) {
	s.fs.mu.Lock()
	defer s.fs.mu.Unlock()
	return s.fs.link(placeID, amenityID), nil
}

func (s *fileSession) UnlinkAmenity(placeID, amenityID string) error {
	s.fs.mu.Lock()
	defer s.fs.mu.Unlock()
	if !s.fs.unlink(placeID, amenityID) {
		return ErrNotFound
	}
	return nil
}
