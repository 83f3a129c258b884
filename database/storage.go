package database

import (
	"context"
	"errors"

	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
)

var (
	// ErrNotFound is returned when a record or link does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnknownStorage is returned for an unsupported HBNB_TYPE_STORAGE value.
	ErrUnknownStorage = errors.New("unknown storage type")
)

// Storage is a persistence engine. Every request works through its own
// Session, opened at the start of the request and closed at the end.
type Storage interface {
	Open(ctx context.Context) (Session, error)
	Migrate(ctx context.Context) error
	Close() error
}

// Session is a request-scoped view of the storage.
type Session interface {
	// New stages a record for insertion, assigning its id and timestamps.
	New(obj models.Model) error
	// Update stages the changes made to a record loaded from this session.
	Update(obj models.Model) error
	// Get returns ErrNotFound when no record of kind has this id.
	Get(kind models.Kind, id string) (models.Model, error)
	// All returns every record of kind in storage iteration order.
	All(kind models.Kind) ([]models.Model, error)
	// Count counts records of kind, or of every kind when kind is empty.
	Count(kind models.Kind) (int64, error)
	// Delete removes a record and whatever depends on it.
	Delete(obj models.Model) error
	// Save flushes staged changes.
	Save() error
	// Close releases the session. The db engine rolls back writes that
	// were not saved; the file engine keeps them in memory.
	Close() error

	CityIDs(stateID string) ([]string, error)
	PlaceIDs(cityID string) ([]string, error)
	ReviewIDs(placeID string) ([]string, error)
	AmenityIDs(placeID string) ([]string, error)

	// LinkAmenity reports false when the amenity was already linked.
	LinkAmenity(placeID, amenityID string) (bool, error)
	// UnlinkAmenity returns ErrNotFound when the amenity is not linked.
	UnlinkAmenity(placeID, amenityID string) error
}

// New opens the storage engine selected by cfg.
func New(ctx context.Context, cfg *Config) (Storage, error) {
	switch cfg.StorageType {
	case StorageFile:
		return NewFileStorage(cfg.FilePath)
	case StorageDB:
		return NewDBStorage(ctx, cfg)
	}
	return nil, ErrUnknownStorage
}

// GetAs loads a record and asserts its concrete type.
func GetAs[T models.Model](s Session, kind models.Kind, id string) (T, error) {
	var zero T
	obj, err := s.Get(kind, id)
	if err != nil {
		return zero, err
	}
	typed, ok := obj.(T)
	if !ok {
		return zero, ErrNotFound
	}
	return typed, nil
}

// Collect loads the records of kind with the given ids, skipping ids that no
// longer resolve.
func Collect[T models.Model](s Session, kind models.Kind, ids []string) ([]T, error) {
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		obj, err := GetAs[T](s, kind, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, obj)
	}
	return out, nil
}

// AllAs returns every record of kind with its concrete type.
func AllAs[T models.Model](s Session, kind models.Kind) ([]T, error) {
	objs, err := s.All(kind)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(objs))
	for _, obj := range objs {
		if typed, ok := obj.(T); ok {
			out = append(out, typed)
		}
	}
	return out, nil
}
