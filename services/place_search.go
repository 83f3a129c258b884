package services

import (
	"errors"

	"github.com/programmingwithjerry/AirBnB-clone-v4/database"
	"github.com/programmingwithjerry/AirBnB-clone-v4/dto"
	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
)

// PlaceSource is the part of a storage session the place search reads.
type PlaceSource interface {
	Get(kind models.Kind, id string) (models.Model, error)
	All(kind models.Kind) ([]models.Model, error)
	CityIDs(stateID string) ([]string, error)
	PlaceIDs(cityID string) ([]string, error)
	AmenityIDs(placeID string) ([]string, error)
}

// SearchPlaces returns the places matching criteria.
//
// With no filter every place is returned. Otherwise the places of every city
// of each listed state are collected (a state listed twice contributes its
// places twice), then the places of each listed city not collected yet. An
// amenity filter narrows the collected places, or all places when nothing was
// collected, to those linked to every listed amenity; an amenity id that does
// not resolve matches no place. Unknown state and city ids are skipped.
func SearchPlaces(src PlaceSource, criteria dto.PlacesSearchDTO) ([]*models.Place, error) {
	if criteria.IsEmpty() {
		return allPlaces(src)
	}

	var matched []*models.Place
	seen := make(map[string]bool)

	for _, stateID := range criteria.States {
		ok, err := resolves(src, models.KindState, stateID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		cityIDs, err := src.CityIDs(stateID)
		if err != nil {
			return nil, err
		}
		for _, cityID := range cityIDs {
			places, err := placesOf(src, cityID)
			if err != nil {
				return nil, err
			}
			for _, place := range places {
				matched = append(matched, place)
				seen[place.ID] = true
			}
		}
	}

	for _, cityID := range criteria.Cities {
		ok, err := resolves(src, models.KindCity, cityID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		places, err := placesOf(src, cityID)
		if err != nil {
			return nil, err
		}
		for _, place := range places {
			if seen[place.ID] {
				continue
			}
			matched = append(matched, place)
			seen[place.ID] = true
		}
	}

	if len(criteria.Amenities) == 0 {
		return matched, nil
	}

	if len(matched) == 0 {
		all, err := allPlaces(src)
		if err != nil {
			return nil, err
		}
		matched = all
	}
	for _, amenityID := range criteria.Amenities {
		ok, err := resolves(src, models.KindAmenity, amenityID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return []*models.Place{}, nil
		}
	}

	filtered := make([]*models.Place, 0, len(matched))
	for _, place := range matched {
		linked, err := src.AmenityIDs(place.ID)
		if err != nil {
			return nil, err
		}
		if containsAll(linked, criteria.Amenities) {
			filtered = append(filtered, place)
		}
	}
	return filtered, nil
}

// SearchRecords serializes search results. Records never carry "amenities".
func SearchRecords(places []*models.Place) []map[string]any {
	records := make([]map[string]any, 0, len(places))
	for _, place := range places {
		record := models.ToMap(place)
		delete(record, "amenities")
		records = append(records, record)
	}
	return records
}

func allPlaces(src PlaceSource) ([]*models.Place, error) {
	objs, err := src.All(models.KindPlace)
	if err != nil {
		return nil, err
	}
	places := make([]*models.Place, 0, len(objs))
	for _, obj := range objs {
		if place, ok := obj.(*models.Place); ok {
			places = append(places, place)
		}
	}
	return places, nil
}

func placesOf(src PlaceSource, cityID string) ([]*models.Place, error) {
	ids, err := src.PlaceIDs(cityID)
	if err != nil {
		return nil, err
	}
	places := make([]*models.Place, 0, len(ids))
	for _, id := range ids {
		obj, err := src.Get(models.KindPlace, id)
		if errors.Is(err, database.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if place, ok := obj.(*models.Place); ok {
			places = append(places, place)
		}
	}
	return places, nil
}

func resolves(src PlaceSource, kind models.Kind, id string) (bool, error) {
	_, err := src.Get(kind, id)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func containsAll(have, want []string) bool {
	set := make(map[string]bool, len(have))
	for _, id := range have {
		set[id] = true
	}
	for _, id := range want {
		if !set[id] {
			return false
		}
	}
	return true
}
