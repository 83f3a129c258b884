package services

import (
	"errors"
	"fmt"

	"github.com/programmingwithjerry/AirBnB-clone-v4/database"
	"github.com/programmingwithjerry/AirBnB-clone-v4/dto"
	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
)

// PlaceService manages places and their amenity links.
type PlaceService struct{}

func NewPlaceService() *PlaceService {
	return &PlaceService{}
}

// ListPlaces returns the places of a city.
func (s *PlaceService) ListPlaces(sess database.Session, cityID string) ([]*models.Place, error) {
	if err := exists(sess, models.KindCity, cityID); err != nil {
		return nil, err
	}
	ids, err := sess.PlaceIDs(cityID)
	return children[*models.Place](sess, models.KindPlace, ids, err)
}

func (s *PlaceService) GetPlace(sess database.Session, id string) (*models.Place, error) {
	return get[*models.Place](sess, models.KindPlace, id)
}

// CreatePlace checks, in order: the city, the payload, user_id, name and
// finally that the user exists.
func (s *PlaceService) CreatePlace(sess database.Session, cityID string, payload dto.Payload) (*models.Place, error) {
	if err := exists(sess, models.KindCity, cityID); err != nil {
		return nil, err
	}
	if err := requireJSON(payload); err != nil {
		return nil, err
	}
	if err := payload.Require("user_id", "name"); err != nil {
		return nil, err
	}
	userID, err := payload.String("user_id")
	if err != nil {
		return nil, err
	}
	if err := exists(sess, models.KindUser, userID); err != nil {
		return nil, err
	}

	return insert(sess, &models.Place{}, payload, func(place *models.Place) error {
		place.CityID = cityID
		place.UserID = userID
		return nil
	})
}

func (s *PlaceService) UpdatePlace(sess database.Session, id string, payload dto.Payload) (*models.Place, error) {
	return patch[*models.Place](sess, models.KindPlace, id, payload, nil)
}

// DeletePlace removes the place, its reviews and its amenity links.
func (s *PlaceService) DeletePlace(sess database.Session, id string) error {
	return remove(sess, models.KindPlace, id)
}

// PlaceRecord serializes a place with the ids of its linked amenities.
func (s *PlaceService) PlaceRecord(sess database.Session, place *models.Place) (map[string]any, error) {
	ids, err := sess.AmenityIDs(place.ID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	record := models.ToMap(place)
	record["amenities"] = ids
	return record, nil
}

// ListAmenities returns the amenities linked to a place.
func (s *PlaceService) ListAmenities(sess database.Session, placeID string) ([]*models.Amenity, error) {
	if err := exists(sess, models.KindPlace, placeID); err != nil {
		return nil, err
	}
	ids, err := sess.AmenityIDs(placeID)
	return children[*models.Amenity](sess, models.KindAmenity, ids, err)
}

// LinkAmenity links an amenity to a place. created is false when the link
// already existed.
func (s *PlaceService) LinkAmenity(sess database.Session, placeID, amenityID string) (amenity *models.Amenity, created bool, err error) {
	if err := exists(sess, models.KindPlace, placeID); err != nil {
		return nil, false, err
	}
	amenity, err = get[*models.Amenity](sess, models.KindAmenity, amenityID)
	if err != nil {
		return nil, false, err
	}

	created, err = sess.LinkAmenity(placeID, amenityID)
	if err != nil {
		return nil, false, fmt.Errorf("link amenity %s to place %s: %w", amenityID, placeID, err)
	}
	if created {
		if err := sess.Save(); err != nil {
			return nil, false, fmt.Errorf("save place amenity: %w", err)
		}
	}
	return amenity, created, nil
}

// UnlinkAmenity returns ErrNotFound when the place, the amenity or the link
// between them does not exist.
func (s *PlaceService) UnlinkAmenity(sess database.Session, placeID, amenityID string) error {
	if err := exists(sess, models.KindPlace, placeID); err != nil {
		return err
	}
	if err := exists(sess, models.KindAmenity, amenityID); err != nil {
		return err
	}
	if err := sess.UnlinkAmenity(placeID, amenityID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return fmt.Errorf("amenity %s not linked to place %s: %w", amenityID, placeID, err)
		}
		return err
	}
	if err := sess.Save(); err != nil {
		return fmt.Errorf("save place amenity: %w", err)
	}
	return nil
}
