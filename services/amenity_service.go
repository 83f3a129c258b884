package services

import (
	"github.com/programmingwithjerry/AirBnB-clone-v4/database"
	"github.com/programmingwithjerry/AirBnB-clone-v4/dto"
	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
)

type AmenityService struct{}

func NewAmenityService() *AmenityService {
	return &AmenityService{}
}

func (s *AmenityService) ListAmenities(sess database.Session) ([]*models.Amenity, error) {
	return database.AllAs[*models.Amenity](sess, models.KindAmenity)
}

func (s *AmenityService) GetAmenity(sess database.Session, id string) (*models.Amenity, error) {
	return get[*models.Amenity](sess, models.KindAmenity, id)
}

func (s *AmenityService) CreateAmenity(sess database.Session, payload dto.Payload) (*models.Amenity, error) {
	if err := requireJSON(payload); err != nil {
		return nil, err
	}
	if err := payload.Require("name"); err != nil {
		return nil, err
	}
	return insert(sess, &models.Amenity{}, payload, nil)
}

func (s *AmenityService) UpdateAmenity(sess database.Session, id string, payload dto.Payload) (*models.Amenity, error) {
	return patch[*models.Amenity](sess, models.KindAmenity, id, payload, nil)
}

// DeleteAmenity also unlinks the amenity from every place.
func (s *AmenityService) DeleteAmenity(sess database.Session, id string) error {
	return remove(sess, models.KindAmenity, id)
}
