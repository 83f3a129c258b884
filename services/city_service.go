package services

import (
	"github.com/programmingwithjerry/AirBnB-clone-v4/database"
	"github.com/programmingwithjerry/AirBnB-clone-v4/dto"
	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
)

type CityService struct{}

func NewCityService() *CityService {
	return &CityService{}
}

// ListCities returns the cities of a state.
func (s *CityService) ListCities(sess database.Session, stateID string) ([]*models.City, error) {
	if err := exists(sess, models.KindState, stateID); err != nil {
		return nil, err
	}
	ids, err := sess.CityIDs(stateID)
	return children[*models.City](sess, models.KindCity, ids, err)
}

func (s *CityService) GetCity(sess database.Session, id string) (*models.City, error) {
	return get[*models.City](sess, models.KindCity, id)
}

// CreateCity creates a city under stateID. The state is checked before the
// payload.
func (s *CityService) CreateCity(sess database.Session, stateID string, payload dto.Payload) (*models.City, error) {
	if err := exists(sess, models.KindState, stateID); err != nil {
		return nil, err
	}
	if err := requireJSON(payload); err != nil {
		return nil, err
	}
	if err := payload.Require("name"); err != nil {
		return nil, err
	}
	return insert(sess, &models.City{}, payload, func(city *models.City) error {
		city.StateID = stateID
		return nil
	})
}

func (s *CityService) UpdateCity(sess database.Session, id string, payload dto.Payload) (*models.City, error) {
	return patch[*models.City](sess, models.KindCity, id, payload, nil)
}

func (s *CityService) DeleteCity(sess database.Session, id string) error {
	return remove(sess, models.KindCity, id)
}
