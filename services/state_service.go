package services

import (
	"github.com/programmingwithjerry/AirBnB-clone-v4/database"
	"github.com/programmingwithjerry/AirBnB-clone-v4/dto"
	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
)

type StateService struct{}

func NewStateService() *StateService {
	return &StateService{}
}

func (s *StateService) ListStates(sess database.Session) ([]*models.State, error) {
	return database.AllAs[*models.State](sess, models.KindState)
}

func (s *StateService) GetState(sess database.Session, id string) (*models.State, error) {
	return get[*models.State](sess, models.KindState, id)
}

// CreateState requires a name.
func (s *StateService) CreateState(sess database.Session, payload dto.Payload) (*models.State, error) {
	if err := requireJSON(payload); err != nil {
		return nil, err
	}
	if err := payload.Require("name"); err != nil {
		return nil, err
	}
	return insert(sess, &models.State{}, payload, nil)
}

func (s *StateService) UpdateState(sess database.Session, id string, payload dto.Payload) (*models.State, error) {
	return patch[*models.State](sess, models.KindState, id, payload, nil)
}

// DeleteState removes the state together with its cities and their places.
func (s *StateService) DeleteState(sess database.Session, id string) error {
	return remove(sess, models.KindState, id)
}
