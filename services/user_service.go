package services

import (
	"github.com/programmingwithjerry/AirBnB-clone-v4/database"
	"github.com/programmingwithjerry/AirBnB-clone-v4/dto"
	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
	"github.com/programmingwithjerry/AirBnB-clone-v4/utils"
)

// UserService manages users. Passwords are stored as bcrypt hashes.
type UserService struct{}

func NewUserService() *UserService {
	return &UserService{}
}

func (s *UserService) ListUsers(sess database.Session) ([]*models.User, error) {
	return database.AllAs[*models.User](sess, models.KindUser)
}

func (s *UserService) GetUser(sess database.Session, id string) (*models.User, error) {
	return get[*models.User](sess, models.KindUser, id)
}

// CreateUser requires an email and a password.
func (s *UserService) CreateUser(sess database.Session, payload dto.Payload) (*models.User, error) {
	if err := requireJSON(payload); err != nil {
		return nil, err
	}
	if err := payload.Require("email", "password"); err != nil {
		return nil, err
	}
	email, err := payload.String("email")
	if err != nil {
		return nil, err
	}
	password, err := payload.String("password")
	if err != nil {
		return nil, err
	}

	return insert(sess, &models.User{}, payload, func(user *models.User) error {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return err
		}
		// email is immutable, so ApplyTo leaves it for us to set.
		user.Email = email
		user.Password = hashed
		return nil
	})
}

// UpdateUser applies the payload; a new password is hashed before storing.
func (s *UserService) UpdateUser(sess database.Session, id string, payload dto.Payload) (*models.User, error) {
	return patch[*models.User](sess, models.KindUser, id, payload, func(user *models.User) error {
		if _, ok := payload["password"]; !ok {
			return nil
		}
		password, err := payload.String("password")
		if err != nil {
			return err
		}
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return err
		}
		user.Password = hashed
		return nil
	})
}

// DeleteUser removes the user with the places and reviews they own.
func (s *UserService) DeleteUser(sess database.Session, id string) error {
	return remove(sess, models.KindUser, id)
}
