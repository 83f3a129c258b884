package services

import (
	"github.com/programmingwithjerry/AirBnB-clone-v4/database"
	"github.com/programmingwithjerry/AirBnB-clone-v4/dto"
	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
)

type ReviewService struct{}

func NewReviewService() *ReviewService {
	return &ReviewService{}
}

// ListReviews returns the reviews of a place.
func (s *ReviewService) ListReviews(sess database.Session, placeID string) ([]*models.Review, error) {
	if err := exists(sess, models.KindPlace, placeID); err != nil {
		return nil, err
	}
	ids, err := sess.ReviewIDs(placeID)
	return children[*models.Review](sess, models.KindReview, ids, err)
}

func (s *ReviewService) GetReview(sess database.Session, id string) (*models.Review, error) {
	return get[*models.Review](sess, models.KindReview, id)
}

// CreateReview checks, in order: the place, the payload, user_id, text and
// finally that the user exists.
func (s *ReviewService) CreateReview(sess database.Session, placeID string, payload dto.Payload) (*models.Review, error) {
	if err := exists(sess, models.KindPlace, placeID); err != nil {
		return nil, err
	}
	if err := requireJSON(payload); err != nil {
		return nil, err
	}
	if err := payload.Require("user_id", "text"); err != nil {
		return nil, err
	}
	userID, err := payload.String("user_id")
	if err != nil {
		return nil, err
	}
	if err := exists(sess, models.KindUser, userID); err != nil {
		return nil, err
	}

	return insert(sess, &models.Review{}, payload, func(review *models.Review) error {
		review.PlaceID = placeID
		review.UserID = userID
		return nil
	})
}

func (s *ReviewService) UpdateReview(sess database.Session, id string, payload dto.Payload) (*models.Review, error) {
	return patch[*models.Review](sess, models.KindReview, id, payload, nil)
}

func (s *ReviewService) DeleteReview(sess database.Session, id string) error {
	return remove(sess, models.KindReview, id)
}
