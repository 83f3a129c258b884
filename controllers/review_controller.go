package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/programmingwithjerry/AirBnB-clone-v4/middleware"
	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
	"github.com/programmingwithjerry/AirBnB-clone-v4/services"
)

type ReviewController struct {
	Service *services.ReviewService
}

// GetReviews godoc
// @Summary      List the reviews of a place
// @Tags         reviews
// @Produce      json
// @Param        place_id  path  string  true  "Place ID"
// @Success      200  {array}   models.Review
// @Failure      404  {object}  ErrorResponse
// @Router       /places/{place_id}/reviews [get]
func (c *ReviewController) GetReviews(ctx *gin.Context) {
	reviews, err := c.Service.ListReviews(middleware.Session(ctx), ctx.Param("place_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, records(reviews))
}

// GetReview godoc
// @Summary      Get a review
// @Tags         reviews
// @Produce      json
// @Param        review_id  path  string  true  "Review ID"
// @Success      200  {object}  models.Review
// @Failure      404  {object}  ErrorResponse
// @Router       /reviews/{review_id} [get]
func (c *ReviewController) GetReview(ctx *gin.Context) {
	review, err := c.Service.GetReview(middleware.Session(ctx), ctx.Param("review_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.ToMap(review))
}

// CreateReview godoc
// @Summary      Review a place
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        place_id  path  string  true  "Place ID"
// @Param        body  body  map[string]string  true  "user_id and text"
// @Success      201  {object}  models.Review
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /places/{place_id}/reviews [post]
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	review, err := c.Service.CreateReview(middleware.Session(ctx), ctx.Param("place_id"), bindPayload(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, models.ToMap(review))
}

// UpdateReview godoc
// @Summary      Update a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        review_id  path  string  true  "Review ID"
// @Param        body  body  map[string]string  true  "Review attributes"
// @Success      200  {object}  models.Review
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /reviews/{review_id} [put]
func (c *ReviewController) UpdateReview(ctx *gin.Context) {
	review, err := c.Service.UpdateReview(middleware.Session(ctx), ctx.Param("review_id"), bindPayload(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.ToMap(review))
}

// DeleteReview godoc
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Param        review_id  path  string  true  "Review ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  ErrorResponse
// @Router       /reviews/{review_id} [delete]
func (c *ReviewController) DeleteReview(ctx *gin.Context) {
	if err := c.Service.DeleteReview(middleware.Session(ctx), ctx.Param("review_id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{})
}
