package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/programmingwithjerry/AirBnB-clone-v4/middleware"
	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
	"github.com/programmingwithjerry/AirBnB-clone-v4/services"
)

type AmenityController struct {
	Service *services.AmenityService
}

// GetAmenities godoc
// @Summary      List amenities
// @Tags         amenities
// @Produce      json
// @Success      200  {array}   models.Amenity
// @Router       /amenities [get]
func (c *AmenityController) GetAmenities(ctx *gin.Context) {
	amenities, err := c.Service.ListAmenities(middleware.Session(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, records(amenities))
}

// GetAmenity godoc
// @Summary      Get an amenity
// @Tags         amenities
// @Produce      json
// @Param        amenity_id  path  string  true  "Amenity ID"
// @Success      200  {object}  models.Amenity
// @Failure      404  {object}  ErrorResponse
// @Router       /amenities/{amenity_id} [get]
func (c *AmenityController) GetAmenity(ctx *gin.Context) {
	amenity, err := c.Service.GetAmenity(middleware.Session(ctx), ctx.Param("amenity_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.ToMap(amenity))
}

// CreateAmenity godoc
// @Summary      Create an amenity
// @Tags         amenities
// @Accept       json
// @Produce      json
// @Param        body  body  map[string]string  true  "Amenity attributes"
// @Success      201  {object}  models.Amenity
// @Failure      400  {object}  ErrorResponse
// @Router       /amenities [post]
func (c *AmenityController) CreateAmenity(ctx *gin.Context) {
	amenity, err := c.Service.CreateAmenity(middleware.Session(ctx), bindPayload(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, models.ToMap(amenity))
}

// UpdateAmenity godoc
// @Summary      Update an amenity
// @Tags         amenities
// @Accept       json
// @Produce      json
// @Param        amenity_id  path  string  true  "Amenity ID"
// @Param        body  body  map[string]string  true  "Amenity attributes"
// @Success      200  {object}  models.Amenity
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /amenities/{amenity_id} [put]
func (c *AmenityController) UpdateAmenity(ctx *gin.Context) {
	amenity, err := c.Service.UpdateAmenity(middleware.Session(ctx), ctx.Param("amenity_id"), bindPayload(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.ToMap(amenity))
}

// DeleteAmenity godoc
// @Summary      Delete an amenity
// @Tags         amenities
// @Produce      json
// @Param        amenity_id  path  string  true  "Amenity ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  ErrorResponse
// @Router       /amenities/{amenity_id} [delete]
func (c *AmenityController) DeleteAmenity(ctx *gin.Context) {
	if err := c.Service.DeleteAmenity(middleware.Session(ctx), ctx.Param("amenity_id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{})
}
