package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/programmingwithjerry/AirBnB-clone-v4/middleware"
	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
)

// GetPlaceAmenities godoc
// @Summary      List the amenities linked to a place
// @Tags         place_amenities
// @Produce      json
// @Param        place_id  path  string  true  "Place ID"
// @Success      200  {array}   models.Amenity
// @Failure      404  {object}  ErrorResponse
// @Router       /places/{place_id}/amenities [get]
func (c *PlaceController) GetPlaceAmenities(ctx *gin.Context) {
	amenities, err := c.Service.ListAmenities(middleware.Session(ctx), ctx.Param("place_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, records(amenities))
}

// LinkPlaceAmenity godoc
// @Summary      Link an amenity to a place
// @Description  Answers 200 with the amenity when the link already exists, 201 when it was created.
// @Tags         place_amenities
// @Produce      json
// @Param        place_id    path  string  true  "Place ID"
// @Param        amenity_id  path  string  true  "Amenity ID"
// @Success      200  {object}  models.Amenity
// @Success      201  {object}  models.Amenity
// @Failure      404  {object}  ErrorResponse
// @Router       /places/{place_id}/amenities/{amenity_id} [post]
func (c *PlaceController) LinkPlaceAmenity(ctx *gin.Context) {
	amenity, created, err := c.Service.LinkAmenity(middleware.Session(ctx), ctx.Param("place_id"), ctx.Param("amenity_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, models.ToMap(amenity))
}

// UnlinkPlaceAmenity godoc
// @Summary      Unlink an amenity from a place
// @Tags         place_amenities
// @Produce      json
// @Param        place_id    path  string  true  "Place ID"
// @Param        amenity_id  path  string  true  "Amenity ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  ErrorResponse
// @Router       /places/{place_id}/amenities/{amenity_id} [delete]
func (c *PlaceController) UnlinkPlaceAmenity(ctx *gin.Context) {
	if err := c.Service.UnlinkAmenity(middleware.Session(ctx), ctx.Param("place_id"), ctx.Param("amenity_id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{})
}
