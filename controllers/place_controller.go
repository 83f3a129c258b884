package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/programmingwithjerry/AirBnB-clone-v4/database"
	"github.com/programmingwithjerry/AirBnB-clone-v4/dto"
	"github.com/programmingwithjerry/AirBnB-clone-v4/middleware"
	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
	"github.com/programmingwithjerry/AirBnB-clone-v4/services"
)

// PlaceController handles places, their amenity links and the search.
type PlaceController struct {
	Service *services.PlaceService
}

// GetPlaces godoc
// @Summary      List the places of a city
// @Tags         places
// @Produce      json
// @Param        city_id  path  string  true  "City ID"
// @Success      200  {array}   models.Place
// @Failure      404  {object}  ErrorResponse
// @Router       /cities/{city_id}/places [get]
func (c *PlaceController) GetPlaces(ctx *gin.Context) {
	sess := middleware.Session(ctx)
	places, err := c.Service.ListPlaces(sess, ctx.Param("city_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.renderPlaces(ctx, sess, places)
}

// GetPlace godoc
// @Summary      Get a place
// @Tags         places
// @Produce      json
// @Param        place_id  path  string  true  "Place ID"
// @Success      200  {object}  models.Place
// @Failure      404  {object}  ErrorResponse
// @Router       /places/{place_id} [get]
func (c *PlaceController) GetPlace(ctx *gin.Context) {
	sess := middleware.Session(ctx)
	place, err := c.Service.GetPlace(sess, ctx.Param("place_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.renderPlace(ctx, sess, http.StatusOK, place)
}

// CreatePlace godoc
// @Summary      Create a place in a city
// @Tags         places
// @Accept       json
// @Produce      json
// @Param        city_id  path  string  true  "City ID"
// @Param        body  body  map[string]interface{}  true  "user_id, name and optional attributes"
// @Success      201  {object}  models.Place
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /cities/{city_id}/places [post]
func (c *PlaceController) CreatePlace(ctx *gin.Context) {
	sess := middleware.Session(ctx)
	place, err := c.Service.CreatePlace(sess, ctx.Param("city_id"), bindPayload(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.renderPlace(ctx, sess, http.StatusCreated, place)
}

// UpdatePlace godoc
// @Summary      Update a place
// @Tags         places
// @Accept       json
// @Produce      json
// @Param        place_id  path  string  true  "Place ID"
// @Param        body  body  map[string]interface{}  true  "Place attributes"
// @Success      200  {object}  models.Place
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /places/{place_id} [put]
func (c *PlaceController) UpdatePlace(ctx *gin.Context) {
	sess := middleware.Session(ctx)
	place, err := c.Service.UpdatePlace(sess, ctx.Param("place_id"), bindPayload(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.renderPlace(ctx, sess, http.StatusOK, place)
}

// DeletePlace godoc
// @Summary      Delete a place and its reviews
// @Tags         places
// @Produce      json
// @Param        place_id  path  string  true  "Place ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  ErrorResponse
// @Router       /places/{place_id} [delete]
func (c *PlaceController) DeletePlace(ctx *gin.Context) {
	if err := c.Service.DeletePlace(middleware.Session(ctx), ctx.Param("place_id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{})
}

// SearchPlaces godoc
// @Summary      Search places by states, cities and amenities
// @Description  An empty body object returns every place. Places of listed states come first, then places of listed cities not already included. Listed amenities must all be linked to a place for it to match.
// @Tags         places
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlacesSearchDTO  true  "Search filters"
// @Success      200  {array}   models.Place
// @Failure      400  {object}  ErrorResponse
// @Router       /places_search [post]
func (c *PlaceController) SearchPlaces(ctx *gin.Context) {
	payload := bindPayload(ctx)
	if payload == nil {
		respondError(ctx, dto.ErrNotJSON)
		return
	}
	var criteria dto.PlacesSearchDTO
	if err := payload.Decode(&criteria); err != nil {
		respondError(ctx, err)
		return
	}

	places, err := services.SearchPlaces(middleware.Session(ctx), criteria)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, services.SearchRecords(places))
}

func (c *PlaceController) renderPlace(ctx *gin.Context, sess database.Session, status int, place *models.Place) {
	record, err := c.Service.PlaceRecord(sess, place)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(status, record)
}

func (c *PlaceController) renderPlaces(ctx *gin.Context, sess database.Session, places []*models.Place) {
	out := make([]map[string]any, 0, len(places))
	for _, place := range places {
		record, err := c.Service.PlaceRecord(sess, place)
		if err != nil {
			respondError(ctx, err)
			return
		}
		out = append(out, record)
	}
	ctx.JSON(http.StatusOK, out)
}
