package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/programmingwithjerry/AirBnB-clone-v4/middleware"
	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
	"github.com/programmingwithjerry/AirBnB-clone-v4/services"
)

type CityController struct {
	Service *services.CityService
}

// GetCities godoc
// @Summary      List the cities of a state
// @Tags         cities
// @Produce      json
// @Param        state_id  path  string  true  "State ID"
// @Success      200  {array}   models.City
// @Failure      404  {object}  ErrorResponse
// @Router       /states/{state_id}/cities [get]
func (c *CityController) GetCities(ctx *gin.Context) {
	cities, err := c.Service.ListCities(middleware.Session(ctx), ctx.Param("state_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, records(cities))
}

// GetCity godoc
// @Summary      Get a city
// @Tags         cities
// @Produce      json
// @Param        city_id  path  string  true  "City ID"
// @Success      200  {object}  models.City
// @Failure      404  {object}  ErrorResponse
// @Router       /cities/{city_id} [get]
func (c *CityController) GetCity(ctx *gin.Context) {
	city, err := c.Service.GetCity(middleware.Session(ctx), ctx.Param("city_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.ToMap(city))
}

// CreateCity godoc
// @Summary      Create a city in a state
// @Tags         cities
// @Accept       json
// @Produce      json
// @Param        state_id  path  string  true  "State ID"
// @Param        body  body  map[string]string  true  "City attributes"
// @Success      201  {object}  models.City
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /states/{state_id}/cities [post]
func (c *CityController) CreateCity(ctx *gin.Context) {
	city, err := c.Service.CreateCity(middleware.Session(ctx), ctx.Param("state_id"), bindPayload(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, models.ToMap(city))
}

// UpdateCity godoc
// @Summary      Update a city
// @Tags         cities
// @Accept       json
// @Produce      json
// @Param        city_id  path  string  true  "City ID"
// @Param        body  body  map[string]string  true  "City attributes"
// @Success      200  {object}  models.City
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /cities/{city_id} [put]
func (c *CityController) UpdateCity(ctx *gin.Context) {
	city, err := c.Service.UpdateCity(middleware.Session(ctx), ctx.Param("city_id"), bindPayload(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.ToMap(city))
}

// DeleteCity godoc
// @Summary      Delete a city and its places
// @Tags         cities
// @Produce      json
// @Param        city_id  path  string  true  "City ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  ErrorResponse
// @Router       /cities/{city_id} [delete]
func (c *CityController) DeleteCity(ctx *gin.Context) {
	if err := c.Service.DeleteCity(middleware.Session(ctx), ctx.Param("city_id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{})
}
