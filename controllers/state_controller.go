package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/programmingwithjerry/AirBnB-clone-v4/middleware"
	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
	"github.com/programmingwithjerry/AirBnB-clone-v4/services"
)

type StateController struct {
	Service *services.StateService
}

// GetStates godoc
// @Summary      List states
// @Tags         states
// @Produce      json
// @Success      200  {array}   models.State
// @Router       /states [get]
func (c *StateController) GetStates(ctx *gin.Context) {
	states, err := c.Service.ListStates(middleware.Session(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, records(states))
}

// GetState godoc
// @Summary      Get a state
// @Tags         states
// @Produce      json
// @Param        state_id  path  string  true  "State ID"
// @Success      200  {object}  models.State
// @Failure      404  {object}  ErrorResponse
// @Router       /states/{state_id} [get]
func (c *StateController) GetState(ctx *gin.Context) {
	state, err := c.Service.GetState(middleware.Session(ctx), ctx.Param("state_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.ToMap(state))
}

// CreateState godoc
// @Summary      Create a state
// @Tags         states
// @Accept       json
// @Produce      json
// @Param        body  body  map[string]string  true  "State attributes"
// @Success      201  {object}  models.State
// @Failure      400  {object}  ErrorResponse
// @Router       /states [post]
func (c *StateController) CreateState(ctx *gin.Context) {
	state, err := c.Service.CreateState(middleware.Session(ctx), bindPayload(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, models.ToMap(state))
}

// UpdateState godoc
// @Summary      Update a state
// @Tags         states
// @Accept       json
// @Produce      json
// @Param        state_id  path  string  true  "State ID"
// @Param        body  body  map[string]string  true  "State attributes"
// @Success      200  {object}  models.State
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /states/{state_id} [put]
func (c *StateController) UpdateState(ctx *gin.Context) {
	state, err := c.Service.UpdateState(middleware.Session(ctx), ctx.Param("state_id"), bindPayload(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.ToMap(state))
}

// DeleteState godoc
// @Summary      Delete a state and its cities
// @Tags         states
// @Produce      json
// @Param        state_id  path  string  true  "State ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  ErrorResponse
// @Router       /states/{state_id} [delete]
func (c *StateController) DeleteState(ctx *gin.Context) {
	if err := c.Service.DeleteState(middleware.Session(ctx), ctx.Param("state_id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{})
}
