package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/programmingwithjerry/AirBnB-clone-v4/middleware"
	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
	"github.com/programmingwithjerry/AirBnB-clone-v4/services"
)

// UserController handles the user resource. Passwords are stored hashed and
// never rendered.
type UserController struct {
	Service *services.UserService
}

// GetUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   models.User
// @Router       /users [get]
func (c *UserController) GetUsers(ctx *gin.Context) {
	users, err := c.Service.ListUsers(middleware.Session(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, records(users))
}

// GetUser godoc
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        user_id  path  string  true  "User ID"
// @Success      200  {object}  models.User
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{user_id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	user, err := c.Service.GetUser(middleware.Session(ctx), ctx.Param("user_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.ToMap(user))
}

// CreateUser godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  map[string]string  true  "email, password and optional names"
// @Success      201  {object}  models.User
// @Failure      400  {object}  ErrorResponse
// @Router       /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	user, err := c.Service.CreateUser(middleware.Session(ctx), bindPayload(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, models.ToMap(user))
}

// UpdateUser godoc
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user_id  path  string  true  "User ID"
// @Param        body  body  map[string]string  true  "User attributes"
// @Success      200  {object}  models.User
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{user_id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	user, err := c.Service.UpdateUser(middleware.Session(ctx), ctx.Param("user_id"), bindPayload(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.ToMap(user))
}

// DeleteUser godoc
// @Summary      Delete a user with their places and reviews
// @Tags         users
// @Produce      json
// @Param        user_id  path  string  true  "User ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{user_id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	if err := c.Service.DeleteUser(middleware.Session(ctx), ctx.Param("user_id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{})
}
