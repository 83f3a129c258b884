package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/programmingwithjerry/AirBnB-clone-v4/middleware"
	"github.com/programmingwithjerry/AirBnB-clone-v4/services"
)

// IndexController serves the service health and object counts.
type IndexController struct {
	Service *services.StatsService
}

// Status godoc
// @Summary      API status
// @Tags         index
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /status [get]
func (c *IndexController) Status(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// Stats godoc
// @Summary      Number of objects per type
// @Tags         index
// @Produce      json
// @Success      200  {object}  map[string]int
// @Failure      500  {object}  ErrorResponse
// @Router       /stats [get]
func (c *IndexController) Stats(ctx *gin.Context) {
	counts, err := c.Service.Counts(ctx.Request.Context(), middleware.Session(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, counts)
}
