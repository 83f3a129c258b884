package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/programmingwithjerry/AirBnB-clone-v4/database"
	"github.com/programmingwithjerry/AirBnB-clone-v4/middleware"
	"github.com/programmingwithjerry/AirBnB-clone-v4/services"
)

// HBNBTemplate is the name of the home page template.
const HBNBTemplate = "0-hbnb.html"

// HBNBController renders the HBNB home page. APIURL is the REST API base the
// page script talks to.
type HBNBController struct {
	APIURL string
}

// Page renders states with their cities, amenities and places. cache_id
// changes on every render so browsers refetch the static assets.
func (c *HBNBController) Page(ctx *gin.Context) {
	page, err := services.BuildHBNBPage(middleware.Session(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.HTML(http.StatusOK, HBNBTemplate, gin.H{
		"States":    page.States,
		"Amenities": page.Amenities,
		"Places":    page.Places,
		"CacheID":   uuid.NewString(),
		"APIURL":    c.APIURL,
	})
}

// RegisterWeb mounts the home page on r. The static assets are served by the
// caller.
func RegisterWeb(r *gin.Engine, store database.Storage, apiURL string) {
	hbnb := &HBNBController{APIURL: apiURL}
	web := r.Group("/")
	web.Use(middleware.StorageSession(store))
	{
		collection(web, "GET", "/0-hbnb", hbnb.Page)
	}
	r.NoRoute(NotFound)
}
