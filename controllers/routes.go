package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/programmingwithjerry/AirBnB-clone-v4/database"
	"github.com/programmingwithjerry/AirBnB-clone-v4/middleware"
	"github.com/programmingwithjerry/AirBnB-clone-v4/services"
)

// APIPrefix is where RegisterAPI mounts the REST API.
const APIPrefix = "/api/v1"

// RegisterAPI mounts the REST API on r. Every request gets its own storage
// session; successful writes invalidate the cached stats.
func RegisterAPI(r *gin.Engine, store database.Storage, stats *services.StatsService) {
	index := &IndexController{Service: stats}
	states := &StateController{Service: services.NewStateService()}
	cities := &CityController{Service: services.NewCityService()}
	amenities := &AmenityController{Service: services.NewAmenityService()}
	users := &UserController{Service: services.NewUserService()}
	places := &PlaceController{Service: services.NewPlaceService()}
	reviews := &ReviewController{Service: services.NewReviewService()}

	v1 := r.Group(APIPrefix)
	v1.Use(middleware.StorageSession(store), middleware.InvalidateOnWrite(stats))
	{
		collection(v1, "GET", "/status", index.Status)
		collection(v1, "GET", "/stats", index.Stats)

		collection(v1, "GET", "/states", states.GetStates)
		collection(v1, "POST", "/states", states.CreateState)
		v1.GET("/states/:state_id", states.GetState)
		v1.PUT("/states/:state_id", states.UpdateState)
		v1.DELETE("/states/:state_id", states.DeleteState)

		v1.GET("/states/:state_id/cities", cities.GetCities)
		v1.POST("/states/:state_id/cities", cities.CreateCity)
		v1.GET("/cities/:city_id", cities.GetCity)
		v1.PUT("/cities/:city_id", cities.UpdateCity)
		v1.DELETE("/cities/:city_id", cities.DeleteCity)

		collection(v1, "GET", "/amenities", amenities.GetAmenities)
		collection(v1, "POST", "/amenities", amenities.CreateAmenity)
		v1.GET("/amenities/:amenity_id", amenities.GetAmenity)
		v1.PUT("/amenities/:amenity_id", amenities.UpdateAmenity)
		v1.DELETE("/amenities/:amenity_id", amenities.DeleteAmenity)

		collection(v1, "GET", "/users", users.GetUsers)
		collection(v1, "POST", "/users", users.CreateUser)
		v1.GET("/users/:user_id", users.GetUser)
		v1.PUT("/users/:user_id", users.UpdateUser)
		v1.DELETE("/users/:user_id", users.DeleteUser)

		v1.GET("/cities/:city_id/places", places.GetPlaces)
		v1.POST("/cities/:city_id/places", places.CreatePlace)
		v1.GET("/places/:place_id", places.GetPlace)
		v1.PUT("/places/:place_id", places.UpdatePlace)
		v1.DELETE("/places/:place_id", places.DeletePlace)
		collection(v1, "POST", "/places_search", places.SearchPlaces)

		v1.GET("/places/:place_id/amenities", places.GetPlaceAmenities)
		v1.POST("/places/:place_id/amenities/:amenity_id", places.LinkPlaceAmenity)
		v1.DELETE("/places/:place_id/amenities/:amenity_id", places.UnlinkPlaceAmenity)

		v1.GET("/places/:place_id/reviews", reviews.GetReviews)
		v1.POST("/places/:place_id/reviews", reviews.CreateReview)
		v1.GET("/reviews/:review_id", reviews.GetReview)
		v1.PUT("/reviews/:review_id", reviews.UpdateReview)
		v1.DELETE("/reviews/:review_id", reviews.DeleteReview)
	}

	r.NoRoute(NotFound)
}

// collection registers path with and without a trailing slash so neither
// form is answered with a redirect.
func collection(g *gin.RouterGroup, method, path string, h gin.HandlerFunc) {
	g.Handle(method, path, h)
	g.Handle(method, path+"/", h)
}
