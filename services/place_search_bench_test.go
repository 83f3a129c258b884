package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/programmingwithjerry/AirBnB-clone-v4/database"
	"github.com/programmingwithjerry/AirBnB-clone-v4/dto"
	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
)

// generatePlaces spreads count places over the given cities and links every
// other one to amenity.
func generatePlaces(b *testing.B, sess database.Session, cities []*models.City, amenity *models.Amenity, count int) {
	b.Helper()
	user := &models.User{Email: "bench@hbnb.io", Password: "x"}
	if err := sess.New(user); err != nil {
		b.Fatal(err)
	}
	for i := 0; i < count; i++ {
		place := &models.Place{
			CityID: cities[i%len(cities)].ID,
			UserID: user.ID,
			Name:   fmt.Sprintf("Place %d", i+1),
		}
		if err := sess.New(place); err != nil {
			b.Fatal(err)
		}
		if i%2 == 0 {
			if _, err := sess.LinkAmenity(place.ID, amenity.ID); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkSearchPlaces(b *testing.B) {
	store, err := database.NewFileStorage("")
	if err != nil {
		b.Fatal(err)
	}
	sess, err := store.Open(context.Background())
	if err != nil {
		b.Fatal(err)
	}
	defer sess.Close()

	state := &models.State{Name: "Bench"}
	if err := sess.New(state); err != nil {
		b.Fatal(err)
	}
	cities := make([]*models.City, 10)
	for i := range cities {
		cities[i] = &models.City{StateID: state.ID, Name: fmt.Sprintf("City %d", i)}
		if err := sess.New(cities[i]); err != nil {
			b.Fatal(err)
		}
	}
	wifi := &models.Amenity{Name: "Wifi"}
	if err := sess.New(wifi); err != nil {
		b.Fatal(err)
	}
	generatePlaces(b, sess, cities, wifi, 500)

	criteria := dto.PlacesSearchDTO{
		States:    []string{state.ID},
		Cities:    []string{cities[0].ID},
		Amenities: []string{wifi.ID},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		results, err := SearchPlaces(sess, criteria)
		if err != nil {
			b.Fatalf("search: %v", err)
		}
		if len(results) != 250 {
			b.Fatalf("expected 250 results, got %d", len(results))
		}
	}
}
