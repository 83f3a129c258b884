package services

import (
	"sort"

	"github.com/programmingwithjerry/AirBnB-clone-v4/database"
	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
)

// StateCities is a state with its cities sorted by name.
type StateCities struct {
	State  *models.State
	Cities []*models.City
}

// HBNBPage is the data rendered by the HBNB home page.
type HBNBPage struct {
	States    []StateCities
	Amenities []*models.Amenity
	Places    []*models.Place
}

// BuildHBNBPage loads states (with their cities), amenities and places, each
// sorted by name, case-sensitively.
func BuildHBNBPage(sess database.Session) (*HBNBPage, error) {
	states, err := database.AllAs[*models.State](sess, models.KindState)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(states, func(i, j int) bool { return states[i].Name < states[j].Name })

	page := &HBNBPage{States: make([]StateCities, 0, len(states))}
	for _, state := range states {
		ids, err := sess.CityIDs(state.ID)
		cities, err := children[*models.City](sess, models.KindCity, ids, err)
		if err != nil {
			return nil, err
		}
		sort.SliceStable(cities, func(i, j int) bool { return cities[i].Name < cities[j].Name })
		page.States = append(page.States, StateCities{State: state, Cities: cities})
	}

	page.Amenities, err = database.AllAs[*models.Amenity](sess, models.KindAmenity)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(page.Amenities, func(i, j int) bool { return page.Amenities[i].Name < page.Amenities[j].Name })

	page.Places, err = database.AllAs[*models.Place](sess, models.KindPlace)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(page.Places, func(i, j int) bool { return page.Places[i].Name < page.Places[j].Name })

	return page, nil
}
