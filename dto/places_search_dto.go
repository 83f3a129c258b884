package dto

// PlacesSearchDTO is the body of POST /places_search. Every list is optional.
type PlacesSearchDTO struct {
	States    []string `json:"states"`
	Cities    []string `json:"cities"`
	Amenities []string `json:"amenities"`
}

// IsEmpty reports whether no filter was given.
func (d PlacesSearchDTO) IsEmpty() bool {
	return len(d.States) == 0 && len(d.Cities) == 0 && len(d.Amenities) == 0
}
