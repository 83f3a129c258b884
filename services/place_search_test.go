package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/programmingwithjerry/AirBnB-clone-v4/database"
	"github.com/programmingwithjerry/AirBnB-clone-v4/dto"
	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
)

func newSession(t *testing.T) database.Session {
	t.Helper()
	store, err := database.NewFileStorage("")
	require.NoError(t, err)
	sess, err := store.Open(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { sess.Close() })
	return sess
}

func mustNew[T models.Model](t *testing.T, sess database.Session, obj T) T {
	t.Helper()
	require.NoError(t, sess.New(obj))
	return obj
}

// catalog:
//
//	California: San Francisco {p1 wifi+pool, p2 wifi}, Los Angeles {p3}
//	Nevada:     Reno {p4 pool}
type catalog struct {
	california, nevada, empty *models.State
	sf, la, reno              *models.City
	p1, p2, p3, p4            *models.Place
	wifi, pool, tv            *models.Amenity
}

func newCatalog(t *testing.T, sess database.Session) *catalog {
	t.Helper()
	c := &catalog{}
	user := mustNew(t, sess, &models.User{Email: "a@b.com", Password: "x"})

	c.california = mustNew(t, sess, &models.State{Name: "California"})
	c.nevada = mustNew(t, sess, &models.State{Name: "Nevada"})
	c.empty = mustNew(t, sess, &models.State{Name: "Empty"})

	c.sf = mustNew(t, sess, &models.City{StateID: c.california.ID, Name: "San Francisco"})
	c.la = mustNew(t, sess, &models.City{StateID: c.california.ID, Name: "Los Angeles"})
	c.reno = mustNew(t, sess, &models.City{StateID: c.nevada.ID, Name: "Reno"})

	c.p1 = mustNew(t, sess, &models.Place{CityID: c.sf.ID, UserID: user.ID, Name: "P1"})
	c.p2 = mustNew(t, sess, &models.Place{CityID: c.sf.ID, UserID: user.ID, Name: "P2"})
	c.p3 = mustNew(t, sess, &models.Place{CityID: c.la.ID, UserID: user.ID, Name: "P3"})
	c.p4 = mustNew(t, sess, &models.Place{CityID: c.reno.ID, UserID: user.ID, Name: "P4"})

	c.wifi = mustNew(t, sess, &models.Amenity{Name: "Wifi"})
	c.pool = mustNew(t, sess, &models.Amenity{Name: "Pool"})
	c.tv = mustNew(t, sess, &models.Amenity{Name: "TV"})

	for _, link := range [][2]string{
		{c.p1.ID, c.wifi.ID},
		{c.p1.ID, c.pool.ID},
		{c.p2.ID, c.wifi.ID},
		{c.p4.ID, c.pool.ID},
	} {
		_, err := sess.LinkAmenity(link[0], link[1])
		require.NoError(t, err)
	}
	return c
}

func names(places []*models.Place) []string {
	out := make([]string, 0, len(places))
	for _, p := range places {
		out = append(out, p.Name)
	}
	return out
}

func TestSearchPlaces(t *testing.T) {
	sess := newSession(t)
	c := newCatalog(t, sess)

	tests := []struct {
		name     string
		criteria dto.PlacesSearchDTO
		want     []string
	}{
		{
			name:     "no filter returns every place",
			criteria: dto.PlacesSearchDTO{},
			want:     []string{"P1", "P2", "P3", "P4"},
		},
		{
			name:     "empty lists return every place",
			criteria: dto.PlacesSearchDTO{States: []string{}, Cities: []string{}, Amenities: []string{}},
			want:     []string{"P1", "P2", "P3", "P4"},
		},
		{
			name:     "state collects places of all its cities",
			criteria: dto.PlacesSearchDTO{States: []string{c.california.ID}},
			want:     []string{"P1", "P2", "P3"},
		},
		{
			name:     "city",
			criteria: dto.PlacesSearchDTO{Cities: []string{c.reno.ID}},
			want:     []string{"P4"},
		},
		{
			name:     "city already covered by state is not duplicated",
			criteria: dto.PlacesSearchDTO{States: []string{c.california.ID}, Cities: []string{c.sf.ID, c.reno.ID}},
			want:     []string{"P1", "P2", "P3", "P4"},
		},
		{
			name:     "city listed twice is not duplicated",
			criteria: dto.PlacesSearchDTO{Cities: []string{c.sf.ID, c.sf.ID}},
			want:     []string{"P1", "P2"},
		},
		{
			name:     "state listed twice contributes twice",
			criteria: dto.PlacesSearchDTO{States: []string{c.nevada.ID, c.nevada.ID}},
			want:     []string{"P4", "P4"},
		},
		{
			name:     "unknown ids are skipped",
			criteria: dto.PlacesSearchDTO{States: []string{"nope"}, Cities: []string{"nope", c.la.ID}},
			want:     []string{"P3"},
		},
		{
			name:     "unknown ids only",
			criteria: dto.PlacesSearchDTO{States: []string{"nope"}, Cities: []string{"nope"}},
			want:     []string{},
		},
		{
			name:     "amenities alone filter all places",
			criteria: dto.PlacesSearchDTO{Amenities: []string{c.wifi.ID}},
			want:     []string{"P1", "P2"},
		},
		{
			name:     "every amenity must be linked",
			criteria: dto.PlacesSearchDTO{Amenities: []string{c.wifi.ID, c.pool.ID}},
			want:     []string{"P1"},
		},
		{
			name:     "amenities narrow the collected places",
			criteria: dto.PlacesSearchDTO{States: []string{c.california.ID, c.nevada.ID}, Amenities: []string{c.pool.ID}},
			want:     []string{"P1", "P4"},
		},
		{
			name:     "amenities over a state without places start from all places",
			criteria: dto.PlacesSearchDTO{States: []string{c.empty.ID}, Amenities: []string{c.pool.ID}},
			want:     []string{"P1", "P4"},
		},
		{
			name:     "amenity nobody has",
			criteria: dto.PlacesSearchDTO{Amenities: []string{c.tv.ID}},
			want:     []string{},
		},
		{
			name:     "unknown amenity matches nothing",
			criteria: dto.PlacesSearchDTO{Cities: []string{c.sf.ID}, Amenities: []string{c.wifi.ID, "nope"}},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SearchPlaces(sess, tt.criteria)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestSearchPlaces_Properties(t *testing.T) {
	sess := newSession(t)
	c := newCatalog(t, sess)

	t.Run("state results belong to the state", func(t *testing.T) {
		for _, state := range []*models.State{c.california, c.nevada, c.empty} {
			got, err := SearchPlaces(sess, dto.PlacesSearchDTO{States: []string{state.ID}})
			require.NoError(t, err)
			for _, place := range got {
				city, err := database.GetAs[*models.City](sess, models.KindCity, place.CityID)
				require.NoError(t, err)
				assert.Equal(t, state.ID, city.StateID)
			}
		}
	})

	t.Run("city results belong to the city", func(t *testing.T) {
		for _, city := range []*models.City{c.sf, c.la, c.reno} {
			got, err := SearchPlaces(sess, dto.PlacesSearchDTO{Cities: []string{city.ID}})
			require.NoError(t, err)
			require.NotEmpty(t, got)
			for _, place := range got {
				assert.Equal(t, city.ID, place.CityID)
			}
		}
	})

	t.Run("records never carry amenities", func(t *testing.T) {
		for _, criteria := range []dto.PlacesSearchDTO{
			{},
			{Amenities: []string{c.wifi.ID}},
			{States: []string{c.california.ID}},
		} {
			got, err := SearchPlaces(sess, criteria)
			require.NoError(t, err)
			for _, record := range SearchRecords(got) {
				assert.NotContains(t, record, "amenities")
				assert.Equal(t, "Place", record["__class__"])
			}
		}
	})

	t.Run("search does not write", func(t *testing.T) {
		before, err := sess.Count("")
		require.NoError(t, err)
		_, err = SearchPlaces(sess, dto.PlacesSearchDTO{Amenities: []string{c.pool.ID}})
		require.NoError(t, err)
		after, err := sess.Count("")
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}
