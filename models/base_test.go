package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToMap(t *testing.T) {
	created := time.Date(2017, 3, 25, 19, 42, 40, 638000000, time.UTC)

	t.Run("place keeps zero valued attributes", func(t *testing.T) {
		place := &Place{BaseModel: BaseModel{ID: "p1", CreatedAt: created, UpdatedAt: created}, Name: "Loft"}
		record := ToMap(place)

		assert.Equal(t, "Place", record["__class__"])
		assert.Equal(t, "2017-03-25T19:42:40.638000", record["created_at"])
		for _, key := range []string{"description", "latitude", "longitude", "number_rooms", "max_guest", "price_by_night"} {
			assert.Contains(t, record, key)
		}
		assert.EqualValues(t, 0, record["latitude"])
		assert.Equal(t, "", record["description"])
	})

	t.Run("user never carries the password", func(t *testing.T) {
		record := ToMap(&User{Email: "a@b.com", Password: "hash"})
		assert.NotContains(t, record, "password")
		assert.Equal(t, "a@b.com", record["email"])
		assert.Contains(t, record, "first_name")
		assert.Contains(t, record, "last_name")
	})
}
