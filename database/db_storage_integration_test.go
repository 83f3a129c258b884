//go:build integration
// +build integration

package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
)

func setupDBStorage(t *testing.T) *DBStorage {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("hbnb_test_db"),
		postgres.WithUsername("hbnb_test"),
		postgres.WithPassword("hbnb_test_pwd"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	store, err := ConnectDB(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Migrate(ctx))
	return store
}

func TestDBStorage_Integration(t *testing.T) {
	store := setupDBStorage(t)

	sess := openSession(t, store)
	state, city, user, place, review, amenity := seed(t, sess)
	require.NoError(t, sess.Save())

	t.Run("reads in a fresh session", func(t *testing.T) {
		sess := openSession(t, store)

		got, err := GetAs[*models.Place](sess, models.KindPlace, place.ID)
		require.NoError(t, err)
		assert.Equal(t, "Loft", got.Name)

		ids, err := sess.CityIDs(state.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{city.ID}, ids)

		ids, err = sess.ReviewIDs(place.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{review.ID}, ids)

		ids, err = sess.AmenityIDs(place.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{amenity.ID}, ids)

		total, err := sess.Count("")
		require.NoError(t, err)
		assert.EqualValues(t, 6, total)
	})

	t.Run("close rolls back unsaved writes", func(t *testing.T) {
		sess, err := store.Open(context.Background())
		require.NoError(t, err)
		require.NoError(t, sess.New(&models.State{Name: "Unsaved"}))
		require.NoError(t, sess.Close())

		check := openSession(t, store)
		n, err := check.Count(models.KindState)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})

	t.Run("update", func(t *testing.T) {
		sess := openSession(t, store)
		got, err := GetAs[*models.User](sess, models.KindUser, user.ID)
		require.NoError(t, err)
		got.FirstName = "Betty"
		require.NoError(t, sess.Update(got))
		require.NoError(t, sess.Save())

		check := openSession(t, store)
		again, err := GetAs[*models.User](check, models.KindUser, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Betty", again.FirstName)
	})

	t.Run("delete state cascades", func(t *testing.T) {
		sess := openSession(t, store)
		require.NoError(t, sess.Delete(state))
		require.NoError(t, sess.Save())

		check := openSession(t, store)
		for _, kind := range []models.Kind{models.KindCity, models.KindPlace, models.KindReview} {
			n, err := check.Count(kind)
			require.NoError(t, err)
			assert.Zero(t, n, kind)
		}
		ids, err := check.AmenityIDs(place.ID)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}
