package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/programmingwithjerry/AirBnB-clone-v4/database"
	"github.com/programmingwithjerry/AirBnB-clone-v4/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type apiClient struct {
	t      *testing.T
	router *gin.Engine
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()
	store, err := database.NewFileStorage("")
	require.NoError(t, err)
	r := gin.New()
	RegisterAPI(r, store, services.NewStatsService(nil, time.Minute))
	return &apiClient{t: t, router: r}
}

// do sends body as is when it is a string, JSON-encoded otherwise.
func (a *apiClient) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, APIPrefix+path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// create posts body and returns the created record.
func (a *apiClient) create(path string, body any) map[string]any {
	a.t.Helper()
	w := a.do(http.MethodPost, path, body)
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[map[string]any](a.t, w)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func ids(records []map[string]any) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r["id"].(string))
	}
	return out
}

func TestStatusAndStats(t *testing.T) {
	api := newAPI(t)

	for _, path := range []string{"/status", "/status/"} {
		w := api.do(http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"OK"}`, w.Body.String())
	}

	api.create("/states", map[string]any{"name": "Texas"})
	w := api.do(http.MethodGet, "/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"amenities":0,"cities":0,"places":0,"reviews":0,"states":1,"users":0}`, w.Body.String())
}

func TestNotFoundRoute(t *testing.T) {
	api := newAPI(t)
	w := api.do(http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestStateEndpoints(t *testing.T) {
	api := newAPI(t)

	t.Run("bad bodies", func(t *testing.T) {
		tests := []struct {
			name string
			body any
			want string
		}{
			{"no body", nil, "Not a JSON"},
			{"not json", "name=Texas", "Not a JSON"},
			{"array", `["Texas"]`, "Not a JSON"},
			{"null", "null", "Not a JSON"},
			{"missing name", map[string]any{}, "Missing name"},
			{"wrong type", map[string]any{"name": 3}, "Invalid name"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := api.do(http.MethodPost, "/states", tt.body)
				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Equal(t, tt.want, decode[ErrorResponse](t, w).Error)
			})
		}
	})

	state := api.create("/states/", map[string]any{"name": "Texas"})
	assert.Equal(t, "State", state["__class__"])
	assert.Equal(t, "Texas", state["name"])
	id := state["id"].(string)

	w := api.do(http.MethodGet, "/states", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{id}, ids(decode[[]map[string]any](t, w)))

	w = api.do(http.MethodPut, "/states/"+id, map[string]any{"name": "Utah", "created_at": "x"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[map[string]any](t, w)
	assert.Equal(t, "Utah", updated["name"])
	assert.Equal(t, state["created_at"], updated["created_at"])

	w = api.do(http.MethodPut, "/states/"+id, map[string]any{"NAME": "Nevada"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Nevada", decode[map[string]any](t, w)["name"])

	w = api.do(http.MethodDelete, "/states/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())

	w = api.do(http.MethodGet, "/states/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestCityEndpoints(t *testing.T) {
	api := newAPI(t)
	state := api.create("/states", map[string]any{"name": "Texas"})
	stateID := state["id"].(string)

	w := api.do(http.MethodPost, "/states/nope/cities", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "state is checked before the body")

	city := api.create("/states/"+stateID+"/cities", map[string]any{"name": "Austin"})
	assert.Equal(t, stateID, city["state_id"])

	w = api.do(http.MethodGet, "/states/"+stateID+"/cities", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	api.do(http.MethodDelete, "/states/"+stateID, nil)
	w = api.do(http.MethodGet, "/cities/"+city["id"].(string), nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "cities go with their state")
}

func TestUserEndpoints(t *testing.T) {
	api := newAPI(t)

	w := api.do(http.MethodPost, "/users", map[string]any{"email": "a@b.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing password"}`, w.Body.String())

	w = api.do(http.MethodPost, "/users", map[string]any{"password": "pw"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing email"}`, w.Body.String())

	user := api.create("/users", map[string]any{"email": "a@b.com", "password": "pw"})
	assert.NotContains(t, user, "password")
	assert.Equal(t, "User", user["__class__"])

	w = api.do(http.MethodPut, "/users/"+user["id"].(string), map[string]any{"email": "x@y.com", "first_name": "Ann"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[map[string]any](t, w)
	assert.Equal(t, "a@b.com", updated["email"])
	assert.Equal(t, "Ann", updated["first_name"])
	assert.NotContains(t, updated, "password")
}

func TestAmenityEndpoints(t *testing.T) {
	api := newAPI(t)

	w := api.do(http.MethodDelete, "/amenities/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	amenity := api.create("/amenities", map[string]any{"name": "Wifi"})
	w = api.do(http.MethodGet, "/amenities/"+amenity["id"].(string), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Wifi", decode[map[string]any](t, w)["name"])
}

// fixture holds one state with one city, a user and two places.
type fixture struct {
	api                  *apiClient
	state, city, user    string
	p1, p2, wifi, review string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	api := newAPI(t)
	f := &fixture{api: api}
	f.state = api.create("/states", map[string]any{"name": "California"})["id"].(string)
	f.city = api.create("/states/"+f.state+"/cities", map[string]any{"name": "San Francisco"})["id"].(string)
	f.user = api.create("/users", map[string]any{"email": "a@b.com", "password": "pw"})["id"].(string)
	f.p1 = api.create("/cities/"+f.city+"/places", map[string]any{"user_id": f.user, "name": "P1", "max_guest": 2})["id"].(string)
	f.p2 = api.create("/cities/"+f.city+"/places", map[string]any{"user_id": f.user, "name": "P2"})["id"].(string)
	f.wifi = api.create("/amenities", map[string]any{"name": "Wifi"})["id"].(string)
	f.api.create("/places/"+f.p1+"/amenities/"+f.wifi, nil)
	f.review = api.create("/places/"+f.p1+"/reviews", map[string]any{"user_id": f.user, "text": "Nice"})["id"].(string)
	return f
}

func TestPlaceEndpoints(t *testing.T) {
	f := newFixture(t)

	t.Run("create checks", func(t *testing.T) {
		tests := []struct {
			name string
			path string
			body any
			code int
		}{
			{"unknown city", "/cities/nope/places", map[string]any{}, http.StatusNotFound},
			{"not json", "/cities/" + f.city + "/places", "x", http.StatusBadRequest},
			{"missing user_id", "/cities/" + f.city + "/places", map[string]any{"name": "P"}, http.StatusBadRequest},
			{"unknown user", "/cities/" + f.city + "/places", map[string]any{"user_id": "nope", "name": "P"}, http.StatusNotFound},
			{"missing name", "/cities/" + f.city + "/places", map[string]any{"user_id": f.user}, http.StatusBadRequest},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.code, f.api.do(http.MethodPost, tt.path, tt.body).Code)
			})
		}
	})

	t.Run("get carries amenity ids", func(t *testing.T) {
		w := f.api.do(http.MethodGet, "/places/"+f.p1, nil)
		require.Equal(t, http.StatusOK, w.Code)
		place := decode[map[string]any](t, w)
		assert.Equal(t, []any{f.wifi}, place["amenities"])
		assert.EqualValues(t, 2, place["max_guest"])
	})

	t.Run("update ignores immutable keys", func(t *testing.T) {
		w := f.api.do(http.MethodPut, "/places/"+f.p2, map[string]any{"id": "new", "name": "X", "city_id": "other"})
		require.Equal(t, http.StatusOK, w.Code)
		place := decode[map[string]any](t, w)
		assert.Equal(t, f.p2, place["id"])
		assert.Equal(t, "X", place["name"])
		assert.Equal(t, f.city, place["city_id"])

		assert.Equal(t, http.StatusNotFound, f.api.do(http.MethodGet, "/places/new", nil).Code)
	})

	t.Run("list by city", func(t *testing.T) {
		w := f.api.do(http.MethodGet, "/cities/"+f.city+"/places", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{f.p1, f.p2}, ids(decode[[]map[string]any](t, w)))
	})
}

func TestPlaceAmenityEndpoints(t *testing.T) {
	f := newFixture(t)
	path := "/places/" + f.p1 + "/amenities/" + f.wifi

	w := f.api.do(http.MethodPost, path, nil)
	assert.Equal(t, http.StatusOK, w.Code, "already linked")
	assert.Equal(t, f.wifi, decode[map[string]any](t, w)["id"])

	w = f.api.do(http.MethodGet, "/places/"+f.p1+"/amenities", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{f.wifi}, ids(decode[[]map[string]any](t, w)))

	assert.Equal(t, http.StatusNotFound, f.api.do(http.MethodPost, "/places/"+f.p1+"/amenities/nope", nil).Code)
	assert.Equal(t, http.StatusNotFound, f.api.do(http.MethodDelete, "/places/"+f.p2+"/amenities/"+f.wifi, nil).Code)

	assert.Equal(t, http.StatusOK, f.api.do(http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, f.api.do(http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusCreated, f.api.do(http.MethodPost, path, nil).Code)
}

func TestReviewEndpoints(t *testing.T) {
	f := newFixture(t)

	w := f.api.do(http.MethodPost, "/places/"+f.p1+"/reviews", map[string]any{"user_id": f.user})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing text"}`, w.Body.String())

	w = f.api.do(http.MethodGet, "/places/"+f.p1+"/reviews", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{f.review}, ids(decode[[]map[string]any](t, w)))

	require.Equal(t, http.StatusOK, f.api.do(http.MethodDelete, "/places/"+f.p1, nil).Code)
	assert.Equal(t, http.StatusNotFound, f.api.do(http.MethodGet, "/reviews/"+f.review, nil).Code)
}

func TestSearchPlacesEndpoint(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		body any
		want []string
	}{
		{"empty object returns all", map[string]any{}, []string{f.p1, f.p2}},
		{"state", map[string]any{"states": []string{f.state}}, []string{f.p1, f.p2}},
		{"amenity", map[string]any{"amenities": []string{f.wifi}}, []string{f.p1}},
		{"unknown amenity", map[string]any{"amenities": []string{f.wifi, "nope"}}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.api.do(http.MethodPost, "/places_search", tt.body)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			got := decode[[]map[string]any](t, w)
			assert.Equal(t, tt.want, ids(got))
			for _, place := range got {
				assert.NotContains(t, place, "amenities")
			}
		})
	}

	t.Run("not json", func(t *testing.T) {
		for _, body := range []any{nil, "states", "[]", "null"} {
			w := f.api.do(http.MethodPost, "/places_search/", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"Not a JSON"}`, w.Body.String())
		}
	})

	t.Run("wrong list type", func(t *testing.T) {
		w := f.api.do(http.MethodPost, "/places_search", map[string]any{"states": "x"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid states"}`, w.Body.String())
	})
}
