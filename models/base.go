package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TimeFormat is the layout used for created_at and updated_at in API records.
const TimeFormat = "2006-01-02T15:04:05.000000"

// Kind names an entity class. It is the "__class__" value of a serialized
// record and the key prefix of the file storage snapshot.
type Kind string

const (
	KindAmenity Kind = "Amenity"
	KindCity    Kind = "City"
	KindPlace   Kind = "Place"
	KindReview  Kind = "Review"
	KindState   Kind = "State"
	KindUser    Kind = "User"
)

var plurals = map[Kind]string{
	KindAmenity: "amenities",
	KindCity:    "cities",
	KindPlace:   "places",
	KindReview:  "reviews",
	KindState:   "states",
	KindUser:    "users",
}

// Plural is the collection name used in routes and in /stats.
func (k Kind) Plural() string { return plurals[k] }

// Kinds lists every entity class in the order their counts are reported.
var Kinds = []Kind{KindAmenity, KindCity, KindPlace, KindReview, KindState, KindUser}

// Model is implemented by every persisted entity.
type Model interface {
	Kind() Kind
	Base() *BaseModel
	// Immutable returns the payload keys an update must never apply.
	Immutable() []string
}

// BaseModel holds the identity and timestamps shared by all entities
type BaseModel struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(60)"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

func (b *BaseModel) Base() *BaseModel { return b }

// Touch assigns an id and creation time to a new record, and refreshes updated_at.
func (b *BaseModel) Touch() {
	now := time.Now().UTC()
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

var baseImmutable = []string{"id", "created_at", "updated_at"}

// New returns an empty record of the given kind, or nil for an unknown kind.
func New(kind Kind) Model {
	switch kind {
	case KindAmenity:
		return &Amenity{}
	case KindCity:
		return &City{}
	case KindPlace:
		return &Place{}
	case KindReview:
		return &Review{}
	case KindState:
		return &State{}
	case KindUser:
		return &User{}
	}
	return nil
}

// ToMap serializes a record the way the API returns it: JSON fields plus
// "__class__", timestamps in TimeFormat and the password dropped.
func ToMap(m Model) map[string]any {
	raw, err := json.Marshal(m)
	if err != nil {
		return map[string]any{}
	}
	out := make(map[string]any)
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]any{}
	}
	base := m.Base()
	out["__class__"] = string(m.Kind())
	out["created_at"] = base.CreatedAt.Format(TimeFormat)
	out["updated_at"] = base.UpdatedAt.Format(TimeFormat)
	delete(out, "password")
	return out
}
