package models

type Amenity struct {
	BaseModel
	Name string `json:"name" gorm:"type:varchar(128);not null"`
}

func (Amenity) TableName() string { return "amenities" }

func (*Amenity) Kind() Kind { return KindAmenity }

func (*Amenity) Immutable() []string { return baseImmutable }
