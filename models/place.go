package models

// Place is a rental listing inside a City, owned by a User.
type Place struct {
	BaseModel
	CityID          string  `json:"city_id" gorm:"type:varchar(60);not null;index"`
	UserID          string  `json:"user_id" gorm:"type:varchar(60);not null;index"`
	Name            string  `json:"name" gorm:"type:varchar(128);not null"`
	Description     string  `json:"description" gorm:"type:varchar(1024)"`
	NumberRooms     int     `json:"number_rooms" gorm:"not null;default:0"`
	NumberBathrooms int     `json:"number_bathrooms" gorm:"not null;default:0"`
	MaxGuest        int     `json:"max_guest" gorm:"not null;default:0"`
	PriceByNight    int     `json:"price_by_night" gorm:"not null;default:0"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	City            *City   `json:"-" gorm:"foreignKey:CityID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User            *User   `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Place) TableName() string { return "places" }

func (*Place) Kind() Kind { return KindPlace }

func (*Place) Immutable() []string {
	return append([]string{"city_id", "user_id"}, baseImmutable...)
}

// PlaceAmenity is one row of the many-to-many link between places and amenities.
type PlaceAmenity struct {
	PlaceID   string   `gorm:"primaryKey;type:varchar(60)"`
	AmenityID string   `gorm:"primaryKey;type:varchar(60)"`
	Place     *Place   `gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE"`
	Amenity   *Amenity `gorm:"foreignKey:AmenityID;constraint:OnDelete:CASCADE"`
}

func (PlaceAmenity) TableName() string { return "place_amenity" }
