package models

// Review is written by a User about a Place and owned by the Place.
type Review struct {
	BaseModel
	PlaceID string `json:"place_id" gorm:"type:varchar(60);not null;index"`
	UserID  string `json:"user_id" gorm:"type:varchar(60);not null;index"`
	Text    string `json:"text" gorm:"type:varchar(1024);not null"`
	Place   *Place `json:"-" gorm:"foreignKey:PlaceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User    *User  `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Review) TableName() string { return "reviews" }

func (*Review) Kind() Kind { return KindReview }

func (*Review) Immutable() []string {
	return append([]string{"place_id", "user_id"}, baseImmutable...)
}
