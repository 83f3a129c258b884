package models

// City belongs to exactly one State and owns a collection of places.
type City struct {
	BaseModel
	StateID string `json:"state_id" gorm:"type:varchar(60);not null;index"`
	Name    string `json:"name" gorm:"type:varchar(128);not null"`
	State   *State `json:"-" gorm:"foreignKey:StateID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (City) TableName() string { return "cities" }

func (*City) Kind() Kind { return KindCity }

func (*City) Immutable() []string {
	return append([]string{"state_id"}, baseImmutable...)
}
