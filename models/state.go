package models

// State owns a collection of cities through City.StateID.
type State struct {
	BaseModel
	Name string `json:"name" gorm:"type:varchar(128);not null"`
}

func (State) TableName() string { return "states" }

func (*State) Kind() Kind { return KindState }

func (*State) Immutable() []string { return baseImmutable }
