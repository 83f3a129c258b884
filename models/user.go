package models

// User owns places and reviews. Password holds a bcrypt hash and is never
// part of an API record.
type User struct {
	BaseModel
	Email     string `json:"email" gorm:"type:varchar(128);not null"`
	Password  string `json:"password,omitempty" gorm:"type:varchar(128);not null"`
	FirstName string `json:"first_name" gorm:"type:varchar(128)"`
	LastName  string `json:"last_name" gorm:"type:varchar(128)"`
}

func (User) TableName() string { return "users" }

func (*User) Kind() Kind { return KindUser }

func (*User) Immutable() []string {
	return append([]string{"email"}, baseImmutable...)
}
