package entity

// Member is owned by the auth subsystem; this service only reads the name
// for reminder content and otherwise treats the id as opaque.
type Member struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func (Member) TableName() string {
	return "members"
}
