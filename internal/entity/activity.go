package entity

import "time"

type Activity struct {
	ID           int64     `gorm:"column:al_id;primaryKey"`
	ActivityName string    `gorm:"column:activity_name;not null"`
	ActivityTime time.Time `gorm:"column:activity_time;not null"`
}

func (Activity) TableName() string {
	return "activity_list"
}

type Registration struct {
	ID         int64 `gorm:"primaryKey"`
	MemberID   int   `gorm:"column:member_id;not null;index"`
	ActivityID int64 `gorm:"column:activity_id;not null;index"`
}

func (Registration) TableName() string {
	return "registered"
}

// UpcomingRegistration is the join projection the reminder scheduler reads:
// one row per registered member of an activity happening tomorrow.
type UpcomingRegistration struct {
	MemberID     int       `gorm:"column:member_id"`
	MemberName   string    `gorm:"column:member_name"`
	ActivityName string    `gorm:"column:activity_name"`
	ActivityTime time.Time `gorm:"column:activity_time"`
}
