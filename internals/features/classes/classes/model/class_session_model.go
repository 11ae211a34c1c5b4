package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCapacity is applied when a class is created without one.
const DefaultCapacity = 20

// ClassSessionModel represents the class_sessions table.
// Region is either a concrete region or the "all" sentinel, which makes
// the class visible to members of every region.
type ClassSessionModel struct {
	ClassSessionID         uuid.UUID `gorm:"column:class_session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_session_id"`
	ClassSessionName       string    `gorm:"column:class_session_name;type:varchar(255);not null"                   json:"class_session_name"`
	ClassSessionInstructor string    `gorm:"column:class_session_instructor;type:varchar(255);not null"             json:"class_session_instructor"`
	ClassSessionDate       string    `gorm:"column:class_session_date;type:varchar(50);not null"                    json:"class_session_date"`
	ClassSessionTime       string    `gorm:"column:class_session_time;type:varchar(50);not null"                    json:"class_session_time"`
	ClassSessionRegion     string    `gorm:"column:class_session_region;type:varchar(50);not null;index:idx_class_sessions_region" json:"class_session_region"`
	ClassSessionCapacity   int       `gorm:"column:class_session_capacity;not null;default:20"                      json:"class_session_capacity"`
	ClassSessionCreatedBy  uuid.UUID `gorm:"column:class_session_created_by;type:uuid;not null"                     json:"class_session_created_by"`

	ClassSessionCreatedAt time.Time `gorm:"column:class_session_created_at;autoCreateTime" json:"class_session_created_at"`
	ClassSessionUpdatedAt time.Time `gorm:"column:class_session_updated_at;autoUpdateTime" json:"class_session_updated_at"`
}

func (ClassSessionModel) TableName() string {
	return "class_sessions"
}
