package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AccessLog represents a persisted request or failure event.
type AccessLog struct {
	gorm.Model
	EventType string         `json:"event_type" gorm:"column:event_type;type:varchar(64);index"`
	IP        string         `json:"ip" gorm:"column:ip;type:varchar(45)"`
	Country   string         `json:"country" gorm:"column:country;type:varchar(8)"`
	UserAgent string         `json:"user_agent" gorm:"column:user_agent;type:varchar(512)"`
	Message   string         `json:"message" gorm:"column:message;type:text"`
	Details   datatypes.JSON `json:"details" gorm:"column:details;type:json"`
}
