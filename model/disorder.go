package model

import "gorm.io/gorm"

// Disorder is a disease or condition that genes are associated with.
type Disorder struct {
	gorm.Model
	Name      string `json:"name" gorm:"type:varchar(255);not null;index"`
	Accession string `json:"accession" gorm:"type:varchar(64);not null;uniqueIndex"`
}
