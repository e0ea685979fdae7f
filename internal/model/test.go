package model

import (
	"time"
)

// Test is a generated assessment. The ID is "<wallet>-<uuid>" so a test is
// informally traceable to the wallet that paid for it. Tests are immutable
// once created.
type Test struct {
	ID               string     `gorm:"primarykey" json:"id"`
	Topic            string     `json:"topic" gorm:"not null"`
	MainCategory     string     `json:"main_category" gorm:"not null"`
	NarrowCategory   string     `json:"narrow_category" gorm:"not null"`
	SpecificCategory string     `json:"specific_category" gorm:"not null"`
	Questions        []Question `json:"questions,omitempty" gorm:"foreignKey:TestID"`
	CreatedAt        time.Time  `json:"created_at"`
}
