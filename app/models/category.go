package models

import "time"

// Category classifies expenses. Deleting a category that still has
// expenses is rejected by the storage layer (FK restrict).
type Category struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Code        *string   `json:"code,omitempty"`
	Color       *string   `json:"color,omitempty" gorm:"type:varchar(20)"`
	Icon        *string   `json:"icon,omitempty" gorm:"type:varchar(50)"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
