package models

import "time"

// Client is a customer that projects are billed against.
type Client struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name          string    `json:"name" gorm:"not null" validate:"required"`
	ContactPerson *string   `json:"contact_person,omitempty"`
	Phone         *string   `json:"phone,omitempty" gorm:"type:varchar(20)"`
	Email         *string   `json:"email,omitempty"`
	Address       *string   `json:"address,omitempty" gorm:"type:text"`
	Notes         *string   `json:"notes,omitempty" gorm:"type:text"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
