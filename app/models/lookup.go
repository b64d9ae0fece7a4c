package models

import "time"

// Unit is a measurement unit lookup (piece, meter, hour...). Never
// physically deleted, only deactivated.
type Unit struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	Code      *string   `json:"code,omitempty" gorm:"type:varchar(20)"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// PaymentMethod is a payment channel lookup (cash, transfer...). Never
// physically deleted, only deactivated.
type PaymentMethod struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	Code      *string   `json:"code,omitempty" gorm:"type:varchar(20)"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
