package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project groups expenses under a client engagement. ExpectedTotal and
// ActualTotal are denormalized sums refreshed whenever a referencing
// expense row changes.
type Project struct {
	ID            string              `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name          string              `json:"name" gorm:"not null" validate:"required"`
	Code          *string             `json:"code,omitempty"`
	ClientID      *string             `json:"client_id,omitempty" gorm:"index;type:uuid"`
	Budget        decimal.NullDecimal `json:"budget" gorm:"type:numeric"`
	ExpectedTotal decimal.Decimal     `json:"expected_total" gorm:"type:numeric;default:0"`
	ActualTotal   decimal.Decimal     `json:"actual_total" gorm:"type:numeric;default:0"`
	Status        ProjectStatus       `json:"status" gorm:"type:varchar(20);default:'active'"`
	Notes         *string             `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt     time.Time           `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time           `json:"updated_at" gorm:"autoUpdateTime"`
	Client        *Client             `json:"client,omitempty" gorm:"foreignKey:ClientID;references:ID"`
}

// ProjectItem is a project-scoped (or, with a nil project, library-wide)
// sub-classification for expenses. Soft-deleted.
type ProjectItem struct {
	ID        string              `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string              `json:"name" gorm:"not null" validate:"required"`
	UnitID    *string             `json:"unit_id,omitempty" gorm:"index;type:uuid"`
	ProjectID *string             `json:"project_id,omitempty" gorm:"index;type:uuid"`
	Budget    decimal.NullDecimal `json:"budget" gorm:"type:numeric"`
	SortOrder int                 `json:"sort_order" gorm:"default:0"`
	IsActive  bool                `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time           `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time           `json:"updated_at" gorm:"autoUpdateTime"`
	Unit      *Unit               `json:"unit,omitempty" gorm:"foreignKey:UnitID;references:ID"`
	Project   *Project            `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}
