package models

import "time"

// DynamicField is an operator-defined field attached to a page type
// (e.g. "expenses"). Field names are unique within a page type.
type DynamicField struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name         string     `json:"name" gorm:"not null" validate:"required"`
	Label        string     `json:"label" gorm:"not null" validate:"required"`
	FieldType    FieldType  `json:"field_type" gorm:"not null;type:varchar(20)"`
	PageType     string     `json:"page_type" gorm:"not null;index" validate:"required"`
	Options      []string   `json:"options,omitempty" gorm:"type:jsonb"`
	Formula      *string    `json:"formula,omitempty"`
	IsRequired   bool       `json:"is_required" gorm:"default:false"`
	DisplayOrder int        `json:"display_order" gorm:"default:0"`
	DefaultValue *string    `json:"default_value,omitempty"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// DynamicFieldValue stores one raw value for (record, page type, field).
// Values are kept as text; interpretation happens at render time based
// on the field's declared type.
type DynamicFieldValue struct {
	RecordID  string    `json:"record_id" gorm:"index;type:uuid"`
	PageType  string    `json:"page_type" gorm:"index"`
	FieldName string    `json:"field_name"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
