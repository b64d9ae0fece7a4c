package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spend record. The same shape backs both actual
// expenses and expected (planned) expenses; they live in separate tables
// and differ only in lifecycle.
type Expense struct {
	ID              string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CategoryID      string          `json:"category_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ProjectID       *string         `json:"project_id,omitempty" gorm:"index;type:uuid"`
	ProjectItemID   *string         `json:"project_item_id,omitempty" gorm:"index;type:uuid"`
	UnitID          *string         `json:"unit_id,omitempty" gorm:"type:uuid"`
	PaymentMethodID *string         `json:"payment_method_id,omitempty" gorm:"type:uuid"`
	Quantity        decimal.Decimal `json:"quantity" gorm:"type:numeric;default:1"`
	UnitPrice       decimal.Decimal `json:"unit_price" gorm:"type:numeric;default:0"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:numeric"`
	TaxRate         decimal.Decimal `json:"tax_rate" gorm:"type:numeric;default:0"`
	TaxAmount       decimal.Decimal `json:"tax_amount" gorm:"type:numeric"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:numeric"`
	ExpenseDate     DateOnly        `json:"expense_date" gorm:"type:date;index"`
	Description     *string         `json:"description,omitempty" gorm:"type:text"`
	Details         *string         `json:"details,omitempty" gorm:"type:text"`
	Notes           *string         `json:"notes,omitempty" gorm:"type:text"`
	Status          ExpenseStatus   `json:"status" gorm:"type:varchar(20);default:'pending'"`
	CreatedAt       time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Category      *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Project       *Project       `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
	ProjectItem   *ProjectItem   `json:"project_item,omitempty" gorm:"foreignKey:ProjectItemID;references:ID"`
	Unit          *Unit          `json:"unit,omitempty" gorm:"foreignKey:UnitID;references:ID"`
	PaymentMethod *PaymentMethod `json:"payment_method,omitempty" gorm:"foreignKey:PaymentMethodID;references:ID"`
}

// Recalculate derives amount, tax_amount and total_amount from quantity,
// unit_price and tax_rate. Client-supplied totals are never trusted; this
// runs on every create and on every update that touches any input.
func (e *Expense) Recalculate() {
	e.Amount = e.Quantity.Mul(e.UnitPrice)
	e.TaxAmount = e.Amount.Mul(e.TaxRate)
	e.TotalAmount = e.Amount.Add(e.TaxAmount)
}
