package models

import "time"

// PaymentPlan is an installment schedule attached to exactly one owner:
// either a direct expense or a recurring fixed-expense template, never both
// and never neither. InflationIndexed marks plans whose installments are
// expressed in an inflation-indexed unit instead of the nominal currency.
type PaymentPlan struct {
	Base
	ExpenseID        *uint     `gorm:"index" json:"expense_id,omitempty"`
	FixedExpenseID   *uint     `gorm:"index" json:"fixed_expense_id,omitempty"`
	PaymentTypeID    uint      `gorm:"not null" json:"payment_type_id"`
	BankEntityID     uint      `gorm:"not null" json:"bank_entity_id"`
	InflationIndexed bool      `gorm:"not null;default:false" json:"inflation_indexed"`
	Installments     int       `gorm:"not null" json:"installments"`
	StartDate        time.Time `gorm:"not null" json:"start_date"`

	PaymentType *PaymentType `gorm:"foreignKey:PaymentTypeID" json:"payment_type,omitempty"`
	BankEntity  *BankEntity  `gorm:"foreignKey:BankEntityID" json:"bank_entity,omitempty"`
}
