package models

import (
	"errors"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	EntityBusiness   = "PJ"
	EntityIndividual = "PF"

	ProductPix      = "pix"
	ProductPOS      = "pos"
	ProductTap      = "tap"
	ProductLink     = "link"
	ProductBankSlip = "bank_slip"

	PaymentMethodCredit     = "credit"
	PaymentMethodDebit      = "debit"
	PaymentMethodUninformed = "uninformed"
)

// Dataset column names after canonicalization
const (
	ColumnDay                  = "day"
	ColumnEntity               = "entity"
	ColumnProduct              = "product"
	ColumnPriceTier            = "price_tier"
	ColumnAnticipationMethod   = "anticipation_method"
	ColumnNitroOrD0            = "nitro_or_d0"
	ColumnPaymentMethod        = "payment_method"
	ColumnInstallments         = "installments"
	ColumnAmountTransacted     = "amount_transacted"
	ColumnQuantityTransactions = "quantity_transactions"
	ColumnQuantityOfMerchants  = "quantity_of_merchants"
)

// DayLayout is the storage format of a calendar day in the query store
const DayLayout = "2006-01-02"

var (
	ErrInvalidInstallments = errors.New("installments must be at least 1")
	ErrNegativeAmount      = errors.New("amount transacted cannot be negative")
	ErrNegativeCount       = errors.New("transaction and merchant counts cannot be negative")
	ErrMissingDay          = errors.New("day is required")
)

// TransactionRecord is one aggregated row of the operational dataset.
// NitroOrD0 is empty when the source column is absent for the row.
type TransactionRecord struct {
	Day                  civil.Date      `json:"day"`
	Entity               string          `json:"entity"`
	Product              string          `json:"product"`
	PriceTier            string          `json:"price_tier"`
	AnticipationMethod   string          `json:"anticipation_method"`
	NitroOrD0            string          `json:"nitro_or_d0,omitempty"`
	PaymentMethod        string          `json:"payment_method"`
	Installments         int             `json:"installments"`
	AmountTransacted     decimal.Decimal `json:"amount_transacted"`
	QuantityTransactions int64           `json:"quantity_transactions"`
	QuantityOfMerchants  int64           `json:"quantity_of_merchants"`
}

// Validate checks the numeric invariants of a record
func (r *TransactionRecord) Validate() error {
	if !r.Day.IsValid() {
		return ErrMissingDay
	}

	if r.Installments < 1 {
		return ErrInvalidInstallments
	}

	if r.AmountTransacted.IsNegative() {
		return ErrNegativeAmount
	}

	if r.QuantityTransactions < 0 || r.QuantityOfMerchants < 0 {
		return ErrNegativeCount
	}

	return nil
}

// Dimension returns the value of a categorical column, false if the column is not categorical
func (r *TransactionRecord) Dimension(column string) (string, bool) {
	switch column {
	case ColumnDay:
		return r.Day.String(), true
	case ColumnEntity:
		return r.Entity, true
	case ColumnProduct:
		return r.Product, true
	case ColumnPriceTier:
		return r.PriceTier, true
	case ColumnAnticipationMethod:
		return r.AnticipationMethod, true
	case ColumnNitroOrD0:
		return r.NitroOrD0, true
	case ColumnPaymentMethod:
		return r.PaymentMethod, true
	default:
		return "", false
	}
}

// ToRow converts the record into its query store representation
func (r *TransactionRecord) ToRow() TransactionRow {
	row := TransactionRow{
		Day:                  r.Day.String(),
		Entity:               r.Entity,
		Product:              r.Product,
		PriceTier:            r.PriceTier,
		AnticipationMethod:   r.AnticipationMethod,
		PaymentMethod:        r.PaymentMethod,
		Installments:         r.Installments,
		AmountTransacted:     r.AmountTransacted,
		QuantityTransactions: r.QuantityTransactions,
		QuantityOfMerchants:  r.QuantityOfMerchants,
	}
	if r.NitroOrD0 != "" {
		nitro := r.NitroOrD0
		row.NitroOrD0 = &nitro
	}
	return row
}

// TransactionRow is the relational representation served to the SQL engine
type TransactionRow struct {
	ID                   uint            `gorm:"primaryKey" json:"-"`
	Day                  string          `gorm:"type:varchar(10);not null;index" json:"day"`
	Entity               string          `gorm:"type:varchar(10)" json:"entity"`
	Product              string          `gorm:"type:varchar(20);index" json:"product"`
	PriceTier            string          `gorm:"type:varchar(20)" json:"price_tier"`
	AnticipationMethod   string          `gorm:"type:varchar(30)" json:"anticipation_method"`
	NitroOrD0            *string         `gorm:"column:nitro_or_d0;type:varchar(30)" json:"nitro_or_d0"`
	PaymentMethod        string          `gorm:"type:varchar(20)" json:"payment_method"`
	Installments         int             `gorm:"not null;default:1" json:"installments"`
	AmountTransacted     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount_transacted"`
	QuantityTransactions int64           `gorm:"not null;default:0" json:"quantity_transactions"`
	QuantityOfMerchants  int64           `gorm:"not null;default:0" json:"quantity_of_merchants"`
}

// TableName returns the table name for TransactionRow
func (*TransactionRow) TableName() string {
	return "transactions"
}

// BeforeCreate hook for TransactionRow
func (t *TransactionRow) BeforeCreate(tx *gorm.DB) error {
	if t.Day == "" {
		return ErrMissingDay
	}
	if t.Installments == 0 {
		t.Installments = 1
	}
	return nil
}

// IsValidEntity checks if the entity type is one of the known originators
func IsValidEntity(entity string) bool {
	switch entity {
	case EntityBusiness, EntityIndividual:
		return true
	default:
		return false
	}
}

// IsValidPaymentMethod checks if the payment method is known
func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCredit, PaymentMethodDebit, PaymentMethodUninformed:
		return true
	default:
		return false
	}
}
