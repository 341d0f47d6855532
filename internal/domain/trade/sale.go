package trade

import (
	"time"

	"github.com/erp/console/internal/domain/catalog"
	"github.com/erp/console/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// SaleDetail represents one product line item owned by a Sale
type SaleDetail struct {
	ProductID int             `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
	Value     decimal.Decimal `json:"value"`
}

// Subtotal returns quantity times unit value for this line
func (d SaleDetail) Subtotal() decimal.Decimal {
	return d.Quantity.Mul(d.Value)
}

// Sale represents a sale under construction or fetched from the remote API.
// Total is derived and must always equal the sum of its line subtotals;
// every mutating operation recalculates it before returning.
type Sale struct {
	ID         int             `json:"id,omitempty"`
	Date       time.Time       `json:"date"`
	CustomerID int             `json:"customerId"`
	Customer   string          `json:"customer,omitempty"`
	Total      decimal.Decimal `json:"total"`
	Note       string          `json:"note"`
	Details    []SaleDetail    `json:"saleDetails"`
}

// NewSale creates an empty sale dated now with a single blank line,
// mirroring the initial state of the sale entry form
func NewSale() *Sale {
	s := &Sale{
		Date:    time.Now(),
		Total:   decimal.Zero,
		Details: []SaleDetail{{}},
	}
	s.recalculateTotal()
	return s
}

// AddLine appends a new zero-quantity line item.
// The total is unaffected until the line is populated.
func (s *Sale) AddLine() {
	s.Details = append(s.Details, SaleDetail{})
	s.recalculateTotal()
}

// RemoveLine deletes the line at the given position and recomputes the total
func (s *Sale) RemoveLine(index int) error {
	if index < 0 || index >= len(s.Details) {
		return shared.NewDomainError("LINE_NOT_FOUND", "Sale line item not found")
	}
	s.Details = append(s.Details[:index], s.Details[index+1:]...)
	s.recalculateTotal()
	return nil
}

// SetLineQuantity updates one line's quantity from raw user input and
// recomputes the total in the same operation. Non-numeric input counts as 0.
func (s *Sale) SetLineQuantity(index int, raw string) error {
	if index < 0 || index >= len(s.Details) {
		return shared.NewDomainError("LINE_NOT_FOUND", "Sale line item not found")
	}
	s.Details[index].Quantity = coerceNumeric(raw)
	s.recalculateTotal()
	return nil
}

// SetLineValue updates one line's unit value from raw user input and
// recomputes the total in the same operation. Non-numeric input counts as 0.
func (s *Sale) SetLineValue(index int, raw string) error {
	if index < 0 || index >= len(s.Details) {
		return shared.NewDomainError("LINE_NOT_FOUND", "Sale line item not found")
	}
	s.Details[index].Value = coerceNumeric(raw)
	s.recalculateTotal()
	return nil
}

// SelectProduct assigns a product to the line and auto-populates its unit
// value from the product's price
func (s *Sale) SelectProduct(index int, product catalog.Product) error {
	if index < 0 || index >= len(s.Details) {
		return shared.NewDomainError("LINE_NOT_FOUND", "Sale line item not found")
	}
	s.Details[index].ProductID = product.ID
	s.Details[index].Value = product.Price
	s.recalculateTotal()
	return nil
}

// SetCustomer assigns the customer the sale belongs to
func (s *Sale) SetCustomer(customerID int) {
	s.CustomerID = customerID
}

// SetDate assigns the sale date
func (s *Sale) SetDate(date time.Time) {
	s.Date = date
}

// SetNote assigns the free-form note
func (s *Sale) SetNote(note string) {
	s.Note = note
}

// LineCount returns the number of line items
func (s *Sale) LineCount() int {
	return len(s.Details)
}

// Validate checks the sale is submittable: a customer and at least one
// populated line
func (s *Sale) Validate() error {
	if s.CustomerID == 0 {
		return shared.NewDomainError("NO_CUSTOMER", "Sale requires a customer")
	}
	for _, d := range s.Details {
		if d.ProductID != 0 && d.Quantity.IsPositive() {
			return nil
		}
	}
	return shared.NewDomainError("NO_ITEMS", "Sale requires at least one line item")
}

// recalculateTotal recomputes the derived total from the line items
func (s *Sale) recalculateTotal() {
	total := decimal.Zero
	for _, d := range s.Details {
		total = total.Add(d.Subtotal())
	}
	s.Total = total
}

// coerceNumeric parses raw user input, treating anything non-numeric as zero
// so the total never propagates a parse failure
func coerceNumeric(raw string) decimal.Decimal {
	n, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return n
}
