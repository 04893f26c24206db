package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentCash is the only payment method the register accepts.
const PaymentCash = "cash"

// ReceiptItem is one line of a completed order.
type ReceiptItem struct {
	Position int             `json:"position"`
	Kind     string          `json:"kind"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Details  []string        `json:"details,omitempty"`
}

// Receipt is the immutable record of a paid order.
type Receipt struct {
	OrderID       uuid.UUID       `json:"orderId"`
	IssuedAt      time.Time       `json:"issuedAt"`
	PaymentMethod string          `json:"paymentMethod"`
	Items         []ReceiptItem   `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Text          string          `json:"text"`
}

// NewReceipt snapshots an order at payment time.
func NewReceipt(order *Order, paymentMethod string, issuedAt time.Time) *Receipt {
	items := make([]ReceiptItem, 0, order.Len())
	for i, it := range order.items {
		items = append(items, ReceiptItem{
			Position: i + 1,
			Kind:     ItemKind(it),
			Name:     it.Name(),
			Price:    it.Price(),
			Details:  itemDetails(it),
		})
	}

	r := &Receipt{
		OrderID:       order.ID,
		IssuedAt:      issuedAt,
		PaymentMethod: strings.ToLower(strings.TrimSpace(paymentMethod)),
		Items:         items,
		Total:         order.Total(),
	}
	r.Text = r.render(order.Details())
	return r
}

func (r *Receipt) render(details string) string {
	var b strings.Builder

	b.WriteString("DELI-cious Sandwich Shop\n")
	fmt.Fprintf(&b, "Order #%s\n", r.OrderID)
	fmt.Fprintf(&b, "Date: %s\n", r.IssuedAt.Format("2006-01-02 15:04:05"))
	b.WriteString("\n")
	b.WriteString(details)
	if r.PaymentMethod != "" {
		fmt.Fprintf(&b, "Paid: %s\n", strings.ToUpper(r.PaymentMethod[:1])+r.PaymentMethod[1:])
	}

	return b.String()
}

// FileName returns the receipt file name, e.g. 20261014-153000-1a2b3c4d.txt.
func (r *Receipt) FileName() string {
	return fmt.Sprintf("%s-%s.txt", r.IssuedAt.Format("20060102-150405"), r.OrderID.String()[:8])
}
