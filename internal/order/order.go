package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Statuses an order moves through.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDone      = "done"
)

// Item is an order line frozen at submit time. It never aliases the live
// cart: prices and quantities here are the ones the shopper confirmed.
type Item struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Qty       int    `json:"qty"`
}

// Order is a submitted purchase.
type Order struct {
	ID            int     `json:"orderId"`
	OrderNumber   string  `json:"orderNumber"`
	TenantID      int     `json:"tenantId"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	Address       string  `json:"address"`
	Notes         string  `json:"notes,omitempty"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
	Courier       string  `json:"courier,omitempty"`
	Items         []Item  `json:"items"`
	Subtotal      int     `json:"subtotal"`
	Tax           float64 `json:"tax"`
	Shipping      int     `json:"shipping"`
	Total         float64 `json:"total"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// NewOrderNumber builds a human-quotable order number: date plus a short
// uuid-derived suffix, e.g. FBD-20250131-7F3A2C.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("FBD-%s-%s", now.Format("20060102"), suffix)
}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDone:
		return true
	}
	return false
}
