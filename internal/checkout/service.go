package checkout

import (
	"fmt"
	"time"

	"github.com/fibidy/fibidy-backend/internal/cart"
	"github.com/fibidy/fibidy-backend/internal/order"
	"github.com/fibidy/fibidy-backend/internal/tenant"
)

// OrderCreator persists submitted orders.
type OrderCreator interface {
	Create(ord order.Order) (order.Order, error)
}

// CartClearer empties the stored cart snapshot after a successful submit.
type CartClearer interface {
	Clear(tenantID int, key string) error
}

// Result is everything the client needs after a successful checkout.
type Result struct {
	Order       order.Order `json:"order"`
	Totals      Totals      `json:"totals"`
	TrackingURL string      `json:"trackingUrl"`
	WhatsAppURL string      `json:"whatsappUrl"`
	Message     string      `json:"message"`
}

// Service turns a cart plus a checkout form into a persisted order, a
// WhatsApp message, and a cleared cart — in that order, so a failed create
// never loses the shopper's cart.
type Service struct {
	orders  OrderCreator
	carts   CartClearer
	baseURL string
	now     func() time.Time
}

func NewService(orders OrderCreator, carts CartClearer, baseURL string) *Service {
	return &Service{orders: orders, carts: carts, baseURL: baseURL, now: time.Now}
}

// Submit runs the checkout flow for one cart session.
func (s *Service) Submit(t tenant.Tenant, c *cart.Cart, cartKey string, req Request) (Result, error) {
	if err := req.Validate(c); err != nil {
		return Result{}, err
	}

	// freeze the cart into the payload before anything else; clearing the
	// cart later must not touch the submitted items
	snapshot := c.Snapshot()
	items := make([]order.Item, 0, len(snapshot))
	for _, it := range snapshot {
		items = append(items, order.Item{
			ProductID: it.ID,
			Name:      it.Name,
			Price:     it.Price,
			Qty:       it.Qty,
		})
	}

	totals := ComputeTotals(c, t.Settings)
	now := s.now().UTC()
	ts := now.Format(time.RFC3339)

	created, err := s.orders.Create(order.Order{
		OrderNumber:   order.NewOrderNumber(now),
		TenantID:      t.ID,
		CustomerName:  req.Name,
		CustomerPhone: req.Phone,
		Address:       req.Address,
		Notes:         req.Notes,
		PaymentMethod: req.PaymentMethod,
		Courier:       req.Courier,
		Items:         items,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Shipping:      totals.Shipping,
		Total:         totals.Total,
		Status:        order.StatusPending,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	})
	if err != nil {
		// cart stays intact so the shopper can retry
		return Result{}, err
	}

	trackingURL := fmt.Sprintf("%s/track/%s", s.baseURL, created.OrderNumber)
	message := ComposeMessage(t.Name, created, totals, trackingURL)
	waURL := WhatsAppLink(t.WhatsApp, message)

	if err := s.carts.Clear(t.ID, cartKey); err != nil {
		// the order exists; a stale cart snapshot is the lesser problem
		fmt.Printf("warning: could not clear cart %s for tenant %d: %v\n", cartKey, t.ID, err)
	}

	return Result{
		Order:       created,
		Totals:      totals,
		TrackingURL: trackingURL,
		WhatsAppURL: waURL,
		Message:     message,
	}, nil
}
