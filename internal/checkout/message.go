package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fibidy/fibidy-backend/internal/order"
)

// formatRupiah renders an amount like "Rp27.000". Fractional tax amounts are
// rounded to the nearest rupiah for display only; stored totals keep the
// exact value.
func formatRupiah(amount float64) string {
	n := int64(amount + 0.5)
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, ch := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(ch)
	}
	return "Rp" + b.String()
}

// ComposeMessage renders the human-readable order text for the WhatsApp chat
// window. It is built from the same snapshot as the stored order, so item
// lines and totals always agree with the backend payload.
func ComposeMessage(storeName string, ord order.Order, totals Totals, trackingURL string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Halo %s! Saya ingin memesan:\n\n", storeName)
	fmt.Fprintf(&b, "Pesanan %s\n", ord.OrderNumber)
	for _, it := range ord.Items {
		fmt.Fprintf(&b, "- %s x%d = %s\n", it.Name, it.Qty, formatRupiah(float64(it.Price*it.Qty)))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", formatRupiah(float64(totals.Subtotal)))
	if totals.Tax > 0 {
		fmt.Fprintf(&b, "Pajak: %s\n", formatRupiah(totals.Tax))
	}
	if totals.Shipping > 0 {
		fmt.Fprintf(&b, "Ongkir: %s\n", formatRupiah(float64(totals.Shipping)))
	} else {
		b.WriteString("Ongkir: GRATIS\n")
	}
	fmt.Fprintf(&b, "Total: %s\n\n", formatRupiah(totals.Total))

	fmt.Fprintf(&b, "Nama: %s\n", ord.CustomerName)
	fmt.Fprintf(&b, "Telepon: %s\n", ord.CustomerPhone)
	fmt.Fprintf(&b, "Alamat: %s\n", ord.Address)
	if ord.Notes != "" {
		fmt.Fprintf(&b, "Catatan: %s\n", ord.Notes)
	}
	if ord.PaymentMethod != "" {
		fmt.Fprintf(&b, "Pembayaran: %s\n", ord.PaymentMethod)
	}
	if ord.Courier != "" {
		fmt.Fprintf(&b, "Kurir: %s\n", ord.Courier)
	}

	fmt.Fprintf(&b, "\nLacak pesanan: %s", trackingURL)
	return b.String()
}

// WhatsAppLink builds the wa.me deep link that opens the chat with the
// message pre-filled. Phone numbers are normalized to digits with the
// Indonesian country code. Stores without a number get no link so the
// client can hide the button.
func WhatsAppLink(phone, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(digits, "0") {
		digits = "62" + digits[1:]
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(message))
}
