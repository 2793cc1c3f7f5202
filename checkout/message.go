// Package checkout turns cart or single-product state into the structured
// WhatsApp message the seller receives, plus the wa.me deep link that opens
// the chat with the message prefilled.
package checkout

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/trendora/storefront-api/models"
)

type Builder struct {
	phone string
}

func NewBuilder(phone string) *Builder {
	return &Builder{phone: phone}
}

// OrderMessage enumerates the cart, one numbered block per entry, and
// appends the grand total.
func (b *Builder) OrderMessage(entries []models.CartEntry, total float64) string {
	var msg strings.Builder
	msg.WriteString("Hello, I would like to place an order:\n\n")

	for i, entry := range entries {
		p := entry.Product
		fmt.Fprintf(&msg, "%d. *Item:* %s\n", i+1, p.Name)
		fmt.Fprintf(&msg, "   *Model:* %s\n", p.FitName())
		fmt.Fprintf(&msg, "   *Number:* %s\n", p.Number())
		if entry.SelectedSize != "" {
			fmt.Fprintf(&msg, "   *Size:* %s\n", entry.SelectedSize)
		}
		fmt.Fprintf(&msg, "   *Qty:* %d\n", entry.Quantity)
		fmt.Fprintf(&msg, "   *Price:* ₹%s\n\n", amount(p.EffectivePrice()))
	}

	fmt.Fprintf(&msg, "*Total:* ₹%s\n\nPlease confirm availability.", amount(total))
	return msg.String()
}

// InquiryMessage is the single-product "buy now" message from the detail
// page.
func (b *Builder) InquiryMessage(p models.Product, selectedSize, link string) string {
	categoryName := "N/A"
	if category, ok := p.Category.Populated(); ok && category.Name != "" {
		categoryName = category.Name
	}

	var msg strings.Builder
	msg.WriteString("Hi, I'm interested in ordering:\n")
	fmt.Fprintf(&msg, "*Item:* %s\n", p.Name)
	fmt.Fprintf(&msg, "*Price:* ₹%s\n", amount(p.EffectivePrice()))
	fmt.Fprintf(&msg, "*Model:* %s\n", p.FitName())
	fmt.Fprintf(&msg, "*Category:* %s\n", categoryName)
	if selectedSize != "" {
		fmt.Fprintf(&msg, "*Size:* %s\n", selectedSize)
	}
	fmt.Fprintf(&msg, "*Link:* %s\n\nIs this item available for order?", link)
	return msg.String()
}

// OrderLink builds the deep link for the whole cart. ok is false for an
// empty cart: ordering nothing is a no-op.
func (b *Builder) OrderLink(entries []models.CartEntry, total float64) (link string, ok bool) {
	if len(entries) == 0 {
		return "", false
	}
	return b.Link(b.OrderMessage(entries, total)), true
}

// Link wraps any message in a wa.me deep link.
func (b *Builder) Link(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", b.phone, encode(message))
}

// encode matches the browser's encodeURIComponent: query escaping with
// literal %20 for spaces, which WhatsApp expects.
func encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// amount prints prices the way the storefront did: no trailing zeros.
func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
