package service

import (
	"fmt"
	"net/url"
	"strings"

	"aqua-store/models"
	"aqua-store/utils"
)

// ContactAction builds deep-links to the external messaging service
type ContactAction struct {
	baseURL     string
	destination string
}

// NewContactAction creates a ContactAction for baseURL (e.g. https://wa.me) and destination number
func NewContactAction(baseURL, destination string) *ContactAction {
	return &ContactAction{
		baseURL:     strings.TrimRight(baseURL, "/"),
		destination: destination,
	}
}

// ComposeMessage formats the enquiry text for a product
func ComposeMessage(p models.Product) string {
	return "Hola, me interesa el producto:\n\n" +
		fmt.Sprintf("Código: %s\n", p.Code) +
		fmt.Sprintf("Nombre: %s\n", p.Name) +
		fmt.Sprintf("Precio: %s\n\n", utils.FormatMoney(p.Price)) +
		"¿Está disponible?"
}

// URL returns the deep-link carrying the percent-encoded message for p
func (c *ContactAction) URL(p models.Product) string {
	return fmt.Sprintf("%s/%s?text=%s", c.baseURL, url.PathEscape(c.destination), EncodeURIComponent(ComposeMessage(p)))
}

// URLFor returns the deep-link for the overlay's selected product.
// ok is false when nothing is selected.
func (c *ContactAction) URLFor(o Overlay) (string, bool) {
	p, ok := o.Product()
	if !ok {
		return "", false
	}
	return c.URL(p), true
}

// EncodeURIComponent percent-encodes s for use as a query value, with
// spaces as %20 rather than +.
func EncodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
