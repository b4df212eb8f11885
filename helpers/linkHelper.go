package helpers

import (
	"fmt"
	"net/url"
	"strings"

	"go-street-kiosk/models"
)

// ConfirmationLink builds a click-to-chat link carrying the order summary.
// It performs no I/O. An empty phone yields a link without a recipient.
func ConfirmationLink(shopName, phone string, order models.Order) models.Notification {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	message := fmt.Sprintf("%s order #%d for %s: %s. Total $%.2f",
		shopName, order.ID, order.Customer, models.SummarizeItems(order.Items), order.Total)

	link := url.URL{Scheme: "https", Host: "wa.me", Path: "/" + digits}
	link.RawQuery = url.Values{"text": {message}}.Encode()

	return models.Notification{OrderID: order.ID, Phone: digits, Message: message, Link: link.String()}
}
