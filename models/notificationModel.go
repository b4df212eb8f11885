package models

// Notification is an outbound confirmation the customer can open on their
// phone. Only the link is produced; nothing is sent by the server.
type Notification struct {
	OrderID int64  `json:"order_id"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Link    string `json:"link"`
}
