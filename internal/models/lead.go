package models

import "time"

// DefaultShop is recorded when a lead leaves the shop name blank.
const DefaultShop = "Individual"

// Lead is a prospective customer captured by the parts popup.
type Lead struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Shop       string    `json:"shop"`
	Address    string    `json:"address"`
	Phone      string    `json:"phone"`
	CapturedAt time.Time `json:"captured_at"`
}

// SessionState lives for one browser session only.
type SessionState struct {
	PopupShown bool `json:"popup_shown"`
}

// Inquiry is a composed WhatsApp message and its deep link.
type Inquiry struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}
