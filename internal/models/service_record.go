package models

// ServiceRecord is one row of a published price sheet.
type ServiceRecord struct {
	Brand  string `json:"brand"`
	Model  string `json:"model"`
	Option string `json:"option"`
	Price  string `json:"price"` // kept verbatim, e.g. "₹1,499" or "199"
}
