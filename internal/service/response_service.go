package service

// InquiryRequest carries what the page currently shows; nothing is validated.
type InquiryRequest struct {
	Brand   string
	Model   string
	Service string // display label of the chosen option
	Price   string
}
