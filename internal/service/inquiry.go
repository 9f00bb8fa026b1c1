package service

import (
	"fmt"
	"net/url"
	"strings"

	"storefront/internal/config"
	"storefront/internal/models"
)

const (
	defaultInquiryBaseURL  = "https://wa.me"
	defaultInquiryBusiness = "Ashok Services"

	inquiryTemplate = "Hi %s, I am interested in:\n" +
		"- Brand: %s\n" +
		"- Model: %s\n" +
		"- Service: %s\n" +
		"- Price: %s\n" +
		"\n" +
		"Is this available?"
)

type InquiryService struct {
	baseURL  string
	phone    string
	business string
}

func NewInquiryService(cfg config.InquiryConfig) *InquiryService {
	s := &InquiryService{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		phone:    cfg.Phone,
		business: cfg.Business,
	}
	if s.baseURL == "" {
		s.baseURL = defaultInquiryBaseURL
	}
	if s.business == "" {
		s.business = defaultInquiryBusiness
	}
	return s
}

// Compose fills the fixed message template; empty fields stay empty.
func (s *InquiryService) Compose(req InquiryRequest) models.Inquiry {
	msg := fmt.Sprintf(inquiryTemplate, s.business, req.Brand, req.Model, req.Service, req.Price)
	return models.Inquiry{
		Message: msg,
		URL:     s.baseURL + "/" + s.phone + "?text=" + encodeURIComponent(msg),
	}
}

// uriComponentUnescaper undoes the QueryEscape escapes that URI-component
// encoding leaves literal.
var uriComponentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent percent-encodes s for a query value, spaces as %20 and
// !'()* kept literal.
func encodeURIComponent(s string) string {
	return uriComponentUnescaper.Replace(url.QueryEscape(s))
}
