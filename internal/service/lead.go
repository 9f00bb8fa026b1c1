package service

import (
	"context"
	"errors"
	"html"
	"strings"
	"time"

	"storefront/internal/logger"
	"storefront/internal/models"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

var ErrLeadIncomplete = errors.New("name, address and phone are required")

type LeadService struct {
	log    *logger.Logger
	policy *bluemonday.Policy
	now    func() time.Time
}

func NewLeadService(log *logger.Logger) *LeadService {
	return &LeadService{log: log, policy: bluemonday.StrictPolicy(), now: time.Now}
}

// Capture records a lead. Nothing is stored or sent anywhere: the lead is
// written to the log and returned with its id.
func (s *LeadService) Capture(ctx context.Context, lead models.Lead) (models.Lead, error) {
	lead.Name = s.clean(lead.Name)
	lead.Shop = s.clean(lead.Shop)
	lead.Address = s.clean(lead.Address)
	lead.Phone = s.clean(lead.Phone)
	if lead.Shop == "" {
		lead.Shop = models.DefaultShop
	}
	if lead.Name == "" || lead.Address == "" || lead.Phone == "" {
		return models.Lead{}, ErrLeadIncomplete
	}

	lead.ID = uuid.NewString()
	lead.CapturedAt = s.now().UTC()

	if s.log != nil {
		s.log.Infow("lead_captured",
			"lead_id", lead.ID,
			"name", lead.Name,
			"shop", lead.Shop,
			"address", lead.Address,
			"phone", lead.Phone,
		)
	}
	return lead, nil
}

// clean strips markup and surrounding whitespace from user input, keeping
// plain-text characters such as "&" as typed.
func (s *LeadService) clean(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(v)))
}
