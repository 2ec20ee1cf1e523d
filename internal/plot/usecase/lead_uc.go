package usecase

import (
	"context"
	"net/url"
	"time"

	"github.com/muthomi-ke/land-platform/internal/platform/logger"
	"github.com/muthomi-ke/land-platform/internal/plot/domain"
)

const SubjectLeadCreated = "leads.created"

const leadTimeout = 10 * time.Second

// LeadUsecase records buyer interest. Recording is explicitly best-effort:
// it must never block or delay the contact action it rides on, so the write
// happens in the background and every failure is swallowed after logging.
type LeadUsecase struct {
	leads     domain.LeadRepository
	publisher Publisher
	logger    *logger.Logger
}

func NewLeadUsecase(leads domain.LeadRepository, publisher Publisher, log *logger.Logger) *LeadUsecase {
	return &LeadUsecase{leads: leads, publisher: publisher, logger: log}
}

// Record captures a lead in the background and returns immediately.
func (uc *LeadUsecase) Record(plotID, sellerID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), leadTimeout)
		defer cancel()

		if uc.leads == nil {
			uc.logger.Debug("LeadUsecase.Record: gateway not configured, lead dropped", "plot_id", plotID)
			return
		}

		lead := &domain.Lead{PlotID: plotID, SellerID: sellerID}
		if err := uc.leads.Create(ctx, lead); err != nil {
			uc.logger.Warn("LeadUsecase.Record: lead insert failed", "plot_id", plotID, "error", err.Error())
			return
		}
		if uc.publisher != nil {
			if err := uc.publisher.Publish(ctx, SubjectLeadCreated, lead); err != nil {
				uc.logger.Warn("LeadUsecase.Record: event publish failed", "lead_id", lead.ID, "error", err.Error())
			}
		}
	}()
}

// WhatsAppLink builds the outbound chat link for a plot's seller. Returns
// false when the plot has no contact phone.
func WhatsAppLink(plot *domain.Plot) (string, bool) {
	var digits []byte
	for i := 0; i < len(plot.OwnerPhone); i++ {
		if plot.OwnerPhone[i] >= '0' && plot.OwnerPhone[i] <= '9' {
			digits = append(digits, plot.OwnerPhone[i])
		}
	}
	if len(digits) == 0 {
		return "", false
	}
	msg := "I_am_interested_in_[" + plot.Name + "]"
	return "https://wa.me/" + string(digits) + "?text=" + url.QueryEscape(msg), true
}
