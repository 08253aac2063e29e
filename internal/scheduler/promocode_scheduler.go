package scheduler

import (
	"github.com/robfig/cron/v3"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/service"
	"github.com/sneakersdealer/ds-admin-backend/pkg/logger"
)

// PromocodeScheduler flags promocodes whose end date has passed as
// archived. The flag is informational: name lookups still return
// archived codes and consumers decide how to treat them.
type PromocodeScheduler struct {
	cron             *cron.Cron
	promocodeService service.PromocodeService
}

func NewPromocodeScheduler(promocodeService service.PromocodeService) *PromocodeScheduler {
	return &PromocodeScheduler{
		cron:             cron.New(),
		promocodeService: promocodeService,
	}
}

// Start runs the archival sweep once a day shortly after midnight.
func (s *PromocodeScheduler) Start() error {
	_, err := s.cron.AddFunc("5 0 * * *", func() {
		logger.Info("Starting scheduled promocode expiry sweep", nil)

		count, err := s.promocodeService.ArchiveExpired()
		if err != nil {
			logger.Error("Promocode expiry sweep failed", err)
			return
		}

		logger.Info("Promocode expiry sweep finished", map[string]interface{}{
			"archived": count,
		})
	})

	if err != nil {
		logger.Error("Failed to register promocode expiry job", err)
		return err
	}

	s.cron.Start()
	logger.Info("Promocode scheduler started (daily at 00:05)", nil)

	return nil
}

func (s *PromocodeScheduler) Stop() {
	s.cron.Stop()
	logger.Info("Promocode scheduler stopped", nil)
}
