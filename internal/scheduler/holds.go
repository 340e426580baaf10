package scheduler

import (
	"context"
	"time"
)

// HoldExpiryJobName имя задачи отмены просроченных неоплаченных бронирований
const HoldExpiryJobName = "expire_payment_holds"

// HoldExpirer отменяет неоплаченные бронирования старше ttl
type HoldExpirer interface {
	ExpireStaleHolds(ctx context.Context, ttl time.Duration) (int64, error)
}

// RegisterHoldExpiry регистрирует периодическую отмену неоплаченных бронирований.
// Каждый запуск ограничен по времени половиной интервала.
func RegisterHoldExpiry(s *Scheduler, expirer HoldExpirer, ttl, interval time.Duration) error {
	timeout := interval / 2
	if timeout < time.Second {
		timeout = time.Second
	}

	return s.AddIntervalJob(HoldExpiryJobName, interval, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		n, err := expirer.ExpireStaleHolds(ctx, ttl)
		if err != nil {
			s.logger.Error("Scheduler: %s failed: %v", HoldExpiryJobName, err)
			return
		}
		if n > 0 {
			s.logger.Warn("Scheduler: %s cancelled %d unpaid reservations", HoldExpiryJobName, n)
		}
	})
}
