package cron

import (
	"context"
	"time"
)

// HolidayRefresher reloads the cached holiday list.
type HolidayRefresher interface {
	Refresh(ctx context.Context) error
}

// HolidayJobs keeps the holiday cache warm so requests rarely hit upstream.
type HolidayJobs struct {
	refresher HolidayRefresher
	interval  time.Duration
	timeout   time.Duration
}

func NewHolidayJobs(refresher HolidayRefresher, interval, timeout time.Duration) *HolidayJobs {
	return &HolidayJobs{refresher: refresher, interval: interval, timeout: timeout}
}

// RegisterJobs registers refresh_holidays. A zero interval disables it.
func (j *HolidayJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("refresh_holidays", j.interval, j.RefreshHolidays)
}

func (j *HolidayJobs) RefreshHolidays(ctx context.Context) error {
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}
	return j.refresher.Refresh(ctx)
}
