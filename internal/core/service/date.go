package service

import (
	"time"

	"github.com/pagecraft/blog/internal/core/domain"
)

// SystemDate reads today's date from the local clock.
type SystemDate struct {
	now func() time.Time
}

func NewSystemDate() SystemDate {
	return SystemDate{now: time.Now}
}

func (d SystemDate) Today() domain.CalendarDate {
	now := d.now
	if now == nil {
		now = time.Now
	}
	return domain.DateOf(now())
}
