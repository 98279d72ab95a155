package ports

import "github.com/pagecraft/blog/internal/core/domain"

// DateProvider returns today's calendar date.
type DateProvider interface {
	Today() domain.CalendarDate
}
