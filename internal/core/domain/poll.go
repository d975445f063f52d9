package domain

import (
	"time"
)

// MaxTitleLength is the widest title the poll table accepts.
const MaxTitleLength = 80

type Poll struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Options   []Option  `json:"options"`
	CreatedAt time.Time `json:"created_at"`
}

type Option struct {
	ID     int64 `json:"id"`
	PollID int64 `json:"poll_id"`
}

// OptionAt returns the option at the zero-based position index, in
// the order the options were stored.
func (p *Poll) OptionAt(index int) (Option, bool) {
	if index < 0 || index >= len(p.Options) {
		return Option{}, false
	}
	return p.Options[index], true
}
