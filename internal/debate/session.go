// internal/debate/session.go
package debate

import "time"

// All session-relative labels are computed against one reference timezone
// so that the same timestamp always yields the same narrative.
const referenceTimezone = "Asia/Seoul"

// usClosedStartHour..usClosedEndHour is the local window during which US
// exchanges are closed (06:00 to 22:00 KST covers the gap between the US
// close and the next US open, across both DST regimes).
const (
	usClosedStartHour = 6
	usClosedEndHour   = 22
)

// Session carries the time-of-day facts the script generator needs.
type Session struct {
	Date     time.Time
	USClosed bool
}

// NewSession converts the data timestamp into the reference timezone and
// buckets it into the open or closed US-market window.
func NewSession(t time.Time) Session {
	loc, err := time.LoadLocation(referenceTimezone)
	if err != nil {
		loc = time.FixedZone("KST", 9*60*60)
	}
	local := t.In(loc)
	h := local.Hour()

	return Session{
		Date:     local,
		USClosed: h >= usClosedStartHour && h < usClosedEndHour,
	}
}

// MarketLabel says whether the US figures under discussion are live or
// from the previous session.
func (s Session) MarketLabel() string {
	if s.USClosed {
		return "last night's US close"
	}
	return "live US trading"
}

// DateLabel is the session date shown in the opening line.
func (s Session) DateLabel() string {
	return s.Date.Format("January 2, 2006")
}
