package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

const DateLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Clock returns the current time in the shop timezone.
type Clock func() time.Time

func ShopClock(tz string) Clock {
	loc := Location(tz)
	return func() time.Time { return time.Now().In(loc) }
}

// Today formats the clock's current date as YYYY-MM-DD.
func (c Clock) Today() string {
	return c().Format(DateLayout)
}

// ParseDate reads a YYYY-MM-DD date in the clock's timezone.
func (c Clock) ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, c().Location())
}
