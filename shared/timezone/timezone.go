package timezone

import (
	"fmt"
	"reziro/shared/constant"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var appLocation atomic.Pointer[time.Location]

// Configure sets the application timezone from an IANA name such as
// "Asia/Jerusalem". An empty name means UTC. An unknown name keeps UTC and
// returns the lookup error.
func Configure(name string) error {
	if name == constant.Empty {
		log.Warn().Msg("No timezone configured, using UTC")
		appLocation.Store(time.UTC)

		return nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		appLocation.Store(time.UTC)

		return fmt.Errorf("unknown timezone %q: %w", name, err)
	}

	appLocation.Store(loc)
	log.Info().Str("timezone", loc.String()).Msg("Application timezone set")

	return nil
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// NowUTC is the clock used for stored timestamps: UTC, millisecond precision.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// GetLocation returns the application timezone; UTC until Configure runs.
func GetLocation() *time.Location {
	if loc := appLocation.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// Today is the hotel's local calendar date as YYYY-MM-DD.
func Today() string {
	return Now().Format(constant.DateOnlyFormat)
}

// CurrentMonthKey is the hotel's local month as YYYY-MM.
func CurrentMonthKey() string {
	return Now().Format(constant.MonthKeyFormat)
}
