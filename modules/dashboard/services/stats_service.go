package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/swrzee/console/modules/core/infrastructure/api"
)

const seriesDays = 14

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

type SeriesPoint struct {
	Date   string
	Day    int
	Amount decimal.Decimal
}

// PaymentSeries buckets recent payment volume per day and status,
// keyed by StatusSuccess and StatusFailed.
type PaymentSeries map[string][]SeriesPoint

// BuildPaymentSeries sums payment amounts per UTC day over the last 14
// days ending at now. Payments dated outside the window are dropped,
// and any status that is not a success variant counts as failed.
func BuildPaymentSeries(payments []api.Payment, now time.Time) PaymentSeries {
	series := PaymentSeries{
		StatusSuccess: make([]SeriesPoint, 0, seriesDays),
		StatusFailed:  make([]SeriesPoint, 0, seriesDays),
	}
	totals := map[string]map[string]decimal.Decimal{
		StatusSuccess: {},
		StatusFailed:  {},
	}

	end := now.UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -(seriesDays - 1))

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		totals[StatusSuccess][key] = decimal.Zero
		totals[StatusFailed][key] = decimal.Zero
	}

	for _, payment := range payments {
		when := payment.CreatedAt
		if payment.PaymentDate != nil {
			when = *payment.PaymentDate
		}
		if when.IsZero() {
			continue
		}
		key := when.UTC().Format("2006-01-02")
		status := MapPaymentStatus(payment.Status)
		if _, inWindow := totals[status][key]; !inWindow {
			continue
		}
		totals[status][key] = totals[status][key].Add(payment.Amount)
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		for _, status := range []string{StatusSuccess, StatusFailed} {
			series[status] = append(series[status], SeriesPoint{
				Date:   key,
				Day:    day.Day(),
				Amount: totals[status][key],
			})
		}
	}
	return series
}

type UserBreakdown struct {
	Total       int
	Regular     int
	Admins      int
	SuperAdmins int
}

// CountUsers splits the user collection by the administrative markers
// embedded in the business user ID.
func CountUsers(users []api.User) UserBreakdown {
	breakdown := UserBreakdown{Total: len(users)}
	for _, u := range users {
		switch {
		case strings.Contains(u.UserID, "SADMIN"):
			breakdown.SuperAdmins++
		case strings.Contains(u.UserID, "ADMIN"):
			breakdown.Admins++
		default:
			breakdown.Regular++
		}
	}
	return breakdown
}

// IsAdministrative reports whether a user is hidden from the list by
// default.
func IsAdministrative(u api.User) bool {
	return strings.Contains(u.UserID, "ADMIN") || strings.Contains(u.UserID, "SADMIN")
}

// MapPaymentStatus folds upstream status strings onto the two chart
// buckets. Anything unrecognized is treated as a failure.
func MapPaymentStatus(raw string) string {
	switch strings.ToLower(raw) {
	case "success":
		return StatusSuccess
	default:
		return StatusFailed
	}
}
