package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swrzee/console/modules/core/infrastructure/api"
	"github.com/swrzee/console/modules/dashboard/services"
)

func payment(amount float64, status string, when time.Time) api.Payment {
	return api.Payment{
		ID:        "p-" + when.Format("20060102"),
		Amount:    decimal.NewFromFloat(amount),
		Status:    status,
		CreatedAt: when,
	}
}

func TestBuildPaymentSeries_FourteenDayWindow(t *testing.T) {
	now := time.Date(2025, 8, 30, 15, 30, 0, 0, time.UTC)

	payments := []api.Payment{
		payment(100, "success", now.AddDate(0, 0, -1)),
		payment(50, "success", now.AddDate(0, 0, -1)),
		payment(25, "failed", now.AddDate(0, 0, -3)),
		// Outside the window, must be dropped.
		payment(999, "success", now.AddDate(0, 0, -20)),
	}

	series := services.BuildPaymentSeries(payments, now)

	success := series[services.StatusSuccess]
	failed := series[services.StatusFailed]
	require.Len(t, success, 14)
	require.Len(t, failed, 14)

	assert.Equal(t, "2025-08-17", success[0].Date, "series starts 13 days back")
	assert.Equal(t, "2025-08-30", success[13].Date)

	assert.Equal(t, "150", success[12].Amount.String(), "two success payments a day earlier")
	assert.Equal(t, "25", failed[10].Amount.String())
	assert.Equal(t, "0", success[0].Amount.String())
}

func TestBuildPaymentSeries_PaymentDatePreferred(t *testing.T) {
	now := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)
	paid := now.AddDate(0, 0, -2)

	p := payment(40, "success", now.AddDate(0, 0, -30))
	p.PaymentDate = &paid

	series := services.BuildPaymentSeries([]api.Payment{p}, now)
	assert.Equal(t, "40", series[services.StatusSuccess][11].Amount.String())
}

func TestMapPaymentStatus(t *testing.T) {
	assert.Equal(t, services.StatusSuccess, services.MapPaymentStatus("SUCCESS"))
	assert.Equal(t, services.StatusSuccess, services.MapPaymentStatus("success"))
	assert.Equal(t, services.StatusFailed, services.MapPaymentStatus("failed"))
	assert.Equal(t, services.StatusFailed, services.MapPaymentStatus("failure"))
	assert.Equal(t, services.StatusFailed, services.MapPaymentStatus("error"))
	assert.Equal(t, services.StatusFailed, services.MapPaymentStatus("pending"), "unknown statuses count as failed")
	assert.Equal(t, services.StatusFailed, services.MapPaymentStatus(""))
}

func TestCountUsers(t *testing.T) {
	users := []api.User{
		{UserID: "USER175"},
		{UserID: "USER176"},
		{UserID: "ADMIN001"},
		{UserID: "SADMIN001"},
	}
	breakdown := services.CountUsers(users)
	assert.Equal(t, 4, breakdown.Total)
	assert.Equal(t, 2, breakdown.Regular)
	assert.Equal(t, 1, breakdown.Admins)
	assert.Equal(t, 1, breakdown.SuperAdmins)

	assert.False(t, services.IsAdministrative(users[0]))
	assert.True(t, services.IsAdministrative(users[2]))
	assert.True(t, services.IsAdministrative(users[3]))
}
