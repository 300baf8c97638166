package mappers

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/swrzee/console/modules/core/infrastructure/api"
)

func TestBatchDuration(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  string
	}{
		{"three full months", day(2025, 1, 1), day(2025, 4, 1), "3 months"},
		{"partial month rounds up", day(2025, 1, 1), day(2025, 4, 15), "4 months"},
		{"single month", day(2025, 1, 1), day(2025, 2, 1), "1 month"},
		{"under a month falls back to days", day(2025, 1, 1), day(2025, 1, 11), "10 days"},
		{"across a year boundary", day(2024, 11, 1), day(2025, 5, 1), "6 months"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, BatchDuration(tc.start, tc.end))
		})
	}
}

func TestUserToViewModel(t *testing.T) {
	created := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	u := api.User{
		ID:            "abc",
		UserID:        "USER175",
		FirstName:     " Ritika",
		LastName:      "Deb ",
		Email:         "ritika@example.com",
		PaymentStatus: true,
		Semester:      4,
		Address:       &api.Address{City: "Shillong", State: "Meghalaya"},
		AttendanceStats: &api.AttendanceStats{
			Percentage: 87.5,
		},
		CreatedAt: &created,
	}

	vm := UserToViewModel(u)
	require.Equal(t, "Ritika Deb", vm.Name)
	require.Equal(t, "Paid", vm.PaymentStatus)
	require.Equal(t, "Inactive", vm.ActiveStatus)
	require.Equal(t, "4", vm.Semester)
	require.Equal(t, "Shillong, Meghalaya", vm.Address)
	require.Equal(t, "87.5%", vm.AttendanceLabel)
	require.Equal(t, "Mar 10, 2025", vm.Created)
	require.False(t, vm.IsAdministrative)

	require.True(t, UserToViewModel(api.User{UserID: "SADMIN001"}).IsAdministrative)
}

func TestBatchToViewModel(t *testing.T) {
	b := api.Batch{
		ID:          "b1",
		BatchID:     "BATCH-2025-01",
		ProgramName: "Skill Development",
		Services: []api.BatchService{
			{ServiceName: "Course"},
			{ServiceName: "Hostel"},
		},
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		TotalFee:  decimal.NewFromInt(15000),
		Students:  []string{"u1", "u2", "u3"},
	}

	vm := BatchToViewModel(b)
	require.Equal(t, "3 months", vm.Duration)
	require.Equal(t, "₹15000", vm.TotalFee)
	require.Equal(t, 3, vm.StudentCount)
	require.Equal(t, []string{"Course", "Hostel"}, vm.Services)
	require.Equal(t, "Jan 1, 2025", vm.StartDate)
}

func TestUserToViewModel_NameTrim(t *testing.T) {
	vm := UserToViewModel(api.User{FirstName: "Solo"})
	require.Equal(t, "Solo", vm.Name)
}
