package mappers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/swrzee/console/modules/core/infrastructure/api"
	"github.com/swrzee/console/modules/dashboard/presentation/viewmodels"
	"github.com/swrzee/console/modules/dashboard/services"
)

const dateLayout = "Jan 2, 2006"

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func FormatMoney(amount decimal.Decimal) string {
	return "₹" + amount.String()
}

// BatchDuration renders the span between two dates as whole months,
// rounding partial months up; spans shorter than a month fall back to days.
func BatchDuration(start, end time.Time) string {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() > start.Day() {
		months++
	}
	switch {
	case months <= 0:
		days := int(math.Ceil(end.Sub(start).Hours() / 24))
		return fmt.Sprintf("%d days", days)
	case months == 1:
		return "1 month"
	default:
		return fmt.Sprintf("%d months", months)
	}
}

func UserToViewModel(u api.User) viewmodels.User {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	paymentStatus := "Pending"
	if u.PaymentStatus {
		paymentStatus = "Paid"
	}
	activeStatus := "Inactive"
	if u.ActiveStatus {
		activeStatus = "Active"
	}
	semester := ""
	if u.Semester > 0 {
		semester = strconv.Itoa(u.Semester)
	}
	score := ""
	if u.CourseCreditScore > 0 {
		score = strconv.Itoa(u.CourseCreditScore)
	}
	address := ""
	if u.Address != nil {
		parts := make([]string, 0, 4)
		for _, p := range []string{u.Address.Street, u.Address.City, u.Address.State, u.Address.Pincode} {
			if strings.TrimSpace(p) != "" {
				parts = append(parts, strings.TrimSpace(p))
			}
		}
		address = strings.Join(parts, ", ")
	}
	attendance := ""
	if u.AttendanceStats != nil {
		attendance = fmt.Sprintf("%.1f%%", u.AttendanceStats.Percentage)
	}
	lastLogin := ""
	if len(u.LastLogin) > 0 {
		lastLogin = FormatDate(u.LastLogin[len(u.LastLogin)-1].Timestamp)
	}
	created := ""
	if u.CreatedAt != nil {
		created = FormatDate(*u.CreatedAt)
	}
	return viewmodels.User{
		ID:                u.ID,
		UserID:            u.UserID,
		Name:              name,
		Email:             u.Email,
		PhoneNumber:       u.PhoneNumber,
		Role:              u.Role,
		PaymentStatus:     paymentStatus,
		ActiveStatus:      activeStatus,
		BatchID:           u.BatchID,
		Department:        u.Department,
		RollNumber:        u.RollNumber,
		Semester:          semester,
		Institution:       u.Institution,
		FatherName:        u.FatherName,
		Grade:             u.Grade,
		CourseCreditScore: score,
		Address:           address,
		AttendanceLabel:   attendance,
		LastLogin:         lastLogin,
		Created:           created,
		IsAdministrative:  services.IsAdministrative(u),
	}
}

func UsersToViewModels(users []api.User) []viewmodels.User {
	out := make([]viewmodels.User, 0, len(users))
	for _, u := range users {
		out = append(out, UserToViewModel(u))
	}
	return out
}

func UserStatsToViewModel(b services.UserBreakdown) viewmodels.UserStats {
	return viewmodels.UserStats{
		Total:       b.Total,
		Regular:     b.Regular,
		Admins:      b.Admins,
		SuperAdmins: b.SuperAdmins,
	}
}

func ServiceToViewModel(s api.Service) viewmodels.Service {
	duration := ""
	if s.Duration > 0 {
		unit := s.Unit
		if unit == "" {
			unit = "months"
		}
		duration = fmt.Sprintf("%d %s", s.Duration, unit)
	}
	return viewmodels.Service{
		ID:           s.ID,
		Name:         s.ServiceName,
		Description:  s.Description,
		Price:        FormatMoney(s.Price),
		Duration:     duration,
		Active:       s.Active,
		OptionsTitle: s.DropdownOptions.Title,
		Options:      s.DropdownOptions.Options,
	}
}

func ServicesToViewModels(items []api.Service) []viewmodels.Service {
	out := make([]viewmodels.Service, 0, len(items))
	for _, s := range items {
		out = append(out, ServiceToViewModel(s))
	}
	return out
}

func BatchToViewModel(b api.Batch) viewmodels.Batch {
	names := make([]string, 0, len(b.Services))
	for _, s := range b.Services {
		names = append(names, s.ServiceName)
	}
	return viewmodels.Batch{
		ID:            b.ID,
		BatchID:       b.BatchID,
		ProgramName:   b.ProgramName,
		CourseCredit:  b.CourseCredit,
		Duration:      BatchDuration(b.StartDate, b.EndDate),
		StartDate:     FormatDate(b.StartDate),
		EndDate:       FormatDate(b.EndDate),
		Status:        b.Status,
		Year:          b.Year,
		TotalFee:      FormatMoney(b.TotalFee),
		StudentCount:  len(b.Students),
		Services:      names,
		MinAttendance: b.AttendancePolicy.MinPercentage,
		GraceDays:     b.AttendancePolicy.GraceDays,
	}
}

func BatchesToViewModels(items []api.Batch) []viewmodels.Batch {
	out := make([]viewmodels.Batch, 0, len(items))
	for _, b := range items {
		out = append(out, BatchToViewModel(b))
	}
	return out
}

// OverviewToViewModel flattens the two payment buckets into per-day rows;
// both slices come zero-filled and aligned from BuildPaymentSeries.
func OverviewToViewModel(stats api.DashboardStats, series services.PaymentSeries) viewmodels.Overview {
	success := series[services.StatusSuccess]
	failed := series[services.StatusFailed]
	rows := make([]viewmodels.SeriesRow, 0, len(success))
	for i, point := range success {
		row := viewmodels.SeriesRow{
			Day:     point.Day,
			Date:    point.Date,
			Success: point.Amount.String(),
		}
		if i < len(failed) {
			row.Failed = failed[i].Amount.String()
		}
		rows = append(rows, row)
	}
	return viewmodels.Overview{
		TotalRevenue:   FormatMoney(stats.FinancialStats.TotalRevenue),
		TotalUsers:     stats.UserStats.Total,
		RecentPayments: len(stats.FinancialStats.RecentPayments),
		Series:         rows,
	}
}
