package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/swrzee/console/modules/core/infrastructure/api"
	"github.com/swrzee/console/pkg/constants"
)

var fieldLabels = map[string]string{
	"Name":          "Service name",
	"Description":   "Description",
	"Price":         "Price",
	"Duration":      "Duration",
	"Features":      "Features",
	"BatchID":       "Batch ID",
	"ProgramName":   "Program name",
	"CourseCredit":  "Course credit",
	"StartDate":     "Start date",
	"EndDate":       "End date",
	"Year":          "Year",
	"TotalFee":      "Total fee",
	"MinPercentage": "Minimum attendance",
	"GraceDays":     "Grace days",
	"FirstName":     "First name",
	"LastName":      "Last name",
}

func validationMessages(v interface{}) (map[string]string, bool) {
	errs := constants.Validate.Struct(v)
	if errs == nil {
		return map[string]string{}, true
	}
	errorMessages := map[string]string{}
	for _, err := range errs.(validator.ValidationErrors) {
		errorMessages[err.Field()] = messageFor(err)
	}
	return errorMessages, false
}

func messageFor(err validator.FieldError) string {
	label, ok := fieldLabels[err.Field()]
	if !ok {
		label = err.Field()
	}
	switch err.Tag() {
	case "required":
		return label + " is required"
	case "min":
		if _, convErr := strconv.Atoi(err.Param()); convErr == nil && err.Kind().String() == "string" {
			return label + " must be at least " + err.Param() + " characters"
		}
		return label + " must be at least " + err.Param()
	case "gte":
		return label + " cannot be negative"
	default:
		return label + " is invalid"
	}
}

type ServiceDTO struct {
	Name        string  `validate:"required"`
	Description string  `validate:"required,min=10"`
	Price       float64 `validate:"gte=0"`
	Duration    int     `validate:"required,min=1"`
	Features    string
	IsActive    bool
}

// Ok validates the form, including the feature lines the struct tags
// cannot see.
func (d *ServiceDTO) Ok() (map[string]string, bool) {
	errorsMap, _ := validationMessages(d)
	if len(d.FeatureList()) == 0 {
		errorsMap["Features"] = "At least one feature is required"
	}
	return errorsMap, len(errorsMap) == 0
}

// FeatureList splits the textarea into non-blank features.
func (d *ServiceDTO) FeatureList() []string {
	out := make([]string, 0, 4)
	for _, line := range strings.Split(d.Features, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func (d *ServiceDTO) Values() map[string]string {
	values := map[string]string{
		"Name":        d.Name,
		"Description": d.Description,
		"Features":    d.Features,
		"IsActive":    strconv.FormatBool(d.IsActive),
	}
	if d.Price != 0 {
		values["Price"] = strconv.FormatFloat(d.Price, 'f', -1, 64)
	}
	if d.Duration != 0 {
		values["Duration"] = strconv.Itoa(d.Duration)
	}
	return values
}

func (d *ServiceDTO) ToRequest() *api.CreateServiceRequest {
	return &api.CreateServiceRequest{
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Duration:    d.Duration,
		IsActive:    d.IsActive,
		Category:    "Course",
		Features:    d.FeatureList(),
	}
}

type BatchDTO struct {
	BatchID       string `validate:"required"`
	ProgramName   string `validate:"required"`
	CourseCredit  int    `validate:"required,min=1"`
	Services      []string
	StartDate     string `validate:"required"`
	EndDate       string `validate:"required"`
	Year          int    `validate:"required"`
	TotalFee      float64
	MinPercentage int
	GraceDays     int
}

func (d *BatchDTO) Ok() (map[string]string, bool) {
	errorsMap, _ := validationMessages(d)
	start, startErr := time.Parse("2006-01-02", d.StartDate)
	if d.StartDate != "" && startErr != nil {
		errorsMap["StartDate"] = "Start date is invalid"
	}
	end, endErr := time.Parse("2006-01-02", d.EndDate)
	if d.EndDate != "" && endErr != nil {
		errorsMap["EndDate"] = "End date is invalid"
	}
	if startErr == nil && endErr == nil && d.StartDate != "" && d.EndDate != "" && !end.After(start) {
		errorsMap["EndDate"] = "End date must be after the start date"
	}
	if d.TotalFee <= 0 {
		errorsMap["TotalFee"] = "Total fee is required"
	}
	if len(d.Services) == 0 {
		errorsMap["Services"] = "Select at least one service"
	}
	return errorsMap, len(errorsMap) == 0
}

func (d *BatchDTO) Values() map[string]string {
	values := map[string]string{
		"BatchID":     d.BatchID,
		"ProgramName": d.ProgramName,
		"StartDate":   d.StartDate,
		"EndDate":     d.EndDate,
	}
	for name, n := range map[string]int{
		"CourseCredit":  d.CourseCredit,
		"Year":          d.Year,
		"MinPercentage": d.MinPercentage,
		"GraceDays":     d.GraceDays,
	} {
		if n != 0 {
			values[name] = strconv.Itoa(n)
		}
	}
	if d.TotalFee != 0 {
		values["TotalFee"] = strconv.FormatFloat(d.TotalFee, 'f', -1, 64)
	}
	return values
}

func (d *BatchDTO) Selected() map[string]bool {
	selected := make(map[string]bool, len(d.Services))
	for _, id := range d.Services {
		selected[id] = true
	}
	return selected
}

func (d *BatchDTO) ToRequest() *api.CreateBatchRequest {
	start, _ := time.Parse("2006-01-02", d.StartDate)
	end, _ := time.Parse("2006-01-02", d.EndDate)
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 1 {
		months = 1
	}
	return &api.CreateBatchRequest{
		BatchID:      d.BatchID,
		ProgramName:  d.ProgramName,
		CourseCredit: d.CourseCredit,
		Services:     d.Services,
		Duration:     strconv.Itoa(months) + " months",
		StartDate:    d.StartDate,
		EndDate:      d.EndDate,
		Year:         d.Year,
		TotalFee:     d.TotalFee,
		AttendancePolicy: api.AttendancePolicy{
			MinPercentage: d.MinPercentage,
			GraceDays:     d.GraceDays,
		},
	}
}

type UserEditDTO struct {
	FirstName         string `validate:"required"`
	LastName          string `validate:"required"`
	BatchID           string
	Department        string
	RollNumber        string
	Semester          int
	Institution       string
	FatherName        string
	CourseCreditScore int
	Grade             string
	PaymentStatus     bool
	ActiveStatus      bool
}

func (d *UserEditDTO) Ok() (map[string]string, bool) {
	return validationMessages(d)
}

func (d *UserEditDTO) Values() map[string]string {
	values := map[string]string{
		"FirstName":     d.FirstName,
		"LastName":      d.LastName,
		"BatchID":       d.BatchID,
		"Department":    d.Department,
		"RollNumber":    d.RollNumber,
		"Institution":   d.Institution,
		"FatherName":    d.FatherName,
		"Grade":         d.Grade,
		"PaymentStatus": strconv.FormatBool(d.PaymentStatus),
		"ActiveStatus":  strconv.FormatBool(d.ActiveStatus),
	}
	if d.Semester != 0 {
		values["Semester"] = strconv.Itoa(d.Semester)
	}
	if d.CourseCreditScore != 0 {
		values["CourseCreditScore"] = strconv.Itoa(d.CourseCreditScore)
	}
	return values
}

// ToRequest keeps the fields the edit form does not expose from the
// fetched user so the upstream replace-style update loses nothing.
func (d *UserEditDTO) ToRequest(current *api.User) *api.UpdateUserRequest {
	return &api.UpdateUserRequest{
		FirstName:         d.FirstName,
		LastName:          d.LastName,
		BatchID:           d.BatchID,
		Department:        d.Department,
		RollNumber:        d.RollNumber,
		Semester:          d.Semester,
		Institution:       d.Institution,
		FatherName:        d.FatherName,
		Address:           current.Address,
		PaymentStatus:     d.PaymentStatus,
		ActiveStatus:      d.ActiveStatus,
		CourseCreditScore: d.CourseCreditScore,
		Grade:             d.Grade,
		Role:              current.Role,
	}
}

type AssignDTO struct {
	BatchID string `validate:"required"`
}

func (d *AssignDTO) Ok() (map[string]string, bool) {
	return validationMessages(d)
}
