package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type Image struct {
	URL          string `json:"url"`
	CloudinaryID string `json:"cloudinaryId"`
}

type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Pincode string `json:"pincode,omitempty"`
}

type AttendanceStats struct {
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Late       int     `json:"late"`
	HalfDay    int     `json:"halfDay"`
	Percentage float64 `json:"percentage"`
}

type LoginEvent struct {
	ID        string    `json:"_id"`
	Timestamp time.Time `json:"timestamp"`
	IP        string    `json:"ip"`
	Device    string    `json:"device"`
}

type PaymentLog struct {
	ID            string          `json:"_id"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	TransactionID string          `json:"transactionId"`
	Status        string          `json:"status"`
}

type User struct {
	ID                string           `json:"_id"`
	UserID            string           `json:"userId"`
	PhoneNumber       string           `json:"phoneNumber"`
	Email             string           `json:"email"`
	FirstName         string           `json:"firstName"`
	LastName          string           `json:"lastName"`
	Role              string           `json:"role"`
	PaymentStatus     bool             `json:"paymentStatus"`
	ActiveStatus      bool             `json:"activeStatus"`
	ProfileImage      Image            `json:"profileImage"`
	BatchID           string           `json:"batchId,omitempty"`
	Department        string           `json:"department,omitempty"`
	RollNumber        string           `json:"rollNumber,omitempty"`
	Semester          int              `json:"semester,omitempty"`
	Institution       string           `json:"institution,omitempty"`
	FatherName        string           `json:"fatherName,omitempty"`
	CourseCreditScore int              `json:"courseCreditScore,omitempty"`
	Grade             string           `json:"grade,omitempty"`
	ProfileComplete   bool             `json:"profileComplete,omitempty"`
	ConsentStatus     bool             `json:"consentStatus,omitempty"`
	Address           *Address         `json:"address,omitempty"`
	AttendanceStats   *AttendanceStats `json:"attendanceStats,omitempty"`
	LastLogin         []LoginEvent     `json:"lastLogin,omitempty"`
	PaymentLogs       []PaymentLog     `json:"paymentLogs,omitempty"`
	CreatedAt         *time.Time       `json:"createdAt,omitempty"`
	UpdatedAt         *time.Time       `json:"updatedAt,omitempty"`
}

type Service struct {
	ID              string          `json:"_id"`
	ServiceName     string          `json:"serviceName"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Duration        int             `json:"duration"`
	Active          bool            `json:"active"`
	Unit            string          `json:"unit,omitempty"`
	DropdownOptions DropdownOptions `json:"dropdownOptions"`
	ImageURL        Image           `json:"imageURL"`
	CreatedAt       *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time      `json:"updatedAt,omitempty"`
}

type DropdownOptions struct {
	Title   string   `json:"title"`
	Options []string `json:"options"`
}

type AttendancePolicy struct {
	MinPercentage int `json:"minPercentage"`
	GraceDays     int `json:"graceDays"`
}

type ClassTiming struct {
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	LateThreshold int    `json:"lateThreshold"`
}

type BatchService struct {
	ID          string `json:"_id"`
	ServiceName string `json:"serviceName"`
	Description string `json:"description"`
}

type Batch struct {
	ID               string           `json:"_id"`
	BatchID          string           `json:"batchId"`
	ProgramName      string           `json:"programName"`
	CourseCredit     int              `json:"courseCredit"`
	Services         []BatchService   `json:"services"`
	Duration         string           `json:"duration"`
	StartDate        time.Time        `json:"startDate"`
	EndDate          time.Time        `json:"endDate"`
	Status           string           `json:"status"`
	Year             int              `json:"year"`
	TotalFee         decimal.Decimal  `json:"totalFee"`
	AttendancePolicy AttendancePolicy `json:"attendancePolicy"`
	ClassTiming      ClassTiming      `json:"classTiming"`
	Students         []string         `json:"students"`
}

type UserRef struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

type Payment struct {
	ID          string          `json:"_id"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	PaymentDate *time.Time      `json:"paymentDate,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UserID      *UserRef        `json:"userId,omitempty"`
}

type UserStats struct {
	Total int `json:"total"`
}

type FinancialStats struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	RecentPayments []Payment       `json:"recentPayments"`
}

type DashboardStats struct {
	UserStats      UserStats      `json:"userStats"`
	FinancialStats FinancialStats `json:"financialStats"`
}

type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type AuthUser struct {
	ID              string `json:"_id"`
	UserID          string `json:"userId"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	PhoneNumber     string `json:"phoneNumber"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	ProfileComplete bool   `json:"profileComplete"`
}

type LoginData struct {
	User   AuthUser `json:"user"`
	Tokens Tokens   `json:"tokens"`
}
