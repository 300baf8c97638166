package viewmodels

// User is the list/detail rendering of an enrolled account.
type User struct {
	ID                string
	UserID            string
	Name              string
	Email             string
	PhoneNumber       string
	Role              string
	PaymentStatus     string
	ActiveStatus      string
	BatchID           string
	Department        string
	RollNumber        string
	Semester          string
	Institution       string
	FatherName        string
	Grade             string
	CourseCreditScore string
	Address           string
	AttendanceLabel   string
	LastLogin         string
	Created           string
	IsAdministrative  bool
}

type UserStats struct {
	Total       int
	Regular     int
	Admins      int
	SuperAdmins int
}

type Service struct {
	ID           string
	Name         string
	Description  string
	Price        string
	Duration     string
	Active       bool
	OptionsTitle string
	Options      []string
}

type Batch struct {
	ID            string
	BatchID       string
	ProgramName   string
	CourseCredit  int
	Duration      string
	StartDate     string
	EndDate       string
	Status        string
	Year          int
	TotalFee      string
	StudentCount  int
	Services      []string
	MinAttendance int
	GraceDays     int
}

// SeriesRow is one day of the payment chart, both buckets side by side.
type SeriesRow struct {
	Day     int
	Date    string
	Success string
	Failed  string
}

type Overview struct {
	TotalRevenue   string
	TotalUsers     int
	RecentPayments int
	Series         []SeriesRow
}
