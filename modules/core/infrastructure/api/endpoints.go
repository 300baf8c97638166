package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterSuperAdminRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

type CreateAdminRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}

type UpdateUserRequest struct {
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	BatchID           string   `json:"batchId"`
	Department        string   `json:"department"`
	RollNumber        string   `json:"rollNumber"`
	Semester          int      `json:"semester"`
	Institution       string   `json:"institution"`
	FatherName        string   `json:"fatherName"`
	Address           *Address `json:"address,omitempty"`
	PaymentStatus     bool     `json:"paymentStatus"`
	ActiveStatus      bool     `json:"activeStatus"`
	CourseCreditScore int      `json:"courseCreditScore"`
	Grade             string   `json:"grade"`
	Role              string   `json:"role"`
}

type CreateServiceRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Duration    int      `json:"duration"`
	IsActive    bool     `json:"isActive"`
	Category    string   `json:"category"`
	Features    []string `json:"features"`
}

type CreateBatchRequest struct {
	BatchID          string           `json:"batchId"`
	ProgramName      string           `json:"programName"`
	CourseCredit     int              `json:"courseCredit"`
	Services         []string         `json:"services"`
	Duration         string           `json:"duration"`
	StartDate        string           `json:"startDate"`
	EndDate          string           `json:"endDate"`
	Year             int              `json:"year"`
	TotalFee         float64          `json:"totalFee"`
	AttendancePolicy AttendancePolicy `json:"attendancePolicy"`
}

func (c *Client) Login(ctx context.Context, req *LoginRequest) (*LoginData, error) {
	var data LoginData
	if err := c.do(ctx, http.MethodPost, "/auth/login-with-password", "", req, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) RegisterSuperAdmin(ctx context.Context, req *RegisterSuperAdminRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register-super-admin", "", req, nil)
}

func (c *Client) CreateAdmin(ctx context.Context, token string, req *CreateAdminRequest) error {
	return c.do(ctx, http.MethodPost, "/admin", token, req, nil)
}

func (c *Client) Dashboard(ctx context.Context, token string) (*DashboardStats, error) {
	var data DashboardStats
	if err := c.do(ctx, http.MethodGet, "/admin/dashboard", token, nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Users returns the whole user collection; the upstream pagination
// block is ignored because list screens page client side.
func (c *Client) Users(ctx context.Context, token string) ([]User, error) {
	var data struct {
		Users []User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/users", token, nil, &data); err != nil {
		return nil, err
	}
	return data.Users, nil
}

func (c *Client) User(ctx context.Context, token, id string) (*User, error) {
	var data struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), token, nil, &data); err != nil {
		return nil, err
	}
	if data.User == nil {
		return nil, &Error{Status: http.StatusOK, Message: GenericErrorMessage}
	}
	return data.User, nil
}

func (c *Client) UpdateUser(ctx context.Context, token, id string, req *UpdateUserRequest) error {
	return c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(id), token, req, nil)
}

func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), token, nil, nil)
}

type ServiceFilter struct {
	Category string
	IsActive bool
}

func (c *Client) Services(ctx context.Context, token string, filter *ServiceFilter) ([]Service, error) {
	values := url.Values{}
	if filter != nil {
		values.Set("category", filter.Category)
		values.Set("isActive", strconv.FormatBool(filter.IsActive))
	}
	var services []Service
	if err := c.do(ctx, http.MethodGet, withQuery("/services", values), token, nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) CreateService(ctx context.Context, token string, req *CreateServiceRequest) error {
	return c.do(ctx, http.MethodPost, "/services", token, req, nil)
}

func (c *Client) DeleteService(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/services/"+url.PathEscape(id), token, nil, nil)
}

type BatchFilter struct {
	Status string
	Year   int
}

func (c *Client) Batches(ctx context.Context, token string, filter *BatchFilter) ([]Batch, error) {
	values := url.Values{}
	if filter != nil {
		values.Set("status", filter.Status)
		values.Set("year", strconv.Itoa(filter.Year))
	}
	var batches []Batch
	if err := c.do(ctx, http.MethodGet, withQuery("/batches", values), token, nil, &batches); err != nil {
		return nil, err
	}
	return batches, nil
}

func (c *Client) CreateBatch(ctx context.Context, token string, req *CreateBatchRequest) error {
	return c.do(ctx, http.MethodPost, "/batches", token, req, nil)
}

func (c *Client) DeleteBatch(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/batches/"+url.PathEscape(id), token, nil, nil)
}

func (c *Client) AssignStudent(ctx context.Context, token, batchID, userID string) error {
	path := "/batches/" + url.PathEscape(batchID) + "/students/" + url.PathEscape(userID)
	return c.do(ctx, http.MethodPost, path, token, nil, nil)
}

func (c *Client) RemoveStudent(ctx context.Context, token, batchID, userID string) error {
	path := "/batches/" + url.PathEscape(batchID) + "/students/" + url.PathEscape(userID)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}
