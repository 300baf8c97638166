package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swrzee/console/modules/core/infrastructure/api"
)

func newClient(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL, 5*time.Second)
}

func TestClient_Login(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login-with-password", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"message": "Login successful",
			"data": {
				"user": {"_id": "u1", "userId": "ADMIN001", "firstName": "Ada", "lastName": "L", "email": "ada@example.com", "role": "admin"},
				"tokens": {"accessToken": "token-a", "refreshToken": "token-r"}
			}
		}`))
	})

	data, err := client.Login(context.Background(), &api.LoginRequest{Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "token-a", data.Tokens.AccessToken)
	assert.Equal(t, "token-r", data.Tokens.RefreshToken)
	assert.Equal(t, "admin", data.User.Role)
}

func TestClient_LoginFailure_SurfacesServerMessage(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success": false, "message": "Invalid credentials"}`))
	})

	_, err := client.Login(context.Background(), &api.LoginRequest{Email: "x@example.com", Password: "bad"})
	require.Error(t, err)
	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.True(t, apiErr.Unauthorized())
}

func TestClient_SuccessFalseWithOKStatus(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "message": "Batch ID already exists"}`))
	})

	err := client.CreateBatch(context.Background(), "tok", &api.CreateBatchRequest{BatchID: "BATCH2025-04"})
	require.Error(t, err)
	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "Batch ID already exists", apiErr.Message)
}

func TestClient_MalformedBody(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>upstream proxy error</html>`))
	})

	_, err := client.Users(context.Background(), "tok")
	require.Error(t, err)
	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	assert.Equal(t, api.GenericErrorMessage, apiErr.Message)
}

func TestClient_FieldErrors(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{
			"success": false,
			"message": "Validation failed",
			"errors": [
				{"path": "serviceName", "message": "Service name is required"},
				{"path": "price", "message": "Price cannot be negative"}
			]
		}`))
	})

	err := client.CreateService(context.Background(), "tok", &api.CreateServiceRequest{})
	require.Error(t, err)
	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "Service name is required", apiErr.Fields["serviceName"])
	assert.Equal(t, "Price cannot be negative", apiErr.Fields["price"])
}

func TestClient_Users_SendsBearerToken(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"users": [{"_id": "u1", "userId": "USER1", "firstName": "A"}],
				"pagination": {"page": 1, "limit": 50, "total": 1, "pages": 1}
			}
		}`))
	})

	users, err := client.Users(context.Background(), "tok-123")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "USER1", users[0].UserID)
}

func TestClient_Batches_FilterQuery(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "running", r.URL.Query().Get("status"))
		assert.Equal(t, "2025", r.URL.Query().Get("year"))
		_, _ = w.Write([]byte(`{"success": true, "data": [{"_id": "b1", "batchId": "BATCH2025-01", "programName": "Go", "startDate": "2025-01-10T00:00:00.000Z", "endDate": "2025-04-10T00:00:00.000Z", "totalFee": 1200.50}]}`))
	})

	batches, err := client.Batches(context.Background(), "tok", &api.BatchFilter{Status: "running", Year: 2025})
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, "BATCH2025-01", batches[0].BatchID)
	assert.Equal(t, "1200.5", batches[0].TotalFee.String())
}

func TestClient_Services_FilterQuery(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Course", r.URL.Query().Get("category"))
		assert.Equal(t, "true", r.URL.Query().Get("isActive"))
		_, _ = w.Write([]byte(`{"success": true, "data": [{"_id": "s1", "serviceName": "Go Course", "price": 99.99, "duration": 3, "active": true}]}`))
	})

	services, err := client.Services(context.Background(), "tok", &api.ServiceFilter{Category: "Course", IsActive: true})
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Go Course", services[0].ServiceName)
}

func TestClient_AssignAndRemoveStudent(t *testing.T) {
	var gotMethod, gotPath string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"success": true, "data": {}}`))
	})

	require.NoError(t, client.AssignStudent(context.Background(), "tok", "b1", "u1"))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/batches/b1/students/u1", gotPath)

	require.NoError(t, client.RemoveStudent(context.Background(), "tok", "b1", "u1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/batches/b1/students/u1", gotPath)
}

func TestClient_Dashboard(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/dashboard", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"userStats": {"total": 42},
				"financialStats": {
					"totalRevenue": 10500.75,
					"recentPayments": [
						{"_id": "p1", "amount": 500, "status": "SUCCESS", "createdAt": "2025-08-30T10:00:00.000Z"}
					]
				}
			}
		}`))
	})

	stats, err := client.Dashboard(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, 42, stats.UserStats.Total)
	assert.Equal(t, "10500.75", stats.FinancialStats.TotalRevenue.String())
	require.Len(t, stats.FinancialStats.RecentPayments, 1)
	assert.Equal(t, "SUCCESS", stats.FinancialStats.RecentPayments[0].Status)
}
