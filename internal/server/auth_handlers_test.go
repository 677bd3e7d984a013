package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserStore is a mock of the store.UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) CreateUser(ctx context.Context, name, username, password string) (*models.User, error) {
	args := m.Called(ctx, name, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) Profile(ctx context.Context, id int) (*models.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockUserStore) ClearAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(m *MockUserStore)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Success",
			body: map[string]string{"name": "Alice", "username": "alice", "password": "pw1"},
			mockSetup: func(m *MockUserStore) {
				m.On("CreateUser", mock.Anything, "Alice", "alice", "pw1").
					Return(&models.User{ID: 1, Username: "alice", Name: "Alice"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing fields",
			body:           map[string]string{"username": "alice"},
			mockSetup:      func(m *MockUserStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing fields",
		},
		{
			name: "Duplicate username",
			body: map[string]string{"name": "Alice", "username": "alice", "password": "pw1"},
			mockSetup: func(m *MockUserStore) {
				m.On("CreateUser", mock.Anything, "Alice", "alice", "pw1").
					Return(nil, models.NewDuplicateError("Username already exists"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Username already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			mockStore := new(MockUserStore)
			s := &Server{users: mockStore}
			app.Post("/api/register", s.Register)
			tt.mockSetup(mockStore)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedError != "" {
				var errResp models.ErrorResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
				assert.Equal(t, tt.expectedError, errResp.Error)
			}
			mockStore.AssertExpectations(t)
		})
	}
}

func TestRegisterResponseShape(t *testing.T) {
	app := fiber.New()
	mockStore := new(MockUserStore)
	s := &Server{users: mockStore}
	app.Post("/api/register", s.Register)

	mockStore.On("CreateUser", mock.Anything, "Alice", "alice", "pw1").
		Return(&models.User{ID: 1, Username: "alice", Name: "Alice", Password: "pw1"}, nil)

	body, _ := json.Marshal(map[string]string{"name": "Alice", "username": "alice", "password": "pw1"})
	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var got struct {
		Message string                 `json:"message"`
		User    map[string]interface{} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "User registered successfully", got.Message)
	assert.Equal(t, float64(1), got.User["id"])
	// the password must never appear on the wire
	assert.NotContains(t, got.User, "password")
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(m *MockUserStore)
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{"username": "alice", "password": "pw1"},
			mockSetup: func(m *MockUserStore) {
				m.On("GetUserByUsername", mock.Anything, "alice").
					Return(&models.User{ID: 1, Username: "alice", Name: "Alice", Password: "pw1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Wrong password",
			body: map[string]string{"username": "alice", "password": "nope"},
			mockSetup: func(m *MockUserStore) {
				m.On("GetUserByUsername", mock.Anything, "alice").
					Return(&models.User{ID: 1, Username: "alice", Name: "Alice", Password: "pw1"}, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Unknown user",
			body: map[string]string{"username": "ghost", "password": "pw1"},
			mockSetup: func(m *MockUserStore) {
				m.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			mockStore := new(MockUserStore)
			s := &Server{users: mockStore}
			app.Post("/api/login", s.Login)
			tt.mockSetup(mockStore)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			mockStore.AssertExpectations(t)
		})
	}
}
