package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"time"

	"github.com/SscSPs/adminpro/internal/core/domain"
	portssvc "github.com/SscSPs/adminpro/internal/core/ports/services"
	"github.com/SscSPs/adminpro/internal/handlers"
	"github.com/SscSPs/adminpro/internal/platform/config"
	"github.com/SscSPs/adminpro/internal/utils"
	"github.com/SscSPs/adminpro/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// apiSuite wires the real router, auth middleware and permission gate to mocked services.
type apiSuite struct {
	suite.Suite
	router   *gin.Engine
	cfg      *config.Config
	currency *MockCurrencyService
	history  *MockExchangeRateService
	roles    *MockRoleService
	users    *MockUserService
	tokens   *MockTokenService
	limiters handlers.Limiters
}

type envelope struct {
	Status     string            `json:"status"`
	Data       json.RawMessage   `json:"data"`
	Message    string            `json:"message"`
	Count      *int              `json:"count"`
	Total      *int              `json:"total"`
	Errors     map[string]string `json:"errors"`
	RedirectTo string            `json:"redirectTo"`
}

func (s *apiSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

func (s *apiSuite) SetupTest() {
	s.cfg = &config.Config{
		JWTSecret:    testJWTSecret,
		IsProduction: true,
		LoginPath:    "/login",
		LandingPath:  "/dashboard",
	}
	s.currency = new(MockCurrencyService)
	s.history = new(MockExchangeRateService)
	s.roles = new(MockRoleService)
	s.users = new(MockUserService)
	s.tokens = new(MockTokenService)
	s.limiters = handlers.Limiters{}
	s.buildRouter()
}

func (s *apiSuite) buildRouter() {
	s.router = gin.New()
	handlers.RegisterRoutes(s.router, s.cfg, &portssvc.ServiceContainer{
		Currency:     s.currency,
		ExchangeRate: s.history,
		Role:         s.roles,
		User:         s.users,
		Token:        s.tokens,
	}, s.limiters)
}

// actAs registers an active user holding perms and returns a bearer token for it.
func (s *apiSuite) actAs(perms ...string) (string, *domain.User) {
	user := &domain.User{
		ID:       uuid.NewString(),
		Username: "tester",
		IsActive: true,
		RoleID:   "role-1",
		Role: &domain.Role{
			ID:          "role-1",
			Name:        "Tester",
			Permissions: domain.NewPermissionSet(perms...),
			IsActive:    true,
		},
	}
	s.users.On("GetUserByID", mock.Anything, user.ID).Return(user, nil)

	token, err := utils.GenerateJWT(user.ID, testJWTSecret, time.Hour, "adminpro-test")
	s.Require().NoError(err)
	return token, user
}

func (s *apiSuite) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			s.Require().NoError(err)
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func (s *apiSuite) decodeData(env envelope, out any) {
	s.Require().NoError(json.Unmarshal(env.Data, out))
}

func (s *apiSuite) assertStatus(w *httptest.ResponseRecorder, status int) {
	s.Equal(status, w.Code, w.Body.String())
}
