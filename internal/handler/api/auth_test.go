//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"wishlink/internal/handler/api"
	resdto "wishlink/internal/handler/dto/response"
	"wishlink/internal/usecase"
	"wishlink/tests/common/builder"
	"wishlink/tests/common/httptest"
	usecasemock "wishlink/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockAuth *usecasemock.MockAuthUseCase
	handler  *api.AuthHandler
	userID   uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockAuth)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/verify", s.handler.Verify)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", authMiddleware, s.handler.Logout)
	s.router.GET("/auth/me", authMiddleware, s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := builder.NewUserBuilder().BuildRegisterRequestDTO()

	s.Run("success: returns 201 Created with verification token", func() {
		newID := uuid.New()
		s.mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(newID, "verification-token-123", nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.RegisterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(newID.String(), response.ID)
		s.Equal("verification-token-123", response.VerificationToken)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name string
			body map[string]any
		}{
			{name: "missing email", body: map[string]any{"password": "password123"}},
			{name: "malformed email", body: map[string]any{"email": "not-an-email", "password": "password123"}},
			{name: "password too short", body: map[string]any{"email": "a@example.com", "password": "short"}},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})

	s.Run("error: 409 Conflict when email is taken", func() {
		s.mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, "", usecase.ErrEmailTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusConflict, rec.Code)

		var body map[string]string
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Contains(body["error"], "already registered")
	})

	s.Run("error: 500 Internal Server Error on failure", func() {
		s.mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, "", errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestVerify() {
	url := "/auth/verify"
	reqBody := map[string]any{"token": "verification-token-123"}

	s.Run("success: returns 204 No Content", func() {
		s.mockAuth.EXPECT().Verify(gomock.Any(), "verification-token-123").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown token", func() {
		s.mockAuth.EXPECT().Verify(gomock.Any(), "verification-token-123").
			Return(usecase.ErrVerificationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusNotFound, rec.Code)

		var body map[string]string
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Contains(body["error"], "invalid or already used")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	userBuilder := builder.NewUserBuilder()
	reqBody := userBuilder.BuildLoginRequestDTO()
	current := userBuilder.BuildReadModel()

	s.Run("success: returns 200 OK with access token", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return("jwt-access-token", current, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("jwt-access-token", response.AccessToken)
		s.Require().NotNil(response.User)
		s.Equal(current.Email, response.User.Email)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			authError      error
			expectedStatus int
		}{
			{name: "invalid credentials", authError: usecase.ErrInvalidCredentials, expectedStatus: http.StatusUnauthorized},
			{name: "unknown user", authError: usecase.ErrUserNotFound, expectedStatus: http.StatusUnauthorized},
			{name: "unverified account", authError: usecase.ErrUserInactive, expectedStatus: http.StatusForbidden},
			{name: "internal server error", authError: errors.New("database error"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAuth.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return("", nil, tc.authError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				s.Equal(tc.expectedStatus, rec.Code)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	url := "/auth/logout"

	s.Run("success: returns 204 No Content", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"
	current := builder.NewUserBuilder().BuildReadModel()

	s.Run("success: returns the current user", func() {
		s.mockAuth.EXPECT().GetCurrentUser(gomock.Any(), s.userID).
			Return(current, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(current.Email, response["email"])
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 404 Not Found for deleted user", func() {
		s.mockAuth.EXPECT().GetCurrentUser(gomock.Any(), s.userID).
			Return(nil, usecase.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
