//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"wishlink/internal/domain/guest"
	"wishlink/internal/handler/api"
	"wishlink/internal/handler/middleware"
	"wishlink/internal/pkg/errs"
	"wishlink/internal/usecase/commands"
	"wishlink/tests/common/builder"
	"wishlink/tests/common/httptest"
	"wishlink/tests/common/testutil"
	commandsmock "wishlink/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ContributionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockContributionCommands
	handler      *api.ContributionHandler
}

func (s *ContributionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockContributionCommands(s.mockCtrl)
	s.handler = api.NewContributionHandler(s.mockCommands)

	s.router.POST("/items/:id/contributions", middleware.GuestIdentity(), s.handler.Add)
}

func (s *ContributionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestContributionHandlerSuite(t *testing.T) {
	suite.Run(t, new(ContributionHandlerTestSuite))
}

func (s *ContributionHandlerTestSuite) TestAdd() {
	itemID := uuid.New()
	url := "/items/" + itemID.String() + "/contributions"

	reqBody := builder.NewContributionBuilder().BuildAddRequestDTO()
	contributionID := uuid.New()
	expectedResult := &commands.AddContributionResult{ContributionID: contributionID}

	viewer, err := guest.NewIdentity("guest-token-1")
	s.Require().NoError(err)

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().AddContribution(gomock.Any(), itemID, gomock.Any(), viewer).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformGuestRequest(s.T(), s.router, http.MethodPost, url, reqBody, "", "guest-token-1")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(contributionID.String(), body["id"])
	})

	s.Run("success: contributor name is optional", func() {
		anonymous := testutil.DtoMap(s.T(), reqBody, testutil.Field("contributor_name", nil))

		s.mockCommands.EXPECT().AddContribution(gomock.Any(), itemID, gomock.Any(), viewer).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformGuestRequest(s.T(), s.router, http.MethodPost, url, anonymous, "", "guest-token-1")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		validationTestCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: amount_cents (required)", mutate: testutil.Field("amount_cents", nil)},
			{name: "contributor name too long (101 chars)", mutate: testutil.Field("contributor_name", strings.Repeat("a", 101))},
		}

		for _, tc := range validationTestCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformGuestRequest(s.T(), s.router, http.MethodPost, url, requestMap, "", "guest-token-1")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request without guest token", func() {
		s.mockCommands.EXPECT().AddContribution(gomock.Any(), itemID, gomock.Any(), guest.Identity{}).
			Return(nil, errs.ErrGuestTokenRequired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Guest token required")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformGuestRequest(s.T(), s.router, http.MethodPost, "/items/invalid-uuid/contributions", reqBody, "", "guest-token-1")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid amount",
				commandsError:  errs.Mark(errors.New("amount must be positive"), errs.ErrInvalidAmount),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Amount must be a positive number",
			},
			{
				name:           "item not found",
				commandsError:  errs.ErrItemNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Item not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Add contribution failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AddContribution(gomock.Any(), itemID, gomock.Any(), viewer).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformGuestRequest(s.T(), s.router, http.MethodPost, url, reqBody, "", "guest-token-1")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
