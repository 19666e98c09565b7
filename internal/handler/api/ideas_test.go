//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"wishlink/internal/handler/api"
	"wishlink/internal/pkg/errs"
	"wishlink/internal/usecase"
	"wishlink/tests/common/httptest"
	"wishlink/tests/common/testutil"
	usecasemock "wishlink/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type IdeasHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockIdeas *usecasemock.MockIdeasUseCase
	handler   *api.IdeasHandler
}

func (s *IdeasHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockIdeas = usecasemock.NewMockIdeasUseCase(s.mockCtrl)
	s.handler = api.NewIdeasHandler(s.mockIdeas)

	s.router.POST("/ideas", s.handler.Generate)
}

func (s *IdeasHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestIdeasHandlerSuite(t *testing.T) {
	suite.Run(t, new(IdeasHandlerTestSuite))
}

func (s *IdeasHandlerTestSuite) TestGenerate() {
	url := "/ideas"

	reqBody := map[string]any{"prompt": "gifts for a coffee lover"}
	returnIdeas := []usecase.Idea{
		{Name: "Pour-over kit", Price: 35.0, Description: "Glass dripper with filters", ImageQuery: "pour over coffee kit"},
		{Name: "Burr grinder", Price: 60.0, Description: "Conical burr hand grinder", ImageQuery: "manual burr grinder"},
	}

	s.Run("success: returns 200 OK with idea list", func() {
		s.mockIdeas.EXPECT().GenerateIdeas(gomock.Any(), "gifts for a coffee lover").
			Return(returnIdeas, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response map[string][]map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response["ideas"], 2)
		s.Equal("Pour-over kit", response["ideas"][0]["name"])
		s.Equal("pour over coffee kit", response["ideas"][0]["imageQuery"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		validationTestCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: prompt (required)", mutate: testutil.Field("prompt", nil)},
			{name: "empty prompt", mutate: testutil.Field("prompt", "")},
			{name: "prompt too long (1001 chars)", mutate: testutil.Field("prompt", strings.Repeat("a", 1001))},
		}

		for _, tc := range validationTestCases {
			s.Run(tc.name, func() {
				requestMap := map[string]any{"prompt": "valid"}
				tc.mutate(requestMap)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			ideasError     error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "generation not configured",
				ideasError:     errs.ErrAPIKeyMissing,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Idea generation is not configured",
			},
			{
				name:           "model output unusable",
				ideasError:     errs.Mark(errors.New("model output contained no JSON array"), errs.ErrGeneration),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Could not generate ideas",
			},
			{
				name:           "upstream call failed",
				ideasError:     errs.Mark(errors.New("connection refused"), errs.ErrGeneration),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Could not generate ideas",
			},
			{
				name:           "internal server error",
				ideasError:     errors.New("unexpected"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Idea generation failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockIdeas.EXPECT().GenerateIdeas(gomock.Any(), gomock.Any()).
					Return(nil, tc.ideasError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
