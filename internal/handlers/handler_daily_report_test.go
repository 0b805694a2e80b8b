package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/2fiksen-ship-it/booking/internal/apperrors"
	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	portssvc "github.com/2fiksen-ship-it/booking/internal/core/ports/services"
	"github.com/2fiksen-ship-it/booking/internal/dto"
	"github.com/2fiksen-ship-it/booking/internal/handlers"
	"github.com/2fiksen-ship-it/booking/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DailyReportService ---
type MockDailyReportService struct {
	mock.Mock
}

func (m *MockDailyReportService) SubmitDailyReport(ctx context.Context, caller domain.Caller, req dto.SubmitDailyReportRequest) (*domain.DailyReport, bool, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.DailyReport), args.Bool(1), args.Error(2)
}

func (m *MockDailyReportService) GetDailyReportByID(ctx context.Context, caller domain.Caller, reportID string) (*domain.DailyReport, error) {
	args := m.Called(ctx, caller, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReport), args.Error(1)
}

func (m *MockDailyReportService) ListDailyReports(ctx context.Context, caller domain.Caller, rng *domain.DateRange) ([]domain.DailyReport, error) {
	args := m.Called(ctx, caller, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyReport), args.Error(1)
}

func (m *MockDailyReportService) ApproveDailyReport(ctx context.Context, caller domain.Caller, reportID string) (*domain.DailyReport, error) {
	args := m.Called(ctx, caller, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReport), args.Error(1)
}

func (m *MockDailyReportService) RejectDailyReport(ctx context.Context, caller domain.Caller, reportID string, reason string) (*domain.DailyReport, error) {
	args := m.Called(ctx, caller, reportID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReport), args.Error(1)
}

var _ portssvc.DailyReportSvcFacade = (*MockDailyReportService)(nil)

// --- Mock CallerResolver ---
type MockCallerResolver struct {
	mock.Mock
}

func (m *MockCallerResolver) ResolveCaller(ctx context.Context, userID string) (domain.Caller, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Caller), args.Error(1)
}

// --- Test Suite ---
type DailyReportHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockReportService *MockDailyReportService
	mockResolver      *MockCallerResolver
	jwtSecret         string

	caller domain.Caller
}

// generateTestToken creates a signed JWT for the given user id.
func (suite *DailyReportHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "sanhaja-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *DailyReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.caller = domain.Caller{
		UserID:   uuid.NewString(),
		Role:     domain.RoleAgencyStaff,
		AgencyID: "agency-1",
	}

	suite.mockReportService = new(MockDailyReportService)
	suite.mockResolver = new(MockCallerResolver)
	suite.mockResolver.On("ResolveCaller", mock.Anything, suite.caller.UserID).Return(suite.caller, nil)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret, suite.mockResolver))
	handlers.RegisterDailyReportRoutes(v1, suite.mockReportService)
}

func (suite *DailyReportHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.caller.UserID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *DailyReportHandlerTestSuite) TestSubmitReport_Created() {
	report := &domain.DailyReport{
		ReportID:     uuid.NewString(),
		AgencyID:     "agency-1",
		BusinessDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		TotalIncome:  decimal.NewFromInt(120000),
		Status:       domain.StatusPending,
	}
	reqBody := dto.SubmitDailyReportRequest{
		BusinessDate: "2025-06-01",
		TotalIncome:  decimal.NewFromInt(120000),
	}

	suite.mockReportService.On("SubmitDailyReport",
		mock.Anything,
		suite.caller,
		mock.MatchedBy(func(r dto.SubmitDailyReportRequest) bool {
			return r.BusinessDate == "2025-06-01" && r.TotalIncome.Equal(decimal.NewFromInt(120000))
		}),
	).Return(report, false, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/daily-reports", reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.SubmitDailyReportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(report.ReportID, resp.Report.ReportID)
	suite.Equal("2025-06-01", resp.Report.BusinessDate)
	suite.False(resp.WasUpdated)
	suite.mockReportService.AssertExpectations(suite.T())
}

func (suite *DailyReportHandlerTestSuite) TestSubmitReport_ResubmissionReturnsOK() {
	report := &domain.DailyReport{
		ReportID:     uuid.NewString(),
		AgencyID:     "agency-1",
		BusinessDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:       domain.StatusPending,
	}

	suite.mockReportService.On("SubmitDailyReport", mock.Anything, suite.caller, mock.AnythingOfType("dto.SubmitDailyReportRequest")).
		Return(report, true, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/daily-reports", dto.SubmitDailyReportRequest{BusinessDate: "2025-06-01"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SubmitDailyReportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.WasUpdated)
}

func (suite *DailyReportHandlerTestSuite) TestSubmitReport_MissingBusinessDate() {
	w := suite.doRequest(http.MethodPost, "/api/v1/daily-reports", map[string]any{"totalIncome": "100"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportService.AssertNotCalled(suite.T(), "SubmitDailyReport", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DailyReportHandlerTestSuite) TestSubmitReport_MalformedDateRejectedAtBinding() {
	w := suite.doRequest(http.MethodPost, "/api/v1/daily-reports", map[string]any{"businessDate": "01/06/2025"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportService.AssertNotCalled(suite.T(), "SubmitDailyReport", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DailyReportHandlerTestSuite) TestApproveReport_ConflictWhenAlreadyReviewed() {
	reportID := uuid.NewString()

	suite.mockReportService.On("ApproveDailyReport", mock.Anything, suite.caller, reportID).
		Return(nil, fmt.Errorf("report already APPROVED: %w", apperrors.ErrConflict)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/daily-reports/"+reportID+"/approve", nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockReportService.AssertExpectations(suite.T())
}

func (suite *DailyReportHandlerTestSuite) TestApproveReport_ForbiddenForStaff() {
	reportID := uuid.NewString()

	suite.mockReportService.On("ApproveDailyReport", mock.Anything, suite.caller, reportID).
		Return(nil, fmt.Errorf("insufficient role: %w", apperrors.ErrForbidden)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/daily-reports/"+reportID+"/approve", nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *DailyReportHandlerTestSuite) TestRejectReport_RequiresReason() {
	reportID := uuid.NewString()

	w := suite.doRequest(http.MethodPost, "/api/v1/daily-reports/"+reportID+"/reject", map[string]any{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportService.AssertNotCalled(suite.T(), "RejectDailyReport", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DailyReportHandlerTestSuite) TestListReports_ParsesDateRange() {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	reports := []domain.DailyReport{
		{ReportID: uuid.NewString(), AgencyID: "agency-1", BusinessDate: from, Status: domain.StatusApproved},
	}

	suite.mockReportService.On("ListDailyReports", mock.Anything, suite.caller, mock.MatchedBy(func(rng *domain.DateRange) bool {
		return rng != nil && rng.From.Equal(from) && rng.To.After(rng.From)
	})).Return(reports, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/daily-reports?from=2025-06-01&to=2025-06-30", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListDailyReportsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Reports, 1)
	suite.mockReportService.AssertExpectations(suite.T())
}

func (suite *DailyReportHandlerTestSuite) TestGetReport_NotFound() {
	reportID := uuid.NewString()

	suite.mockReportService.On("GetDailyReportByID", mock.Anything, suite.caller, reportID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/daily-reports/"+reportID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *DailyReportHandlerTestSuite) TestUnauthenticatedRequestRejected() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/daily-reports", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockReportService.AssertNotCalled(suite.T(), "ListDailyReports", mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestDailyReportHandler(t *testing.T) {
	suite.Run(t, new(DailyReportHandlerTestSuite))
}
