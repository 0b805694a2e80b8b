package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/2fiksen-ship-it/booking/internal/apperrors"
	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/core/policy"
	portssvc "github.com/2fiksen-ship-it/booking/internal/core/ports/services"
	"github.com/2fiksen-ship-it/booking/internal/core/services"
	"github.com/2fiksen-ship-it/booking/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ServiceOfferingRepository ---
type MockServiceOfferingRepository struct {
	mock.Mock
}

func (m *MockServiceOfferingRepository) SaveService(ctx context.Context, svc domain.ServiceOffering) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}

func (m *MockServiceOfferingRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.ServiceOffering, error) {
	args := m.Called(ctx, serviceID)
	var svc *domain.ServiceOffering
	if args.Get(0) != nil {
		svc = args.Get(0).(*domain.ServiceOffering)
	}
	return svc, args.Error(1)
}

func (m *MockServiceOfferingRepository) ListServices(ctx context.Context, filter policy.Filter) ([]domain.ServiceOffering, error) {
	args := m.Called(ctx, filter)
	var out []domain.ServiceOffering
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.ServiceOffering)
	}
	return out, args.Error(1)
}

// --- Mock DailyOperationRepository ---
type MockDailyOperationRepository struct {
	mock.Mock
}

func (m *MockDailyOperationRepository) SaveOperation(ctx context.Context, op domain.DailyOperation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockDailyOperationRepository) FindOperationByID(ctx context.Context, operationID string) (*domain.DailyOperation, error) {
	args := m.Called(ctx, operationID)
	var op *domain.DailyOperation
	if args.Get(0) != nil {
		op = args.Get(0).(*domain.DailyOperation)
	}
	return op, args.Error(1)
}

func (m *MockDailyOperationRepository) ListOperations(ctx context.Context, filter policy.Filter, rng *domain.DateRange) ([]domain.DailyOperation, error) {
	args := m.Called(ctx, filter, rng)
	var out []domain.DailyOperation
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.DailyOperation)
	}
	return out, args.Error(1)
}

func (m *MockDailyOperationRepository) TransitionOperationStatus(ctx context.Context, operationID string, to domain.ApprovalStatus, approverID string, at time.Time, reason string) (bool, error) {
	args := m.Called(ctx, operationID, to, approverID, at, reason)
	return args.Bool(0), args.Error(1)
}

// --- Test Suite ---
type DailyOperationServiceTestSuite struct {
	suite.Suite
	mockServiceRepo   *MockServiceOfferingRepository
	mockOperationRepo *MockDailyOperationRepository
	service           portssvc.DailyOperationSvcFacade

	accountant domain.Caller
	staff      domain.Caller
}

func (suite *DailyOperationServiceTestSuite) SetupTest() {
	suite.mockServiceRepo = new(MockServiceOfferingRepository)
	suite.mockOperationRepo = new(MockDailyOperationRepository)
	suite.service = services.NewDailyOperationService(policy.NewEngine(true), suite.mockServiceRepo, suite.mockOperationRepo)

	suite.accountant = domain.Caller{UserID: uuid.NewString(), Role: domain.RoleGeneralAccountant, AgencyID: "agency-1"}
	suite.staff = domain.Caller{UserID: uuid.NewString(), Role: domain.RoleAgencyStaff, AgencyID: "agency-1"}
}

func (suite *DailyOperationServiceTestSuite) fixedPriceService(base, min int64) *domain.ServiceOffering {
	return &domain.ServiceOffering{
		ServiceID:  uuid.NewString(),
		AgencyID:   "agency-1",
		Name:       "Omra package",
		BasePrice:  decimal.NewFromInt(base),
		MinPrice:   decimal.NewFromInt(min),
		FixedPrice: true,
	}
}

// --- CreateService Tests ---

func (suite *DailyOperationServiceTestSuite) TestCreateService_Success() {
	ctx := context.Background()
	req := dto.CreateServiceRequest{
		Name:       "Visa assistance",
		BasePrice:  decimal.NewFromInt(8000),
		MinPrice:   decimal.NewFromInt(6000),
		FixedPrice: true,
	}

	suite.mockServiceRepo.On("SaveService", ctx, mock.MatchedBy(func(s domain.ServiceOffering) bool {
		return s.AgencyID == "agency-1" && s.Name == "Visa assistance" && s.FixedPrice
	})).Return(nil).Once()

	svc, err := suite.service.CreateService(ctx, suite.staff, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(svc)
	suite.NotEmpty(svc.ServiceID)
	suite.mockServiceRepo.AssertExpectations(suite.T())
}

func (suite *DailyOperationServiceTestSuite) TestCreateService_MinAboveBase() {
	ctx := context.Background()
	req := dto.CreateServiceRequest{
		Name:       "Broken",
		BasePrice:  decimal.NewFromInt(1000),
		MinPrice:   decimal.NewFromInt(2000),
		FixedPrice: true,
	}

	svc, err := suite.service.CreateService(ctx, suite.staff, req)

	suite.Require().Error(err)
	suite.Nil(svc)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockServiceRepo.AssertNotCalled(suite.T(), "SaveService", mock.Anything, mock.Anything)
}

// --- CreateDailyOperation Tests ---

func (suite *DailyOperationServiceTestSuite) TestCreateDailyOperation_NoDiscount() {
	ctx := context.Background()
	svc := suite.fixedPriceService(100000, 90000)
	req := dto.CreateOperationRequest{ServiceID: svc.ServiceID, ClientID: uuid.NewString()}

	suite.mockServiceRepo.On("FindServiceByID", ctx, svc.ServiceID).Return(svc, nil).Once()
	suite.mockOperationRepo.On("SaveOperation", ctx, mock.MatchedBy(func(op domain.DailyOperation) bool {
		return op.Discount == nil && op.FinalPrice.Equal(svc.BasePrice) && op.Status == domain.StatusPending
	})).Return(nil).Once()

	op, err := suite.service.CreateDailyOperation(ctx, suite.staff, req)

	suite.Require().NoError(err)
	suite.Nil(op.Discount)
	suite.True(op.FinalPrice.Equal(decimal.NewFromInt(100000)))
	suite.mockOperationRepo.AssertExpectations(suite.T())
}

func (suite *DailyOperationServiceTestSuite) TestCreateDailyOperation_DiscountSpawnsRequest() {
	ctx := context.Background()
	svc := suite.fixedPriceService(100000, 90000)
	req := dto.CreateOperationRequest{
		ServiceID:      svc.ServiceID,
		ClientID:       uuid.NewString(),
		DiscountAmount: decimal.NewFromInt(5000),
		DiscountReason: "returning customer",
	}

	suite.mockServiceRepo.On("FindServiceByID", ctx, svc.ServiceID).Return(svc, nil).Once()
	suite.mockOperationRepo.On("SaveOperation", ctx, mock.AnythingOfType("domain.DailyOperation")).Return(nil).Once()

	op, err := suite.service.CreateDailyOperation(ctx, suite.staff, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(op.Discount)
	suite.True(op.FinalPrice.Equal(decimal.NewFromInt(95000)))
	suite.True(op.Discount.DiscountPercentage.Equal(decimal.NewFromInt(5)))
	suite.Equal("returning customer", op.Discount.Reason)
	suite.Equal(suite.staff.UserID, op.Discount.RequestedBy)
	suite.Equal(domain.StatusPending, op.Discount.Status)
	suite.mockOperationRepo.AssertExpectations(suite.T())
}

func (suite *DailyOperationServiceTestSuite) TestCreateDailyOperation_DiscountBelowFloor() {
	ctx := context.Background()
	// Floor 90000, base 100000: a 15000 discount lands at 85000 and is refused.
	svc := suite.fixedPriceService(100000, 90000)
	req := dto.CreateOperationRequest{
		ServiceID:      svc.ServiceID,
		ClientID:       uuid.NewString(),
		DiscountAmount: decimal.NewFromInt(15000),
		DiscountReason: "friend of the manager",
	}

	suite.mockServiceRepo.On("FindServiceByID", ctx, svc.ServiceID).Return(svc, nil).Once()

	op, err := suite.service.CreateDailyOperation(ctx, suite.staff, req)

	suite.Require().Error(err)
	suite.Nil(op)
	suite.ErrorIs(err, apperrors.ErrInvalidDiscount)
	suite.mockOperationRepo.AssertNotCalled(suite.T(), "SaveOperation", mock.Anything, mock.Anything)
}

func (suite *DailyOperationServiceTestSuite) TestCreateDailyOperation_FlexiblePriceIgnoresFloor() {
	ctx := context.Background()
	svc := suite.fixedPriceService(100000, 90000)
	svc.FixedPrice = false
	req := dto.CreateOperationRequest{
		ServiceID:      svc.ServiceID,
		ClientID:       uuid.NewString(),
		DiscountAmount: decimal.NewFromInt(15000),
		DiscountReason: "negotiated",
	}

	suite.mockServiceRepo.On("FindServiceByID", ctx, svc.ServiceID).Return(svc, nil).Once()
	suite.mockOperationRepo.On("SaveOperation", ctx, mock.AnythingOfType("domain.DailyOperation")).Return(nil).Once()

	op, err := suite.service.CreateDailyOperation(ctx, suite.staff, req)

	suite.Require().NoError(err)
	suite.True(op.FinalPrice.Equal(decimal.NewFromInt(85000)))
	suite.mockOperationRepo.AssertExpectations(suite.T())
}

func (suite *DailyOperationServiceTestSuite) TestCreateDailyOperation_DiscountNeedsReason() {
	ctx := context.Background()
	svc := suite.fixedPriceService(100000, 90000)
	req := dto.CreateOperationRequest{
		ServiceID:      svc.ServiceID,
		ClientID:       uuid.NewString(),
		DiscountAmount: decimal.NewFromInt(1000),
	}

	suite.mockServiceRepo.On("FindServiceByID", ctx, svc.ServiceID).Return(svc, nil).Once()

	op, err := suite.service.CreateDailyOperation(ctx, suite.staff, req)

	suite.Require().Error(err)
	suite.Nil(op)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DailyOperationServiceTestSuite) TestCreateDailyOperation_ForeignServiceReadsAsMissing() {
	ctx := context.Background()
	svc := suite.fixedPriceService(100000, 90000)
	svc.AgencyID = "agency-2"
	req := dto.CreateOperationRequest{ServiceID: svc.ServiceID, ClientID: uuid.NewString()}

	suite.mockServiceRepo.On("FindServiceByID", ctx, svc.ServiceID).Return(svc, nil).Once()

	op, err := suite.service.CreateDailyOperation(ctx, suite.staff, req)

	suite.Require().Error(err)
	suite.Nil(op)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockOperationRepo.AssertNotCalled(suite.T(), "SaveOperation", mock.Anything, mock.Anything)
}

func (suite *DailyOperationServiceTestSuite) TestCreateDailyOperation_NegativeDiscount() {
	ctx := context.Background()
	svc := suite.fixedPriceService(100000, 90000)
	req := dto.CreateOperationRequest{
		ServiceID:      svc.ServiceID,
		ClientID:       uuid.NewString(),
		DiscountAmount: decimal.NewFromInt(-50),
	}

	suite.mockServiceRepo.On("FindServiceByID", ctx, svc.ServiceID).Return(svc, nil).Once()

	_, err := suite.service.CreateDailyOperation(ctx, suite.staff, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Approve/Reject Tests ---

func (suite *DailyOperationServiceTestSuite) TestApproveDailyOperation_Success() {
	ctx := context.Background()
	operationID := uuid.NewString()
	pending := &domain.DailyOperation{OperationID: operationID, AgencyID: "agency-1", Status: domain.StatusPending}
	approved := &domain.DailyOperation{
		OperationID: operationID,
		AgencyID:    "agency-1",
		Status:      domain.StatusApproved,
		Discount:    &domain.DiscountRequest{Status: domain.StatusApproved},
	}

	suite.mockOperationRepo.On("FindOperationByID", ctx, operationID).Return(pending, nil).Once()
	suite.mockOperationRepo.On("TransitionOperationStatus", ctx, operationID, domain.StatusApproved, suite.accountant.UserID, mock.AnythingOfType("time.Time"), "").Return(true, nil).Once()
	suite.mockOperationRepo.On("FindOperationByID", ctx, operationID).Return(approved, nil).Once()

	op, err := suite.service.ApproveDailyOperation(ctx, suite.accountant, operationID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, op.Status)
	// The owned discount request moves with its operation.
	suite.Equal(domain.StatusApproved, op.Discount.Status)
	suite.mockOperationRepo.AssertExpectations(suite.T())
}

func (suite *DailyOperationServiceTestSuite) TestApproveDailyOperation_AlreadyTerminal() {
	ctx := context.Background()
	operationID := uuid.NewString()
	done := &domain.DailyOperation{OperationID: operationID, AgencyID: "agency-1", Status: domain.StatusApproved}

	suite.mockOperationRepo.On("FindOperationByID", ctx, operationID).Return(done, nil).Once()

	op, err := suite.service.ApproveDailyOperation(ctx, suite.accountant, operationID)

	suite.Require().Error(err)
	suite.Nil(op)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockOperationRepo.AssertNotCalled(suite.T(), "TransitionOperationStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DailyOperationServiceTestSuite) TestApproveDailyOperation_LosesRaceConflicts() {
	ctx := context.Background()
	operationID := uuid.NewString()
	pending := &domain.DailyOperation{OperationID: operationID, AgencyID: "agency-1", Status: domain.StatusPending}

	suite.mockOperationRepo.On("FindOperationByID", ctx, operationID).Return(pending, nil).Once()
	suite.mockOperationRepo.On("TransitionOperationStatus", ctx, operationID, domain.StatusApproved, suite.accountant.UserID, mock.AnythingOfType("time.Time"), "").Return(false, nil).Once()

	op, err := suite.service.ApproveDailyOperation(ctx, suite.accountant, operationID)

	suite.Require().Error(err)
	suite.Nil(op)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *DailyOperationServiceTestSuite) TestRejectDailyOperation_RequiresReason() {
	ctx := context.Background()

	op, err := suite.service.RejectDailyOperation(ctx, suite.accountant, uuid.NewString(), "")

	suite.Require().Error(err)
	suite.Nil(op)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOperationRepo.AssertNotCalled(suite.T(), "FindOperationByID", mock.Anything, mock.Anything)
}

func (suite *DailyOperationServiceTestSuite) TestRejectDailyOperation_StaffForbidden() {
	ctx := context.Background()
	operationID := uuid.NewString()
	pending := &domain.DailyOperation{OperationID: operationID, AgencyID: "agency-1", Status: domain.StatusPending}

	suite.mockOperationRepo.On("FindOperationByID", ctx, operationID).Return(pending, nil).Once()

	op, err := suite.service.RejectDailyOperation(ctx, suite.staff, operationID, "too generous")

	suite.Require().Error(err)
	suite.Nil(op)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- Run Suite ---
func TestDailyOperationService(t *testing.T) {
	suite.Run(t, new(DailyOperationServiceTestSuite))
}
