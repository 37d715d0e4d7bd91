package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tresahq/cashbook_cli/internal/apperrors"
	"github.com/tresahq/cashbook_cli/internal/cache"
	"github.com/tresahq/cashbook_cli/internal/core/domain"
	portssvc "github.com/tresahq/cashbook_cli/internal/core/ports/services"
	"github.com/tresahq/cashbook_cli/internal/core/services"
	"github.com/tresahq/cashbook_cli/internal/dto"
)

// --- Mock CashbookAPI ---

type MockCashbookAPI struct {
	mock.Mock
}

func (m *MockCashbookAPI) ListCashbooks(ctx context.Context, workspaceID string) ([]domain.Cashbook, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cashbook), args.Error(1)
}

func (m *MockCashbookAPI) GetCashbook(ctx context.Context, cashbookID string) (*domain.Cashbook, error) {
	args := m.Called(ctx, cashbookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cashbook), args.Error(1)
}

func (m *MockCashbookAPI) CreateCashbook(ctx context.Context, workspaceID string, req dto.CreateCashbookRequest) (*domain.Cashbook, error) {
	args := m.Called(ctx, workspaceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cashbook), args.Error(1)
}

func (m *MockCashbookAPI) UpdateCashbook(ctx context.Context, cashbookID string, req dto.UpdateCashbookRequest) (*domain.Cashbook, error) {
	args := m.Called(ctx, cashbookID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cashbook), args.Error(1)
}

func (m *MockCashbookAPI) DeleteCashbook(ctx context.Context, cashbookID string) error {
	args := m.Called(ctx, cashbookID)
	return args.Error(0)
}

func (m *MockCashbookAPI) ListCashbookMembers(ctx context.Context, cashbookID string) ([]domain.CashbookMember, error) {
	args := m.Called(ctx, cashbookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashbookMember), args.Error(1)
}

func (m *MockCashbookAPI) UpdateCashbookMember(ctx context.Context, cashbookID, userID string, req dto.UpdateCashbookMemberRequest) (*domain.CashbookMember, error) {
	args := m.Called(ctx, cashbookID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashbookMember), args.Error(1)
}

func (m *MockCashbookAPI) RemoveCashbookMember(ctx context.Context, cashbookID, userID string) error {
	args := m.Called(ctx, cashbookID, userID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type CashbookServiceTestSuite struct {
	suite.Suite
	mockAPI *MockCashbookAPI
	cache   *cache.Cache
	service portssvc.CashbookSvcFacade
}

func (suite *CashbookServiceTestSuite) SetupTest() {
	suite.mockAPI = new(MockCashbookAPI)
	suite.cache = cache.New()
	suite.service = services.NewCashbookService(suite.mockAPI, suite.cache)
}

// --- Test Cases ---

func (suite *CashbookServiceTestSuite) TestListCashbooks_MissingParentDisablesQuery() {
	ctx := context.Background()
	for _, id := range []string{"", "undefined", "null"} {
		books, err := suite.service.ListCashbooks(ctx, id)
		suite.Require().NoError(err, "id %q", id)
		suite.Empty(books, "id %q", id)
	}
	suite.mockAPI.AssertNotCalled(suite.T(), "ListCashbooks", mock.Anything, mock.Anything)
}

func (suite *CashbookServiceTestSuite) TestGetCashbook_CachesEntity() {
	ctx := context.Background()
	book := &domain.Cashbook{ID: "cb-1", Name: "Shop", Balance: "100.00"}
	suite.mockAPI.On("GetCashbook", ctx, "cb-1").Return(book, nil).Once()

	first, err := suite.service.GetCashbook(ctx, "cb-1")
	suite.Require().NoError(err)
	second, err := suite.service.GetCashbook(ctx, "cb-1")
	suite.Require().NoError(err)
	suite.Equal(first.ID, second.ID)
	suite.mockAPI.AssertExpectations(suite.T())
}

func (suite *CashbookServiceTestSuite) TestUpdateCashbookMemberRole_PrimaryAdminNotAssignable() {
	ctx := context.Background()

	_, err := suite.service.UpdateCashbookMemberRole(ctx, "cb-1", "user-1", domain.RolePrimaryAdmin)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	// Rejected before any network traffic.
	suite.mockAPI.AssertNotCalled(suite.T(), "UpdateCashbookMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockAPI.AssertNotCalled(suite.T(), "ListCashbookMembers", mock.Anything, mock.Anything)
}

func (suite *CashbookServiceTestSuite) TestUpdateCashbookMemberRole_ProtectsCurrentPrimaryAdmin() {
	ctx := context.Background()
	members := []domain.CashbookMember{
		{UserID: "user-owner", Role: domain.RolePrimaryAdmin},
		{UserID: "user-2", Role: domain.RoleViewer},
	}
	suite.mockAPI.On("ListCashbookMembers", ctx, "cb-1").Return(members, nil).Once()

	// Demoting the PRIMARY_ADMIN holder is forbidden even to a valid role.
	_, err := suite.service.UpdateCashbookMemberRole(ctx, "cb-1", "user-owner", domain.RoleViewer)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockAPI.AssertNotCalled(suite.T(), "UpdateCashbookMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CashbookServiceTestSuite) TestUpdateCashbookMemberRole_Success() {
	ctx := context.Background()
	members := []domain.CashbookMember{
		{UserID: "user-owner", Role: domain.RolePrimaryAdmin},
		{UserID: "user-2", Role: domain.RoleViewer},
	}
	updated := &domain.CashbookMember{UserID: "user-2", Role: domain.RoleDataOperator}

	suite.mockAPI.On("ListCashbookMembers", ctx, "cb-1").Return(members, nil).Once()
	suite.mockAPI.On("UpdateCashbookMember", ctx, "cb-1", "user-2",
		dto.UpdateCashbookMemberRequest{Role: domain.RoleDataOperator}).Return(updated, nil).Once()

	member, err := suite.service.UpdateCashbookMemberRole(ctx, "cb-1", "user-2", domain.RoleDataOperator)
	suite.Require().NoError(err)
	suite.Equal(domain.RoleDataOperator, member.Role)

	// The member list cache was invalidated by the role change.
	_, ok := cache.GetList[domain.CashbookMember](suite.cache, cache.ListKey("cashbook-members", "cb-1"))
	suite.False(ok)
	suite.mockAPI.AssertExpectations(suite.T())
}

func (suite *CashbookServiceTestSuite) TestDeleteCashbook_DropsDependentCaches() {
	ctx := context.Background()
	cache.SetList(suite.cache, cache.ListKey("entries", "cb-1"), []domain.Entry{{ID: "e-1"}})
	cache.SetList(suite.cache, cache.ListKey("cashbook-members", "cb-1"), []domain.CashbookMember{{UserID: "u-1"}})
	cache.SetEntity(suite.cache, cache.EntityKey("cashbook", "cb-1"), domain.Cashbook{ID: "cb-1"})

	suite.mockAPI.On("DeleteCashbook", ctx, "cb-1").Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteCashbook(ctx, "cb-1"))

	_, okEntries := cache.GetList[domain.Entry](suite.cache, cache.ListKey("entries", "cb-1"))
	_, okMembers := cache.GetList[domain.CashbookMember](suite.cache, cache.ListKey("cashbook-members", "cb-1"))
	_, okEntity := cache.GetEntity[domain.Cashbook](suite.cache, cache.EntityKey("cashbook", "cb-1"))
	suite.False(okEntries)
	suite.False(okMembers)
	suite.False(okEntity)
	suite.mockAPI.AssertExpectations(suite.T())
}

func TestCashbookServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashbookServiceTestSuite))
}
