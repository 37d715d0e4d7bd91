package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tresahq/cashbook_cli/internal/cache"
	"github.com/tresahq/cashbook_cli/internal/core/domain"
	portssvc "github.com/tresahq/cashbook_cli/internal/core/ports/services"
	"github.com/tresahq/cashbook_cli/internal/core/services"
	"github.com/tresahq/cashbook_cli/internal/dto"
)

// --- Mock WorkspaceAPI ---

type MockWorkspaceAPI struct {
	mock.Mock
}

func (m *MockWorkspaceAPI) ListWorkspaces(ctx context.Context) (dto.WorkspaceListData, error) {
	args := m.Called(ctx)
	return args.Get(0).(dto.WorkspaceListData), args.Error(1)
}

func (m *MockWorkspaceAPI) CreateWorkspace(ctx context.Context, req dto.CreateWorkspaceRequest) (*domain.Workspace, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceAPI) UpdateWorkspace(ctx context.Context, workspaceID string, req dto.UpdateWorkspaceRequest) (*domain.Workspace, error) {
	args := m.Called(ctx, workspaceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceAPI) DeleteWorkspace(ctx context.Context, workspaceID string) error {
	args := m.Called(ctx, workspaceID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type WorkspaceServiceTestSuite struct {
	suite.Suite
	mockAPI *MockWorkspaceAPI
	cache   *cache.Cache
	service portssvc.WorkspaceSvcFacade
}

func (suite *WorkspaceServiceTestSuite) SetupTest() {
	suite.mockAPI = new(MockWorkspaceAPI)
	suite.cache = cache.New()
	suite.service = services.NewWorkspaceService(suite.mockAPI, suite.cache)
}

// --- Test Cases ---

func (suite *WorkspaceServiceTestSuite) TestListWorkspaces_MergesOwnedAndMember() {
	ctx := context.Background()
	shared := domain.Workspace{ID: "ws-a", Name: "Shared", Type: domain.WorkspaceBusiness}
	joined := domain.Workspace{ID: "ws-b", Name: "Joined", Type: domain.WorkspaceBusiness}

	// ws-a shows up in both lists; the merged result carries it once, owned
	// entries first.
	suite.mockAPI.On("ListWorkspaces", ctx).Return(dto.WorkspaceListData{
		Owned:  []domain.Workspace{shared},
		Member: []domain.Workspace{shared, joined},
	}, nil).Once()

	workspaces, err := suite.service.ListWorkspaces(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(workspaces, 2)
	suite.Equal("ws-a", workspaces[0].ID)
	suite.Equal("ws-b", workspaces[1].ID)
	suite.mockAPI.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestListWorkspaces_SecondReadCached() {
	ctx := context.Background()
	suite.mockAPI.On("ListWorkspaces", ctx).Return(dto.WorkspaceListData{
		Owned: []domain.Workspace{{ID: "ws-1"}},
	}, nil).Once()

	_, err := suite.service.ListWorkspaces(ctx)
	suite.Require().NoError(err)
	cached, err := suite.service.ListWorkspaces(ctx)
	suite.Require().NoError(err)
	suite.Len(cached, 1)
	suite.mockAPI.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestCreateWorkspace_InvalidatesList() {
	ctx := context.Background()
	created := &domain.Workspace{ID: "ws-new", Name: "Fresh"}

	suite.mockAPI.On("ListWorkspaces", ctx).Return(dto.WorkspaceListData{}, nil).Twice()
	suite.mockAPI.On("CreateWorkspace", ctx, mock.AnythingOfType("dto.CreateWorkspaceRequest")).
		Return(created, nil).Once()

	_, err := suite.service.ListWorkspaces(ctx)
	suite.Require().NoError(err)

	workspace, err := suite.service.CreateWorkspace(ctx, dto.CreateWorkspaceRequest{
		Name: "Fresh",
		Type: domain.WorkspaceBusiness,
	})
	suite.Require().NoError(err)
	suite.Equal("ws-new", workspace.ID)

	// The next list read must hit the API again.
	_, err = suite.service.ListWorkspaces(ctx)
	suite.Require().NoError(err)
	suite.mockAPI.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestDeleteWorkspace_APIError() {
	ctx := context.Background()
	suite.mockAPI.On("DeleteWorkspace", ctx, "ws-1").Return(errors.New("forbidden")).Once()

	err := suite.service.DeleteWorkspace(ctx, "ws-1")
	suite.Error(err)
	suite.mockAPI.AssertExpectations(suite.T())
}

func TestWorkspaceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkspaceServiceTestSuite))
}
