package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tresahq/cashbook_cli/internal/apperrors"
	"github.com/tresahq/cashbook_cli/internal/core/domain"
	portssvc "github.com/tresahq/cashbook_cli/internal/core/ports/services"
	"github.com/tresahq/cashbook_cli/internal/core/services"
)

// --- Mock LocalBookRepository ---

type MockLocalBookRepository struct {
	mock.Mock
}

func (m *MockLocalBookRepository) ListBooks(ctx context.Context) ([]domain.LocalBook, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocalBook), args.Error(1)
}

func (m *MockLocalBookRepository) FindBookByID(ctx context.Context, bookID string) (*domain.LocalBook, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocalBook), args.Error(1)
}

func (m *MockLocalBookRepository) ListEntries(ctx context.Context, bookID string) ([]domain.LocalEntry, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocalEntry), args.Error(1)
}

func (m *MockLocalBookRepository) FindEntryByID(ctx context.Context, bookID, entryID string) (*domain.LocalEntry, error) {
	args := m.Called(ctx, bookID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocalEntry), args.Error(1)
}

func (m *MockLocalBookRepository) SaveBook(ctx context.Context, book domain.LocalBook) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockLocalBookRepository) RenameBook(ctx context.Context, bookID, name string) error {
	args := m.Called(ctx, bookID, name)
	return args.Error(0)
}

func (m *MockLocalBookRepository) DeleteBook(ctx context.Context, bookID string) error {
	args := m.Called(ctx, bookID)
	return args.Error(0)
}

func (m *MockLocalBookRepository) SaveEntry(ctx context.Context, entry domain.LocalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLocalBookRepository) DeleteEntry(ctx context.Context, bookID, entryID string) error {
	args := m.Called(ctx, bookID, entryID)
	return args.Error(0)
}

func (m *MockLocalBookRepository) TransferEntry(ctx context.Context, copy domain.LocalEntry, sourceBookID, removeSourceID string) error {
	args := m.Called(ctx, copy, sourceBookID, removeSourceID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type LocalBookServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLocalBookRepository
	service  portssvc.LocalBookSvcFacade
}

func (suite *LocalBookServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLocalBookRepository)
	suite.service = services.NewLocalBookService(suite.mockRepo)
}

func (suite *LocalBookServiceTestSuite) sourceEntry() *domain.LocalEntry {
	return &domain.LocalEntry{
		ID:          "entry-src",
		BookID:      "book-a",
		Type:        domain.EntryExpense,
		Amount:      "12.30",
		Description: "coffee beans",
		EntryDate:   "2026-08-01",
	}
}

// --- Test Cases ---

func (suite *LocalBookServiceTestSuite) TestCreateBook() {
	ctx := context.Background()
	suite.mockRepo.On("SaveBook", ctx, mock.AnythingOfType("domain.LocalBook")).Return(nil).Once()

	book, err := suite.service.CreateBook(ctx, "Groceries")
	suite.Require().NoError(err)
	suite.NotEmpty(book.ID)
	suite.Equal("Groceries", book.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LocalBookServiceTestSuite) TestCreateBook_EmptyName() {
	_, err := suite.service.CreateBook(context.Background(), "")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBook", mock.Anything, mock.Anything)
}

func (suite *LocalBookServiceTestSuite) TestAddEntry_RejectsBadAmount() {
	_, err := suite.service.AddEntry(context.Background(), "book-a", domain.LocalEntry{
		Type:   domain.EntryIncome,
		Amount: "12,30",
	})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *LocalBookServiceTestSuite) TestAddEntry_RejectsUnknownType() {
	_, err := suite.service.AddEntry(context.Background(), "book-a", domain.LocalEntry{
		Type:   "TRANSFER",
		Amount: "5",
	})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LocalBookServiceTestSuite) TestMoveEntry_FreshIDAndSourceRemoved() {
	ctx := context.Background()
	source := suite.sourceEntry()
	suite.mockRepo.On("FindEntryByID", ctx, "book-a", "entry-src").Return(source, nil).Once()
	suite.mockRepo.On("FindBookByID", ctx, "book-b").Return(&domain.LocalBook{ID: "book-b"}, nil).Once()
	suite.mockRepo.On("TransferEntry", ctx, mock.AnythingOfType("domain.LocalEntry"), "book-a", "entry-src").
		Run(func(args mock.Arguments) {
			moved := args.Get(1).(domain.LocalEntry)
			suite.NotEqual("entry-src", moved.ID)
			suite.Equal("book-b", moved.BookID)
			suite.Equal(domain.EntryExpense, moved.Type)
			suite.Equal("12.30", moved.Amount)
		}).Return(nil).Once()

	moved, err := suite.service.MoveEntry(ctx, "book-a", "book-b", "entry-src")
	suite.Require().NoError(err)
	suite.NotEqual("entry-src", moved.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LocalBookServiceTestSuite) TestCopyEntry_SourceUntouched() {
	ctx := context.Background()
	source := suite.sourceEntry()
	suite.mockRepo.On("FindEntryByID", ctx, "book-a", "entry-src").Return(source, nil).Once()
	suite.mockRepo.On("FindBookByID", ctx, "book-b").Return(&domain.LocalBook{ID: "book-b"}, nil).Once()
	// An empty removeSourceID means no delete of the source entry.
	suite.mockRepo.On("TransferEntry", ctx, mock.AnythingOfType("domain.LocalEntry"), "book-a", "").
		Return(nil).Once()

	copied, err := suite.service.CopyEntry(ctx, "book-a", "book-b", "entry-src")
	suite.Require().NoError(err)
	suite.NotEqual("entry-src", copied.ID)
	suite.Equal(domain.EntryExpense, copied.Type)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LocalBookServiceTestSuite) TestCopyOppositeEntry_FlipsType() {
	ctx := context.Background()
	source := suite.sourceEntry()
	suite.mockRepo.On("FindEntryByID", ctx, "book-a", "entry-src").Return(source, nil).Once()
	suite.mockRepo.On("FindBookByID", ctx, "book-b").Return(&domain.LocalBook{ID: "book-b"}, nil).Once()
	suite.mockRepo.On("TransferEntry", ctx, mock.AnythingOfType("domain.LocalEntry"), "book-a", "").
		Run(func(args mock.Arguments) {
			flipped := args.Get(1).(domain.LocalEntry)
			suite.Equal(domain.EntryIncome, flipped.Type)
			suite.Equal("12.30", flipped.Amount)
		}).Return(nil).Once()

	copied, err := suite.service.CopyOppositeEntry(ctx, "book-a", "book-b", "entry-src")
	suite.Require().NoError(err)
	suite.Equal(domain.EntryIncome, copied.Type)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LocalBookServiceTestSuite) TestDuplicateBook_FreshEntryIDs() {
	ctx := context.Background()
	sourceBook := &domain.LocalBook{ID: "book-a", Name: "Trip"}
	entries := []domain.LocalEntry{
		{ID: "e-1", BookID: "book-a", Type: domain.EntryIncome, Amount: "10", EntryDate: "2026-08-01"},
		{ID: "e-2", BookID: "book-a", Type: domain.EntryExpense, Amount: "4", EntryDate: "2026-08-02"},
	}

	suite.mockRepo.On("FindBookByID", ctx, "book-a").Return(sourceBook, nil).Once()
	suite.mockRepo.On("ListEntries", ctx, "book-a").Return(entries, nil).Once()
	suite.mockRepo.On("SaveBook", ctx, mock.AnythingOfType("domain.LocalBook")).Return(nil).Once()

	copiedIDs := make(map[string]bool)
	suite.mockRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.LocalEntry")).
		Run(func(args mock.Arguments) {
			saved := args.Get(1).(domain.LocalEntry)
			suite.NotEqual("e-1", saved.ID)
			suite.NotEqual("e-2", saved.ID)
			suite.False(copiedIDs[saved.ID], "duplicate id minted")
			copiedIDs[saved.ID] = true
		}).Return(nil).Twice()

	copyBook, err := suite.service.DuplicateBook(ctx, "book-a")
	suite.Require().NoError(err)
	suite.Equal("Trip (Copy)", copyBook.Name)
	suite.NotEqual("book-a", copyBook.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LocalBookServiceTestSuite) TestBookBalance() {
	ctx := context.Background()
	suite.mockRepo.On("ListEntries", ctx, "book-a").Return([]domain.LocalEntry{
		{ID: "e-1", Type: domain.EntryIncome, Amount: "100.50"},
		{ID: "e-2", Type: domain.EntryExpense, Amount: "40.25"},
	}, nil).Once()

	balance, err := suite.service.BookBalance(ctx, "book-a")
	suite.Require().NoError(err)
	suite.Equal("60.25", balance.String())
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestLocalBookServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LocalBookServiceTestSuite))
}
