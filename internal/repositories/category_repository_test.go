package repositories

import (
	"testing"

	"ledgerflow/internal/database"
	apperrors "ledgerflow/internal/errors"
	"ledgerflow/internal/models"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CategoryRepositorySuite defines the test suite for categoryRepository
type CategoryRepositorySuite struct {
	suite.Suite
	db        *gorm.DB
	repo      CategoryRepositoryInterface
	testOwner *models.Owner
}

// SetupTest runs before each test in the suite
func (s *CategoryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db)
	s.testOwner = database.CreateTestOwner(s.T(), s.db)
}

// TearDownTest runs after each test in the suite
func (s *CategoryRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestCategoryRepositorySuite runs the test suite
func TestCategoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}

func (s *CategoryRepositorySuite) TestGetByID() {
	category := database.CreateTestCategory(s.T(), s.db, s.testOwner.ID, models.TransactionTypeExpense)

	found, err := s.repo.GetByID(category.ID)
	s.NoError(err)
	s.Equal(category.ID, found.ID)
	s.Equal(category.Name, found.Name)
}

func (s *CategoryRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(9999)
	s.Error(err)
	s.True(apperrors.IsNotFound(err))
}

func (s *CategoryRepositorySuite) TestGetByIDForOwner() {
	category := database.CreateTestCategory(s.T(), s.db, s.testOwner.ID, models.TransactionTypeExpense)

	found, err := s.repo.GetByIDForOwner(category.ID, s.testOwner.ID)
	s.NoError(err)
	s.Equal(category.ID, found.ID)
}

func (s *CategoryRepositorySuite) TestGetByIDForOwner_CrossOwnerIsNotFound() {
	other := database.CreateTestOwner(s.T(), s.db)
	category := database.CreateTestCategory(s.T(), s.db, other.ID, models.TransactionTypeExpense)

	_, err := s.repo.GetByIDForOwner(category.ID, s.testOwner.ID)
	s.Error(err)
	s.True(apperrors.IsNotFound(err))
}
