package repository

import (
	"testing"

	"employee-records/internal/database/models"
	"employee-records/internal/testutils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// EmployeeRepositoryTestSuite tests the EmployeeRepository
type EmployeeRepositoryTestSuite struct {
	suite.Suite
	setup         func(t *testing.T) *testutils.BaseTestSuite
	baseTestSuite *testutils.BaseTestSuite
	repo          *EmployeeRepository
	factory       *testutils.EmployeeFactory
}

// SetupSuite runs before all tests in the suite
func (suite *EmployeeRepositoryTestSuite) SetupSuite() {
	if suite.setup == nil {
		suite.setup = testutils.SetupTestSuite
	}
	suite.baseTestSuite = suite.setup(suite.T())

	suite.repo = NewEmployeeRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewEmployeeFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *EmployeeRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *EmployeeRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *EmployeeRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *EmployeeRepositoryTestSuite) seed(employees ...*models.Employee) {
	for _, e := range employees {
		suite.Require().NoError(suite.repo.Create(e))
	}
}

func names(employees []models.Employee) []string {
	out := make([]string, 0, len(employees))
	for _, e := range employees {
		out = append(out, e.Name)
	}
	return out
}

// TestCreate tests creating a new employee
func (suite *EmployeeRepositoryTestSuite) TestCreate() {
	employee := suite.factory.Create()

	err := suite.repo.Create(employee)

	suite.NoError(err)
	suite.NotZero(employee.ID)
}

// TestCreateAssignsDistinctIDs tests that identifiers are unique and increasing
func (suite *EmployeeRepositoryTestSuite) TestCreateAssignsDistinctIDs() {
	first := suite.factory.Create()
	second := suite.factory.Create()
	suite.seed(first, second)

	suite.Greater(second.ID, first.ID)
}

// TestCreateAllowsDuplicateEmail tests that email carries no uniqueness constraint
func (suite *EmployeeRepositoryTestSuite) TestCreateAllowsDuplicateEmail() {
	first := suite.factory.Create()
	second := suite.factory.Create()
	second.Email = first.Email

	suite.NoError(suite.repo.Create(first))
	suite.NoError(suite.repo.Create(second))
}

// TestGetByID tests retrieving an employee by ID
func (suite *EmployeeRepositoryTestSuite) TestGetByID() {
	employee := suite.factory.WithNameAndSalary("Alice", 50000)
	suite.seed(employee)

	retrieved, err := suite.repo.GetByID(employee.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(employee.ID, retrieved.ID)
	suite.Equal("Alice", retrieved.Name)
	suite.Equal(employee.Email, retrieved.Email)
	suite.True(decimal.NewFromInt(50000).Equal(retrieved.Salary))
	suite.Nil(retrieved.References)
}

// TestGetByIDKeepsFractionalSalary tests that decimal salaries survive storage
func (suite *EmployeeRepositoryTestSuite) TestGetByIDKeepsFractionalSalary() {
	employee := suite.factory.Create()
	employee.Salary = decimal.RequireFromString("1234.56")
	suite.seed(employee)

	retrieved, err := suite.repo.GetByID(employee.ID)

	suite.NoError(err)
	suite.True(decimal.RequireFromString("1234.56").Equal(retrieved.Salary), retrieved.Salary.String())
}

// TestGetByIDNotFound tests retrieving a non-existent employee
func (suite *EmployeeRepositoryTestSuite) TestGetByIDNotFound() {
	retrieved, err := suite.repo.GetByID(99999)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(retrieved)
}

// TestGetAll tests listing employees in insertion order
func (suite *EmployeeRepositoryTestSuite) TestGetAll() {
	suite.seed(
		suite.factory.WithName("Charlie"),
		suite.factory.WithName("Alice"),
		suite.factory.WithName("Bob"),
	)

	employees, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Equal([]string{"Charlie", "Alice", "Bob"}, names(employees))
}

// TestGetAllEmpty tests listing an empty store
func (suite *EmployeeRepositoryTestSuite) TestGetAllEmpty() {
	employees, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Empty(employees)
}

// TestUpdate tests overwriting an employee's fields
func (suite *EmployeeRepositoryTestSuite) TestUpdate() {
	employee := suite.factory.WithNameAndSalary("Alice", 50000)
	suite.seed(employee)
	originalID := employee.ID

	employee.Name = "Alicia"
	employee.Email = "alicia@example.com"
	employee.Salary = decimal.NewFromInt(65000)
	err := suite.repo.Update(employee)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(originalID)
	suite.NoError(err)
	suite.Equal(originalID, retrieved.ID)
	suite.Equal("Alicia", retrieved.Name)
	suite.Equal("alicia@example.com", retrieved.Email)
	suite.True(decimal.NewFromInt(65000).Equal(retrieved.Salary))
}

// TestUpdateLeavesReferencesUntouched tests that references is never overwritten
func (suite *EmployeeRepositoryTestSuite) TestUpdateLeavesReferencesUntouched() {
	refs := "manager: Dana"
	employee := suite.factory.Create()
	employee.References = &refs
	suite.seed(employee)

	employee.References = nil
	employee.Name = "Renamed"
	suite.NoError(suite.repo.Update(employee))

	retrieved, err := suite.repo.GetByID(employee.ID)
	suite.NoError(err)
	suite.Equal("Renamed", retrieved.Name)
	suite.Require().NotNil(retrieved.References)
	suite.Equal(refs, *retrieved.References)
}

// TestDelete tests deleting an employee
func (suite *EmployeeRepositoryTestSuite) TestDelete() {
	keep := suite.factory.Create()
	drop := suite.factory.Create()
	suite.seed(keep, drop)

	err := suite.repo.Delete(drop.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(drop.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.GetByID(keep.ID)
	suite.NoError(err)
}

// TestDeleteMissingIsNoop tests deleting an id that is not stored
func (suite *EmployeeRepositoryTestSuite) TestDeleteMissingIsNoop() {
	suite.seed(suite.factory.Create())

	err := suite.repo.Delete(99999)

	suite.NoError(err)
	total, err := suite.repo.Count()
	suite.NoError(err)
	suite.Equal(int64(1), total)
}

// TestCreateBatch tests inserting many employees at once
func (suite *EmployeeRepositoryTestSuite) TestCreateBatch() {
	batch := []models.Employee{
		*suite.factory.WithName("Alice"),
		*suite.factory.WithName("Bob"),
	}

	err := suite.repo.CreateBatch(batch)
	suite.NoError(err)

	employees, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Equal([]string{"Alice", "Bob"}, names(employees))
}

// TestCreateBatchEmpty tests that an empty batch writes nothing
func (suite *EmployeeRepositoryTestSuite) TestCreateBatchEmpty() {
	suite.NoError(suite.repo.CreateBatch(nil))

	total, err := suite.repo.Count()
	suite.NoError(err)
	suite.Zero(total)
}

// TestCreateBatchLargerThanChunk tests batches spanning several INSERT statements
func (suite *EmployeeRepositoryTestSuite) TestCreateBatchLargerThanChunk() {
	batch := make([]models.Employee, 0, batchSize*2+5)
	for i := 0; i < batchSize*2+5; i++ {
		batch = append(batch, *suite.factory.Create())
	}

	suite.NoError(suite.repo.CreateBatch(batch))

	total, err := suite.repo.Count()
	suite.NoError(err)
	suite.Equal(int64(batchSize*2+5), total)
}

func (suite *EmployeeRepositoryTestSuite) seedFilterFixture() {
	suite.seed(
		suite.factory.WithNameAndSalary("Alice", 50000),
		suite.factory.WithNameAndSalary("Bob", 60000),
		suite.factory.WithNameAndSalary("Charlie", 55000),
	)
}

// TestFilter tests the name and salary predicates alone and combined
func (suite *EmployeeRepositoryTestSuite) TestFilter() {
	minSalary := decimal.NewFromInt(55000)
	highSalary := decimal.NewFromInt(100000)

	testCases := []struct {
		name     string
		filter   EmployeeFilter
		expected []string
	}{
		{name: "no predicates", filter: EmployeeFilter{}, expected: []string{"Alice", "Bob", "Charlie"}},
		{name: "name substring", filter: EmployeeFilter{Name: "li"}, expected: []string{"Alice", "Charlie"}},
		{name: "minimum salary inclusive", filter: EmployeeFilter{MinSalary: &minSalary}, expected: []string{"Bob", "Charlie"}},
		{name: "both predicates", filter: EmployeeFilter{Name: "li", MinSalary: &minSalary}, expected: []string{"Charlie"}},
		{name: "no match", filter: EmployeeFilter{MinSalary: &highSalary}, expected: []string{}},
	}

	suite.seedFilterFixture()
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			employees, err := suite.repo.Filter(tc.filter)
			suite.NoError(err)
			suite.Equal(tc.expected, names(employees))
		})
	}
}

// TestFilterEscapesWildcards tests that LIKE metacharacters match literally
func (suite *EmployeeRepositoryTestSuite) TestFilterEscapesWildcards() {
	suite.seed(
		suite.factory.WithName("100% Bob"),
		suite.factory.WithName("Bob_Smith"),
		suite.factory.WithName("Bobby"),
	)

	employees, err := suite.repo.Filter(EmployeeFilter{Name: "%"})
	suite.NoError(err)
	suite.Equal([]string{"100% Bob"}, names(employees))

	employees, err = suite.repo.Filter(EmployeeFilter{Name: "_"})
	suite.NoError(err)
	suite.Equal([]string{"Bob_Smith"}, names(employees))
}

// TestCount tests counting stored employees
func (suite *EmployeeRepositoryTestSuite) TestCount() {
	suite.seedFilterFixture()

	total, err := suite.repo.Count()

	suite.NoError(err)
	suite.Equal(int64(3), total)
}

// TestEmployeeRepositoryTestSuite runs the test suite against SQLite
func TestEmployeeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeRepositoryTestSuite))
}
