//go:build integration
// +build integration

package repository

import (
	"testing"

	"employee-records/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// TestEmployeeRepositoryPostgres runs the repository suite against a dockerized PostgreSQL
func TestEmployeeRepositoryPostgres(t *testing.T) {
	suite.Run(t, &EmployeeRepositoryTestSuite{setup: testutils.SetupPostgresTestSuite})
}
