package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identityDomain "github.com/allisson/iga/internal/identity/domain"
	usecase "github.com/allisson/iga/internal/identity/usecase"
	"github.com/allisson/iga/internal/testutil"
)

type identityRepositoryFixture struct {
	driver  string
	setup   func(t *testing.T) *sql.DB
	cleanup func(t *testing.T, db *sql.DB)
	newRepo func(db *sql.DB) usecase.IdentityRepository
}

func identityRepositoryFixtures() []identityRepositoryFixture {
	return []identityRepositoryFixture{
		{
			driver:  "postgres",
			setup:   testutil.SetupPostgresDB,
			cleanup: testutil.CleanupPostgresDB,
			newRepo: func(db *sql.DB) usecase.IdentityRepository { return NewPostgreSQLIdentityRepository(db) },
		},
		{
			driver:  "mysql",
			setup:   testutil.SetupMySQLDB,
			cleanup: testutil.CleanupMySQLDB,
			newRepo: func(db *sql.DB) usecase.IdentityRepository { return NewMySQLIdentityRepository(db) },
		},
	}
}

func TestIdentityRepository_Database(t *testing.T) {
	for _, fx := range identityRepositoryFixtures() {
		t.Run(fx.driver, func(t *testing.T) {
			db := fx.setup(t)
			defer testutil.TeardownDB(t, db)
			defer fx.cleanup(t, db)

			repo := fx.newRepo(db)
			ctx := context.Background()

			identity := newIdentity()
			require.NoError(t, repo.Create(ctx, identity))
			require.Positive(t, identity.ID)

			t.Run("GetByID", func(t *testing.T) {
				found, err := repo.GetByID(ctx, identity.ID)
				require.NoError(t, err)

				assert.Equal(t, "EMP-1001", found.EmployeeID)
				assert.Equal(t, "ada@example.com", found.PrimaryEmail)
				assert.Equal(t, "developer", found.BusinessRole)
				assert.True(t, found.Entitlements.Equal(identity.Entitlements))
				require.NotNil(t, found.HireDate)
				assert.Equal(t, "2024-03-04", found.HireDate.Format(time.DateOnly))
				assert.Nil(t, found.TerminationDate)
				assert.WithinDuration(t, identity.CreatedAt, found.CreatedAt, time.Second)
			})

			t.Run("GetByID_NotFound", func(t *testing.T) {
				_, err := repo.GetByID(ctx, identity.ID+1000)
				assert.ErrorIs(t, err, identityDomain.ErrIdentityNotFound)
			})

			t.Run("Create_DuplicateEmployeeID", func(t *testing.T) {
				duplicate := newIdentity()
				duplicate.PrimaryEmail = "other@example.com"

				err := repo.Create(ctx, duplicate)
				assert.ErrorIs(t, err, identityDomain.ErrIdentityAlreadyExists)
			})

			t.Run("Create_DuplicatePrimaryEmail", func(t *testing.T) {
				duplicate := newIdentity()
				duplicate.EmployeeID = "EMP-2002"

				err := repo.Create(ctx, duplicate)
				assert.ErrorIs(t, err, identityDomain.ErrIdentityAlreadyExists)
			})

			t.Run("Create_EmployeeIDIsCaseSensitive", func(t *testing.T) {
				upper := newIdentity()
				upper.EmployeeID = "EMP-CASE"
				upper.PrimaryEmail = "case.upper@example.com"
				upper.BusinessRole = "contractor"
				require.NoError(t, repo.Create(ctx, upper))

				lower := newIdentity()
				lower.EmployeeID = "emp-case"
				lower.PrimaryEmail = "case.lower@example.com"
				lower.BusinessRole = "contractor"
				require.NoError(t, repo.Create(ctx, lower))

				found, err := repo.GetByID(ctx, lower.ID)
				require.NoError(t, err)
				assert.Equal(t, "emp-case", found.EmployeeID)
			})

			t.Run("ListByBusinessRole", func(t *testing.T) {
				testutil.CreateTestIdentity(t, db, fx.driver, "EMP-3003", "developer")
				testutil.CreateTestIdentity(t, db, fx.driver, "EMP-4004", "tester")

				developers, err := repo.ListByBusinessRole(ctx, "developer", 0, 10)
				require.NoError(t, err)
				require.Len(t, developers, 2)
				assert.Equal(t, identity.ID, developers[0].ID)
				assert.Equal(t, "EMP-3003", developers[1].EmployeeID)

				page, err := repo.ListByBusinessRole(ctx, "developer", 1, 10)
				require.NoError(t, err)
				require.Len(t, page, 1)
				assert.Equal(t, "EMP-3003", page[0].EmployeeID)

				none, err := repo.ListByBusinessRole(ctx, "manager", 0, 10)
				require.NoError(t, err)
				assert.NotNil(t, none)
				assert.Empty(t, none)
			})

			t.Run("Update", func(t *testing.T) {
				identity.Department = "Research"
				identity.LastModifiedBy = "hr-bot"
				require.NoError(t, repo.Update(ctx, identity))

				found, err := repo.GetByID(ctx, identity.ID)
				require.NoError(t, err)
				assert.Equal(t, "Research", found.Department)
				assert.Equal(t, "hr-bot", found.LastModifiedBy)
				assert.Equal(t, "hr", found.CreatedBy)
			})

			t.Run("Update_NotFound", func(t *testing.T) {
				missing := newIdentity()
				missing.ID = identity.ID + 1000
				missing.EmployeeID = "EMP-9999"
				missing.PrimaryEmail = "missing@example.com"

				err := repo.Update(ctx, missing)
				assert.ErrorIs(t, err, identityDomain.ErrIdentityNotFound)
			})
		})
	}
}
