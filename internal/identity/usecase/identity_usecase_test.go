package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	databaseMocks "github.com/allisson/iga/internal/database/mocks"
	entitlementService "github.com/allisson/iga/internal/entitlement/service"
	apperrors "github.com/allisson/iga/internal/errors"
	identityDomain "github.com/allisson/iga/internal/identity/domain"
	identityMocks "github.com/allisson/iga/internal/identity/usecase/mocks"
	provisioningDomain "github.com/allisson/iga/internal/provisioning/domain"
	provisioningMocks "github.com/allisson/iga/internal/provisioning/service/mocks"
)

type testDeps struct {
	txManager *databaseMocks.MockTxManager
	repo      *identityMocks.MockIdentityRepository
	gateway   *provisioningMocks.MockGateway
	useCase   UseCase
}

func setupUseCase(t *testing.T) *testDeps {
	t.Helper()

	table, err := entitlementService.BuiltinRoleTable()
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	resolver, err := entitlementService.NewResolver(table, logger)
	require.NoError(t, err)

	deps := &testDeps{
		txManager: databaseMocks.NewMockTxManager(),
		repo:      &identityMocks.MockIdentityRepository{},
		gateway:   &provisioningMocks.MockGateway{},
	}
	deps.useCase = NewIdentityUseCase(deps.txManager, deps.repo, resolver, deps.gateway, logger)

	t.Cleanup(func() {
		deps.repo.AssertExpectations(t)
		deps.gateway.AssertExpectations(t)
	})

	return deps
}

func ptr[T any](v T) *T { return &v }

func createInput(role string) *identityDomain.CreateIdentityInput {
	return &identityDomain.CreateIdentityInput{
		EmployeeID:   "EMP-1001",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		DisplayName:  "Ada Lovelace",
		PrimaryEmail: "Ada@Example.com",
		Department:   "Engineering",
		BusinessRole: role,
		Actor:        "hr",
	}
}

// storedIdentity returns a persisted developer as the repository would load it.
func storedIdentity(t *testing.T) *identityDomain.Identity {
	t.Helper()
	table, err := entitlementService.BuiltinRoleTable()
	require.NoError(t, err)

	identity := createInput("developer").NewIdentity()
	identity.ID = 1
	developer := table.Roles["developer"]
	identity.Entitlements = developer.Clone()
	return identity
}

func successResult() *provisioningDomain.Result {
	return &provisioningDomain.Result{Target: "slack", Success: true, DownstreamAccountID: "U1"}
}

func TestIdentityUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_DeveloperEntitlements", func(t *testing.T) {
		deps := setupUseCase(t)

		deps.repo.On("Create", mock.Anything, mock.MatchedBy(func(i *identityDomain.Identity) bool {
			grant, ok := i.Entitlements.Grant("slack")
			return ok &&
				i.BusinessRole == "developer" &&
				i.PrimaryEmail == "ada@example.com" &&
				assert.ObjectsAreEqual([]string{"#dev-team", "#general", "#tech-updates"}, grant.Channels) &&
				assert.ObjectsAreEqual([]string{"read", "write", "code_access"}, i.Entitlements.Permissions)
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*identityDomain.Identity).ID = 1
		}).Return(nil).Once()
		deps.gateway.On("Provision", mock.Anything, mock.AnythingOfType("*domain.Identity")).
			Return(successResult()).
			Once()

		output, err := deps.useCase.Create(ctx, createInput("Developer"))

		require.NoError(t, err)
		assert.Equal(t, int64(1), output.Identity.ID)
		assert.Equal(t, "hr", output.Identity.CreatedBy)
		require.NotNil(t, output.Provisioning)
		assert.True(t, output.Provisioning.Success)
		assert.Equal(t, "U1", output.Provisioning.DownstreamAccountID)
	})

	t.Run("Success_UnknownRoleGetsDefault", func(t *testing.T) {
		deps := setupUseCase(t)

		deps.repo.On("Create", mock.Anything, mock.MatchedBy(func(i *identityDomain.Identity) bool {
			grant, _ := i.Entitlements.Grant("slack")
			return i.BusinessRole == "astronaut" &&
				assert.ObjectsAreEqual([]string{"#general"}, grant.Channels) &&
				assert.ObjectsAreEqual([]string{"read"}, i.Entitlements.Permissions)
		})).Return(nil).Once()
		deps.gateway.On("Provision", mock.Anything, mock.Anything).Return(successResult()).Once()

		_, err := deps.useCase.Create(ctx, createInput("Astronaut"))

		require.NoError(t, err)
	})

	t.Run("Success_ProvisioningFailureStillPersists", func(t *testing.T) {
		deps := setupUseCase(t)

		deps.repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*identityDomain.Identity).ID = 5
		}).Return(nil).Once()
		deps.gateway.On("Provision", mock.Anything, mock.Anything).
			Return(provisioningDomain.NewFailedResult("slack", "chat workspace returned status 503")).
			Once()

		output, err := deps.useCase.Create(ctx, createInput("developer"))

		require.NoError(t, err)
		assert.Equal(t, int64(5), output.Identity.ID)
		assert.False(t, output.Provisioning.Success)
		assert.Contains(t, output.Provisioning.Error, "503")
	})

	t.Run("Error_DuplicateEmployeeID", func(t *testing.T) {
		deps := setupUseCase(t)

		deps.repo.On("Create", mock.Anything, mock.Anything).
			Return(identityDomain.ErrIdentityAlreadyExists).
			Once()

		output, err := deps.useCase.Create(ctx, createInput("developer"))

		assert.Nil(t, output)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		deps.gateway.AssertNotCalled(t, "Provision", mock.Anything, mock.Anything)
	})

	t.Run("Error_BlankRole", func(t *testing.T) {
		deps := setupUseCase(t)

		_, err := deps.useCase.Create(ctx, createInput("   "))

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		deps.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Error_Validation", func(t *testing.T) {
		deps := setupUseCase(t)
		input := createInput("developer")
		input.PrimaryEmail = "not-an-email"

		_, err := deps.useCase.Create(ctx, input)

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Contains(t, err.Error(), "primary_email")
		deps.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Error_TransactionFailureSkipsProvisioning", func(t *testing.T) {
		deps := setupUseCase(t)
		deps.txManager.Passthrough = false
		deps.txManager.On("WithTx", mock.Anything, mock.Anything).Return(errors.New("commit failed")).Once()

		_, err := deps.useCase.Create(ctx, createInput("developer"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "commit failed")
		deps.gateway.AssertNotCalled(t, "Provision", mock.Anything, mock.Anything)
		deps.txManager.AssertExpectations(t)
	})
}

func TestIdentityUseCase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		deps := setupUseCase(t)
		identity := storedIdentity(t)
		deps.repo.On("GetByID", ctx, int64(1)).Return(identity, nil).Once()

		got, err := deps.useCase.Get(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, identity, got)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		deps := setupUseCase(t)
		deps.repo.On("GetByID", ctx, int64(99999)).Return(nil, identityDomain.ErrIdentityNotFound).Once()

		got, err := deps.useCase.Get(ctx, 99999)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestIdentityUseCase_ListByRole(t *testing.T) {
	ctx := context.Background()

	t.Run("NormalizesRole", func(t *testing.T) {
		deps := setupUseCase(t)
		identities := []*identityDomain.Identity{storedIdentity(t)}
		deps.repo.On("ListByBusinessRole", ctx, "developer", 0, 50).Return(identities, nil).Once()

		got, err := deps.useCase.ListByRole(ctx, " DEVELOPER ", 0, 50)

		require.NoError(t, err)
		assert.Equal(t, identities, got)
	})

	t.Run("Error_BlankRole", func(t *testing.T) {
		deps := setupUseCase(t)

		_, err := deps.useCase.ListByRole(ctx, "", 0, 50)

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestIdentityUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RoleChangeReprovisions", func(t *testing.T) {
		deps := setupUseCase(t)

		deps.repo.On("GetByIDForUpdate", mock.Anything, int64(1)).Return(storedIdentity(t), nil).Once()
		deps.repo.On("Update", mock.Anything, mock.MatchedBy(func(i *identityDomain.Identity) bool {
			grant, _ := i.Entitlements.Grant("slack")
			return i.BusinessRole == "manager" &&
				i.LastModifiedBy == "hr" &&
				assert.ObjectsAreEqual([]string{"#management", "#general", "#leadership"}, grant.Channels) &&
				assert.ObjectsAreEqual(
					[]string{"read", "write", "admin", "team_management"},
					i.Entitlements.Permissions,
				)
		})).Return(nil).Once()
		deps.gateway.On("Provision", mock.Anything, mock.MatchedBy(func(i *identityDomain.Identity) bool {
			return i.BusinessRole == "manager"
		})).Return(successResult()).Once()

		output, err := deps.useCase.Update(ctx, 1, &identityDomain.UpdateIdentityInput{
			BusinessRole: ptr("Manager"),
			Actor:        "hr",
		})

		require.NoError(t, err)
		assert.Equal(t, "manager", output.Identity.BusinessRole)
		require.NotNil(t, output.Provisioning)
		assert.True(t, output.Provisioning.Success)
	})

	t.Run("Success_DepartmentOnlyDoesNotProvision", func(t *testing.T) {
		deps := setupUseCase(t)
		before := storedIdentity(t)
		entitlementsBefore := before.Entitlements.Clone()

		deps.repo.On("GetByIDForUpdate", mock.Anything, int64(1)).Return(before, nil).Once()
		deps.repo.On("Update", mock.Anything, mock.MatchedBy(func(i *identityDomain.Identity) bool {
			return i.Department == "Research" && i.Entitlements.Equal(entitlementsBefore)
		})).Return(nil).Once()

		output, err := deps.useCase.Update(ctx, 1, &identityDomain.UpdateIdentityInput{
			Department: ptr("Research"),
		})

		require.NoError(t, err)
		assert.Nil(t, output.Provisioning)
		assert.Equal(t, "developer", output.Identity.BusinessRole)
		deps.gateway.AssertNotCalled(t, "Provision", mock.Anything, mock.Anything)
	})

	t.Run("Success_SameRoleDifferentCaseDoesNotProvision", func(t *testing.T) {
		deps := setupUseCase(t)

		deps.repo.On("GetByIDForUpdate", mock.Anything, int64(1)).Return(storedIdentity(t), nil).Once()
		deps.repo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

		output, err := deps.useCase.Update(ctx, 1, &identityDomain.UpdateIdentityInput{
			BusinessRole: ptr("DEVELOPER"),
		})

		require.NoError(t, err)
		assert.Nil(t, output.Provisioning)
		deps.gateway.AssertNotCalled(t, "Provision", mock.Anything, mock.Anything)
	})

	t.Run("Success_ProvisioningFailureKeepsUpdate", func(t *testing.T) {
		deps := setupUseCase(t)

		deps.repo.On("GetByIDForUpdate", mock.Anything, int64(1)).Return(storedIdentity(t), nil).Once()
		deps.repo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
		deps.gateway.On("Provision", mock.Anything, mock.Anything).
			Return(provisioningDomain.NewFailedResult("slack", "timeout")).
			Once()

		output, err := deps.useCase.Update(ctx, 1, &identityDomain.UpdateIdentityInput{BusinessRole: ptr("tester")})

		require.NoError(t, err)
		assert.Equal(t, "tester", output.Identity.BusinessRole)
		assert.False(t, output.Provisioning.Success)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		deps := setupUseCase(t)

		deps.repo.On("GetByIDForUpdate", mock.Anything, int64(99999)).
			Return(nil, identityDomain.ErrIdentityNotFound).
			Once()

		output, err := deps.useCase.Update(ctx, 99999, &identityDomain.UpdateIdentityInput{
			BusinessRole: ptr("manager"),
		})

		assert.Nil(t, output)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		deps.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		deps.gateway.AssertNotCalled(t, "Provision", mock.Anything, mock.Anything)
	})

	t.Run("Error_Conflict", func(t *testing.T) {
		deps := setupUseCase(t)

		deps.repo.On("GetByIDForUpdate", mock.Anything, int64(1)).Return(storedIdentity(t), nil).Once()
		deps.repo.On("Update", mock.Anything, mock.Anything).Return(identityDomain.ErrIdentityAlreadyExists).Once()

		_, err := deps.useCase.Update(ctx, 1, &identityDomain.UpdateIdentityInput{
			PrimaryEmail: ptr("taken@example.com"),
			BusinessRole: ptr("manager"),
		})

		assert.ErrorIs(t, err, apperrors.ErrConflict)
		deps.gateway.AssertNotCalled(t, "Provision", mock.Anything, mock.Anything)
	})

	t.Run("Error_EmptyPatch", func(t *testing.T) {
		deps := setupUseCase(t)

		_, err := deps.useCase.Update(ctx, 1, &identityDomain.UpdateIdentityInput{Actor: "hr"})

		assert.ErrorIs(t, err, identityDomain.ErrEmptyPatch)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_Validation", func(t *testing.T) {
		deps := setupUseCase(t)

		_, err := deps.useCase.Update(ctx, 1, &identityDomain.UpdateIdentityInput{FirstName: ptr("")})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		deps.repo.AssertNotCalled(t, "GetByIDForUpdate", mock.Anything, mock.Anything)
	})

	t.Run("Error_TerminationBeforeStoredHireDate", func(t *testing.T) {
		deps := setupUseCase(t)
		stored := storedIdentity(t)
		stored.HireDate = ptr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

		deps.repo.On("GetByIDForUpdate", mock.Anything, int64(1)).Return(stored, nil).Once()

		output, err := deps.useCase.Update(ctx, 1, &identityDomain.UpdateIdentityInput{
			TerminationDate: ptr(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
		})

		assert.Nil(t, output)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.ErrorContains(t, err, "termination_date")
		deps.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		deps.gateway.AssertNotCalled(t, "Provision", mock.Anything, mock.Anything)
	})

	t.Run("Error_HireDateAfterStoredLastWorkingDay", func(t *testing.T) {
		deps := setupUseCase(t)
		stored := storedIdentity(t)
		stored.HireDate = ptr(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
		stored.LastWorkingDay = ptr(time.Date(2022, 6, 30, 0, 0, 0, 0, time.UTC))

		deps.repo.On("GetByIDForUpdate", mock.Anything, int64(1)).Return(stored, nil).Once()

		_, err := deps.useCase.Update(ctx, 1, &identityDomain.UpdateIdentityInput{
			HireDate: ptr(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)),
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.ErrorContains(t, err, "last_working_day")
		deps.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Success_ClearTerminationDate", func(t *testing.T) {
		deps := setupUseCase(t)
		stored := storedIdentity(t)
		stored.HireDate = ptr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		stored.TerminationDate = ptr(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

		deps.repo.On("GetByIDForUpdate", mock.Anything, int64(1)).Return(stored, nil).Once()
		deps.repo.On("Update", mock.Anything, mock.MatchedBy(func(i *identityDomain.Identity) bool {
			return i.TerminationDate == nil && i.HireDate != nil
		})).Return(nil).Once()

		output, err := deps.useCase.Update(ctx, 1, &identityDomain.UpdateIdentityInput{ClearTerminationDate: true})

		require.NoError(t, err)
		assert.Nil(t, output.Identity.TerminationDate)
		assert.Nil(t, output.Provisioning)
	})
}

func TestIdentityUseCase_Reprovision(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		deps := setupUseCase(t)
		identity := storedIdentity(t)

		deps.repo.On("GetByID", ctx, int64(1)).Return(identity, nil).Once()
		deps.gateway.On("Provision", ctx, identity).Return(successResult()).Once()

		output, err := deps.useCase.Reprovision(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, identity, output.Identity)
		assert.True(t, output.Provisioning.Success)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		deps := setupUseCase(t)
		deps.repo.On("GetByID", ctx, int64(2)).Return(nil, identityDomain.ErrIdentityNotFound).Once()

		_, err := deps.useCase.Reprovision(ctx, 2)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
