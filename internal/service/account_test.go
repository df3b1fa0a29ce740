package service

import (
	"context"
	"testing"

	"github.com/isaacbis/tommi38/internal/domain"
	"github.com/isaacbis/tommi38/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Create_Success(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(accountRepo, newTestLogger(t))

	admin := &domain.Account{Username: "boss", Role: domain.RoleAdmin}

	accountRepo.EXPECT().GetByUsername(mock.Anything, "boss").Return(admin, nil)
	accountRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	account, err := svc.Create(context.Background(), "boss", domain.CreateAccountInput{
		Username: "alice",
		Credits:  5,
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", account.Username)
	assert.Equal(t, domain.RoleUser, account.Role) // роль по умолчанию
	assert.Equal(t, 5, account.Credits)
}

func TestAccountService_Create_NotAdmin(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(accountRepo, newTestLogger(t))

	user := &domain.Account{Username: "alice", Role: domain.RoleUser}

	accountRepo.EXPECT().GetByUsername(mock.Anything, "alice").Return(user, nil)

	_, err := svc.Create(context.Background(), "alice", domain.CreateAccountInput{Username: "bob"})

	require.ErrorIs(t, err, domain.ErrNotAllowed)
}

func TestAccountService_Create_Validation(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(accountRepo, newTestLogger(t))

	admin := &domain.Account{Username: "boss", Role: domain.RoleAdmin}

	tests := []struct {
		name  string
		input domain.CreateAccountInput
	}{
		{"empty username", domain.CreateAccountInput{Username: ""}},
		{"negative credits", domain.CreateAccountInput{Username: "alice", Credits: -1}},
		{"unknown role", domain.CreateAccountInput{Username: "alice", Role: "owner"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accountRepo.EXPECT().GetByUsername(mock.Anything, "boss").Return(admin, nil).Once()

			_, err := svc.Create(context.Background(), "boss", tt.input)

			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestAccountService_Create_UsernameTaken(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(accountRepo, newTestLogger(t))

	admin := &domain.Account{Username: "boss", Role: domain.RoleAdmin}

	accountRepo.EXPECT().GetByUsername(mock.Anything, "boss").Return(admin, nil)
	accountRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Create(context.Background(), "boss", domain.CreateAccountInput{Username: "alice"})

	require.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestAccountService_List_NotAdmin(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(accountRepo, newTestLogger(t))

	user := &domain.Account{Username: "alice", Role: domain.RoleUser}

	accountRepo.EXPECT().GetByUsername(mock.Anything, "alice").Return(user, nil)

	_, err := svc.List(context.Background(), "alice")

	require.ErrorIs(t, err, domain.ErrNotAllowed)
}

func TestAccountService_AdjustCredits_Success(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(accountRepo, newTestLogger(t))

	admin := &domain.Account{Username: "boss", Role: domain.RoleAdmin}

	accountRepo.EXPECT().GetByUsername(mock.Anything, "boss").Return(admin, nil)
	accountRepo.EXPECT().AdjustCredits(mock.Anything, "alice", 3).Return(nil)

	err := svc.AdjustCredits(context.Background(), "boss", "alice", 3)

	require.NoError(t, err)
}

func TestAccountService_AdjustCredits_ZeroDelta(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(accountRepo, newTestLogger(t))

	admin := &domain.Account{Username: "boss", Role: domain.RoleAdmin}

	accountRepo.EXPECT().GetByUsername(mock.Anything, "boss").Return(admin, nil)

	err := svc.AdjustCredits(context.Background(), "boss", "alice", 0)

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestAccountService_AdjustCredits_WouldGoNegative(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(accountRepo, newTestLogger(t))

	admin := &domain.Account{Username: "boss", Role: domain.RoleAdmin}

	accountRepo.EXPECT().GetByUsername(mock.Anything, "boss").Return(admin, nil)
	accountRepo.EXPECT().AdjustCredits(mock.Anything, "alice", -10).Return(domain.ErrInsufficientCredits)

	err := svc.AdjustCredits(context.Background(), "boss", "alice", -10)

	require.ErrorIs(t, err, domain.ErrInsufficientCredits)
}

func TestAccountService_SetDisabled_Success(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(accountRepo, newTestLogger(t))

	admin := &domain.Account{Username: "boss", Role: domain.RoleAdmin}

	accountRepo.EXPECT().GetByUsername(mock.Anything, "boss").Return(admin, nil)
	accountRepo.EXPECT().SetDisabled(mock.Anything, "alice", true).Return(nil)

	err := svc.SetDisabled(context.Background(), "boss", "alice", true)

	require.NoError(t, err)
}
