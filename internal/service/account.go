package service

import (
	"context"
	"fmt"
	"time"

	"github.com/isaacbis/tommi38/internal/domain"
	"github.com/isaacbis/tommi38/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// AccountService — админские операции над учётками и кредитным балансом.
type AccountService struct {
	accounts ports.AccountRepo
	logger   logger.Logger
}

func NewAccountService(accounts ports.AccountRepo, logger logger.Logger) *AccountService {
	return &AccountService{
		accounts: accounts,
		logger:   logger,
	}
}

func (s *AccountService) Create(ctx context.Context, caller string, input domain.CreateAccountInput) (*domain.Account, error) {
	if _, err := requireAdmin(ctx, s.accounts, caller); err != nil {
		return nil, err
	}

	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if input.Credits < 0 {
		return nil, fmt.Errorf("%w: credits must not be negative", domain.ErrValidation)
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	account := &domain.Account{
		Username:       input.Username,
		Role:           role,
		Credits:        input.Credits,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.logger.Info("account created",
		logger.String("username", account.Username),
		logger.String("role", string(account.Role)),
	)

	return account, nil
}

func (s *AccountService) List(ctx context.Context, caller string) ([]*domain.Account, error) {
	if _, err := requireAdmin(ctx, s.accounts, caller); err != nil {
		return nil, err
	}
	return s.accounts.List(ctx)
}

func (s *AccountService) AdjustCredits(ctx context.Context, caller, username string, delta int) error {
	if _, err := requireAdmin(ctx, s.accounts, caller); err != nil {
		return err
	}
	if delta == 0 {
		return fmt.Errorf("%w: delta must not be zero", domain.ErrValidation)
	}

	if err := s.accounts.AdjustCredits(ctx, username, delta); err != nil {
		return fmt.Errorf("adjust credits: %w", err)
	}

	s.logger.Info("credits adjusted",
		logger.String("username", username),
		logger.Int("delta", delta),
	)

	return nil
}

func (s *AccountService) SetDisabled(ctx context.Context, caller, username string, disabled bool) error {
	if _, err := requireAdmin(ctx, s.accounts, caller); err != nil {
		return err
	}

	if err := s.accounts.SetDisabled(ctx, username, disabled); err != nil {
		return fmt.Errorf("set disabled: %w", err)
	}

	return nil
}

// requireAdmin возвращает учётку вызывающего, если тот админ.
func requireAdmin(ctx context.Context, accounts ports.AccountRepo, caller string) (*domain.Account, error) {
	account, err := accounts.GetByUsername(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("check caller: %w", err)
	}
	if !account.IsAdmin() {
		return nil, domain.ErrNotAllowed
	}
	return account, nil
}
