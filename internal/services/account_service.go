package services

import (
	"database/sql"
	"errors"

	"tradepost/internal/apperr"
	"tradepost/internal/auth"
	"tradepost/internal/domain"
	"tradepost/internal/repos"
)

// invalidCredsMsg is shared by the unknown-mobile and bad-password
// paths so a caller cannot enumerate accounts.
const invalidCredsMsg = "Invalid mobile number or password."

type AccountService struct {
	Accounts *repos.AccountRepo
	Tokens   *auth.TokenService
}

func NewAccountService(accounts *repos.AccountRepo, tokens *auth.TokenService) *AccountService {
	return &AccountService{Accounts: accounts, Tokens: tokens}
}

// Signup creates an account. The existence check and the insert are
// not atomic; the UNIQUE index on mobile is the backstop, and its
// violation surfaces as the same Conflict.
func (s *AccountService) Signup(name, mobile, password, email string) (domain.Account, error) {
	exists, err := s.Accounts.ExistsByMobile(mobile)
	if err != nil {
		return domain.Account{}, err
	}
	if exists {
		return domain.Account{}, apperr.Conflict("An account with this mobile number already exists.")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.Account{}, err
	}
	a := domain.Account{Name: name, Mobile: mobile, Email: email, Hash: hash}
	if err := s.Accounts.Create(&a); err != nil {
		if repos.IsUniqueViolation(err) {
			return domain.Account{}, apperr.Conflict("An account with this mobile number already exists.")
		}
		return domain.Account{}, err
	}

	created, err := s.Accounts.ByID(a.ID)
	if err != nil {
		return domain.Account{}, err
	}
	return created.Sanitized(), nil
}

// Login verifies credentials, stamps the last login and issues a
// token for the account identifier.
func (s *AccountService) Login(mobile, password string) (string, domain.Account, error) {
	a, err := s.Accounts.ByMobile(mobile)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.Account{}, apperr.Unauthenticated(invalidCredsMsg)
		}
		return "", domain.Account{}, err
	}
	if !auth.PasswordMatches(password, a.Hash) {
		return "", domain.Account{}, apperr.Unauthenticated(invalidCredsMsg)
	}

	if err := s.Accounts.TouchLastLogin(a.ID); err != nil {
		return "", domain.Account{}, err
	}
	token, err := s.Tokens.Issue(a.ID)
	if err != nil {
		return "", domain.Account{}, err
	}
	return token, a.Sanitized(), nil
}

// EditProfile applies a subset of {name, email, mobile}. Fields
// outside the allow-list are dropped, never passed to storage.
func (s *AccountService) EditProfile(accountID string, payload map[string]any) (domain.Account, error) {
	cols := domain.AccountUpdateFields.MapPayload(payload)

	if mobile, ok := cols["mobile"]; ok {
		m, _ := mobile.(string)
		if m == "" {
			return domain.Account{}, apperr.Validation("Validation failed: 'mobile' must be a non-empty string.")
		}
		other, err := s.Accounts.ByMobile(m)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, err
		}
		if other != nil && other.ID != accountID {
			return domain.Account{}, apperr.Conflict("An account with this mobile number already exists.")
		}
	}

	updated, err := s.Accounts.UpdateFields(accountID, cols)
	if err != nil {
		if repos.IsUniqueViolation(err) {
			return domain.Account{}, apperr.Conflict("An account with this mobile number already exists.")
		}
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, apperr.NotFound("Account not found.")
		}
		return domain.Account{}, err
	}
	return updated.Sanitized(), nil
}
