package auth

import (
	"context"

	"github.com/BruksfildServices01/rental-booking/internal/audit"
	domain "github.com/BruksfildServices01/rental-booking/internal/domain/rental"
	"github.com/BruksfildServices01/rental-booking/internal/httperr"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

// Login confere email e senha em texto puro. Não emite token nem guarda
// sessão no servidor.
type Login struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewLogin(repo domain.Repository, audit *audit.Logger) *Login {
	return &Login{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Login) Execute(
	ctx context.Context,
	email string,
	password string,
) (*models.User, error) {

	user, err := uc.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if httperr.IsBusiness(err, domain.CodeUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !domain.PasswordMatches(user.Password, password) {
		return nil, domain.ErrInvalidCredentials
	}

	uc.audit.Log(ctx, audit.Event{
		Action:   audit.ActionLogin,
		Entity:   "usuario",
		EntityID: user.ID,
	})

	return user, nil
}
