package rental

import (
	"context"

	"github.com/BruksfildServices01/rental-booking/internal/models"
)

// Repository é o acesso a dados das três entidades. Cada operação de
// escrita roda na sua própria transação; nenhuma sessão é compartilhada
// entre chamadas.
type Repository interface {
	// -------- Users --------
	ListUsers(ctx context.Context) ([]models.User, error)

	GetUser(ctx context.Context, id uint) (*models.User, error)

	CreateUser(ctx context.Context, u *models.User) error

	// UpdateUser carrega o usuário, aplica apply e salva, tudo na mesma transação.
	UpdateUser(
		ctx context.Context,
		id uint,
		apply func(u *models.User),
	) (*models.User, error)

	// DeleteUser remove reservas, imóveis (e as reservas deles) e o usuário.
	DeleteUser(ctx context.Context, id uint) error

	FindUserByEmail(ctx context.Context, email string) (*models.User, error)

	// -------- Properties --------
	ListProperties(ctx context.Context) ([]models.Property, error)

	GetProperty(ctx context.Context, id uint) (*models.Property, error)

	CreateProperty(ctx context.Context, p *models.Property) error

	UpdateProperty(
		ctx context.Context,
		id uint,
		apply func(p *models.Property),
	) (*models.Property, error)

	// DeleteProperty remove as reservas do imóvel e depois o imóvel.
	DeleteProperty(ctx context.Context, id uint) error

	// -------- Reservations --------
	ListReservations(ctx context.Context) ([]models.Reservation, error)

	GetReservation(ctx context.Context, id uint) (*models.Reservation, error)

	CreateReservation(ctx context.Context, r *models.Reservation) error
}
