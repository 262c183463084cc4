package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/rental-booking/internal/domain/rental"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

type RentalGormRepository struct {
	db *gorm.DB
}

func NewRentalGormRepository(db *gorm.DB) *RentalGormRepository {
	return &RentalGormRepository{db: db}
}

// Colunas do schema legado são maiúsculas e no PostgreSQL só casam entre
// aspas: condições usam mapas e clauses, que o GORM cita.
var byID = clause.OrderByColumn{Column: clause.PrimaryColumn}

func notFound(err error, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *RentalGormRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Order(byID).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *RentalGormRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err, domain.ErrUserNotFound)
	}
	return &u, nil
}

func (r *RentalGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(u).Error
	})
}

func (r *RentalGormRepository) UpdateUser(
	ctx context.Context,
	id uint,
	apply func(u *models.User),
) (*models.User, error) {

	var u models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&u, id).Error; err != nil {
			return notFound(err, domain.ErrUserNotFound)
		}

		apply(&u)

		return tx.Save(&u).Error
	})
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *RentalGormRepository) DeleteUser(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("ID").First(&models.User{}, id).Error; err != nil {
			return notFound(err, domain.ErrUserNotFound)
		}

		// 1. reservas feitas pelo usuário
		if err := tx.
			Where(map[string]any{"USUARIO_ID": id}).
			Delete(&models.Reservation{}).Error; err != nil {
			return err
		}

		// 2. imóveis anunciados (com as reservas de terceiros sobre eles)
		var propertyIDs []uint
		if err := tx.Model(&models.Property{}).
			Where(map[string]any{"USUARIO_ID": id}).
			Pluck("ID", &propertyIDs).Error; err != nil {
			return err
		}

		if err := deleteProperties(tx, propertyIDs); err != nil {
			return err
		}

		// 3. o próprio usuário
		return tx.Delete(&models.User{}, id).Error
	})
}

// FindUserByEmail ignora maiúsculas/minúsculas e espaços nas pontas,
// tanto no valor informado quanto no armazenado.
func (r *RentalGormRepository) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	normalized := domain.NormalizeEmail(email)
	if normalized == "" {
		return nil, domain.ErrUserNotFound
	}

	var u models.User
	if err := r.db.WithContext(ctx).
		Where(`LOWER(TRIM("EMAIL")) = ?`, normalized).
		Order(byID).
		First(&u).Error; err != nil {
		return nil, notFound(err, domain.ErrUserNotFound)
	}

	return &u, nil
}

// --------------------------------------------------
// Properties
// --------------------------------------------------

func (r *RentalGormRepository) ListProperties(ctx context.Context) ([]models.Property, error) {
	var props []models.Property
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order(byID).
		Find(&props).Error; err != nil {
		return nil, err
	}
	return props, nil
}

func (r *RentalGormRepository) GetProperty(ctx context.Context, id uint) (*models.Property, error) {
	var p models.Property
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&p, id).Error; err != nil {
		return nil, notFound(err, domain.ErrPropertyNotFound)
	}
	return &p, nil
}

func (r *RentalGormRepository) CreateProperty(ctx context.Context, p *models.Property) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(p).Error; err != nil {
			return err
		}
		return tx.Preload("User").First(p, p.ID).Error
	})
}

func (r *RentalGormRepository) UpdateProperty(
	ctx context.Context,
	id uint,
	apply func(p *models.Property),
) (*models.Property, error) {

	var p models.Property
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			return notFound(err, domain.ErrPropertyNotFound)
		}

		apply(&p)

		if err := tx.Omit(clause.Associations).Save(&p).Error; err != nil {
			return err
		}

		return tx.Preload("User").First(&p, p.ID).Error
	})
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *RentalGormRepository) DeleteProperty(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("ID").First(&models.Property{}, id).Error; err != nil {
			return notFound(err, domain.ErrPropertyNotFound)
		}
		return deleteProperties(tx, []uint{id})
	})
}

// deleteProperties apaga as reservas dos imóveis e depois os imóveis.
// Roda dentro da transação do chamador.
func deleteProperties(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	if err := tx.
		Where(map[string]any{"PROPRIEDADE_ID": ids}).
		Delete(&models.Reservation{}).Error; err != nil {
		return err
	}

	return tx.
		Where(map[string]any{"ID": ids}).
		Delete(&models.Property{}).Error
}

// --------------------------------------------------
// Reservations
// --------------------------------------------------

func (r *RentalGormRepository) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Order(byID).
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *RentalGormRepository) GetReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	var res models.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, notFound(err, domain.ErrReservationNotFound)
	}
	return &res, nil
}

func (r *RentalGormRepository) CreateReservation(ctx context.Context, res *models.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(res).Error
	})
}

// Compile-time check
var _ domain.Repository = (*RentalGormRepository)(nil)
