package models

import (
	"gorm.io/gorm"

	"github.com/BruksfildServices01/rental-booking/internal/dto"
)

const (
	TableUsers        = "Usuarios"
	TableProperties   = "Propriedades"
	TableReservations = "Reservas"
)

const (
	DefaultLevel = "cliente"
	DefaultPhoto = "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcT3lUXoW_2yUPKkKpFEVGM04gsRowd0vCyXew&s"
)

// Usuário da plataforma: cliente que reserva e/ou anunciante de imóveis.
// A senha fica em texto puro, como no sistema legado.
type User struct {
	ID uint `gorm:"column:ID;primaryKey"`

	Name     string  `gorm:"column:NOME;size:150;not null"`
	CPF      string  `gorm:"column:CPF;size:11;uniqueIndex;not null"`
	Phone    *string `gorm:"column:TELEFONE;size:20"`
	Email    *string `gorm:"column:EMAIL;size:150;uniqueIndex"`
	Password string  `gorm:"column:SENHA;size:255;not null"`
	Level    string  `gorm:"column:NIVEL;size:50;not null;default:'cliente'"`
	Photo    string  `gorm:"column:FOTO;size:500;not null"`
}

// Tabela e colunas seguem o schema legado ("Usuarios", colunas em maiúsculas).
func (User) TableName() string { return TableUsers }

// ApplyDefaults preenche nível e foto quando não informados.
func (u *User) ApplyDefaults() {
	if u.Level == "" {
		u.Level = DefaultLevel
	}
	if u.Photo == "" {
		u.Photo = DefaultPhoto
	}
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.ApplyDefaults()
	return nil
}

func (u User) ToDTO() dto.User {
	return dto.User{
		ID:       u.ID,
		Name:     u.Name,
		CPF:      u.CPF,
		Phone:    u.Phone,
		Email:    u.Email,
		Password: u.Password,
		Level:    u.Level,
		Photo:    u.Photo,
	}
}

func UsersToDTO(users []User) []dto.User {
	out := make([]dto.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.ToDTO())
	}
	return out
}
