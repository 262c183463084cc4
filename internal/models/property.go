package models

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/rental-booking/internal/dto"
)

// Imóvel anunciado por um usuário.
type Property struct {
	ID uint `gorm:"column:ID;primaryKey"`

	Location string          `gorm:"column:LOCAL;size:200;not null"`
	Price    decimal.Decimal `gorm:"column:PRECO;type:decimal(12,2);not null"`
	Rooms    int             `gorm:"column:QUARTOS;not null"`
	Size     decimal.Decimal `gorm:"column:TAMANHO;type:decimal(10,2);not null"`
	Image    string          `gorm:"column:IMAGEM;size:1000;not null"`

	UserID uint  `gorm:"column:USUARIO_ID;not null;index"`
	User   *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

func (Property) TableName() string { return TableProperties }

// ToDTO espera User carregado (Preload) para resolver o anunciante.
func (p Property) ToDTO() dto.Property {
	out := dto.Property{
		ID:       p.ID,
		Location: p.Location,
		Price:    p.Price.InexactFloat64(),
		Rooms:    p.Rooms,
		Size:     p.Size.InexactFloat64(),
		Image:    p.Image,
		UserID:   p.UserID,
	}

	if p.User != nil {
		name := p.User.Name
		out.Advertiser = &name
	}

	return out
}

func PropertiesToDTO(props []Property) []dto.Property {
	out := make([]dto.Property, 0, len(props))
	for _, p := range props {
		out = append(out, p.ToDTO())
	}
	return out
}
