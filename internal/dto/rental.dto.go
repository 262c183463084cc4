package dto

// Formato de saída compatível com o front-end existente (chaves em maiúsculas).

type User struct {
	ID       uint    `json:"ID"`
	Name     string  `json:"NOME"`
	CPF      string  `json:"CPF"`
	Phone    *string `json:"TELEFONE"`
	Email    *string `json:"EMAIL"`
	Password string  `json:"SENHA"`
	Level    string  `json:"NIVEL"`
	Photo    string  `json:"FOTO"`
}

type Property struct {
	ID         uint    `json:"ID"`
	Location   string  `json:"LOCAL"`
	Price      float64 `json:"PRECO"`
	Rooms      int     `json:"QUARTOS"`
	Size       float64 `json:"TAMANHO"`
	Image      string  `json:"IMAGEM"`
	UserID     uint    `json:"USUARIO_ID"`
	Advertiser *string `json:"ANUNCIANTE"`
}

type Reservation struct {
	ID         uint    `json:"ID"`
	UserID     uint    `json:"USUARIO_ID"`
	PropertyID uint    `json:"PROPRIEDADE_ID"`
	Price      float64 `json:"PRECO"`
	StartDate  string  `json:"DATA_RESERVA"`
	EndDate    *string `json:"FIM_RESERVA"`
}
