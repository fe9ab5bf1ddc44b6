package models

// Cliente é criado de forma preguiçosa no primeiro pedido (find-or-create
// pelo email). O índice único garante que duas requisições concorrentes com o
// mesmo email novo não criem clientes duplicados. Email é NULL quando o
// pedido não traz email: cada pedido sem email cria um cliente novo, e o
// índice único não se aplica a NULLs.
type Customer struct {
	ID         string  `gorm:"type:uuid;primaryKey" json:"id"`
	FullName   string  `json:"full_name"`
	Email      *string `gorm:"uniqueIndex" json:"email"`
	Phone      string  `json:"phone"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	PostalCode string  `json:"postal_code"`
}
