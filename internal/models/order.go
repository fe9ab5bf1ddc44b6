package models

import (
	"strings"
	"time"
)

type OrderStatus = string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Mapeia os tokens em português para os valores do ENUM.
var statusMap = map[string]OrderStatus{
	"PENDENTE":  StatusPending,
	"PAGO":      StatusPaid,
	"ENVIADO":   StatusShipped,
	"ENTREGUE":  StatusDelivered,
	"CANCELADO": StatusCancelled,
}

// NormalizeStatus normaliza para maiúsculas e traduz o token quando
// conhecido. Tokens desconhecidos passam adiante sem validação, como no
// painel admin atual.
func NormalizeStatus(raw string) OrderStatus {
	upper := strings.ToUpper(raw)
	if mapped, ok := statusMap[upper]; ok {
		return mapped
	}
	return upper
}

// MaskCardNumber guarda apenas os 4 últimos dígitos do cartão.
func MaskCardNumber(number string) string {
	last4 := number
	if len(number) > 4 {
		last4 = number[len(number)-4:]
	}
	return "****-****-****-" + last4
}

type Order struct {
	ID                      string    `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID              string    `gorm:"type:uuid;index" json:"customer_id"`
	Total                   float64   `json:"total"`
	Status                  string    `gorm:"type:varchar(32)" json:"status"`
	PaymentCardName         *string   `json:"payment_card_name"`
	PaymentCardNumberMasked *string   `json:"payment_card_number_masked"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// Item imutável após a criação; price é o preço do produto no momento do
// pedido, independente de alterações posteriores no catálogo.
type OrderItem struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   string    `gorm:"type:uuid;index" json:"order_id"`
	ProductID string    `gorm:"type:uuid" json:"product_id"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}
