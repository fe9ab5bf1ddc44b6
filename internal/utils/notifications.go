package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Tipos de notificação aceites pelo endpoint /api/send-notification.
const (
	NotificationProductDeleted = "product_deleted"
	NotificationProductCreated = "product_created"
	NotificationOrderCreated   = "order_created"
)

var ErrUnknownNotificationType = errors.New("tipo de notificação inválido")

type Notification struct {
	Type         string
	ProductName  string
	CustomerName string
	OrderID      string
	OrderTotal   float64
}

// BuildNotification monta o assunto e o corpo HTML para os administradores.
func BuildNotification(n Notification) (subject, html string, err error) {
	now := time.Now().Format("02/01/2006, 15:04:05")

	switch n.Type {
	case NotificationProductDeleted:
		subject = "Produto Excluído - Tropiq Store"
		html = fmt.Sprintf(`
			<h2>Produto Excluído</h2>
			<p>O produto <strong>%s</strong> foi excluído do sistema.</p>
			<p>Data: %s</p>
			<p>Sistema: Tropiq Store Admin</p>
		`, n.ProductName, now)

	case NotificationProductCreated:
		subject = "Novo Produto Adicionado - Tropiq Store"
		html = fmt.Sprintf(`
			<h2>Novo Produto Adicionado</h2>
			<p>O produto <strong>%s</strong> foi adicionado ao sistema.</p>
			<p>Data: %s</p>
			<p>Sistema: Tropiq Store Admin</p>
		`, n.ProductName, now)

	case NotificationOrderCreated:
		subject = "Novo Pedido Recebido - Tropiq Store"
		html = fmt.Sprintf(`
			<h2>Novo Pedido Recebido</h2>
			<p>Um novo pedido foi realizado na loja.</p>
			<p><strong>Pedido:</strong> #%s</p>
			<p><strong>Cliente:</strong> %s</p>
			<p><strong>Valor Total:</strong> %s CVE</p>
			<p><strong>Data:</strong> %s</p>
			<p>Sistema: Tropiq Store</p>
		`, shortOrderID(n.OrderID), n.CustomerName, strconv.FormatFloat(n.OrderTotal, 'f', -1, 64), now)

	default:
		return "", "", ErrUnknownNotificationType
	}

	return subject, html, nil
}

// shortOrderID devolve o prefixo de 8 caracteres usado nos emails.
func shortOrderID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
