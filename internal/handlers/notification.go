package handlers

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/DsK-David/tropiqstorebackend/internal/services"
	"github.com/DsK-David/tropiqstorebackend/internal/utils"
)

type NotificationHandler struct {
	mailer services.Mailer
}

func NewNotificationHandler(mailer services.Mailer) *NotificationHandler {
	return &NotificationHandler{mailer: mailer}
}

type sendNotificationRequest struct {
	Type         string   `json:"type"`
	ProductName  string   `json:"productName"`
	AdminEmails  []string `json:"adminEmails"`
	CustomerName string   `json:"customerName"`
	OrderID      string   `json:"orderId"`
	OrderTotal   float64  `json:"orderTotal"`
}

// Send envia o mesmo email a todos os administradores em paralelo. Basta um
// envio falhar para a resposta ser de erro.
func (h *NotificationHandler) Send(c *gin.Context) {
	var req sendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subject, html, err := utils.BuildNotification(utils.Notification{
		Type:         req.Type,
		ProductName:  req.ProductName,
		CustomerName: req.CustomerName,
		OrderID:      req.OrderID,
		OrderTotal:   req.OrderTotal,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tipo de notificação inválido"})
		return
	}

	var wg sync.WaitGroup
	errCh := make(chan error, len(req.AdminEmails))

	for _, email := range req.AdminEmails {
		wg.Add(1)
		go func(to string) {
			defer wg.Done()
			if err := h.mailer.Send(to, subject, html); err != nil {
				log.Printf("❌ Erro ao enviar email para %s: %v", to, err)
				errCh <- err
			}
		}(email)
	}

	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao enviar notificação"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Notificação enviada para %d administradores", len(req.AdminEmails)),
	})
}
