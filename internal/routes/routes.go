package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DsK-David/tropiqstorebackend/internal/handlers"
	"github.com/DsK-David/tropiqstorebackend/internal/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, mailer services.Mailer) {
	products := handlers.NewProductHandler(db)
	customers := handlers.NewCustomerHandler(db)
	orders := handlers.NewOrderHandler(db)
	stats := handlers.NewStatsHandler(db)
	notifications := handlers.NewNotificationHandler(mailer)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/products", products.List)
		api.POST("/products", products.Create)
		api.PUT("/products/:id", products.Update)
		api.DELETE("/products/:id", products.Delete)

		api.GET("/customers", customers.List)

		api.GET("/orders", orders.List)
		api.POST("/orders", orders.Create)
		api.PUT("/orders/:id/status", orders.UpdateStatus)

		api.GET("/stats", stats.Get)

		// Disparado pelo painel admin, não pelos endpoints de mutação.
		api.POST("/send-notification", notifications.Send)
	}
}
