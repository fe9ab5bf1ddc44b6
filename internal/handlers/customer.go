package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DsK-David/tropiqstorebackend/internal/models"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

func (h *CustomerHandler) List(c *gin.Context) {
	var customers []models.Customer
	if err := h.db.Find(&customers).Error; err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}
