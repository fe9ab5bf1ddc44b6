package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DsK-David/tropiqstorebackend/internal/models"
)

type ProductHandler struct {
	db *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// List devolve todos os produtos, mais recentes primeiro.
func (h *ProductHandler) List(c *gin.Context) {
	var products []models.Product
	if err := h.db.Order("created_at DESC").Find(&products).Error; err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

type createProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := models.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Stock:       req.Stock,
	}

	if err := h.db.Create(&product).Error; err != nil {
		databaseError(c, err)
		return
	}

	// Relê a linha gravada para devolver os valores como ficaram na base.
	var stored models.Product
	if err := h.db.First(&stored, "id = ?", product.ID).Error; err != nil {
		databaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, stored)
}

// Update sobrescreve todas as colunas indicadas (não é um merge). Um id
// inexistente resulta num no-op e a releitura devolve null.
func (h *ProductHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Mapa em vez de struct para que valores zero também sejam escritos.
	updates := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"price":       req.Price,
		"image":       req.Image,
		"category":    req.Category,
		"stock":       req.Stock,
	}

	if err := h.db.Model(&models.Product{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		databaseError(c, err)
		return
	}

	var stored models.Product
	if err := h.db.First(&stored, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		databaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, stored)
}

// Delete apaga incondicionalmente; a resposta é a mesma quer a linha
// existisse ou não.
func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.db.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		databaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// databaseError é a fronteira única de falhas de armazenamento.
func databaseError(c *gin.Context, err error) {
	log.Println("❌ Erro de base de dados:", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
