package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DsK-David/tropiqstorebackend/internal/models"
)

type StatsHandler struct {
	db *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{db: db}
}

// OrderItemStat é uma linha de order_items com os campos de exibição do
// produto associado.
type OrderItemStat struct {
	ProductID   string
	Quantity    int
	Name        string
	Price       float64
	Image       string
	Description string
}

type ProductSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

type productTally struct {
	quantity int
	product  ProductSummary
}

// MostOrderedProduct soma as quantidades por produto e devolve o mais pedido.
// Em caso de empate ganha o primeiro produto visto na ordem das linhas (a
// comparação só substitui quando é estritamente maior). Devolve nil quando
// não há itens.
func MostOrderedProduct(rows []OrderItemStat) *ProductSummary {
	tallies := make(map[string]*productTally)
	var seen []string

	for _, row := range rows {
		if row.ProductID == "" {
			continue
		}
		tally, ok := tallies[row.ProductID]
		if !ok {
			tally = &productTally{product: ProductSummary{
				ID:          row.ProductID,
				Name:        row.Name,
				Price:       row.Price,
				Image:       row.Image,
				Description: row.Description,
			}}
			tallies[row.ProductID] = tally
			seen = append(seen, row.ProductID)
		}
		tally.quantity += row.Quantity
	}

	best := &productTally{}
	for _, id := range seen {
		if tallies[id].quantity > best.quantity {
			best = tallies[id]
		}
	}

	if best.quantity == 0 {
		return nil
	}
	return &best.product
}

func (h *StatsHandler) Get(c *gin.Context) {
	var totalProducts int64
	if err := h.db.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
		databaseError(c, err)
		return
	}

	var rows []OrderItemStat
	err := h.db.Table("order_items").
		Select(`order_items.product_id,
			order_items.quantity,
			products.name,
			products.price,
			products.image,
			products.description`).
		Joins("JOIN products ON order_items.product_id = products.id").
		Scan(&rows).Error
	if err != nil {
		databaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalProducts":      totalProducts,
		"mostOrderedProduct": MostOrderedProduct(rows),
	})
}
