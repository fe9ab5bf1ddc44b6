package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DsK-David/tropiqstorebackend/internal/models"
)

type OrderHandler struct {
	db *gorm.DB
}

func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{db: db}
}

// -------- Pedidos: criação --------

type orderCustomerInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

type orderProductInput struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type orderItemInput struct {
	Product  orderProductInput `json:"product"`
	Quantity int               `json:"quantity"`
}

type paymentInfoInput struct {
	CardName   string `json:"cardName"`
	CardNumber string `json:"cardNumber"`
}

type placeOrderRequest struct {
	Customer    orderCustomerInput `json:"customer"`
	Items       []orderItemInput   `json:"items"`
	Total       float64            `json:"total"`
	PaymentInfo *paymentInfoInput  `json:"paymentInfo"`
}

// findOrCreateCustomer procura o cliente pelo email e cria um novo quando não
// existe. Num conflito de unicidade (duas requisições com o mesmo email novo)
// a inserção perdedora resolve-se numa releitura. Pedidos sem email criam
// sempre um cliente novo, com email NULL.
func (h *OrderHandler) findOrCreateCustomer(in orderCustomerInput) (models.Customer, error) {
	var customer models.Customer

	var email *string
	if in.Email != "" {
		err := h.db.Where("email = ?", in.Email).First(&customer).Error
		if err == nil {
			return customer, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Customer{}, err
		}
		email = &in.Email
	}

	customer = models.Customer{
		ID:         uuid.NewString(),
		FullName:   in.Name,
		Email:      email,
		Phone:      in.Phone,
		Address:    in.Address,
		City:       in.City,
		PostalCode: in.ZipCode,
	}

	if err := h.db.Create(&customer).Error; err != nil {
		if in.Email != "" {
			var existing models.Customer
			if lookupErr := h.db.Where("email = ?", in.Email).First(&existing).Error; lookupErr == nil {
				return existing, nil
			}
		}
		return models.Customer{}, err
	}

	return customer, nil
}

// Create regista o pedido com os seus itens e abate o stock dos produtos.
// Pedido, itens e decrementos correm numa única transação; o decremento é
// aritmético na base (stock = stock - ?) para não perder atualizações entre
// pedidos concorrentes. Não há piso: o stock pode ficar negativo.
func (h *OrderHandler) Create(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.findOrCreateCustomer(req.Customer)
	if err != nil {
		orderError(c, err)
		return
	}

	now := time.Now()
	order := models.Order{
		ID:         uuid.NewString(),
		CustomerID: customer.ID,
		Total:      req.Total,
		Status:     models.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	var cardName, cardMasked *string
	if req.PaymentInfo != nil {
		name := req.PaymentInfo.CardName
		cardName = &name
		if req.PaymentInfo.CardNumber != "" {
			masked := models.MaskCardNumber(req.PaymentInfo.CardNumber)
			cardMasked = &masked
		}
	}
	order.PaymentCardName = cardName
	order.PaymentCardNumberMasked = cardMasked

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		orderItems := make([]models.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			orderItems = append(orderItems, models.OrderItem{
				ID:        uuid.NewString(),
				OrderID:   order.ID,
				ProductID: item.Product.ID,
				Quantity:  item.Quantity,
				Price:     item.Product.Price, // preço no momento do pedido
				CreatedAt: now,
			})
		}
		if len(orderItems) > 0 {
			if err := tx.Create(&orderItems).Error; err != nil {
				return err
			}
		}

		for _, item := range req.Items {
			if err := tx.Model(&models.Product{}).
				Where("id = ?", item.Product.ID).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		orderError(c, err)
		return
	}

	// A resposta ecoa o que o cliente submeteu: o preço de cada item é o
	// snapshot enviado, não a linha acabada de gravar.
	items := make([]gin.H, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, gin.H{
			"product": gin.H{
				"id":    item.Product.ID,
				"name":  item.Product.Name,
				"price": item.Product.Price,
			},
			"quantity": item.Quantity,
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     order.ID,
		"status": models.StatusPending,
		"total":  req.Total,
		"customer": gin.H{
			"id":    customer.ID,
			"name":  customer.FullName,
			"email": customer.Email,
		},
		"items": items,
		"payment_info": gin.H{
			"card_name":          cardName,
			"card_number_masked": cardMasked,
		},
		"created_at": time.Now(),
	})
}

// -------- Pedidos: transição de estado --------

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus aplica o novo estado sem validar a transição (qualquer estado
// pode seguir qualquer outro). Cancelar repõe o stock de cada item; cancelar
// duas vezes repõe duas vezes — comportamento do painel atual.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := models.NormalizeStatus(req.Status)

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if status == models.StatusCancelled {
			var items []models.OrderItem
			if err := tx.Where("order_id = ?", id).Find(&items).Error; err != nil {
				return err
			}
			for _, item := range items {
				if err := tx.Model(&models.Product{}).
					Where("id = ?", item.ProductID).
					UpdateColumn("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
					return err
				}
			}
		}

		return tx.Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
	})
	if err != nil {
		orderError(c, err)
		return
	}

	var order models.Order
	if err := h.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		orderError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// -------- Pedidos: listagem --------

type orderWithCustomer struct {
	models.Order
	CustomerName       string `json:"customer_name"`
	CustomerEmail      string `json:"customer_email"`
	CustomerPhone      string `json:"customer_phone"`
	CustomerAddress    string `json:"customer_address"`
	CustomerCity       string `json:"customer_city"`
	CustomerPostalCode string `json:"customer_postal_code"`
}

type orderItemWithProduct struct {
	models.OrderItem
	ProductName        string
	ProductDescription string
	ProductImage       string
	ProductCategory    string
	ProductStock       int
}

type orderResponse struct {
	orderWithCustomer
	Items []gin.H `json:"items"`
}

// List devolve os pedidos com os dados de contacto do cliente e os itens
// aninhados. Os campos do produto refletem o catálogo atual; só o preço do
// item é o snapshot do momento do pedido.
func (h *OrderHandler) List(c *gin.Context) {
	var orders []orderWithCustomer
	err := h.db.Table("orders").
		Select(`orders.*,
			customers.full_name AS customer_name,
			customers.email AS customer_email,
			customers.phone AS customer_phone,
			customers.address AS customer_address,
			customers.city AS customer_city,
			customers.postal_code AS customer_postal_code`).
		Joins("JOIN customers ON orders.customer_id = customers.id").
		Order("orders.created_at DESC").
		Scan(&orders).Error
	if err != nil {
		databaseError(c, err)
		return
	}

	response := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		var items []orderItemWithProduct
		err := h.db.Table("order_items").
			Select(`order_items.*,
				products.name AS product_name,
				products.description AS product_description,
				products.image AS product_image,
				products.category AS product_category,
				products.stock AS product_stock`).
			Joins("JOIN products ON order_items.product_id = products.id").
			Where("order_items.order_id = ?", order.ID).
			Scan(&items).Error
		if err != nil {
			databaseError(c, err)
			return
		}

		nested := make([]gin.H, 0, len(items))
		for _, item := range items {
			nested = append(nested, gin.H{
				"product": gin.H{
					"id":          item.ProductID,
					"name":        item.ProductName,
					"price":       item.Price,
					"description": item.ProductDescription,
					"image":       item.ProductImage,
					"category":    item.ProductCategory,
					"stock":       item.ProductStock,
				},
				"quantity": item.Quantity,
			})
		}

		response = append(response, orderResponse{orderWithCustomer: order, Items: nested})
	}

	c.JSON(http.StatusOK, response)
}

// orderError devolve o detalhe do erro, como o endpoint de pedidos sempre fez.
func orderError(c *gin.Context, err error) {
	log.Println("❌ Erro no pedido:", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal server error",
		"details": err.Error(),
	})
}
