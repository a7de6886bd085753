// File: labdesk/stubserver/stubserver.go
//
// stubserver is a development fake of the lab backend. It implements the
// endpoint contract the client is written against, with fixture data and
// server-authoritative discount arithmetic, so the console and the e2e tests
// can run without a real deployment. It is not a production server.
package stubserver

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"labdesk/models"
)

// Server holds the in-memory fixture state behind the stub routes.
type Server struct {
	jwtSecret []byte

	mu         sync.Mutex
	customers  []models.Customer
	nextCustID int
	catalog    map[int][]models.Test
	user       stubUser
	bookings   map[string]models.BookingPayload
	idempotent map[string]string
	payments   []models.PaymentInput
	refunds    []models.RefundInput
}

func New(jwtSecret string) *Server {
	return &Server{
		jwtSecret:  []byte(jwtSecret),
		customers:  seedCustomers(),
		nextCustID: 100,
		catalog:    seedTests(),
		user:       seedUser(),
		bookings:   make(map[string]models.BookingPayload),
		idempotent: make(map[string]string),
	}
}

// Router assembles the gin engine with the full stub route table.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	router.POST("/auth/login", s.login)
	router.GET("/customers/search", s.searchCustomers)
	router.GET("/tests", s.listTests)
	router.POST("/discounts/preview", s.previewDiscount)

	authed := router.Group("/", s.requireAuth())
	authed.GET("/auth/me", s.me)
	authed.GET("/customers", s.listCustomers)
	authed.POST("/customers", s.createCustomer)
	authed.PUT("/customers/:id", s.updateCustomer)
	authed.POST("/bookings", s.createBooking)
	authed.POST("/payments", s.createPayment)
	authed.POST("/refunds", s.createRefund)
	return router
}

func (s *Server) login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input"})
		return
	}
	if !strings.EqualFold(input.Email, s.user.Email) ||
		bcrypt.CompareHashAndPassword(s.user.PassHash, []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	claims := jwt.MapClaims{
		"email": s.user.Email,
		"name":  s.user.Name,
		"role":  s.user.Role,
		"exp":   time.Now().Add(12 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to sign token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"name":  s.user.Name,
			"email": s.user.Email,
			"role":  s.user.Role,
		},
	})
}

func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")
		_, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return s.jwtSecret, nil
		})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}
		c.Next()
	}
}

func (s *Server) me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":  s.user.Name,
		"email": s.user.Email,
		"role":  s.user.Role,
	})
}

// searchCustomers responds with the {"data": [...]} envelope shape.
func (s *Server) searchCustomers(c *gin.Context) {
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	s.mu.Lock()
	defer s.mu.Unlock()

	matches := make([]models.Customer, 0)
	for _, customer := range s.customers {
		if q == "" {
			continue
		}
		if strings.Contains(strings.ToLower(customer.Name), q) ||
			strings.Contains(customer.Phone, q) {
			matches = append(matches, customer)
		}
	}
	c.JSON(http.StatusOK, gin.H{"data": matches, "total": len(matches)})
}

func (s *Server) listCustomers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"data": pageOfCustomers(s.customers, page, limit), "total": len(s.customers)})
}

func (s *Server) createCustomer(c *gin.Context) {
	name := c.PostForm("name")
	phone := c.PostForm("phone")
	if strings.TrimSpace(name) == "" || strings.TrimSpace(phone) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name and phone are required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextCustID++
	customer := models.Customer{
		ID:      s.nextCustID,
		Name:    name,
		Phone:   phone,
		DOB:     c.PostForm("dob"),
		Gender:  c.PostForm("gender"),
		Address: c.PostForm("address"),
		Pincode: c.PostForm("pincode"),
		City:    c.PostForm("city"),
		State:   c.PostForm("state"),
		Country: c.PostForm("country"),
		Remarks: c.PostForm("remarks"),
	}
	s.customers = append(s.customers, customer)
	c.JSON(http.StatusCreated, gin.H{"data": customer})
}

func (s *Server) updateCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid customer id"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			if v := c.PostForm("name"); v != "" {
				s.customers[i].Name = v
			}
			if v := c.PostForm("phone"); v != "" {
				s.customers[i].Phone = v
			}
			c.JSON(http.StatusOK, gin.H{"data": s.customers[i]})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "customer not found"})
}

// listTests responds with a bare JSON array, the other list shape the
// client must accept.
func (s *Server) listTests(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var tests []models.Test
	if branchStr := c.Query("branch_id"); branchStr != "" {
		branch, err := strconv.Atoi(branchStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid branch_id"})
			return
		}
		tests = s.catalog[branch]
	} else {
		for branch := 1; branch <= 3; branch++ {
			tests = append(tests, s.catalog[branch]...)
		}
	}

	start := (page - 1) * limit
	if start >= len(tests) {
		c.JSON(http.StatusOK, []models.Test{})
		return
	}
	end := start + limit
	if end > len(tests) {
		end = len(tests)
	}
	c.JSON(http.StatusOK, tests[start:end])
}

// previewDiscount owns the discount arithmetic: discount is clamped to the
// original amount and final = original - discount.
func (s *Server) previewDiscount(c *gin.Context) {
	var input struct {
		Amount        float64             `json:"amount"`
		DiscountType  models.DiscountType `json:"discount_type"`
		DiscountValue float64             `json:"discount_value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input"})
		return
	}
	if input.Amount < 0 || input.DiscountValue < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "amounts must be non-negative"})
		return
	}

	discount := 0.0
	switch input.DiscountType {
	case models.DiscountFlat:
		discount = input.DiscountValue
	case models.DiscountPercentage:
		if input.DiscountValue > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "percentage discount cannot exceed 100"})
			return
		}
		discount = input.Amount * input.DiscountValue / 100
	case models.DiscountNone:
		discount = 0
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "unknown discount type"})
		return
	}
	if discount > input.Amount {
		discount = input.Amount
	}

	c.JSON(http.StatusOK, models.DiscountPreview{
		OriginalAmount: input.Amount,
		DiscountAmount: discount,
		FinalAmount:    input.Amount - discount,
	})
}

func (s *Server) createBooking(c *gin.Context) {
	var payload models.BookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input"})
		return
	}
	if payload.CustomerID == 0 || len(payload.TestIDs) == 0 ||
		payload.ScheduledDate == "" || payload.ScheduledTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "incomplete booking"})
		return
	}
	if _, err := time.Parse("2006-01-02", payload.ScheduledDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "scheduled_date must be YYYY-MM-DD"})
		return
	}
	if _, err := time.Parse("15:04:05", payload.ScheduledTime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "scheduled_time must be HH:MM:SS"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Idempotency: the same key returns the booking already created for it.
	key := c.GetHeader("Idempotency-Key")
	if key != "" {
		if number, ok := s.idempotent[key]; ok {
			c.JSON(http.StatusOK, gin.H{"booking": gin.H{"booking_number": number}})
			return
		}
	}

	number := fmt.Sprintf("BK-%s", strings.ToUpper(uuid.New().String()[:8]))
	s.bookings[number] = payload
	if key != "" {
		s.idempotent[key] = number
	}
	c.JSON(http.StatusCreated, gin.H{"booking": gin.H{"booking_number": number}})
}

func (s *Server) createPayment(c *gin.Context) {
	bookingNumber := c.PostForm("booking_number")
	amountStr := c.PostForm("amount")
	mode := c.PostForm("payment_mode")
	date := c.PostForm("payment_date")

	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil || amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "valid amount is required"})
		return
	}
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "payment_date is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[bookingNumber]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "booking not found"})
		return
	}
	s.payments = append(s.payments, models.PaymentInput{
		BookingNumber: bookingNumber,
		Amount:        amount,
		Mode:          models.PaymentMode(mode),
	})
	c.JSON(http.StatusCreated, gin.H{"message": "payment recorded"})
}

func (s *Server) createRefund(c *gin.Context) {
	var input models.RefundInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input"})
		return
	}
	if input.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "valid amount is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[input.BookingNumber]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "booking not found"})
		return
	}
	s.refunds = append(s.refunds, input)
	c.JSON(http.StatusCreated, gin.H{"message": "refund recorded"})
}

func pageOfCustomers(customers []models.Customer, page, limit int) []models.Customer {
	start := (page - 1) * limit
	if start >= len(customers) {
		return []models.Customer{}
	}
	end := start + limit
	if end > len(customers) {
		end = len(customers)
	}
	return customers[start:end]
}
