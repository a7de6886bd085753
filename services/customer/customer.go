package customer

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"labdesk/models"
	"labdesk/utils"
)

// API is what the service needs from the backend client.
type API interface {
	CreateCustomer(ctx context.Context, input models.CustomerInput) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id int, input models.CustomerInput) (*models.Customer, error)
	ListCustomers(ctx context.Context, page, limit int, myBranchOnly bool) ([]models.Customer, error)
}

// Service handles inline customer creation and edits from the booking desk.
// A successful creation feeds straight into the booking flow as the selected
// customer.
type Service struct {
	api    API
	logger *zap.Logger
}

func NewService(api API) *Service {
	return &Service{api: api, logger: utils.GetLogger()}
}

// Create validates the minimal fields and registers the customer.
func (s *Service) Create(ctx context.Context, input models.CustomerInput) (*models.Customer, error) {
	if msg := validate(input); msg != "" {
		return nil, &ValidationError{Message: msg}
	}
	customer, err := s.api.CreateCustomer(ctx, input)
	if err != nil {
		return nil, err
	}
	s.logger.Info("customer created", zap.Int("id", customer.ID), zap.String("name", customer.Name))
	return customer, nil
}

// Update edits an existing customer record.
func (s *Service) Update(ctx context.Context, id int, input models.CustomerInput) (*models.Customer, error) {
	if msg := validate(input); msg != "" {
		return nil, &ValidationError{Message: msg}
	}
	return s.api.UpdateCustomer(ctx, id, input)
}

// List pages through the customer register.
func (s *Service) List(ctx context.Context, page, limit int, myBranchOnly bool) ([]models.Customer, error) {
	return s.api.ListCustomers(ctx, page, limit, myBranchOnly)
}

func validate(input models.CustomerInput) string {
	if strings.TrimSpace(input.Name) == "" {
		return "Customer name is required"
	}
	if strings.TrimSpace(input.Phone) == "" {
		return "Customer phone is required"
	}
	return ""
}

// ValidationError is a client-detected, user-correctable input failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
