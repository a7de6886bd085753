package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"labdesk/models"
)

// SearchCustomers looks customers up by free-text query. The result set
// replaces any previous one; there is no pagination on search.
func (c *Client) SearchCustomers(ctx context.Context, query string) ([]models.Customer, error) {
	q := url.Values{}
	q.Set("q", query)
	raw, err := c.doJSON(ctx, http.MethodGet, "/customers/search", q, nil, nil)
	if err != nil {
		return nil, err
	}
	items, err := listItems(raw)
	if err != nil {
		return nil, err
	}
	var customers []models.Customer
	if err := json.Unmarshal(items, &customers); err != nil {
		return nil, fmt.Errorf("failed to decode customer list: %w", err)
	}
	return customers, nil
}

// ListCustomers pages through the customer register.
func (c *Client) ListCustomers(ctx context.Context, page, limit int, myBranchOnly bool) ([]models.Customer, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("myBranchOnly", strconv.FormatBool(myBranchOnly))
	raw, err := c.doJSON(ctx, http.MethodGet, "/customers", q, nil, nil)
	if err != nil {
		return nil, err
	}
	items, err := listItems(raw)
	if err != nil {
		return nil, err
	}
	var customers []models.Customer
	if err := json.Unmarshal(items, &customers); err != nil {
		return nil, fmt.Errorf("failed to decode customer list: %w", err)
	}
	return customers, nil
}

// CreateCustomer registers a customer inline from the booking desk.
// The endpoint takes multipart form data so a profile image can ride along.
func (c *Client) CreateCustomer(ctx context.Context, input models.CustomerInput) (*models.Customer, error) {
	raw, err := c.doMultipart(ctx, http.MethodPost, "/customers", customerFields(input), "profile_image", input.ProfileImagePath)
	if err != nil {
		return nil, err
	}
	return decodeCustomer(raw)
}

// UpdateCustomer edits an existing customer record.
func (c *Client) UpdateCustomer(ctx context.Context, id int, input models.CustomerInput) (*models.Customer, error) {
	path := fmt.Sprintf("/customers/%d", id)
	raw, err := c.doMultipart(ctx, http.MethodPut, path, customerFields(input), "profile_image", input.ProfileImagePath)
	if err != nil {
		return nil, err
	}
	return decodeCustomer(raw)
}

func customerFields(input models.CustomerInput) map[string]string {
	fields := map[string]string{
		"name":  input.Name,
		"phone": input.Phone,
	}
	optional := map[string]string{
		"dob":     input.DOB,
		"gender":  input.Gender,
		"address": input.Address,
		"pincode": input.Pincode,
		"city":    input.City,
		"state":   input.State,
		"country": input.Country,
		"remarks": input.Remarks,
	}
	for k, v := range optional {
		if v != "" {
			fields[k] = v
		}
	}
	return fields
}

func decodeCustomer(raw []byte) (*models.Customer, error) {
	var customer models.Customer
	if err := json.Unmarshal(objectItem(raw), &customer); err != nil {
		return nil, fmt.Errorf("failed to decode customer: %w", err)
	}
	return &customer, nil
}
