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

// ListTests fetches one page of the test catalog. branchID, when non-nil,
// scopes the catalog to that branch.
func (c *Client) ListTests(ctx context.Context, page, limit int, branchID *int) ([]models.Test, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if branchID != nil {
		q.Set("branch_id", strconv.Itoa(*branchID))
	}
	raw, err := c.doJSON(ctx, http.MethodGet, "/tests", q, nil, nil)
	if err != nil {
		return nil, err
	}
	items, err := listItems(raw)
	if err != nil {
		return nil, err
	}
	var tests []models.Test
	if err := json.Unmarshal(items, &tests); err != nil {
		return nil, fmt.Errorf("failed to decode test list: %w", err)
	}
	return tests, nil
}
