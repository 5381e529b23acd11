package supabase

import (
	"context"
	"net/http"
	"net/url"
)

// Filters map column names to values matched with the PostgREST eq operator.
type Filters map[string]string

func (f Filters) apply(query url.Values) {
	for column, value := range f {
		query.Set(column, "eq."+value)
	}
}

// Insert adds a row to table and decodes the returned representation into
// out, which should be a pointer to a slice of the row type. The bearer token
// decides whose row-level policies apply; empty means the client's own key.
func (c *Client) Insert(ctx context.Context, table, bearer string, payload, out any) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/rest/v1/"+table, nil, bearer, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=representation")
	return c.send(req, out)
}

// Select reads rows from table matching filters into out. Order is a
// PostgREST order expression such as "created_at.desc"; empty means no
// explicit ordering.
func (c *Client) Select(ctx context.Context, table, bearer string, filters Filters, order string, out any) error {
	query := url.Values{}
	query.Set("select", "*")
	filters.apply(query)
	if order != "" {
		query.Set("order", order)
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/rest/v1/"+table, query, bearer, nil)
	if err != nil {
		return err
	}
	return c.send(req, out)
}

// Update patches rows matching filters and decodes the affected rows into
// out. An empty result means zero rows matched.
func (c *Client) Update(ctx context.Context, table, bearer string, filters Filters, payload, out any) error {
	query := url.Values{}
	filters.apply(query)

	req, err := c.newRequest(ctx, http.MethodPatch, "/rest/v1/"+table, query, bearer, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=representation")
	return c.send(req, out)
}

// Delete removes rows matching filters.
func (c *Client) Delete(ctx context.Context, table, bearer string, filters Filters) error {
	query := url.Values{}
	filters.apply(query)

	req, err := c.newRequest(ctx, http.MethodDelete, "/rest/v1/"+table, query, bearer, nil)
	if err != nil {
		return err
	}
	return c.send(req, nil)
}
