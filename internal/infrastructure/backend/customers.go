package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/customer-portal/internal/domain/entity"
	"github.com/jhoicas/customer-portal/internal/domain/repository"
)

var (
	_ repository.CustomerRepository  = (*Client)(nil)
	_ repository.DashboardRepository = (*Client)(nil)
)

// createCustomerRequest cuerpo de POST /customers; los opcionales vacíos viajan como null.
type createCustomerRequest struct {
	Fullname string  `json:"fullname"`
	Address  string  `json:"address"`
	RegDate  string  `json:"reg_date"`
	Mobile   *string `json:"mobile"`
	Email    *string `json:"email"`
	Note     *string `json:"note"`
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Create POST /customers.
func (c *Client) Create(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	req := createCustomerRequest{
		Fullname: customer.Fullname,
		Address:  customer.Address,
		RegDate:  customer.RegDate,
		Mobile:   nullable(customer.Mobile),
		Email:    nullable(customer.Email),
		Note:     nullable(customer.Note),
	}
	var created entity.Customer
	if err := c.do(ctx, http.MethodPost, "/customers", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Find GET /find/{id}.
func (c *Client) Find(ctx context.Context, customerID string) (*entity.Customer, error) {
	var cu entity.Customer
	if err := c.do(ctx, http.MethodGet, "/find/"+url.PathEscape(customerID), nil, nil, &cu); err != nil {
		return nil, err
	}
	return &cu, nil
}

// Search GET /customer/{q}: por id de cliente o por móvil de 10 dígitos.
func (c *Client) Search(ctx context.Context, query string) ([]entity.Customer, error) {
	var list []entity.Customer
	if err := c.do(ctx, http.MethodGet, "/customer/"+url.PathEscape(query), nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Update PATCH /customer/{id} con los campos de patch.
func (c *Client) Update(ctx context.Context, customerID string, patch map[string]any) (*entity.Customer, error) {
	var cu entity.Customer
	if err := c.do(ctx, http.MethodPatch, "/customer/"+url.PathEscape(customerID), nil, patch, &cu); err != nil {
		return nil, err
	}
	return &cu, nil
}

// Filter GET /customers/filter. Solo se envían los criterios no vacíos.
func (c *Client) Filter(ctx context.Context, f repository.CustomerFilter) ([]entity.Customer, error) {
	q := url.Values{}
	for k, v := range map[string]string{
		"date_from":        f.DateFrom,
		"date_to":          f.DateTo,
		"status":           f.Status,
		"assigned_to_name": f.AssignedToName,
	} {
		if v != "" {
			q.Set(k, v)
		}
	}
	var list []entity.Customer
	if err := c.do(ctx, http.MethodGet, "/customers/filter", q, nil, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []entity.Customer{}
	}
	return list, nil
}

// CountAndGraph GET /customers/count_and_graph.
func (c *Client) CountAndGraph(ctx context.Context) (*entity.Dashboard, error) {
	var d entity.Dashboard
	if err := c.do(ctx, http.MethodGet, "/customers/count_and_graph", nil, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
