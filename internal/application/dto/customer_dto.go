package dto

import "github.com/jhoicas/customer-portal/internal/domain/entity"

// CreateCustomerRequest alta de cliente. reg_date en formato YYYY-MM-DD.
type CreateCustomerRequest struct {
	Fullname string `json:"fullname"`
	Address  string `json:"address"`
	RegDate  string `json:"reg_date"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
	Note     string `json:"note"`
}

// UpdateCustomerRequest edición de cliente. Los datos personales (fullname,
// address, reg_date, mobile, email) y AssignedTo solo se respetan para admin.
type UpdateCustomerRequest struct {
	Fullname   string                `json:"fullname"`
	Address    string                `json:"address"`
	RegDate    string                `json:"reg_date"`
	Mobile     string                `json:"mobile"`
	Email      string                `json:"email"`
	Status     string                `json:"status"`
	Notes      []entity.CustomerNote `json:"notes"`
	AssignedTo string                `json:"assigned_to"`
}

// CustomerFilterRequest criterios del listado filtrado (query string).
type CustomerFilterRequest struct {
	DateFrom       string `query:"date_from"`
	DateTo         string `query:"date_to"`
	Status         string `query:"status"`
	AssignedToName string `query:"assigned_to_name"`
}
