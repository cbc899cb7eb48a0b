package entity

// Estados válidos de un cliente. El backend puede devolver el campo vacío.
const (
	StatusActive = "ACTIVE"
	StatusHold   = "HOLD"
	StatusClosed = "CLOSED"
)

// Customer representa un registro de cliente tal como lo expone el backend.
// Todos los campos son opcionales: una cadena vacía significa "sin valor".
type Customer struct {
	CustomerID     string         `json:"customer_id,omitempty"`
	Fullname       string         `json:"fullname,omitempty"`
	Status         string         `json:"status,omitempty"`
	HoldSince      string         `json:"hold_since,omitempty"`
	Mobile         string         `json:"mobile,omitempty"`
	Email          string         `json:"email,omitempty"`
	RegDate        string         `json:"reg_date,omitempty"`
	Address        string         `json:"address,omitempty"`
	Note           string         `json:"note,omitempty"`
	Notes          []CustomerNote `json:"notes,omitempty"`
	AssignedTo     string         `json:"assigned_to,omitempty"`
	AssignedToName string         `json:"assigned_to_name,omitempty"`
}

// CustomerNote entrada fechada del historial de observaciones.
type CustomerNote struct {
	Date string `json:"date"`
	Note string `json:"note"`
}
