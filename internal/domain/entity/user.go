package entity

// Roles conocidos. Solo RoleAdmin habilita la reasignación de clientes.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un operador autenticado contra el backend.
type User struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}
