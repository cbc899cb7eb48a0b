package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/customer-portal/internal/application/dto"
	"github.com/jhoicas/customer-portal/internal/domain"
	"github.com/jhoicas/customer-portal/internal/domain/entity"
	"github.com/jhoicas/customer-portal/internal/domain/repository"
)

// mobileLen longitud exacta de un móvil válido.
const mobileLen = 10

// CustomerUseCase aplica las reglas de alta, edición y búsqueda de clientes
// antes de delegar en el backend.
type CustomerUseCase struct {
	repo repository.CustomerRepository
	now  func() time.Time
}

// NewCustomerUseCase construye el caso de uso con el puerto hacia el backend.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, now: time.Now}
}

// WithClock reemplaza el reloj usado para hold_since (pruebas).
func (uc *CustomerUseCase) WithClock(now func() time.Time) *CustomerUseCase {
	uc.now = now
	return uc
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// ValidMobile vacío o exactamente 10 dígitos.
func ValidMobile(m string) bool {
	if m == "" {
		return true
	}
	if len(m) != mobileLen {
		return false
	}
	for _, r := range m {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// NormalizeStatus mayúsculas; vacío se mantiene. Error si no es un estado conocido.
func NormalizeStatus(s string) (string, error) {
	s = cases.Upper(language.Und).String(strings.TrimSpace(s))
	switch s {
	case "", entity.StatusActive, entity.StatusHold, entity.StatusClosed:
		return s, nil
	}
	return "", invalid("status %q no reconocido", s)
}

func checkDate(field, v string) error {
	if v == "" {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, v); err != nil {
		return invalid("%s debe tener formato YYYY-MM-DD", field)
	}
	return nil
}

// Register da de alta un cliente. fullname, address y reg_date son obligatorios.
func (uc *CustomerUseCase) Register(ctx context.Context, in dto.CreateCustomerRequest) (*entity.Customer, error) {
	c := &entity.Customer{
		Fullname: strings.TrimSpace(in.Fullname),
		Address:  strings.TrimSpace(in.Address),
		RegDate:  strings.TrimSpace(in.RegDate),
		Mobile:   strings.TrimSpace(in.Mobile),
		Email:    strings.TrimSpace(in.Email),
		Note:     strings.TrimSpace(in.Note),
	}
	if c.Fullname == "" {
		return nil, invalid("fullname es obligatorio")
	}
	if c.Address == "" {
		return nil, invalid("address es obligatorio")
	}
	if c.RegDate == "" {
		return nil, invalid("reg_date es obligatorio")
	}
	if err := checkDate("reg_date", c.RegDate); err != nil {
		return nil, err
	}
	if !ValidMobile(c.Mobile) {
		return nil, invalid("mobile debe tener %d dígitos", mobileLen)
	}
	return uc.repo.Create(ctx, c)
}

// Update edita un cliente. Solo un admin puede cambiar los datos personales
// o reasignarlo: para el resto de roles se conservan los del registro actual.
// hold_since se fija a la fecha UTC de hoy cuando el estado es HOLD y se
// vacía en otro caso.
func (uc *CustomerUseCase) Update(ctx context.Context, customerID string, in dto.UpdateCustomerRequest, role string) (*entity.Customer, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, invalid("customer_id es obligatorio")
	}
	status, err := NormalizeStatus(in.Status)
	if err != nil {
		return nil, err
	}

	admin := role == entity.RoleAdmin
	var personal entity.Customer
	if admin {
		personal, err = personalData(in)
		if err != nil {
			return nil, err
		}
	} else {
		current, err := uc.repo.Find(ctx, customerID)
		if err != nil {
			return nil, err
		}
		personal = *current
	}

	today := uc.now().UTC().Format(time.DateOnly)
	notes := make([]entity.CustomerNote, 0, len(in.Notes))
	for _, n := range in.Notes {
		text := strings.TrimSpace(n.Note)
		if text == "" {
			continue
		}
		date := strings.TrimSpace(n.Date)
		if date == "" {
			date = today
		}
		notes = append(notes, entity.CustomerNote{Date: date, Note: text})
	}

	holdSince := ""
	if status == entity.StatusHold {
		holdSince = today
	}

	patch := map[string]any{
		"fullname":   personal.Fullname,
		"address":    personal.Address,
		"reg_date":   nullable(personal.RegDate),
		"mobile":     nullable(personal.Mobile),
		"email":      nullable(personal.Email),
		"status":     nullable(status),
		"notes":      notes,
		"hold_since": holdSince,
	}
	if admin && strings.TrimSpace(in.AssignedTo) != "" {
		patch["assigned_to"] = strings.TrimSpace(in.AssignedTo)
	}
	return uc.repo.Update(ctx, customerID, patch)
}

// personalData valida los datos personales enviados por un admin.
func personalData(in dto.UpdateCustomerRequest) (entity.Customer, error) {
	c := entity.Customer{
		Fullname: strings.TrimSpace(in.Fullname),
		Address:  strings.TrimSpace(in.Address),
		RegDate:  strings.TrimSpace(in.RegDate),
		Mobile:   strings.TrimSpace(in.Mobile),
		Email:    strings.TrimSpace(in.Email),
	}
	if c.Fullname == "" {
		return c, invalid("fullname es obligatorio")
	}
	if c.Address == "" {
		return c, invalid("address es obligatorio")
	}
	if err := checkDate("reg_date", c.RegDate); err != nil {
		return c, err
	}
	if !ValidMobile(c.Mobile) {
		return c, invalid("mobile debe tener %d dígitos", mobileLen)
	}
	return c, nil
}

// nullable "" → nil para que viaje como null.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Get obtiene un cliente por id.
func (uc *CustomerUseCase) Get(ctx context.Context, customerID string) (*entity.Customer, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, invalid("customer_id es obligatorio")
	}
	return uc.repo.Find(ctx, customerID)
}

// Search busca por id de cliente o móvil.
func (uc *CustomerUseCase) Search(ctx context.Context, query string) ([]entity.Customer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, invalid("la búsqueda está vacía")
	}
	return uc.repo.Search(ctx, query)
}

// Filter listado por rango de fechas, estado y asignado. Todos los criterios son opcionales.
func (uc *CustomerUseCase) Filter(ctx context.Context, in dto.CustomerFilterRequest) ([]entity.Customer, error) {
	f, err := ToFilter(in)
	if err != nil {
		return nil, err
	}
	return uc.repo.Filter(ctx, f)
}

// ToFilter valida y normaliza los criterios.
func ToFilter(in dto.CustomerFilterRequest) (repository.CustomerFilter, error) {
	f := repository.CustomerFilter{
		DateFrom:       strings.TrimSpace(in.DateFrom),
		DateTo:         strings.TrimSpace(in.DateTo),
		AssignedToName: strings.TrimSpace(in.AssignedToName),
	}
	if err := checkDate("date_from", f.DateFrom); err != nil {
		return f, err
	}
	if err := checkDate("date_to", f.DateTo); err != nil {
		return f, err
	}
	if f.DateFrom != "" && f.DateTo != "" && f.DateTo < f.DateFrom {
		return f, invalid("date_to es anterior a date_from")
	}
	status, err := NormalizeStatus(in.Status)
	if err != nil {
		return f, err
	}
	f.Status = status
	return f, nil
}
