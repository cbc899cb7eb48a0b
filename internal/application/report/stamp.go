package report

import "time"

// DefaultOffset desplazamiento fijo de la hora impresa (IST, UTC+5:30).
const DefaultOffset = 5*time.Hour + 30*time.Minute

// Stamp fecha y hora que se imprimen en el pie de página.
type Stamp struct {
	Date string // YYYY-MM-DD, fecha UTC
	Time string // H:MM:SS AM|PM, hora desplazada por el offset
}

// NewStamp calcula el sello a partir de un instante. La zona horaria del host
// no interviene: la fecha se toma en UTC y la hora en UTC+offset.
// La fecha no se desplaza, igual que en la versión original del reporte.
func NewStamp(now time.Time, offset time.Duration) Stamp {
	utc := now.UTC()
	return Stamp{
		Date: utc.Format(time.DateOnly),
		Time: utc.Add(offset).Format("3:04:05 PM"),
	}
}

// String fecha y hora combinadas ("Printed on").
func (s Stamp) String() string {
	return s.Date + " " + s.Time
}
