package entity

// DashboardCounts totales por estado que muestra la página de inicio.
type DashboardCounts struct {
	Total  int `json:"total"`
	Active int `json:"active"`
	Hold   int `json:"hold"`
	Closed int `json:"closed"`
}

// GraphPoint punto de la serie de registros por fecha.
type GraphPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Dashboard contadores + series para los gráficos.
type Dashboard struct {
	Count DashboardCounts         `json:"count"`
	Graph map[string][]GraphPoint `json:"graph,omitempty"`
}
