package domain

import "time"

// Itinerary es un plan de viaje almacenado. El blob de contenido se
// persiste como JSONB y nunca se muta despues de creado.
type Itinerary struct {
	ID          string           `json:"id"`
	UserID      *string          `json:"user_id,omitempty"`
	ChatID      *string          `json:"chat_id,omitempty"`
	Destination string           `json:"destination"`
	StartDate   *string          `json:"start_date,omitempty"`
	EndDate     *string          `json:"end_date,omitempty"`
	Title       string           `json:"title"`
	Budget      *int             `json:"budget,omitempty"`
	Content     ItineraryContent `json:"content"`
	CreatedAt   time.Time        `json:"created_at"`
}

// ItineraryContent es la estructura anidada que produce el sintetizador.
// Las llaves JSON son el formato de intercambio con el modelo y el cliente,
// por eso van en camelCase a diferencia de las filas.
type ItineraryContent struct {
	Destination string         `json:"destination"`
	Duration    int            `json:"duration"`
	StartDate   string         `json:"startDate,omitempty"`
	EndDate     string         `json:"endDate,omitempty"`
	Summary     string         `json:"summary"`
	Days        []ItineraryDay `json:"days"`
	Weather     []Weather      `json:"weather,omitempty"`
	Budget      *Budget        `json:"budget,omitempty"`
	MapLocation string         `json:"mapLocation,omitempty"`
}

// ItineraryDay agrupa las actividades de un dia. Los numeros de dia son
// 1-based; el productor los genera secuenciales pero no se valida (se
// registra un warning si no lo son).
type ItineraryDay struct {
	Day        int        `json:"day"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}

type Activity struct {
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Cost        *float64 `json:"cost,omitempty"`
	Icon        string   `json:"icon,omitempty"`
}

// Weather es una lectura de pronostico para un dia calendario.
type Weather struct {
	Date        string `json:"date"`
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Icon        string `json:"icon"`
}

// Budget desglosa el costo total del viaje en cinco categorias.
// Un budget ausente se presenta como todo-cero.
type Budget struct {
	Accommodation  float64 `json:"accommodation"`
	Food           float64 `json:"food"`
	Activities     float64 `json:"activities"`
	Transportation float64 `json:"transportation"`
	Miscellaneous  float64 `json:"miscellaneous"`
	Total          float64 `json:"total"`
}

// CategorySum suma las cinco categorias del desglose.
func (b Budget) CategorySum() float64 {
	return b.Accommodation + b.Food + b.Activities + b.Transportation + b.Miscellaneous
}
