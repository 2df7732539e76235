package response

import (
	"time"

	"vistoria_itl/internal/domain/entities"
)

type VehicleResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Plate      string    `json:"plate"`
	Renavam    string    `json:"renavam,omitempty"`
	Make       string    `json:"make,omitempty"`
	Model      string    `json:"model,omitempty"`
	Year       int       `json:"year,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:         v.ID,
		CustomerID: v.CustomerID,
		Plate:      v.Plate,
		Renavam:    v.Renavam,
		Make:       v.Make,
		Model:      v.Model,
		Year:       v.Year,
		CreatedAt:  v.CreatedAt,
	}
}

func FromVehicles(vs []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVehicle(v))
	}
	return out
}
