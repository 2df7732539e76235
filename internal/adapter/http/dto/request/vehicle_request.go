package request

import (
	"vistoria_itl/internal/domain/entities"
)

type VehicleRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	Plate      string `json:"plate" binding:"required"`
	Renavam    string `json:"renavam"`
	Make       string `json:"make"`
	Model      string `json:"model"`
	Year       int    `json:"year"`
}

func (r VehicleRequest) ToEntity() entities.Vehicle {
	return entities.Vehicle{
		CustomerID: r.CustomerID,
		Plate:      r.Plate,
		Renavam:    r.Renavam,
		Make:       r.Make,
		Model:      r.Model,
		Year:       r.Year,
	}
}
