package request

import (
	"vistoria_itl/internal/domain/entities"
)

// IssuingBodyRequest is the payload for órgão catalog entries.
type IssuingBodyRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code"`
}

func (r IssuingBodyRequest) ToEntity() entities.IssuingBody {
	return entities.IssuingBody{
		Name: r.Name,
		Code: r.Code,
	}
}
