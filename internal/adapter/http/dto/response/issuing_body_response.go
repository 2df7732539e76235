package response

import (
	"time"

	"vistoria_itl/internal/domain/entities"
)

type IssuingBodyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromIssuingBody(b entities.IssuingBody) IssuingBodyResponse {
	return IssuingBodyResponse{
		ID:        b.ID,
		Name:      b.Name,
		Code:      b.Code,
		CreatedAt: b.CreatedAt,
	}
}

func FromIssuingBodies(bs []entities.IssuingBody) []IssuingBodyResponse {
	out := make([]IssuingBodyResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromIssuingBody(b))
	}
	return out
}
