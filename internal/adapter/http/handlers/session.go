package handlers

import (
	"strings"

	"vistoria_itl/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// Actor headers set by the API gateway in front of this service. The service
// never resolves an ambient "current user"; every tenant-scoped operation
// receives the session explicitly.
const (
	HeaderActorID  = "X-Actor-ID"
	HeaderTenantID = "X-Tenant-ID"
	HeaderRole     = "X-Role"
)

func sessionFromRequest(c *gin.Context) entities.Session {
	role := strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderRole)))
	if role == "" {
		role = entities.RoleTenant
	}
	return entities.Session{
		ActorID:  strings.TrimSpace(c.GetHeader(HeaderActorID)),
		TenantID: strings.TrimSpace(c.GetHeader(HeaderTenantID)),
		Role:     role,
	}
}
