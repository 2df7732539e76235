package routes

import (
	"net/http"

	"vistoria_itl/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTenants         = "/tenants"
	PathInspectionTypes = "/inspection-types"
	PathOrgaos          = "/orgaos"
	PathCustomers       = "/customers"
	PathVehicles        = "/vehicles"
	PathAppointments    = "/appointments"
	PathPayments        = "/payments"
	PathReports         = "/reports"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addCatalogRoutes(rg *gin.RouterGroup, tenantHandler *handlers.TenantHandler, typeHandler *handlers.InspectionTypeHandler, orgaoHandler *handlers.IssuingBodyHandler) {
	tenants := rg.Group(PathTenants)
	{
		tenants.POST("", tenantHandler.Create)
		tenants.GET("", tenantHandler.List)
		tenants.GET("/:tenant_id", tenantHandler.GetByID)
		tenants.PUT("/:tenant_id", tenantHandler.Update)
		tenants.DELETE("/:tenant_id", tenantHandler.Deactivate)

		// Per-tenant price override and effective-price resolution.
		tenants.PUT("/:tenant_id/inspection-types/:inspection_type_id/price", typeHandler.SetTenantPrice)
		tenants.DELETE("/:tenant_id/inspection-types/:inspection_type_id/price", typeHandler.RemoveTenantPrice)
		tenants.GET("/:tenant_id/inspection-types/:inspection_type_id/price", typeHandler.ResolvePrice)
	}

	types := rg.Group(PathInspectionTypes)
	{
		types.POST("", typeHandler.Create)
		types.GET("", typeHandler.List)
		types.GET("/:inspection_type_id", typeHandler.GetByID)
		types.PUT("/:inspection_type_id", typeHandler.Update)
		types.DELETE("/:inspection_type_id", typeHandler.Deactivate)
	}

	orgaos := rg.Group(PathOrgaos)
	{
		orgaos.POST("", orgaoHandler.Create)
		orgaos.GET("", orgaoHandler.List)
		orgaos.GET("/:orgao_id", orgaoHandler.GetByID)
	}
}

func addSchedulingRoutes(rg *gin.RouterGroup, customerHandler *handlers.CustomerHandler, vehicleHandler *handlers.VehicleHandler, appointmentHandler *handlers.AppointmentHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.Create)
		customers.GET("", customerHandler.List)
		customers.GET("/:customer_id", customerHandler.GetByID)
		customers.GET("/:customer_id/vehicles", vehicleHandler.ListByCustomer)
	}

	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", vehicleHandler.Create)
		vehicles.GET("/:vehicle_id", vehicleHandler.GetByID)
	}

	appointments := rg.Group(PathAppointments)
	{
		appointments.POST("", appointmentHandler.Create)
		appointments.POST("/import", appointmentHandler.Import)
		appointments.GET("/:appointment_id", appointmentHandler.GetByID)
		appointments.GET("/:appointment_id/aggregate", appointmentHandler.GetAggregate)
		appointments.PUT("/:appointment_id", appointmentHandler.Update)
		appointments.PATCH("/:appointment_id/confirm", appointmentHandler.Confirm)
		appointments.PATCH("/:appointment_id/realize", appointmentHandler.Realize)
		appointments.PATCH("/:appointment_id/cancel", appointmentHandler.Cancel)
	}

	tenants := rg.Group(PathTenants)
	{
		tenants.GET("/:tenant_id/appointments", appointmentHandler.ListByTenant)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:appointment_id", paymentHandler.CreateCharge)
		payments.GET("/:appointment_id", paymentHandler.GetByAppointmentID)
		payments.POST("/sync", paymentHandler.Synchronize)
		payments.PATCH("/sync/:payment_id", paymentHandler.SynchronizeOne)
	}
}

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	appointments := rg.Group(PathAppointments)
	{
		appointments.POST("/:appointment_id/report", reportHandler.Create)
		appointments.GET("/:appointment_id/report", reportHandler.GetByAppointmentID)
	}

	reports := rg.Group(PathReports)
	{
		reports.POST("/:report_id/photos", reportHandler.UploadPhotos)
		reports.POST("/:report_id/pdf", reportHandler.GeneratePDF)
	}
}
