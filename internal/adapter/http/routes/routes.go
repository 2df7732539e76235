package routes

import (
	"log"
	"os"
	"strconv"

	_ "vistoria_itl/docs" // This will be auto-generated
	"vistoria_itl/internal/adapter/http/handlers"
	repository2 "vistoria_itl/internal/adapter/persistence/repository"
	"vistoria_itl/internal/infrastructure/database"
	"vistoria_itl/internal/infrastructure/payments"
	"vistoria_itl/internal/infrastructure/pdfgen"
	"vistoria_itl/internal/infrastructure/storage"
	"vistoria_itl/internal/usecase"
	"vistoria_itl/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	tenantRepo := repository2.NewTenantDynamoRepository(ddb)
	typeRepo := repository2.NewInspectionTypeDynamoRepository(ddb)
	pricingRepo := repository2.NewPricingDynamoRepository(ddb)
	orgaoRepo := repository2.NewIssuingBodyDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	appointmentRepo := repository2.NewAppointmentDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	reportRepo := repository2.NewInspectionReportDynamoRepository(ddb)

	contentStore := storage.NewDiskContentStore()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	tenantUseCase := usecase.NewTenantUseCase(tenantRepo)
	typeUseCase := usecase.NewInspectionTypeUseCase(typeRepo, tenantRepo, pricingRepo)
	pricingUseCase := usecase.NewPricingUseCase(tenantRepo, typeRepo, pricingRepo)
	orgaoUseCase := usecase.NewIssuingBodyUseCase(orgaoRepo)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo, customerRepo)
	appointmentUseCase := usecase.NewAppointmentUseCase(appointmentRepo, tenantRepo, customerRepo, vehicleRepo, typeRepo, paymentRepo, reportRepo)
	importUseCase := usecase.NewImportUseCase(appointmentUseCase)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, appointmentRepo, tenantRepo, pricingUseCase, paymentGateway)
	reportUseCase := usecase.NewReportUseCase(reportRepo, appointmentRepo, tenantRepo, customerRepo, vehicleRepo, typeRepo, orgaoRepo, contentStore, pdfgen.NewLaudoRenderer())

	tenantHandler := handlers.NewTenantHandler(tenantUseCase)
	typeHandler := handlers.NewInspectionTypeHandler(typeUseCase, pricingUseCase)
	orgaoHandler := handlers.NewIssuingBodyHandler(orgaoUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentUseCase, importUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	// Generated artifacts (laudo PDFs, photos) are served as static content.
	router.Static("/content", contentStore.Root())

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, tenantHandler, typeHandler, orgaoHandler)
	addSchedulingRoutes(v1, customerHandler, vehicleHandler, appointmentHandler)
	addPaymentRoutes(v1, paymentHandler)
	addReportRoutes(v1, reportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
