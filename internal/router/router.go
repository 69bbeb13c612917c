package router

import (
	"time"

	"supplychainx/internal/config"
	"supplychainx/internal/engine"
	"supplychainx/internal/handler"
	"supplychainx/internal/infra"
	"supplychainx/internal/middleware"
	"supplychainx/internal/model"
	"supplychainx/internal/repository"
	"supplychainx/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps carries the side-effect sinks built in main. Nil fields disable the
// matching feature (no lifecycle events, no stock alert emails).
type Deps struct {
	Events infra.EventPublisher
	Alerts service.StockAlerter
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, deps Deps) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	materialRepo := repository.NewRawMaterialRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	supplyOrderRepo := repository.NewSupplyOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	bomRepo := repository.NewBillOfMaterialRepository(db)
	productionOrderRepo := repository.NewProductionOrderRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	planner := engine.NewPlanner(productRepo, bomRepo)

	authSvc := service.NewAuthService(userRepo, cfg)
	materialSvc := service.NewRawMaterialService(materialRepo, bomRepo, deps.Events, deps.Alerts)
	supplierSvc := service.NewSupplierService(supplierRepo, supplyOrderRepo, deps.Events)
	supplyOrderSvc := service.NewSupplyOrderService(supplyOrderRepo, supplierRepo, materialRepo, deps.Events)
	productSvc := service.NewProductService(productRepo, productionOrderRepo, deps.Events)
	bomSvc := service.NewBillOfMaterialService(bomRepo, productRepo, materialRepo)
	productionSvc := service.NewProductionOrderService(productionOrderRepo, productRepo, planner, deps.Events)
	planningSvc := service.NewPlanningService(planner)
	customerSvc := service.NewCustomerService(customerRepo, orderRepo, deps.Events)
	orderSvc := service.NewOrderService(orderRepo, customerRepo, productRepo, deps.Events)
	deliverySvc := service.NewDeliveryService(deliveryRepo, orderRepo, customerRepo, productRepo, cfg.PDFStoragePath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	materialsH := handler.NewRawMaterialsHandler(materialSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	supplyOrdersH := handler.NewSupplyOrdersHandler(supplyOrderSvc)
	productsH := handler.NewProductsHandler(productSvc)
	bomH := handler.NewBOMHandler(bomSvc)
	productionH := handler.NewProductionOrdersHandler(productionSvc)
	planningH := handler.NewPlanningHandler(planningSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	deliveriesH := handler.NewDeliveriesHandler(deliverySvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes. ADMIN passes every RequireRole check.
	v1 := r.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))

	users := v1.Group("/users", middleware.RequireRole())
	{
		users.POST("", usersH.Create)
		users.GET("", usersH.List)
		users.PUT("/:id/role", usersH.UpdateRole)
	}

	// Procurement: the manager writes, the logistics supervisor reads.
	procRead := middleware.RequireRole(model.RoleProcurementManager, model.RoleLogisticsSupervisor)
	procWrite := middleware.RequireRole(model.RoleProcurementManager)

	v1.GET("/raw-materials", procRead, materialsH.List)
	v1.GET("/raw-materials/critical", procRead, materialsH.ListCritical)
	v1.GET("/raw-materials/critical/export", procRead, materialsH.ExportCritical)
	v1.GET("/raw-materials/:id", procRead, materialsH.Get)
	materials := v1.Group("/raw-materials", procWrite)
	{
		materials.POST("", materialsH.Create)
		materials.PUT("/:id", materialsH.Update)
		materials.DELETE("/:id", materialsH.Delete)
	}

	v1.GET("/suppliers", procRead, suppliersH.List)
	v1.GET("/suppliers/:id", procRead, suppliersH.Get)
	suppliers := v1.Group("/suppliers", procWrite)
	{
		suppliers.POST("", suppliersH.Create)
		suppliers.PUT("/:id", suppliersH.Update)
		suppliers.DELETE("/:id", suppliersH.Delete)
	}

	v1.GET("/supply-orders", procRead, supplyOrdersH.List)
	v1.GET("/supply-orders/:id", procRead, supplyOrdersH.Get)
	supplyOrders := v1.Group("/supply-orders", procWrite)
	{
		supplyOrders.POST("", supplyOrdersH.Create)
		supplyOrders.PUT("/:id", supplyOrdersH.Update)
		supplyOrders.DELETE("/:id", supplyOrdersH.Delete)
	}

	// Production: the chef writes, the production supervisor reads.
	prodRead := middleware.RequireRole(model.RoleProductionManager, model.RoleProductionSupervisor)
	prodWrite := middleware.RequireRole(model.RoleProductionManager)

	v1.GET("/products", prodRead, productsH.List)
	v1.GET("/products/:id", prodRead, productsH.Get)
	products := v1.Group("/products", prodWrite)
	{
		products.POST("", productsH.Create)
		products.PUT("/:id", productsH.Update)
		products.DELETE("/:id", productsH.Delete)
	}

	v1.GET("/bom", prodRead, bomH.List)
	v1.GET("/bom/:id", prodRead, bomH.Get)
	bom := v1.Group("/bom", prodWrite)
	{
		bom.POST("", bomH.Create)
		bom.PUT("/:id", bomH.Update)
		bom.DELETE("/:id", bomH.Delete)
	}

	v1.GET("/production-orders", prodRead, productionH.List)
	v1.GET("/production-orders/:id", prodRead, productionH.Get)
	production := v1.Group("/production-orders", prodWrite)
	{
		production.POST("", productionH.Create)
		production.PUT("/:id", productionH.Update)
		production.DELETE("/:id", productionH.Cancel)
	}

	planning := v1.Group("/planning", prodRead)
	{
		planning.GET("/availability", planningH.Availability)
		planning.GET("/production-time", planningH.ProductionTime)
	}

	// Sales & delivery: the commercial manager writes, the delivery supervisor reads.
	salesRead := middleware.RequireRole(model.RoleSalesManager, model.RoleDeliverySupervisor)
	salesWrite := middleware.RequireRole(model.RoleSalesManager)

	v1.GET("/customers", salesRead, customersH.List)
	v1.GET("/customers/:id", salesRead, customersH.Get)
	customers := v1.Group("/customers", salesWrite)
	{
		customers.POST("", customersH.Create)
		customers.PUT("/:id", customersH.Update)
		customers.DELETE("/:id", customersH.Delete)
	}

	v1.GET("/orders", salesRead, ordersH.List)
	v1.GET("/orders/:id", salesRead, ordersH.Get)
	orders := v1.Group("/orders", salesWrite)
	{
		orders.POST("", ordersH.Create)
		orders.PUT("/:id", ordersH.Update)
		orders.DELETE("/:id", ordersH.Cancel)
	}

	deliveries := v1.Group("/deliveries", salesRead)
	{
		deliveries.POST("", deliveriesH.Create)
		deliveries.GET("", deliveriesH.List)
		deliveries.GET("/:id", deliveriesH.Get)
		deliveries.GET("/:id/slip", deliveriesH.Slip)
	}

	return r
}
