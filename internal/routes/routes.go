package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/rental-booking/internal/audit"
	"github.com/BruksfildServices01/rental-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/rental-booking/internal/infra/repository"
	"github.com/BruksfildServices01/rental-booking/internal/middleware"
	ucAuth "github.com/BruksfildServices01/rental-booking/internal/usecase/auth"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, log zerolog.Logger) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Recovery(),
		middleware.CORSMiddleware(),
	)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	rentalRepo := infraRepo.NewRentalGormRepository(db)
	auditLogger := audit.New(log)

	// ======================================================
	// USE CASES
	// ======================================================
	loginUC := ucAuth.NewLogin(rentalRepo, auditLogger)

	// ======================================================
	// HANDLERS
	// ======================================================
	homeHandler := handlers.NewHomeHandler(db)
	authHandler := handlers.NewAuthHandler(loginUC)
	userHandler := handlers.NewUserHandler(rentalRepo, auditLogger)
	propertyHandler := handlers.NewPropertyHandler(rentalRepo, auditLogger)
	reservationHandler := handlers.NewReservationHandler(rentalRepo, auditLogger)

	r.GET("/", homeHandler.Home)
	r.GET("/health", homeHandler.Health)

	r.POST("/login", authHandler.Login)

	// ------------------------------
	// USUÁRIOS
	// ------------------------------
	usuarios := r.Group("/usuarios")
	{
		usuarios.GET("", userHandler.List)
		usuarios.POST("", userHandler.Create)
		usuarios.GET("/:id", userHandler.Get)
		usuarios.PUT("/:id", userHandler.Update)
		usuarios.DELETE("/:id", userHandler.Delete)
	}

	// ------------------------------
	// PROPRIEDADES
	// ------------------------------
	propriedades := r.Group("/propriedades")
	{
		propriedades.GET("", propertyHandler.List)
		propriedades.POST("", propertyHandler.Create)
		propriedades.GET("/:id", propertyHandler.Get)
		propriedades.PUT("/:id", propertyHandler.Update)
		propriedades.DELETE("/:id", propertyHandler.Delete)
	}

	// ------------------------------
	// RESERVAS
	// ------------------------------
	reservas := r.Group("/reservas")
	{
		reservas.GET("", reservationHandler.List)
		reservas.POST("", reservationHandler.Create)
		reservas.GET("/:id", reservationHandler.Get)
	}
}
