package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/storeshift/backend/internal/config"
	"github.com/storeshift/backend/internal/db"
	"github.com/storeshift/backend/internal/http/handlers"
	"github.com/storeshift/backend/internal/http/middleware"
	"github.com/storeshift/backend/internal/planner"

	_ "github.com/storeshift/backend/docs"
)

func Router(cfg config.Config, store *db.Store, p planner.Planner, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Key", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Store:     store,
		Planner:   p,
		Validator: validator.New(),
		Logger:    logger,
		AdminKey:  cfg.AdminKey,
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.GET("/months/current", h.CurrentMonth)
		api.GET("/staff", h.StaffList)
		api.GET("/schedule/:year/:month", h.ScheduleGet)
		api.GET("/requests/:year/:month/:staffId", h.RequestGet)
		api.PUT("/requests/:year/:month/:staffId", h.RequestSubmit)
	}

	admin := api.Group("")
	admin.Use(middleware.AdminKey(cfg.AdminKey))
	{
		admin.POST("/staff", h.StaffCreate)
		admin.PATCH("/staff/:id", h.StaffUpdate)
		admin.DELETE("/staff/:id", h.StaffDelete)
		admin.GET("/requests/:year/:month", h.RequestsList)
		admin.GET("/config/:year/:month", h.ConfigGet)
		admin.PATCH("/config/:year/:month", h.ConfigPatch)
		admin.POST("/schedule/compute", h.ScheduleCompute)
		admin.GET("/report/:year/:month", h.Report)
		admin.GET("/export/:year/:month", h.Export)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
