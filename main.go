package main

import (
	"time"

	"pvv/api/contexts"
	pam "pvv/api/middleware"
	"pvv/api/models"
	serviceInfoConsts "pvv/api/models/constants/service-info"
	"pvv/api/mvc/database"
	"pvv/api/mvc/inputs"
	"pvv/api/mvc/outputs"
	serviceInfoMvc "pvv/api/mvc/service-info"
	"pvv/api/mvc/variants"
	sqliteRepo "pvv/api/repositories/sqlite"
	"pvv/api/services"
	"pvv/api/services/annotation"
	"pvv/api/services/sanitation"

	"fmt"
	"net/http"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

func main() {
	// Gather environment variables
	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	fmt.Printf("Using : \n"+

		"\tDebug : %t \n\n"+

		"\tDatabase Path : %s \n"+
		"\tVCF Directory Path : %s \n"+
		"\tFile Processing Concurrency Level : %d\n\n"+

		"\tGenome Build : %s\n"+
		"\tVariantValidator LOVD Url : %s\n"+
		"\tNCBI E-utilities Url : %s\n"+
		"\tAnnotation Sweep Enabled : %t\n\n"+

		"Running on Port : %s\n",

		cfg.Debug,
		cfg.Api.DatabasePath,
		cfg.Api.VcfPath,
		cfg.Api.FileProcessingConcurrencyLevel,
		cfg.Annotation.GenomeBuild,
		cfg.Annotation.LovdUrl,
		cfg.Annotation.EutilsUrl,
		cfg.Annotation.SweepEnabled,
		cfg.Api.Port)
	// --

	// Instantiate Server
	e := echo.New()

	// Service Connections:
	// -- SQLite (foreign key enforcement is applied per-connection
	//    inside Open, before any mutation can run)
	repository, err := sqliteRepo.Open(cfg.Api.DatabasePath)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	defer repository.Close()

	// Service Singletons
	iz := services.NewIngestionService(repository, &cfg)
	az := annotation.NewAnnotationService(repository, &cfg)
	if cfg.Annotation.SweepEnabled {
		sanitation.NewSanitationService(repository, az, &cfg)
	}

	// Configure Server
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
	}))

	// -- Override handlers with "custom viewer" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			pc := &contexts.PvvContext{
				Context:           c,
				Config:            &cfg,
				Repository:        repository,
				IngestionService:  iz,
				AnnotationService: az,
			}
			return h(pc)
		}
	})

	// Begin MVC Routes
	// -- Root
	e.GET("/", func(c echo.Context) error {
		fmt.Printf("[%s] - Root hit!\n", time.Now())
		return c.JSON(http.StatusOK, serviceInfoConsts.SERVICE_WELCOME)
	})

	// -- Service Info
	e.GET("/service-info", serviceInfoMvc.GetServiceInfo)

	// -- Variants (inputs joined with their annotations)
	e.GET("/variants", variants.VariantsGetAll,
		// middleware
		pam.ValidateOptionalChromosomeAttribute)
	e.GET("/variants/overview", variants.GetVariantsOverview)

	e.GET("/variants/ingestion/run", variants.VariantsIngest)
	e.GET("/variants/ingestion/requests", variants.GetAllVariantIngestionRequests)

	e.GET("/variants/annotation/run", variants.VariantsAnnotate,
		// middleware
		pam.ValidateOptionalGenomeBuildAttribute)

	// -- Inputs
	e.GET("/inputs", inputs.InputsGetAll)
	e.POST("/inputs", inputs.InputsAdd)
	e.DELETE("/inputs", inputs.InputsDelete,
		// middleware
		pam.MandatePatientIdAttribute,
		pam.MandateVariantNumberAttribute)

	// -- Outputs
	e.GET("/outputs", outputs.OutputsGetByKey,
		// middleware
		pam.MandatePatientIdAttribute,
		pam.MandateVariantNumberAttribute)

	// -- Database administration
	e.POST("/database/reset", database.DatabaseReset)

	// Run
	e.Logger.Fatal(e.Start(":" + cfg.Api.Port))
}
