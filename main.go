// Command entregas serves the delivery-tracking page for the dealership:
// a customer enters their document number, we look the sale up in the
// back-office spreadsheet and show a three-stage tracker plus a generated
// status note.
package main

import (
	"context"
	"html/template"
	"time"

	gateway "github.com/andesmotors/entregas/apigateway"
	"github.com/andesmotors/entregas/fields"
	"github.com/andesmotors/entregas/sheets"
	"github.com/andesmotors/entregas/store"
	"github.com/andesmotors/entregas/summary"
	"github.com/andesmotors/entregas/tracking"
	"github.com/andesmotors/entregas/utils"
	"github.com/bradfitz/iter"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var logrusLogger = logrus.New()
var serviceConfig fields.Config
var trackingService tracking.Service

// GetMainEngine builds the router with all middleware and routes attached.
func GetMainEngine() *gin.Engine {
	route := gin.Default()
	route.HandleMethodNotAllowed = true
	route.Use(gateway.RequestID())
	route.Use(gateway.Instrumentation())
	route.Use(gateway.OptionsMiddleware)
	route.SetFuncMap(template.FuncMap{"N": iter.N})
	route.LoadHTMLGlob("./templates/*")

	route.GET("/", trackingService.Home)
	route.GET("/api/tracking", trackingService.Tracking)
	route.GET("/api/health", trackingService.Health)
	route.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return route
}

func setup(ctx context.Context) error {
	if err := parseConfig(&serviceConfig); err != nil {
		return err
	}
	configureLogger(serviceConfig)
	logrusLogger.Printf("The final config file is: %#v", serviceConfig)

	auditStore, err := store.Open(serviceConfig.DatabasePath)
	if err != nil {
		return err
	}

	redisClient := utils.GetRedis(serviceConfig.RedisAddr)
	if err := redisClient.Ping().Err(); err != nil {
		// cache only; the sheet lookup works without it
		logrusLogger.Printf("redis unavailable, lookups will not be cached: %v", err)
		redisClient = nil
	}

	finder, err := sheets.NewClient(ctx, serviceConfig, redisClient, logrusLogger)
	if err != nil {
		return err
	}

	summarizer, err := summary.NewClient(ctx, serviceConfig.GeminiAPIKey, serviceConfig.GeminiModel,
		time.Duration(serviceConfig.SummaryTimeoutMs)*time.Millisecond)
	if err != nil {
		return err
	}

	trackingService = tracking.Service{
		Finder:     finder,
		Summarizer: summarizer,
		Store:      auditStore,
		Config:     serviceConfig,
		Logger:     logrusLogger,
	}
	return nil
}

func main() {
	if err := setup(context.Background()); err != nil {
		logrusLogger.Fatalf("error in setting up the service: %v", err)
	}
	route := GetMainEngine()
	logrusLogger.Fatal(route.Run(serviceConfig.Port))
}
