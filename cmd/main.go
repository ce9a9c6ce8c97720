package main

import (
	"log"
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Alejomesa58/encuestas-poli/config"
	"github.com/Alejomesa58/encuestas-poli/controllers"
	"github.com/Alejomesa58/encuestas-poli/notify"
	"github.com/Alejomesa58/encuestas-poli/routes"
	"github.com/Alejomesa58/encuestas-poli/services"
	"github.com/Alejomesa58/encuestas-poli/storage"
	"github.com/Alejomesa58/encuestas-poli/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuración inválida: %v", err)
	}
	utils.InitLogger(cfg.Logging)

	// Medio de persistencia local + stores
	kv := storage.NewFileKV(cfg.DataPath)
	ids := utils.TimeRandomID{}
	surveyStore := storage.NewSurveyStore(kv, ids, cfg.Seed)
	responseStore := storage.NewResponseStore(kv)

	admin := services.NewAdminService(surveyStore, ids)
	collector := services.NewCollectorService(responseStore, ids)

	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type"}
	corsCfg.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsCfg))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Fatalf("trusted proxies: %v", err)
	}

	routes.SetupRoutes(r, routes.Controllers{
		Surveys: &controllers.SurveyController{
			Admin:    admin,
			Notifier: notify.LogNotifier{},
			BaseURL:  cfg.BaseURL,
		},
		Questions: &controllers.QuestionController{Admin: admin},
		Responses: &controllers.ResponseController{Admin: admin, Collector: collector},
		Reports:   &controllers.ReportController{Admin: admin, Responses: responseStore},
	})

	slog.Info("servidor de encuestas escuchando", "port", cfg.Port, "data", cfg.DataPath)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
