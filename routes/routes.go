package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Alejomesa58/encuestas-poli/controllers"
	"github.com/Alejomesa58/encuestas-poli/middleware"
)

type Controllers struct {
	Surveys   *controllers.SurveyController
	Questions *controllers.QuestionController
	Responses *controllers.ResponseController
	Reports   *controllers.ReportController
}

func SetupRoutes(r *gin.Engine, ctl Controllers) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	{
		surveys := api.Group("/surveys")
		{
			surveys.GET("", ctl.Surveys.List)
			surveys.POST("", ctl.Surveys.Create)
			surveys.GET("/:id", ctl.Surveys.Detail)
			surveys.PUT("/:id", ctl.Surveys.Update)
			surveys.POST("/:id/duplicate", ctl.Surveys.Duplicate)
			surveys.DELETE("/:id", ctl.Surveys.Delete)

			surveys.POST("/:id/questions", ctl.Questions.Add)
			surveys.DELETE("/:id/questions/:qid", ctl.Questions.Remove)

			// Punto de integración futuro con WhatsApp
			surveys.POST("/:id/whatsapp", ctl.Surveys.ShareWhatsApp)

			surveys.GET("/:id/report", ctl.Reports.Report)
			surveys.GET("/:id/report/export", ctl.Reports.Export)
		}

		// Lado público: responder la encuesta vigente
		api.GET("/respond", ctl.Responses.Target)
		api.POST("/responses", middleware.RateLimitSubmit(), ctl.Responses.Submit)
	}
}
