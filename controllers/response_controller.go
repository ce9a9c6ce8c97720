package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alejomesa58/encuestas-poli/services"
)

type ResponseController struct {
	Admin     *services.AdminService
	Collector *services.CollectorService
}

/* ========== Encuesta ofrecida al encuestado ========== */

// Target devuelve la encuesta que debe responder el visitante: la primera
// activa, o la primera a secas si ninguna lo está.
func (ctl *ResponseController) Target(c *gin.Context) {
	sv, ok := services.SelectTargetSurvey(ctl.Admin.ListSurveys())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "No hay encuestas registradas"})
		return
	}
	c.JSON(http.StatusOK, sv)
}

/* ========== Enviar respuesta ========== */

type submitReq struct {
	SurveyID     string `json:"survey_id"`
	Satisfaction string `json:"satisfaction"`
	Resolved     string `json:"resolved"`
	Comments     string `json:"comments"`
}

// Submit nunca rechaza por campos vacíos: una respuesta sin encuesta
// asociada se registra con el centinela sin-id.
func (ctl *ResponseController) Submit(c *gin.Context) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload no válido", "error": err.Error()})
		return
	}

	r := ctl.Collector.SubmitResponse(req.SurveyID, req.Satisfaction, req.Resolved, req.Comments)
	c.JSON(http.StatusCreated, r)
}
