package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alejomesa58/encuestas-poli/notify"
	"github.com/Alejomesa58/encuestas-poli/services"
)

// SurveyController expone el flujo de administración de encuestas. Un miss
// de búsqueda es un no-op en el servicio; aquí se traduce a 404.
type SurveyController struct {
	Admin    *services.AdminService
	Notifier notify.Notifier
	// BaseURL del formulario público de respuesta, para los enlaces
	// compartibles.
	BaseURL string
}

type surveyReq struct {
	Name     string `json:"name"     binding:"required"`
	Channel  string `json:"channel"`
	Validity string `json:"validity_period" binding:"required"`
	Status   string `json:"status"`
}

/* ========== Listar encuestas ========== */

func (ctl *SurveyController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"surveys": ctl.Admin.ListSurveys()})
}

/* ========== Crear encuesta ========== */

func (ctl *SurveyController) Create(c *gin.Context) {
	var req surveyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload no válido", "error": err.Error()})
		return
	}

	sv, err := ctl.Admin.CreateSurvey(req.Name, req.Channel, req.Validity, req.Status)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sv)
}

/* ========== Detalle ========== */

func (ctl *SurveyController) Detail(c *gin.Context) {
	sv, ok := ctl.Admin.GetSurvey(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "La encuesta no existe"})
		return
	}
	c.JSON(http.StatusOK, sv)
}

/* ========== Editar encuesta ========== */

func (ctl *SurveyController) Update(c *gin.Context) {
	var req surveyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload no válido", "error": err.Error()})
		return
	}

	sv, ok, err := ctl.Admin.UpdateSurvey(c.Param("id"), req.Name, req.Channel, req.Validity, req.Status)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "La encuesta no existe"})
		return
	}
	c.JSON(http.StatusOK, sv)
}

/* ========== Duplicar encuesta ========== */

func (ctl *SurveyController) Duplicate(c *gin.Context) {
	dup, ok := ctl.Admin.DuplicateSurvey(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "La encuesta no existe"})
		return
	}
	c.JSON(http.StatusCreated, dup)
}

/* ========== Eliminar encuesta ========== */

func (ctl *SurveyController) Delete(c *gin.Context) {
	// Las respuestas ya registradas no se tocan.
	if !ctl.Admin.DeleteSurvey(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"message": "La encuesta no existe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

/* ========== Compartir por WhatsApp (integración futura) ========== */

type whatsappReq struct {
	To string `json:"to"`
}

func (ctl *SurveyController) ShareWhatsApp(c *gin.Context) {
	sv, ok := ctl.Admin.GetSurvey(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "La encuesta no existe"})
		return
	}

	var req whatsappReq
	_ = c.ShouldBindJSON(&req) // el destinatario es opcional en la simulación

	link := notify.ShareLink(ctl.BaseURL, sv.ID)
	message := notify.InvitationMessage(sv, link)
	if err := ctl.Notifier.Send(c.Request.Context(), req.To, message); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "No se pudo enviar la invitación"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"link": link, "message": message})
}
