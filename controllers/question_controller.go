package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alejomesa58/encuestas-poli/services"
)

type QuestionController struct {
	Admin *services.AdminService
}

type addQuestionReq struct {
	Text string `json:"text" binding:"required"`
}

/* ========== Agregar pregunta ========== */

func (ctl *QuestionController) Add(c *gin.Context) {
	var req addQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload no válido", "error": err.Error()})
		return
	}

	q, err := ctl.Admin.AddQuestion(c.Param("id"), req.Text)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"question_id": q.ID, "survey_id": c.Param("id")})
}

/* ========== Eliminar pregunta ========== */

// Remove es idempotente: repetir la misma llamada responde 200 igual.
func (ctl *QuestionController) Remove(c *gin.Context) {
	ctl.Admin.RemoveQuestion(c.Param("id"), c.Param("qid"))
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
