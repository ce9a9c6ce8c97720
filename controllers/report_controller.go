package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alejomesa58/encuestas-poli/services"
	"github.com/Alejomesa58/encuestas-poli/storage"
)

type ReportController struct {
	Admin     *services.AdminService
	Responses *storage.ResponseStore
}

/* ========== Reporte por encuesta ========== */

func (ctl *ReportController) Report(c *gin.Context) {
	sv, ok := ctl.Admin.GetSurvey(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "La encuesta no existe"})
		return
	}

	report := services.Report(sv.ID, ctl.Responses.Load())
	c.JSON(http.StatusOK, gin.H{
		"survey_id": sv.ID,
		"name":      sv.Name,
		"total":     report.Total,
		"recent":    report.Recent,
	})
}

/* ========== Exportar respuestas (CSV) ========== */

func (ctl *ReportController) Export(c *gin.Context) {
	sv, ok := ctl.Admin.GetSurvey(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "La encuesta no existe"})
		return
	}

	filename := fmt.Sprintf("respuestas_%s.csv", sv.ID)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := services.ExportCSV(sv, ctl.Responses.Load(), c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo exportar el reporte"})
		return
	}
}
