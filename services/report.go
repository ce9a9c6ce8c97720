package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/Alejomesa58/encuestas-poli/models"
)

// recentLimit acota las respuestas mostradas en el reporte.
const recentLimit = 5

type SurveyReport struct {
	Total  int               `json:"total"`
	Recent []models.Response `json:"recent"`
}

// Report filtra las respuestas de una encuesta (comparación exacta del
// survey_id, sin normalizar) y devuelve el total junto con las 5 más
// recientes. El orden ante timestamps iguales es estable: se conserva el
// orden de inserción. Un id colgante simplemente no tiene coincidencias.
func Report(surveyID string, responses []models.Response) SurveyReport {
	matches := make([]models.Response, 0)
	for _, r := range responses {
		if r.SurveyID == surveyID {
			matches = append(matches, r)
		}
	}

	report := SurveyReport{Total: len(matches)}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Timestamp.After(matches[j].Timestamp)
	})
	if len(matches) > recentLimit {
		matches = matches[:recentLimit]
	}
	report.Recent = matches
	return report
}

// ExportCSV vuelca todas las respuestas de la encuesta (no sólo las
// recientes) como CSV, de la más reciente a la más antigua.
func ExportCSV(survey models.Survey, responses []models.Response, w io.Writer) error {
	matches := make([]models.Response, 0)
	for _, r := range responses {
		if r.SurveyID == survey.ID {
			matches = append(matches, r)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Timestamp.After(matches[j].Timestamp)
	})

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"response_id", "survey", "timestamp", "satisfaction", "resolved", "comments"}); err != nil {
		return fmt.Errorf("escribir encabezado csv: %w", err)
	}
	for _, r := range matches {
		row := []string{
			r.ID,
			survey.Name,
			r.Timestamp.Format(time.RFC3339),
			r.Satisfaction,
			r.Resolved,
			r.Comments,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("escribir fila csv: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
