package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/Alejomesa58/encuestas-poli/models"
)

// Notifier es el punto de integración futuro con WhatsApp (por ejemplo la
// Cloud API de Meta). El envío real queda fuera de alcance; la
// implementación por defecto sólo registra el mensaje.
type Notifier interface {
	Send(ctx context.Context, to, message string) error
}

// ShareLink construye el enlace compartible del formulario de respuesta.
func ShareLink(baseURL, surveyID string) string {
	return fmt.Sprintf("%s?surveyId=%s", baseURL, url.QueryEscape(surveyID))
}

// InvitationMessage arma el texto de invitación que se enviaría por
// WhatsApp, con el enlace embebido.
func InvitationMessage(survey models.Survey, link string) string {
	return fmt.Sprintf(
		"Hola, te invitamos a responder la encuesta %q. "+
			"Puedes acceder al formulario en el siguiente enlace: %s",
		survey.Name, link,
	)
}

// LogNotifier simula el envío dejando el mensaje en el log.
type LogNotifier struct{}

func (LogNotifier) Send(ctx context.Context, to, message string) error {
	slog.Info("simulación de envío por WhatsApp", "to", to, "message", message)
	return nil
}
