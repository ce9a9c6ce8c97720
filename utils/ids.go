package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produce identificadores opacos para encuestas, preguntas y
// respuestas. Se inyecta en los servicios para que los tests puedan usar
// ids deterministas.
type IDGenerator interface {
	NewID() string
}

// TimeRandomID genera ids con un componente temporal (milisegundos en
// base 36) y un sufijo aleatorio tomado de un UUID. No hace falta unicidad
// criptográfica: no hay coordinación multi-escritor.
type TimeRandomID struct{}

func (TimeRandomID) NewID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + suffix
}
