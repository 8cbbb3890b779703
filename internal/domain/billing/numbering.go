package billing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jhoicas/facturador/internal/domain/entity"
)

// seqToken token {seq:N} de la plantilla de numeración: secuencia con ceros
// a la izquierda hasta ancho N (p. ej. {seq:04} → 0007).
var seqToken = regexp.MustCompile(`\{seq:0*([1-9]\d*)\}`)

// Allocate propone el siguiente número de factura a partir del contador
// persistido y el año en curso. Si el año cambió, la secuencia reinicia en 1.
//
// Función pura: no persiste nada. La asignación y la persistencia están
// desacopladas a propósito, para que el orquestador pueda descartar un número
// provisional cuando el render falla, sin lógica de rollback: el mismo número
// se vuelve a proponer, sin saltos, en el siguiente intento.
func Allocate(template string, counter entity.Counter, year int) (string, entity.Counter) {
	seq := uint32(1)
	if counter.LastYear == year {
		seq = counter.LastSequence + 1
	}
	updated := entity.Counter{LastSequence: seq, LastYear: year}
	return FormatNumber(template, year, seq), updated
}

// HasSequenceToken reporta si la plantilla contiene un token {seq:N}. Sin él
// todos los números saldrían iguales; la configuración lo valida al cargar.
func HasSequenceToken(template string) bool {
	return seqToken.MatchString(template)
}

// FormatNumber sustituye {year} y {seq:N} en la plantilla configurada.
// Si la secuencia excede la capacidad del ancho, se emite con sus dígitos
// naturales: la corrección numérica pesa más que la alineación de columnas.
// Dos números son iguales si y solo si sus strings formateados lo son; el
// motor nunca parsea un número de vuelta a (año, secuencia).
func FormatNumber(template string, year int, seq uint32) string {
	out := strings.ReplaceAll(template, "{year}", strconv.Itoa(year))
	return seqToken.ReplaceAllStringFunc(out, func(tok string) string {
		width, _ := strconv.Atoi(seqToken.FindStringSubmatch(tok)[1])
		return fmt.Sprintf("%0*d", width, seq)
	})
}
