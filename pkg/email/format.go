package email

import (
	"fmt"
	"time"
	_ "time/tzdata" // America/Bogota must resolve on scratch images

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	copPrinter = message.NewPrinter(language.MustParse("es-CO"))
	bogota     = mustLoadLocation("America/Bogota")
)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("email: load %s: %v", name, err))
	}
	return loc
}

// FormatCOP renders whole pesos with Colombian grouping, e.g. "$2.000.000".
func FormatCOP(amount int64) string {
	return "$" + copPrinter.Sprintf("%d", amount)
}

// FormatDateTime renders a timestamp the way es-CO browsers show it, in Bogota time.
// Example: "15/3/2025, 2:30:45 p. m."
func FormatDateTime(t time.Time) string {
	local := t.In(bogota)
	period := "a. m."
	if local.Hour() >= 12 {
		period = "p. m."
	}
	return local.Format("2/1/2006, 3:04:05") + " " + period
}
