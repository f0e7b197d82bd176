package textutil

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var monthsPT = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// MonthPT nombre del mes en portugués, en minúsculas.
func MonthPT(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthsPT[m-1]
}

// LongDatePT fecha extensa en portugués: "02 de março de 2025".
func LongDatePT(t time.Time) string {
	return fmt.Sprintf("%02d de %s de %d", t.Day(), MonthPT(t.Month()), t.Year())
}

// MonthLabelPT etiqueta de período: "Março 2025".
func MonthLabelPT(t time.Time) string {
	title := cases.Title(language.BrazilianPortuguese)
	return fmt.Sprintf("%s %d", title.String(MonthPT(t.Month())), t.Year())
}
