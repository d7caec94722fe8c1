package contract

import (
	"fmt"
	"time"
)

// rusMonths названия месяцев в родительном падеже для даты договора.
var rusMonths = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// RusDate форматирует дату договора: "2 сентября 2026 г.".
func RusDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d г.", t.Day(), rusMonths[t.Month()-1], t.Year())
}
