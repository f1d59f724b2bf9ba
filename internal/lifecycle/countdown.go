package lifecycle

import (
	"fmt"
	"time"
)

// ExpiredDisplay показывается вместо обратного отсчёта после истечения срока
const ExpiredDisplay = "Expired"

// Countdown человекочитаемый остаток времени до целевого момента
type Countdown struct {
	Expired bool   `json:"expired"`
	Display string `json:"display"`
}

// RemainingTime вычисляет остаток времени от now до target.
// Остаток раскладывается на дни/часы/минуты с округлением вниз, секунды
// не показываются: "{d}d {h}h", "{h}h {m}m" или "{m}m".
// Применима и к началу смены (напоминания), и к концу (обратный отсчёт).
// Отображаемое значение обновляется опросом не реже раза в минуту,
// push-механизма для хода времени нет.
func RemainingTime(target, now time.Time) Countdown {
	diff := target.Sub(now)
	if diff <= 0 {
		return Countdown{Expired: true, Display: ExpiredDisplay}
	}

	days := int(diff / (24 * time.Hour))
	hours := int(diff % (24 * time.Hour) / time.Hour)
	minutes := int(diff % time.Hour / time.Minute)

	var display string
	switch {
	case days > 0:
		display = fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		display = fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		display = fmt.Sprintf("%dm", minutes)
	}

	return Countdown{Display: display}
}
