package dashboard

// Cada clasificador es un filtro puro sobre una colección normalizada.
// Todos preservan el orden de entrada: los detalles de las notificaciones
// salen en el mismo orden en que la colección vino del repositorio.

// classified junta el resultado de las siete reglas de una pasada.
type classified struct {
	todayAppointments []entry
	expiring          []entry
	expired           []entry
	dueVaccinations   []entry
	lowStock          []entry
	outOfStock        []entry
	dueFollowUps      []entry
}

// classifyTodayAppointments: la cita cae en el mismo día de calendario que hoy.
func classifyTodayAppointments(items []entry, w Window) []entry {
	out := make([]entry, 0)
	for _, e := range items {
		if e.hasDay && sameDay(e.day, w.Today) {
			out = append(out, e)
		}
	}
	return out
}

// classifyExpiring: today <= expiry < oneMonthFromNow.
// El límite inferior es inclusivo: lo que vence hoy todavía cuenta como
// "por vencer", nunca como vencido.
func classifyExpiring(items []entry, w Window) []entry {
	out := make([]entry, 0)
	for _, e := range items {
		if e.hasDay && !e.day.Before(w.Today) && e.day.Before(w.OneMonthFromNow) {
			out = append(out, e)
		}
	}
	return out
}

// classifyExpired: expiry < today, estricto.
func classifyExpired(items []entry, w Window) []entry {
	out := make([]entry, 0)
	for _, e := range items {
		if e.hasDay && e.day.Before(w.Today) {
			out = append(out, e)
		}
	}
	return out
}

// classifyDueVaccinations: today <= nextDue < sevenDaysFromNow.
func classifyDueVaccinations(items []entry, w Window) []entry {
	out := make([]entry, 0)
	for _, e := range items {
		if e.hasDay && !e.day.Before(w.Today) && e.day.Before(w.SevenDaysFromNow) {
			out = append(out, e)
		}
	}
	return out
}

// classifyLowStock: cantidad y umbral definidos, 0 < quantity <= threshold.
// Sin umbral no hay regla de stock bajo.
func classifyLowStock(items []entry) []entry {
	out := make([]entry, 0)
	for _, e := range items {
		if e.quantity != nil && e.threshold != nil && *e.quantity > 0 && *e.quantity <= *e.threshold {
			out = append(out, e)
		}
	}
	return out
}

// classifyOutOfStock: quantity == 0 explícito; es la única regla de stock que
// no depende del umbral. Cantidad ausente no es cero.
func classifyOutOfStock(items []entry) []entry {
	out := make([]entry, 0)
	for _, e := range items {
		if e.quantity != nil && *e.quantity == 0 {
			out = append(out, e)
		}
	}
	return out
}

// classifyDueFollowUps: today <= followUp < sevenDaysFromNow.
func classifyDueFollowUps(items []entry, w Window) []entry {
	out := make([]entry, 0)
	for _, e := range items {
		if e.hasDay && !e.day.Before(w.Today) && e.day.Before(w.SevenDaysFromNow) {
			out = append(out, e)
		}
	}
	return out
}
