package dashboard

import (
	"fmt"
	"sort"
)

// NotificationType es la etiqueta que la capa de presentación mapea a
// íconos/colores; el core no sabe nada de visuales.
type NotificationType string

const (
	TypeAppointment NotificationType = "appointment"
	TypeExpiring    NotificationType = "expiring"
	TypeExpired     NotificationType = "expired"
	TypeVaccination NotificationType = "vaccination"
	TypeLowStock    NotificationType = "low_stock"
	TypeOutOfStock  NotificationType = "out_of_stock"
	TypeFollowUp    NotificationType = "follow_up"
)

// Prioridades fijas por regla; número más alto = más urgente.
const (
	PriorityInfo   = 1
	PriorityWarn   = 2
	PriorityUrgent = 3
)

type Notification struct {
	Type     NotificationType
	Message  string
	Details  []string
	Link     string
	Priority int
}

// buildNotifications arma una notificación por regla con resultados no vacíos.
// El orden de armado acá es fijo (citas → por vencer → vencidos → vacunas →
// stock bajo → sin stock → controles) y es parte del contrato: define el
// desempate del ranking.
func buildNotifications(c classified) []Notification {
	out := make([]Notification, 0, 7)

	if n := len(c.todayAppointments); n > 0 {
		details := make([]string, 0, n)
		for _, e := range c.todayAppointments {
			details = append(details, fmt.Sprintf("%s (%s) at %s", e.label, e.secondary, e.timeOfDay))
		}
		out = append(out, Notification{
			Type:     TypeAppointment,
			Message:  pluralize(n, "appointment scheduled for today", "appointments scheduled for today"),
			Details:  details,
			Link:     "/appointments",
			Priority: PriorityWarn,
		})
	}

	if n := len(c.expiring); n > 0 {
		details := make([]string, 0, n)
		for _, e := range c.expiring {
			details = append(details, fmt.Sprintf("%s (Exp: %s)", e.label, e.day.Format(dateLayout)))
		}
		out = append(out, Notification{
			Type:     TypeExpiring,
			Message:  pluralize(n, "item expires within a month", "items expire within a month"),
			Details:  details,
			Link:     "/inventory",
			Priority: PriorityInfo,
		})
	}

	if n := len(c.expired); n > 0 {
		details := make([]string, 0, n)
		for _, e := range c.expired {
			details = append(details, fmt.Sprintf("%s (Expired: %s)", e.label, e.day.Format(dateLayout)))
		}
		out = append(out, Notification{
			Type:     TypeExpired,
			Message:  pluralize(n, "item has expired", "items have expired"),
			Details:  details,
			Link:     "/inventory",
			Priority: PriorityUrgent,
		})
	}

	if n := len(c.dueVaccinations); n > 0 {
		details := make([]string, 0, n)
		for _, e := range c.dueVaccinations {
			details = append(details, fmt.Sprintf("%s - %s (Due: %s)", e.label, e.secondary, e.day.Format(dateLayout)))
		}
		out = append(out, Notification{
			Type:     TypeVaccination,
			Message:  pluralize(n, "vaccination due this week", "vaccinations due this week"),
			Details:  details,
			Link:     "/vaccinations",
			Priority: PriorityWarn,
		})
	}

	if n := len(c.lowStock); n > 0 {
		details := make([]string, 0, n)
		for _, e := range c.lowStock {
			details = append(details, fmt.Sprintf("%s (%d left)", e.label, *e.quantity))
		}
		out = append(out, Notification{
			Type:     TypeLowStock,
			Message:  pluralize(n, "item low on stock", "items low on stock"),
			Details:  details,
			Link:     "/inventory",
			Priority: PriorityWarn,
		})
	}

	if n := len(c.outOfStock); n > 0 {
		details := make([]string, 0, n)
		for _, e := range c.outOfStock {
			details = append(details, e.label)
		}
		out = append(out, Notification{
			Type:     TypeOutOfStock,
			Message:  pluralize(n, "item out of stock", "items out of stock"),
			Details:  details,
			Link:     "/inventory",
			Priority: PriorityUrgent,
		})
	}

	if n := len(c.dueFollowUps); n > 0 {
		details := make([]string, 0, n)
		for _, e := range c.dueFollowUps {
			details = append(details, fmt.Sprintf("%s - %s (%s)", e.label, e.secondary, e.day.Format(dateLayout)))
		}
		out = append(out, Notification{
			Type:     TypeFollowUp,
			Message:  pluralize(n, "follow-up due this week", "follow-ups due this week"),
			Details:  details,
			Link:     "/medical-records",
			Priority: PriorityWarn,
		})
	}

	return out
}

// rankNotifications ordena por prioridad descendente. Sort estable: los
// empates respetan el orden de evaluación de buildNotifications.
func rankNotifications(ns []Notification) {
	sort.SliceStable(ns, func(i, j int) bool {
		return ns[i].Priority > ns[j].Priority
	})
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return fmt.Sprintf("%d %s", n, plural)
}
