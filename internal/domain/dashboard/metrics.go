package dashboard

// Metrics son los escalares derivados de una pasada completa.
type Metrics struct {
	TotalClients      int
	TotalPatients     int
	AppointmentsToday int
	TotalVaccinations int
	LowStockItems     int
	OngoingTreatments int

	MonthlyRevenue   float64
	YesterdayRevenue float64
	RevenueChangePct float64
}

// computeMetrics deriva los escalares del snapshot ya clasificado.
// El filtro de facturación mensual compara mes Y año contra "hoy"; la
// facturación de ayer es el día de calendario exacto del límite yesterday.
func computeMetrics(data snapshotData, c classified, w Window) Metrics {
	m := Metrics{
		TotalClients:      len(data.clients),
		TotalPatients:     len(data.patients),
		AppointmentsToday: len(c.todayAppointments),
		TotalVaccinations: len(data.vaccinations),
		LowStockItems:     len(c.lowStock),
	}

	// Tratamientos en curso sobre la colección completa, no sobre un
	// subconjunto reciente.
	for _, rec := range data.records {
		if !rec.TreatmentCompleted {
			m.OngoingTreatments++
		}
	}

	for _, s := range data.sales {
		day, ok := parseDay(s.Date)
		if !ok {
			continue
		}
		if day.Year() == w.Today.Year() && day.Month() == w.Today.Month() {
			m.MonthlyRevenue += s.TotalAmount
		}
		if sameDay(day, w.Yesterday) {
			m.YesterdayRevenue += s.TotalAmount
		}
	}

	// Guarda contra división por cero: sin ventas ayer, la variación es 0.
	if m.YesterdayRevenue != 0 {
		m.RevenueChangePct = (m.MonthlyRevenue - m.YesterdayRevenue) / m.YesterdayRevenue * 100
	}

	return m
}
