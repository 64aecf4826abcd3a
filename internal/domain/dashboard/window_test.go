package dashboard

import (
	"testing"
	"time"
)

func TestNewWindow_Boundaries(t *testing.T) {
	now := time.Date(2025, 6, 15, 17, 42, 3, 0, time.UTC)
	w := NewWindow(now)

	if want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC); !w.Today.Equal(want) {
		t.Fatalf("Today = %v, want %v", w.Today, want)
	}
	if want := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC); !w.Yesterday.Equal(want) {
		t.Fatalf("Yesterday = %v, want %v", w.Yesterday, want)
	}
	if want := time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC); !w.SevenDaysFromNow.Equal(want) {
		t.Fatalf("SevenDaysFromNow = %v, want %v", w.SevenDaysFromNow, want)
	}
	if want := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC); !w.OneMonthFromNow.Equal(want) {
		t.Fatalf("OneMonthFromNow = %v, want %v", w.OneMonthFromNow, want)
	}
}

func TestNewWindow_DiscardsTimeOfDay(t *testing.T) {
	morning := time.Date(2025, 6, 15, 0, 0, 1, 0, time.UTC)
	night := time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC)

	if w1, w2 := NewWindow(morning), NewWindow(night); !w1.Today.Equal(w2.Today) {
		t.Fatalf("Today depende de la hora: %v vs %v", w1.Today, w2.Today)
	}
}

func TestNewWindow_MonthRollover(t *testing.T) {
	// AddDate normaliza: 31-ene + 1 mes = 3-mar (2025 no es bisiesto).
	now := time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC)
	w := NewWindow(now)

	if want := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC); !w.OneMonthFromNow.Equal(want) {
		t.Fatalf("OneMonthFromNow = %v, want %v", w.OneMonthFromNow, want)
	}
}

func TestNewWindow_YearRollover(t *testing.T) {
	now := time.Date(2025, 12, 28, 10, 0, 0, 0, time.UTC)
	w := NewWindow(now)

	if want := time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC); !w.SevenDaysFromNow.Equal(want) {
		t.Fatalf("SevenDaysFromNow = %v, want %v", w.SevenDaysFromNow, want)
	}
	if want := time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC); !w.OneMonthFromNow.Equal(want) {
		t.Fatalf("OneMonthFromNow = %v, want %v", w.OneMonthFromNow, want)
	}
}
