package schedules

import (
	"errors"
	"testing"
	"time"
)

var expandNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestExpand_EveryEightHours_TwoDosesPerDay(t *testing.T) {
	// 08:00 + 8h = 16:00 (mismo día), + 8h = 00:00 del día siguiente (excluida)
	// => 2 dosis/día x 7 días = 14.
	ds, err := Expand(Schedule{
		ID:            1,
		MedicineID:    2,
		IntervalHours: 8,
		DurationDays:  7,
		StartTime:     "08:00",
	}, expandNow)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if len(ds) != 14 {
		t.Fatalf("expected 14 reminders, got %d", len(ds))
	}

	for i := 0; i < 7; i++ {
		first := ds[2*i].ScheduledTime
		second := ds[2*i+1].ScheduledTime
		if first.Hour() != 8 || first.Minute() != 0 {
			t.Fatalf("day %d: first dose at %v, expected 08:00", i, first)
		}
		if second.Hour() != 16 || second.Minute() != 0 {
			t.Fatalf("day %d: second dose at %v, expected 16:00", i, second)
		}
		if first.Day() != expandNow.Day()+i {
			t.Fatalf("day %d: wrong date %v", i, first)
		}
	}
}

func TestExpand_EverySixHours_FourDoses(t *testing.T) {
	ds, err := Expand(Schedule{
		IntervalHours: 6,
		DurationDays:  1,
		StartTime:     "00:00",
	}, expandNow)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if len(ds) != 4 {
		t.Fatalf("expected 4 reminders, got %d", len(ds))
	}

	wantHours := []int{0, 6, 12, 18}
	for i, d := range ds {
		if d.ScheduledTime.Hour() != wantHours[i] || d.ScheduledTime.Minute() != 0 {
			t.Fatalf("dose %d at %v, expected %02d:00", i, d.ScheduledTime, wantHours[i])
		}
	}
}

func TestExpand_DayReset_NoDrift(t *testing.T) {
	// 7 no divide 24: 09:00, 16:00, 23:00 y la siguiente (06:00 del día
	// siguiente) no ocurre. Cada día vuelve a arrancar a las 09:00.
	ds, err := Expand(Schedule{
		IntervalHours: 7,
		DurationDays:  3,
		StartTime:     "09:00",
	}, expandNow)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if len(ds) != 9 {
		t.Fatalf("expected 9 reminders (3/día x 3 días), got %d", len(ds))
	}

	for day := 0; day < 3; day++ {
		first := ds[3*day].ScheduledTime
		if first.Hour() != 9 || first.Minute() != 0 {
			t.Fatalf("day %d starts at %v, expected 09:00", day, first)
		}
	}
}

func TestExpand_IntervalTwentyFour_OnePerDay(t *testing.T) {
	ds, err := Expand(Schedule{
		IntervalHours: 24,
		DurationDays:  5,
		StartTime:     "10:30",
	}, expandNow)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if len(ds) != 5 {
		t.Fatalf("expected 5 reminders, got %d", len(ds))
	}
}

func TestExpand_SafetyCap_TenDosesPerDay(t *testing.T) {
	// Cada 1h desde las 00:00 entrarían 24 dosis en el día; el tope corta en 10.
	ds, err := Expand(Schedule{
		IntervalHours: 1,
		DurationDays:  1,
		StartTime:     "00:00",
	}, expandNow)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if len(ds) != 10 {
		t.Fatalf("expected 10 reminders (safety cap), got %d", len(ds))
	}
}

func TestExpand_LateStart_FewerDoses(t *testing.T) {
	// Desde las 20:00 cada 1h solo caben 20,21,22,23 antes de medianoche.
	ds, err := Expand(Schedule{
		IntervalHours: 1,
		DurationDays:  1,
		StartTime:     "20:00",
	}, expandNow)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if len(ds) != 4 {
		t.Fatalf("expected 4 reminders, got %d", len(ds))
	}
}

func TestExpand_RFC3339Start_UsesThatDate(t *testing.T) {
	ds, err := Expand(Schedule{
		IntervalHours: 12,
		DurationDays:  2,
		StartTime:     "2025-06-01T08:30:00Z",
	}, expandNow)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if len(ds) != 4 {
		t.Fatalf("expected 4 reminders, got %d", len(ds))
	}

	first := ds[0].ScheduledTime
	if first.Year() != 2025 || first.Month() != time.June || first.Day() != 1 {
		t.Fatalf("first dose on %v, expected 2025-06-01", first)
	}
	if first.Hour() != 8 || first.Minute() != 30 {
		t.Fatalf("first dose at %v, expected 08:30", first)
	}
}

func TestExpand_ChronologicalOrder_AndMetadata(t *testing.T) {
	ds, err := Expand(Schedule{
		ID:            7,
		MedicineID:    3,
		IntervalHours: 8,
		DurationDays:  2,
		StartTime:     "08:00",
	}, expandNow)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}

	for i, d := range ds {
		if d.ScheduleID != 7 || d.MedicineID != 3 {
			t.Fatalf("dose %d: wrong references %d/%d", i, d.ScheduleID, d.MedicineID)
		}
		if d.IsTaken || d.IsSkipped || d.TakenAt != nil {
			t.Fatalf("dose %d: expected fresh pending state", i)
		}
		if !d.CreatedAt.Equal(expandNow) {
			t.Fatalf("dose %d: CreatedAt = %v, expected now", i, d.CreatedAt)
		}
		if i > 0 && !ds[i-1].ScheduledTime.Before(d.ScheduledTime) {
			t.Fatalf("doses out of order at %d: %v >= %v", i, ds[i-1].ScheduledTime, d.ScheduledTime)
		}
	}
}

func TestExpand_InvalidInput(t *testing.T) {
	cases := []struct {
		name string
		s    Schedule
	}{
		{"interval zero", Schedule{IntervalHours: 0, DurationDays: 1, StartTime: "08:00"}},
		{"interval too big", Schedule{IntervalHours: 25, DurationDays: 1, StartTime: "08:00"}},
		{"interval negative", Schedule{IntervalHours: -8, DurationDays: 1, StartTime: "08:00"}},
		{"duration zero", Schedule{IntervalHours: 8, DurationDays: 0, StartTime: "08:00"}},
		{"duration negative", Schedule{IntervalHours: 8, DurationDays: -1, StartTime: "08:00"}},
		{"bad start time", Schedule{IntervalHours: 8, DurationDays: 1, StartTime: "8am"}},
		{"empty start time", Schedule{IntervalHours: 8, DurationDays: 1, StartTime: ""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ds, err := Expand(tc.s, expandNow)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, ErrInvalidSchedule) {
				t.Fatalf("expected ErrInvalidSchedule, got %v", err)
			}
			if ds != nil {
				t.Fatalf("expected no reminders on invalid input, got %d", len(ds))
			}
		})
	}
}
