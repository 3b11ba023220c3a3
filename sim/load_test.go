package sim

import (
	"testing"
	"time"
)

func TestLoad_CostPerMile(t *testing.T) {
	tests := []struct {
		name  string
		cost  float64
		miles int
		want  float64
	}{
		{"normal", 2000, 1000, 2.0},
		{"zero miles", 2000, 0, 0},
		{"negative miles", 2000, -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ld := Load{Cost: tt.cost, Miles: tt.miles}
			if got := ld.CostPerMile(); got != tt.want {
				t.Errorf("CostPerMile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLane_Reversed(t *testing.T) {
	lane := Lane{Origin: TXDallas, Destination: TXHouston}
	rev := lane.Reversed()
	if rev.Origin != TXHouston || rev.Destination != TXDallas {
		t.Errorf("Reversed() = %+v", rev)
	}
	if lane == rev {
		t.Error("a lane and its reverse must be distinct keys")
	}
}

func TestLoad_IsWeekendPickup(t *testing.T) {
	sat := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	sun := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	mon := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	if !(Load{PickupDate: sat}).IsWeekendPickup() {
		t.Error("Saturday should be a weekend pickup")
	}
	if !(Load{PickupDate: sun}).IsWeekendPickup() {
		t.Error("Sunday should be a weekend pickup")
	}
	if (Load{PickupDate: mon}).IsWeekendPickup() {
		t.Error("Monday should not be a weekend pickup")
	}
}
