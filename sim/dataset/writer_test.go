package dataset

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	sim "github.com/carrier-sim/carrier-sim/sim"
)

func labeledLoad(t *testing.T, accepted bool) sim.LabeledLoad {
	t.Helper()
	origin, err := sim.NewLocation(sim.TXDallas)
	if err != nil {
		t.Fatal(err)
	}
	destination, err := sim.NewLocation(sim.TXHouston)
	if err != nil {
		t.Fatal(err)
	}
	return sim.LabeledLoad{
		Load: sim.Load{
			ID:          "load-1",
			Origin:      origin,
			Destination: destination,
			Miles:       263,
			PickupDate:  time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
			Cost:        512.5,
			Weight:      32000,
		},
		Accepted: accepted,
	}
}

func TestWrite_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	records := []sim.LabeledLoad{labeledLoad(t, true), labeledLoad(t, false)}

	if err := Write(&buf, records); err != nil {
		t.Fatalf("Write: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("row count = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "id" || rows[0][len(rows[0])-1] != "is_accepted" {
		t.Errorf("header = %v", rows[0])
	}

	first := rows[1]
	if first[0] != "load-1" || first[1] != "2025-03-03" {
		t.Errorf("row keys = %v, %v", first[0], first[1])
	}
	if first[2] != "TX_DAL" || first[5] != "TX_HOU" {
		t.Errorf("markets = %v, %v", first[2], first[5])
	}
	if first[8] != "263" || first[9] != "512.50" || first[10] != "32000" {
		t.Errorf("numeric fields = %v, %v, %v", first[8], first[9], first[10])
	}
	if first[11] != "true" || rows[2][11] != "false" {
		t.Errorf("labels = %v, %v", first[11], rows[2][11])
	}
}

func TestWrite_EmptyStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("row count = %d, want header only", len(rows))
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loads.csv")
	if err := WriteFile(path, []sim.LabeledLoad{labeledLoad(t, true)}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("written file is empty")
	}
}
