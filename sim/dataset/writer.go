// Package dataset writes the labeled load records a run produces as CSV
// rows for downstream forecasting and classification pipelines. It emits
// rows only; schema and storage belong to the consumers.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/carrier-sim/carrier-sim/sim"
)

// Header is the CSV column set, keyed by load id and pickup date.
var Header = []string{
	"id", "pickup_date",
	"origin_market", "origin_lat", "origin_lon",
	"destination_market", "destination_lat", "destination_lon",
	"miles", "cost", "weight", "is_accepted",
}

// Write streams labeled loads as CSV, header first.
func Write(w io.Writer, records []sim.LabeledLoad) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write dataset header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Load.ID,
			r.Load.PickupDate.Format(time.DateOnly),
			string(r.Load.Origin.Market),
			formatCoord(r.Load.Origin.Lat),
			formatCoord(r.Load.Origin.Lon),
			string(r.Load.Destination.Market),
			formatCoord(r.Load.Destination.Lat),
			formatCoord(r.Load.Destination.Lon),
			strconv.Itoa(r.Load.Miles),
			strconv.FormatFloat(r.Load.Cost, 'f', 2, 64),
			strconv.Itoa(r.Load.Weight),
			strconv.FormatBool(r.Accepted),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write dataset row for load %s: %w", r.Load.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes labeled loads to a CSV file, truncating any existing one.
func WriteFile(path string, records []sim.LabeledLoad) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset file: %w", err)
	}
	defer f.Close()

	if err := Write(f, records); err != nil {
		return err
	}
	return f.Close()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
