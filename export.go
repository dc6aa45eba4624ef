package astro

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"
)

// ExportCSV writes states as an orbital-elements CSV trajectory, one row
// per state: time, a, e, i (deg), RAAN (deg), argp (deg), nu (deg).
// Grounded on the teacher's createAsCSVCSVFile/StreamStates
// (export.go), generalized from a file-path-and-channel API (which
// assumed a live Mission producing states) to a plain io.Writer over an
// already-computed slice, and with the Cosmographia-specific header
// fields (fuel, timeInHours/timeInDays duplicated columns) dropped per
// DESIGN.md's justification for excluding the Cosmographia export path
// entirely.
func ExportCSV(w io.Writer, origin CelestialObject, states []StateVector) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"time", "a", "e", "i_deg", "raan_deg", "argp_deg", "nu_deg"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, s := range states {
		oe := StateToElements(s, origin)
		row := []string{
			strconv.FormatFloat(s.Time, 'f', -1, 64),
			strconv.FormatFloat(oe.A, 'f', -1, 64),
			strconv.FormatFloat(oe.E, 'f', -1, 64),
			strconv.FormatFloat(Rad2deg(oe.I), 'f', -1, 64),
			strconv.FormatFloat(Rad2deg(oe.RAAN), 'f', -1, 64),
			strconv.FormatFloat(Rad2deg(oe.ArgP), 'f', -1, 64),
			strconv.FormatFloat(Rad2deg(oe.Nu), 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

// trajectoryRecord is the JSON-serializable form of a single
// StateVector, used by ExportJSON.
type trajectoryRecord struct {
	Time     float64    `json:"time"`
	Position [3]float64 `json:"position"`
	Velocity [3]float64 `json:"velocity"`
}

// ExportJSON writes states as a JSON array of {time, position,
// velocity} records.
func ExportJSON(w io.Writer, states []StateVector) error {
	records := make([]trajectoryRecord, len(states))
	for i, s := range states {
		records[i] = trajectoryRecord{Time: s.Time, Position: s.Position, Velocity: s.Velocity}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// ExportHeaderComment returns a comment line matching the teacher's
// export header style (creation timestamp plus a reference epoch),
// suitable for prefixing a CSV file written by ExportCSV.
func ExportHeaderComment(referenceEpoch time.Time) string {
	return fmt.Sprintf("# Creation date (UTC): %s\n# Reference epoch (UTC): %s\n", time.Now().UTC(), referenceEpoch.UTC())
}
