package astro

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TLEData holds the parsed fields of a two-line element set, per the
// data model spec 3 names. Fields keep the TLE's own units (degrees for
// angles, revolutions/day for mean motion) since that is the format
// SGP4Propagator (propagator_sgp4.go) expects.
type TLEData struct {
	Satellite       string
	Epoch           time.Time
	MeanMotion      float64 // revolutions/day
	Eccentricity    float64
	Inclination     float64 // degrees
	RAAN            float64 // degrees
	ArgPerigee      float64 // degrees
	MeanAnomaly     float64 // degrees
	MeanMotionDot   float64 // first derivative, revs/day^2
	BStar           float64
	ElementSetEpoch float64 // raw YYDDD.DDDDDDDD field, for diagnostics
}

// ParseTLE parses a standard two-line element set (line1, line2),
// grounded on the fixed-column layout documented across the other
// examples' TLE-handling reference files; unlike a full NORAD parser
// this keeps only the fields the propagators in this module consume.
func ParseTLE(name, line1, line2 string) (TLEData, error) {
	line1 = strings.TrimRight(line1, "\r\n")
	line2 = strings.TrimRight(line2, "\r\n")
	if len(line1) < 69 || len(line2) < 69 {
		return TLEData{}, fmt.Errorf("astro: TLE lines too short")
	}

	epochField := strings.TrimSpace(line1[18:32])
	epoch, elsetEpoch, err := parseTLEEpoch(epochField)
	if err != nil {
		return TLEData{}, err
	}

	meanMotionDot, err := strconv.ParseFloat(strings.TrimSpace(line1[33:43]), 64)
	if err != nil {
		return TLEData{}, fmt.Errorf("astro: parsing mean motion derivative: %w", err)
	}

	bstar, err := parseTLEExponentField(strings.TrimSpace(line1[53:61]))
	if err != nil {
		return TLEData{}, fmt.Errorf("astro: parsing bstar: %w", err)
	}

	incl, err := strconv.ParseFloat(strings.TrimSpace(line2[8:16]), 64)
	if err != nil {
		return TLEData{}, fmt.Errorf("astro: parsing inclination: %w", err)
	}
	raan, err := strconv.ParseFloat(strings.TrimSpace(line2[17:25]), 64)
	if err != nil {
		return TLEData{}, fmt.Errorf("astro: parsing RAAN: %w", err)
	}
	eccStr := "0." + strings.TrimSpace(line2[26:33])
	ecc, err := strconv.ParseFloat(eccStr, 64)
	if err != nil {
		return TLEData{}, fmt.Errorf("astro: parsing eccentricity: %w", err)
	}
	argp, err := strconv.ParseFloat(strings.TrimSpace(line2[34:42]), 64)
	if err != nil {
		return TLEData{}, fmt.Errorf("astro: parsing argument of perigee: %w", err)
	}
	ma, err := strconv.ParseFloat(strings.TrimSpace(line2[43:51]), 64)
	if err != nil {
		return TLEData{}, fmt.Errorf("astro: parsing mean anomaly: %w", err)
	}
	mm, err := strconv.ParseFloat(strings.TrimSpace(line2[52:63]), 64)
	if err != nil {
		return TLEData{}, fmt.Errorf("astro: parsing mean motion: %w", err)
	}

	return TLEData{
		Satellite:       name,
		Epoch:           epoch,
		MeanMotion:      mm,
		Eccentricity:    ecc,
		Inclination:     incl,
		RAAN:            raan,
		ArgPerigee:      argp,
		MeanAnomaly:     ma,
		MeanMotionDot:   meanMotionDot,
		BStar:           bstar,
		ElementSetEpoch: elsetEpoch,
	}, nil
}

func parseTLEEpoch(field string) (time.Time, float64, error) {
	raw, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("astro: parsing TLE epoch: %w", err)
	}
	yy := int(raw / 1000)
	if yy < 57 {
		yy += 2000
	} else {
		yy += 1900
	}
	dayOfYear := raw - float64(int(raw/1000)*1000)
	epoch := time.Date(yy, 1, 1, 0, 0, 0, 0, time.UTC).
		Add(time.Duration((dayOfYear - 1) * 24 * float64(time.Hour)))
	return epoch, raw, nil
}

// parseTLEExponentField parses the TLE's packed decimal-exponent
// notation (e.g. " 12345-3" meaning 0.12345e-3).
func parseTLEExponentField(field string) (float64, error) {
	field = strings.TrimSpace(field)
	if field == "" || field == "0" {
		return 0, nil
	}
	sign := 1.0
	if strings.HasPrefix(field, "-") {
		sign = -1.0
		field = field[1:]
	} else if strings.HasPrefix(field, "+") {
		field = field[1:]
	}
	expSignIdx := strings.LastIndexAny(field, "+-")
	if expSignIdx <= 0 {
		return 0, fmt.Errorf("astro: malformed exponent field %q", field)
	}
	mantissa := field[:expSignIdx]
	expPart := field[expSignIdx:]
	m, err := strconv.ParseFloat("0."+mantissa, 64)
	if err != nil {
		return 0, err
	}
	e, err := strconv.Atoi(expPart)
	if err != nil {
		return 0, err
	}
	value := sign * m
	for i := 0; i < e; i++ {
		value *= 10
	}
	for i := 0; i > e; i-- {
		value /= 10
	}
	return value, nil
}
