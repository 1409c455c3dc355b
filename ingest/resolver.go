package ingest

import (
	"strings"

	"github.com/google/uuid"
)

// VehicleRef is the slice of a persisted vehicle the resolver needs. The
// directory is built from a single bulk query before any row is processed.
type VehicleRef struct {
	ID       uuid.UUID
	Callsign string
	Mileage  float64
}

// Directory resolves spreadsheet callsigns to persisted vehicles. Lookups are
// exact after trimming and upper-casing; a callsign cell holding several
// aliases ("HY-295/HY-295A") registers each alias separately.
type Directory struct {
	byCallsign map[string]VehicleRef
	order      []VehicleRef
}

func NewDirectory(vehicles []VehicleRef) *Directory {
	d := &Directory{byCallsign: make(map[string]VehicleRef, len(vehicles))}
	for _, v := range vehicles {
		d.order = append(d.order, v)
		for _, alias := range splitAliases(v.Callsign) {
			if _, taken := d.byCallsign[alias]; !taken {
				d.byCallsign[alias] = v
			}
		}
	}
	return d
}

func splitAliases(callsign string) []string {
	var aliases []string
	for _, part := range strings.FieldsFunc(callsign, func(r rune) bool {
		return r == '/' || r == ','
	}) {
		if a := strings.ToUpper(strings.TrimSpace(part)); a != "" {
			aliases = append(aliases, a)
		}
	}
	return aliases
}

// Resolve looks a callsign up by exact upper-cased trimmed match.
func (d *Directory) Resolve(callsign string) (VehicleRef, bool) {
	v, ok := d.byCallsign[strings.ToUpper(strings.TrimSpace(callsign))]
	return v, ok
}

// First returns the first registered vehicle. It exists only to support the
// legacy opt-in fuel-upload fallback; unresolved rows are skipped by default.
func (d *Directory) First() (VehicleRef, bool) {
	if len(d.order) == 0 {
		return VehicleRef{}, false
	}
	return d.order[0], true
}

// Len reports how many vehicles the directory holds.
func (d *Directory) Len() int {
	return len(d.order)
}
