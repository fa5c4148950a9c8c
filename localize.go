package nova

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"
)

// StationZone is the time zone the station publishes its broadcast times in.
const StationZone = "Europe/Paris"

// displayLayout is the 24-hour "HH:MM" layout of station and display times.
const displayLayout = "15:04"

var stationLocation = sync.OnceValues(func() (*time.Location, error) {
	return time.LoadLocation(StationZone)
})

// Names that time.LoadLocation resolves but that are not zones.
var pseudoZones = map[string]bool{
	"":           true,
	"Local":      true,
	"localtime":  true,
	"posixrules": true,
	"Factory":    true,
}

// LoadZone returns the location for an IANA time zone name. The empty name,
// "Local" and tzdata housekeeping entries such as "posixrules" and "Factory"
// are rejected since they do not name a zone.
func LoadZone(name string) (*time.Location, error) {
	if pseudoZones[name] {
		return nil, &ZoneError{Name: name}
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, &ZoneError{Name: name, Err: err}
	}
	return loc, nil
}

// Localize converts a station-local "HH:MM" time, taken on the station's
// calendar date at instant now, into target and shifts it by offsetMinutes.
// Only the time of day is returned; a change of date is dropped.
//
// A wall time that occurs twice on a fall-back day resolves to its standard
// time occurrence. A wall time skipped on a spring-forward day is read with
// the offset in effect before the gap, so 02:30 becomes 03:30 summer time.
//
// The offset is added as elapsed time before converting to target, not as
// wall-clock arithmetic in target. The two differ by the size of the DST
// change when the shifted time crosses a DST transition in target.
func Localize(stationTime string, target *time.Location, offsetMinutes int, now time.Time) (string, error) {
	hour, minute, err := parseClock(stationTime)
	if err != nil {
		return "", err
	}

	station, err := stationLocation()
	if err != nil {
		return "", fmt.Errorf("failed to load station time zone: %w", err)
	}

	year, month, day := now.In(station).Date()
	songTime := resolveWallTime(year, month, day, hour, minute, station)
	songTime = songTime.Add(time.Duration(offsetMinutes) * time.Minute)

	return songTime.In(target).Format(displayLayout), nil
}

// parseClock splits "HH:MM" into its hour and minute.
func parseClock(value string) (int, int, error) {
	fields := strings.Split(value, ":")
	if len(fields) != 2 {
		return 0, 0, &TimeFormatError{Value: value, Reason: "expected HH:MM"}
	}

	hour, err := parseClockField(fields[0])
	if err != nil {
		return 0, 0, &TimeFormatError{Value: value, Reason: "hour is not a number", Err: err}
	}
	if hour > 23 {
		return 0, 0, &TimeFormatError{Value: value, Reason: "hour out of range"}
	}

	minute, err := parseClockField(fields[1])
	if err != nil {
		return 0, 0, &TimeFormatError{Value: value, Reason: "minute is not a number", Err: err}
	}
	if minute > 59 {
		return 0, 0, &TimeFormatError{Value: value, Reason: "minute out of range"}
	}

	return hour, minute, nil
}

// parseClockField parses one or two ASCII digits.
func parseClockField(field string) (int, error) {
	if len(field) == 0 || len(field) > 2 {
		return 0, strconv.ErrSyntax
	}
	for _, c := range field {
		if c < '0' || c > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(field)
}

// resolveWallTime returns the instant at which the wall clock in loc reads
// the given date and time, resolving overlaps and gaps as described on
// Localize.
func resolveWallTime(year int, month time.Month, day, hour, minute int, loc *time.Location) time.Time {
	// The wall time read as if it were UTC; subtracting a zone offset from
	// it gives a candidate instant.
	wall := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)

	_, before := wall.Add(-12 * time.Hour).In(loc).Zone()
	_, after := wall.Add(12 * time.Hour).In(loc).Zone()

	var matches []time.Time
	for _, offset := range []int{before, after} {
		candidate := wall.Add(-time.Duration(offset) * time.Second).In(loc)
		if _, actual := candidate.Zone(); actual == offset {
			matches = append(matches, candidate)
		}
		if before == after {
			break
		}
	}

	switch len(matches) {
	case 0:
		return wall.Add(-time.Duration(before) * time.Second).In(loc)
	case 1:
		return matches[0]
	}
	for _, m := range matches {
		if !m.IsDST() {
			return m
		}
	}
	return matches[0]
}
