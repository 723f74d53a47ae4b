package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// PolicyFile is the optional TOML document that overrides the attendance policy.
//
//	timezone = "Asia/Kolkata"
//	late_threshold = "09:30"
//
//	[[holidays]]
//	date = "2025-01-26"
//	name = "Republic Day"
type PolicyFile struct {
	Timezone      string    `toml:"timezone,omitempty"`
	LateThreshold string    `toml:"late_threshold,omitempty"`
	Holidays      []Holiday `toml:"holidays"`
}

type Holiday struct {
	Date string `toml:"date"` // YYYY-MM-DD
	Name string `toml:"name"`
}

// ReadPolicy decodes a PolicyFile from the provided reader.
func ReadPolicy(r io.Reader) (*PolicyFile, error) {
	var p PolicyFile
	if _, err := toml.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode policy: %w", err)
	}
	for _, h := range p.Holidays {
		if _, err := time.Parse("2006-01-02", h.Date); err != nil {
			return nil, fmt.Errorf("invalid holiday date %q: %w", h.Date, err)
		}
	}
	return &p, nil
}

func (a *AttendanceConfig) applyPolicyFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open policy file: %w", err)
	}
	defer f.Close()

	p, err := ReadPolicy(f)
	if err != nil {
		return fmt.Errorf("reading policy from %s: %w", path, err)
	}
	a.Apply(p)
	return nil
}

// Apply overlays a decoded policy on top of the environment values.
func (a *AttendanceConfig) Apply(p *PolicyFile) {
	if p.Timezone != "" {
		a.Timezone = p.Timezone
	}
	if p.LateThreshold != "" {
		a.LateThreshold = p.LateThreshold
	}
	if a.Holidays == nil {
		a.Holidays = make(map[string]string, len(p.Holidays))
	}
	for _, h := range p.Holidays {
		a.Holidays[h.Date] = h.Name
	}
}

func (a *AttendanceConfig) resolve() error {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return fmt.Errorf("invalid ATTENDANCE_TIMEZONE %q: %w", a.Timezone, err)
	}
	threshold, err := ParseClockTime(a.LateThreshold)
	if err != nil {
		return fmt.Errorf("invalid ATTENDANCE_LATE_THRESHOLD: %w", err)
	}
	a.location = loc
	a.threshold = threshold
	return nil
}

// Location is the timezone that defines the calendar day.
func (a *AttendanceConfig) Location() *time.Location {
	if a.location == nil {
		return time.UTC
	}
	return a.location
}

// Threshold is the late cut-off as an offset from local midnight.
func (a *AttendanceConfig) Threshold() time.Duration {
	return a.threshold
}

// ParseClockTime parses HH:MM into an offset from midnight.
func ParseClockTime(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}
