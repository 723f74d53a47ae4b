package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kolkata(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func at(loc *time.Location, day, hour, min int) *time.Time {
	t := time.Date(2025, time.January, day, hour, min, 0, 0, loc)
	return &t
}

func TestWorkedHours(t *testing.T) {
	loc := kolkata(t)
	rec := &Attendance{CheckInTime: at(loc, 15, 9, 0), CheckOutTime: at(loc, 15, 17, 30)}

	d, ok := rec.WorkedDuration()
	require.True(t, ok)
	assert.Equal(t, 8*time.Hour+30*time.Minute, d)
	require.NotNil(t, rec.WorkedHours())
	assert.Equal(t, "8h 30m", *rec.WorkedHours())

	open := &Attendance{CheckInTime: at(loc, 15, 9, 0)}
	_, ok = open.WorkedDuration()
	assert.False(t, ok)
	assert.Nil(t, open.WorkedHours())
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0h 0m", FormatDuration(0))
	assert.Equal(t, "0h 59m", FormatDuration(59*time.Minute+59*time.Second))
	assert.Equal(t, "10h 5m", FormatDuration(10*time.Hour+5*time.Minute))
}

func TestState(t *testing.T) {
	loc := kolkata(t)
	var none *Attendance
	assert.Equal(t, StateNoRecord, none.State())
	assert.Equal(t, StateCheckedIn, (&Attendance{CheckInTime: at(loc, 15, 9, 0)}).State())
	assert.Equal(t, StateComplete, (&Attendance{CheckInTime: at(loc, 15, 9, 0), CheckOutTime: at(loc, 15, 18, 0)}).State())
}

func TestClassify(t *testing.T) {
	loc := kolkata(t)
	p := Policy{Location: loc, LateThreshold: 9*time.Hour + 30*time.Minute}
	today := time.Date(2025, time.January, 20, 0, 0, 0, 0, loc)
	day := time.Date(2025, time.January, 15, 0, 0, 0, 0, loc)

	tests := []struct {
		name string
		rec  *Attendance
		day  time.Time
		want Status
	}{
		{"late check-in", &Attendance{CheckInTime: at(loc, 15, 9, 45), CheckOutTime: at(loc, 15, 18, 0)}, day, StatusLate},
		{"on time", &Attendance{CheckInTime: at(loc, 15, 9, 0), CheckOutTime: at(loc, 15, 18, 0)}, day, StatusPresent},
		{"exactly at threshold", &Attendance{CheckInTime: at(loc, 15, 9, 30), CheckOutTime: at(loc, 15, 18, 0)}, day, StatusPresent},
		{"no check-out", &Attendance{CheckInTime: at(loc, 15, 9, 0)}, day, StatusHalfDay},
		{"late and no check-out", &Attendance{CheckInTime: at(loc, 15, 11, 0)}, day, StatusHalfDay},
		{"past date without record", nil, day, StatusAbsent},
		{"today without record", nil, today, StatusNoRecord},
		{"future without record", nil, today.AddDate(0, 0, 3), StatusNoRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Classify(tt.rec, tt.day, today))
		})
	}
}

func TestClassify_UsesPolicyTimezone(t *testing.T) {
	loc := kolkata(t)
	p := Policy{Location: loc, LateThreshold: 9*time.Hour + 30*time.Minute}
	today := time.Date(2025, time.January, 20, 0, 0, 0, 0, loc)

	// 04:00 UTC is 09:30 IST
	in := time.Date(2025, time.January, 15, 4, 0, 0, 0, time.UTC)
	out := in.Add(8 * time.Hour)
	rec := &Attendance{CheckInTime: &in, CheckOutTime: &out}
	assert.Equal(t, StatusPresent, p.Classify(rec, time.Date(2025, 1, 15, 0, 0, 0, 0, loc), today))

	late := in.Add(time.Minute)
	rec.CheckInTime = &late
	assert.Equal(t, StatusLate, p.Classify(rec, time.Date(2025, 1, 15, 0, 0, 0, 0, loc), today))
}

func TestPolicy_Holiday(t *testing.T) {
	p := Policy{Holidays: map[string]string{"2025-01-26": "Republic Day"}}
	name, ok := p.Holiday(time.Date(2025, 1, 26, 0, 0, 0, 0, time.UTC))
	assert.True(t, ok)
	assert.Equal(t, "Republic Day", name)

	_, ok = p.Holiday(time.Date(2025, 1, 27, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestPresenceRequest_Validate(t *testing.T) {
	req := PresenceRequest{EmployeeID: 0, ImageBase64: "not-an-image"}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "employee_id")
	assert.Contains(t, err.Error(), "image_base64")

	req = PresenceRequest{EmployeeID: 3}
	err = req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "image_base64 is required")
}

func TestListFilter_Validate(t *testing.T) {
	f := ListFilter{}
	require.NoError(t, f.Validate())
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 20, f.Limit)

	start, end := "2025-02-01", "2025-01-01"
	f = ListFilter{StartDate: &start, EndDate: &end}
	assert.Error(t, f.Validate())

	bad := "01/02/2025"
	f = ListFilter{Date: &bad}
	assert.Error(t, f.Validate())
}
