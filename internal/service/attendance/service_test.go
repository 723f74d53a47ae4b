package attendance

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/attendance"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/clock"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/sse"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/storage"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/validator"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/service/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory AttendanceRepository that enforces the
// (employee_id, date) key the way the database constraint does.
type fakeRepo struct {
	mu      sync.Mutex
	nextID  int64
	records map[string]*attendance.Attendance

	// precheckGate, when set, holds every GetByEmployeeAndDate call until
	// the expected number of callers have arrived.
	precheckGate *sync.WaitGroup
	createErr    error
	updateErr    error
	// checkOutLost makes CompleteCheckOut report that another request closed the record first.
	checkOutLost bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]*attendance.Attendance)}
}

func key(employeeID int64, date time.Time) string {
	return fmt.Sprintf("%d/%s", employeeID, date.Format("2006-01-02"))
}

func (r *fakeRepo) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Attendance, error) {
	if r.precheckGate != nil {
		r.precheckGate.Done()
		r.precheckGate.Wait()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[key(employeeID, date)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeRepo) Create(ctx context.Context, a *attendance.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	k := key(a.EmployeeID, a.Date)
	if _, ok := r.records[k]; ok {
		return attendance.ErrDuplicateCheckIn
	}
	r.nextID++
	a.ID = r.nextID
	cp := *a
	r.records[k] = &cp
	return nil
}

func (r *fakeRepo) CompleteCheckOut(ctx context.Context, id int64, at time.Time, image string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return false, r.updateErr
	}
	if r.checkOutLost {
		return false, nil
	}
	for _, rec := range r.records {
		if rec.ID == id {
			if rec.CheckOutTime != nil {
				return false, nil
			}
			rec.CheckOutTime = &at
			rec.CheckOutImage = &image
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) all() []attendance.Attendance {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]attendance.Attendance, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (r *fakeRepo) count(employeeID int64, date time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[key(employeeID, date)]; ok {
		return 1
	}
	return 0
}

func (r *fakeRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range r.all() {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListByEmployeeBetween(ctx context.Context, employeeID int64, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	f, t := from.Format("2006-01-02"), to.Format("2006-01-02")
	for _, rec := range r.all() {
		d := rec.Date.Format("2006-01-02")
		if rec.EmployeeID == employeeID && d >= f && d <= t {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range r.all() {
		if rec.Date.Format("2006-01-02") == date.Format("2006-01-02") {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeRepo) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	all := r.all()
	return all, int64(len(all)), nil
}

type failingStorage struct{ storage.FileStorage }

func (failingStorage) Upload(ctx context.Context, f io.Reader, key string, contentType string) (string, error) {
	return "", errors.New("disk full")
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []sse.Event
}

func (p *recordingPublisher) Publish(topic string, event sse.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

type fixture struct {
	svc   attendance.AttendanceService
	repo  *fakeRepo
	store *storage.MemoryStorage
	clock *clock.StubClock
	pub   *recordingPublisher
	loc   *time.Location
	today time.Time
}

func newFixture(t *testing.T) *fixture {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	f := &fixture{
		repo:  newFakeRepo(),
		store: storage.NewMemoryStorage("http://localhost:8080/uploads"),
		clock: clock.NewStubClock(time.Date(2025, time.January, 15, 9, 0, 0, 0, loc)),
		pub:   &recordingPublisher{},
		loc:   loc,
		today: time.Date(2025, time.January, 15, 0, 0, 0, 0, loc),
	}
	f.svc = NewAttendanceService(f.repo, file.NewFileService(f.store), f.pub, f.clock, attendance.Policy{
		Location:      loc,
		LateThreshold: 9*time.Hour + 30*time.Minute,
		Holidays:      map[string]string{"2025-01-26": "Republic Day"},
	})
	return f
}

var photo = func() string {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for x := 0; x < 16; x++ {
		img.Set(x, x, color.RGBA{G: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}()

func presence(_ *testing.T, employeeID int64) attendance.PresenceRequest {
	return attendance.PresenceRequest{EmployeeID: employeeID, ImageBase64: photo}
}

func TestCheckIn_CreatesRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.svc.CheckIn(ctx, presence(t, 7))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(7), resp.EmployeeID)
	assert.Equal(t, "2025-01-15", resp.Date)
	assert.True(t, resp.Timestamp.Equal(f.clock.Now()))
	assert.Contains(t, resp.ImageReference, "checkin/2025-01-15/employee_7_20250115_090000_")
	assert.Equal(t, "http://localhost:8080/uploads/"+resp.ImageReference, resp.ImageURL)

	recs := f.repo.all()
	require.Len(t, recs, 1)
	assert.Nil(t, recs[0].CheckOutTime)
	assert.Nil(t, recs[0].CheckOutImage)
	assert.Equal(t, resp.ImageReference, *recs[0].CheckInImage)
	assert.Equal(t, []string{resp.ImageReference}, f.store.Keys())
	assert.Equal(t, 1, f.pub.len())
}

func TestCheckIn_Twice_FailsWithDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CheckIn(ctx, presence(t, 7))
	require.NoError(t, err)
	before := f.repo.all()
	keysBefore := f.store.Keys()

	f.clock.Advance(time.Hour)
	_, err = f.svc.CheckIn(ctx, presence(t, 7))
	assert.ErrorIs(t, err, attendance.ErrDuplicateCheckIn)

	assert.Equal(t, before, f.repo.all())
	assert.Equal(t, keysBefore, f.store.Keys(), "no image written for a rejected check-in")
}

func TestCheckIn_NewDayResetsState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CheckIn(ctx, presence(t, 7))
	require.NoError(t, err)

	f.clock.Advance(24 * time.Hour)
	resp, err := f.svc.CheckIn(ctx, presence(t, 7))
	require.NoError(t, err)
	assert.Equal(t, "2025-01-16", resp.Date)
}

func TestCheckIn_DayBoundaryFollowsPolicyTimezone(t *testing.T) {
	f := newFixture(t)
	// 20:00 UTC on the 14th is 01:30 IST on the 15th
	f.clock.Set(time.Date(2025, time.January, 14, 20, 0, 0, 0, time.UTC))

	resp, err := f.svc.CheckIn(context.Background(), presence(t, 7))
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15", resp.Date)
}

func TestCheckOut_BeforeCheckIn_FailsWithNoCheckInFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CheckOut(context.Background(), presence(t, 7))
	assert.ErrorIs(t, err, attendance.ErrNoCheckInFound)
	assert.Empty(t, f.repo.all())
	assert.Empty(t, f.store.Keys())
}

func TestCheckOut_Completes_ThenDuplicateFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in, err := f.svc.CheckIn(ctx, presence(t, 7))
	require.NoError(t, err)

	f.clock.Set(time.Date(2025, time.January, 15, 17, 30, 0, 0, f.loc))
	out, err := f.svc.CheckOut(ctx, presence(t, 7))
	require.NoError(t, err)
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, "8h 30m", out.WorkedHours)
	assert.Contains(t, out.ImageReference, "checkout/2025-01-15/employee_7_20250115_173000_")

	recs := f.repo.all()
	require.Len(t, recs, 1)
	assert.Equal(t, in.ImageReference, *recs[0].CheckInImage, "check-in fields untouched")
	assert.True(t, recs[0].CheckInTime.Equal(in.Timestamp))

	f.clock.Advance(time.Minute)
	_, err = f.svc.CheckOut(ctx, presence(t, 7))
	assert.ErrorIs(t, err, attendance.ErrDuplicateCheckOut)
	assert.Len(t, f.store.Keys(), 2)

	_, err = f.svc.CheckIn(ctx, presence(t, 7))
	assert.ErrorIs(t, err, attendance.ErrDuplicateCheckIn, "complete is terminal for the day")
}

func TestCheckIn_ImagePersistFailure_WritesNoRecord(t *testing.T) {
	f := newFixture(t)
	svc := NewAttendanceService(f.repo, file.NewFileService(failingStorage{}), f.pub, f.clock, attendance.Policy{Location: f.loc})

	_, err := svc.CheckIn(context.Background(), presence(t, 7))
	assert.ErrorIs(t, err, attendance.ErrImagePersistFailure)
	assert.Equal(t, 0, f.repo.count(7, f.today))
	assert.Equal(t, 0, f.pub.len())
}

func TestCheckOut_ImagePersistFailure_LeavesRecordOpen(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.CheckIn(ctx, presence(t, 7))
	require.NoError(t, err)

	svc := NewAttendanceService(f.repo, file.NewFileService(failingStorage{}), f.pub, f.clock, attendance.Policy{Location: f.loc})
	_, err = svc.CheckOut(ctx, presence(t, 7))
	assert.ErrorIs(t, err, attendance.ErrImagePersistFailure)

	recs := f.repo.all()
	require.Len(t, recs, 1)
	assert.Nil(t, recs[0].CheckOutTime)
}

func TestCheckIn_RecordWriteFailure_KeepsImage(t *testing.T) {
	f := newFixture(t)
	f.repo.createErr = errors.New("connection reset")

	_, err := f.svc.CheckIn(context.Background(), presence(t, 7))
	assert.ErrorIs(t, err, attendance.ErrRecordWriteFailure)
	assert.Len(t, f.store.Keys(), 1, "orphaned image is not cleaned up")
	assert.Equal(t, 0, f.repo.count(7, f.today))
}

func TestCheckIn_InvalidInput_NoSideEffects(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CheckIn(context.Background(), attendance.PresenceRequest{EmployeeID: -1, ImageBase64: "@@@"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	m := verrs.ToMap()
	assert.Contains(t, m, "employee_id")
	assert.Contains(t, m, "image_base64")

	assert.Empty(t, f.repo.all())
	assert.Empty(t, f.store.Keys())
}

func TestCheckIn_TruncatedJPEG_IsInvalidInput(t *testing.T) {
	f := newFixture(t)

	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 7 ^ y * 13), G: uint8(x * y), B: uint8(y * 5), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	truncated := base64.StdEncoding.EncodeToString(buf.Bytes()[:buf.Len()-40])

	_, err := f.svc.CheckIn(context.Background(), attendance.PresenceRequest{EmployeeID: 7, ImageBase64: truncated})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "image_base64")
	assert.NotErrorIs(t, err, attendance.ErrImagePersistFailure)

	assert.Empty(t, f.repo.all())
	assert.Empty(t, f.store.Keys())
}

// captureLogs routes the default logger into a buffer for the rest of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func levelOf(t *testing.T, logs *bytes.Buffer, msgPrefix string) string {
	t.Helper()
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var entry struct {
			Level string `json:"level"`
			Msg   string `json:"msg"`
			Image string `json:"image"`
		}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if strings.HasPrefix(entry.Msg, msgPrefix) {
			assert.NotEmpty(t, entry.Image)
			return entry.Level
		}
	}
	t.Fatalf("no log entry starting with %q in %s", msgPrefix, logs.String())
	return ""
}

func TestLostRace_OrphanedImageIsLoggedAsError(t *testing.T) {
	t.Run("check-in", func(t *testing.T) {
		f := newFixture(t)
		f.repo.createErr = attendance.ErrDuplicateCheckIn
		logs := captureLogs(t)

		_, err := f.svc.CheckIn(context.Background(), presence(t, 7))
		assert.ErrorIs(t, err, attendance.ErrDuplicateCheckIn)
		assert.Len(t, f.store.Keys(), 1)
		assert.Equal(t, "ERROR", levelOf(t, logs, "Concurrent check-in lost the race"))
	})

	t.Run("check-out", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		_, err := f.svc.CheckIn(ctx, presence(t, 7))
		require.NoError(t, err)
		f.clock.Advance(8 * time.Hour)
		f.repo.checkOutLost = true
		logs := captureLogs(t)

		_, err = f.svc.CheckOut(ctx, presence(t, 7))
		assert.ErrorIs(t, err, attendance.ErrDuplicateCheckOut)
		assert.Len(t, f.store.Keys(), 2)
		assert.Equal(t, "ERROR", levelOf(t, logs, "Concurrent check-out lost the race"))
	})
}

func TestCheckIn_Concurrent_ExactlyOneSucceeds(t *testing.T) {
	f := newFixture(t)
	const callers = 2

	// Both requests pass the existence pre-check before either inserts, so the
	// storage-level key has to reject the loser.
	var gate sync.WaitGroup
	gate.Add(callers)
	f.repo.precheckGate = &gate

	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.CheckIn(context.Background(), presence(t, 7))
		}(i)
	}
	wg.Wait()

	succeeded, duplicates := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, attendance.ErrDuplicateCheckIn):
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, duplicates)
	assert.Equal(t, 1, f.repo.count(7, f.today))
	assert.Len(t, f.repo.all(), 1)
}

func TestCheckIn_ManyEmployeesConcurrently(t *testing.T) {
	f := newFixture(t)
	var wg sync.WaitGroup
	for id := int64(1); id <= 9; id++ {
		for n := 0; n < 3; n++ {
			wg.Add(1)
			go func(id int64) {
				defer wg.Done()
				_, _ = f.svc.CheckIn(context.Background(), presence(t, id))
			}(id)
		}
	}
	wg.Wait()

	assert.Len(t, f.repo.all(), 9)
	for id := int64(1); id <= 9; id++ {
		assert.Equal(t, 1, f.repo.count(id, f.today))
	}
}

func TestStatus_FollowsLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	st, err := f.svc.Status(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, attendance.StateNoRecord, st.State)
	assert.True(t, st.CanCheckIn)
	assert.False(t, st.CanCheckOut)

	_, err = f.svc.CheckIn(ctx, presence(t, 7))
	require.NoError(t, err)
	st, err = f.svc.Status(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, attendance.StateCheckedIn, st.State)
	assert.False(t, st.CanCheckIn)
	assert.True(t, st.CanCheckOut)

	f.clock.Advance(8 * time.Hour)
	_, err = f.svc.CheckOut(ctx, presence(t, 7))
	require.NoError(t, err)
	st, err = f.svc.Status(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, attendance.StateComplete, st.State)
	assert.False(t, st.CanCheckIn)
	assert.False(t, st.CanCheckOut)
}

func TestHistory_IncludesWorkedHoursAndStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Day 1: late, completed
	f.clock.Set(time.Date(2025, time.January, 13, 9, 45, 0, 0, f.loc))
	_, err := f.svc.CheckIn(ctx, presence(t, 7))
	require.NoError(t, err)
	f.clock.Set(time.Date(2025, time.January, 13, 18, 0, 0, 0, f.loc))
	_, err = f.svc.CheckOut(ctx, presence(t, 7))
	require.NoError(t, err)

	// Day 2: on time, never checked out
	f.clock.Set(time.Date(2025, time.January, 14, 9, 0, 0, 0, f.loc))
	_, err = f.svc.CheckIn(ctx, presence(t, 7))
	require.NoError(t, err)

	f.clock.Set(time.Date(2025, time.January, 15, 12, 0, 0, 0, f.loc))
	history, err := f.svc.History(ctx, 7)
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, "2025-01-14", history[0].Date)
	assert.Equal(t, attendance.StatusHalfDay, history[0].Status)
	assert.Nil(t, history[0].WorkedHours)

	assert.Equal(t, "2025-01-13", history[1].Date)
	assert.Equal(t, attendance.StatusLate, history[1].Status)
	require.NotNil(t, history[1].WorkedHours)
	assert.Equal(t, "8h 15m", *history[1].WorkedHours)
	require.NotNil(t, history[1].CheckInImage)
	assert.Contains(t, *history[1].CheckInImage, "http://localhost:8080/uploads/checkin/")
}

func TestCalendar_ClassifiesEveryDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.clock.Set(time.Date(2025, time.January, 2, 9, 10, 0, 0, f.loc))
	_, err := f.svc.CheckIn(ctx, presence(t, 7))
	require.NoError(t, err)
	f.clock.Set(time.Date(2025, time.January, 2, 17, 0, 0, 0, f.loc))
	_, err = f.svc.CheckOut(ctx, presence(t, 7))
	require.NoError(t, err)

	f.clock.Set(time.Date(2025, time.January, 3, 10, 0, 0, 0, f.loc))
	_, err = f.svc.CheckIn(ctx, presence(t, 7))
	require.NoError(t, err)

	f.clock.Set(time.Date(2025, time.January, 20, 8, 0, 0, 0, f.loc))
	cal, err := f.svc.Calendar(ctx, attendance.CalendarRequest{EmployeeID: 7, Month: "2025-01"})
	require.NoError(t, err)

	require.Len(t, cal.Days, 31)
	assert.Equal(t, attendance.StatusAbsent, cal.Days[0].Status)
	assert.Equal(t, attendance.StatusPresent, cal.Days[1].Status)
	require.NotNil(t, cal.Days[1].WorkedHours)
	assert.Equal(t, "7h 50m", *cal.Days[1].WorkedHours)
	assert.Equal(t, attendance.StatusHalfDay, cal.Days[2].Status)
	assert.Equal(t, attendance.StatusNoRecord, cal.Days[19].Status, "today without a record")
	assert.Equal(t, attendance.StatusNoRecord, cal.Days[30].Status)
	require.NotNil(t, cal.Days[25].Holiday)
	assert.Equal(t, "Republic Day", *cal.Days[25].Holiday)
	assert.Equal(t, "Sunday", cal.Days[25].Weekday)

	assert.Equal(t, 1, cal.Summary.Present)
	assert.Equal(t, 1, cal.Summary.HalfDay)
	assert.Equal(t, 0, cal.Summary.Late)
	assert.Equal(t, 17, cal.Summary.Absent)
}

func TestCalendar_RejectsBadMonth(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Calendar(context.Background(), attendance.CalendarRequest{EmployeeID: 7, Month: "January"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestTodayLog_OnlyToday(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.clock.Set(time.Date(2025, time.January, 14, 9, 0, 0, 0, f.loc))
	_, err := f.svc.CheckIn(ctx, presence(t, 1))
	require.NoError(t, err)

	f.clock.Set(time.Date(2025, time.January, 15, 9, 0, 0, 0, f.loc))
	_, err = f.svc.CheckIn(ctx, presence(t, 2))
	require.NoError(t, err)

	log, err := f.svc.TodayLog(ctx)
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, int64(2), log[0].EmployeeID)
}

func TestList_Paginates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for id := int64(1); id <= 3; id++ {
		_, err := f.svc.CheckIn(ctx, presence(t, id))
		require.NoError(t, err)
	}

	resp, err := f.svc.List(ctx, attendance.ListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.TotalCount)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Equal(t, 1, resp.Page)
}
