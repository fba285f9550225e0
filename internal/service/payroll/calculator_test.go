package payroll

import (
	"testing"
	"time"

	"github.com/drivedesk/payroll-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// September 2025 has 30 days, which keeps the per-day arithmetic round.
const (
	testYear  = 2025
	testMonth = time.September
)

func record(day int, status string, workMinutes int) attendance.AttendanceRecord {
	return attendance.AttendanceRecord{
		StaffID:     "staff-1",
		Date:        time.Date(testYear, testMonth, day, 0, 0, 0, 0, time.UTC),
		WorkMinutes: workMinutes,
		Status:      status,
	}
}

func TestCompute_NoRecordsEveryDayAbsent(t *testing.T) {
	base := decimal.NewFromInt(30000)

	stmt := Compute(base, nil, testMonth, testYear)

	assert.Equal(t, 30, stmt.DaysInMonth)
	assert.Equal(t, 30, stmt.AbsentDays)
	assert.Equal(t, 0, stmt.PresentDays)
	assert.Equal(t, 0, stmt.HalfDays)
	assert.True(t, stmt.NetPayable.IsZero(), "all days absent should zero out the payable, got %s", stmt.NetPayable)
}

func TestCompute_EndToEndExample(t *testing.T) {
	base := decimal.NewFromInt(30000)

	// 24 full days, one day with 30 minutes of overtime, two short days,
	// three days unrecorded.
	var records []attendance.AttendanceRecord
	for day := 1; day <= 24; day++ {
		records = append(records, record(day, attendance.StatusPresent, 540))
	}
	records = append(records, record(25, attendance.StatusPresent, 570))
	records = append(records, record(26, attendance.StatusPresent, 200))
	records = append(records, record(27, attendance.StatusPresent, 200))

	stmt := Compute(base, records, testMonth, testYear)

	assert.Equal(t, 30, stmt.DaysInMonth)
	assert.Equal(t, 25, stmt.PresentDays)
	assert.Equal(t, 2, stmt.HalfDays)
	assert.Equal(t, 3, stmt.AbsentDays)
	assert.Equal(t, 30, stmt.TotalExtraMinutes)

	assert.True(t, stmt.PerDaySalary.Equal(decimal.NewFromInt(1000)), "per-day salary: %s", stmt.PerDaySalary)
	assert.True(t, stmt.HalfDaySalary.Equal(decimal.NewFromInt(500)), "half-day salary: %s", stmt.HalfDaySalary)
	assert.True(t, stmt.AbsentDeduction.Equal(decimal.NewFromInt(3000)), "absent deduction: %s", stmt.AbsentDeduction)
	assert.True(t, stmt.HalfDayDeduction.Equal(decimal.NewFromInt(1000)), "half-day deduction: %s", stmt.HalfDayDeduction)

	extra, _ := stmt.ExtraWorkAmount.Float64()
	assert.InDelta(t, 55.56, extra, 0.01)

	net, _ := stmt.NetPayable.Float64()
	assert.InDelta(t, 26055.56, net, 0.01)
}

func TestCompute_NetPayableIdentity(t *testing.T) {
	base := decimal.NewFromFloat(41275.50)

	records := []attendance.AttendanceRecord{
		record(1, attendance.StatusPresent, 600),
		record(2, attendance.StatusLate, 480),
		record(3, attendance.StatusPresent, 100),
		record(4, attendance.StatusAbsent, 0),
	}

	stmt := Compute(base, records, testMonth, testYear)

	want := base.Sub(stmt.AbsentDeduction).Sub(stmt.HalfDayDeduction).Add(stmt.ExtraWorkAmount)
	assert.True(t, stmt.NetPayable.Equal(want), "net payable %s != identity %s", stmt.NetPayable, want)
}

func TestCompute_OvertimeThreshold(t *testing.T) {
	base := decimal.NewFromInt(27000) // 900/day, 100/hour

	over := Compute(base, []attendance.AttendanceRecord{record(1, attendance.StatusPresent, 541)}, testMonth, testYear)
	require.Equal(t, 1, over.PresentDays)
	assert.Equal(t, 1, over.TotalExtraMinutes)
	assert.True(t, over.ExtraWorkAmount.IsPositive(), "one minute past nine hours should pay overtime")

	exact := Compute(base, []attendance.AttendanceRecord{record(1, attendance.StatusPresent, 540)}, testMonth, testYear)
	require.Equal(t, 1, exact.PresentDays)
	assert.Equal(t, 0, exact.TotalExtraMinutes)
	assert.True(t, exact.ExtraWorkAmount.IsZero(), "exactly nine hours pays no overtime")
}

func TestCompute_HalfDayThreshold(t *testing.T) {
	base := decimal.NewFromInt(30000)

	short := Compute(base, []attendance.AttendanceRecord{record(1, attendance.StatusPresent, 269)}, testMonth, testYear)
	assert.Equal(t, 1, short.HalfDays)
	assert.Equal(t, 0, short.PresentDays)

	full := Compute(base, []attendance.AttendanceRecord{record(1, attendance.StatusPresent, 270)}, testMonth, testYear)
	assert.Equal(t, 0, full.HalfDays)
	assert.Equal(t, 1, full.PresentDays)
}

func TestCompute_AbsentStatusNeverReclassified(t *testing.T) {
	base := decimal.NewFromInt(30000)

	// A long duration on a day marked absent stays absent and earns nothing.
	stmt := Compute(base, []attendance.AttendanceRecord{record(1, attendance.StatusAbsent, 600)}, testMonth, testYear)

	assert.Equal(t, 30, stmt.AbsentDays)
	assert.Equal(t, 0, stmt.PresentDays)
	assert.True(t, stmt.ExtraWorkAmount.IsZero())
}

func TestCompute_ZeroDurationKeepsStoredStatus(t *testing.T) {
	base := decimal.NewFromInt(30000)

	// Unknown duration: the late mark survives and still counts as present.
	stmt := Compute(base, []attendance.AttendanceRecord{record(1, attendance.StatusLate, 0)}, testMonth, testYear)

	assert.Equal(t, 1, stmt.PresentDays)
	assert.True(t, stmt.ExtraWorkAmount.IsZero())
}

func TestCompute_LateWithLongDayEarnsOvertime(t *testing.T) {
	base := decimal.NewFromInt(30000)

	stmt := Compute(base, []attendance.AttendanceRecord{record(1, attendance.StatusLate, 600)}, testMonth, testYear)

	assert.Equal(t, 1, stmt.PresentDays)
	assert.Equal(t, 60, stmt.TotalExtraMinutes)
	assert.True(t, stmt.ExtraWorkAmount.IsPositive())
}

func TestCompute_Deterministic(t *testing.T) {
	base := decimal.NewFromFloat(33333.33)

	records := []attendance.AttendanceRecord{
		record(1, attendance.StatusPresent, 555),
		record(2, attendance.StatusLate, 200),
		record(3, attendance.StatusPresent, 0),
	}

	first := Compute(base, records, testMonth, testYear)
	second := Compute(base, records, testMonth, testYear)

	assert.Equal(t, first, second)
}

func TestCompute_RecordsOutsideMonthIgnored(t *testing.T) {
	base := decimal.NewFromInt(30000)

	other := attendance.AttendanceRecord{
		StaffID:     "staff-1",
		Date:        time.Date(testYear, time.August, 5, 0, 0, 0, 0, time.UTC),
		WorkMinutes: 540,
		Status:      attendance.StatusPresent,
	}

	stmt := Compute(base, []attendance.AttendanceRecord{other}, testMonth, testYear)

	assert.Equal(t, 30, stmt.AbsentDays)
}
