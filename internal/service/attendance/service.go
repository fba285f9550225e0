package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/drivedesk/payroll-backend-go/internal/domain/attendance"
)

type AttendanceService interface {
	// Mark upserts the attendance record for (staff, day); marking the same
	// day twice replaces the earlier values.
	Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error)

	// List returns records matching the filter.
	List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error)
}

type attendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) AttendanceService {
	return &attendanceServiceImpl{attendanceRepo: attendanceRepo}
}

func (s *attendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	day := time.Now().UTC()
	if req.Date != "" {
		// Validate() already checked the format.
		day, _ = time.Parse("2006-01-02", req.Date)
	}
	day = day.Truncate(24 * time.Hour)

	minutes, parsed := attendance.ParseWorkHours(req.WorkHours)
	if !parsed && req.WorkHours != "" {
		// Stored as zero minutes: an unknown duration never earns overtime,
		// and the payroll calculator leaves the marked status untouched.
		slog.Warn("unparseable work hours on attendance mark",
			slog.String("staff_id", req.StaffID),
			slog.String("work_hours", req.WorkHours),
		)
	}

	record := attendance.AttendanceRecord{
		StaffID:     req.StaffID,
		Date:        day,
		InTime:      req.InTime,
		OutTime:     req.OutTime,
		WorkHours:   req.WorkHours,
		WorkMinutes: minutes,
		Status:      req.Status,
	}

	stored, err := s.attendanceRepo.Upsert(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(stored), nil
}

func (s *attendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}
	return responses, nil
}
