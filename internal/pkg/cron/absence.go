package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/client"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timerecord"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/email"
)

// AttendanceJobs notifies employees who missed a designated workday.
type AttendanceJobs struct {
	clientRepo      client.ClientRepository
	employeeRepo    employee.EmployeeRepository
	punchRepo       timerecord.PunchRepository
	emailSvc        email.EmailService
	defaultWorkdays []time.Weekday
}

func NewAttendanceJobs(
	clientRepo client.ClientRepository,
	employeeRepo employee.EmployeeRepository,
	punchRepo timerecord.PunchRepository,
	emailSvc email.EmailService,
	defaultWorkdays []time.Weekday,
) *AttendanceJobs {
	return &AttendanceJobs{
		clientRepo:      clientRepo,
		employeeRepo:    employeeRepo,
		punchRepo:       punchRepo,
		emailSvc:        emailSvc,
		defaultWorkdays: defaultWorkdays,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("notify_absent_employees", 1*time.Hour, j.NotifyAbsentEmployees)
}

// NotifyAbsentEmployees checks the previous day's punches per client.
// Each active employee with no punch on a designated workday gets an
// absence notice, and the client company gets one summary listing its
// absent employees. Runs hourly but only acts in the first hour after
// midnight UTC.
func (j *AttendanceJobs) NotifyAbsentEmployees(ctx context.Context) error {
	now := time.Now().UTC()
	if now.Hour() != 0 {
		return nil
	}

	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	return j.notifyAbsencesFor(ctx, yesterday)
}

// notifyAbsencesFor runs the absence check for a single day, given as
// midnight UTC.
func (j *AttendanceJobs) notifyAbsencesFor(ctx context.Context, dayStart time.Time) error {
	dayEnd := dayStart.AddDate(0, 0, 1)
	date := dayStart.Format("02/01/2006")

	clients, err := j.clientRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list clients: %w", err)
	}

	var notified int
	for _, c := range clients {
		if c.Status != "active" {
			continue
		}

		employees, err := j.employeeRepo.ListByClient(ctx, c.ID)
		if err != nil {
			slog.Error("Cron: failed to list employees", "client_id", c.ID, "error", err)
			continue
		}

		var absentNames []string
		for _, emp := range employees {
			if emp.Status != "active" {
				continue
			}
			if !j.isWorkday(emp, dayStart) {
				continue
			}

			punches, err := j.punchRepo.ListByEmployee(ctx, emp.ID, dayStart, dayEnd)
			if err != nil {
				slog.Error("Cron: failed to list punches", "employee_id", emp.ID, "error", err)
				continue
			}
			if len(punches) > 0 {
				continue
			}

			if err := j.emailSvc.SendAbsenceNotice(emp.Email, emp.Name, c.CompanyName, date); err != nil {
				slog.Error("Cron: failed to send absence notice", "employee_id", emp.ID, "error", err)
				continue
			}
			absentNames = append(absentNames, emp.Name)
			notified++
		}

		if len(absentNames) > 0 {
			if err := j.emailSvc.SendAbsenceSummary(c.Email, c.CompanyName, date, absentNames); err != nil {
				slog.Error("Cron: failed to send absence summary", "client_id", c.ID, "error", err)
			}
		}
	}

	if notified > 0 {
		slog.Info("Cron: absence notices sent", "count", notified, "date", dayStart.Format("2006-01-02"))
	}
	return nil
}

func (j *AttendanceJobs) isWorkday(emp employee.Employee, day time.Time) bool {
	if len(emp.Workdays) > 0 {
		return emp.IsWorkday(day)
	}
	for _, wd := range j.defaultWorkdays {
		if day.Weekday() == wd {
			return true
		}
	}
	return false
}
