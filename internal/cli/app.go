package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kjschool/attendance/internal/config"
	"github.com/kjschool/attendance/internal/dto"
	"github.com/kjschool/attendance/internal/service"
	"github.com/kjschool/attendance/internal/validation"
)

// App is the interactive terminal front end. It collects raw field values,
// hands them to the services and renders whatever comes back; no business
// rules live here.
type App struct {
	cfg        config.Config
	auth       service.AuthService
	admin      service.AdminService
	attendance service.AttendanceService
	logger     zerolog.Logger

	in    io.Reader
	out   io.Writer
	lines chan string
}

// New constructs the terminal app reading from in and writing to out.
func New(
	cfg config.Config,
	auth service.AuthService,
	admin service.AdminService,
	attendance service.AttendanceService,
	logger zerolog.Logger,
	in io.Reader,
	out io.Writer,
) *App {
	return &App{
		cfg:        cfg,
		auth:       auth,
		admin:      admin,
		attendance: attendance,
		logger:     logger.With().Str("component", "cli").Logger(),
		in:         in,
		out:        out,
	}
}

// Run drives the main menu until the user quits, input ends or ctx is
// cancelled. Input is read on a separate goroutine so cancellation takes
// effect even while a prompt is waiting for a line.
func (a *App) Run(ctx context.Context) error {
	a.lines = make(chan string)
	go func() {
		defer close(a.lines)
		scanner := bufio.NewScanner(a.in)
		for scanner.Scan() {
			select {
			case a.lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	fmt.Fprintf(a.out, "\n%s\nAuthentication System\n", a.cfg.SchoolName)

	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprint(a.out, "\n[1] Student login\n[2] Teacher login\n[3] Admin login\n[4] View today's attendance\n[q] Quit\n")
		choice, ok := a.prompt(ctx, "Select option")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			a.studentLoginForm(ctx)
		case "2":
			a.teacherLoginForm(ctx)
		case "3":
			a.adminLoginForm(ctx)
		case "4":
			a.showAttendance(ctx, time.Now())
		case "q", "Q":
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown option")
		}
	}
}

func (a *App) studentLoginForm(ctx context.Context) {
	req := dto.StudentLoginRequest{}
	var ok bool
	if req.StudentID, ok = a.prompt(ctx, "Student ID (KJYYYYXXXX)"); !ok {
		return
	}
	if req.Name, ok = a.prompt(ctx, "Name"); !ok {
		return
	}
	if req.Age, ok = a.prompt(ctx, fmt.Sprintf("Age (%d-%d)", a.cfg.MinAge, a.cfg.MaxAge)); !ok {
		return
	}
	if req.ClassName, ok = a.prompt(ctx, "Class ("+strings.Join(validation.ClassNames(), " ")+")"); !ok {
		return
	}
	if req.Password, ok = a.prompt(ctx, "Password"); !ok {
		return
	}

	if _, err := a.auth.StudentLogin(ctx, req); err != nil {
		a.renderError(err)
		return
	}

	fmt.Fprintln(a.out, "Login successful! Attendance recorded.")
}

func (a *App) teacherLoginForm(ctx context.Context) {
	req := dto.TeacherLoginRequest{}
	var ok bool
	if req.TeacherID, ok = a.prompt(ctx, "Teacher ID (TJYYYYXXXX)"); !ok {
		return
	}
	if req.Name, ok = a.prompt(ctx, "Name"); !ok {
		return
	}
	if req.Password, ok = a.prompt(ctx, "Password"); !ok {
		return
	}

	teacher, err := a.auth.TeacherLogin(ctx, req)
	if err != nil {
		a.renderError(err)
		return
	}

	fmt.Fprintf(a.out, "Welcome, %s\n", teacher.Name)
	a.teacherMenu(ctx)
}

func (a *App) adminLoginForm(ctx context.Context) {
	password, ok := a.prompt(ctx, "Admin password")
	if !ok {
		return
	}

	if err := a.auth.AdminLogin(password); err != nil {
		a.renderError(err)
		return
	}

	fmt.Fprintln(a.out, "Admin login successful!")
	a.adminMenu(ctx)
}

func (a *App) teacherMenu(ctx context.Context) {
	for {
		fmt.Fprint(a.out, "\n[1] View today's attendance\n[2] View attendance history\n[3] Manage students\n[b] Back\n")
		choice, ok := a.prompt(ctx, "Select option")
		if !ok {
			return
		}

		switch choice {
		case "1":
			a.showAttendance(ctx, time.Now())
		case "2":
			a.attendanceHistoryForm(ctx)
		case "3":
			a.manageStudents(ctx)
		case "b", "B":
			return
		default:
			fmt.Fprintln(a.out, "Unknown option")
		}
	}
}

func (a *App) adminMenu(ctx context.Context) {
	for {
		fmt.Fprint(a.out, "\n[1] Register student\n[2] Register teacher\n[b] Back\n")
		choice, ok := a.prompt(ctx, "Select option")
		if !ok {
			return
		}

		switch choice {
		case "1":
			a.registerStudentForm(ctx)
		case "2":
			a.registerTeacherForm(ctx)
		case "b", "B":
			return
		default:
			fmt.Fprintln(a.out, "Unknown option")
		}
	}
}

func (a *App) attendanceHistoryForm(ctx context.Context) {
	raw, ok := a.prompt(ctx, "Date (YYYY-MM-DD, empty for today)")
	if !ok {
		return
	}

	day := time.Now()
	if raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			fmt.Fprintln(a.out, "Invalid date, expected YYYY-MM-DD")
			return
		}
		day = parsed
	}

	a.showAttendance(ctx, day)
}

func (a *App) manageStudents(ctx context.Context) {
	students, err := a.admin.ListStudents(ctx)
	if err != nil {
		a.renderError(err)
		return
	}

	a.renderStudents(students)
	if len(students) == 0 {
		return
	}

	id, ok := a.prompt(ctx, "Student ID to delete (empty to cancel)")
	if !ok || id == "" {
		return
	}

	confirm, ok := a.prompt(ctx, fmt.Sprintf("Delete student %s? (y/N)", id))
	if !ok || !strings.EqualFold(confirm, "y") {
		return
	}

	if err := a.admin.DeleteStudent(ctx, id); err != nil {
		a.renderError(err)
		return
	}

	fmt.Fprintln(a.out, "Student deleted")
}

func (a *App) registerStudentForm(ctx context.Context) {
	req := dto.RegisterStudentRequest{}
	var ok bool
	if req.StudentID, ok = a.prompt(ctx, "Student ID (KJYYYYXXXX)"); !ok {
		return
	}
	if req.Name, ok = a.prompt(ctx, "Name"); !ok {
		return
	}
	if req.Age, ok = a.prompt(ctx, fmt.Sprintf("Age (%d-%d)", a.cfg.MinAge, a.cfg.MaxAge)); !ok {
		return
	}
	if req.ClassName, ok = a.prompt(ctx, "Class ("+strings.Join(validation.ClassNames(), " ")+")"); !ok {
		return
	}
	if req.Password, ok = a.prompt(ctx, "Password"); !ok {
		return
	}

	if _, err := a.admin.RegisterStudent(ctx, req); err != nil {
		a.renderError(err)
		return
	}

	fmt.Fprintln(a.out, "Student registered successfully")
}

func (a *App) registerTeacherForm(ctx context.Context) {
	req := dto.RegisterTeacherRequest{}
	var ok bool
	if req.TeacherID, ok = a.prompt(ctx, "Teacher ID (TJYYYYXXXX)"); !ok {
		return
	}
	if req.Name, ok = a.prompt(ctx, "Name"); !ok {
		return
	}
	if req.Password, ok = a.prompt(ctx, "Password"); !ok {
		return
	}

	if _, err := a.admin.RegisterTeacher(ctx, req); err != nil {
		a.renderError(err)
		return
	}

	fmt.Fprintln(a.out, "Teacher registered successfully")
}

func (a *App) showAttendance(ctx context.Context, day time.Time) {
	records, err := a.attendance.ForDate(ctx, day)
	if err != nil {
		a.renderError(err)
		return
	}

	fmt.Fprintf(a.out, "\nAttendance for %s\n", day.Format("2006-01-02"))
	a.renderAttendance(records)
}

// prompt reads one trimmed line. ok is false when input is exhausted or ctx
// is cancelled.
func (a *App) prompt(ctx context.Context, label string) (string, bool) {
	fmt.Fprintf(a.out, "%s: ", label)
	select {
	case line, open := <-a.lines:
		if !open {
			return "", false
		}
		return strings.TrimSpace(line), true
	case <-ctx.Done():
		return "", false
	}
}

func (a *App) renderError(err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		fmt.Fprintln(a.out, "Invalid credentials")
	case errors.Is(err, service.ErrDuplicateID):
		fmt.Fprintln(a.out, "ID already exists")
	case errors.Is(err, service.ErrStudentNotFound):
		fmt.Fprintln(a.out, "Student not found")
	case validation.IsValidationError(err):
		for _, reason := range validation.Explain(err) {
			fmt.Fprintln(a.out, "Error:", reason)
		}
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
}
