package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/kjschool/attendance/internal/dto"
)

func (a *App) renderAttendance(records []dto.AttendanceResponse) {
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No attendance records")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tClass\tTime\tStatus")
	for _, record := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			record.StudentID, record.Name, record.ClassName,
			record.LoginTime.Format("2006-01-02 15:04:05"), record.Status)
	}
	_ = w.Flush()
}

func (a *App) renderStudents(students []dto.StudentResponse) {
	if len(students) == 0 {
		fmt.Fprintln(a.out, "No registered students")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tAge\tClass\tLast Login")
	for _, student := range students {
		lastLogin := "never"
		if student.LastLogin != nil {
			lastLogin = student.LastLogin.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			student.StudentID, student.Name, student.Age, student.ClassName, lastLogin)
	}
	_ = w.Flush()
}
