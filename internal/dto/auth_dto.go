package dto

import (
	"time"

	"github.com/kjschool/attendance/internal/models"
)

// StudentLoginRequest carries the raw form fields of a student login. All
// five fields must match the stored record exactly.
type StudentLoginRequest struct {
	StudentID string `json:"student_id" validate:"required,student_id"`
	Name      string `json:"name" validate:"required,person_name"`
	Age       string `json:"age" validate:"required,student_age"`
	ClassName string `json:"class_name" validate:"required,class_name"`
	Password  string `json:"password" validate:"required"`
}

// TeacherLoginRequest carries the raw form fields of a teacher login.
type TeacherLoginRequest struct {
	TeacherID string `json:"teacher_id" validate:"required,teacher_id"`
	Name      string `json:"name" validate:"required,person_name"`
	Password  string `json:"password" validate:"required"`
}

// StudentResponse serializes a student for the presentation layer.
type StudentResponse struct {
	StudentID string     `json:"student_id"`
	Name      string     `json:"name"`
	Age       int        `json:"age"`
	ClassName string     `json:"class_name"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// TeacherResponse serializes a teacher for the presentation layer.
type TeacherResponse struct {
	TeacherID string    `json:"teacher_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewStudentResponse converts a student model into a DTO.
func NewStudentResponse(student models.Student) StudentResponse {
	return StudentResponse{
		StudentID: student.StudentID,
		Name:      student.Name,
		Age:       student.Age,
		ClassName: student.ClassName,
		CreatedAt: student.CreatedAt,
		LastLogin: student.LastLogin,
	}
}

// NewTeacherResponse converts a teacher model into a DTO.
func NewTeacherResponse(teacher models.Teacher) TeacherResponse {
	return TeacherResponse{
		TeacherID: teacher.TeacherID,
		Name:      teacher.Name,
		CreatedAt: teacher.CreatedAt,
	}
}
