package dto

// RegisterStudentRequest carries the raw form fields of an admin student
// registration.
type RegisterStudentRequest struct {
	StudentID string `json:"student_id" validate:"required,student_id"`
	Name      string `json:"name" validate:"required,person_name"`
	Age       string `json:"age" validate:"required,student_age"`
	ClassName string `json:"class_name" validate:"required,class_name"`
	Password  string `json:"password" validate:"required"`
}

// RegisterTeacherRequest carries the raw form fields of an admin teacher
// registration.
type RegisterTeacherRequest struct {
	TeacherID string `json:"teacher_id" validate:"required,teacher_id"`
	Name      string `json:"name" validate:"required,person_name"`
	Password  string `json:"password" validate:"required"`
}
