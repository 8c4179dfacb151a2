package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidStudentID(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"KJ20240001", true},
		{"KJ00000000", true},
		{"KJ2024001", false},
		{"KJ202400011", false},
		{"kj20240001", false},
		{"TJ20240001", false},
		{"KJ2024000a", false},
		{" KJ20240001", false},
		{"", false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, ValidStudentID(tc.input), "input %q", tc.input)
	}
}

func TestValidTeacherID(t *testing.T) {
	require.True(t, ValidTeacherID("TJ20240001"))
	require.False(t, ValidTeacherID("KJ20240001"))
	require.False(t, ValidTeacherID("TJ2024001"))
	require.False(t, ValidTeacherID("tj20240001"))
}

func TestValidName(t *testing.T) {
	require.True(t, ValidName("Ada Lovelace"))
	require.True(t, ValidName("  Grace  "))
	require.False(t, ValidName("R2D2"))
	require.False(t, ValidName("O'Brien"))
	require.False(t, ValidName(""))
	require.False(t, ValidName("   "))
}

func TestValidAgeBounds(t *testing.T) {
	require.False(t, ValidAge("10", DefaultMinAge, DefaultMaxAge))
	require.True(t, ValidAge("11", DefaultMinAge, DefaultMaxAge))
	require.True(t, ValidAge("18", DefaultMinAge, DefaultMaxAge))
	require.False(t, ValidAge("19", DefaultMinAge, DefaultMaxAge))
	require.False(t, ValidAge("twelve", DefaultMinAge, DefaultMaxAge))
	require.False(t, ValidAge("", DefaultMinAge, DefaultMaxAge))
	require.True(t, ValidAge(" 14 ", DefaultMinAge, DefaultMaxAge))
}

func TestValidClass(t *testing.T) {
	for _, name := range ClassNames() {
		require.True(t, ValidClass(name), "class %q", name)
	}
	require.Len(t, ClassNames(), 18)
	require.False(t, ValidClass("13B"))
	require.False(t, ValidClass("6A"))
	require.False(t, ValidClass("7a"))
	require.False(t, ValidClass(""))
}

func TestNewRegistersDomainTags(t *testing.T) {
	validate := New(DefaultMinAge, DefaultMaxAge)

	type form struct {
		StudentID string `validate:"required,student_id"`
		Name      string `validate:"required,person_name"`
		Age       string `validate:"required,student_age"`
		ClassName string `validate:"required,class_name"`
	}

	ok := form{StudentID: "KJ20240001", Name: "Ada Lovelace", Age: "12", ClassName: "7A"}
	require.NoError(t, validate.Struct(ok))

	bad := form{StudentID: "KJ123", Name: "Ada!", Age: "9", ClassName: "6Z"}
	err := validate.Struct(bad)
	require.Error(t, err)
	require.True(t, IsValidationError(err))
	require.Len(t, Explain(err), 4)
}

func TestExplainNonValidationError(t *testing.T) {
	reasons := Explain(nil)
	require.Equal(t, []string{"invalid input"}, reasons)
}
