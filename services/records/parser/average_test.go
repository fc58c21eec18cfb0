package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func avg(v float64) *float64 { return &v }

func TestCalculateAverage(t *testing.T) {
	cases := []struct {
		name   string
		tokens []string
		want   *float64
	}{
		{"exact", []string{"8", "9", "9", "9"}, avg(8.75)},
		{"comma decimal with placeholder", []string{"9,5", "8", "x"}, avg(8.75)},
		{"truncated not rounded", []string{"9", "8", "9,5"}, avg(8.83)},
		{"decimal comma", []string{"9,5"}, avg(9.5)},
		{"non numeric dropped", []string{"a", "n", "9"}, avg(9)},
		{"no numeric tokens", []string{"a", "n"}, nil},
		{"empty", nil, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CalculateAverage(c.tokens)
			if c.want == nil {
				require.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.InDelta(t, *c.want, *got, 1e-9)
		})
	}
}

func TestTruncate2(t *testing.T) {
	require.Equal(t, 8.75, truncate2(8.755))
	require.Equal(t, 8.75, truncate2(8.759))
	// 8*0.6 + 10*0.4 is 8.799999... in floats but 8.8 on paper
	require.Equal(t, 8.8, truncate2(8*0.6+10*0.4))
}

func TestFormatAverage(t *testing.T) {
	require.Equal(t, "-", FormatAverage(nil))
	require.Equal(t, "8.80", FormatAverage(avg(8.8)))
}

func subjectWithAverage(name string, average float64) GradeSubject {
	return GradeSubject{
		Name:           name,
		Average:        &average,
		AverageDisplay: FormatAverage(&average),
	}
}

func TestApplyExamGradesTeza(t *testing.T) {
	semesters := []SemesterGrades{{
		Semester: 1,
		Subjects: []GradeSubject{subjectWithAverage("Matematica", 8)},
	}}
	exams := []Exam{{Subject: "Matematica", Type: "Teza", Grade: "10", Semester: 1}}

	ApplyExamGradesToAverages(semesters, exams, StudentInfo{StudyYear: 1})
	require.Equal(t, "9.00", semesters[0].Subjects[0].AverageDisplay)
}

func TestApplyExamGradesExamen(t *testing.T) {
	semesters := []SemesterGrades{{
		Semester: 2,
		Subjects: []GradeSubject{subjectWithAverage("Fizica", 8)},
	}}
	exams := []Exam{{Subject: "Fizica", Type: "Examen", Grade: "10", Semester: 2}}

	ApplyExamGradesToAverages(semesters, exams, StudentInfo{StudyYear: 1})
	require.Equal(t, "8.80", semesters[0].Subjects[0].AverageDisplay)
}

func TestApplyExamGradesIgnoresOtherTypes(t *testing.T) {
	semesters := []SemesterGrades{{
		Semester: 1,
		Subjects: []GradeSubject{subjectWithAverage("Chimia", 7.5)},
	}}
	exams := []Exam{{Subject: "Chimia", Type: "Practică", Grade: "10", Semester: 1}}

	ApplyExamGradesToAverages(semesters, exams, StudentInfo{StudyYear: 1})
	require.Equal(t, "7.50", semesters[0].Subjects[0].AverageDisplay)
}

func TestApplyExamGradesSkipsUpcoming(t *testing.T) {
	semesters := []SemesterGrades{{
		Semester: 1,
		Subjects: []GradeSubject{subjectWithAverage("Istoria", 9)},
	}}
	exams := []Exam{{Subject: "Istoria", Type: "Examen", Grade: "TBD", Semester: 1, Upcoming: true}}

	ApplyExamGradesToAverages(semesters, exams, StudentInfo{StudyYear: 1})
	require.Equal(t, "9.00", semesters[0].Subjects[0].AverageDisplay)
}

func TestApplyExamGradesOutsideCurrentYear(t *testing.T) {
	// a second-year student's window covers semesters 3-4 only
	semesters := []SemesterGrades{
		{Semester: 1, Subjects: []GradeSubject{subjectWithAverage("Matematica", 8)}},
		{Semester: 3, Subjects: []GradeSubject{subjectWithAverage("Matematica", 8)}},
	}
	exams := []Exam{
		{Subject: "Matematica", Type: "Teza", Grade: "10", Semester: 1},
		{Subject: "Matematica", Type: "Teza", Grade: "10", Semester: 3},
	}

	ApplyExamGradesToAverages(semesters, exams, StudentInfo{StudyYear: 2})
	require.Equal(t, "8.00", semesters[0].Subjects[0].AverageDisplay)
	require.Equal(t, "9.00", semesters[1].Subjects[0].AverageDisplay)
}

func TestApplyExamGradesUnknownYearDefaultsToFirst(t *testing.T) {
	semesters := []SemesterGrades{{
		Semester: 2,
		Subjects: []GradeSubject{subjectWithAverage("Biologia", 6)},
	}}
	exams := []Exam{{Subject: "Biologia", Type: "Teza", Grade: "8", Semester: 2}}

	ApplyExamGradesToAverages(semesters, exams, StudentInfo{})
	require.Equal(t, "7.00", semesters[0].Subjects[0].AverageDisplay)
}

func TestMatchExamFirstInDocumentOrderWins(t *testing.T) {
	exams := []Exam{
		{Subject: "Limba", Type: "Teza", Grade: "7", Semester: 1},
		{Subject: "Limba română", Type: "Teza", Grade: "10", Semester: 1},
	}
	matched := matchExam("Limba română", 1, exams)
	require.NotNil(t, matched)
	require.Equal(t, "7", matched.Grade)
}

func TestEnsureBothSemestersExist(t *testing.T) {
	out := EnsureBothSemestersExist([]SemesterGrades{{
		Semester: 2,
		Subjects: []GradeSubject{subjectWithAverage("Matematica", 8)},
	}})

	require.Len(t, out, 2)
	require.Equal(t, 1, out[0].Semester)
	require.Contains(t, out[0].Subjects[0].Name, "No subjects available for Semester 1")
	require.Equal(t, 2, out[1].Semester)
	require.Equal(t, "Matematica", out[1].Subjects[0].Name)
}

func TestEnsureBothSemestersExistDropsDuplicates(t *testing.T) {
	out := EnsureBothSemestersExist([]SemesterGrades{
		{Semester: 1, Subjects: []GradeSubject{subjectWithAverage("a", 5)}},
		{Semester: 1, Subjects: []GradeSubject{subjectWithAverage("b", 6)}},
		{Semester: 4},
	})

	require.Len(t, out, 3)
	require.Equal(t, []int{1, 2, 4}, []int{out[0].Semester, out[1].Semester, out[2].Semester})
	require.Equal(t, "a", out[0].Subjects[0].Name)
}

func TestRomanOrdinal(t *testing.T) {
	require.Equal(t, 3, RomanOrdinal("III"))
	require.Equal(t, 8, RomanOrdinal(" viii "))
	require.Equal(t, 0, RomanOrdinal("IX"))
	require.Equal(t, 0, RomanOrdinal("Failed to parse"))
}
