package parser

import (
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func loadRecordFixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("testdata/record.html")
	require.NoError(t, err)
	return string(data)
}

func TestParseStudentInfo(t *testing.T) {
	grades := ParseStudentGradesData(loadRecordFixture(t))

	want := StudentInfo{
		Surname:        "Ceban",
		Name:           "Ion",
		Patronymic:     "Vasile",
		StudyYearLabel: "II",
		StudyYear:      2,
		Group:          "P-2142",
		Specialization: "Programare și analiza produselor program",
		Curator:        "Rusu Maria",
		DepartmentHead: "Lungu Ana",
		Status:         "activ",
	}
	require.Empty(t, cmp.Diff(want, grades.Info))
}

func TestParseCurrentGrades(t *testing.T) {
	grades := ParseStudentGradesData(loadRecordFixture(t))

	// a second-year student's record carries semesters 3 and 4, the
	// first-year pair gets synthesized as placeholders
	require.Len(t, grades.CurrentGrades, 4)
	for i, sem := range grades.CurrentGrades {
		require.Equal(t, i+1, sem.Semester)
	}

	for _, placeholder := range grades.CurrentGrades[:2] {
		require.Len(t, placeholder.Subjects, 1)
		require.Contains(t, placeholder.Subjects[0].Name, "No subjects available")
		require.Nil(t, placeholder.Subjects[0].Average)
		require.Equal(t, "-", placeholder.Subjects[0].AverageDisplay)
	}

	third := grades.CurrentGrades[2]
	require.Len(t, third.Subjects, 3)

	math := third.Subjects[0]
	require.Equal(t, "Matematica", math.Name)
	require.Equal(t, []string{"9", "8", "9,5"}, math.Grades)
	// base average 8.83, then the semester's teza grade 10 reweights
	// it to (8.83+10)/2 truncated
	require.Equal(t, "9.41", math.AverageDisplay)

	programming := third.Subjects[1]
	require.Equal(t, "Programare orientată pe obiecte", programming.Name)
	// base average 9.50, exam grade 9 reweights to 9.50*0.6 + 9*0.4
	require.Equal(t, "9.30", programming.AverageDisplay)

	pe := third.Subjects[2]
	require.Equal(t, "Educația fizică", pe.Name)
	require.Empty(t, pe.Grades)
	require.Nil(t, pe.Average)
	require.Equal(t, "-", pe.AverageDisplay)

	require.NotNil(t, third.Absences)
	require.Empty(t, cmp.Diff(&Absences{Total: 12, Sick: 4, Excused: 6, Unexcused: 2}, third.Absences))

	fourth := grades.CurrentGrades[3]
	require.Len(t, fourth.Subjects, 2)
	physics := fourth.Subjects[0]
	require.Equal(t, "Fizica", physics.Name)
	// the matching exam is still upcoming, so the plain average stands
	require.Equal(t, "7.50", physics.AverageDisplay)
	require.Equal(t, "9.00", fourth.Subjects[1].AverageDisplay)
	require.Nil(t, fourth.Absences)
}

func TestParseExams(t *testing.T) {
	grades := ParseStudentGradesData(loadRecordFixture(t))

	want := []Exam{
		{Subject: "Limba română", Type: "Teza", Grade: "8", Semester: 1},
		{Subject: "Istoria", Type: "Examen", Grade: "9", Semester: 2},
		{Subject: "Matematica", Type: "Teza", Grade: "10", Semester: 3},
		{Subject: "Programare orientată pe obiecte", Type: "Examen", Grade: "9", Semester: 3},
		{Subject: "Fizica", Type: "Examen", Grade: "TBD", Semester: 4, Upcoming: true},
	}
	require.Empty(t, cmp.Diff(want, grades.Exams))
}

func TestExtractExamsIgnoresLabelRows(t *testing.T) {
	// the loose two-column layout only applies to panels where no row
	// carries the full "(type) name — grade" shape, otherwise label
	// rows like "Disciplina | Nota" would surface as exam entries
	html := `
<div id="examene">
  <div class="panel"><div class="panel-body">
    <table>
      <tr><td>Disciplina</td><td>Nota</td></tr>
      <tr><td>(Examen) Istoria — 9</td><td></td></tr>
    </table>
  </div></div>
  <div class="panel"><div class="panel-body">
    <table>
      <tr><td>(Teza) Matematica</td><td>8</td></tr>
    </table>
  </div></div>
</div>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	want := []Exam{
		{Subject: "Istoria", Type: "Examen", Grade: "9", Semester: 1},
		{Subject: "Matematica", Type: "Teza", Grade: "8", Semester: 2},
	}
	require.Empty(t, cmp.Diff(want, ExtractExams(doc)))
}

func TestParseAnnualGrades(t *testing.T) {
	grades := ParseStudentGradesData(loadRecordFixture(t))

	want := []AnnualGrade{
		{
			Subject:        "Matematica",
			Semester1:      "8.50",
			Semester2:      "9.41",
			Annual:         "8.95",
			Evaluation:     "8.95",
			EvaluationType: "media anuală",
		},
		{Subject: "Fizica", Semester1: "7.00"},
	}
	require.Empty(t, cmp.Diff(want, grades.AnnualGrades))
}

func TestParseActiveSemester(t *testing.T) {
	grades := ParseStudentGradesData(loadRecordFixture(t))
	require.Equal(t, 3, grades.ActiveSemester)
}

func TestParseEmptyDocument(t *testing.T) {
	require.Equal(t, MockStudentGrades(), ParseStudentGradesData(""))
	require.Equal(t, MockStudentGrades(), ParseStudentGradesData("  \n\t "))
}

func TestParseGradeTokens(t *testing.T) {
	cases := []struct {
		cell string
		want []string
	}{
		{"9 8 9,5", []string{"9", "8", "9,5"}},
		{"a n 7", []string{"7"}},
		{"10,9,8", []string{"10", "9", "8"}},
		{"", nil},
		{"absent", nil},
	}
	for _, c := range cases {
		require.Equal(t, c.want, parseGradeTokens(c.cell), "cell %q", c.cell)
	}
}

func TestParseSemesterNumber(t *testing.T) {
	require.Equal(t, 3, parseSemesterNumber("Semestrul III"))
	require.Equal(t, 4, parseSemesterNumber("semestrul 4"))
	require.Equal(t, 0, parseSemesterNumber("Date personale"))
}
