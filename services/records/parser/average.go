package parser

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/antzucaro/matchr"
)

const noAverageDisplay = "-"

// truncate2 cuts x down to two decimal places without rounding. the
// portal displays averages this way, so 8.755 must become 8.75. the
// inner round only scrubs binary float noise past the fourth decimal,
// so 8*0.6 + 10*0.4 (= 8.799999...) still truncates to 8.80, not 8.79.
func truncate2(x float64) float64 {
	return math.Trunc(math.Round(x*10000)/100) / 100
}

// parseGradeValue parses a grade token, treating a comma as the decimal
// separator.
func parseGradeValue(token string) (float64, bool) {
	token = strings.ReplaceAll(strings.TrimSpace(token), ",", ".")
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// CalculateAverage computes the arithmetic mean of the numeric tokens,
// truncated to two decimal places. non-numeric tokens are discarded,
// never treated as zero. nil when no numeric token remains.
func CalculateAverage(tokens []string) *float64 {
	var sum float64
	var count int
	for _, token := range tokens {
		v, ok := parseGradeValue(token)
		if !ok {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return nil
	}
	avg := truncate2(sum / float64(count))
	return &avg
}

// FormatAverage renders an average for display, "-" when there is none.
func FormatAverage(avg *float64) string {
	if avg == nil {
		return noAverageDisplay
	}
	return fmt.Sprintf("%.2f", *avg)
}

// ApplyExamGradesToAverages folds matched exam results into subject
// averages, but only inside the student's current academic year: study
// year y covers semesters 2y-1 and 2y (y defaults to 1 when unknown).
//
// a subject matches the first exam in document order from the same
// semester whose name contains or is contained by the subject name,
// case-insensitively. this tie-break is deliberate; do not replace it
// with a best-match heuristic.
func ApplyExamGradesToAverages(semesters []SemesterGrades, exams []Exam, info StudentInfo) {
	year := info.StudyYear
	if year < 1 {
		year = 1
	}
	lo, hi := 2*year-1, 2*year

	for si := range semesters {
		sem := &semesters[si]
		if sem.Semester < lo || sem.Semester > hi {
			continue
		}
		for subi := range sem.Subjects {
			subject := &sem.Subjects[subi]
			if subject.Average == nil {
				continue
			}

			exam := matchExam(subject.Name, sem.Semester, exams)
			if exam == nil {
				continue
			}
			grade, ok := parseGradeValue(exam.Grade)
			if !ok {
				continue
			}

			var reweighted float64
			switch strings.ToLower(exam.Type) {
			case "teza", "teză":
				reweighted = (*subject.Average + grade) / 2
			case "examen":
				reweighted = *subject.Average*0.6 + grade*0.4
			default:
				continue
			}

			reweighted = truncate2(reweighted)
			subject.Average = &reweighted
			subject.AverageDisplay = FormatAverage(subject.Average)
		}
	}
}

func matchExam(subjectName string, semester int, exams []Exam) *Exam {
	subject := strings.ToLower(subjectName)
	for i := range exams {
		if exams[i].Semester != semester {
			continue
		}
		exam := strings.ToLower(exams[i].Subject)
		if strings.Contains(subject, exam) || strings.Contains(exam, subject) {
			return &exams[i]
		}
	}

	// purely diagnostic: name the closest exam so mismatched subject
	// spellings show up in debug logs
	closest := ""
	var similarity float64
	for i := range exams {
		if exams[i].Semester != semester {
			continue
		}
		sim := matchr.JaroWinkler(subjectName, exams[i].Subject, false)
		if sim > similarity {
			similarity = sim
			closest = exams[i].Subject
		}
	}
	if closest != "" {
		slog.Debug(
			"no exam matched subject",
			"subject", subjectName,
			"semester", semester,
			"closest_exam", closest,
		)
	}
	return nil
}

func placeholderSemester(number int) SemesterGrades {
	return SemesterGrades{
		Semester: number,
		Subjects: []GradeSubject{{
			Name:           fmt.Sprintf("No subjects available for Semester %d", number),
			AverageDisplay: noAverageDisplay,
		}},
	}
}

// EnsureBothSemestersExist enforces the aggregate invariant: semester
// numbers are unique, semesters 1 and 2 are always present (synthesized
// as placeholders when missing) and the list is sorted ascending.
func EnsureBothSemestersExist(semesters []SemesterGrades) []SemesterGrades {
	var out []SemesterGrades
	seen := map[int]bool{}
	for _, sem := range semesters {
		if seen[sem.Semester] {
			continue
		}
		seen[sem.Semester] = true
		out = append(out, sem)
	}

	for _, required := range []int{1, 2} {
		if !seen[required] {
			out = append(out, placeholderSemester(required))
		}
	}

	slices.SortFunc(out, func(a, b SemesterGrades) int {
		return a.Semester - b.Semester
	})
	return out
}
