// Package parser turns the e-journal portal's student record page into
// structured grade data. Extraction is layout-tolerant: each section is
// located by id with class and heading fallbacks, and any document that
// cannot be read at all degrades to clearly labeled mock data instead
// of an error.
package parser

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseStudentGradesData parses a full record page. it never fails:
// parser panics on pathological markup are caught and, like an empty or
// unreadable document, produce MockStudentGrades.
func ParseStudentGradesData(html string) (grades StudentGrades) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic while parsing student record", "panic", r)
			grades = MockStudentGrades()
		}
	}()

	if strings.TrimSpace(html) == "" {
		slog.Warn("received empty record document")
		return MockStudentGrades()
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		slog.Error("failed to build document from record html", "err", err)
		return MockStudentGrades()
	}

	info := ExtractStudentInfo(doc)
	semesters := ExtractCurrentGrades(doc)
	exams := ExtractExams(doc)

	ApplyExamGradesToAverages(semesters, exams, info)
	semesters = EnsureBothSemestersExist(semesters)

	return StudentGrades{
		Info:           info,
		CurrentGrades:  semesters,
		Exams:          exams,
		AnnualGrades:   ExtractAnnualGrades(doc),
		ActiveSemester: ExtractActiveSemester(doc),
	}
}
