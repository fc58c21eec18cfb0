package parser

import (
	"regexp"
	"strings"

	"ejassist-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// primary exam row shape: "(Examen) Programare orientată pe obiecte — 9".
// the dash separating name and grade varies between hyphen, en and em
// dash depending on which portal version rendered the page.
var examRowRe = regexp.MustCompile(`^\(([^)]+)\)\s*(.+?)\s*[—–-]\s*(\S.*)$`)

var examTypeRe = regexp.MustCompile(`^\(([^)]+)\)\s*(.+)$`)

// grade cell values that mean the exam has not been graded yet
func isPlaceholderGrade(grade string) bool {
	switch grade {
	case "", "-", "--", "---", "TBD":
		return true
	}
	return strings.Contains(strings.ToLower(grade), "pending")
}

func examsRegion(doc *goquery.Document) *goquery.Selection {
	for _, selector := range []string{"#examene", ".examene"} {
		if region := doc.Find(selector); region.Length() > 0 {
			return region
		}
	}
	return doc.Selection
}

func newExam(examType, subject, grade string, semester int) Exam {
	upcoming := isPlaceholderGrade(grade)
	if upcoming {
		grade = "TBD"
	}
	return Exam{
		Subject:  subject,
		Type:     examType,
		Grade:    grade,
		Semester: semester,
		Upcoming: upcoming,
	}
}

// panelExams reads the exam entries of one semester panel. the full
// "(type) name — grade" row shape is matched across the whole panel
// first; only when it matches nothing does the looser two-cell table
// layout apply, so label rows like "Disciplina | Nota" cannot leak in
// alongside real entries.
func panelExams(body *goquery.Selection, semester int) []Exam {
	var exams []Exam
	body.Find("tr, li").Each(func(_ int, row *goquery.Selection) {
		groups := examRowRe.FindStringSubmatch(htmlutil.CellText(row))
		if groups == nil {
			return
		}
		exams = append(exams, newExam(
			htmlutil.CleanText(groups[1]),
			htmlutil.CleanText(groups[2]),
			htmlutil.CleanText(groups[3]),
			semester,
		))
	})
	if len(exams) > 0 {
		return exams
	}

	body.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		subject := htmlutil.CellText(cells.Eq(0))
		examType := ""
		if groups := examTypeRe.FindStringSubmatch(subject); groups != nil {
			examType = htmlutil.CleanText(groups[1])
			subject = htmlutil.CleanText(groups[2])
		}
		if subject == "" {
			return
		}
		exams = append(exams, newExam(examType, subject, htmlutil.CellText(cells.Eq(1)), semester))
	})
	return exams
}

// ExtractExams reads the exam section. exam panels carry no semester
// heading of their own, so panel order determines the semester: the
// first panel is semester 1, the second semester 2 and so on.
func ExtractExams(doc *goquery.Document) []Exam {
	region := examsRegion(doc)
	if region == doc.Selection {
		// without a bounded region, heuristic panel scanning would
		// misread grade panels as exam panels
		return nil
	}

	var exams []Exam
	region.Find(".panel, .card, .accordion-item").Each(func(i int, panel *goquery.Selection) {
		body := panel.Find(".panel-collapse, .collapse, .panel-body, .card-body").First()
		if body.Length() == 0 {
			body = panel
		}
		exams = append(exams, panelExams(body, i+1)...)
	})
	if len(exams) == 0 {
		exams = panelExams(region, 1)
	}
	return exams
}
