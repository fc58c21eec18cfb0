package parser

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"ejassist-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

var semesterHeadingRe = regexp.MustCompile(`(?i)semestrul\s+([ivx]+|\d+)`)

// parseSemesterNumber pulls the semester ordinal out of a panel heading
// like "Semestrul III" or "Semestrul 3". zero when the heading is not a
// semester heading.
func parseSemesterNumber(heading string) int {
	groups := semesterHeadingRe.FindStringSubmatch(heading)
	if len(groups) < 2 {
		return 0
	}
	if n, err := strconv.Atoi(groups[1]); err == nil {
		return n
	}
	return RomanOrdinal(groups[1])
}

type semesterPanel struct {
	number   int
	body     *goquery.Selection
	expanded bool
}

// semesterPanels finds per-semester sub-panels: a heading carrying a
// semester ordinal immediately followed by an identifiable content
// panel. panels without both parts are skipped.
func semesterPanels(region *goquery.Selection) []semesterPanel {
	var panels []semesterPanel
	region.Find(".panel, .card, .accordion-item").Each(func(_ int, panel *goquery.Selection) {
		heading := panel.Find(".panel-heading, .card-header, h3, h4, h5").First()
		number := parseSemesterNumber(htmlutil.CellText(heading))
		if number == 0 {
			return
		}

		body := panel.Find(".panel-collapse, .collapse, .panel-body, .card-body").First()
		if body.Length() == 0 {
			return
		}

		panels = append(panels, semesterPanel{
			number:   number,
			body:     body,
			expanded: body.HasClass("in") || body.HasClass("show"),
		})
	})
	return panels
}

// currentSituationRegion bounds the current-grades search. the portal
// usually tags the section with an id, but older record layouts only
// carry the panel group, so fall back to scanning the whole document.
func currentSituationRegion(doc *goquery.Document) *goquery.Selection {
	for _, selector := range []string{"#situatia-curenta", ".situatia-curenta"} {
		if region := doc.Find(selector); region.Length() > 0 {
			return region
		}
	}
	return doc.Selection
}

// first cells matching any of these are header or absence rows, never
// subjects
var subjectRowDenylist = []string{
	"disciplina",
	"obiectul",
	"obiect",
	"nota",
	"note",
	"media",
	"absente",
	"absențe",
	"total",
	"motivate",
	"nemotivate",
	"din motive de boala",
	"din motive de boală",
}

func isSubjectRowLabel(label string) bool {
	lowered := strings.ToLower(label)
	if lowered == "" {
		return false
	}
	for _, denied := range subjectRowDenylist {
		if lowered == denied || strings.HasPrefix(lowered, denied+" ") {
			return false
		}
	}
	return true
}

var numericTokenRe = regexp.MustCompile(`^\d{1,2}([.,]\d{1,2})?$`)

// parseGradeTokens splits a grade cell on whitespace and commas and
// keeps only numeric-looking tokens. a short comma form like "9,5" is
// one decimal token; longer comma runs are separate grades. letter
// placeholders (absent-without-grade marks) are dropped, not zeroes.
func parseGradeTokens(cell string) []string {
	fields := strings.FieldsFunc(cell, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ';'
	})

	var tokens []string
	for _, field := range fields {
		field = strings.Trim(field, ",")
		if numericTokenRe.MatchString(field) {
			tokens = append(tokens, field)
			continue
		}
		for _, part := range strings.Split(field, ",") {
			if numericTokenRe.MatchString(part) {
				tokens = append(tokens, part)
			}
		}
	}
	return tokens
}

// a subject row strategy reads (subject name, grade cell text) pairs
// out of a grade table. strategies are tried in order; a later one only
// applies when every earlier one yielded nothing.
type subjectRowStrategy struct {
	name string
	rows func(table *goquery.Selection) [][2]string
}

var subjectRowStrategies = []subjectRowStrategy{
	{
		// the portal normally wraps cell content in paragraphs
		name: "paragraph-cells",
		rows: func(table *goquery.Selection) [][2]string {
			var out [][2]string
			table.Find("tr").Each(func(_ int, row *goquery.Selection) {
				cells := row.Find("td")
				if cells.Length() < 2 {
					return
				}
				name := htmlutil.CellText(cells.Eq(0).Find("p").First())
				if name == "" {
					return
				}
				out = append(out, [2]string{name, htmlutil.CellText(cells.Eq(1))})
			})
			return out
		},
	},
	{
		name: "plain-cells",
		rows: func(table *goquery.Selection) [][2]string {
			var out [][2]string
			table.Find("tr").Each(func(_ int, row *goquery.Selection) {
				cells := row.Find("td")
				if cells.Length() < 2 {
					return
				}
				out = append(out, [2]string{
					htmlutil.CellText(cells.Eq(0)),
					htmlutil.CellText(cells.Eq(1)),
				})
			})
			return out
		},
	},
}

func extractPanelSubjects(body *goquery.Selection) []GradeSubject {
	table := body.Find("table").First()
	if table.Length() == 0 {
		return nil
	}

	for _, strategy := range subjectRowStrategies {
		var subjects []GradeSubject
		seen := map[string]bool{}
		for _, row := range strategy.rows(table) {
			name := row[0]
			if !isSubjectRowLabel(name) {
				continue
			}
			// duplicate subject names within one semester are a
			// portal rendering artifact; the first row wins
			if seen[name] {
				continue
			}
			seen[name] = true

			tokens := parseGradeTokens(row[1])
			avg := CalculateAverage(tokens)
			subjects = append(subjects, GradeSubject{
				Name:           name,
				Grades:         tokens,
				Average:        avg,
				AverageDisplay: FormatAverage(avg),
			})
		}
		if len(subjects) > 0 {
			slog.Debug(
				"extracted grade rows",
				"strategy", strategy.name,
				"subjects", len(subjects),
			)
			return subjects
		}
	}
	return nil
}

// absence row labels within a semester panel
const (
	absenceTotalLabel     = "absen"
	absenceSickLabel      = "boal"
	absenceUnexcusedLabel = "nemotivate"
	absenceExcusedLabel   = "motivate"
)

// extractPanelAbsences reads the absence rows of a panel. they follow
// the subject rows, either in the same table or in a separate one, so
// every row of the body is scanned by label.
func extractPanelAbsences(body *goquery.Selection) *Absences {
	values := map[string]int{}
	body.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		label := strings.ToLower(htmlutil.CellText(cells.Eq(0)))
		count, err := strconv.Atoi(htmlutil.CellText(cells.Eq(1)))
		if err != nil || count < 0 {
			return
		}

		switch {
		case strings.Contains(label, absenceSickLabel):
			values[absenceSickLabel] = count
		case strings.Contains(label, absenceUnexcusedLabel):
			values[absenceUnexcusedLabel] = count
		case strings.Contains(label, absenceExcusedLabel):
			values[absenceExcusedLabel] = count
		case strings.Contains(label, absenceTotalLabel):
			values[absenceTotalLabel] = count
		}
	})

	// the total row gates the whole breakdown; sub-rows default to 0
	total, ok := values[absenceTotalLabel]
	if !ok {
		return nil
	}
	return &Absences{
		Total:     total,
		Sick:      values[absenceSickLabel],
		Excused:   values[absenceExcusedLabel],
		Unexcused: values[absenceUnexcusedLabel],
	}
}

// ExtractCurrentGrades scans the "current situation" region for
// per-semester grade panels. when the document yields no semester with
// subjects at all, a fixed two-semester placeholder pair is returned:
// the current-grades list must never be empty.
func ExtractCurrentGrades(doc *goquery.Document) []SemesterGrades {
	region := currentSituationRegion(doc)

	var semesters []SemesterGrades
	seen := map[int]bool{}
	for _, panel := range semesterPanels(region) {
		if seen[panel.number] {
			continue
		}

		subjects := extractPanelSubjects(panel.body)
		if len(subjects) == 0 {
			continue
		}
		seen[panel.number] = true

		semesters = append(semesters, SemesterGrades{
			Semester: panel.number,
			Subjects: subjects,
			Absences: extractPanelAbsences(panel.body),
		})
	}

	if len(semesters) == 0 {
		slog.Debug("no semester panel yielded subjects, substituting placeholders")
		return []SemesterGrades{placeholderSemester(1), placeholderSemester(2)}
	}
	return semesters
}

// ExtractActiveSemester returns the 1-based number of the semester
// panel marked expanded in the source markup, zero when none is.
func ExtractActiveSemester(doc *goquery.Document) int {
	for _, panel := range semesterPanels(currentSituationRegion(doc)) {
		if panel.expanded {
			return panel.number
		}
	}
	return 0
}
