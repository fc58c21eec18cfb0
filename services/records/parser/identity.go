package parser

import (
	"strings"

	"ejassist-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// sentinel values substituted when a personal-data field cannot be
// located. required fields get a visible marker so a broken layout is
// noticed instead of silently rendering blanks.
const (
	unknownSurname    = "Unknown"
	unknownName       = "Student"
	unknownPatronymic = "Unknown"
	failedToParse     = "Failed to parse"
)

// Romanian field labels on the personal-data card.
const (
	labelSurname        = "nume"
	labelName           = "prenume"
	labelPatronymic     = "patronimic"
	labelStudyYear      = "anul de studii"
	labelGroup          = "grupa"
	labelSpecialization = "specialitatea"
	labelCurator        = "diriginte"
	labelDepartmentHead = "șef secție"
	labelStatus         = "statut"
)

func personalDataRegion(doc *goquery.Document) *goquery.Selection {
	for _, selector := range []string{"#date-personale", ".date-personale"} {
		if region := doc.Find(selector); region.Length() > 0 {
			return region
		}
	}
	return doc.Selection
}

// labeledValues reads two-cell label/value rows out of the region's
// tables. labels are matched case-insensitively with the trailing colon
// stripped, and the first occurrence of a label wins.
func labeledValues(region *goquery.Selection) map[string]string {
	values := map[string]string{}
	region.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return
		}
		label := strings.ToLower(strings.TrimSuffix(htmlutil.CellText(cells.Eq(0)), ":"))
		if label == "" {
			return
		}
		if _, ok := values[label]; ok {
			return
		}
		values[label] = htmlutil.CellText(cells.Eq(1))
	})
	return values
}

// ExtractStudentInfo reads the personal-data card. missing required
// fields are replaced with sentinel values, missing optional fields
// stay empty.
func ExtractStudentInfo(doc *goquery.Document) StudentInfo {
	values := labeledValues(personalDataRegion(doc))

	pick := func(label, fallback string) string {
		if v := values[label]; v != "" {
			return v
		}
		return fallback
	}

	yearLabel := pick(labelStudyYear, failedToParse)
	return StudentInfo{
		Surname:        pick(labelSurname, unknownSurname),
		Name:           pick(labelName, unknownName),
		Patronymic:     pick(labelPatronymic, unknownPatronymic),
		StudyYearLabel: yearLabel,
		StudyYear:      RomanOrdinal(yearLabel),
		Group:          pick(labelGroup, failedToParse),
		Specialization: pick(labelSpecialization, failedToParse),
		Curator:        values[labelCurator],
		DepartmentHead: values[labelDepartmentHead],
		Status:         values[labelStatus],
	}
}
