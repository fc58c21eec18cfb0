package parser

import (
	"ejassist-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

func annualRegion(doc *goquery.Document) *goquery.Selection {
	for _, selector := range []string{"#situatia-anuala", ".situatia-anuala"} {
		if region := doc.Find(selector); region.Length() > 0 {
			return region
		}
	}
	return doc.Selection
}

// ExtractAnnualGrades reads the six-column year summary table: subject,
// both semester averages, the annual average and the final evaluation
// with its type. cells that are empty after trimming stay empty, they
// mean the value is not assigned yet.
func ExtractAnnualGrades(doc *goquery.Document) []AnnualGrade {
	region := annualRegion(doc)
	if region == doc.Selection {
		return nil
	}

	var grades []AnnualGrade
	region.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 6 {
			return
		}
		subject := htmlutil.CellText(cells.Eq(0))
		if !isSubjectRowLabel(subject) {
			return
		}
		grades = append(grades, AnnualGrade{
			Subject:        subject,
			Semester1:      htmlutil.CellText(cells.Eq(1)),
			Semester2:      htmlutil.CellText(cells.Eq(2)),
			Annual:         htmlutil.CellText(cells.Eq(3)),
			Evaluation:     htmlutil.CellText(cells.Eq(4)),
			EvaluationType: htmlutil.CellText(cells.Eq(5)),
		})
	})
	return grades
}
