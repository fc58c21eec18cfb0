package parser

// StudentInfo is the "personal data" slice of a record. every field is
// populated with a sentinel when extraction fails, never left to error.
type StudentInfo struct {
	Surname        string `json:"surname"`
	Name           string `json:"name"`
	Patronymic     string `json:"patronymic"`
	StudyYearLabel string `json:"study_year_label"`
	// 1-8, derived from the roman-numeral study year label.
	// zero when the label is not a recognized roman numeral.
	StudyYear      int    `json:"study_year"`
	Group          string `json:"group"`
	Specialization string `json:"specialization"`
	Curator        string `json:"curator,omitempty"`
	DepartmentHead string `json:"department_head,omitempty"`
	Status         string `json:"status,omitempty"`
}

type GradeSubject struct {
	Name string `json:"name"`
	// numeric-looking grade tokens in document order, decimal comma
	// preserved as scraped. non-numeric placeholder marks are dropped.
	Grades []string `json:"grades"`
	// nil exactly when no token in Grades is numeric
	Average *float64 `json:"average,omitempty"`
	// "-" when there is no average
	AverageDisplay string `json:"average_display"`
}

type Absences struct {
	Total     int `json:"total"`
	Sick      int `json:"sick"`
	Excused   int `json:"excused"`
	Unexcused int `json:"unexcused"`
}

type SemesterGrades struct {
	Semester int            `json:"semester"`
	Subjects []GradeSubject `json:"subjects"`
	// only populated when the panel carries a total-absences row
	Absences *Absences `json:"absences,omitempty"`
}

type Exam struct {
	Subject string `json:"subject"`
	// "Examen", "Teza", "Practică" or whatever else the portal labels it
	Type     string `json:"type"`
	Grade    string `json:"grade"`
	Semester int    `json:"semester"`
	// set exactly when the scraped grade was a placeholder
	Upcoming bool `json:"upcoming"`
}

// AnnualGrade mirrors one row of the six-column annual summary table.
// optional fields are empty strings when the cell was blank.
type AnnualGrade struct {
	Subject        string `json:"subject"`
	Semester1      string `json:"semester1,omitempty"`
	Semester2      string `json:"semester2,omitempty"`
	Annual         string `json:"annual,omitempty"`
	Evaluation     string `json:"evaluation,omitempty"`
	EvaluationType string `json:"evaluation_type,omitempty"`
}

type StudentGrades struct {
	Info StudentInfo `json:"info"`
	// always contains semesters 1 and 2 at minimum, each semester
	// number exactly once, sorted ascending
	CurrentGrades []SemesterGrades `json:"current_grades"`
	Exams         []Exam           `json:"exams"`
	AnnualGrades  []AnnualGrade    `json:"annual_grades"`
	// 1-based, zero when no panel is marked expanded
	ActiveSemester int `json:"active_semester,omitempty"`
}
