package parser

func mockSubject(name string, grades ...string) GradeSubject {
	avg := CalculateAverage(grades)
	return GradeSubject{
		Name:           name,
		Grades:         grades,
		Average:        avg,
		AverageDisplay: FormatAverage(avg),
	}
}

// MockStudentGrades is the deterministic stand-in returned when a
// record document cannot be parsed at all. every field is clearly
// labeled as mock data so it is never mistaken for a real record.
func MockStudentGrades() StudentGrades {
	return StudentGrades{
		Info: StudentInfo{
			Surname:        "Mockescu",
			Name:           "Mock",
			Patronymic:     "Mockovici",
			StudyYearLabel: "I",
			StudyYear:      1,
			Group:          "MOCK-101",
			Specialization: "Mock Engineering",
			Curator:        "Prof. Mock",
			DepartmentHead: "Dr. Mock",
			Status:         "mock",
		},
		CurrentGrades: []SemesterGrades{
			{
				Semester: 1,
				Subjects: []GradeSubject{
					mockSubject("Mock Mathematics", "9", "8", "10"),
					mockSubject("Mock Programming", "10", "10"),
				},
				Absences: &Absences{Total: 4, Sick: 2, Excused: 1, Unexcused: 1},
			},
			{
				Semester: 2,
				Subjects: []GradeSubject{
					mockSubject("Mock Mathematics", "7", "9"),
					mockSubject("Mock Programming", "10"),
				},
				Absences: &Absences{},
			},
		},
		Exams: []Exam{
			{Subject: "Mock Mathematics", Type: "Teza", Grade: "9", Semester: 1},
			{Subject: "Mock Programming", Type: "Examen", Grade: "TBD", Semester: 2, Upcoming: true},
		},
		AnnualGrades: []AnnualGrade{
			{
				Subject:        "Mock Mathematics",
				Semester1:      "9.00",
				Semester2:      "8.00",
				Annual:         "8.50",
				Evaluation:     "8.50",
				EvaluationType: "media",
			},
		},
		ActiveSemester: 1,
	}
}
