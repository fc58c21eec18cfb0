package records

import (
	recordsv1 "ejassist-backend/proto/ejassist/services/records/v1"
	"ejassist-backend/services/records/parser"
)

func transformSemesters(input []parser.SemesterGrades) []*recordsv1.SemesterGrades {
	semesters := make([]*recordsv1.SemesterGrades, len(input))
	for i, sem := range input {
		subjects := make([]*recordsv1.GradeSubject, len(sem.Subjects))
		for i, sub := range sem.Subjects {
			average := float64(0)
			if sub.Average != nil {
				average = *sub.Average
			}
			subjects[i] = &recordsv1.GradeSubject{
				Name:           sub.Name,
				Grades:         sub.Grades,
				Average:        average,
				AverageDisplay: sub.AverageDisplay,
			}
		}

		var absences *recordsv1.Absences
		if sem.Absences != nil {
			absences = &recordsv1.Absences{
				Total:     int32(sem.Absences.Total),
				Sick:      int32(sem.Absences.Sick),
				Excused:   int32(sem.Absences.Excused),
				Unexcused: int32(sem.Absences.Unexcused),
			}
		}

		semesters[i] = &recordsv1.SemesterGrades{
			Semester: int32(sem.Semester),
			Subjects: subjects,
			Absences: absences,
		}
	}
	return semesters
}

func transformExams(input []parser.Exam) []*recordsv1.Exam {
	exams := make([]*recordsv1.Exam, len(input))
	for i, exam := range input {
		exams[i] = &recordsv1.Exam{
			Subject:  exam.Subject,
			Type:     exam.Type,
			Grade:    exam.Grade,
			Semester: int32(exam.Semester),
			Upcoming: exam.Upcoming,
		}
	}
	return exams
}

func transformAnnualGrades(input []parser.AnnualGrade) []*recordsv1.AnnualGrade {
	annual := make([]*recordsv1.AnnualGrade, len(input))
	for i, row := range input {
		annual[i] = &recordsv1.AnnualGrade{
			Subject:        row.Subject,
			Semester1:      row.Semester1,
			Semester2:      row.Semester2,
			Annual:         row.Annual,
			Evaluation:     row.Evaluation,
			EvaluationType: row.EvaluationType,
		}
	}
	return annual
}

func transformStudentGrades(input parser.StudentGrades) *recordsv1.StudentGrades {
	return &recordsv1.StudentGrades{
		Info: &recordsv1.StudentInfo{
			Surname:        input.Info.Surname,
			Name:           input.Info.Name,
			Patronymic:     input.Info.Patronymic,
			StudyYearLabel: input.Info.StudyYearLabel,
			StudyYear:      int32(input.Info.StudyYear),
			Group:          input.Info.Group,
			Specialization: input.Info.Specialization,
			Curator:        input.Info.Curator,
			DepartmentHead: input.Info.DepartmentHead,
			Status:         input.Info.Status,
		},
		CurrentGrades:  transformSemesters(input.CurrentGrades),
		Exams:          transformExams(input.Exams),
		AnnualGrades:   transformAnnualGrades(input.AnnualGrades),
		ActiveSemester: int32(input.ActiveSemester),
	}
}
