package commands

import (
	"fmt"
	"os"
	"strings"

	"ejassist-backend/lib/scrapers/ejournal"
	"ejassist-backend/services/records/parser"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var showFromFile string

var showCmd = &cobra.Command{
	Use:   "show <idnp>",
	Short: "fetch and display a student's record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		html, err := loadRecordHtml(cmd, args[0])
		if err != nil {
			return err
		}

		grades := parser.ParseStudentGradesData(html)
		renderStudentGrades(grades)
		return nil
	},
}

func init() {
	showCmd.Flags().StringVar(
		&showFromFile, "file", "",
		"parse a saved record page instead of fetching from the portal",
	)
	rootCmd.AddCommand(showCmd)
}

func loadRecordHtml(cmd *cobra.Command, idnp string) (string, error) {
	if showFromFile != "" {
		data, err := os.ReadFile(showFromFile)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	client, err := ejournal.NewClient(ejournal.ClientOptions{BaseUrl: baseUrl})
	if err != nil {
		return "", err
	}
	return client.FetchRecords(cmd.Context(), idnp)
}

func newTable(title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.SetTitle(title)
	return t
}

func renderStudentGrades(grades parser.StudentGrades) {
	info := newTable("Student")
	info.AppendRows([]table.Row{
		{"Name", fmt.Sprintf("%s %s %s", grades.Info.Surname, grades.Info.Name, grades.Info.Patronymic)},
		{"Study year", grades.Info.StudyYearLabel},
		{"Group", grades.Info.Group},
		{"Specialization", grades.Info.Specialization},
		{"Curator", grades.Info.Curator},
		{"Status", grades.Info.Status},
	})
	info.Render()

	for _, semester := range grades.CurrentGrades {
		title := fmt.Sprintf("Semester %d", semester.Semester)
		if semester.Semester == grades.ActiveSemester {
			title += " (active)"
		}

		t := newTable(title)
		t.AppendHeader(table.Row{"Subject", "Grades", "Average"})
		for _, subject := range semester.Subjects {
			t.AppendRow(table.Row{
				subject.Name,
				strings.Join(subject.Grades, " "),
				subject.AverageDisplay,
			})
		}
		if semester.Absences != nil {
			t.AppendFooter(table.Row{
				"Absences",
				fmt.Sprintf("sick %d / excused %d / unexcused %d",
					semester.Absences.Sick,
					semester.Absences.Excused,
					semester.Absences.Unexcused,
				),
				semester.Absences.Total,
			})
		}
		t.Render()
	}

	if len(grades.Exams) > 0 {
		t := newTable("Exams")
		t.AppendHeader(table.Row{"Semester", "Type", "Subject", "Grade"})
		for _, exam := range grades.Exams {
			grade := exam.Grade
			if exam.Upcoming {
				grade += " (upcoming)"
			}
			t.AppendRow(table.Row{exam.Semester, exam.Type, exam.Subject, grade})
		}
		t.Render()
	}

	if len(grades.AnnualGrades) > 0 {
		t := newTable("Annual")
		t.AppendHeader(table.Row{"Subject", "Sem 1", "Sem 2", "Annual", "Evaluation", "Type"})
		for _, annual := range grades.AnnualGrades {
			t.AppendRow(table.Row{
				annual.Subject,
				annual.Semester1,
				annual.Semester2,
				annual.Annual,
				annual.Evaluation,
				annual.EvaluationType,
			})
		}
		t.Render()
	}
}
