package records

import (
	"context"
	"testing"

	recordsv1 "ejassist-backend/proto/ejassist/services/records/v1"
	"ejassist-backend/services/records/parser"

	"connectrpc.com/connect"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRpcGetRecordsServesCache(t *testing.T) {
	fetcher := newFakeFetcher("<html>fresh</html>")
	svc := setupRecordsService(t, fetcher)
	setActive(t, svc, testIdnp)

	ts, err := svc.Store(context.Background(), testIdnp, `
		<div id="date-personale"><table>
			<tr><td>Nume:</td><td>Ceban</td></tr>
			<tr><td>Prenume:</td><td>Ion</td></tr>
		</table></div>`)
	require.NoError(t, err)
	require.NotNil(t, ts)

	rpc := NewRpcService(svc)
	res, err := rpc.GetRecords(context.Background(), connect.NewRequest(&recordsv1.GetRecordsRequest{
		Idnp: testIdnp,
	}))
	require.NoError(t, err)

	require.Equal(t, "Ceban", res.Msg.GetGrades().GetInfo().GetSurname())
	require.Equal(t, "Ion", res.Msg.GetGrades().GetInfo().GetName())
	require.Equal(t, ts.Unix(), res.Msg.GetCapturedAt())
	require.Regexp(t, `^\d{4}-\d{4}$`, res.Msg.GetSchoolYear())
	// the read itself kicks off a background refresh
	require.True(t, res.Msg.GetRefreshing())

	close(fetcher.release)
	waitNotRefreshing(t, svc, testIdnp)
}

func TestRpcGetRecordsWithoutCache(t *testing.T) {
	fetcher := newFakeFetcher("")
	svc := setupRecordsService(t, fetcher)
	setActive(t, svc, testIdnp)

	rpc := NewRpcService(svc)
	_, err := rpc.GetRecords(context.Background(), connect.NewRequest(&recordsv1.GetRecordsRequest{
		Idnp: testIdnp,
	}))
	require.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	close(fetcher.release)
	waitNotRefreshing(t, svc, testIdnp)
}

func TestRpcRejectsMalformedIdnp(t *testing.T) {
	rpc := NewRpcService(setupRecordsService(t, newFakeFetcher("")))

	_, err := rpc.GetRecords(context.Background(), connect.NewRequest(&recordsv1.GetRecordsRequest{
		Idnp: "12345",
	}))
	require.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = rpc.Refresh(context.Background(), connect.NewRequest(&recordsv1.RefreshRequest{
		Idnp: "not-a-number",
	}))
	require.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = rpc.SetActiveStudent(context.Background(), connect.NewRequest(&recordsv1.SetActiveStudentRequest{
		Idnp: "20040123456789",
	}))
	require.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestRpcRefresh(t *testing.T) {
	fetcher := newFakeFetcher("<html>new</html>")
	svc := setupRecordsService(t, fetcher)
	setActive(t, svc, testIdnp)

	ts, err := svc.Store(context.Background(), testIdnp, "<html>old</html>")
	require.NoError(t, err)

	rpc := NewRpcService(svc)
	res, err := rpc.Refresh(context.Background(), connect.NewRequest(&recordsv1.RefreshRequest{
		Idnp: testIdnp,
	}))
	require.NoError(t, err)
	require.True(t, res.Msg.GetRefreshing())
	require.Equal(t, ts.Unix(), res.Msg.GetCapturedAt())

	close(fetcher.release)
	waitNotRefreshing(t, svc, testIdnp)
}

func TestRpcSetActiveStudent(t *testing.T) {
	fetcher := newFakeFetcher("<html></html>")
	svc := setupRecordsService(t, fetcher)
	setActive(t, svc, testIdnp)

	_, err := svc.SilentRefresh(context.Background(), testIdnp)
	require.NoError(t, err)

	rpc := NewRpcService(svc)
	_, err = rpc.SetActiveStudent(context.Background(), connect.NewRequest(&recordsv1.SetActiveStudentRequest{
		Idnp: "2004088888888",
	}))
	require.NoError(t, err)

	require.Equal(t, "2004088888888", svc.activeIdentity(context.Background()))
	// inflight refreshes for the previous student get cancelled
	waitNotRefreshing(t, svc, testIdnp)
}

func TestTransformStudentGrades(t *testing.T) {
	average := 9.41
	input := parser.StudentGrades{
		Info: parser.StudentInfo{
			Surname:        "Ceban",
			Name:           "Ion",
			StudyYearLabel: "II",
			StudyYear:      2,
			Group:          "P-2142",
		},
		CurrentGrades: []parser.SemesterGrades{
			{
				Semester: 3,
				Subjects: []parser.GradeSubject{
					{
						Name:           "Matematica",
						Grades:         []string{"9", "8", "9,5"},
						Average:        &average,
						AverageDisplay: "9.41",
					},
					{Name: "Educația fizică", AverageDisplay: "-"},
				},
				Absences: &parser.Absences{Total: 12, Sick: 4, Excused: 6, Unexcused: 2},
			},
		},
		Exams: []parser.Exam{
			{Subject: "Matematica", Type: "Teza", Grade: "10", Semester: 3},
			{Subject: "Fizica", Type: "Examen", Grade: "TBD", Semester: 4, Upcoming: true},
		},
		AnnualGrades: []parser.AnnualGrade{
			{Subject: "Matematica", Semester1: "8.50", Annual: "8.95"},
		},
		ActiveSemester: 3,
	}

	got := transformStudentGrades(input)

	require.Equal(t, "Ceban", got.GetInfo().GetSurname())
	require.Equal(t, int32(2), got.GetInfo().GetStudyYear())

	require.Len(t, got.GetCurrentGrades(), 1)
	sem := got.GetCurrentGrades()[0]
	require.Equal(t, int32(3), sem.GetSemester())
	require.Len(t, sem.GetSubjects(), 2)
	require.Empty(t, cmp.Diff([]string{"9", "8", "9,5"}, sem.GetSubjects()[0].GetGrades()))
	require.Equal(t, 9.41, sem.GetSubjects()[0].GetAverage())
	// a subject without numeric grades keeps the zero average, the
	// display string carries the dash
	require.Equal(t, float64(0), sem.GetSubjects()[1].GetAverage())
	require.Equal(t, "-", sem.GetSubjects()[1].GetAverageDisplay())
	require.Equal(t, int32(12), sem.GetAbsences().GetTotal())

	require.Len(t, got.GetExams(), 2)
	require.True(t, got.GetExams()[1].GetUpcoming())
	require.Len(t, got.GetAnnualGrades(), 1)
	require.Equal(t, "8.95", got.GetAnnualGrades()[0].GetAnnual())
	require.Equal(t, int32(3), got.GetActiveSemester())
}
