package records

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"ejassist-backend/lib/timezone"
	recordsv1 "ejassist-backend/proto/ejassist/services/records/v1"
	"ejassist-backend/services/records/db"

	"connectrpc.com/connect"
)

var idnpRe = regexp.MustCompile(`^\d{13}$`)

// RpcService exposes a Service over connect. reads are cache-first: a
// GetRecords call kicks off a background refresh and serves whatever is
// already stored.
type RpcService struct {
	service *Service
}

func NewRpcService(service *Service) RpcService {
	return RpcService{service: service}
}

func requireIdnp(idnp string) error {
	if !idnpRe.MatchString(idnp) {
		return connect.NewError(
			connect.CodeInvalidArgument,
			errors.New("idnp must be exactly 13 digits"),
		)
	}
	return nil
}

func (s RpcService) GetRecords(ctx context.Context, req *connect.Request[recordsv1.GetRecordsRequest]) (*connect.Response[recordsv1.GetRecordsResponse], error) {
	idnp := req.Msg.GetIdnp()
	if err := requireIdnp(idnp); err != nil {
		return nil, err
	}

	if _, err := s.service.SilentRefresh(ctx, idnp); err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	grades, capturedAt, err := s.service.Records(ctx, idnp)
	if errors.Is(err, ErrNoCachedRecord) {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	startYear, endYear := timezone.GetSchoolYear(timezone.Now())
	return connect.NewResponse(&recordsv1.GetRecordsResponse{
		Grades:     transformStudentGrades(grades),
		CapturedAt: capturedAt.Unix(),
		Refreshing: s.service.IsRefreshing(idnp),
		SchoolYear: fmt.Sprintf("%d-%d", startYear, endYear),
	}), nil
}

func (s RpcService) Refresh(ctx context.Context, req *connect.Request[recordsv1.RefreshRequest]) (*connect.Response[recordsv1.RefreshResponse], error) {
	idnp := req.Msg.GetIdnp()
	if err := requireIdnp(idnp); err != nil {
		return nil, err
	}

	cached, err := s.service.SilentRefresh(ctx, idnp)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	res := &recordsv1.RefreshResponse{Refreshing: s.service.IsRefreshing(idnp)}
	if cached != nil {
		res.CapturedAt = cached.CapturedAt.Unix()
	}
	return connect.NewResponse(res), nil
}

func (s RpcService) SetActiveStudent(ctx context.Context, req *connect.Request[recordsv1.SetActiveStudentRequest]) (*connect.Response[recordsv1.SetActiveStudentResponse], error) {
	idnp := req.Msg.GetIdnp()
	if err := requireIdnp(idnp); err != nil {
		return nil, err
	}

	// refreshes for the previous student must not land after the switch
	s.service.CancelAllRefreshes()
	err := s.service.qry.SetSetting(ctx, db.SetSettingParams{
		Key:   db.ActiveStudentKey,
		Value: idnp,
	})
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&recordsv1.SetActiveStudentResponse{}), nil
}
