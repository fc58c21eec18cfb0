package recordsv1connect

import (
	"context"

	connect "connectrpc.com/connect"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/protobuf/encoding/protojson"
	v1 "ejassist-backend/proto/ejassist/services/records/v1"
)

type TracerLike interface {
	Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span)
}

var (
	RecordsServiceTracer TracerLike = otel.Tracer("ejassist.services.records.v1.RecordsService")
)

type InstrumentedRecordsServiceClient struct {
	inner           RecordsServiceClient
	WithInputOutput bool
}

func NewInstrumentedRecordsServiceClient(inner RecordsServiceClient) InstrumentedRecordsServiceClient {
	return InstrumentedRecordsServiceClient{inner: inner}
}

func (c InstrumentedRecordsServiceClient) GetRecords(ctx context.Context, req *connect.Request[v1.GetRecordsRequest]) (*connect.Response[v1.GetRecordsResponse], error) {
	ctx, span := RecordsServiceTracer.Start(ctx, "GetRecords")
	defer span.End()

	if c.WithInputOutput {
		span.SetAttributes(attribute.String("input", protojson.Format(req.Msg)))
	}
	res, err := c.inner.GetRecords(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if c.WithInputOutput {
		span.SetAttributes(attribute.String("output", protojson.Format(res.Msg)))
	}
	return res, nil
}

func (c InstrumentedRecordsServiceClient) Refresh(ctx context.Context, req *connect.Request[v1.RefreshRequest]) (*connect.Response[v1.RefreshResponse], error) {
	ctx, span := RecordsServiceTracer.Start(ctx, "Refresh")
	defer span.End()

	if c.WithInputOutput {
		span.SetAttributes(attribute.String("input", protojson.Format(req.Msg)))
	}
	res, err := c.inner.Refresh(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if c.WithInputOutput {
		span.SetAttributes(attribute.String("output", protojson.Format(res.Msg)))
	}
	return res, nil
}

func (c InstrumentedRecordsServiceClient) SetActiveStudent(ctx context.Context, req *connect.Request[v1.SetActiveStudentRequest]) (*connect.Response[v1.SetActiveStudentResponse], error) {
	ctx, span := RecordsServiceTracer.Start(ctx, "SetActiveStudent")
	defer span.End()

	if c.WithInputOutput {
		span.SetAttributes(attribute.String("input", protojson.Format(req.Msg)))
	}
	res, err := c.inner.SetActiveStudent(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if c.WithInputOutput {
		span.SetAttributes(attribute.String("output", protojson.Format(res.Msg)))
	}
	return res, nil
}
