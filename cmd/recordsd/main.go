package main

import (
	"net/http"
	"time"

	"ejassist-backend/lib/configutil"
	configsqlite "ejassist-backend/lib/configutil/sqlite"
	"ejassist-backend/lib/scrapers/ejournal"
	"ejassist-backend/lib/serviceutil"
	"ejassist-backend/lib/telemetry"
	"ejassist-backend/proto/ejassist/services/records/v1/recordsv1connect"
	"ejassist-backend/services/records"
	recordsdb "ejassist-backend/services/records/db"

	"connectrpc.com/connect"
)

type Config struct {
	Port     int                 `json:"port"`
	Database configsqlite.Struct `json:"database"`
	Portal   struct {
		BaseUrl string `json:"base_url"`
	} `json:"portal"`
	// 0 disables the periodic refresh daemon
	RefreshMinutes int `json:"refresh_minutes"`
}

func main() {
	ctx := serviceutil.SignalContext()

	config, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}

	telem, err := telemetry.SetupFromEnv(ctx, "ejassist.records")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer telem.Shutdown(ctx)
	telemetry.InstrumentPerfStats(ctx)

	database, err := config.Database.OpenDB(recordsdb.Schema)
	if err != nil {
		serviceutil.Fatal("failed to open database", err)
	}

	service := records.NewService(records.ServiceOptions{
		Database: database,
		Fetcher: ejournal.NewSessionCache(ejournal.ClientOptions{
			BaseUrl: config.Portal.BaseUrl,
		}),
	})

	if config.RefreshMinutes > 0 {
		go service.RunRefreshDaemon(ctx, time.Duration(config.RefreshMinutes)*time.Minute)
	}

	otelIntercept := serviceutil.NewConnectOtelInterceptor()

	mux := http.NewServeMux()
	mux.Handle(recordsv1connect.NewRecordsServiceHandler(
		recordsv1connect.NewInstrumentedRecordsServiceClient(
			records.NewRpcService(service),
		),
		connect.WithInterceptors(otelIntercept),
	))
	go serviceutil.StartHttpServer(config.Port, mux)
	<-ctx.Done()
}
