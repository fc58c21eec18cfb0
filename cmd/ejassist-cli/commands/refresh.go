package commands

import (
	"fmt"

	configsqlite "ejassist-backend/lib/configutil/sqlite"
	"ejassist-backend/lib/scrapers/ejournal"
	"ejassist-backend/services/records"
	recordsdb "ejassist-backend/services/records/db"

	"github.com/spf13/cobra"
)

var refreshDbFile string

var refreshCmd = &cobra.Command{
	Use:   "refresh <idnp>",
	Short: "fetch a student's record into the daemon's cache database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idnp := args[0]

		database, err := configsqlite.Struct{File: refreshDbFile}.OpenDB(recordsdb.Schema)
		if err != nil {
			return err
		}
		defer database.Close()

		// the service only persists writes for the active student
		queries := recordsdb.New(database)
		err = queries.SetSetting(cmd.Context(), recordsdb.SetSettingParams{
			Key:   recordsdb.ActiveStudentKey,
			Value: idnp,
		})
		if err != nil {
			return err
		}

		service := records.NewService(records.ServiceOptions{
			Database: database,
			Fetcher: ejournal.NewSessionCache(ejournal.ClientOptions{
				BaseUrl: baseUrl,
			}),
		})

		events, unsubscribe := service.Subscribe()
		defer unsubscribe()

		cached, err := service.SilentRefresh(cmd.Context(), idnp)
		if err != nil {
			return err
		}
		if cached != nil {
			fmt.Printf("cached record from %s, refreshing...\n", cached.CapturedAt)
		}

		for {
			select {
			case <-cmd.Context().Done():
				service.CancelAllRefreshes()
				return cmd.Context().Err()
			case event := <-events:
				ended, ok := event.(records.RefreshEnded)
				if !ok {
					continue
				}
				switch {
				case ended.Updated:
					fmt.Printf("record updated in %s\n", ended.Duration)
					return nil
				case ended.Aborted:
					return fmt.Errorf("refresh aborted")
				case ended.Err:
					return fmt.Errorf("refresh failed, see logs")
				default:
					return fmt.Errorf("portal returned no usable record")
				}
			}
		}
	},
}

func init() {
	refreshCmd.Flags().StringVar(
		&refreshDbFile, "db", "records.db",
		"path of the records cache database",
	)
	rootCmd.AddCommand(refreshCmd)
}
