// Package commands implements the ejassist-cli command tree, a
// development tool for inspecting student records without running the
// records daemon.
package commands

import (
	"ejassist-backend/lib/serviceutil"
	"ejassist-backend/lib/telemetry"

	"github.com/spf13/cobra"
)

var baseUrl string

var rootCmd = &cobra.Command{
	Use:   "ejassist-cli",
	Short: "inspect e-journal student records from the terminal",
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&baseUrl, "base-url", "https://ej.edu.md",
		"base url of the e-journal portal",
	)
}

func Execute() {
	telemetry.InitSlog(false)

	err := rootCmd.ExecuteContext(serviceutil.SignalContext())
	if err != nil {
		serviceutil.Fatal("command failed", err)
	}
}
