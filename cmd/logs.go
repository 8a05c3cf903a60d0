// Copyright (c) 2025 PTL
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"ptladmin/cli/internal/backend"
)

var (
	logsPage       int
	logsLimit      int
	logsUserID     string
	logsEmail      string
	logsMethod     string
	logsPath       string
	logsStatusCode int
	logsSuccess    string
	logsStartDate  string
	logsEndDate    string
	logsIP         string
)

// logsCmd shows the backend's access-log report.
var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the access-log report",
	Long: `The logs command lists access-log entries recorded by the PTL backend.
Filters are combined with AND semantics; unset filters are omitted from the
request. The --success filter takes "true" or "false"; leaving it unset
returns both outcomes.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireAuth(cmd.Context())
		if err != nil {
			return err
		}

		filters := backend.LogsFilters{
			Page:       logsPage,
			Limit:      logsLimit,
			UserID:     logsUserID,
			Email:      logsEmail,
			Method:     logsMethod,
			Path:       logsPath,
			StatusCode: logsStatusCode,
			StartDate:  logsStartDate,
			EndDate:    logsEndDate,
			IP:         logsIP,
		}
		if logsSuccess != "" {
			ok, perr := strconv.ParseBool(logsSuccess)
			if perr != nil {
				return perr
			}
			filters.Success = &ok
		}

		resp, err := s.api.AccessLogs(cmd.Context(), filters)
		if err != nil {
			return err
		}
		if len(resp.Logs) == 0 {
			pterm.Println("No log entries match the given filters.")
			return nil
		}

		data := pterm.TableData{{"Timestamp", "User", "Method", "Path", "Status", "Time (ms)", "IP"}}
		for _, l := range resp.Logs {
			data = append(data, []string{
				l.Timestamp,
				l.Email,
				l.Method,
				l.Path,
				strconv.Itoa(l.StatusCode),
				strconv.Itoa(l.ResponseTime),
				l.IP,
			})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}

		p := resp.Pagination
		pterm.Printf("Page %d of %d (%d entries total)\n", p.Page, p.TotalPages, p.Total)
		return nil
	},
}

func init() {
	logsCmd.Flags().IntVar(&logsPage, "page", 0, "Page number")
	logsCmd.Flags().IntVar(&logsLimit, "limit", 0, "Entries per page")
	logsCmd.Flags().StringVar(&logsUserID, "user-id", "", "Filter by user id")
	logsCmd.Flags().StringVar(&logsEmail, "email", "", "Filter by user email")
	logsCmd.Flags().StringVar(&logsMethod, "method", "", "Filter by HTTP method")
	logsCmd.Flags().StringVar(&logsPath, "path", "", "Filter by request path")
	logsCmd.Flags().IntVar(&logsStatusCode, "status-code", 0, "Filter by response status")
	logsCmd.Flags().StringVar(&logsSuccess, "success", "", "Filter by outcome (true or false)")
	logsCmd.Flags().StringVar(&logsStartDate, "start-date", "", "Entries at or after this date")
	logsCmd.Flags().StringVar(&logsEndDate, "end-date", "", "Entries at or before this date")
	logsCmd.Flags().StringVar(&logsIP, "ip", "", "Filter by client IP")

	rootCmd.AddCommand(logsCmd)
}
