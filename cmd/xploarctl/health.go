package main

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "health <base-url>",
		Short: "Probe a deployment's health endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := resty.New().
				SetBaseURL(args[0]).
				SetTimeout(timeout)

			var body struct {
				Status     string `json:"status"`
				Version    string `json:"version"`
				Components map[string]struct {
					Status  string `json:"status"`
					Latency string `json:"latency"`
				} `json:"components"`
			}

			resp, err := client.R().
				SetContext(cmd.Context()).
				SetResult(&body).
				Get("/health")
			if err != nil {
				return fmt.Errorf("probe %s: %w", args[0], err)
			}

			cmd.Printf("status:  %s (HTTP %d)\n", body.Status, resp.StatusCode())
			if body.Version != "" {
				cmd.Printf("version: %s\n", body.Version)
			}
			for name, comp := range body.Components {
				if comp.Latency != "" {
					cmd.Printf("%s: %s (%s)\n", name, comp.Status, comp.Latency)
				} else {
					cmd.Printf("%s: %s\n", name, comp.Status)
				}
			}

			if !resp.IsSuccess() {
				return fmt.Errorf("deployment unhealthy: HTTP %d", resp.StatusCode())
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")
	return cmd
}
