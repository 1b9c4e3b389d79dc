package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/fivetwenty-io/scm-client/pkg/scm"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewJobsCommand creates the jobs command group
func NewJobsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "jobs",
		Aliases: []string{"job"},
		Short:   "Track asynchronous jobs",
		Long:    "Inspect and wait for server-side jobs such as commits",
	}

	cmd.AddCommand(newJobsGetCommand())
	cmd.AddCommand(newJobsListCommand())
	cmd.AddCommand(newJobsPollCommand())

	return cmd
}

func newJobsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get JOB_ID",
		Short: "Get job status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			job, err := client.Jobs().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get job: %w", err)
			}

			return renderJob(job)
		},
	}
}

func newJobsListCommand() *cobra.Command {
	var (
		limit    int
		offset   int
		parentID string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			jobs, err := client.Jobs().List(ctx, limit, offset, parentID)
			if err != nil {
				return fmt.Errorf("failed to list jobs: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(jobs.Data)
			case OutputFormatYAML:
				return renderYAML(jobs.Data)
			default:
				if len(jobs.Data) == 0 {
					fmt.Println("No jobs found")
					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Type", "Status", "Result", "Owner", "Started")

				for _, job := range jobs.Data {
					_ = table.Append(job.ID, job.Type, job.Status,
						valueOrDash(job.Result), valueOrDash(job.Owner),
						valueOrDash(job.StartTime))
				}

				_ = table.Render()

				if jobs.Total > jobs.Offset+len(jobs.Data) {
					fmt.Printf("\nShowing %d of %d jobs. Use --offset to page.\n", len(jobs.Data), jobs.Total)
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 100, "maximum jobs per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "offset into the job listing")
	cmd.Flags().StringVar(&parentID, "parent", "", "only children of this job")

	return cmd
}

func newJobsPollCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "poll JOB_ID",
		Short: "Wait for a job to complete",
		Long:  "Poll a job until it reaches a terminal state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			job, err := client.Jobs().PollUntilComplete(ctx, args[0])
			if err != nil {
				if job != nil {
					_ = renderJob(job)
				}

				return fmt.Errorf("job did not complete successfully: %w", err)
			}

			return renderJob(job)
		},
	}
}

// renderJob prints one job in the configured output format.
func renderJob(job *scm.Job) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(job)
	case OutputFormatYAML:
		return renderYAML(job)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", job.ID)
		_ = table.Append("Type", job.Type)
		_ = table.Append("Status", job.Status)
		_ = table.Append("Result", valueOrDash(job.Result))
		_ = table.Append("Description", valueOrDash(job.Description))
		_ = table.Append("Owner", valueOrDash(job.Owner))
		_ = table.Append("Started", valueOrDash(job.StartTime))
		_ = table.Append("Ended", valueOrDash(job.EndTime))
		_ = table.Render()
	}

	return nil
}
