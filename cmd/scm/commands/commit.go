package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fivetwenty-io/scm-client/pkg/scm"
	"github.com/spf13/cobra"
)

// NewCommitCommand creates the commit command
func NewCommitCommand() *cobra.Command {
	var (
		folders     []string
		description string
		admins      []string
		allAdmins   bool
		wait        bool
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Push candidate configuration",
		Long: `Push candidate configuration for one or more folders.

By default the commit is submitted and the job ID printed. With --wait the
command blocks until the push job reaches a terminal state.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(folders) == 0 {
				return ErrFolderRequired
			}

			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			request := &scm.CommitRequest{
				Folders:     folders,
				Description: description,
			}

			if allAdmins {
				request.Admin = scm.AllAdmins()
			} else if len(admins) > 0 {
				request.Admin = scm.Admins(admins...)
			}

			if !wait {
				commit, err := client.Operations().Commit(ctx, request)
				if err != nil {
					return fmt.Errorf("failed to submit commit: %w", err)
				}

				fmt.Printf("Commit submitted, job %s\n", commit.JobID)
				if commit.Message != "" {
					fmt.Println(commit.Message)
				}

				return nil
			}

			job, err := client.Operations().CommitAndWait(ctx, request, timeout)
			if err != nil {
				if errors.Is(err, scm.ErrCommitTimeout) && job != nil {
					return fmt.Errorf("commit still running as job %s: %w", job.ID, err)
				}

				return fmt.Errorf("commit failed: %w", err)
			}

			fmt.Printf("Commit job %s finished: %s\n", job.ID, job.Result)

			return renderJob(job)
		},
	}

	cmd.Flags().StringArrayVar(&folders, "folder", nil, "folder to push (repeatable)")
	cmd.Flags().StringVar(&description, "description", "", "commit description (required)")
	cmd.Flags().StringArrayVar(&admins, "admin", nil, "restrict the push to this admin's changes (repeatable)")
	cmd.Flags().BoolVar(&allAdmins, "all-admins", false, "push every administrator's changes")
	cmd.Flags().BoolVar(&wait, "wait", false, "wait for the push job to finish")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "how long to wait with --wait")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}
