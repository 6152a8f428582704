package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arenacode/arenactl/internal/api"
	"github.com/arenacode/arenactl/internal/tracker"
)

func registerSubmissionCommands(root *cobra.Command) {
	submitCmd := cobra.Command{
		Use:   "submit",
		Short: "Submits a solution and tracks it to a verdict",
		RunE:  wrapClientMain(submitMain),
	}
	submitCmd.Flags().Int64("contest", 0, "")
	submitCmd.Flags().Int64("problem", 0, "")
	submitCmd.Flags().String("file", "", "Path to solution source")
	submitCmd.Flags().String("language", string(api.Python), "PYTHON, CPP or JAVA")
	submitCmd.Flags().Bool("detach", false, "Print submission id and exit without tracking")
	_ = submitCmd.MarkFlagRequired("contest")
	_ = submitCmd.MarkFlagRequired("problem")
	_ = submitCmd.MarkFlagRequired("file")
	root.AddCommand(&submitCmd)
	statusCmd := cobra.Command{
		Use:   "status <submission-id>",
		Short: "Shows submission status",
		Args:  cobra.ExactArgs(1),
		RunE:  wrapClientMain(statusMain),
	}
	statusCmd.Flags().Bool("watch", false, "Poll until a verdict is reached")
	root.AddCommand(&statusCmd)
}

func submitMain(ctx *clientContext) error {
	user, err := ctx.requireSession()
	if err != nil {
		return err
	}
	language, err := api.ParseLanguage(must(ctx.Cmd.Flags().GetString("language")))
	if err != nil {
		return err
	}
	file := must(ctx.Cmd.Flags().GetString("file"))
	code, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("unable to read solution: %w", err)
	}
	if len(code) == 0 {
		return fmt.Errorf("solution file %q is empty", file)
	}
	form := api.SubmitForm{
		UserID:    user.UserID,
		ProblemID: must(ctx.Cmd.Flags().GetInt64("problem")),
		ContestID: must(ctx.Cmd.Flags().GetInt64("contest")),
		Code:      string(code),
		Language:  language,
	}
	submission, err := ctx.Client.SubmitSolution(context.Background(), form)
	if err != nil {
		return fmt.Errorf("unable to submit solution: %w", err)
	}
	fmt.Printf("Submission %s created\n", submission.SubmissionID)
	if must(ctx.Cmd.Flags().GetBool("detach")) {
		return nil
	}
	return trackSubmission(ctx, submission.SubmissionID)
}

func statusMain(ctx *clientContext) error {
	id := ctx.Args[0]
	if must(ctx.Cmd.Flags().GetBool("watch")) {
		return trackSubmission(ctx, id)
	}
	status, err := ctx.Client.ObserveSubmissionStatus(context.Background(), id)
	if err != nil {
		return fmt.Errorf("unable to fetch status: %w", err)
	}
	printStatus(status)
	return nil
}

// trackSubmission streams statuses until the first terminal one or
// an interrupt.
func trackSubmission(ctx *clientContext, id string) error {
	signalCtx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()
	t := tracker.Track(ctx.Client, id, tracker.WithLogger(ctx.Logger))
	defer t.Stop()
	for {
		select {
		case <-signalCtx.Done():
			fmt.Println("Tracking cancelled")
			return nil
		case status, ok := <-t.Statuses():
			if !ok {
				return nil
			}
			printStatus(status)
			if status.Status == api.StatusError {
				return fmt.Errorf("tracking failed: %s", status.Result)
			}
		}
	}
}

func printStatus(status api.SubmissionStatus) {
	line := string(status.Status)
	if status.ExecutionTime > 0 {
		line += fmt.Sprintf(" (%dms)", status.ExecutionTime)
	}
	if len(status.Result) > 0 {
		line += ": " + status.Result
	}
	fmt.Println(line)
}
