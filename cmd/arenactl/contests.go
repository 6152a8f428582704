package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/arenacode/arenactl/internal/api"
	"github.com/arenacode/arenactl/internal/standings"
)

func registerContestCommands(root *cobra.Command) {
	contestsCmd := cobra.Command{
		Use:   "contests",
		Short: "Lists contests",
		RunE:  wrapClientMain(contestsMain),
	}
	contestsCmd.Flags().Bool("active", false, "Only contests running now")
	root.AddCommand(&contestsCmd)
	contestCmd := cobra.Command{
		Use:   "contest <id>",
		Short: "Shows contest details",
		Args:  cobra.ExactArgs(1),
		RunE:  wrapClientMain(contestMain),
	}
	root.AddCommand(&contestCmd)
	leaderboardCmd := cobra.Command{
		Use:   "leaderboard <contest-id>",
		Short: "Shows contest leaderboard",
		Args:  cobra.ExactArgs(1),
		RunE:  wrapClientMain(leaderboardMain),
	}
	leaderboardCmd.Flags().Bool("watch", false, "Keep refreshing until interrupted")
	root.AddCommand(&leaderboardCmd)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func contestsMain(ctx *clientContext) error {
	activeOnly := must(ctx.Cmd.Flags().GetBool("active"))
	var contests []api.Contest
	var err error
	if activeOnly {
		contests, err = ctx.Client.ObserveActiveContests(context.Background())
	} else {
		contests, err = ctx.Client.ObserveContests(context.Background())
	}
	if err != nil {
		return fmt.Errorf("unable to fetch contests: %w", err)
	}
	slices.SortFunc(contests, func(lhs, rhs api.Contest) bool {
		return lhs.StartTime.Before(rhs.StartTime)
	})
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTARTS\tENDS\tSTATE")
	now := time.Now()
	for _, contest := range contests {
		state := "upcoming"
		if contest.IsActive(now) {
			state = "active"
		} else if now.After(contest.EndTime) {
			state = "finished"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			contest.ID, contest.Title,
			contest.StartTime.Local().Format("Jan 2 15:04"),
			contest.EndTime.Local().Format("Jan 2 15:04"),
			state,
		)
	}
	return w.Flush()
}

func contestMain(ctx *clientContext) error {
	id, err := parseID(ctx.Args[0])
	if err != nil {
		return err
	}
	contest, err := ctx.Client.ObserveContest(context.Background(), id)
	if err != nil {
		return fmt.Errorf("unable to fetch contest: %w", err)
	}
	fmt.Printf("%s (contest %d)\n", contest.Title, contest.ID)
	if len(contest.Description) > 0 {
		fmt.Println(contest.Description)
	}
	fmt.Printf("Runs %s - %s\n",
		contest.StartTime.Local().Format(time.RFC1123),
		contest.EndTime.Local().Format(time.RFC1123),
	)
	problems, err := ctx.Client.ObserveContestProblems(context.Background(), id)
	if err != nil {
		return fmt.Errorf("unable to fetch problems: %w", err)
	}
	for _, problem := range problems {
		fmt.Printf("  %d. %s [%s]\n", problem.ID, problem.Title, problem.Difficulty)
	}
	return nil
}

func leaderboardMain(ctx *clientContext) error {
	id, err := parseID(ctx.Args[0])
	if err != nil {
		return err
	}
	watch := must(ctx.Cmd.Flags().GetBool("watch"))
	if !watch {
		leaderboard, err := ctx.Client.ObserveContestLeaderboard(
			context.Background(), id,
		)
		if err != nil {
			return fmt.Errorf("unable to fetch leaderboard: %w", err)
		}
		return printLeaderboard(leaderboard)
	}
	signalCtx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()
	watcher := standings.Watch(ctx.Client, id, standings.WithLogger(ctx.Logger))
	defer watcher.Stop()
	fmt.Printf("Watching contest %d, refresh every %s\n", id, standings.DefaultInterval)
	for {
		select {
		case <-signalCtx.Done():
			return nil
		case leaderboard, ok := <-watcher.Snapshots():
			if !ok {
				return nil
			}
			if err := printLeaderboard(leaderboard); err != nil {
				return err
			}
		}
	}
}

func printLeaderboard(leaderboard api.Leaderboard) error {
	if len(leaderboard.Entries) == 0 {
		fmt.Println("No submissions yet")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tNAME\tSOLVED\tFIRST AC")
	for _, entry := range leaderboard.Entries {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n",
			entry.Rank, entry.UserName, entry.ProblemsSolved,
			api.FormatSolveTime(entry.TimeToFirstAC),
		)
	}
	return w.Flush()
}
