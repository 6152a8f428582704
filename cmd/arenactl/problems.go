package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arenacode/arenactl/internal/api"
)

func registerProblemCommands(root *cobra.Command) {
	problemsCmd := cobra.Command{
		Use:   "problems <contest-id>",
		Short: "Lists problems of a contest",
		Args:  cobra.ExactArgs(1),
		RunE:  wrapClientMain(problemsMain),
	}
	root.AddCommand(&problemsCmd)
	problemCmd := cobra.Command{
		Use:   "problem <id>",
		Short: "Shows a problem statement",
		Args:  cobra.ExactArgs(1),
		RunE:  wrapClientMain(problemMain),
	}
	root.AddCommand(&problemCmd)
	templateCmd := cobra.Command{
		Use:   "template",
		Short: "Prints starter code for a language",
		RunE:  templateMain,
	}
	templateCmd.Flags().String("language", string(api.Python), "PYTHON, CPP or JAVA")
	root.AddCommand(&templateCmd)
}

func problemsMain(ctx *clientContext) error {
	id, err := parseID(ctx.Args[0])
	if err != nil {
		return err
	}
	problems, err := ctx.Client.ObserveContestProblems(context.Background(), id)
	if err != nil {
		return fmt.Errorf("unable to fetch problems: %w", err)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tDIFFICULTY")
	for _, problem := range problems {
		fmt.Fprintf(w, "%d\t%s\t%s\n", problem.ID, problem.Title, problem.Difficulty)
	}
	return w.Flush()
}

func problemMain(ctx *clientContext) error {
	id, err := parseID(ctx.Args[0])
	if err != nil {
		return err
	}
	problem, err := ctx.Client.ObserveProblem(context.Background(), id)
	if err != nil {
		return fmt.Errorf("unable to fetch problem: %w", err)
	}
	fmt.Printf("%s (problem %d, %s)\n", problem.Title, problem.ID, problem.Difficulty)
	if len(problem.Description) > 0 {
		fmt.Println()
		fmt.Println(problem.Description)
	}
	return nil
}

func templateMain(cmd *cobra.Command, _ []string) error {
	language, err := api.ParseLanguage(must(cmd.Flags().GetString("language")))
	if err != nil {
		return err
	}
	fmt.Print(language.Template())
	return nil
}
