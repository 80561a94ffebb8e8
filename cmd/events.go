// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/CaioMS2000/github-activity/internal/gateway"
	"github.com/CaioMS2000/github-activity/internal/jsonval"
	"github.com/CaioMS2000/github-activity/internal/usecase"
)

var eventsCmd = &cobra.Command{
	Use:   "events <username>",
	Short: "Fetches and displays a user's recent public activity",
	Long: `Fetches the public event feed of the given GitHub user and prints one
descriptive line per event, newest first (the order the API returns).
Set GITHUB_TOKEN to authenticate and raise the API rate limit.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		username := args[0]

		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr) // If verbose, log to standard error.
		}
		summary, _ := cmd.Flags().GetBool("summary")

		// The token is optional; unauthenticated requests work with a
		// much lower rate limit.
		token := os.Getenv("GITHUB_TOKEN")

		githubGateway, err := gateway.NewGitHubGateway(token, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}

		// The progress line is decoration, not output; keep it off pipes.
		tty := isatty.IsTerminal(os.Stdout.Fd())
		if tty {
			fmt.Printf("Fetching recent activity for '%s'...\n", username)
		}

		body, err := githubGateway.FetchUserEvents(ctx, username)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		root, err := jsonval.Parse(body)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to parse response: %v\n", err)
			os.Exit(1)
		}
		events, err := usecase.MapEvents(root)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to parse response: %v\n", err)
			os.Exit(1)
		}

		if len(events) == 0 {
			printNoEvents(username)
			return
		}

		plural := "s"
		if len(events) == 1 {
			plural = ""
		}
		fmt.Printf("Found %d event%s\n", len(events), plural)
		for _, line := range usecase.Render(events) {
			fmt.Printf("- %s\n", line)
		}

		if summary {
			printSummary(usecase.Summarize(events))
		}
	},
}

func printNoEvents(username string) {
	fmt.Printf("No recent activity found for user '%s'\n", username)
	fmt.Println("This could mean:")
	fmt.Println("  - The user has no public activity in the last 90 days")
	fmt.Println("  - The user has made their activity private")
}

func printSummary(s usecase.Summary) {
	fmt.Println("\nSummary:")
	for _, kc := range s.KindCounts {
		fmt.Printf("  %s: %d\n", kc.Kind, kc.Count)
	}
	if s.PushCount > 0 {
		fmt.Printf("  Commits per push: mean %.1f, max %.0f\n", s.MeanCommits, s.MaxCommits)
	}
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.Flags().Bool("summary", false, "Print per-kind event counts and push statistics")
}
