package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/raveheart1/relog/internal/changelog"
	"github.com/raveheart1/relog/internal/config"
	"github.com/raveheart1/relog/internal/gitrepo"
)

var (
	generateRepoFlag     string
	generateStrategyFlag string
	generateFormatFlag   string
	generatePlainFlag    bool
	generateConfigFlag   string
	generateDebugFlag    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the changelog for commits since the last release tag",
	Long: `Render the changelog for commits since the last release tag.

The range starts at the tag selected by --tag-strategy: "latest" uses
the highest-versioned tag, "previous" the second-highest (for runs
triggered by the release tag itself). With no matching tag the whole
history is rendered and the status line reports a first release.

Query failures never abort the run: they degrade to the "no updates"
placeholder so a calling pipeline always receives well-defined output.

Examples:
  relog generate                           # Markdown since the latest tag
  relog generate --tag-strategy previous   # Range for a tag-triggered run
  relog generate --repo ../other-project
  relog generate --format terminal         # Colored local preview
  relog generate > RELEASE_NOTES.md 2>/dev/null`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateRepoFlag, "repo", "", "Repository path (default: repo_path from config, else \".\")")
	generateCmd.Flags().StringVar(&generateStrategyFlag, "tag-strategy", "", "Tag to diff from: latest or previous")
	generateCmd.Flags().StringVar(&generateFormatFlag, "format", "", "Output format: markdown or terminal")
	generateCmd.Flags().BoolVar(&generatePlainFlag, "plain", false, "Plain terminal output (no colors)")
	generateCmd.Flags().StringVar(&generateConfigFlag, "config", "", "Config file path (default: .relog.yml or .relog.json)")
	generateCmd.Flags().BoolVar(&generateDebugFlag, "debug", false, "Log git queries to stderr")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(generateConfigFlag)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := applyGenerateFlags(cmd, cfg); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	diag := cmd.ErrOrStderr()

	if generateDebugFlag {
		gitrepo.SetDebugLogger(func(format string, args ...any) {
			fmt.Fprintf(diag, format+"\n", args...)
		})
		defer gitrepo.SetDebugLogger(nil)
	}

	repo, err := gitrepo.Open(cfg.RepoPath)
	if err != nil {
		// An unopenable repository degrades like an empty one so callers
		// still receive the placeholder contract on stdout.
		printDiag(diag, "First release: rendering all commits")
		fmt.Fprintln(out, changelog.NoUpdates)
		return nil
	}

	since, found := resolveTag(repo, cfg.TagStrategy)
	if found {
		printDiag(diag, fmt.Sprintf("Changes since %s", since))
	} else {
		printDiag(diag, "First release: rendering all commits")
	}

	subjects := repo.Subjects(since)
	if len(subjects) == 0 {
		fmt.Fprintln(out, changelog.NoUpdates)
		return nil
	}

	commits := changelog.Classify(subjects)
	if len(commits) == 0 {
		fmt.Fprintln(out, changelog.NoCategorizedUpdates)
		return nil
	}

	grouped := changelog.Group(commits)

	if cfg.Format == config.FormatTerminal {
		return changelog.FormatTerminal(grouped, out, changelog.FormatOptions{Plain: cfg.Plain})
	}
	return changelog.RenderMarkdown(grouped, out)
}

// applyGenerateFlags overrides config values with explicitly set flags and
// re-validates the result.
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Configuration) error {
	if cmd.Flags().Changed("repo") {
		cfg.RepoPath = generateRepoFlag
	}
	if cmd.Flags().Changed("tag-strategy") {
		cfg.TagStrategy = generateStrategyFlag
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = generateFormatFlag
	}
	if cmd.Flags().Changed("plain") {
		cfg.Plain = generatePlainFlag
	}
	return config.ValidateConfigValues(cfg, "flags")
}

// resolveTag picks the reference to diff from per the configured strategy.
// found=false means no usable tag: render from the beginning of history.
func resolveTag(repo *gitrepo.Repository, strategy string) (string, bool) {
	if strategy == config.StrategyPrevious {
		return repo.PreviousTag()
	}
	return repo.LatestTag()
}

// printDiag writes the single status line to the diagnostic channel. It
// never writes to stdout, which carries only the rendered changelog.
func printDiag(w io.Writer, msg string) {
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintln(w, dim(msg))
}
