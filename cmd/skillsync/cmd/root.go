package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skillstack/skillsync/internal/config"
	"github.com/skillstack/skillsync/internal/logging"
	"github.com/skillstack/skillsync/internal/syncer"
	"github.com/skillstack/skillsync/internal/target"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"

	// Global flags
	flagTarget string
	flagScope  string
	flagSource string
	flagConfig string
	verbose    bool
)

// errUsage marks errors whose message (or help text) was already shown;
// main exits 1 without the Error: prefix.
var errUsage = errors.New("usage")

// IsUsage reports whether err is a usage error.
func IsUsage(err error) bool {
	return errors.Is(err, errUsage)
}

var rootCmd = &cobra.Command{
	Use:   "skillsync",
	Short: "Sync skills into AI assistant destinations",
	Long: `skillsync installs, lists, and removes skills for AI assistants.

Skills are directories of files (prompts, documentation, helpers) kept
in a source repository and copied verbatim into the destination
directory of the selected assistant. Installing overwrites any
previous version of the skill; there is no merging.

Supported targets:
  - opencode:    Open Code   (~/.config/opencode/skills/, global only)
  - antigravity: Antigravity (~/.gemini/antigravity/skills/ or the
                 workspace's .agent/skills/, selected with --scope)

Examples:
  skillsync install --all --target opencode
  skillsync install git-formatter --target antigravity --scope workspace
  skillsync list --target opencode
  skillsync remove git-formatter --target antigravity`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return errUsage
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTarget, "target", "", "target assistant (opencode or antigravity)")
	rootCmd.PersistentFlags().StringVar(&flagScope, "scope", "global", "installation scope (global or workspace)")
	rootCmd.PersistentFlags().StringVar(&flagSource, "source", "", "source skills directory (default: the repository containing skillsync)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ~/.config/skillsync/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("skillsync {{.Version}}\n")
}

// runContext holds everything an operation needs after the fatal
// configuration phase: parsed config, logger, resolved roots, and a
// ready syncer.
type runContext struct {
	cfg    *config.Config
	logger *slog.Logger
	res    target.Resolution
	syncer *syncer.Syncer
}

// newRunContext performs the fatal configuration phase shared by the
// install, list, and remove commands: load config, resolve the target
// and scope, resolve the source root, and print the banner. Any error
// here terminates the run before filesystem operations begin.
func newRunContext(cmd *cobra.Command) (*runContext, error) {
	out := cmd.OutOrStdout()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}

	cfgPath := flagConfig
	if cfgPath == "" {
		cfgPath = config.DefaultPath(home)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	cfg.RegisterTargets()

	logger := logging.NewFromConfig(cfg, verbose)

	if flagTarget == "" {
		return nil, fmt.Errorf("--target is required (use one of: %s)", strings.Join(target.ListKnownTargets(), ", "))
	}

	scope := target.Scope(flagScope)
	if scope != target.ScopeGlobal && scope != target.ScopeWorkspace {
		return nil, fmt.Errorf("invalid scope %q: use global or workspace", flagScope)
	}

	res, err := target.Resolve(flagTarget, scope, home, cwd)
	if err != nil {
		return nil, err
	}
	if res.Downgraded {
		fmt.Fprintf(out, "Warning: %s does not support workspace scope. Using global scope.\n",
			target.KnownTargets[res.Target].Name)
	}

	sourceOverride := flagSource
	if sourceOverride == "" {
		sourceOverride = cfg.Sync.SourceRoot
	}
	sourceRoot, err := target.SourceRoot(sourceOverride)
	if err != nil {
		return nil, err
	}

	rc := &runContext{
		cfg:    cfg,
		logger: logger,
		res:    res,
		syncer: &syncer.Syncer{
			SourceRoot: sourceRoot,
			DestRoot:   res.DestRoot,
			Exclude:    cfg.Sync.Exclude,
			Out:        out,
			Logger:     logger,
		},
	}

	rc.printBanner(out)
	return rc, nil
}

const bannerWidth = 60

func (rc *runContext) printBanner(out io.Writer) {
	sep := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(out, sep)
	fmt.Fprintf(out, "Target:      %s\n", strings.ToUpper(rc.res.Target))
	fmt.Fprintf(out, "Source:      %s\n", rc.syncer.SourceRoot)
	fmt.Fprintf(out, "Destination: %s\n", rc.res.DestRoot)
	if target.KnownTargets[rc.res.Target].WorkspaceMarker != "" {
		fmt.Fprintf(out, "Scope:       %s\n", strings.ToUpper(string(rc.res.Scope)))
	}
	fmt.Fprintln(out, sep)
}

func (rc *runContext) printSeparator(out io.Writer) {
	fmt.Fprintln(out, strings.Repeat("=", bannerWidth))
}
