// Package cmd implements the CLI command structure for planner.
package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/SaraLubadah/planner/internal/config"
	"github.com/SaraLubadah/planner/internal/logging"
	"github.com/SaraLubadah/planner/internal/reminder"
	"github.com/SaraLubadah/planner/internal/task"
	"github.com/SaraLubadah/planner/internal/ui"
	"github.com/SaraLubadah/planner/internal/view"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the planner CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("planner", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	logger := logging.FromConfig(cfg)

	// Determine the subcommand. With no arguments, open the TUI on a
	// terminal and print the list otherwise.
	subcommand := ""
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}
	if subcommand == "" {
		if ui.IsTTY(os.Stdout) {
			subcommand = "tui"
		} else {
			subcommand = "ls"
		}
	}

	switch subcommand {
	case "add":
		return addCommand(cfg, logger, remainingArgs)
	case "ls", "list":
		return lsCommand(cfg, logger, remainingArgs)
	case "done", "toggle":
		return doneCommand(cfg, logger, remainingArgs)
	case "rm", "remove":
		return rmCommand(cfg, logger, remainingArgs)
	case "clear":
		return clearCommand(cfg, logger, remainingArgs)
	case "reminders":
		return remindersCommand(cfg, logger, remainingArgs)
	case "tui":
		return tuiCommand(ctx, cfg, logger, remainingArgs)
	case "doctor":
		return doctorCommand(cfg, logger, remainingArgs)
	case "init":
		return initCommand(cfg, remainingArgs)
	case "version":
		return versionCommand()
	case "help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// addCommand appends a new task to the checklist.
func addCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("planner add", flag.ContinueOnError)
	subject := fs.String("subject", "", "Subject the task belongs to (e.g., a course name)")
	description := fs.String("desc", "", "Task description")
	due := fs.String("due", "", "Due date (YYYY-MM-DD)")
	priorityStr := fs.String("priority", "", "Priority (low|medium|high, default medium)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	priority, err := task.ParsePriority(*priorityStr)
	if err != nil {
		return err
	}

	store := task.Open(cfg.DataFile, logger)
	added, err := store.Add(*subject, *description, *due, priority)
	if err != nil {
		return err
	}

	fmt.Printf("Added %s\n", added.ID)
	printState(os.Stdout, store)
	return nil
}

// lsCommand prints the grouped, sorted checklist with reminders.
func lsCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("planner ls", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	store := task.Open(cfg.DataFile, logger)
	printState(os.Stdout, store)
	return nil
}

// doneCommand toggles completion on a task.
func doneCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("planner done", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) != 1 {
		return fmt.Errorf("usage: planner done <id>")
	}

	store := task.Open(cfg.DataFile, logger)
	id, err := resolveID(store, fs.Args()[0])
	if err != nil {
		return err
	}
	// Unknown ids are a silent no-op, safe to repeat.
	if err := store.ToggleComplete(id); err != nil {
		return err
	}
	printState(os.Stdout, store)
	return nil
}

// rmCommand removes a task, asking first unless -y is given.
func rmCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("planner rm", flag.ContinueOnError)
	yes := fs.Bool("y", false, "Skip confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) != 1 {
		return fmt.Errorf("usage: planner rm [-y] <id>")
	}

	store := task.Open(cfg.DataFile, logger)
	id, err := resolveID(store, fs.Args()[0])
	if err != nil {
		return err
	}

	if t, ok := store.Get(id); ok && cfg.ConfirmDestructive && !*yes {
		if !confirm(fmt.Sprintf("Delete %q due %s?", subjectLabel(t), t.DueDate)) {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := store.Remove(id); err != nil {
		return err
	}
	printState(os.Stdout, store)
	return nil
}

// clearCommand removes every completed task, asking first unless -y is given.
func clearCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("planner clear", flag.ContinueOnError)
	yes := fs.Bool("y", false, "Skip confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	store := task.Open(cfg.DataFile, logger)
	if cfg.ConfirmDestructive && !*yes {
		if !confirm("Remove all completed tasks?") {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	removed, err := store.RemoveCompleted()
	if err != nil {
		return err
	}
	fmt.Printf("Removed %d completed task(s)\n", removed)
	printState(os.Stdout, store)
	return nil
}

// remindersCommand prints only the reminder report.
func remindersCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("planner reminders", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	store := task.Open(cfg.DataFile, logger)
	report := reminder.Evaluate(store.Tasks(), reminder.Today())
	printReminders(os.Stdout, report)
	return nil
}

// tuiCommand launches the TUI.
func tuiCommand(ctx context.Context, cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("planner tui", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	store := task.Open(cfg.DataFile, logger)
	return ui.RunTUI(ctx, cfg, store, logger)
}

// initCommand writes starter files: config, schema, and an empty task file.
func initCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("planner init", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	wrote := false
	if _, err := os.Stat("planner.toml"); os.IsNotExist(err) {
		if err := os.WriteFile("planner.toml", []byte(config.ExampleConfig()), 0644); err != nil {
			return fmt.Errorf("writing planner.toml: %w", err)
		}
		fmt.Println("Wrote planner.toml")
		wrote = true
	}
	if _, err := os.Stat(cfg.SchemaFile); os.IsNotExist(err) {
		if err := os.WriteFile(cfg.SchemaFile, []byte(task.DefaultSchema), 0644); err != nil {
			return fmt.Errorf("writing schema file: %w", err)
		}
		fmt.Printf("Wrote %s\n", cfg.SchemaFile)
		wrote = true
	}
	if _, err := os.Stat(cfg.DataFile); os.IsNotExist(err) {
		if err := task.NewFile().Save(cfg.DataFile); err != nil {
			return fmt.Errorf("writing task file: %w", err)
		}
		fmt.Printf("Wrote %s\n", cfg.DataFile)
		wrote = true
	}
	if !wrote {
		fmt.Println("Nothing to do, all files exist.")
	}
	return nil
}

// doctorCommand checks config, data file, and schema validity.
func doctorCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("planner doctor", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Println("Planner Doctor")
	fmt.Println("==============")
	fmt.Println()

	allOK := true

	fmt.Printf("Working directory: %s\n", cfg.ProjectRoot)
	if _, err := os.Stat(cfg.ProjectRoot); err != nil {
		fmt.Printf("  ❌ Error: %v\n", err)
		allOK = false
	} else {
		fmt.Println("  ✅ OK")
	}
	fmt.Println()

	fmt.Printf("Task file: %s\n", cfg.DataFile)
	info, err := os.Stat(cfg.DataFile)
	switch {
	case os.IsNotExist(err):
		fmt.Println("  ⚠️  Not found (created on first add, or run 'planner init')")
	case err != nil:
		fmt.Printf("  ❌ Error: %v\n", err)
		allOK = false
	case info.IsDir():
		fmt.Println("  ❌ Error: path is a directory")
		allOK = false
	default:
		f, loadErr := task.Load(cfg.DataFile)
		if loadErr != nil {
			fmt.Printf("  ❌ Load error: %v\n", loadErr)
			allOK = false
			break
		}
		fmt.Println("  ✅ OK")
		result := f.Validate(task.ValidationOptions{SchemaPath: cfg.SchemaFile})
		for _, w := range result.Warnings {
			fmt.Printf("  ⚠️  %s\n", w)
		}
		if result.Valid {
			fmt.Println("  ✅ Valid")
		} else {
			fmt.Println("  ❌ Validation failed:")
			for _, e := range result.Errors {
				fmt.Printf("     - %v\n", e)
			}
			allOK = false
		}
		if *verbose {
			fmt.Printf("  Tasks: %d\n", len(f.Tasks))
			for _, t := range f.Tasks {
				fmt.Printf("    - [%s] %s due %s\n", t.Priority, subjectLabel(t), t.DueDate)
			}
		}
	}
	fmt.Println()

	fmt.Printf("Schema file: %s\n", cfg.SchemaFile)
	if info, err := os.Stat(cfg.SchemaFile); err != nil {
		if os.IsNotExist(err) {
			fmt.Println("  ⚠️  Not found (run 'planner init' to create it)")
		} else {
			fmt.Printf("  ❌ Error: %v\n", err)
			allOK = false
		}
	} else if info.IsDir() {
		fmt.Println("  ❌ Error: path is a directory")
		allOK = false
	} else {
		fmt.Println("  ✅ OK")
	}
	fmt.Println()

	if allOK {
		fmt.Println("✅ All checks passed!")
		return nil
	}
	fmt.Println("⚠️  Some checks failed. Planner may not function correctly.")
	return fmt.Errorf("doctor checks failed")
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Printf("planner version %s\n", Version)
	return nil
}

// printState prints the grouped view and the reminder report, the
// re-derivation every caller does after a mutation.
func printState(w io.Writer, store *task.Store) {
	printReminders(w, reminder.Evaluate(store.Tasks(), reminder.Today()))
	printOverview(w, view.Build(store.Tasks()))
}

// printOverview prints the grouped, sorted checklist.
func printOverview(w io.Writer, o *view.Overview) {
	if o == nil {
		fmt.Fprintln(w, "No tasks yet. Add one with: planner add")
		return
	}
	for _, g := range o.Groups {
		subject := g.Subject
		if subject == "" {
			subject = "(no subject)"
		}
		fmt.Fprintf(w, "%s (%d):\n", subject, g.Count())
		for _, t := range g.Tasks {
			printTask(w, t)
		}
		fmt.Fprintln(w)
	}
}

// printReminders prints the reminder report, or nothing at all when
// there are no reminders.
func printReminders(w io.Writer, r *reminder.Report) {
	if r == nil {
		return
	}
	if n := r.OverdueCount(); n > 0 {
		fmt.Fprintf(w, "⏰ Overdue (%d):\n", n)
		for _, t := range r.Overdue {
			printTask(w, t)
		}
	}
	if n := r.DueTodayCount(); n > 0 {
		fmt.Fprintf(w, "📅 Due today (%d):\n", n)
		for _, t := range r.DueToday {
			printTask(w, t)
		}
	}
	fmt.Fprintln(w)
}

// printTask prints a single task line.
func printTask(w io.Writer, t task.Task) {
	check := " "
	if t.Completed {
		check = "x"
	}
	line := fmt.Sprintf("  [%s] %s  %-6s %s", check, t.DueDate, t.Priority, subjectLabel(t))
	fmt.Fprintf(w, "%s  (%s)\n", line, shortID(t.ID))
}

// subjectLabel returns display text for a task.
func subjectLabel(t task.Task) string {
	switch {
	case t.Subject != "" && t.Description != "":
		return t.Subject + ": " + t.Description
	case t.Subject != "":
		return t.Subject
	case t.Description != "":
		return t.Description
	default:
		return "(untitled)"
	}
}

// shortID returns the id prefix shown in listings. Any unique prefix
// is accepted back by done/rm.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveID expands a unique id prefix to a full task id. An unknown
// id passes through unchanged so store no-op semantics apply; an
// ambiguous prefix is an error.
func resolveID(store *task.Store, arg string) (string, error) {
	if arg == "" {
		return "", fmt.Errorf("missing task id")
	}
	if _, ok := store.Get(arg); ok {
		return arg, nil
	}
	var match string
	for _, t := range store.Tasks() {
		if strings.HasPrefix(t.ID, arg) {
			if match != "" {
				return "", fmt.Errorf("ambiguous id prefix %q", arg)
			}
			match = t.ID
		}
	}
	if match == "" {
		return arg, nil
	}
	return match, nil
}

// confirm asks a y/N question on the terminal.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Planner - A single-user study task checklist")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  planner [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui            Open the terminal UI (default on a terminal)")
	fmt.Fprintln(w, "  ls             Print tasks grouped by subject (default otherwise)")
	fmt.Fprintln(w, "  add            Add a task")
	fmt.Fprintln(w, "  done <id>      Toggle a task's completion")
	fmt.Fprintln(w, "  rm [-y] <id>   Remove a task")
	fmt.Fprintln(w, "  clear [-y]     Remove all completed tasks")
	fmt.Fprintln(w, "  reminders      Print overdue and due-today tasks")
	fmt.Fprintln(w, "  init           Write starter config, schema, and task files")
	fmt.Fprintln(w, "  doctor         Check config and task file validity")
	fmt.Fprintln(w, "  version        Show version information")
	fmt.Fprintln(w, "  help           Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Add Options (use with 'add' command):")
	fmt.Fprintln(w, "  -subject string")
	fmt.Fprintln(w, "        Subject the task belongs to (e.g., a course name)")
	fmt.Fprintln(w, "  -desc string")
	fmt.Fprintln(w, "        Task description")
	fmt.Fprintln(w, "  -due string")
	fmt.Fprintln(w, "        Due date (YYYY-MM-DD, required)")
	fmt.Fprintln(w, "  -priority string")
	fmt.Fprintln(w, "        Priority (low|medium|high, default medium)")
}
