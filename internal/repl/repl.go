// Package repl implements the interactive dashboard shell.
package repl

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/habitual-app/habitual/internal/app"
	"github.com/habitual-app/habitual/internal/display"
	"github.com/habitual-app/habitual/internal/types"
)

// REPL represents the interactive shell
type REPL struct {
	app      *app.App
	rl       *readline.Instance
	ctx      context.Context
	commands map[string]CommandHandler
}

// CommandHandler handles a specific command
type CommandHandler func(args []string) error

// New creates a new REPL instance
func New(a *app.App) (*REPL, error) {
	if a == nil {
		return nil, fmt.Errorf("app is required")
	}
	r := &REPL{
		app:      a,
		commands: make(map[string]CommandHandler),
	}
	r.registerCommands()
	return r, nil
}

// Run starts the REPL loop
func (r *REPL) Run(ctx context.Context) error {
	r.ctx = ctx

	cyan := color.New(color.FgCyan).SprintFunc()
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            cyan("habitual> "),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()
	r.rl = rl

	r.printWelcome()
	r.showWeek()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			} else if err == io.EOF {
				fmt.Println("\nGoodbye!")
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := r.processInput(line); err != nil {
			if err == io.EOF {
				return nil
			}
			red := color.New(color.FgRed).SprintFunc()
			fmt.Printf("%s %v\n", red("Error:"), err)
		}
	}
}

// processInput processes a single line of input
func (r *REPL) processInput(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	command := parts[0]
	args := parts[1:]

	handler, ok := r.commands[command]
	if !ok {
		yellow := color.New(color.FgYellow).SprintFunc()
		fmt.Printf("%s Unknown command %q. Type 'help' for available commands.\n", yellow("Note:"), command)
		return nil
	}
	return handler(args)
}

// registerCommands registers all built-in commands
func (r *REPL) registerCommands() {
	r.commands["help"] = r.cmdHelp
	r.commands["?"] = r.cmdHelp
	r.commands["exit"] = r.cmdExit
	r.commands["quit"] = r.cmdExit
	r.commands["week"] = r.cmdWeek
	r.commands["next"] = r.cmdNext
	r.commands["prev"] = r.cmdPrev
	r.commands["today"] = r.cmdToday
	r.commands["add"] = r.cmdAdd
	r.commands["done"] = r.cmdDone
	r.commands["remind"] = r.cmdRemind
	r.commands["skip"] = r.cmdSkip
	r.commands["rm"] = r.cmdRemove
	r.commands["insights"] = r.cmdInsights
}

// printWelcome prints the welcome message
func (r *REPL) printWelcome() {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Printf("\n%s\n", cyan("Welcome to habitual"))
	fmt.Println("Weekly habit dashboard")
	fmt.Println()
	fmt.Println("Type 'help' for available commands, 'exit' to quit")
}

func (r *REPL) showWeek() {
	display.Week(r.rl.Stdout(), r.app.Window(), r.app.Habits(), r.app.Reminders(), r.app.Stats())
}

// cmdHelp shows help information
func (r *REPL) cmdHelp(args []string) error {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("\n%s\n\n", cyan("Available Commands:"))

	commands := []struct {
		name string
		desc string
	}{
		{"week", "Show the dashboard for the viewed week"},
		{"next / prev / today", "Navigate between weeks"},
		{"add habit|reminder <title>", "Create a habit or reminder"},
		{"done <habit#> <day>", "Toggle completion (day: Sun..Sat or ISO date)"},
		{"remind <reminder#>", "Toggle a reminder done (dated today)"},
		{"skip <habit#> <day>", "Hide a habit for a single day"},
		{"rm habit|reminder <#>", "Archive (with history) or delete"},
		{"insights", "Fetch motivational tips"},
		{"help, ?", "Show this help message"},
		{"exit, quit", "Exit the shell"},
	}
	for _, cmd := range commands {
		fmt.Printf("  %s  %s\n", green(fmt.Sprintf("%-28s", cmd.name)), cmd.desc)
	}
	fmt.Println()
	return nil
}

// cmdExit exits the REPL
func (r *REPL) cmdExit(args []string) error {
	fmt.Println("Goodbye!")
	return io.EOF
}

func (r *REPL) cmdWeek(args []string) error {
	r.showWeek()
	return nil
}

func (r *REPL) cmdNext(args []string) error {
	r.app.NextWeek()
	r.showWeek()
	return nil
}

func (r *REPL) cmdPrev(args []string) error {
	r.app.PrevWeek()
	r.showWeek()
	return nil
}

func (r *REPL) cmdToday(args []string) error {
	r.app.CurrentWeek()
	r.showWeek()
	return nil
}

func (r *REPL) cmdAdd(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: add habit|reminder <title>")
	}
	kind := types.Kind(args[0])
	if !kind.IsValid() {
		return fmt.Errorf("unknown kind %q (use habit or reminder)", args[0])
	}
	title := strings.Join(args[1:], " ")
	if err := r.app.AddHabit(r.ctx, title, kind, types.CategoryOther); err != nil {
		return err
	}
	r.showWeek()
	return nil
}

func (r *REPL) cmdDone(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: done <habit#> <day>")
	}
	h, err := r.habitAt(args[0])
	if err != nil {
		return err
	}
	isoDate, err := r.resolveDay(args[1])
	if err != nil {
		return err
	}
	if err := r.app.ToggleCompletion(r.ctx, h.ID, isoDate); err != nil {
		return err
	}
	r.showWeek()
	return nil
}

func (r *REPL) cmdRemind(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: remind <reminder#>")
	}
	reminders := r.app.Reminders()
	rem, err := rowAt(reminders, args[0])
	if err != nil {
		return err
	}
	if err := r.app.ToggleReminderDone(r.ctx, rem.ID); err != nil {
		return err
	}
	r.showWeek()
	return nil
}

func (r *REPL) cmdSkip(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: skip <habit#> <day>")
	}
	h, err := r.habitAt(args[0])
	if err != nil {
		return err
	}
	isoDate, err := r.resolveDay(args[1])
	if err != nil {
		return err
	}
	if err := r.app.SkipDay(r.ctx, h.ID, isoDate); err != nil {
		return err
	}
	r.showWeek()
	return nil
}

func (r *REPL) cmdRemove(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: rm habit|reminder <#>")
	}
	var rows []*types.Habit
	switch args[0] {
	case "habit":
		rows = r.app.Habits()
	case "reminder":
		rows = r.app.Reminders()
	default:
		return fmt.Errorf("unknown kind %q (use habit or reminder)", args[0])
	}
	h, err := rowAt(rows, args[1])
	if err != nil {
		return err
	}
	if err := r.app.Remove(r.ctx, h.ID); err != nil {
		return err
	}
	r.showWeek()
	return nil
}

func (r *REPL) cmdInsights(args []string) error {
	gray := color.New(color.FgHiBlack).SprintFunc()
	fmt.Println(gray("Fetching insights..."))

	// Latest-wins: typing insights again supersedes the in-flight
	// request.
	r.app.RequestInsights(func(tips []string) {
		display.Tips(r.rl.Stdout(), tips)
		r.rl.Refresh()
	})
	return nil
}

func (r *REPL) habitAt(arg string) (*types.Habit, error) {
	return rowAt(r.app.Habits(), arg)
}

func rowAt(rows []*types.Habit, arg string) (*types.Habit, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(rows) {
		return nil, fmt.Errorf("no row %q (1-%d shown)", arg, len(rows))
	}
	return rows[n-1], nil
}

// resolveDay maps a short weekday name within the viewed week, or a
// full ISO date, to the day to mutate.
func (r *REPL) resolveDay(arg string) (string, error) {
	w := r.app.Window()
	for _, day := range w.Days {
		if strings.EqualFold(arg, day.Short) || strings.EqualFold(arg, day.Weekday) {
			return day.ISODate, nil
		}
	}
	if _, err := time.Parse(types.ISODate, arg); err == nil {
		return arg, nil
	}
	return "", fmt.Errorf("unknown day %q (use Sun..Sat or YYYY-MM-DD)", arg)
}
