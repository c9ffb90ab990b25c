// Package console implements the operator commands read from standard input.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/clock"
	"go.uber.org/zap"
)

const defaultShareRetention = 24 * time.Hour

// Config tunes console maintenance commands.
type Config struct {
	// ShareRetention is how long processed shares survive cleanupdb.
	ShareRetention time.Duration
}

// Dependencies groups the collaborators the commands act on.
type Dependencies struct {
	Sync          Sync
	Blocks        Blocks
	Solvers       Solvers
	Shares        ShareCleaner
	Notifications Notifications
	API           APILock
	Difficulty    Difficulty
	Wallet        Wallet
	Status        StatusReporter
	Consensus     Consensus
}

type command struct {
	name  string
	usage string
	help  string
	run   func(ctx context.Context, args []string, out io.Writer) error
}

// Console dispatches command lines to their handlers.
type Console struct {
	logger    *zap.Logger
	deps      Dependencies
	retention time.Duration
	clock     clock.Clock
	commands  []command
	byName    map[string]command
}

func NewConsole(cfg Config, deps Dependencies, logger *zap.Logger) (*Console, error) {
	switch {
	case deps.Sync == nil:
		return nil, errors.New("console sync engine is required")
	case deps.Blocks == nil:
		return nil, errors.New("console block repository is required")
	case deps.Solvers == nil:
		return nil, errors.New("console solved index is required")
	case deps.Shares == nil:
		return nil, errors.New("console share store is required")
	case deps.Notifications == nil:
		return nil, errors.New("console notification store is required")
	case deps.API == nil:
		return nil, errors.New("console api lock is required")
	case deps.Difficulty == nil:
		return nil, errors.New("console difficulty controller is required")
	case deps.Wallet == nil:
		return nil, errors.New("console wallet is required")
	case deps.Status == nil:
		return nil, errors.New("console status reporter is required")
	case deps.Consensus == nil:
		return nil, errors.New("console consensus is required")
	}
	if cfg.ShareRetention <= 0 {
		cfg.ShareRetention = defaultShareRetention
	}

	c := &Console{
		logger:    logger.Named("console"),
		deps:      deps,
		retention: cfg.ShareRetention,
		clock:     clock.System{},
	}
	c.commands = []command{
		{name: "help", help: "shows this help message", run: c.help},
		{name: "status", help: "shows sync, mining and peer status", run: c.status},
		{name: "balance", help: "shows the pool wallet balance", run: c.balance},
		{name: "address", help: "shows the pool wallet primary address", run: c.address},
		{name: "pausesync", help: "stops requesting blocks", run: c.pauseSync},
		{name: "resumesync", help: "resumes requesting blocks", run: c.resumeSync},
		{name: "getblock", usage: "<blocknum>", help: "requests a block from the network", run: c.getBlock},
		{name: "block", usage: "<blocknum>", help: "shows a cached block and its solvers", run: c.block},
		{name: "cleanupdb", help: "removes old blocks and processed shares from storage", run: c.cleanUpDB},
		{name: "lockapi", help: "rejects miners not seen before", run: c.lockAPI},
		{name: "unlockapi", help: "accepts every miner again", run: c.unlockAPI},
		{name: "addnote", usage: "<primary|info|success|warning|danger> <text>", help: "creates a disabled notification", run: c.addNote},
		{name: "enablenote", usage: "<id>", help: "shows a notification to miners", run: c.enableNote},
		{name: "disablenote", usage: "<id>", help: "hides a notification", run: c.disableNote},
		{name: "difficulty", usage: "[difficulty]", help: "shows or sets the pool difficulty", run: c.difficulty},
		{name: "exit", help: "stops the pool"},
	}
	c.byName = make(map[string]command, len(c.commands)+1)
	for _, cmd := range c.commands {
		c.byName[cmd.name] = cmd
	}
	c.byName["quit"] = c.byName["exit"]

	return c, nil
}

// Run reads commands from in until exit is typed or ctx is done. It returns
// nil on exit. When in is exhausted it waits for ctx.
func (c *Console) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			c.logger.Warn("console input failed", zap.Error(err))
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				<-ctx.Done()
				return ctx.Err()
			}
			if !c.Execute(ctx, line, out) {
				return nil
			}
		}
	}
}

// Execute runs one command line and reports whether the console should keep
// reading.
func (c *Console) Execute(ctx context.Context, line string, out io.Writer) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	name := strings.ToLower(fields[0])
	cmd, ok := c.byName[name]
	if !ok {
		fmt.Fprintf(out, "Unknown command %q, type help for the list of commands.\n", fields[0])
		return true
	}
	if cmd.name == "exit" {
		return false
	}

	if err := cmd.run(ctx, fields[1:], out); err != nil {
		var usage *usageError
		if !errors.As(err, &usage) {
			c.logger.Warn("command failed", zap.String("command", cmd.name), zap.Error(err))
		}
		fmt.Fprintf(out, "Error: %v\n", err)
	}
	return true
}

type usageError struct {
	cmd command
}

func (e *usageError) Error() string {
	return strings.TrimSpace("usage: " + e.cmd.name + " " + e.cmd.usage)
}

func (c *Console) usage(name string) error {
	return &usageError{cmd: c.byName[name]}
}
