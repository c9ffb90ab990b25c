package console

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/wallet"
)

func (c *Console) help(_ context.Context, _ []string, out io.Writer) error {
	fmt.Fprintln(out, "Ixian LitePool commands:")
	for _, cmd := range c.commands {
		fmt.Fprintf(out, "\t%-58s - %s\n", strings.TrimSpace(cmd.name+" "+cmd.usage), cmd.help)
	}
	return nil
}

func (c *Console) status(ctx context.Context, _ []string, out io.Writer) error {
	snap := c.deps.Status.Snapshot(ctx)

	fmt.Fprintf(out, "Last Block Height: %d\n", snap.LastBlockHeight)
	fmt.Fprintf(out, "Network Block Height: %d\n", snap.NetworkHeight)
	fmt.Fprintf(out, "Connections: %d\n", snap.Peers)
	fmt.Fprintf(out, "Sync Paused: %t\n", snap.SyncPaused)
	fmt.Fprintf(out, "Sync Backlog: %d\n", snap.Backlog)
	if r := snap.Request; r != nil {
		fmt.Fprintf(out, "Requesting Block: %d (%s, retries %d)\n", r.BlockNum, r.Stage, r.Retries)
	}
	if b := snap.ActiveBlock; b != nil {
		fmt.Fprintf(out, "Active Block: %d (difficulty %d, since %s)\n", b.BlockNum, b.Difficulty, b.MiningStart.Format("2006-01-02 15:04:05"))
	} else {
		fmt.Fprintln(out, "Active Block: none")
	}
	fmt.Fprintf(out, "Pool Difficulty: %d\n", snap.PoolDifficulty)
	fmt.Fprintf(out, "Share Difficulty: %d\n", snap.ShareDifficulty)
	fmt.Fprintf(out, "API Locked: %t\n", c.deps.API.Locked())
	return nil
}

func (c *Console) balance(ctx context.Context, _ []string, out io.Writer) error {
	balance, err := c.deps.Wallet.Balance(ctx, c.deps.Wallet.PrimaryAddress())
	if err != nil {
		return fmt.Errorf("get balance: %w", err)
	}
	fmt.Fprintf(out, "Balance: %s IXI\n", balance.String())
	return nil
}

func (c *Console) address(_ context.Context, _ []string, out io.Writer) error {
	fmt.Fprintf(out, "Primary address: %s\n", wallet.EncodeAddress(c.deps.Wallet.PrimaryAddress()))
	return nil
}

func (c *Console) pauseSync(_ context.Context, _ []string, out io.Writer) error {
	c.deps.Sync.Pause()
	fmt.Fprintln(out, "Block sync paused.")
	return nil
}

func (c *Console) resumeSync(_ context.Context, _ []string, out io.Writer) error {
	c.deps.Sync.Resume()
	fmt.Fprintln(out, "Block sync resumed.")
	return nil
}

func (c *Console) getBlock(_ context.Context, args []string, out io.Writer) error {
	blockNum, err := c.number("getblock", args)
	if err != nil {
		return err
	}
	if !c.deps.Sync.RequestBlock(blockNum) {
		fmt.Fprintf(out, "Block %d is already being requested.\n", blockNum)
		return nil
	}
	fmt.Fprintf(out, "Requesting block number %d from network.\n", blockNum)
	return nil
}

func (c *Console) block(_ context.Context, args []string, out io.Writer) error {
	blockNum, err := c.number("block", args)
	if err != nil {
		return err
	}
	blk, ok := c.deps.Blocks.Get(blockNum)
	if !ok {
		return fmt.Errorf("block %d has not been retrieved: %w", blockNum, model.ErrNotFound)
	}

	fmt.Fprintf(out, "Block Number: %d\n", blk.BlockNum)
	fmt.Fprintf(out, "Block Version: %d\n", blk.Version)
	fmt.Fprintf(out, "Block Difficulty: %d\n", blk.Difficulty)
	fmt.Fprintf(out, "Block Checksum: %s\n", base64.StdEncoding.EncodeToString(blk.Checksum))
	for _, s := range c.deps.Solvers.Solvers(blockNum) {
		fmt.Fprintf(out, "Solved By: %s in block %d (tx %s, reward %s)\n",
			wallet.EncodeAddress(s.SolverAddress), s.MinedIn, s.TxID, s.Reward.String())
	}
	return nil
}

func (c *Console) cleanUpDB(ctx context.Context, _ []string, out io.Writer) error {
	var errs []error

	height := c.deps.Sync.Status().NetworkHeight
	if window := c.deps.Consensus.RedactedWindowSize(); height > window {
		horizon := height - window
		fmt.Fprintf(out, "Removing blocks below %d from storage...\n", horizon)
		if err := c.deps.Blocks.CleanUpOlderThan(ctx, horizon); err != nil {
			errs = append(errs, err)
		}
	}

	cutoff := c.clock.Now().Add(-c.retention)
	fmt.Fprintln(out, "Removing processed shares from storage...")
	if err := c.deps.Shares.CleanUpShares(ctx, cutoff); err != nil {
		errs = append(errs, fmt.Errorf("clean up shares: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	fmt.Fprintln(out, "Cleanup complete.")
	return nil
}

func (c *Console) lockAPI(_ context.Context, _ []string, out io.Writer) error {
	c.deps.API.Lock()
	fmt.Fprintln(out, "API locked, only known miners are served.")
	return nil
}

func (c *Console) unlockAPI(_ context.Context, _ []string, out io.Writer) error {
	c.deps.API.Unlock()
	fmt.Fprintln(out, "API unlocked.")
	return nil
}

func (c *Console) addNote(ctx context.Context, args []string, out io.Writer) error {
	if len(args) < 2 {
		return c.usage("addnote")
	}
	typ, ok := model.ParseNotificationType(strings.ToLower(args[0]))
	if !ok {
		return c.usage("addnote")
	}
	text := strings.Join(args[1:], " ")

	id, err := c.deps.Notifications.AddNotification(ctx, model.Notification{Type: typ, Text: text})
	if err != nil {
		return fmt.Errorf("add notification: %w", err)
	}
	fmt.Fprintf(out, "Created notification %d (%s): %s\nUse enablenote %d to show it.\n", id, typ, text, id)
	return nil
}

func (c *Console) enableNote(ctx context.Context, args []string, out io.Writer) error {
	return c.setNote(ctx, "enablenote", args, true, out)
}

func (c *Console) disableNote(ctx context.Context, args []string, out io.Writer) error {
	return c.setNote(ctx, "disablenote", args, false, out)
}

func (c *Console) setNote(ctx context.Context, name string, args []string, active bool, out io.Writer) error {
	id, err := c.number(name, args)
	if err != nil {
		return err
	}
	if err := c.deps.Notifications.SetNotificationActive(ctx, id, active); err != nil {
		return fmt.Errorf("update notification %d: %w", id, err)
	}
	state := "disabled"
	if active {
		state = "enabled"
	}
	fmt.Fprintf(out, "Notification %d %s.\n", id, state)
	return nil
}

func (c *Console) difficulty(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintf(out, "Pool Difficulty: %d\n", c.deps.Difficulty.Adjusted())
		fmt.Fprintf(out, "Share Difficulty: %d\n", c.deps.Difficulty.Difficulty())
		return nil
	}
	value, err := c.number("difficulty", args)
	if err != nil {
		return err
	}
	if err := c.deps.Difficulty.SetDifficulty(ctx, value); err != nil {
		return fmt.Errorf("set difficulty: %w", err)
	}
	fmt.Fprintf(out, "Pool difficulty set to %d.\n", value)
	return nil
}

func (c *Console) number(name string, args []string) (uint64, error) {
	if len(args) != 1 {
		return 0, c.usage(name)
	}
	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0, c.usage(name)
	}
	return n, nil
}
