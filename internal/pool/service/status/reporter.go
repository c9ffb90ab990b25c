package status

import (
	"context"
	"errors"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/service/syncer"
	"go.uber.org/zap"
)

// ActiveBlock is the mining block as shown to operators.
type ActiveBlock struct {
	BlockNum    uint64    `json:"blockNum"`
	Difficulty  uint64    `json:"difficulty"`
	MiningStart time.Time `json:"miningStart"`
}

// Request is the block the sync engine is fetching.
type Request struct {
	BlockNum uint64 `json:"blockNum"`
	Stage    string `json:"stage"`
	Backfill bool   `json:"backfill"`
	Retries  int    `json:"retries"`
	Peer     string `json:"peer,omitempty"`
}

// Notification is an operator message shown to miners.
type Notification struct {
	ID   uint64 `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// Snapshot is the pool status at one moment.
type Snapshot struct {
	NetworkHeight   uint64         `json:"networkHeight"`
	LastBlockHeight uint64         `json:"lastBlockHeight"`
	SyncPaused      bool           `json:"syncPaused"`
	Backlog         int            `json:"backlog"`
	Request         *Request       `json:"request,omitempty"`
	ActiveBlock     *ActiveBlock   `json:"activeBlock,omitempty"`
	PoolDifficulty  uint64         `json:"poolDifficulty"`
	ShareDifficulty uint64         `json:"shareDifficulty"`
	Peers           int            `json:"peers"`
	Notifications   []Notification `json:"notifications"`
}

// Reporter builds Snapshots from the running subsystems.
type Reporter struct {
	logger        *zap.Logger
	sync          SyncSource
	blocks        ActiveBlockSource
	difficulty    DifficultySource
	peers         PeerSource
	notifications NotificationSource
}

// NewReporter builds a Reporter.
func NewReporter(
	sync SyncSource,
	blocks ActiveBlockSource,
	difficulty DifficultySource,
	peers PeerSource,
	notifications NotificationSource,
	logger *zap.Logger,
) (*Reporter, error) {
	switch {
	case sync == nil:
		return nil, errors.New("status sync source is required")
	case blocks == nil:
		return nil, errors.New("status active block source is required")
	case difficulty == nil:
		return nil, errors.New("status difficulty source is required")
	case peers == nil:
		return nil, errors.New("status peer source is required")
	case notifications == nil:
		return nil, errors.New("status notification source is required")
	}
	return &Reporter{
		logger:        logger.Named("status"),
		sync:          sync,
		blocks:        blocks,
		difficulty:    difficulty,
		peers:         peers,
		notifications: notifications,
	}, nil
}

// Snapshot collects the current status. Notifications that cannot be read
// are left out.
func (r *Reporter) Snapshot(ctx context.Context) Snapshot {
	st := r.sync.Status()
	snap := Snapshot{
		NetworkHeight:   st.NetworkHeight,
		LastBlockHeight: st.LastBlockHeight,
		SyncPaused:      st.Paused,
		Backlog:         st.Backlog,
		Request:         request(st.Current),
		PoolDifficulty:  r.difficulty.Adjusted(),
		ShareDifficulty: r.difficulty.Difficulty(),
		Peers:           r.peers.PeerCount(),
		Notifications:   []Notification{},
	}
	if block, ok := r.blocks.ActiveBlock(); ok {
		snap.ActiveBlock = &ActiveBlock{
			BlockNum:    block.BlockNum,
			Difficulty:  block.Difficulty,
			MiningStart: block.MiningStart,
		}
	}

	notes, err := r.notifications.ActiveNotifications(ctx)
	if err != nil {
		r.logger.Warn("notifications not read", zap.Error(err))
		return snap
	}
	for _, n := range notes {
		snap.Notifications = append(snap.Notifications, notification(n))
	}
	return snap
}

func request(cur *syncer.RequestStatus) *Request {
	if cur == nil {
		return nil
	}
	return &Request{
		BlockNum: cur.BlockNum,
		Stage:    cur.Stage,
		Backfill: cur.Backfill,
		Retries:  cur.Retries,
		Peer:     string(cur.Peer),
	}
}

func notification(n model.Notification) Notification {
	return Notification{ID: n.ID, Type: n.Type.String(), Text: n.Text}
}
