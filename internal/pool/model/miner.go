package model

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
)

// Miner is a wallet address that submitted work to the pool.
type Miner struct {
	ID       uint64
	Address  string
	LastSeen time.Time
}

// Worker is a named mining rig belonging to a miner.
type Worker struct {
	ID        uint64
	MinerID   uint64
	Name      string
	MiningApp string
	Hashrate  float64
	LastSeen  time.Time
}

// Share is an accepted proof-of-work submission.
type Share struct {
	MinerID       uint64
	WorkerID      uint64
	Timestamp     time.Time
	BlockNum      uint64
	Difficulty    uint64
	Nonce         string
	BlockResolved bool
	Processed     bool
}

// Payment is a payout transaction sent by the pool wallet.
type Payment struct {
	TxID      string
	MinerID   uint64
	Value     decimal.Decimal
	Fee       decimal.Decimal
	Timestamp time.Time
	Verified  bool
}

// NotificationType mirrors the dashboard alert styles.
type NotificationType uint8

const (
	NotificationPrimary NotificationType = iota
	NotificationInfo
	NotificationSuccess
	NotificationWarning
	NotificationDanger
)

var notificationTypeNames = map[NotificationType]string{
	NotificationPrimary: "primary",
	NotificationInfo:    "info",
	NotificationSuccess: "success",
	NotificationWarning: "warning",
	NotificationDanger:  "danger",
}

// ParseNotificationType maps a console keyword to a NotificationType.
func ParseNotificationType(s string) (NotificationType, bool) {
	for t, name := range notificationTypeNames {
		if name == s {
			return t, true
		}
	}
	return 0, false
}

func (t NotificationType) String() string {
	if name, ok := notificationTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Notification is an operator message shown to miners.
type Notification struct {
	ID     uint64
	Type   NotificationType
	Text   string
	Active bool
}

// MinerID derives the stable identifier of a miner from its wallet address.
func MinerID(address string) uint64 {
	return xxhash.Sum64String(address)
}

// WorkerID derives the stable identifier of a worker within a miner.
func WorkerID(minerID uint64, name string) uint64 {
	return xxhash.Sum64String(strconv.FormatUint(minerID, 10) + "/" + name)
}
