// Package status assembles a point-in-time view of the pool for the API and console.
package status

import (
	"context"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/service/syncer"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	SyncSource interface {
		Status() syncer.Status
	}
	ActiveBlockSource interface {
		ActiveBlock() (model.ActivePoolBlock, bool)
	}
	DifficultySource interface {
		Adjusted() uint64
		Difficulty() uint64
	}
	PeerSource interface {
		PeerCount() int
	}
	NotificationSource interface {
		ActiveNotifications(ctx context.Context) ([]model.Notification, error)
	}
)
