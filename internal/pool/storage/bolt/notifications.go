package bolt

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
	"go.etcd.io/bbolt"
)

// AddNotification stores a notification and returns its id.
func (s *Store) AddNotification(_ context.Context, n model.Notification) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("add_notification", err, start)
	}()

	data, err := encode(notificationRecord{Type: uint8(n.Type), Text: n.Text, Active: n.Active})
	if err != nil {
		return 0, err
	}

	var id uint64
	err = s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketNotifications)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		id = seq
		return b.Put(u64Key(id), data)
	})
	if err != nil {
		return 0, fmt.Errorf("add notification: %w", err)
	}
	return id, nil
}

// SetNotificationActive toggles a notification.
func (s *Store) SetNotificationActive(_ context.Context, id uint64, active bool) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("set_notification_active", err, start)
	}()

	err = s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketNotifications)
		v := b.Get(u64Key(id))
		if v == nil {
			return model.ErrNotFound
		}
		var rec notificationRecord
		if err := decode(v, &rec); err != nil {
			return err
		}
		rec.Active = active
		data, err := encode(rec)
		if err != nil {
			return err
		}
		return b.Put(u64Key(id), data)
	})
	if err != nil {
		return fmt.Errorf("update notification %d: %w", id, err)
	}
	return nil
}

// ActiveNotifications lists enabled notifications in creation order.
func (s *Store) ActiveNotifications(_ context.Context) ([]model.Notification, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("active_notifications", err, start)
	}()

	var out []model.Notification
	err = s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketNotifications).ForEach(func(k, v []byte) error {
			var rec notificationRecord
			if err := decode(v, &rec); err != nil {
				return err
			}
			if rec.Active {
				out = append(out, model.Notification{
					ID:     binary.BigEndian.Uint64(k),
					Type:   model.NotificationType(rec.Type),
					Text:   rec.Text,
					Active: true,
				})
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return out, nil
}
