package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
)

const insertNotification = `
INSERT INTO notifications (
	id,
	type,
	text,
	active,
	updated_at
) VALUES`

// AddNotification stores a notification and returns its id.
func (s *Store) AddNotification(ctx context.Context, n model.Notification) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("add_notification", err, start)
	}()

	last, err := queryCount(ctx, s.conn, `SELECT max(id) FROM notifications`)
	if err != nil {
		return 0, fmt.Errorf("read last notification id: %w", err)
	}
	n.ID = last + 1

	if err = s.writeNotification(ctx, n); err != nil {
		return 0, err
	}
	return n.ID, nil
}

// SetNotificationActive toggles a notification.
func (s *Store) SetNotificationActive(ctx context.Context, id uint64, active bool) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("set_notification_active", err, start)
	}()

	n, err := s.notification(ctx, id)
	if err != nil {
		return fmt.Errorf("update notification %d: %w", id, err)
	}
	n.Active = active
	return s.writeNotification(ctx, n)
}

// ActiveNotifications lists enabled notifications in creation order.
func (s *Store) ActiveNotifications(ctx context.Context) (out []model.Notification, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("active_notifications", err, start)
	}()

	const query = `
SELECT id, type, text
FROM notifications FINAL
WHERE active
ORDER BY id`

	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var (
			n   model.Notification
			typ uint8
		)
		if err = rows.Scan(&n.ID, &typ, &n.Text); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.Type = model.NotificationType(typ)
		n.Active = true
		out = append(out, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return out, nil
}

func (s *Store) notification(ctx context.Context, id uint64) (n model.Notification, err error) {
	rows, err := s.conn.Query(ctx, `SELECT type, text, active FROM notifications FINAL WHERE id = ? LIMIT 1`, id)
	if err != nil {
		return model.Notification{}, fmt.Errorf("query notification: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Notification{}, err
		}
		return model.Notification{}, model.ErrNotFound
	}
	var typ uint8
	if err = rows.Scan(&typ, &n.Text, &n.Active); err != nil {
		return model.Notification{}, fmt.Errorf("scan notification: %w", err)
	}
	n.ID = id
	n.Type = model.NotificationType(typ)
	return n, rows.Err()
}

func (s *Store) writeNotification(ctx context.Context, n model.Notification) error {
	batch, err := s.conn.PrepareBatch(ctx, insertNotification)
	if err != nil {
		return fmt.Errorf("prepare notification batch: %w", err)
	}
	if err = batch.Append(n.ID, uint8(n.Type), n.Text, n.Active, s.now()); err != nil {
		_ = batch.Abort()
		return fmt.Errorf("append notification %d: %w", n.ID, err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert notification %d: %w", n.ID, err)
	}
	return nil
}
