// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/adareyes/talentflow/ident"
	"github.com/adareyes/talentflow/models"
)

// Profile and settings live in single-row tables keyed by this fixed id.
const accountRowID = "main"

// GetProfile returns the recruiter profile, or ErrNotFound before the
// first save.
func (s *Store) GetProfile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	var memberSince int64

	err := s.db.QueryRowContext(ctx, s.q(`
		SELECT id, name, email, phone, location, role, department, avatar, member_since
		FROM profile WHERE id = ?
	`), accountRowID).Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Location,
		&p.Role, &p.Department, &p.Avatar, &memberSince)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}

	p.MemberSince = fromNanos(memberSince)
	return &p, nil
}

// SaveProfile stores the profile, replacing any previous one.
func (s *Store) SaveProfile(ctx context.Context, p models.Profile) error {
	p.ID = accountRowID
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO profile (id, name, email, phone, location, role, department, avatar, member_since)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			phone = excluded.phone,
			location = excluded.location,
			role = excluded.role,
			department = excluded.department,
			avatar = excluded.avatar,
			member_since = excluded.member_since
	`), p.ID, p.Name, p.Email, p.Phone, p.Location, p.Role, p.Department,
		p.Avatar, toNanos(p.MemberSince))
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetSettings returns the stored settings, or ErrNotFound before the first
// save.
func (s *Store) GetSettings(ctx context.Context) (*models.Settings, error) {
	var st models.Settings
	var emailOn, inAppOn int

	err := s.db.QueryRowContext(ctx, s.q(`
		SELECT id, email_notifications, in_app_notifications, theme FROM settings WHERE id = ?
	`), accountRowID).Scan(&st.ID, &emailOn, &inAppOn, &st.Theme)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}

	st.EmailNotifications = emailOn != 0
	st.InAppNotifications = inAppOn != 0
	return &st, nil
}

// SaveSettings stores the settings, replacing any previous ones.
func (s *Store) SaveSettings(ctx context.Context, st models.Settings) error {
	st.ID = accountRowID
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO settings (id, email_notifications, in_app_notifications, theme)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			email_notifications = excluded.email_notifications,
			in_app_notifications = excluded.in_app_notifications,
			theme = excluded.theme
	`), st.ID, boolToInt(st.EmailNotifications), boolToInt(st.InAppNotifications), st.Theme)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// AddNotification stores a new notification, assigning an id and timestamp
// if unset.
func (s *Store) AddNotification(ctx context.Context, n models.NotificationItem) (*models.NotificationItem, error) {
	if n.ID == "" {
		n.ID = ident.NewID()
	}
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO notifications (id, title, body, read, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`), n.ID, n.Title, n.Body, boolToInt(n.Read), toNanos(n.Timestamp))
	if err != nil {
		return nil, fmt.Errorf("failed to insert notification: %w", err)
	}
	return &n, nil
}

// ListNotifications returns all notifications, newest first.
func (s *Store) ListNotifications(ctx context.Context) ([]models.NotificationItem, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, body, read, timestamp FROM notifications ORDER BY timestamp DESC, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	items := []models.NotificationItem{}
	for rows.Next() {
		var n models.NotificationItem
		var read int
		var ts int64
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &read, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.Read = read != 0
		n.Timestamp = fromNanos(ts)
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notifications: %w", err)
	}
	return items, nil
}

// MarkNotificationRead sets a notification's read flag. Returns ErrNotFound
// for an unknown id.
func (s *Store) MarkNotificationRead(ctx context.Context, id string, read bool) error {
	res, err := s.db.ExecContext(ctx,
		s.q("UPDATE notifications SET read = ? WHERE id = ?"), boolToInt(read), id)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteNotification removes a notification. Returns ErrNotFound for an
// unknown id.
func (s *Store) DeleteNotification(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, s.q("DELETE FROM notifications WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearNotifications removes every notification.
func (s *Store) ClearNotifications(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM notifications"); err != nil {
		return fmt.Errorf("failed to clear notifications: %w", err)
	}
	return nil
}
