// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adareyes/talentflow/models"
)

func TestProfileSaveAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.GetProfile(ctx)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound before first save, got %v", err)
	}

	since := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	profile := models.Profile{
		Name:        "Ada Reyes",
		Email:       "ada@talentflow.test",
		Location:    "Lisbon",
		Role:        "Recruiting Lead",
		Department:  "People",
		MemberSince: since,
	}
	if err := s.SaveProfile(ctx, profile); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	got, err := s.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if got.Name != profile.Name || got.Email != profile.Email || !got.MemberSince.Equal(since) {
		t.Errorf("Round trip mismatch: %+v", got)
	}

	// A second save replaces the single row
	profile.Location = "Porto"
	if err := s.SaveProfile(ctx, profile); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	got, err = s.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if got.Location != "Porto" {
		t.Errorf("Expected updated location, got %s", got.Location)
	}
}

func TestSettingsSaveAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.GetSettings(ctx)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound before first save, got %v", err)
	}

	settings := models.Settings{
		EmailNotifications: true,
		InAppNotifications: false,
		Theme:              models.ThemeDark,
	}
	if err := s.SaveSettings(ctx, settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	got, err := s.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if !got.EmailNotifications || got.InAppNotifications || got.Theme != models.ThemeDark {
		t.Errorf("Round trip mismatch: %+v", got)
	}

	settings.Theme = models.ThemeSystem
	settings.InAppNotifications = true
	if err := s.SaveSettings(ctx, settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	got, err = s.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got.Theme != models.ThemeSystem || !got.InAppNotifications {
		t.Errorf("Expected updated settings, got %+v", got)
	}
}

func TestNotifications(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.AddNotification(ctx, models.NotificationItem{
		Title:     "New applicant",
		Body:      "Mina Okafor applied to Backend Engineer",
		Timestamp: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("AddNotification failed: %v", err)
	}
	if first.ID == "" {
		t.Error("Expected a generated id")
	}

	second, err := s.AddNotification(ctx, models.NotificationItem{
		Title:     "Stage change",
		Timestamp: time.Date(2026, 1, 11, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("AddNotification failed: %v", err)
	}

	// Newest first
	items, err := s.ListNotifications(ctx)
	if err != nil {
		t.Fatalf("ListNotifications failed: %v", err)
	}
	if len(items) != 2 || items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("Expected newest-first listing, got %+v", items)
	}
	if items[0].Read || items[1].Read {
		t.Error("Expected notifications to start unread")
	}

	if err := s.MarkNotificationRead(ctx, first.ID, true); err != nil {
		t.Fatalf("MarkNotificationRead failed: %v", err)
	}
	items, err = s.ListNotifications(ctx)
	if err != nil {
		t.Fatalf("ListNotifications failed: %v", err)
	}
	if !items[1].Read {
		t.Error("Expected first notification to be marked read")
	}

	if err := s.MarkNotificationRead(ctx, "missing", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown id, got %v", err)
	}

	if err := s.DeleteNotification(ctx, second.ID); err != nil {
		t.Fatalf("DeleteNotification failed: %v", err)
	}
	if err := s.DeleteNotification(ctx, second.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	if err := s.ClearNotifications(ctx); err != nil {
		t.Fatalf("ClearNotifications failed: %v", err)
	}
	items, err = s.ListNotifications(ctx)
	if err != nil {
		t.Fatalf("ListNotifications failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected empty feed after clear, got %d", len(items))
	}
}
