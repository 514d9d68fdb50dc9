package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"critiq/internal/models"
	"critiq/internal/validation"
)

func TestTicketServiceCreateMissingTitle(t *testing.T) {
	svc := NewTicketService(noopTicketRepo())
	_, err := svc.Create(context.Background(), 1, validation.TicketInput{Title: "   "})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}
	if appErr.Fields["title"] == "" {
		t.Fatalf("expected title field error, got %#v", appErr.Fields)
	}
}

func TestTicketServiceCreateTitleTooLong(t *testing.T) {
	svc := NewTicketService(noopTicketRepo())
	_, err := svc.Create(context.Background(), 1, validation.TicketInput{
		Title: strings.Repeat("a", models.TicketTitleMaxLen+1),
	})
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestTicketServiceCreateSuccess(t *testing.T) {
	var created *models.Ticket
	repo := noopTicketRepo()
	repo.createFn = func(_ context.Context, ticket *models.Ticket) error {
		ticket.ID = 42
		created = ticket
		return nil
	}
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Ticket, error) {
		return &models.Ticket{ID: id, Title: created.Title, UserID: created.UserID}, nil
	}

	svc := NewTicketService(repo)
	ticket, err := svc.Create(context.Background(), 9, validation.TicketInput{
		Title:       "  Madame Bovary  ",
		Description: "Looking for opinions on the new translation.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 9 {
		t.Fatalf("expected author 9, got %d", created.UserID)
	}
	if created.Title != "Madame Bovary" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}
	if ticket.ID != 42 {
		t.Fatalf("expected reloaded ticket, got %#v", ticket)
	}
}

func TestTicketServiceUpdateNotOwned(t *testing.T) {
	repo := noopTicketRepo()
	repo.getOwnedFn = func(_ context.Context, id, _ uint) (*models.Ticket, error) {
		return nil, models.NewNotFoundError("Ticket", id)
	}

	svc := NewTicketService(repo)
	_, err := svc.Update(context.Background(), 5, 10, validation.TicketInput{Title: "x"})
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Fatalf("expected not-found app error, got %#v", err)
	}
}

func TestTicketServiceUpdateSuccess(t *testing.T) {
	var saved *models.Ticket
	repo := noopTicketRepo()
	repo.getOwnedFn = func(_ context.Context, id, userID uint) (*models.Ticket, error) {
		return &models.Ticket{ID: id, UserID: userID, Title: "Old title"}, nil
	}
	repo.updateFn = func(_ context.Context, ticket *models.Ticket) error {
		saved = ticket
		return nil
	}
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Ticket, error) {
		return saved, nil
	}

	svc := NewTicketService(repo)
	ticket, err := svc.Update(context.Background(), 5, 10, validation.TicketInput{Title: "New title"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ticket.Title != "New title" {
		t.Fatalf("expected updated title, got %q", ticket.Title)
	}
}

func TestTicketServiceDeleteNotOwned(t *testing.T) {
	repo := noopTicketRepo()
	repo.getOwnedFn = func(_ context.Context, id, _ uint) (*models.Ticket, error) {
		return nil, models.NewNotFoundError("Ticket", id)
	}
	deleted := false
	repo.deleteFn = func(context.Context, uint) error {
		deleted = true
		return nil
	}

	svc := NewTicketService(repo)
	err := svc.Delete(context.Background(), 5, 10)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Fatalf("expected not-found app error, got %#v", err)
	}
	if deleted {
		t.Fatal("delete must not run for a ticket the user does not own")
	}
}
