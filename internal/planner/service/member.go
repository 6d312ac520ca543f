package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"time"

	"github.com/assomusica/playroom/internal/planner/domain"
	"github.com/assomusica/playroom/internal/planner/store"
	"github.com/assomusica/playroom/pkg/cryptox"
	"github.com/assomusica/playroom/pkg/slogx"
)

// MemberService manages the association's member registry.
type MemberService struct {
	Store store.Store
	Locks *KeyedLocks
}

type RegisterMemberInput struct {
	Email        string
	FirstName    string
	LastName     string
	Password     string
	BirthDate    time.Time
	Role         domain.Role
	ManagerSince *time.Time
}

// Register creates a new member with a hashed password.
func (s *MemberService) Register(ctx context.Context, in RegisterMemberInput) (domain.Member, error) {
	log := slogx.FromContext(ctx)

	// 1. Field presence and shape.
	if in.Email == "" || in.FirstName == "" || in.LastName == "" {
		return domain.Member{}, fmt.Errorf("%w: email, first name and last name are required", ErrValidation)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return domain.Member{}, fmt.Errorf("%w: malformed email address", ErrValidation)
	}
	if len(in.Password) < 8 {
		return domain.Member{}, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}
	if in.Role == "" {
		in.Role = domain.RoleLearner
	}
	if !in.Role.Valid() {
		return domain.Member{}, fmt.Errorf("%w: unknown role %q", ErrValidation, in.Role)
	}

	// 2. Hash before touching the store so a failure leaves no row behind.
	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.Member{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	member := domain.Member{
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		BirthDate:    in.BirthDate,
		Role:         in.Role,
		ManagerSince: in.ManagerSince,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Members().CreateMember(ctx, member); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Member{}, fmt.Errorf("%w: email %s is already registered", ErrValidation, in.Email)
		}
		return domain.Member{}, err
	}

	log.Info("member registered",
		slog.String("member", member.Email),
		slog.String("role", string(member.Role)),
	)
	return member, nil
}

// Authenticate verifies a member's credentials and returns the member on
// success. Both unknown email and wrong password come back as ErrNotAllowed
// so callers cannot probe the registry.
func (s *MemberService) Authenticate(ctx context.Context, email, password string) (domain.Member, error) {
	member, err := s.Store.Members().GetMemberByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Member{}, fmt.Errorf("%w: bad credentials", ErrNotAllowed)
		}
		return domain.Member{}, err
	}
	if err := cryptox.VerifyPassword(password, member.PasswordHash); err != nil {
		return domain.Member{}, fmt.Errorf("%w: bad credentials", ErrNotAllowed)
	}
	return member, nil
}

// Profile returns a member by email.
func (s *MemberService) Profile(ctx context.Context, email string) (domain.Member, error) {
	member, err := s.Store.Members().GetMemberByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Member{}, fmt.Errorf("%w: member %s", ErrNotFound, email)
		}
		return domain.Member{}, err
	}
	return member, nil
}

// List returns the full registry ordered by last name then first name, as
// managers see it when picking invitees.
func (s *MemberService) List(ctx context.Context) ([]domain.Member, error) {
	return s.Store.Members().ListMembers(ctx)
}

// UpdateProfile changes the acting member's name and birth date.
func (s *MemberService) UpdateProfile(ctx context.Context, actor domain.Actor, firstName, lastName string, birthDate time.Time) error {
	if firstName == "" || lastName == "" {
		return fmt.Errorf("%w: first name and last name are required", ErrValidation)
	}

	err := s.Store.Members().UpdateMemberProfile(ctx, actor.Email, firstName, lastName, birthDate)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: member %s", ErrNotFound, actor.Email)
		}
		return err
	}
	return nil
}

// DeleteAccount removes the acting member and every invite they hold. Seats
// they had accepted are released by fixing up the counters of the affected
// reservations in the same transaction. Reservations they own are kept and
// reassigned out of band.
func (s *MemberService) DeleteAccount(ctx context.Context, actor domain.Actor) error {
	log := slogx.FromContext(ctx)

	unlock := s.Locks.Lock("member:" + actor.Email)
	defer unlock()

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Members().GetMemberByEmail(ctx, actor.Email); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: member %s", ErrNotFound, actor.Email)
			}
			return err
		}

		acceptedIDs, err := tx.Invites().DeleteInvitesByMember(ctx, actor.Email)
		if err != nil {
			return err
		}
		for _, reservationID := range acceptedIDs {
			if err := tx.Reservations().AddAcceptedCount(ctx, reservationID, -1); err != nil {
				return err
			}
		}

		return tx.Members().DeleteMember(ctx, actor.Email)
	})
	if err != nil {
		return err
	}

	log.Info("member deleted", slog.String("member", actor.Email))
	return nil
}
