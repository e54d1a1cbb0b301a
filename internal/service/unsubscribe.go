package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/knightandthey/knightshade-email-service/pkg/mailer"
)

// UnsubscribeService records opt-out requests.
type UnsubscribeService struct {
	repo UnsubscribeStore
}

func NewUnsubscribeService(repo UnsubscribeStore) *UnsubscribeService {
	return &UnsubscribeService{repo: repo}
}

// Record stores an unsubscribe for the given address. Addresses are
// normalized to lower case so repeated requests collapse into one record.
func (s *UnsubscribeService) Record(ctx context.Context, email, source string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidRequest)
	}
	if !mailer.ValidAddress(email) {
		return fmt.Errorf("%w: email must be a valid address", ErrInvalidRequest)
	}
	return s.repo.Upsert(ctx, email, source)
}
