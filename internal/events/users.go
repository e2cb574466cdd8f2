package events

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"

	"github.com/dileepkhanna/jobportal/types"
)

// ChannelUserRegistered carries one message per successful signup.
const ChannelUserRegistered = "users.registered"

// Publisher is the subset of the broker used to emit events.
type Publisher interface {
	Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) (string, error)
}

// UserRegistered is the payload published on ChannelUserRegistered.
type UserRegistered struct {
	ID     int    `json:"id"`
	UserID string `json:"userid"`
	Name   string `json:"name"`
}

// Users publishes user lifecycle events. A nil publisher makes every call a
// no-op.
type Users struct {
	publisher Publisher
	logger    *log.Logger
}

func NewUsers(publisher Publisher, logger *log.Logger) *Users {
	return &Users{publisher: publisher, logger: logger}
}

// Registered publishes a UserRegistered event. Failures are logged and never
// returned; signup does not depend on the broker.
func (u *Users) Registered(ctx context.Context, user types.User) {
	if u == nil || u.publisher == nil {
		return
	}

	payload, err := json.Marshal(UserRegistered{ID: user.ID, UserID: user.UserID, Name: user.Name})
	if err != nil {
		u.logf("[Events] encode %s: %v", ChannelUserRegistered, err)
		return
	}

	attrs := map[string]string{
		"content-type": "application/json",
		"user_id":      strconv.Itoa(user.ID),
	}
	if _, err := u.publisher.Publish(ctx, ChannelUserRegistered, payload, attrs); err != nil {
		u.logf("[Events] publish %s for %q: %v", ChannelUserRegistered, user.UserID, err)
	}
}

func (u *Users) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}

// ParseUserRegistered decodes a UserRegistered payload.
func ParseUserRegistered(data []byte) (UserRegistered, error) {
	var event UserRegistered
	if err := json.Unmarshal(data, &event); err != nil {
		return UserRegistered{}, err
	}
	if event.UserID == "" {
		return UserRegistered{}, errors.New("user registered event without userid")
	}
	return event, nil
}
