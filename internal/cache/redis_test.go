package cache

import (
	"context"
	"testing"

	"github.com/dileepkhanna/jobportal/config"
)

func TestRedis_DisabledWithoutHost(t *testing.T) {
	ctx := context.Background()
	r := NewRedis(ctx, config.RedisConfig{}, nil)
	if r.Enabled() {
		t.Fatalf("expected cache to be disabled")
	}

	var out []string
	hit, err := r.GetJSON(ctx, "skills:x", &out)
	if err != nil || hit {
		t.Fatalf("expected miss without error, got hit=%v err=%v", hit, err)
	}
	if err := r.SetJSON(ctx, "skills:x", []string{"a"}, 0); err != nil {
		t.Fatalf("set on disabled cache: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestRedis_NilReceiverIsDisabled(t *testing.T) {
	var r *Redis
	if r.Enabled() {
		t.Fatalf("nil cache must be disabled")
	}
	hit, err := r.GetJSON(context.Background(), "k", new(string))
	if hit || err != nil {
		t.Fatalf("unexpected nil cache result: %v %v", hit, err)
	}
}
