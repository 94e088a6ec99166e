package cache

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeNetErr struct{ timeout bool }

func (e fakeNetErr) Error() string   { return "i/o timeout" }
func (e fakeNetErr) Timeout() bool   { return e.timeout }
func (e fakeNetErr) Temporary() bool { return e.timeout }

var _ net.Error = fakeNetErr{}

func TestClassify(t *testing.T) {
	errPlain := errors.New("WRONGTYPE")

	tests := []struct {
		name        string
		err         error
		retryable   bool
		unavailable bool
	}{
		{"nil", nil, false, false},
		{"timeout", fakeNetErr{timeout: true}, true, true},
		{"closed connection", fakeNetErr{}, true, true},
		{"dial", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, true, true},
		{"plain", errPlain, false, false},
		{"miss", redis.Nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			if tt.err == nil {
				if got != nil {
					t.Errorf("classify(nil) = %v, want nil", got)
				}
				return
			}
			if IsRetryable(got) != tt.retryable {
				t.Errorf("IsRetryable(classify(%v)) = %v, want %v", tt.err, IsRetryable(got), tt.retryable)
			}
			if is := errors.Is(got, ErrUnavailable); is != tt.unavailable {
				t.Errorf("errors.Is(classify(%v), ErrUnavailable) = %v, want %v", tt.err, is, tt.unavailable)
			}
			if !tt.retryable && got != tt.err {
				t.Errorf("classify(%v) = %v, want the error unchanged", tt.err, got)
			}
		})
	}
}

// closedAddr returns a loopback address nothing listens on.
func closedAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("no loopback listener: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()
	return addr
}

func TestRedisCacheUnreachable(t *testing.T) {
	saved := retryDelay
	retryDelay = time.Millisecond
	t.Cleanup(func() { retryDelay = saved })

	client := redis.NewClient(&redis.Options{
		Addr:        closedAddr(t),
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	c := NewRedisCacheFromClient(client)
	defer c.Close()
	ctx := context.Background()

	if _, hit, err := c.Get(ctx, "key"); !errors.Is(err, ErrUnavailable) || hit {
		t.Errorf("Get() = hit %v, err %v, want miss with ErrUnavailable", hit, err)
	}
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Set() error = %v, want ErrUnavailable", err)
	}
	if err := c.Delete(ctx, "key"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Delete() error = %v, want ErrUnavailable", err)
	}
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := NewRedisCache(ctx, "redis://"+closedAddr(t)+"/0")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("NewRedisCache() error = %v, want ErrUnavailable", err)
	}
}
