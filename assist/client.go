package assist

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"bitrpc/config"
	"bitrpc/model"
)

var (
	// ErrNoProvider is reported when no generation service is configured,
	// typically because the credential is missing from the environment.
	ErrNoProvider = errors.New("no generation provider configured")

	// ErrEmptyResponse is reported when the service answered with no text.
	ErrEmptyResponse = errors.New("empty response from generation service")
)

// Result is the outcome of one request. Text is always displayable; Err is
// nil on success.
type Result struct {
	Text string
	Err  error
}

// Failed reports whether Text is a fallback or placeholder.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Client is the single point of contact with the generation service.
type Client struct {
	provider model.Provider
	logger   *log.Logger
	timeout  time.Duration
}

type Option func(*Client)

// WithLogger sends failure reports to l instead of config.ErrorLog.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithTimeout bounds every request. Zero, the default, means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient returns a Client over p. A nil p is allowed: every request then
// fails with ErrNoProvider.
func NewClient(p model.Provider, opts ...Option) *Client {
	c := &Client{provider: p}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Provider returns the underlying provider, which may be nil.
func (c *Client) Provider() model.Provider {
	return c.provider
}

// Generate sends prompt as a single user message.
func (c *Client) Generate(ctx context.Context, kind Kind, prompt string) Result {
	return c.complete(ctx, kind, []model.Message{
		{Role: model.RoleUser, Content: prompt, Timestamp: time.Now()},
	})
}

// Chat sends a fresh conversation: the system instruction, history in order,
// then message as the final user turn.
func (c *Client) Chat(ctx context.Context, kind Kind, systemInstruction string, history []model.Message, message string) Result {
	messages := make([]model.Message, 0, len(history)+2)
	messages = append(messages, model.Message{Role: model.RoleSystem, Content: systemInstruction})
	for _, h := range history {
		messages = append(messages, model.Message{Role: h.Role, Content: h.Content, Timestamp: h.Timestamp})
	}
	messages = append(messages, model.Message{Role: model.RoleUser, Content: message, Timestamp: time.Now()})

	return c.complete(ctx, kind, messages)
}

func (c *Client) complete(ctx context.Context, kind Kind, messages []model.Message) Result {
	if c.provider == nil {
		return c.fail(kind, ErrNoProvider)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if config.DebugLog != nil {
		config.DebugLog.Printf("[Assist] %s request: %d messages, model %s", kind, len(messages), c.provider.GetModel())
	}

	var sb strings.Builder
	err := c.provider.Chat(ctx, messages, func(chunk string) error {
		sb.WriteString(chunk)
		return nil
	})
	if err != nil {
		return c.fail(kind, fmt.Errorf("%s request failed: %w", kind, err))
	}

	text := sb.String()
	if text == "" {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Assist] %s request returned no text", kind)
		}
		return Result{Text: EmptyPlaceholder(kind), Err: ErrEmptyResponse}
	}

	if config.DebugLog != nil {
		config.DebugLog.Printf("[Assist] %s request returned %d bytes", kind, len(text))
	}

	return Result{Text: text}
}

func (c *Client) fail(kind Kind, err error) Result {
	logger := c.logger
	if logger == nil {
		logger = config.ErrorLog
	}
	if logger != nil {
		logger.Printf("[Assist] %v", err)
	}
	if config.DebugLog != nil {
		config.DebugLog.Printf("[Assist] %s fallback: %v", kind, err)
	}

	return Result{Text: Fallback(kind), Err: err}
}
