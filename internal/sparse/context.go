package sparse

import (
	"io"
	"log/slog"

	"github.com/hupe1980/propgraph/internal/resource"
)

// Context is the execution context shared by every container of a graph.
// It is read-only after construction and safe to share between graphs.
type Context struct {
	workers *resource.Controller
	logger  *slog.Logger
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithWorkers sets the controller bounding fan-out concurrency.
func WithWorkers(c *resource.Controller) ContextOption {
	return func(ctx *Context) {
		ctx.workers = c
	}
}

// WithLogger sets the logger used by the engine.
func WithLogger(l *slog.Logger) ContextOption {
	return func(ctx *Context) {
		if l != nil {
			ctx.logger = l
		}
	}
}

// NewContext creates an execution context.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.workers == nil {
		c.workers = resource.NewController(resource.Config{})
	}
	return c
}

// Workers returns the worker controller.
func (c *Context) Workers() *resource.Controller { return c.workers }

// Logger returns the engine logger.
func (c *Context) Logger() *slog.Logger { return c.logger }
