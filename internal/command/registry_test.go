package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommand struct {
	name string
	runs int
}

func (c *fakeCommand) Name() string        { return c.name }
func (c *fakeCommand) Description() string { return "fake" }
func (c *fakeCommand) Category() string    { return "test" }
func (c *fakeCommand) Run(ctx *SlashContext) error {
	c.runs++
	return nil
}

func TestRegisterAndGet(t *testing.T) {
	fake := &fakeCommand{name: "fake-basic"}
	Register(fake)

	cmd, ok := Get("fake-basic")
	require.True(t, ok)
	assert.Equal(t, "fake-basic", cmd.Name())

	_, ok = Get("nope")
	assert.False(t, ok)
}

func TestMiddlewareOrder(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(cmd Command) Command {
			return &wrappedCommand{
				Command: cmd,
				run: func(ctx *SlashContext) error {
					order = append(order, name)
					return cmd.Run(ctx)
				},
			}
		}
	}

	fake := &fakeCommand{name: "fake-order"}
	Register(fake, tag("outer"), tag("inner"))

	cmd, ok := Get("fake-order")
	require.True(t, ok)
	require.NoError(t, cmd.Run(nil))

	assert.Equal(t, []string{"outer", "inner"}, order)
	assert.Equal(t, 1, fake.runs)
}
