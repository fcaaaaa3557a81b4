package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	name  string
	limit int
}

func TestApply(t *testing.T) {
	cfg := &testConfig{}
	err := Apply(cfg,
		NoError(func(c *testConfig) { c.name = "marc" }),
		New(func(c *testConfig) error {
			c.limit = 10
			return nil
		}),
	)
	require.NoError(t, err)
	require.Equal(t, "marc", cfg.name)
	require.Equal(t, 10, cfg.limit)
}

func TestApplyStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	cfg := &testConfig{}

	err := Apply(cfg,
		New(func(c *testConfig) error { return boom }),
		NoError(func(c *testConfig) { c.limit = 10 }),
	)
	require.ErrorIs(t, err, boom)
	require.Zero(t, cfg.limit)
}

func TestApplyNoOptions(t *testing.T) {
	require.NoError(t, Apply(&testConfig{}))
}
