package browser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}.withDefaults()
	require.Equal(t, time.Second*30, opts.NavigateTimeout)
	require.Equal(t, time.Second*4, opts.SettleDelay)

	custom := Options{
		NavigateTimeout: time.Second * 5,
		SettleDelay:     time.Second,
	}.withDefaults()
	require.Equal(t, time.Second*5, custom.NavigateTimeout)
	require.Equal(t, time.Second, custom.SettleDelay)
}

func TestNewChromeCapturer(t *testing.T) {
	c := NewChromeCapturer(Options{})
	require.NotNil(t, c)
	require.Equal(t, time.Second*30, c.opts.NavigateTimeout)
}
