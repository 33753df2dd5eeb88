package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerRunsJob(t *testing.T) {
	s := NewScheduler()
	var runs int32

	require.NoError(t, s.AddJob("refresh", "* * * * * *", func() {
		atomic.AddInt32(&runs, 1)
	}))
	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&runs) > 0
	}, 3*time.Second, 50*time.Millisecond)
}

func TestSchedulerReplaceAndRemove(t *testing.T) {
	s := NewScheduler()

	require.NoError(t, s.AddJob("refresh", "0 */5 * * * *", func() {}))
	require.NoError(t, s.AddJob("refresh", "0 */10 * * * *", func() {}))
	assert.Equal(t, []string{"refresh"}, s.Jobs())

	s.RemoveJob("refresh")
	assert.Empty(t, s.Jobs())

	// unknown names are ignored
	s.RemoveJob("missing")
}

func TestSchedulerRejectsBadSchedule(t *testing.T) {
	s := NewScheduler()
	assert.Error(t, s.AddJob("refresh", "every five minutes", func() {}))
	assert.Empty(t, s.Jobs())
}
