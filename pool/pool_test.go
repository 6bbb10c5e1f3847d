package pool

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"sync/atomic"
)

import (
	"github.com/timtadh/data-structures/errors"
)

func TestRunsEveryTask(t *testing.T) {
	p := New(3)
	var ran int64
	for i := 0; i < 100; i++ {
		err := p.Enqueue(func() error {
			atomic.AddInt64(&ran, 1)
			return nil
		})
		assert.Nil(t, err)
	}
	p.Close()
	assert.Equal(t, int64(100), ran)
}

func TestEnqueueAfterClose(t *testing.T) {
	p := New(1)
	p.Close()
	err := p.Enqueue(func() error { return nil })
	assert.NotNil(t, err)
}

func TestFailingTaskDoesNotStopOthers(t *testing.T) {
	p := New(2)
	var ran int64
	assert.Nil(t, p.Enqueue(func() error {
		return errors.Errorf("deliberate failure")
	}))
	for i := 0; i < 10; i++ {
		assert.Nil(t, p.Enqueue(func() error {
			atomic.AddInt64(&ran, 1)
			return nil
		}))
	}
	p.Close()
	assert.Equal(t, int64(10), ran)
}

func TestCloseDrainsQueuedTasks(t *testing.T) {
	p := New(1)
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		assert.Nil(t, p.Enqueue(func() error {
			order = append(order, i)
			return nil
		}))
	}
	p.Close()
	// One worker drains the queue in submission order.
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}
