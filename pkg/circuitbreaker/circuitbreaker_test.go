package circuitbreaker

import (
	"errors"
	"testing"
	"time"
)

func newTestBreaker(timeout time.Duration, trip func(Counts) bool) *CircuitBreaker {
	return NewCircuitBreaker("book-search-api", Config{
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     timeout,
		ReadyToTrip: trip,
	})
}

// TestClosedState 关闭状态下请求正常通过
func TestClosedState(t *testing.T) {
	cb := newTestBreaker(30*time.Second, func(counts Counts) bool {
		return counts.ConsecutiveFailures >= 5
	})

	for i := 0; i < 10; i++ {
		if err := cb.Execute(func() error { return nil }); err != nil {
			t.Fatalf("期望成功，实际失败: %v", err)
		}
	}

	if cb.State() != StateClosed {
		t.Errorf("期望状态为CLOSED，实际%s", cb.State())
	}
	if counts := cb.Counts(); counts.TotalSuccesses != 10 {
		t.Errorf("期望成功10次，实际%d次", counts.TotalSuccesses)
	}
}

// TestOpenState 连续失败触发熔断，之后的请求快速失败
func TestOpenState(t *testing.T) {
	cb := newTestBreaker(30*time.Second, func(counts Counts) bool {
		return counts.ConsecutiveFailures >= 5
	})

	for i := 0; i < 5; i++ {
		_ = cb.Execute(func() error {
			return errors.New("search api unavailable")
		})
	}

	if cb.State() != StateOpen {
		t.Errorf("期望状态为OPEN，实际%s", cb.State())
	}

	// 熔断期间不触达下游
	called := false
	err := cb.Execute(func() error {
		called = true
		return nil
	})
	if err != ErrOpenState {
		t.Errorf("期望返回ErrOpenState，实际%v", err)
	}
	if called {
		t.Error("熔断器打开时不应该调用实际函数")
	}
}

// TestHalfOpenState 超时后放行探测请求，成功则恢复CLOSED
func TestHalfOpenState(t *testing.T) {
	cb := newTestBreaker(100*time.Millisecond, func(counts Counts) bool {
		return counts.ConsecutiveFailures >= 3
	})

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errors.New("fail") })
	}
	if cb.State() != StateOpen {
		t.Fatalf("期望状态为OPEN，实际%s", cb.State())
	}

	time.Sleep(150 * time.Millisecond)

	called := false
	err := cb.Execute(func() error {
		called = true
		return nil
	})
	if err != nil {
		t.Errorf("半开状态第一次请求期望成功，实际%v", err)
	}
	if !called {
		t.Error("半开状态应该允许请求通过")
	}
	if cb.State() != StateClosed {
		t.Errorf("期望状态转为CLOSED，实际%s", cb.State())
	}
}

// TestHalfOpenToOpen 探测失败立即转回OPEN
func TestHalfOpenToOpen(t *testing.T) {
	cb := newTestBreaker(100*time.Millisecond, func(counts Counts) bool {
		return counts.ConsecutiveFailures >= 3
	})

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errors.New("fail") })
	}

	time.Sleep(150 * time.Millisecond)

	_ = cb.Execute(func() error { return errors.New("still fail") })

	if cb.State() != StateOpen {
		t.Errorf("期望状态转回OPEN，实际%s", cb.State())
	}
}

// TestStateChangeCallback 状态变化回调完整走一圈
func TestStateChangeCallback(t *testing.T) {
	cb := newTestBreaker(100*time.Millisecond, func(counts Counts) bool {
		return counts.ConsecutiveFailures >= 3
	})

	var stateChanges []string
	cb.SetStateChangeCallback(func(name string, from State, to State) {
		stateChanges = append(stateChanges, from.String()+"->"+to.String())
	})

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errors.New("fail") })
	}
	time.Sleep(150 * time.Millisecond)
	_ = cb.Execute(func() error { return nil })

	expected := []string{"CLOSED->OPEN", "OPEN->HALF_OPEN", "HALF_OPEN->CLOSED"}
	if len(stateChanges) != len(expected) {
		t.Fatalf("期望%d次状态变化，实际%d次: %v", len(expected), len(stateChanges), stateChanges)
	}
	for i, want := range expected {
		if stateChanges[i] != want {
			t.Errorf("第%d次状态变化期望%s，实际%s", i, want, stateChanges[i])
		}
	}
}

// TestFailureRateTrip 基于失败率的熔断策略
func TestFailureRateTrip(t *testing.T) {
	cb := NewCircuitBreaker("book-search-api", Config{
		MaxRequests: 3,
		Interval:    time.Hour, // 长窗口避免统计被重置
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts Counts) bool {
			return counts.Requests >= 10 && counts.FailureRate() > 0.5
		},
	})

	// 10次请求：4成功6失败，失败率60%
	for i := 0; i < 10; i++ {
		index := i
		_ = cb.Execute(func() error {
			if index < 4 {
				return nil
			}
			return errors.New("fail")
		})
	}

	if cb.State() != StateOpen {
		t.Errorf("期望失败率超阈值后状态为OPEN，实际%s", cb.State())
	}
}

// flakySearchAPI 前failCount次调用失败的外部检索API替身
type flakySearchAPI struct {
	failCount int
	callCount int
}

func (c *flakySearchAPI) Search(keyword string) error {
	c.callCount++
	if c.callCount <= c.failCount {
		return errors.New("search api unavailable")
	}
	return nil
}

// TestExternalSearchScenario 外部图书检索API的熔断保护场景
// 下游挂掉后快速失败不拖垮自身，恢复后探测请求放行并回到CLOSED。
func TestExternalSearchScenario(t *testing.T) {
	api := &flakySearchAPI{failCount: 5}

	cb := newTestBreaker(200*time.Millisecond, func(counts Counts) bool {
		return counts.ConsecutiveFailures >= 5
	})

	for i := 1; i <= 10; i++ {
		_ = cb.Execute(func() error {
			return api.Search("golang")
		})
	}

	// 前5次失败触发熔断，6-10次被快速失败挡住
	if api.callCount != 5 {
		t.Errorf("期望实际调用5次，实际调用%d次", api.callCount)
	}

	time.Sleep(250 * time.Millisecond)

	if err := cb.Execute(func() error { return api.Search("golang") }); err != nil {
		t.Errorf("半开状态下期望成功，实际失败: %v", err)
	}
	if cb.State() != StateClosed {
		t.Errorf("期望状态恢复为CLOSED，实际%s", cb.State())
	}
}

// BenchmarkExecute 性能基准
func BenchmarkExecute(b *testing.B) {
	cb := newTestBreaker(30*time.Second, func(counts Counts) bool {
		return counts.ConsecutiveFailures >= 5
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cb.Execute(func() error { return nil })
	}
}
