package clock

import "time"

// Clock 提供当前时间。聚合逻辑只通过注入的Clock取时间，
// 便于用固定时间做确定性测试。
type Clock interface {
	Now() time.Time
}

// SystemClock 使用系统壁钟
type SystemClock struct{}

// Now 返回当前系统时间
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Fixed 返回一个始终报告t的Clock
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}
