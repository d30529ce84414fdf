package game

import "sort"

// scheduledEvent 一次性延迟事件
type scheduledEvent struct {
	dueAt    float64 // 到期时刻（调度器累计时间）
	sequence uint64  // 入队序号，同一到期时刻按入队顺序触发
	callback func()
}

// EventScheduler 延迟事件队列
//
// 队列由控制器持有，每帧用累计流逝时间与事件到期时刻比较并触发，
// 不使用游离的 time.AfterFunc 式定时器。
// 调度器在暂停状态下照常推进（暂停时定时器仍然走表），
// 但在退出/重开时被 Clear 清空，旧局的事件不会窜入新局。
type EventScheduler struct {
	elapsed float64
	nextSeq uint64
	events  []scheduledEvent
}

// NewEventScheduler 创建空的事件调度器
func NewEventScheduler() *EventScheduler {
	return &EventScheduler{}
}

// Schedule 注册一个 delay 秒后触发一次的事件
// delay <= 0 时事件在下一次 Update 中立即触发
func (s *EventScheduler) Schedule(delay float64, callback func()) {
	s.events = append(s.events, scheduledEvent{
		dueAt:    s.elapsed + delay,
		sequence: s.nextSeq,
		callback: callback,
	})
	s.nextSeq++
}

// Update 推进调度器并触发所有到期事件
// 同一帧内多个事件到期时，按 (到期时刻, 入队顺序) 排序依次触发，
// 连锁反应的引爆顺序因此与入队顺序严格一致
func (s *EventScheduler) Update(deltaTime float64) {
	s.elapsed += deltaTime
	if len(s.events) == 0 {
		return
	}

	sort.SliceStable(s.events, func(i, j int) bool {
		if s.events[i].dueAt != s.events[j].dueAt {
			return s.events[i].dueAt < s.events[j].dueAt
		}
		return s.events[i].sequence < s.events[j].sequence
	})

	// 回调可能会注册新事件，新事件留到下一帧判定
	due := 0
	for due < len(s.events) && s.events[due].dueAt <= s.elapsed {
		due++
	}
	firing := s.events[:due]
	s.events = s.events[due:]

	for _, ev := range firing {
		ev.callback()
	}
}

// Pending 返回尚未触发的事件数量
func (s *EventScheduler) Pending() int {
	return len(s.events)
}

// Clear 丢弃所有待触发事件
// 在退出到主菜单或重新开局时调用
func (s *EventScheduler) Clear() {
	s.events = nil
}

// Elapsed 返回调度器累计推进时间（秒）
func (s *EventScheduler) Elapsed() float64 {
	return s.elapsed
}
