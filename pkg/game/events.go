package game

// MoneyEarnedEvent 赚钱通知
// 猪寿命结束时由 PigLifetimeSystem 发出，由 MoneySystem 在同一帧消费
type MoneyEarnedEvent struct {
	Amount float64
}

// EventQueue 单帧消息队列
// 生产者 Push，唯一消费者每帧调用 Drain 取走全部事件并清空队列（至多一次投递，不重放）
type EventQueue[T any] struct {
	events []T
}

// NewEventQueue 创建空队列
func NewEventQueue[T any]() *EventQueue[T] {
	return &EventQueue[T]{events: make([]T, 0, 8)}
}

// Push 追加事件
func (q *EventQueue[T]) Push(event T) {
	q.events = append(q.events, event)
}

// Drain 返回所有待处理事件（按发送顺序）并清空队列
// 没有事件时返回 nil
func (q *EventQueue[T]) Drain() []T {
	if len(q.events) == 0 {
		return nil
	}
	drained := make([]T, len(q.events))
	copy(drained, q.events)
	q.events = q.events[:0]
	return drained
}

// Len 返回待处理事件数量
func (q *EventQueue[T]) Len() int {
	return len(q.events)
}
