package queue

import (
	"github.com/GabrielCS08/data-structures/dllist"
)

// New конструктор пустой очереди.
func New[T any]() *Queue[T] {
	return &Queue[T]{
		list: dllist.New[T](),
	}
}

// Queue очередь FIFO поверх двусвязного списка: значения добавляются
// в конец и изымаются из начала.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type Queue[T any] struct {
	list *dllist.DLList[T]
}

// Len возврат текущего количества значений в очереди.
func (q *Queue[T]) Len() int {
	return q.list.Len()
}

// Enqueue добавление значения в конец очереди.
func (q *Queue[T]) Enqueue(v T) {
	q.list.PushBack(v)
}

// Dequeue изъятие значения из начала очереди.
// Отдаёт dllist.ErrEmptyList для пустой очереди.
func (q *Queue[T]) Dequeue() (T, error) {
	return q.list.PopFront()
}

// Peek возврат значения в начале очереди без его изъятия.
// Отдаёт dllist.ErrEmptyList для пустой очереди.
func (q *Queue[T]) Peek() (T, error) {
	return q.list.Front()
}

// Iter отдача итератора по значениям очереди от начала к концу.
func (q *Queue[T]) Iter() *dllist.Iterator[T] {
	return q.list.Iter()
}
