package deque

import (
	"github.com/GabrielCS08/data-structures/dllist"
)

// New конструктор пустого дека.
func New[T any]() *Deque[T] {
	return &Deque[T]{
		list: dllist.New[T](),
	}
}

// Deque очередь с двумя концами поверх двусвязного списка.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type Deque[T any] struct {
	list *dllist.DLList[T]
}

// Len возврат текущего количества значений в деке.
func (d *Deque[T]) Len() int {
	return d.list.Len()
}

// PushFront добавление значения в начало дека.
func (d *Deque[T]) PushFront(v T) {
	d.list.PushFront(v)
}

// PushBack добавление значения в конец дека.
func (d *Deque[T]) PushBack(v T) {
	d.list.PushBack(v)
}

// PopFront изъятие значения из начала дека.
// Отдаёт dllist.ErrEmptyList для пустого дека.
func (d *Deque[T]) PopFront() (T, error) {
	return d.list.PopFront()
}

// PopBack изъятие значения из конца дека.
// Отдаёт dllist.ErrEmptyList для пустого дека.
func (d *Deque[T]) PopBack() (T, error) {
	return d.list.PopBack()
}

// Front возврат значения в начале дека без его изъятия.
// Отдаёт dllist.ErrEmptyList для пустого дека.
func (d *Deque[T]) Front() (T, error) {
	return d.list.Front()
}

// Back возврат значения в конце дека без его изъятия.
// Отдаёт dllist.ErrEmptyList для пустого дека.
func (d *Deque[T]) Back() (T, error) {
	return d.list.Back()
}

// Iter отдача итератора по значениям дека от начала к концу.
func (d *Deque[T]) Iter() *dllist.Iterator[T] {
	return d.list.Iter()
}
