package dllist

import "github.com/sirkon/errors"

const (
	// ErrEmptyList ошибка отдаваемая при попытке изъятия значения из пустого списка.
	ErrEmptyList errors.Const = "list is empty"

	// ErrIndexOutOfRange ошибка отдаваемая при обращении по позиции вне границ списка.
	ErrIndexOutOfRange errors.Const = "index is out of range"
)

// New конструктор пустого двусвязного списка.
func New[T any]() *DLList[T] {
	return &DLList[T]{}
}

// DLList двусвязный список с добавлением и изъятием значений
// с обоих концов за O(1).
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type DLList[T any] struct {
	first *Node[T]
	last  *Node[T]
	size  int
}

// Len возврат текущей длины списка. Значение поддерживается
// инкрементально, обход узлов не производится.
func (l *DLList[T]) Len() int {
	return l.size
}

// PushFront добавление нового значения в начало списка с возвратом созданного узла.
func (l *DLList[T]) PushFront(v T) *Node[T] {
	n := &Node[T]{
		next:  l.first,
		prev:  nil,
		value: v,
	}
	l.size++

	if l.first == nil {
		l.first = n
		l.last = n
		return n
	}

	l.first.prev = n
	l.first = n

	return n
}

// PushBack добавление нового значения в конец списка с возвратом созданного узла.
func (l *DLList[T]) PushBack(v T) *Node[T] {
	n := &Node[T]{
		next:  nil,
		prev:  l.last,
		value: v,
	}
	l.size++

	if l.first == nil {
		l.first = n
		l.last = n
		return n
	}

	l.last.next = n
	l.last = n

	return n
}

// PopFront изъятие значения из начала списка.
// Отдаёт ErrEmptyList для пустого списка, список при этом не меняется.
func (l *DLList[T]) PopFront() (T, error) {
	if l.first == nil {
		var zero T
		return zero, ErrEmptyList
	}

	f := l.first
	l.first = f.next
	if f.next == nil {
		// в списке был только один элемент
		l.last = nil
	} else {
		f.next.prev = nil
	}
	l.size--

	v := f.value
	f.cleanup()

	return v, nil
}

// PopBack изъятие значения из конца списка.
// Отдаёт ErrEmptyList для пустого списка, список при этом не меняется.
func (l *DLList[T]) PopBack() (T, error) {
	if l.last == nil {
		var zero T
		return zero, ErrEmptyList
	}

	b := l.last
	l.last = b.prev
	if b.prev == nil {
		// в списке был только один элемент
		l.first = nil
	} else {
		b.prev.next = nil
	}
	l.size--

	v := b.value
	b.cleanup()

	return v, nil
}

// Front возврат значения в начале списка без его изъятия.
// Отдаёт ErrEmptyList для пустого списка.
func (l *DLList[T]) Front() (T, error) {
	if l.first == nil {
		var zero T
		return zero, ErrEmptyList
	}

	return l.first.value, nil
}

// Back возврат значения в конце списка без его изъятия.
// Отдаёт ErrEmptyList для пустого списка.
func (l *DLList[T]) Back() (T, error) {
	if l.last == nil {
		var zero T
		return zero, ErrEmptyList
	}

	return l.last.value, nil
}

// Get возврат значения по данной позиции, нумерация с нуля.
// Отдаёт ErrIndexOutOfRange для позиции вне диапазона [0, Len()),
// проверка производится до начала обхода. Обход всегда ведётся
// от начала списка.
func (l *DLList[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, errors.Wrap(ErrIndexOutOfRange, "check position").
			Int("index", index).
			Int("len", l.size)
	}

	cur := l.first
	for i := 0; i < index; i++ {
		cur = cur.next
	}

	return cur.value, nil
}

// First получение первого узла списка.
func (l *DLList[T]) First() *Node[T] {
	return l.first
}

// Last получение последнего узла списка.
func (l *DLList[T]) Last() *Node[T] {
	return l.last
}

// Delete удаление данного узла из списка. Узел должен принадлежать
// именно этому списку и ещё не быть удалённым из него.
func (l *DLList[T]) Delete(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	}

	if l.first == n {
		l.first = n.next
	}

	if l.last == n {
		l.last = n.prev
	}

	l.size--
	n.cleanup()
}

// MoveToFront перемещение данного узла в начало списка. Узел должен
// принадлежать именно этому списку.
func (l *DLList[T]) MoveToFront(n *Node[T]) {
	if l.first == n {
		return
	}

	n.prev.next = n.next
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.last = n.prev
	}

	n.prev = nil
	n.next = l.first
	l.first.prev = n
	l.first = n
}

// Values сбор всех значений списка в срез, от начала к концу.
// Для пустого списка отдаёт nil.
func (l *DLList[T]) Values() []T {
	if l.size == 0 {
		return nil
	}

	res := make([]T, 0, l.size)
	for cur := l.first; cur != nil; cur = cur.next {
		res = append(res, cur.value)
	}

	return res
}
