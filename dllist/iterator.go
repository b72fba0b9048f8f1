package dllist

// Iter отдача итератора по значениям списка от начала к концу.
// Каждый вызов создаёт новый итератор начинающий обход заново.
// Итератор ходит по живым узлам без снятия слепка: поведение при
// изменении списка во время обхода не специфицировано.
func (l *DLList[T]) Iter() *Iterator[T] {
	return &Iterator[T]{
		next: l.first,
	}
}

// Iterator итератор по значениям списка.
type Iterator[T any] struct {
	cur  *Node[T]
	next *Node[T]
}

// Next продвижение итератора на следующее значение.
// Отдаёт false когда значений больше не осталось.
func (it *Iterator[T]) Next() bool {
	if it.next == nil {
		return false
	}

	it.cur = it.next
	it.next = it.next.next

	return true
}

// Value значение на текущей позиции итератора.
// Имеет смысл только после успешного вызова Next.
func (it *Iterator[T]) Value() T {
	return it.cur.value
}
