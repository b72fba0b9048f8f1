package dllist_test

import (
	"fmt"

	"github.com/GabrielCS08/data-structures/dllist"
)

func ExampleDLList() {
	l := dllist.New[int]()

	// Наполняем список с обоих концов.
	l.PushBack(10)
	l.PushBack(20)
	l.PushFront(5)

	// Выводим значения от начала к концу.
	it := l.Iter()
	for it.Next() {
		fmt.Println(it.Value())
	}

	// Изымаем с обоих концов и показываем остаток.
	back, _ := l.PopBack()
	front, _ := l.PopFront()
	fmt.Println(back, front)
	fmt.Println(l.Values(), l.Len())

	// output:
	// 5
	// 10
	// 20
	// 20 5
	// [10] 1
}
