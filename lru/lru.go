package lru

import (
	"github.com/GabrielCS08/data-structures/dllist"
	"github.com/sirkon/errors"
	"golang.org/x/exp/maps"
)

// EvictionHandler получатель уведомлений о вытеснении записей из кеша.
type EvictionHandler[K comparable, V any] interface {
	HandleEviction(key K, value V)
}

// New конструктор кеша с данной ёмкостью. Ёмкость должна быть
// положительной.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, errors.New("cache capacity must be positive").Int("capacity", capacity)
	}

	res := &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*dllist.Node[entry[K, V]], capacity),
		order:    dllist.New[entry[K, V]](),
	}
	for _, opt := range opts {
		opt(res)
	}

	return res, nil
}

// Cache кеш фиксированной ёмкости с вытеснением самых давно
// не использованных записей.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type Cache[K comparable, V any] struct {
	capacity int
	items    map[K]*dllist.Node[entry[K, V]]
	order    *dllist.DLList[entry[K, V]]
	onEvict  EvictionHandler[K, V]
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Get поиск значения по ключу. Найденная запись становится самой свежей.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	n, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}

	c.order.MoveToFront(n)

	return n.Value().value, true
}

// Set сохранение значения по ключу. Запись становится самой свежей,
// при превышении ёмкости самая старая запись вытесняется с вызовом
// установленного обработчика.
func (c *Cache[K, V]) Set(key K, value V) {
	if n, ok := c.items[key]; ok {
		n.SetValue(entry[K, V]{key: key, value: value})
		c.order.MoveToFront(n)
		return
	}

	c.items[key] = c.order.PushFront(entry[K, V]{key: key, value: value})
	if c.order.Len() <= c.capacity {
		return
	}

	evicted, err := c.order.PopBack()
	if err != nil {
		// ёмкость не меньше единицы, пустым на этом пути список быть не может
		panic(errors.Wrap(err, "pop the oldest cache entry"))
	}

	delete(c.items, evicted.key)
	if c.onEvict != nil {
		c.onEvict.HandleEviction(evicted.key, evicted.value)
	}
}

// Delete удаление записи по ключу. Отдаёт false если записи не было.
// Обработчик вытеснений при этом не вызывается.
func (c *Cache[K, V]) Delete(key K) bool {
	n, ok := c.items[key]
	if !ok {
		return false
	}

	delete(c.items, key)
	c.order.Delete(n)

	return true
}

// Len возврат текущего количества записей в кеше.
func (c *Cache[K, V]) Len() int {
	return c.order.Len()
}

// Cap возврат ёмкости кеша.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Clear полная очистка кеша. Обработчик вытеснений при этом не вызывается.
func (c *Cache[K, V]) Clear() {
	maps.Clear(c.items)
	c.order = dllist.New[entry[K, V]]()
}

// Keys сбор ключей в порядке от самой свежей записи к самой старой.
// Для пустого кеша отдаёт nil.
func (c *Cache[K, V]) Keys() []K {
	if c.order.Len() == 0 {
		return nil
	}

	res := make([]K, 0, c.order.Len())
	it := c.order.Iter()
	for it.Next() {
		res = append(res, it.Value().key)
	}

	return res
}
