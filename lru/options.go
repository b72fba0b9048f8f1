package lru

// Option настройка поведения кеша при создании.
type Option[K comparable, V any] func(c *Cache[K, V])

// WithEvictionHandler установка получателя уведомлений о вытеснениях.
func WithEvictionHandler[K comparable, V any](h EvictionHandler[K, V]) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvict = h
	}
}
