package lru_test

import (
	"testing"

	"github.com/GabrielCS08/data-structures/internal/testlog"
	"github.com/GabrielCS08/data-structures/lru"
	"github.com/google/uuid"
	"github.com/sirkon/deepequal"
	"github.com/sirkon/errors"
)

type evictionRecorder[K comparable, V any] struct {
	keys   []K
	values []V
}

func (r *evictionRecorder[K, V]) HandleEviction(key K, value V) {
	r.keys = append(r.keys, key)
	r.values = append(r.values, value)
}

func TestCache(t *testing.T) {
	t.Run("eviction-order", func(t *testing.T) {
		// Сценарий:
		//   1. Заполняем кеш ёмкости 2.
		//   2. Добавляем третью запись, самая старая вытесняется.
		//   3. Обращаемся к старой записи и добавляем четвёртую:
		//      вытесняется уже другая запись.

		var rec evictionRecorder[string, int]
		c, err := lru.New[string, int](2, lru.WithEvictionHandler[string, int](&rec))
		if err != nil {
			testlog.Error(t, errors.Wrap(err, "create cache"))
			return
		}

		c.Set("a", 1)
		c.Set("b", 2)

		// Шаг 2.
		c.Set("c", 3)
		deepequal.SideBySide(t, "evicted keys", []string{"a"}, rec.keys)
		deepequal.SideBySide(t, "evicted values", []int{1}, rec.values)

		if _, ok := c.Get("a"); ok {
			t.Error("expected 'a' to be gone from the cache")
			return
		}

		// Шаг 3. Обращение к 'b' делает её свежей, вытесняется 'c'.
		if _, ok := c.Get("b"); !ok {
			t.Error("expected 'b' to still be cached")
			return
		}
		c.Set("d", 4)

		deepequal.SideBySide(t, "evicted keys", []string{"a", "c"}, rec.keys)
		deepequal.SideBySide(t, "remaining keys", []string{"d", "b"}, c.Keys())
	})

	t.Run("set-refreshes-and-replaces", func(t *testing.T) {
		c, err := lru.New[string, int](2)
		if err != nil {
			testlog.Error(t, errors.Wrap(err, "create cache"))
			return
		}

		c.Set("a", 1)
		c.Set("b", 2)
		c.Set("a", 100)

		v, ok := c.Get("a")
		if !ok || v != 100 {
			t.Errorf("expected the replaced value 100, got %d (found: %v)", v, ok)
			return
		}

		// Повторный Set не создал новой записи.
		if c.Len() != 2 {
			t.Errorf("expected 2 cached entries, got %d", c.Len())
			return
		}

		// 'b' теперь самая старая.
		c.Set("c", 3)
		if _, ok := c.Get("b"); ok {
			t.Error("expected 'b' to be evicted")
		}
	})

	t.Run("delete-and-clear", func(t *testing.T) {
		var rec evictionRecorder[string, int]
		c, err := lru.New[string, int](3, lru.WithEvictionHandler[string, int](&rec))
		if err != nil {
			testlog.Error(t, errors.Wrap(err, "create cache"))
			return
		}

		c.Set("a", 1)
		c.Set("b", 2)

		if !c.Delete("a") {
			t.Error("expected 'a' to be deleted")
			return
		}
		if c.Delete("a") {
			t.Error("expected the second delete of 'a' to report a miss")
			return
		}
		if c.Len() != 1 {
			t.Errorf("expected a single cached entry, got %d", c.Len())
			return
		}

		c.Clear()
		if c.Len() != 0 {
			t.Errorf("expected the cleared cache to be empty, got %d entries", c.Len())
			return
		}
		if _, ok := c.Get("b"); ok {
			t.Error("expected 'b' to be gone after the clear")
			return
		}

		// Ни удаление ни очистка не считаются вытеснением.
		if len(rec.keys) != 0 {
			t.Errorf("expected no eviction notifications, got %v", rec.keys)
		}
	})

	t.Run("keys-recency-order", func(t *testing.T) {
		c, err := lru.New[string, int](3)
		if err != nil {
			testlog.Error(t, errors.Wrap(err, "create cache"))
			return
		}

		if c.Keys() != nil {
			t.Errorf("expected no keys for the empty cache, got %v", c.Keys())
			return
		}

		c.Set("a", 1)
		c.Set("b", 2)
		c.Set("c", 3)
		c.Get("a")

		deepequal.SideBySide(t, "keys", []string{"a", "c", "b"}, c.Keys())
	})

	t.Run("opaque-key-and-value", func(t *testing.T) {
		c, err := lru.New[uuid.UUID, uuid.UUID](4)
		if err != nil {
			testlog.Error(t, errors.Wrap(err, "create cache"))
			return
		}

		key := uuid.New()
		value := uuid.New()
		c.Set(key, value)

		got, ok := c.Get(key)
		if !ok || got != value {
			t.Errorf("expected %s cached under %s, got %s (found: %v)", value, key, got, ok)
		}
	})

	t.Run("invalid-capacity", func(t *testing.T) {
		if _, err := lru.New[string, int](0); err == nil {
			t.Error("expected a failure for the zero capacity")
			return
		}
		if _, err := lru.New[string, int](-1); err == nil {
			t.Error("expected a failure for the negative capacity")
		}
	})
}
