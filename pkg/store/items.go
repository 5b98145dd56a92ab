package store

import (
	"sync"

	"github.com/Aya-Jafar/storefront-api/pkg/dto"
)

// Entry is a product held in a cart or wishlist together with its quantity.
type Entry struct {
	dto.ProductDTO
	Count int `json:"count"`
}

// ItemList is an ordered in-memory collection of entries, unique by product
// id. It backs both the cart and the wishlist and is safe for concurrent
// use.
type ItemList struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewCart() *ItemList {
	return &ItemList{}
}

func NewWishlist() *ItemList {
	return &ItemList{}
}

// Add inserts the product with count 1, or increments the count of an
// existing entry with the same id.
func (l *ItemList) Add(p dto.ProductDTO) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.entries {
		if l.entries[i].ID == p.ID {
			l.entries[i].Count++
			return
		}
	}
	l.entries = append(l.entries, Entry{ProductDTO: p, Count: 1})
}

// Remove deletes the entry with the given id. Removing an absent id is a
// no-op.
func (l *ItemList) Remove(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

func (l *ItemList) Contains(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for i := range l.entries {
		if l.entries[i].ID == id {
			return true
		}
	}
	return false
}

// Items returns a snapshot copy of the current entries.
func (l *ItemList) Items() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *ItemList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
