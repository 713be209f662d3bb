// Package storage is the durable client-side state layer: a string-keyed
// key-value store the cart and session stores write to after every committed
// mutation.
package storage

import "errors"

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Keys under which the stores persist their state.
const (
	KeyCart  = "storefront-cart"
	KeyToken = "storefront-token"
	KeyUser  = "storefront-user"
)
