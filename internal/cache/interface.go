package cache

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Store is a process-local key/value cache with per-entry expiry.
type Store interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
	Has(key string) bool
	Delete(key string)
	Clear()
	Size() int
	Cleanup() int
}

// GetAs reads key and asserts the stored value to T.
// A value of another type is reported as absent.
func GetAs[T any](s Store, key string) (T, bool) {
	var zero T

	v, ok := s.Get(key)
	if !ok {
		return zero, false
	}

	typed, ok := v.(T)
	if !ok {
		return zero, false
	}

	return typed, true
}

func Key(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), "_")
}

// JSONKey derives a key from the JSON form of v, so equal option
// structs always map to the same entry.
func JSONKey(prefix string, v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return Key(prefix, fmt.Sprintf("%+v", v))
	}

	return Key(prefix, string(data))
}

const (
	ProductsKeyPrefix        = "products"
	ProductKeyPrefix         = "product"
	ProductSlugKeyPrefix     = "product_slug"
	ProductCategoriesPrefix  = "product_categories"
	RelatedProductsKeyPrefix = "related_products"
)

func ProductsKey(query any) string {
	return JSONKey(ProductsKeyPrefix, query)
}

func ProductKey(id int64) string {
	return Key(ProductKeyPrefix, strconv.FormatInt(id, 10))
}

func ProductSlugKey(slug string) string {
	return Key(ProductSlugKeyPrefix, slug)
}

func CategoriesKey(query any) string {
	return JSONKey(ProductCategoriesPrefix, query)
}

func RelatedProductsKey(id int64, limit int) string {
	return Key(RelatedProductsKeyPrefix, strconv.FormatInt(id, 10), strconv.Itoa(limit))
}
