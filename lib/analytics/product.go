package analytics

import (
	"fmt"
	"strings"
)

// Product identifies the SDK family that produced a URL.
type Product uint8

// Registered products. The zero value is not a product.
const (
	ProductAngular Product = iota + 1
	ProductReact
	ProductVue
	ProductJS
)

type productInfo struct {
	name string
	code byte
	tech Version
}

// products is the registry of known SDK families. It is never modified after
// package initialization.
var products = map[Product]productInfo{
	ProductAngular: {name: "angular", code: 'K', tech: Version{Major: 7}},
	ProductReact:   {name: "react", code: 'J', tech: Version{Major: 16}},
	ProductVue:     {name: "vue", code: 'I', tech: Version{Major: 2, Minor: 6}},
	ProductJS:      {name: "js", code: 'T'},
}

var productsByCode = func() map[byte]Product {
	m := make(map[byte]Product, len(products))
	for p, info := range products {
		m[info.code] = p
	}
	return m
}()

// ParseProduct resolves a product by name (case-insensitive).
func ParseProduct(name string) (Product, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, info := range products {
		if info.name == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProduct, name)
}

// Products returns all registered products in declaration order.
func Products() []Product {
	return []Product{ProductAngular, ProductReact, ProductVue, ProductJS}
}

// Valid reports whether p is registered.
func (p Product) Valid() bool {
	_, ok := products[p]
	return ok
}

// Code returns the single-character code embedded in tokens.
func (p Product) Code() (byte, error) {
	info, ok := products[p]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownProduct, uint8(p))
	}
	return info.code, nil
}

// TechVersion returns the default host framework version for the product.
func (p Product) TechVersion() (Version, error) {
	info, ok := products[p]
	if !ok {
		return Version{}, fmt.Errorf("%w: %d", ErrUnknownProduct, uint8(p))
	}
	return info.tech, nil
}

func (p Product) String() string {
	if info, ok := products[p]; ok {
		return info.name
	}
	return fmt.Sprintf("product(%d)", uint8(p))
}
