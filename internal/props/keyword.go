package props

// Value constrains the element types a property array can hold. Reservoir
// decks use double-precision properties (porosity, permeability) and
// integer properties (region numbers, flags).
type Value interface {
	~int | ~float64
}

// PostProcessor adjusts a freshly default-filled property array in place.
// It runs exactly once, immediately after default materialization; it is
// never re-run on promotion.
type PostProcessor[T Value] func(values []T)

// SupportedKeywordInfo describes one keyword a registry can materialize:
// its name, the default element value, an optional post-processor, and an
// opaque physical-dimension tag. Immutable once placed in a catalog.
type SupportedKeywordInfo[T Value] struct {
	name          string
	defaultValue  T
	postProcessor PostProcessor[T]
	dimension     string
}

// NewSupportedKeyword creates a keyword descriptor. The post-processor may
// be nil.
func NewSupportedKeyword[T Value](name string, defaultValue T, post PostProcessor[T], dimension string) SupportedKeywordInfo[T] {
	return SupportedKeywordInfo[T]{
		name:          name,
		defaultValue:  defaultValue,
		postProcessor: post,
		dimension:     dimension,
	}
}

// Name returns the keyword name.
func (k SupportedKeywordInfo[T]) Name() string { return k.name }

// Default returns the default element value.
func (k SupportedKeywordInfo[T]) Default() T { return k.defaultValue }

// Dimension returns the physical-dimension tag. The registry never
// interprets it.
func (k SupportedKeywordInfo[T]) Dimension() string { return k.dimension }

// Catalog is the immutable construction-time table of supportable
// keywords. The only mutation path after construction is the
// CatalogExtension capability handed out by NewExtendable.
type Catalog[T Value] struct {
	entries map[string]SupportedKeywordInfo[T]
}

// NewCatalog builds a catalog from a descriptor list. Duplicate names
// resolve last-wins; construction is caller-controlled.
func NewCatalog[T Value](keywords []SupportedKeywordInfo[T]) *Catalog[T] {
	entries := make(map[string]SupportedKeywordInfo[T], len(keywords))
	for _, kw := range keywords {
		entries[kw.name] = kw
	}
	return &Catalog[T]{entries: entries}
}

// IsSupported reports whether the catalog contains the keyword.
func (c *Catalog[T]) IsSupported(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Get looks up a keyword descriptor.
func (c *Catalog[T]) Get(name string) (SupportedKeywordInfo[T], bool) {
	kw, ok := c.entries[name]
	return kw, ok
}

// Len returns the number of catalog entries.
func (c *Catalog[T]) Len() int {
	return len(c.entries)
}

func (c *Catalog[T]) insert(kw SupportedKeywordInfo[T]) {
	c.entries[kw.name] = kw
}
