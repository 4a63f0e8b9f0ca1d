package props

import (
	"fmt"
	"log/slog"

	"github.com/vk/deckgridgo/internal/grid"
)

// Registry maps keyword names to lazily-created property instances for a
// single simulation case.
//
// Instances live in a creation-order arena; the name index points into it,
// so the positional and name-keyed views always cover the same instances.
// Names in autoGenerated were materialized by a read rather than an
// explicit request; AddKeyword promotes them in place.
type Registry[T Value] struct {
	geom          *grid.Geometry
	catalog       *Catalog[T]
	logger        *slog.Logger
	arena         []*Property[T]
	byName        map[string]int
	autoGenerated map[string]struct{}
	diagnostics   *Sink
}

// New creates a registry over the given geometry and catalog. The geometry
// reference is borrowed; the registry must not outlive it. A nil logger
// falls back to slog.Default.
func New[T Value](geom *grid.Geometry, catalog *Catalog[T], logger *slog.Logger) *Registry[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry[T]{
		geom:          geom,
		catalog:       catalog,
		logger:        logger,
		byName:        make(map[string]int),
		autoGenerated: make(map[string]struct{}),
		diagnostics:   NewSink(logger),
	}
}

// CatalogExtension is the capability to insert a catalog entry after
// construction. Exactly one handle exists per extendable registry; the
// case assembler holds it to register the keyword whose default it
// computes from grid geometry, and must not re-export it.
type CatalogExtension[T Value] struct {
	reg *Registry[T]
}

// NewExtendable creates a registry together with its single catalog
// extension handle.
func NewExtendable[T Value](geom *grid.Geometry, catalog *Catalog[T], logger *slog.Logger) (*Registry[T], *CatalogExtension[T]) {
	reg := New(geom, catalog, logger)
	return reg, &CatalogExtension[T]{reg: reg}
}

// Insert adds a keyword descriptor to the registry's catalog. Like catalog
// construction it resolves duplicate names last-wins.
func (e *CatalogExtension[T]) Insert(kw SupportedKeywordInfo[T]) {
	e.reg.logger.Debug("Extending keyword catalog post-construction.", "keyword", kw.Name())
	e.reg.catalog.insert(kw)
}

// SupportsKeyword reports whether the keyword is in the catalog. No side
// effects.
func (r *Registry[T]) SupportsKeyword(name string) bool {
	return r.catalog.IsSupported(name)
}

// HasKeyword reports whether an explicit property instance exists for the
// keyword. Auto-generated instances are deliberately invisible here; use
// Peek to observe them.
func (r *Registry[T]) HasKeyword(name string) bool {
	_, present := r.byName[name]
	if !present {
		return false
	}
	_, auto := r.autoGenerated[name]
	return !auto
}

// Size returns the count of materialized instances, auto-generated and
// explicit combined.
func (r *Registry[T]) Size() int {
	return len(r.arena)
}

// Peek returns the property instance for the keyword if one exists,
// regardless of provenance. It never materializes.
func (r *Registry[T]) Peek(name string) (*Property[T], bool) {
	idx, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return r.arena[idx], true
}

// GetKeyword returns the live property for the keyword, materializing it
// with catalog defaults first if no instance exists yet. A property
// created this way is tagged auto-generated so that a later explicit
// mention of the keyword can be flagged as a likely ordering mistake.
func (r *Registry[T]) GetKeyword(name string) (*Property[T], error) {
	if idx, ok := r.byName[name]; ok {
		return r.arena[idx], nil
	}
	kw, ok := r.catalog.Get(name)
	if !ok {
		return nil, fmt.Errorf("keyword %q: %w", name, ErrUnsupportedKeyword)
	}
	r.logger.Debug("Auto-generating keyword with defaults.", "keyword", name)
	prop := r.append(kw)
	r.autoGenerated[name] = struct{}{}
	return prop, nil
}

// KeywordAt returns the index-th materialized property in creation order.
func (r *Registry[T]) KeywordAt(index int) (*Property[T], error) {
	if index < 0 || index >= len(r.arena) {
		return nil, fmt.Errorf("index %d with %d properties materialized: %w", index, len(r.arena), ErrIndexOutOfRange)
	}
	return r.arena[index], nil
}

// GetInitializedKeyword is the strict read path: it returns the property
// only if an explicit instance exists. It never materializes defaults, and
// it distinguishes a supported-but-uninitialized keyword
// (ErrNotInitialized) from an unknown one (ErrUnsupportedKeyword).
func (r *Registry[T]) GetInitializedKeyword(name string) (*Property[T], error) {
	if r.HasKeyword(name) {
		return r.arena[r.byName[name]], nil
	}
	if r.SupportsKeyword(name) {
		return nil, fmt.Errorf("keyword %q: %w", name, ErrNotInitialized)
	}
	return nil, fmt.Errorf("keyword %q: %w", name, ErrUnsupportedKeyword)
}

// AddKeyword explicitly materializes the keyword. It returns false if an
// explicit instance already exists (idempotent no-op). If an
// auto-generated instance exists it is promoted in place: values are
// preserved, only the provenance flips, and one warning diagnostic is
// appended. Otherwise a fresh instance is materialized with catalog
// defaults and tagged explicit.
func (r *Registry[T]) AddKeyword(name string) (bool, error) {
	if !r.SupportsKeyword(name) {
		return false, fmt.Errorf("keyword %q: %w", name, ErrUnsupportedKeyword)
	}
	if r.HasKeyword(name) {
		return false, nil
	}
	if _, auto := r.autoGenerated[name]; auto {
		delete(r.autoGenerated, name)
		r.diagnostics.Append(SeverityWarning, fmt.Sprintf(
			"The keyword %s has been used to calculate the defaults of another keyword "+
				"before it was explicitly mentioned in the deck. Maybe you need to change "+
				"the ordering of your keywords (move %s to the front?).", name, name))
		return true, nil
	}
	kw, _ := r.catalog.Get(name)
	r.logger.Debug("Materializing keyword explicitly.", "keyword", name)
	r.append(kw)
	return true, nil
}

// GetOrCreateProperty returns a writable handle for the keyword, creating
// or promoting it as needed. Callers that care about provenance use
// AddKeyword and GetKeyword separately.
func (r *Registry[T]) GetOrCreateProperty(name string) (*Property[T], error) {
	if _, err := r.AddKeyword(name); err != nil {
		return nil, err
	}
	return r.GetKeyword(name)
}

// CopyKeyword copies the source property's values into the target,
// restricted to the cells covered by box. The source is materialized with
// defaults if absent; the target is created or promoted as needed.
func (r *Registry[T]) CopyKeyword(sourceName, targetName string, box *grid.Box) error {
	src, err := r.GetKeyword(sourceName)
	if err != nil {
		return err
	}
	target, err := r.GetOrCreateProperty(targetName)
	if err != nil {
		return err
	}
	target.CopyFrom(src, box)
	return nil
}

// Diagnostics returns the registry's diagnostic sink.
func (r *Registry[T]) Diagnostics() *Sink {
	return r.diagnostics
}

// append materializes a property for the descriptor and adds it to both
// views within the same call.
func (r *Registry[T]) append(kw SupportedKeywordInfo[T]) *Property[T] {
	prop := newProperty(r.geom, kw)
	r.byName[kw.Name()] = len(r.arena)
	r.arena = append(r.arena, prop)
	return prop
}
