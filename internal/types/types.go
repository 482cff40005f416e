// internal/types/types.go
package types

// EntityID — идентификатор сущности. 0 означает "нет сущности".
type EntityID uint64
