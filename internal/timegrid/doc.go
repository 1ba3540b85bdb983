// Package timegrid maps pointer positions inside a day column onto a
// half-hour time grid.
//
// A host view captures its geometry once per drag session in a ViewContext
// and builds an EventDataFactory from it. Every pointer sample of that
// session is then turned into an EventData record, which carries the snapped
// grid index and the absolute time it stands for.
//
// Consumers that need the grid operations as methods (e.g., the creation and
// move handlers) embed Core.
package timegrid
