// Package restore records undo information for a graph and replays it.
//
// Each container gets an ElementLog. While a log is collecting it keeps the
// before-image of every element the first time that element is touched;
// later touches of the same element are ignored, so replay order between
// keys never matters. Once a full snapshot of the container is logged the
// log is determined and drops further entries, since the snapshot alone
// restores the container.
//
// GraphRestorer implements store.Journal and mirrors the store: restorers
// for the three indexers, the vertex vectors and the adjacency matrices.
package restore
