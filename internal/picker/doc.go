// Package picker is an interactive multi-source selection engine.
//
// A Session is opened from a list of Builders. Each Builder produces one
// Source: a named list of candidates with its own action menu. The session
// owns the query, the per-source filtered views, the marks and the cursor,
// and hands the selected values of one source to the Dispatcher when the
// user accepts.
//
// The engine is single-threaded and performs no I/O of its own. Candidate
// lists are captured when the session opens and never refreshed.
package picker
