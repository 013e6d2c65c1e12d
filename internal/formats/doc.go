// Package formats turns yt-dlp format dumps into per-item catalogs and
// reconciles the catalogs of a batch into one list of selectable options.
//
// Two dump shapes are understood: the structured "-j" output (one JSON root
// per item, newline-delimited) and the legacy "-F" table. A catalog is
// immutable once built. Descriptors without a bitrate are thumbnail or
// storyboard variants and never produce a display label, so they never reach
// an option list.
//
// [Intersect] keeps only the format ids present verbatim in every catalog of
// the batch, which guarantees the chosen format is downloadable for every
// item. Labels are resolved against the first catalog only.
package formats
