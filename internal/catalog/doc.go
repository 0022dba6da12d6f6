// Package catalog reconciles the metadata observed in video and subtitle
// filenames into one SeriesCatalog per run.
//
// The catalog is keyed by two-digit episode number. Series name, season and
// episode title follow a first-writer-wins policy: the first observed value is
// kept and later disagreements are logged as metadata_conflict warnings. Each
// EpisodeRecord carries two track sets, one for the srt family (.srt, .vtt,
// .smi) and one for the ass family (.ass, .ssa), mapping a language label to
// the subtitle file on disk.
package catalog
