// Package filename extracts structured episode fields from media filenames
// and renders canonical names back from them.
//
// A Pattern is a regular expression with five named groups (series name,
// season, episode, episode title, trailing tag block). Classify applies it to
// a base filename and returns Fields only when the whole name matches;
// ClassifySubtitle first drops a trailing language segment such as ".eng" so
// subtitles and their videos yield identical tag blocks.
//
// Synthesize renders a naming template such as
// "@VIDEO_NAME@.@VIDEO_SEASON@@VIDEO_EPISODE@.@VIDEO_EPISODE_NAME@.@VIDEO_EXTRA@"
// and removes the title placeholder together with its delimiter when an
// episode has no title.
package filename
