// Package translate machine-translates subtitle dialogue.
//
// A Translator splits the input into single-line segments, groups them into
// chunks that fit the engine's character budget and sends the chunks to an
// Engine with bounded concurrency and a minimum spacing between requests.
// Results are post-processed to undo common engine artifacts and reassembled
// so the output has exactly one entry per input text.
//
// Engines:
//   - google: the public translate_a/single endpoint over resty
//   - llm: an OpenAI-compatible chat model through services/llm
package translate
