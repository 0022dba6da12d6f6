// Package language classifies subtitle languages and maps language codes.
//
// A subtitle's Label comes from its filename when the segment before the
// extension is one of the known labels (eng, chs, cht, chs+eng, cht+eng).
// Otherwise the decoded text is counted: Latin letters, Simplified-only and
// Traditional-only Han characters are compared against fixed thresholds.
// Traditional is checked before Simplified, so a file that clears both
// thresholds is labelled cht.
//
// Code helpers translate labels, ISO 639 codes and language words into the
// BCP 47 tags translation engines expect.
package language
