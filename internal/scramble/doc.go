// Package scramble provides keyed, reversible pixel scrambling.
// A single seeded generator drives a whole-pixel permutation and a
// chained XOR keystream, so the key alone restores the original
// buffer bit for bit. Supports 1 to 4 channels per pixel and
// concurrent permutation of large buffers.
package scramble
