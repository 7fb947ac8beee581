// Package vocab maps characters to the integer indices consumed by a
// character-level sequence model and back.
//
// A Vocabulary is built once from the training names and never changes
// afterwards, so a single instance can be shared by any number of goroutines.
//
// # Layout
//
// Index 0 is reserved for padding (PAD). The remaining indices are assigned in
// sorted rune order to every character observed in the names plus the two
// sequence markers, START ('<') and END ('>'). This is the same ordering a
// model trained on "<name>" strings sees, which keeps indices aligned with the
// model's output layer.
//
//	v, err := vocab.New([]string{"anna", "bob"})
//	// PAD=0, '<'=1, '>'=2, 'a'=3, 'b'=4, 'n'=5, 'o'=6
//
// # Decoding
//
// Decode maps PAD back to the START symbol. Padding carries no character of
// its own and a model should assign it almost no probability mass; treating it
// as START keeps a stray padding draw from producing an unparsable character.
//
// # Errors
//
// Encode fails with ErrUnknownCharacter for characters outside the
// vocabulary and Decode fails with ErrUnknownIndex for indices outside
// [0, Size()). Both are wrapped with the offending value and can be matched
// with errors.Is.
package vocab
