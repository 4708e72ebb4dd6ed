package token

// Tokenizer converts an expression into a token sequence.
type Tokenizer interface {
	Tokenize(input string) ([]Token, error)
}
