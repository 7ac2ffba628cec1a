package huffzip

// Symbol represents one symbol of the byte alphabet.  Values outside the range
// 0 .. MaxSymbol are not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.  Every symbol is stored as a single
// byte on disk.
const MaxSymbol = Symbol(0xff)

// NumSymbols is the size of the alphabet.
const NumSymbols = int(MaxSymbol) + 1

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// Valid returns true iff this Symbol fits in the byte alphabet.
func (s Symbol) Valid() bool {
	return s >= 0 && s <= MaxSymbol
}
