package input

import "github.com/Siri-chan/getkey/key"

// Source produces already-classified keys, one per call
// terminal.Decoder and terminal.TcellSource satisfy it
type Source interface {
	ReadKey() (key.Key, error)
}

// CodeSource produces raw virtual-key codes that still need classifying
type CodeSource interface {
	ReadCode() (key.Code, error)
}
