package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/tidwall/sjson"

	"github.com/Siri-chan/getkey/key"
)

// classifyCodes prints the classification of each code argument
// Codes are decimal or 0x-prefixed hex; an unparsable argument stops the run,
// an unrecognized code is reported and skipped
func classifyCodes(w io.Writer, args []string, asJSON bool) error {
	if len(args) == 0 {
		return fmt.Errorf("no codes given")
	}

	for _, arg := range args {
		n, err := strconv.ParseUint(arg, 0, 16)
		if err != nil {
			return fmt.Errorf("invalid code %q: %w", arg, err)
		}
		c := key.Code(n)
		k, cerr := key.Classify(c)

		if asJSON {
			fmt.Fprintln(w, codeJSON(c, k, cerr))
			continue
		}
		if cerr != nil {
			fmt.Fprintf(w, "%#04x  error: %v\n", n, cerr)
			continue
		}
		fmt.Fprintf(w, "%#04x  %s\n", n, keyText(k, 0))
	}
	return nil
}

func codeJSON(c key.Code, k key.Key, err error) string {
	s, _ := sjson.Set("", "code", uint16(c))
	if err != nil {
		s, _ = sjson.Set(s, "error", err.Error())
		return s
	}
	s, _ = sjson.Set(s, "key", k.String())
	s, _ = sjson.Set(s, "kind", k.Kind().String())
	s, _ = sjson.Set(s, "name", k.Name())
	return s
}
