package logic

import (
	"fmt"
	"io"

	"github.com/idelchi/gokuz/internal/codec"
)

// Tool names accepted by RunTool.
const (
	ToolStrToHex = "str-to-hex"
	ToolHexToStr = "hex-to-str"
	ToolHexInfo  = "hex-info"
)

// RunTool runs one of the hex helper tools and prints its result.
func RunTool(name, arg string, stdout io.Writer) error {
	switch name {
	case ToolStrToHex:
		out, err := codec.StrToHex(arg)
		if err != nil {
			return err //nolint:wrapcheck // already descriptive
		}

		fmt.Fprintln(stdout, out)
	case ToolHexToStr:
		out, err := codec.HexToStr(arg)
		if err != nil {
			return err //nolint:wrapcheck // already descriptive
		}

		fmt.Fprintln(stdout, out)
	case ToolHexInfo:
		info, err := codec.HexInfo(arg)
		if err != nil {
			return err //nolint:wrapcheck // already descriptive
		}

		fmt.Fprintf(stdout, "len_hex:  %d\nlen_byte: %d\nlen_bit:  %d\n", info.LenHex, info.LenByte, info.LenBit)
	default:
		return fmt.Errorf("unknown tool %q", name)
	}

	return nil
}
